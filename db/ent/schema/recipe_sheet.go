package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/field"

	"github.com/google/uuid"

	"github.com/cuisinehq/mercuriale/constants"
	"github.com/cuisinehq/mercuriale/internal/entity"
)

type RecipeSheet struct{ ent.Schema }

func (RecipeSheet) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "recipe_sheets"},
	}
}

func (RecipeSheet) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			Default(uuid.New).
			Immutable().
			StorageKey("id"),
		field.String("name").NotEmpty(),
		field.Int("portions").Positive().Default(4),
		field.Enum("category").
			Values(constants.CategoriesAsStringSlice()...).
			Default(string(constants.CategoryPlat)),
		field.JSON("lines", []entity.RecipeLine{}).Optional(),
		field.Text("instructions").Optional(),
		// declared cost and sale price; negative margins stay representable,
		// neither field constrains the other
		field.Float("cost").Min(0).Default(0).
			SchemaType(map[string]string{dialect.Postgres: "numeric(12,2)"}),
		field.Float("sale_price").Min(0).Default(0).
			SchemaType(map[string]string{dialect.Postgres: "numeric(12,2)"}),
		field.Time("created_at").Default(time.Now).Immutable(),
		field.Time("updated_at").Default(time.Now).UpdateDefault(time.Now),
	}
}
