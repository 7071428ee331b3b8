package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"
)

type CatalogEntry struct{ ent.Schema }

func (CatalogEntry) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "catalog_entries"},
	}
}

func (CatalogEntry) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			Default(uuid.New).
			Immutable().
			StorageKey("id"),
		field.String("name").NotEmpty(),
		// canonical vocabulary normally, but unrecognized supplier tokens
		// pass through the import unchanged
		field.String("unit").NotEmpty(),
		field.Float("unit_price").Min(0).
			SchemaType(map[string]string{dialect.Postgres: "numeric(12,2)"}),
		field.Strings("allergens").Optional(),
		field.Float("current_stock").Default(0).Min(0),
		field.Float("min_stock").Default(0).Min(0),
		field.Float("critical_stock").Default(0).Min(0),
		field.Float("max_stock").Default(0).Min(0),
		field.Time("created_at").Default(time.Now).Immutable(),
		field.Time("updated_at").Default(time.Now).UpdateDefault(time.Now),
	}
}

func (CatalogEntry) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("name"),
	}
}
