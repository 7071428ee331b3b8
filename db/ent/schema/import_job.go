package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/field"

	"github.com/google/uuid"
)

type ImportJob struct{ ent.Schema }

func (ImportJob) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "import_jobs"},
	}
}

func (ImportJob) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			Default(uuid.New).
			Immutable().
			StorageKey("id"),
		field.UUID("file_id", uuid.UUID{}),
		field.String("format").NotEmpty(), // PDF | IMAGE
		field.String("mode").NotEmpty(),   // PRICE_LIST | RECIPE
		field.String("status").NotEmpty(),
		field.Time("started_at").Default(time.Now),
		field.Time("finished_at").Optional().Nillable(),
		field.String("error_message").Optional().Nillable(),
		field.Text("extracted_text").Optional().Nillable(),
		field.String("method").Optional().Nillable(),
		field.Float32("confidence").Optional().Nillable(),
	}
}
