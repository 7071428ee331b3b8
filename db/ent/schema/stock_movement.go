package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"
)

// StockMovement rows are append-only: no update or delete path exists in the
// repositories, the ledger is the audit trail.
type StockMovement struct{ ent.Schema }

func (StockMovement) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "stock_movements"},
	}
}

func (StockMovement) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			Default(uuid.New).
			Immutable().
			StorageKey("id"),
		field.UUID("entry_id", uuid.UUID{}).Immutable(),
		field.Enum("direction").Values("IN", "OUT").Immutable(),
		field.Float("quantity").Positive().Immutable(),
		field.String("reason").Default("").Immutable(),
		field.Time("created_at").Default(time.Now).Immutable(),
	}
}

func (StockMovement) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("entry_id", "created_at"),
	}
}
