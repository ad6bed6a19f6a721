package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"
)

type InvoiceLineItem struct{ ent.Schema }

func (InvoiceLineItem) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "invoice_line_items"},
	}
}

func (InvoiceLineItem) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			Default(uuid.New).
			Immutable(),
		field.UUID("invoice_id", uuid.UUID{}),
		field.String("description").NotEmpty(),
		field.Int("quantity"),
		// minor units
		field.Int64("unit_price"),
		field.Int64("total_price"),
		// basis points, 2000 = 20%
		field.Int32("tax_rate").Optional().Nillable(),
		field.Int64("tax_amount").Optional().Nillable(),
		field.String("sku").Optional().Nillable(),
		field.String("category").Optional().Nillable(),
		// insertion order within the invoice
		field.Int("position"),
	}
}

func (InvoiceLineItem) Edges() []ent.Edge {
	return []ent.Edge{
		// MANY line items -> ONE invoice (FK: invoice_line_items.invoice_id)
		edge.From("invoice", Invoice.Type).
			Ref("line_items").
			Field("invoice_id").
			Required().
			Unique(),
	}
}

func (InvoiceLineItem) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("invoice_id", "position"),
	}
}
