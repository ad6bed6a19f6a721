package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"

	"github.com/invoicepilot/invoicepilot/constants"
	"github.com/invoicepilot/invoicepilot/db/ent/schema/utils"
)

type Invoice struct{ ent.Schema }

func (Invoice) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "invoices"},
	}
}

func (Invoice) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			Default(uuid.New).
			Immutable().
			StorageKey("id"),
		// vendor-assigned, not globally unique; re-uploads create new rows
		field.String("invoice_number").NotEmpty(),
		field.Time("issue_date"),
		field.Time("due_date"),
		// integer minor units only; no floating currency columns
		field.Int64("total_amount").NonNegative(),
		field.String("currency_code").NotEmpty().MinLen(3).MaxLen(3).
			Default("USD").
			SchemaType(map[string]string{dialect.Postgres: "char(3)"}),
		field.String("status").
			Default(string(constants.InvoiceStatusPending)).
			Validate(utils.EnumValidator(constants.InvoiceStatuses...)),
		field.String("customer_name").NotEmpty(),
		field.String("customer_address").Optional().Nillable(),
		field.String("customer_contact").Optional().Nillable(),
		field.String("customer_tax_id").Optional().Nillable(),
		field.String("vendor_name").NotEmpty(),
		field.String("vendor_address").Optional().Nillable(),
		field.String("vendor_contact").Optional().Nillable(),
		field.String("vendor_tax_id").Optional().Nillable(),
		field.String("payment_terms").Optional().Nillable(),
		field.String("notes").Optional().Nillable(),
		field.String("source_file").Optional().Nillable(),
		// set only while status is "invalid"
		field.JSON("processing_errors", []string{}).Optional(),
		field.Time("created_at").Default(time.Now),
		field.Time("updated_at").Default(time.Now).UpdateDefault(time.Now),
	}
}

func (Invoice) Edges() []ent.Edge {
	return []ent.Edge{
		// ONE invoice -> MANY line items; deleting the invoice cascades
		edge.To("line_items", InvoiceLineItem.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
	}
}

func (Invoice) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("invoice_number"),
		index.Fields("status", "created_at"),
	}
}
