// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// InvoicesColumns holds the columns for the "invoices" table.
	InvoicesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "invoice_number", Type: field.TypeString},
		{Name: "issue_date", Type: field.TypeTime},
		{Name: "due_date", Type: field.TypeTime},
		{Name: "total_amount", Type: field.TypeInt64},
		{Name: "currency_code", Type: field.TypeString, Size: 3, Default: "USD", SchemaType: map[string]string{"postgres": "char(3)"}},
		{Name: "status", Type: field.TypeString, Default: "pending"},
		{Name: "customer_name", Type: field.TypeString},
		{Name: "customer_address", Type: field.TypeString, Nullable: true},
		{Name: "customer_contact", Type: field.TypeString, Nullable: true},
		{Name: "customer_tax_id", Type: field.TypeString, Nullable: true},
		{Name: "vendor_name", Type: field.TypeString},
		{Name: "vendor_address", Type: field.TypeString, Nullable: true},
		{Name: "vendor_contact", Type: field.TypeString, Nullable: true},
		{Name: "vendor_tax_id", Type: field.TypeString, Nullable: true},
		{Name: "payment_terms", Type: field.TypeString, Nullable: true},
		{Name: "notes", Type: field.TypeString, Nullable: true},
		{Name: "source_file", Type: field.TypeString, Nullable: true},
		{Name: "processing_errors", Type: field.TypeJSON, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// InvoicesTable holds the schema information for the "invoices" table.
	InvoicesTable = &schema.Table{
		Name:       "invoices",
		Columns:    InvoicesColumns,
		PrimaryKey: []*schema.Column{InvoicesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "invoice_invoice_number",
				Unique:  false,
				Columns: []*schema.Column{InvoicesColumns[1]},
			},
			{
				Name:    "invoice_status_created_at",
				Unique:  false,
				Columns: []*schema.Column{InvoicesColumns[6], InvoicesColumns[19]},
			},
		},
	}
	// InvoiceLineItemsColumns holds the columns for the "invoice_line_items" table.
	InvoiceLineItemsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "description", Type: field.TypeString},
		{Name: "quantity", Type: field.TypeInt},
		{Name: "unit_price", Type: field.TypeInt64},
		{Name: "total_price", Type: field.TypeInt64},
		{Name: "tax_rate", Type: field.TypeInt32, Nullable: true},
		{Name: "tax_amount", Type: field.TypeInt64, Nullable: true},
		{Name: "sku", Type: field.TypeString, Nullable: true},
		{Name: "category", Type: field.TypeString, Nullable: true},
		{Name: "position", Type: field.TypeInt},
		{Name: "invoice_id", Type: field.TypeUUID},
	}
	// InvoiceLineItemsTable holds the schema information for the "invoice_line_items" table.
	InvoiceLineItemsTable = &schema.Table{
		Name:       "invoice_line_items",
		Columns:    InvoiceLineItemsColumns,
		PrimaryKey: []*schema.Column{InvoiceLineItemsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "invoice_line_items_invoices_line_items",
				Columns:    []*schema.Column{InvoiceLineItemsColumns[10]},
				RefColumns: []*schema.Column{InvoicesColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "invoicelineitem_invoice_id_position",
				Unique:  false,
				Columns: []*schema.Column{InvoiceLineItemsColumns[10], InvoiceLineItemsColumns[9]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		InvoicesTable,
		InvoiceLineItemsTable,
	}
)

func init() {
	InvoicesTable.Annotation = &entsql.Annotation{
		Table: "invoices",
	}
	InvoiceLineItemsTable.ForeignKeys[0].RefTable = InvoicesTable
	InvoiceLineItemsTable.Annotation = &entsql.Annotation{
		Table: "invoice_line_items",
	}
}
