package entity

import (
	"time"

	"github.com/google/uuid"
)

// Invoice represents a persisted invoice for data transfer between layers.
// All monetary fields are integer minor units.
type Invoice struct {
	ID               uuid.UUID  `json:"id"`
	InvoiceNumber    string     `json:"invoice_number"`
	IssueDate        time.Time  `json:"issue_date"`
	DueDate          time.Time  `json:"due_date"`
	TotalAmount      int64      `json:"total_amount"`
	CurrencyCode     string     `json:"currency_code"`
	Status           string     `json:"status"`
	CustomerName     string     `json:"customer_name"`
	CustomerAddress  *string    `json:"customer_address,omitempty"`
	CustomerContact  *string    `json:"customer_contact,omitempty"`
	CustomerTaxID    *string    `json:"customer_tax_id,omitempty"`
	VendorName       string     `json:"vendor_name"`
	VendorAddress    *string    `json:"vendor_address,omitempty"`
	VendorContact    *string    `json:"vendor_contact,omitempty"`
	VendorTaxID      *string    `json:"vendor_tax_id,omitempty"`
	PaymentTerms     *string    `json:"payment_terms,omitempty"`
	Notes            *string    `json:"notes,omitempty"`
	SourceFile       *string    `json:"source_file,omitempty"`
	ProcessingErrors []string   `json:"processing_errors,omitempty"`
	CreatedAt        time.Time  `json:"created_at"`
	UpdatedAt        time.Time  `json:"updated_at"`
}

// InvoiceLineItem represents one persisted billable line.
type InvoiceLineItem struct {
	ID          uuid.UUID `json:"id"`
	InvoiceID   uuid.UUID `json:"invoice_id"`
	Description string    `json:"description"`
	Quantity    int       `json:"quantity"`
	UnitPrice   int64     `json:"unit_price"`
	TotalPrice  int64     `json:"total_price"`
	TaxRate     *int32    `json:"tax_rate,omitempty"` // basis points
	TaxAmount   *int64    `json:"tax_amount,omitempty"`
	SKU         *string   `json:"sku,omitempty"`
	Category    *string   `json:"category,omitempty"`
	Position    int       `json:"position"`
}
