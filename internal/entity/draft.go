package entity

import "time"

// InvoiceDraft is the normalized payload produced by the validation gate on
// accept: money already in minor units, dates canonical UTC timestamps. It
// has no identifier or timestamps; those are assigned at persistence time.
type InvoiceDraft struct {
	InvoiceNumber   string
	IssueDate       time.Time
	DueDate         time.Time
	TotalAmount     int64
	CurrencyCode    string
	CustomerName    string
	CustomerAddress string
	CustomerContact string
	CustomerTaxID   string
	VendorName      string
	VendorAddress   string
	VendorContact   string
	VendorTaxID     string
	PaymentTerms    string
	Notes           string
	SourceFile      string
	LineItems       []LineItemDraft
}

// LineItemDraft is one normalized billable line awaiting persistence.
type LineItemDraft struct {
	Description string
	Quantity    int
	UnitPrice   int64
	TotalPrice  int64
	TaxRate     *int32 // basis points
	TaxAmount   *int64
	SKU         string
	Category    string
}
