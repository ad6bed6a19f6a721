package llm

import "context"

// Verdict is the model's own judgment of whether the document is a valid invoice.
type Verdict struct {
	Status string   `json:"status"` // "valid" | "invalid"
	Errors []string `json:"errors,omitempty"`
}

// LineItemData is one billable line as received from the model, amounts still decimal.
type LineItemData struct {
	Description string   `json:"description"`
	Quantity    *float64 `json:"quantity,omitempty"`
	UnitPrice   *float64 `json:"unitPrice,omitempty"`  // decimal
	TotalPrice  *float64 `json:"totalPrice,omitempty"` // decimal
	TaxRate     *float64 `json:"taxRate,omitempty"`    // percent, e.g. 20 for 20%
	TaxAmount   *float64 `json:"taxAmount,omitempty"`  // decimal
	SKU         string   `json:"sku,omitempty"`
	Category    string   `json:"category,omitempty"`
}

// InvoiceData is the extracted invoice payload as received from the model:
// decimal amounts and ISO-8601 string dates. Normalization happens in the
// validation gate, not here.
type InvoiceData struct {
	InvoiceNumber   string         `json:"invoiceNumber"`
	IssueDate       string         `json:"issueDate"` // ISO-8601 timestamp
	DueDate         string         `json:"dueDate"`   // ISO-8601 timestamp
	TotalAmount     *float64       `json:"totalAmount"`
	Currency        string         `json:"currency,omitempty"` // ISO 4217, default USD
	CustomerName    string         `json:"customerName"`
	CustomerAddress string         `json:"customerAddress,omitempty"`
	CustomerContact string         `json:"customerContact,omitempty"`
	CustomerTaxID   string         `json:"customerTaxId,omitempty"`
	VendorName      string         `json:"vendorName"`
	VendorAddress   string         `json:"vendorAddress,omitempty"`
	VendorContact   string         `json:"vendorContact,omitempty"`
	VendorTaxID     string         `json:"vendorTaxId,omitempty"`
	PaymentTerms    string         `json:"paymentTerms,omitempty"`
	Notes           string         `json:"notes,omitempty"`
	LineItems       []LineItemData `json:"lineItems,omitempty"`
}

// ExtractionResult is the parsed output of one extraction attempt. It lives
// only long enough to be consumed by the validation gate.
type ExtractionResult struct {
	Validation Verdict      `json:"validation"`
	Data       *InvoiceData `json:"data,omitempty"`
}

// Document is the uploaded file handed to the extractor: already-decoded
// bytes plus a content type. No HTTP parsing happens below this boundary.
type Document struct {
	Filename    string
	ContentType string
	Bytes       []byte
}

// ExtractRequest carries one extraction attempt's inputs.
type ExtractRequest struct {
	Document        Document
	UserNote        string // trigger message accompanying the upload
	DefaultCurrency string
}

// Extractor is the interface the pipeline depends on. Implementations call
// the external extraction capability and return its raw textual output.
type Extractor interface {
	Extract(ctx context.Context, req ExtractRequest) (raw []byte, err error)
}
