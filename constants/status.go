package constants

// InvoiceStatus is the canonical status for rows in invoices.
type InvoiceStatus string

// Stable values (store these exact strings in DB).
const (
	InvoiceStatusPending   InvoiceStatus = "pending"   // created but not yet validated
	InvoiceStatusValidated InvoiceStatus = "validated" // accepted by the validation gate
	InvoiceStatusInvalid   InvoiceStatus = "invalid"   // marked invalid after the fact
	InvoiceStatusProcessed InvoiceStatus = "processed" // downstream processing completed
)

// InvoiceStatuses holds the allowed values for the invoice status field.
var InvoiceStatuses = []string{
	string(InvoiceStatusPending),
	string(InvoiceStatusValidated),
	string(InvoiceStatusInvalid),
	string(InvoiceStatusProcessed),
}

// IsInvoiceStatus reports whether s is one of the stable status strings.
func IsInvoiceStatus(s string) bool {
	for _, v := range InvoiceStatuses {
		if v == s {
			return true
		}
	}
	return false
}
