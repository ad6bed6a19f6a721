package utils

import (
	"time"

	"github.com/invoicepilot/invoicepilot/gen/ent"
	"github.com/invoicepilot/invoicepilot/internal/entity"
)

// ToInvoice converts a generated ent row into the transfer struct used
// between layers.
func ToInvoice(e *ent.Invoice) *entity.Invoice {
	return &entity.Invoice{
		ID:               e.ID,
		InvoiceNumber:    e.InvoiceNumber,
		IssueDate:        e.IssueDate,
		DueDate:          e.DueDate,
		TotalAmount:      e.TotalAmount,
		CurrencyCode:     e.CurrencyCode,
		Status:           e.Status,
		CustomerName:     e.CustomerName,
		CustomerAddress:  e.CustomerAddress,
		CustomerContact:  e.CustomerContact,
		CustomerTaxID:    e.CustomerTaxID,
		VendorName:       e.VendorName,
		VendorAddress:    e.VendorAddress,
		VendorContact:    e.VendorContact,
		VendorTaxID:      e.VendorTaxID,
		PaymentTerms:     e.PaymentTerms,
		Notes:            e.Notes,
		SourceFile:       e.SourceFile,
		ProcessingErrors: e.ProcessingErrors,
		CreatedAt:        e.CreatedAt,
		UpdatedAt:        e.UpdatedAt,
	}
}

// ToLineItem converts a generated ent row into the transfer struct.
func ToLineItem(e *ent.InvoiceLineItem) *entity.InvoiceLineItem {
	return &entity.InvoiceLineItem{
		ID:          e.ID,
		InvoiceID:   e.InvoiceID,
		Description: e.Description,
		Quantity:    e.Quantity,
		UnitPrice:   e.UnitPrice,
		TotalPrice:  e.TotalPrice,
		TaxRate:     e.TaxRate,
		TaxAmount:   e.TaxAmount,
		SKU:         e.Sku,
		Category:    e.Category,
		Position:    e.Position,
	}
}

// ParseYMD parses a date-only string as midnight UTC to match DATE semantics.
func ParseYMD(s string) (time.Time, error) {
	t, err := time.ParseInLocation("2006-01-02", s, time.UTC)
	if err != nil {
		return time.Time{}, err
	}
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC), nil
}
