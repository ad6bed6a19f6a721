// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/google/uuid"
	"github.com/invoicepilot/invoicepilot/db/ent/schema"
	"github.com/invoicepilot/invoicepilot/gen/ent/invoice"
	"github.com/invoicepilot/invoicepilot/gen/ent/invoicelineitem"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	invoiceFields := schema.Invoice{}.Fields()
	_ = invoiceFields
	// invoiceDescInvoiceNumber is the schema descriptor for invoice_number field.
	invoiceDescInvoiceNumber := invoiceFields[1].Descriptor()
	// invoice.InvoiceNumberValidator is a validator for the "invoice_number" field. It is called by the builders before save.
	invoice.InvoiceNumberValidator = invoiceDescInvoiceNumber.Validators[0].(func(string) error)
	// invoiceDescTotalAmount is the schema descriptor for total_amount field.
	invoiceDescTotalAmount := invoiceFields[4].Descriptor()
	// invoice.TotalAmountValidator is a validator for the "total_amount" field. It is called by the builders before save.
	invoice.TotalAmountValidator = invoiceDescTotalAmount.Validators[0].(func(int64) error)
	// invoiceDescCurrencyCode is the schema descriptor for currency_code field.
	invoiceDescCurrencyCode := invoiceFields[5].Descriptor()
	// invoice.DefaultCurrencyCode holds the default value on creation for the currency_code field.
	invoice.DefaultCurrencyCode = invoiceDescCurrencyCode.Default.(string)
	// invoice.CurrencyCodeValidator is a validator for the "currency_code" field. It is called by the builders before save.
	invoice.CurrencyCodeValidator = func() func(string) error {
		validators := invoiceDescCurrencyCode.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
			validators[2].(func(string) error),
		}
		return func(currency_code string) error {
			for _, fn := range fns {
				if err := fn(currency_code); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// invoiceDescStatus is the schema descriptor for status field.
	invoiceDescStatus := invoiceFields[6].Descriptor()
	// invoice.DefaultStatus holds the default value on creation for the status field.
	invoice.DefaultStatus = invoiceDescStatus.Default.(string)
	// invoice.StatusValidator is a validator for the "status" field. It is called by the builders before save.
	invoice.StatusValidator = invoiceDescStatus.Validators[0].(func(string) error)
	// invoiceDescCustomerName is the schema descriptor for customer_name field.
	invoiceDescCustomerName := invoiceFields[7].Descriptor()
	// invoice.CustomerNameValidator is a validator for the "customer_name" field. It is called by the builders before save.
	invoice.CustomerNameValidator = invoiceDescCustomerName.Validators[0].(func(string) error)
	// invoiceDescVendorName is the schema descriptor for vendor_name field.
	invoiceDescVendorName := invoiceFields[11].Descriptor()
	// invoice.VendorNameValidator is a validator for the "vendor_name" field. It is called by the builders before save.
	invoice.VendorNameValidator = invoiceDescVendorName.Validators[0].(func(string) error)
	// invoiceDescCreatedAt is the schema descriptor for created_at field.
	invoiceDescCreatedAt := invoiceFields[19].Descriptor()
	// invoice.DefaultCreatedAt holds the default value on creation for the created_at field.
	invoice.DefaultCreatedAt = invoiceDescCreatedAt.Default.(func() time.Time)
	// invoiceDescUpdatedAt is the schema descriptor for updated_at field.
	invoiceDescUpdatedAt := invoiceFields[20].Descriptor()
	// invoice.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	invoice.DefaultUpdatedAt = invoiceDescUpdatedAt.Default.(func() time.Time)
	// invoice.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	invoice.UpdateDefaultUpdatedAt = invoiceDescUpdatedAt.UpdateDefault.(func() time.Time)
	// invoiceDescID is the schema descriptor for id field.
	invoiceDescID := invoiceFields[0].Descriptor()
	// invoice.DefaultID holds the default value on creation for the id field.
	invoice.DefaultID = invoiceDescID.Default.(func() uuid.UUID)
	invoicelineitemFields := schema.InvoiceLineItem{}.Fields()
	_ = invoicelineitemFields
	// invoicelineitemDescDescription is the schema descriptor for description field.
	invoicelineitemDescDescription := invoicelineitemFields[2].Descriptor()
	// invoicelineitem.DescriptionValidator is a validator for the "description" field. It is called by the builders before save.
	invoicelineitem.DescriptionValidator = invoicelineitemDescDescription.Validators[0].(func(string) error)
	// invoicelineitemDescID is the schema descriptor for id field.
	invoicelineitemDescID := invoicelineitemFields[0].Descriptor()
	// invoicelineitem.DefaultID holds the default value on creation for the id field.
	invoicelineitem.DefaultID = invoicelineitemDescID.Default.(func() uuid.UUID)
}
