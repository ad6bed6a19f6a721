// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/invoicepilot/invoicepilot/gen/ent/invoice"
)

// Invoice is the model entity for the Invoice schema.
type Invoice struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// InvoiceNumber holds the value of the "invoice_number" field.
	InvoiceNumber string `json:"invoice_number,omitempty"`
	// IssueDate holds the value of the "issue_date" field.
	IssueDate time.Time `json:"issue_date,omitempty"`
	// DueDate holds the value of the "due_date" field.
	DueDate time.Time `json:"due_date,omitempty"`
	// TotalAmount holds the value of the "total_amount" field.
	TotalAmount int64 `json:"total_amount,omitempty"`
	// CurrencyCode holds the value of the "currency_code" field.
	CurrencyCode string `json:"currency_code,omitempty"`
	// Status holds the value of the "status" field.
	Status string `json:"status,omitempty"`
	// CustomerName holds the value of the "customer_name" field.
	CustomerName string `json:"customer_name,omitempty"`
	// CustomerAddress holds the value of the "customer_address" field.
	CustomerAddress *string `json:"customer_address,omitempty"`
	// CustomerContact holds the value of the "customer_contact" field.
	CustomerContact *string `json:"customer_contact,omitempty"`
	// CustomerTaxID holds the value of the "customer_tax_id" field.
	CustomerTaxID *string `json:"customer_tax_id,omitempty"`
	// VendorName holds the value of the "vendor_name" field.
	VendorName string `json:"vendor_name,omitempty"`
	// VendorAddress holds the value of the "vendor_address" field.
	VendorAddress *string `json:"vendor_address,omitempty"`
	// VendorContact holds the value of the "vendor_contact" field.
	VendorContact *string `json:"vendor_contact,omitempty"`
	// VendorTaxID holds the value of the "vendor_tax_id" field.
	VendorTaxID *string `json:"vendor_tax_id,omitempty"`
	// PaymentTerms holds the value of the "payment_terms" field.
	PaymentTerms *string `json:"payment_terms,omitempty"`
	// Notes holds the value of the "notes" field.
	Notes *string `json:"notes,omitempty"`
	// SourceFile holds the value of the "source_file" field.
	SourceFile *string `json:"source_file,omitempty"`
	// ProcessingErrors holds the value of the "processing_errors" field.
	ProcessingErrors []string `json:"processing_errors,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the InvoiceQuery when eager-loading is set.
	Edges        InvoiceEdges `json:"edges"`
	selectValues sql.SelectValues
}

// InvoiceEdges holds the relations/edges for other nodes in the graph.
type InvoiceEdges struct {
	// LineItems holds the value of the line_items edge.
	LineItems []*InvoiceLineItem `json:"line_items,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// LineItemsOrErr returns the LineItems value or an error if the edge
// was not loaded in eager-loading.
func (e InvoiceEdges) LineItemsOrErr() ([]*InvoiceLineItem, error) {
	if e.loadedTypes[0] {
		return e.LineItems, nil
	}
	return nil, &NotLoadedError{edge: "line_items"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Invoice) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case invoice.FieldProcessingErrors:
			values[i] = new([]byte)
		case invoice.FieldTotalAmount:
			values[i] = new(sql.NullInt64)
		case invoice.FieldInvoiceNumber, invoice.FieldCurrencyCode, invoice.FieldStatus, invoice.FieldCustomerName, invoice.FieldCustomerAddress, invoice.FieldCustomerContact, invoice.FieldCustomerTaxID, invoice.FieldVendorName, invoice.FieldVendorAddress, invoice.FieldVendorContact, invoice.FieldVendorTaxID, invoice.FieldPaymentTerms, invoice.FieldNotes, invoice.FieldSourceFile:
			values[i] = new(sql.NullString)
		case invoice.FieldIssueDate, invoice.FieldDueDate, invoice.FieldCreatedAt, invoice.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		case invoice.FieldID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Invoice fields.
func (_m *Invoice) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case invoice.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case invoice.FieldInvoiceNumber:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field invoice_number", values[i])
			} else if value.Valid {
				_m.InvoiceNumber = value.String
			}
		case invoice.FieldIssueDate:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field issue_date", values[i])
			} else if value.Valid {
				_m.IssueDate = value.Time
			}
		case invoice.FieldDueDate:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field due_date", values[i])
			} else if value.Valid {
				_m.DueDate = value.Time
			}
		case invoice.FieldTotalAmount:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field total_amount", values[i])
			} else if value.Valid {
				_m.TotalAmount = value.Int64
			}
		case invoice.FieldCurrencyCode:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field currency_code", values[i])
			} else if value.Valid {
				_m.CurrencyCode = value.String
			}
		case invoice.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = value.String
			}
		case invoice.FieldCustomerName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field customer_name", values[i])
			} else if value.Valid {
				_m.CustomerName = value.String
			}
		case invoice.FieldCustomerAddress:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field customer_address", values[i])
			} else if value.Valid {
				_m.CustomerAddress = new(string)
				*_m.CustomerAddress = value.String
			}
		case invoice.FieldCustomerContact:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field customer_contact", values[i])
			} else if value.Valid {
				_m.CustomerContact = new(string)
				*_m.CustomerContact = value.String
			}
		case invoice.FieldCustomerTaxID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field customer_tax_id", values[i])
			} else if value.Valid {
				_m.CustomerTaxID = new(string)
				*_m.CustomerTaxID = value.String
			}
		case invoice.FieldVendorName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field vendor_name", values[i])
			} else if value.Valid {
				_m.VendorName = value.String
			}
		case invoice.FieldVendorAddress:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field vendor_address", values[i])
			} else if value.Valid {
				_m.VendorAddress = new(string)
				*_m.VendorAddress = value.String
			}
		case invoice.FieldVendorContact:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field vendor_contact", values[i])
			} else if value.Valid {
				_m.VendorContact = new(string)
				*_m.VendorContact = value.String
			}
		case invoice.FieldVendorTaxID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field vendor_tax_id", values[i])
			} else if value.Valid {
				_m.VendorTaxID = new(string)
				*_m.VendorTaxID = value.String
			}
		case invoice.FieldPaymentTerms:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field payment_terms", values[i])
			} else if value.Valid {
				_m.PaymentTerms = new(string)
				*_m.PaymentTerms = value.String
			}
		case invoice.FieldNotes:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field notes", values[i])
			} else if value.Valid {
				_m.Notes = new(string)
				*_m.Notes = value.String
			}
		case invoice.FieldSourceFile:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field source_file", values[i])
			} else if value.Valid {
				_m.SourceFile = new(string)
				*_m.SourceFile = value.String
			}
		case invoice.FieldProcessingErrors:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field processing_errors", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.ProcessingErrors); err != nil {
					return fmt.Errorf("unmarshal field processing_errors: %w", err)
				}
			}
		case invoice.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case invoice.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Invoice.
// This includes values selected through modifiers, order, etc.
func (_m *Invoice) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryLineItems queries the "line_items" edge of the Invoice entity.
func (_m *Invoice) QueryLineItems() *InvoiceLineItemQuery {
	return NewInvoiceClient(_m.config).QueryLineItems(_m)
}

// Update returns a builder for updating this Invoice.
// Note that you need to call Invoice.Unwrap() before calling this method if this Invoice
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Invoice) Update() *InvoiceUpdateOne {
	return NewInvoiceClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Invoice entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Invoice) Unwrap() *Invoice {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Invoice is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Invoice) String() string {
	var builder strings.Builder
	builder.WriteString("Invoice(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("invoice_number=")
	builder.WriteString(_m.InvoiceNumber)
	builder.WriteString(", ")
	builder.WriteString("issue_date=")
	builder.WriteString(_m.IssueDate.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("due_date=")
	builder.WriteString(_m.DueDate.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("total_amount=")
	builder.WriteString(fmt.Sprintf("%v", _m.TotalAmount))
	builder.WriteString(", ")
	builder.WriteString("currency_code=")
	builder.WriteString(_m.CurrencyCode)
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(_m.Status)
	builder.WriteString(", ")
	builder.WriteString("customer_name=")
	builder.WriteString(_m.CustomerName)
	builder.WriteString(", ")
	if v := _m.CustomerAddress; v != nil {
		builder.WriteString("customer_address=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.CustomerContact; v != nil {
		builder.WriteString("customer_contact=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.CustomerTaxID; v != nil {
		builder.WriteString("customer_tax_id=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("vendor_name=")
	builder.WriteString(_m.VendorName)
	builder.WriteString(", ")
	if v := _m.VendorAddress; v != nil {
		builder.WriteString("vendor_address=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.VendorContact; v != nil {
		builder.WriteString("vendor_contact=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.VendorTaxID; v != nil {
		builder.WriteString("vendor_tax_id=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.PaymentTerms; v != nil {
		builder.WriteString("payment_terms=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.Notes; v != nil {
		builder.WriteString("notes=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.SourceFile; v != nil {
		builder.WriteString("source_file=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("processing_errors=")
	builder.WriteString(fmt.Sprintf("%v", _m.ProcessingErrors))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// Invoices is a parsable slice of Invoice.
type Invoices []*Invoice
