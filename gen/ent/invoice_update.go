// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/invoicepilot/invoicepilot/gen/ent/invoice"
	"github.com/invoicepilot/invoicepilot/gen/ent/invoicelineitem"
	"github.com/invoicepilot/invoicepilot/gen/ent/predicate"
)

// InvoiceUpdate is the builder for updating Invoice entities.
type InvoiceUpdate struct {
	config
	hooks    []Hook
	mutation *InvoiceMutation
}

// Where appends a list predicates to the InvoiceUpdate builder.
func (_u *InvoiceUpdate) Where(ps ...predicate.Invoice) *InvoiceUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetInvoiceNumber sets the "invoice_number" field.
func (_u *InvoiceUpdate) SetInvoiceNumber(v string) *InvoiceUpdate {
	_u.mutation.SetInvoiceNumber(v)
	return _u
}

// SetNillableInvoiceNumber sets the "invoice_number" field if the given value is not nil.
func (_u *InvoiceUpdate) SetNillableInvoiceNumber(v *string) *InvoiceUpdate {
	if v != nil {
		_u.SetInvoiceNumber(*v)
	}
	return _u
}

// SetIssueDate sets the "issue_date" field.
func (_u *InvoiceUpdate) SetIssueDate(v time.Time) *InvoiceUpdate {
	_u.mutation.SetIssueDate(v)
	return _u
}

// SetNillableIssueDate sets the "issue_date" field if the given value is not nil.
func (_u *InvoiceUpdate) SetNillableIssueDate(v *time.Time) *InvoiceUpdate {
	if v != nil {
		_u.SetIssueDate(*v)
	}
	return _u
}

// SetDueDate sets the "due_date" field.
func (_u *InvoiceUpdate) SetDueDate(v time.Time) *InvoiceUpdate {
	_u.mutation.SetDueDate(v)
	return _u
}

// SetNillableDueDate sets the "due_date" field if the given value is not nil.
func (_u *InvoiceUpdate) SetNillableDueDate(v *time.Time) *InvoiceUpdate {
	if v != nil {
		_u.SetDueDate(*v)
	}
	return _u
}

// SetTotalAmount sets the "total_amount" field.
func (_u *InvoiceUpdate) SetTotalAmount(v int64) *InvoiceUpdate {
	_u.mutation.ResetTotalAmount()
	_u.mutation.SetTotalAmount(v)
	return _u
}

// SetNillableTotalAmount sets the "total_amount" field if the given value is not nil.
func (_u *InvoiceUpdate) SetNillableTotalAmount(v *int64) *InvoiceUpdate {
	if v != nil {
		_u.SetTotalAmount(*v)
	}
	return _u
}

// AddTotalAmount adds value to the "total_amount" field.
func (_u *InvoiceUpdate) AddTotalAmount(v int64) *InvoiceUpdate {
	_u.mutation.AddTotalAmount(v)
	return _u
}

// SetCurrencyCode sets the "currency_code" field.
func (_u *InvoiceUpdate) SetCurrencyCode(v string) *InvoiceUpdate {
	_u.mutation.SetCurrencyCode(v)
	return _u
}

// SetNillableCurrencyCode sets the "currency_code" field if the given value is not nil.
func (_u *InvoiceUpdate) SetNillableCurrencyCode(v *string) *InvoiceUpdate {
	if v != nil {
		_u.SetCurrencyCode(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *InvoiceUpdate) SetStatus(v string) *InvoiceUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *InvoiceUpdate) SetNillableStatus(v *string) *InvoiceUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetCustomerName sets the "customer_name" field.
func (_u *InvoiceUpdate) SetCustomerName(v string) *InvoiceUpdate {
	_u.mutation.SetCustomerName(v)
	return _u
}

// SetNillableCustomerName sets the "customer_name" field if the given value is not nil.
func (_u *InvoiceUpdate) SetNillableCustomerName(v *string) *InvoiceUpdate {
	if v != nil {
		_u.SetCustomerName(*v)
	}
	return _u
}

// SetCustomerAddress sets the "customer_address" field.
func (_u *InvoiceUpdate) SetCustomerAddress(v string) *InvoiceUpdate {
	_u.mutation.SetCustomerAddress(v)
	return _u
}

// SetNillableCustomerAddress sets the "customer_address" field if the given value is not nil.
func (_u *InvoiceUpdate) SetNillableCustomerAddress(v *string) *InvoiceUpdate {
	if v != nil {
		_u.SetCustomerAddress(*v)
	}
	return _u
}

// ClearCustomerAddress clears the value of the "customer_address" field.
func (_u *InvoiceUpdate) ClearCustomerAddress() *InvoiceUpdate {
	_u.mutation.ClearCustomerAddress()
	return _u
}

// SetCustomerContact sets the "customer_contact" field.
func (_u *InvoiceUpdate) SetCustomerContact(v string) *InvoiceUpdate {
	_u.mutation.SetCustomerContact(v)
	return _u
}

// SetNillableCustomerContact sets the "customer_contact" field if the given value is not nil.
func (_u *InvoiceUpdate) SetNillableCustomerContact(v *string) *InvoiceUpdate {
	if v != nil {
		_u.SetCustomerContact(*v)
	}
	return _u
}

// ClearCustomerContact clears the value of the "customer_contact" field.
func (_u *InvoiceUpdate) ClearCustomerContact() *InvoiceUpdate {
	_u.mutation.ClearCustomerContact()
	return _u
}

// SetCustomerTaxID sets the "customer_tax_id" field.
func (_u *InvoiceUpdate) SetCustomerTaxID(v string) *InvoiceUpdate {
	_u.mutation.SetCustomerTaxID(v)
	return _u
}

// SetNillableCustomerTaxID sets the "customer_tax_id" field if the given value is not nil.
func (_u *InvoiceUpdate) SetNillableCustomerTaxID(v *string) *InvoiceUpdate {
	if v != nil {
		_u.SetCustomerTaxID(*v)
	}
	return _u
}

// ClearCustomerTaxID clears the value of the "customer_tax_id" field.
func (_u *InvoiceUpdate) ClearCustomerTaxID() *InvoiceUpdate {
	_u.mutation.ClearCustomerTaxID()
	return _u
}

// SetVendorName sets the "vendor_name" field.
func (_u *InvoiceUpdate) SetVendorName(v string) *InvoiceUpdate {
	_u.mutation.SetVendorName(v)
	return _u
}

// SetNillableVendorName sets the "vendor_name" field if the given value is not nil.
func (_u *InvoiceUpdate) SetNillableVendorName(v *string) *InvoiceUpdate {
	if v != nil {
		_u.SetVendorName(*v)
	}
	return _u
}

// SetVendorAddress sets the "vendor_address" field.
func (_u *InvoiceUpdate) SetVendorAddress(v string) *InvoiceUpdate {
	_u.mutation.SetVendorAddress(v)
	return _u
}

// SetNillableVendorAddress sets the "vendor_address" field if the given value is not nil.
func (_u *InvoiceUpdate) SetNillableVendorAddress(v *string) *InvoiceUpdate {
	if v != nil {
		_u.SetVendorAddress(*v)
	}
	return _u
}

// ClearVendorAddress clears the value of the "vendor_address" field.
func (_u *InvoiceUpdate) ClearVendorAddress() *InvoiceUpdate {
	_u.mutation.ClearVendorAddress()
	return _u
}

// SetVendorContact sets the "vendor_contact" field.
func (_u *InvoiceUpdate) SetVendorContact(v string) *InvoiceUpdate {
	_u.mutation.SetVendorContact(v)
	return _u
}

// SetNillableVendorContact sets the "vendor_contact" field if the given value is not nil.
func (_u *InvoiceUpdate) SetNillableVendorContact(v *string) *InvoiceUpdate {
	if v != nil {
		_u.SetVendorContact(*v)
	}
	return _u
}

// ClearVendorContact clears the value of the "vendor_contact" field.
func (_u *InvoiceUpdate) ClearVendorContact() *InvoiceUpdate {
	_u.mutation.ClearVendorContact()
	return _u
}

// SetVendorTaxID sets the "vendor_tax_id" field.
func (_u *InvoiceUpdate) SetVendorTaxID(v string) *InvoiceUpdate {
	_u.mutation.SetVendorTaxID(v)
	return _u
}

// SetNillableVendorTaxID sets the "vendor_tax_id" field if the given value is not nil.
func (_u *InvoiceUpdate) SetNillableVendorTaxID(v *string) *InvoiceUpdate {
	if v != nil {
		_u.SetVendorTaxID(*v)
	}
	return _u
}

// ClearVendorTaxID clears the value of the "vendor_tax_id" field.
func (_u *InvoiceUpdate) ClearVendorTaxID() *InvoiceUpdate {
	_u.mutation.ClearVendorTaxID()
	return _u
}

// SetPaymentTerms sets the "payment_terms" field.
func (_u *InvoiceUpdate) SetPaymentTerms(v string) *InvoiceUpdate {
	_u.mutation.SetPaymentTerms(v)
	return _u
}

// SetNillablePaymentTerms sets the "payment_terms" field if the given value is not nil.
func (_u *InvoiceUpdate) SetNillablePaymentTerms(v *string) *InvoiceUpdate {
	if v != nil {
		_u.SetPaymentTerms(*v)
	}
	return _u
}

// ClearPaymentTerms clears the value of the "payment_terms" field.
func (_u *InvoiceUpdate) ClearPaymentTerms() *InvoiceUpdate {
	_u.mutation.ClearPaymentTerms()
	return _u
}

// SetNotes sets the "notes" field.
func (_u *InvoiceUpdate) SetNotes(v string) *InvoiceUpdate {
	_u.mutation.SetNotes(v)
	return _u
}

// SetNillableNotes sets the "notes" field if the given value is not nil.
func (_u *InvoiceUpdate) SetNillableNotes(v *string) *InvoiceUpdate {
	if v != nil {
		_u.SetNotes(*v)
	}
	return _u
}

// ClearNotes clears the value of the "notes" field.
func (_u *InvoiceUpdate) ClearNotes() *InvoiceUpdate {
	_u.mutation.ClearNotes()
	return _u
}

// SetSourceFile sets the "source_file" field.
func (_u *InvoiceUpdate) SetSourceFile(v string) *InvoiceUpdate {
	_u.mutation.SetSourceFile(v)
	return _u
}

// SetNillableSourceFile sets the "source_file" field if the given value is not nil.
func (_u *InvoiceUpdate) SetNillableSourceFile(v *string) *InvoiceUpdate {
	if v != nil {
		_u.SetSourceFile(*v)
	}
	return _u
}

// ClearSourceFile clears the value of the "source_file" field.
func (_u *InvoiceUpdate) ClearSourceFile() *InvoiceUpdate {
	_u.mutation.ClearSourceFile()
	return _u
}

// SetProcessingErrors sets the "processing_errors" field.
func (_u *InvoiceUpdate) SetProcessingErrors(v []string) *InvoiceUpdate {
	_u.mutation.SetProcessingErrors(v)
	return _u
}

// AppendProcessingErrors appends value to the "processing_errors" field.
func (_u *InvoiceUpdate) AppendProcessingErrors(v []string) *InvoiceUpdate {
	_u.mutation.AppendProcessingErrors(v)
	return _u
}

// ClearProcessingErrors clears the value of the "processing_errors" field.
func (_u *InvoiceUpdate) ClearProcessingErrors() *InvoiceUpdate {
	_u.mutation.ClearProcessingErrors()
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *InvoiceUpdate) SetCreatedAt(v time.Time) *InvoiceUpdate {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *InvoiceUpdate) SetNillableCreatedAt(v *time.Time) *InvoiceUpdate {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *InvoiceUpdate) SetUpdatedAt(v time.Time) *InvoiceUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// AddLineItemIDs adds the "line_items" edge to the InvoiceLineItem entity by IDs.
func (_u *InvoiceUpdate) AddLineItemIDs(ids ...uuid.UUID) *InvoiceUpdate {
	_u.mutation.AddLineItemIDs(ids...)
	return _u
}

// AddLineItems adds the "line_items" edges to the InvoiceLineItem entity.
func (_u *InvoiceUpdate) AddLineItems(v ...*InvoiceLineItem) *InvoiceUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddLineItemIDs(ids...)
}

// Mutation returns the InvoiceMutation object of the builder.
func (_u *InvoiceUpdate) Mutation() *InvoiceMutation {
	return _u.mutation
}

// ClearLineItems clears all "line_items" edges to the InvoiceLineItem entity.
func (_u *InvoiceUpdate) ClearLineItems() *InvoiceUpdate {
	_u.mutation.ClearLineItems()
	return _u
}

// RemoveLineItemIDs removes the "line_items" edge to InvoiceLineItem entities by IDs.
func (_u *InvoiceUpdate) RemoveLineItemIDs(ids ...uuid.UUID) *InvoiceUpdate {
	_u.mutation.RemoveLineItemIDs(ids...)
	return _u
}

// RemoveLineItems removes "line_items" edges to InvoiceLineItem entities.
func (_u *InvoiceUpdate) RemoveLineItems(v ...*InvoiceLineItem) *InvoiceUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveLineItemIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *InvoiceUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *InvoiceUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *InvoiceUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *InvoiceUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *InvoiceUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := invoice.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *InvoiceUpdate) check() error {
	if v, ok := _u.mutation.InvoiceNumber(); ok {
		if err := invoice.InvoiceNumberValidator(v); err != nil {
			return &ValidationError{Name: "invoice_number", err: fmt.Errorf(`ent: validator failed for field "Invoice.invoice_number": %w`, err)}
		}
	}
	if v, ok := _u.mutation.TotalAmount(); ok {
		if err := invoice.TotalAmountValidator(v); err != nil {
			return &ValidationError{Name: "total_amount", err: fmt.Errorf(`ent: validator failed for field "Invoice.total_amount": %w`, err)}
		}
	}
	if v, ok := _u.mutation.CurrencyCode(); ok {
		if err := invoice.CurrencyCodeValidator(v); err != nil {
			return &ValidationError{Name: "currency_code", err: fmt.Errorf(`ent: validator failed for field "Invoice.currency_code": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := invoice.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Invoice.status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.CustomerName(); ok {
		if err := invoice.CustomerNameValidator(v); err != nil {
			return &ValidationError{Name: "customer_name", err: fmt.Errorf(`ent: validator failed for field "Invoice.customer_name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.VendorName(); ok {
		if err := invoice.VendorNameValidator(v); err != nil {
			return &ValidationError{Name: "vendor_name", err: fmt.Errorf(`ent: validator failed for field "Invoice.vendor_name": %w`, err)}
		}
	}
	return nil
}

func (_u *InvoiceUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(invoice.Table, invoice.Columns, sqlgraph.NewFieldSpec(invoice.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.InvoiceNumber(); ok {
		_spec.SetField(invoice.FieldInvoiceNumber, field.TypeString, value)
	}
	if value, ok := _u.mutation.IssueDate(); ok {
		_spec.SetField(invoice.FieldIssueDate, field.TypeTime, value)
	}
	if value, ok := _u.mutation.DueDate(); ok {
		_spec.SetField(invoice.FieldDueDate, field.TypeTime, value)
	}
	if value, ok := _u.mutation.TotalAmount(); ok {
		_spec.SetField(invoice.FieldTotalAmount, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedTotalAmount(); ok {
		_spec.AddField(invoice.FieldTotalAmount, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.CurrencyCode(); ok {
		_spec.SetField(invoice.FieldCurrencyCode, field.TypeString, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(invoice.FieldStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.CustomerName(); ok {
		_spec.SetField(invoice.FieldCustomerName, field.TypeString, value)
	}
	if value, ok := _u.mutation.CustomerAddress(); ok {
		_spec.SetField(invoice.FieldCustomerAddress, field.TypeString, value)
	}
	if _u.mutation.CustomerAddressCleared() {
		_spec.ClearField(invoice.FieldCustomerAddress, field.TypeString)
	}
	if value, ok := _u.mutation.CustomerContact(); ok {
		_spec.SetField(invoice.FieldCustomerContact, field.TypeString, value)
	}
	if _u.mutation.CustomerContactCleared() {
		_spec.ClearField(invoice.FieldCustomerContact, field.TypeString)
	}
	if value, ok := _u.mutation.CustomerTaxID(); ok {
		_spec.SetField(invoice.FieldCustomerTaxID, field.TypeString, value)
	}
	if _u.mutation.CustomerTaxIDCleared() {
		_spec.ClearField(invoice.FieldCustomerTaxID, field.TypeString)
	}
	if value, ok := _u.mutation.VendorName(); ok {
		_spec.SetField(invoice.FieldVendorName, field.TypeString, value)
	}
	if value, ok := _u.mutation.VendorAddress(); ok {
		_spec.SetField(invoice.FieldVendorAddress, field.TypeString, value)
	}
	if _u.mutation.VendorAddressCleared() {
		_spec.ClearField(invoice.FieldVendorAddress, field.TypeString)
	}
	if value, ok := _u.mutation.VendorContact(); ok {
		_spec.SetField(invoice.FieldVendorContact, field.TypeString, value)
	}
	if _u.mutation.VendorContactCleared() {
		_spec.ClearField(invoice.FieldVendorContact, field.TypeString)
	}
	if value, ok := _u.mutation.VendorTaxID(); ok {
		_spec.SetField(invoice.FieldVendorTaxID, field.TypeString, value)
	}
	if _u.mutation.VendorTaxIDCleared() {
		_spec.ClearField(invoice.FieldVendorTaxID, field.TypeString)
	}
	if value, ok := _u.mutation.PaymentTerms(); ok {
		_spec.SetField(invoice.FieldPaymentTerms, field.TypeString, value)
	}
	if _u.mutation.PaymentTermsCleared() {
		_spec.ClearField(invoice.FieldPaymentTerms, field.TypeString)
	}
	if value, ok := _u.mutation.Notes(); ok {
		_spec.SetField(invoice.FieldNotes, field.TypeString, value)
	}
	if _u.mutation.NotesCleared() {
		_spec.ClearField(invoice.FieldNotes, field.TypeString)
	}
	if value, ok := _u.mutation.SourceFile(); ok {
		_spec.SetField(invoice.FieldSourceFile, field.TypeString, value)
	}
	if _u.mutation.SourceFileCleared() {
		_spec.ClearField(invoice.FieldSourceFile, field.TypeString)
	}
	if value, ok := _u.mutation.ProcessingErrors(); ok {
		_spec.SetField(invoice.FieldProcessingErrors, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedProcessingErrors(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, invoice.FieldProcessingErrors, value)
		})
	}
	if _u.mutation.ProcessingErrorsCleared() {
		_spec.ClearField(invoice.FieldProcessingErrors, field.TypeJSON)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(invoice.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(invoice.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.LineItemsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   invoice.LineItemsTable,
			Columns: []string{invoice.LineItemsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(invoicelineitem.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedLineItemsIDs(); len(nodes) > 0 && !_u.mutation.LineItemsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   invoice.LineItemsTable,
			Columns: []string{invoice.LineItemsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(invoicelineitem.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.LineItemsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   invoice.LineItemsTable,
			Columns: []string{invoice.LineItemsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(invoicelineitem.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{invoice.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// InvoiceUpdateOne is the builder for updating a single Invoice entity.
type InvoiceUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *InvoiceMutation
}

// SetInvoiceNumber sets the "invoice_number" field.
func (_u *InvoiceUpdateOne) SetInvoiceNumber(v string) *InvoiceUpdateOne {
	_u.mutation.SetInvoiceNumber(v)
	return _u
}

// SetNillableInvoiceNumber sets the "invoice_number" field if the given value is not nil.
func (_u *InvoiceUpdateOne) SetNillableInvoiceNumber(v *string) *InvoiceUpdateOne {
	if v != nil {
		_u.SetInvoiceNumber(*v)
	}
	return _u
}

// SetIssueDate sets the "issue_date" field.
func (_u *InvoiceUpdateOne) SetIssueDate(v time.Time) *InvoiceUpdateOne {
	_u.mutation.SetIssueDate(v)
	return _u
}

// SetNillableIssueDate sets the "issue_date" field if the given value is not nil.
func (_u *InvoiceUpdateOne) SetNillableIssueDate(v *time.Time) *InvoiceUpdateOne {
	if v != nil {
		_u.SetIssueDate(*v)
	}
	return _u
}

// SetDueDate sets the "due_date" field.
func (_u *InvoiceUpdateOne) SetDueDate(v time.Time) *InvoiceUpdateOne {
	_u.mutation.SetDueDate(v)
	return _u
}

// SetNillableDueDate sets the "due_date" field if the given value is not nil.
func (_u *InvoiceUpdateOne) SetNillableDueDate(v *time.Time) *InvoiceUpdateOne {
	if v != nil {
		_u.SetDueDate(*v)
	}
	return _u
}

// SetTotalAmount sets the "total_amount" field.
func (_u *InvoiceUpdateOne) SetTotalAmount(v int64) *InvoiceUpdateOne {
	_u.mutation.ResetTotalAmount()
	_u.mutation.SetTotalAmount(v)
	return _u
}

// SetNillableTotalAmount sets the "total_amount" field if the given value is not nil.
func (_u *InvoiceUpdateOne) SetNillableTotalAmount(v *int64) *InvoiceUpdateOne {
	if v != nil {
		_u.SetTotalAmount(*v)
	}
	return _u
}

// AddTotalAmount adds value to the "total_amount" field.
func (_u *InvoiceUpdateOne) AddTotalAmount(v int64) *InvoiceUpdateOne {
	_u.mutation.AddTotalAmount(v)
	return _u
}

// SetCurrencyCode sets the "currency_code" field.
func (_u *InvoiceUpdateOne) SetCurrencyCode(v string) *InvoiceUpdateOne {
	_u.mutation.SetCurrencyCode(v)
	return _u
}

// SetNillableCurrencyCode sets the "currency_code" field if the given value is not nil.
func (_u *InvoiceUpdateOne) SetNillableCurrencyCode(v *string) *InvoiceUpdateOne {
	if v != nil {
		_u.SetCurrencyCode(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *InvoiceUpdateOne) SetStatus(v string) *InvoiceUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *InvoiceUpdateOne) SetNillableStatus(v *string) *InvoiceUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetCustomerName sets the "customer_name" field.
func (_u *InvoiceUpdateOne) SetCustomerName(v string) *InvoiceUpdateOne {
	_u.mutation.SetCustomerName(v)
	return _u
}

// SetNillableCustomerName sets the "customer_name" field if the given value is not nil.
func (_u *InvoiceUpdateOne) SetNillableCustomerName(v *string) *InvoiceUpdateOne {
	if v != nil {
		_u.SetCustomerName(*v)
	}
	return _u
}

// SetCustomerAddress sets the "customer_address" field.
func (_u *InvoiceUpdateOne) SetCustomerAddress(v string) *InvoiceUpdateOne {
	_u.mutation.SetCustomerAddress(v)
	return _u
}

// SetNillableCustomerAddress sets the "customer_address" field if the given value is not nil.
func (_u *InvoiceUpdateOne) SetNillableCustomerAddress(v *string) *InvoiceUpdateOne {
	if v != nil {
		_u.SetCustomerAddress(*v)
	}
	return _u
}

// ClearCustomerAddress clears the value of the "customer_address" field.
func (_u *InvoiceUpdateOne) ClearCustomerAddress() *InvoiceUpdateOne {
	_u.mutation.ClearCustomerAddress()
	return _u
}

// SetCustomerContact sets the "customer_contact" field.
func (_u *InvoiceUpdateOne) SetCustomerContact(v string) *InvoiceUpdateOne {
	_u.mutation.SetCustomerContact(v)
	return _u
}

// SetNillableCustomerContact sets the "customer_contact" field if the given value is not nil.
func (_u *InvoiceUpdateOne) SetNillableCustomerContact(v *string) *InvoiceUpdateOne {
	if v != nil {
		_u.SetCustomerContact(*v)
	}
	return _u
}

// ClearCustomerContact clears the value of the "customer_contact" field.
func (_u *InvoiceUpdateOne) ClearCustomerContact() *InvoiceUpdateOne {
	_u.mutation.ClearCustomerContact()
	return _u
}

// SetCustomerTaxID sets the "customer_tax_id" field.
func (_u *InvoiceUpdateOne) SetCustomerTaxID(v string) *InvoiceUpdateOne {
	_u.mutation.SetCustomerTaxID(v)
	return _u
}

// SetNillableCustomerTaxID sets the "customer_tax_id" field if the given value is not nil.
func (_u *InvoiceUpdateOne) SetNillableCustomerTaxID(v *string) *InvoiceUpdateOne {
	if v != nil {
		_u.SetCustomerTaxID(*v)
	}
	return _u
}

// ClearCustomerTaxID clears the value of the "customer_tax_id" field.
func (_u *InvoiceUpdateOne) ClearCustomerTaxID() *InvoiceUpdateOne {
	_u.mutation.ClearCustomerTaxID()
	return _u
}

// SetVendorName sets the "vendor_name" field.
func (_u *InvoiceUpdateOne) SetVendorName(v string) *InvoiceUpdateOne {
	_u.mutation.SetVendorName(v)
	return _u
}

// SetNillableVendorName sets the "vendor_name" field if the given value is not nil.
func (_u *InvoiceUpdateOne) SetNillableVendorName(v *string) *InvoiceUpdateOne {
	if v != nil {
		_u.SetVendorName(*v)
	}
	return _u
}

// SetVendorAddress sets the "vendor_address" field.
func (_u *InvoiceUpdateOne) SetVendorAddress(v string) *InvoiceUpdateOne {
	_u.mutation.SetVendorAddress(v)
	return _u
}

// SetNillableVendorAddress sets the "vendor_address" field if the given value is not nil.
func (_u *InvoiceUpdateOne) SetNillableVendorAddress(v *string) *InvoiceUpdateOne {
	if v != nil {
		_u.SetVendorAddress(*v)
	}
	return _u
}

// ClearVendorAddress clears the value of the "vendor_address" field.
func (_u *InvoiceUpdateOne) ClearVendorAddress() *InvoiceUpdateOne {
	_u.mutation.ClearVendorAddress()
	return _u
}

// SetVendorContact sets the "vendor_contact" field.
func (_u *InvoiceUpdateOne) SetVendorContact(v string) *InvoiceUpdateOne {
	_u.mutation.SetVendorContact(v)
	return _u
}

// SetNillableVendorContact sets the "vendor_contact" field if the given value is not nil.
func (_u *InvoiceUpdateOne) SetNillableVendorContact(v *string) *InvoiceUpdateOne {
	if v != nil {
		_u.SetVendorContact(*v)
	}
	return _u
}

// ClearVendorContact clears the value of the "vendor_contact" field.
func (_u *InvoiceUpdateOne) ClearVendorContact() *InvoiceUpdateOne {
	_u.mutation.ClearVendorContact()
	return _u
}

// SetVendorTaxID sets the "vendor_tax_id" field.
func (_u *InvoiceUpdateOne) SetVendorTaxID(v string) *InvoiceUpdateOne {
	_u.mutation.SetVendorTaxID(v)
	return _u
}

// SetNillableVendorTaxID sets the "vendor_tax_id" field if the given value is not nil.
func (_u *InvoiceUpdateOne) SetNillableVendorTaxID(v *string) *InvoiceUpdateOne {
	if v != nil {
		_u.SetVendorTaxID(*v)
	}
	return _u
}

// ClearVendorTaxID clears the value of the "vendor_tax_id" field.
func (_u *InvoiceUpdateOne) ClearVendorTaxID() *InvoiceUpdateOne {
	_u.mutation.ClearVendorTaxID()
	return _u
}

// SetPaymentTerms sets the "payment_terms" field.
func (_u *InvoiceUpdateOne) SetPaymentTerms(v string) *InvoiceUpdateOne {
	_u.mutation.SetPaymentTerms(v)
	return _u
}

// SetNillablePaymentTerms sets the "payment_terms" field if the given value is not nil.
func (_u *InvoiceUpdateOne) SetNillablePaymentTerms(v *string) *InvoiceUpdateOne {
	if v != nil {
		_u.SetPaymentTerms(*v)
	}
	return _u
}

// ClearPaymentTerms clears the value of the "payment_terms" field.
func (_u *InvoiceUpdateOne) ClearPaymentTerms() *InvoiceUpdateOne {
	_u.mutation.ClearPaymentTerms()
	return _u
}

// SetNotes sets the "notes" field.
func (_u *InvoiceUpdateOne) SetNotes(v string) *InvoiceUpdateOne {
	_u.mutation.SetNotes(v)
	return _u
}

// SetNillableNotes sets the "notes" field if the given value is not nil.
func (_u *InvoiceUpdateOne) SetNillableNotes(v *string) *InvoiceUpdateOne {
	if v != nil {
		_u.SetNotes(*v)
	}
	return _u
}

// ClearNotes clears the value of the "notes" field.
func (_u *InvoiceUpdateOne) ClearNotes() *InvoiceUpdateOne {
	_u.mutation.ClearNotes()
	return _u
}

// SetSourceFile sets the "source_file" field.
func (_u *InvoiceUpdateOne) SetSourceFile(v string) *InvoiceUpdateOne {
	_u.mutation.SetSourceFile(v)
	return _u
}

// SetNillableSourceFile sets the "source_file" field if the given value is not nil.
func (_u *InvoiceUpdateOne) SetNillableSourceFile(v *string) *InvoiceUpdateOne {
	if v != nil {
		_u.SetSourceFile(*v)
	}
	return _u
}

// ClearSourceFile clears the value of the "source_file" field.
func (_u *InvoiceUpdateOne) ClearSourceFile() *InvoiceUpdateOne {
	_u.mutation.ClearSourceFile()
	return _u
}

// SetProcessingErrors sets the "processing_errors" field.
func (_u *InvoiceUpdateOne) SetProcessingErrors(v []string) *InvoiceUpdateOne {
	_u.mutation.SetProcessingErrors(v)
	return _u
}

// AppendProcessingErrors appends value to the "processing_errors" field.
func (_u *InvoiceUpdateOne) AppendProcessingErrors(v []string) *InvoiceUpdateOne {
	_u.mutation.AppendProcessingErrors(v)
	return _u
}

// ClearProcessingErrors clears the value of the "processing_errors" field.
func (_u *InvoiceUpdateOne) ClearProcessingErrors() *InvoiceUpdateOne {
	_u.mutation.ClearProcessingErrors()
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *InvoiceUpdateOne) SetCreatedAt(v time.Time) *InvoiceUpdateOne {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *InvoiceUpdateOne) SetNillableCreatedAt(v *time.Time) *InvoiceUpdateOne {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *InvoiceUpdateOne) SetUpdatedAt(v time.Time) *InvoiceUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// AddLineItemIDs adds the "line_items" edge to the InvoiceLineItem entity by IDs.
func (_u *InvoiceUpdateOne) AddLineItemIDs(ids ...uuid.UUID) *InvoiceUpdateOne {
	_u.mutation.AddLineItemIDs(ids...)
	return _u
}

// AddLineItems adds the "line_items" edges to the InvoiceLineItem entity.
func (_u *InvoiceUpdateOne) AddLineItems(v ...*InvoiceLineItem) *InvoiceUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddLineItemIDs(ids...)
}

// Mutation returns the InvoiceMutation object of the builder.
func (_u *InvoiceUpdateOne) Mutation() *InvoiceMutation {
	return _u.mutation
}

// ClearLineItems clears all "line_items" edges to the InvoiceLineItem entity.
func (_u *InvoiceUpdateOne) ClearLineItems() *InvoiceUpdateOne {
	_u.mutation.ClearLineItems()
	return _u
}

// RemoveLineItemIDs removes the "line_items" edge to InvoiceLineItem entities by IDs.
func (_u *InvoiceUpdateOne) RemoveLineItemIDs(ids ...uuid.UUID) *InvoiceUpdateOne {
	_u.mutation.RemoveLineItemIDs(ids...)
	return _u
}

// RemoveLineItems removes "line_items" edges to InvoiceLineItem entities.
func (_u *InvoiceUpdateOne) RemoveLineItems(v ...*InvoiceLineItem) *InvoiceUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveLineItemIDs(ids...)
}

// Where appends a list predicates to the InvoiceUpdate builder.
func (_u *InvoiceUpdateOne) Where(ps ...predicate.Invoice) *InvoiceUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *InvoiceUpdateOne) Select(field string, fields ...string) *InvoiceUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Invoice entity.
func (_u *InvoiceUpdateOne) Save(ctx context.Context) (*Invoice, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *InvoiceUpdateOne) SaveX(ctx context.Context) *Invoice {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *InvoiceUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *InvoiceUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *InvoiceUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := invoice.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *InvoiceUpdateOne) check() error {
	if v, ok := _u.mutation.InvoiceNumber(); ok {
		if err := invoice.InvoiceNumberValidator(v); err != nil {
			return &ValidationError{Name: "invoice_number", err: fmt.Errorf(`ent: validator failed for field "Invoice.invoice_number": %w`, err)}
		}
	}
	if v, ok := _u.mutation.TotalAmount(); ok {
		if err := invoice.TotalAmountValidator(v); err != nil {
			return &ValidationError{Name: "total_amount", err: fmt.Errorf(`ent: validator failed for field "Invoice.total_amount": %w`, err)}
		}
	}
	if v, ok := _u.mutation.CurrencyCode(); ok {
		if err := invoice.CurrencyCodeValidator(v); err != nil {
			return &ValidationError{Name: "currency_code", err: fmt.Errorf(`ent: validator failed for field "Invoice.currency_code": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := invoice.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Invoice.status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.CustomerName(); ok {
		if err := invoice.CustomerNameValidator(v); err != nil {
			return &ValidationError{Name: "customer_name", err: fmt.Errorf(`ent: validator failed for field "Invoice.customer_name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.VendorName(); ok {
		if err := invoice.VendorNameValidator(v); err != nil {
			return &ValidationError{Name: "vendor_name", err: fmt.Errorf(`ent: validator failed for field "Invoice.vendor_name": %w`, err)}
		}
	}
	return nil
}

func (_u *InvoiceUpdateOne) sqlSave(ctx context.Context) (_node *Invoice, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(invoice.Table, invoice.Columns, sqlgraph.NewFieldSpec(invoice.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Invoice.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, invoice.FieldID)
		for _, f := range fields {
			if !invoice.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != invoice.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.InvoiceNumber(); ok {
		_spec.SetField(invoice.FieldInvoiceNumber, field.TypeString, value)
	}
	if value, ok := _u.mutation.IssueDate(); ok {
		_spec.SetField(invoice.FieldIssueDate, field.TypeTime, value)
	}
	if value, ok := _u.mutation.DueDate(); ok {
		_spec.SetField(invoice.FieldDueDate, field.TypeTime, value)
	}
	if value, ok := _u.mutation.TotalAmount(); ok {
		_spec.SetField(invoice.FieldTotalAmount, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedTotalAmount(); ok {
		_spec.AddField(invoice.FieldTotalAmount, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.CurrencyCode(); ok {
		_spec.SetField(invoice.FieldCurrencyCode, field.TypeString, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(invoice.FieldStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.CustomerName(); ok {
		_spec.SetField(invoice.FieldCustomerName, field.TypeString, value)
	}
	if value, ok := _u.mutation.CustomerAddress(); ok {
		_spec.SetField(invoice.FieldCustomerAddress, field.TypeString, value)
	}
	if _u.mutation.CustomerAddressCleared() {
		_spec.ClearField(invoice.FieldCustomerAddress, field.TypeString)
	}
	if value, ok := _u.mutation.CustomerContact(); ok {
		_spec.SetField(invoice.FieldCustomerContact, field.TypeString, value)
	}
	if _u.mutation.CustomerContactCleared() {
		_spec.ClearField(invoice.FieldCustomerContact, field.TypeString)
	}
	if value, ok := _u.mutation.CustomerTaxID(); ok {
		_spec.SetField(invoice.FieldCustomerTaxID, field.TypeString, value)
	}
	if _u.mutation.CustomerTaxIDCleared() {
		_spec.ClearField(invoice.FieldCustomerTaxID, field.TypeString)
	}
	if value, ok := _u.mutation.VendorName(); ok {
		_spec.SetField(invoice.FieldVendorName, field.TypeString, value)
	}
	if value, ok := _u.mutation.VendorAddress(); ok {
		_spec.SetField(invoice.FieldVendorAddress, field.TypeString, value)
	}
	if _u.mutation.VendorAddressCleared() {
		_spec.ClearField(invoice.FieldVendorAddress, field.TypeString)
	}
	if value, ok := _u.mutation.VendorContact(); ok {
		_spec.SetField(invoice.FieldVendorContact, field.TypeString, value)
	}
	if _u.mutation.VendorContactCleared() {
		_spec.ClearField(invoice.FieldVendorContact, field.TypeString)
	}
	if value, ok := _u.mutation.VendorTaxID(); ok {
		_spec.SetField(invoice.FieldVendorTaxID, field.TypeString, value)
	}
	if _u.mutation.VendorTaxIDCleared() {
		_spec.ClearField(invoice.FieldVendorTaxID, field.TypeString)
	}
	if value, ok := _u.mutation.PaymentTerms(); ok {
		_spec.SetField(invoice.FieldPaymentTerms, field.TypeString, value)
	}
	if _u.mutation.PaymentTermsCleared() {
		_spec.ClearField(invoice.FieldPaymentTerms, field.TypeString)
	}
	if value, ok := _u.mutation.Notes(); ok {
		_spec.SetField(invoice.FieldNotes, field.TypeString, value)
	}
	if _u.mutation.NotesCleared() {
		_spec.ClearField(invoice.FieldNotes, field.TypeString)
	}
	if value, ok := _u.mutation.SourceFile(); ok {
		_spec.SetField(invoice.FieldSourceFile, field.TypeString, value)
	}
	if _u.mutation.SourceFileCleared() {
		_spec.ClearField(invoice.FieldSourceFile, field.TypeString)
	}
	if value, ok := _u.mutation.ProcessingErrors(); ok {
		_spec.SetField(invoice.FieldProcessingErrors, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedProcessingErrors(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, invoice.FieldProcessingErrors, value)
		})
	}
	if _u.mutation.ProcessingErrorsCleared() {
		_spec.ClearField(invoice.FieldProcessingErrors, field.TypeJSON)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(invoice.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(invoice.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.LineItemsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   invoice.LineItemsTable,
			Columns: []string{invoice.LineItemsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(invoicelineitem.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedLineItemsIDs(); len(nodes) > 0 && !_u.mutation.LineItemsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   invoice.LineItemsTable,
			Columns: []string{invoice.LineItemsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(invoicelineitem.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.LineItemsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   invoice.LineItemsTable,
			Columns: []string{invoice.LineItemsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(invoicelineitem.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Invoice{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{invoice.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
