// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/invoicepilot/invoicepilot/gen/ent/invoice"
	"github.com/invoicepilot/invoicepilot/gen/ent/invoicelineitem"
)

// InvoiceCreate is the builder for creating a Invoice entity.
type InvoiceCreate struct {
	config
	mutation *InvoiceMutation
	hooks    []Hook
}

// SetInvoiceNumber sets the "invoice_number" field.
func (_c *InvoiceCreate) SetInvoiceNumber(v string) *InvoiceCreate {
	_c.mutation.SetInvoiceNumber(v)
	return _c
}

// SetIssueDate sets the "issue_date" field.
func (_c *InvoiceCreate) SetIssueDate(v time.Time) *InvoiceCreate {
	_c.mutation.SetIssueDate(v)
	return _c
}

// SetDueDate sets the "due_date" field.
func (_c *InvoiceCreate) SetDueDate(v time.Time) *InvoiceCreate {
	_c.mutation.SetDueDate(v)
	return _c
}

// SetTotalAmount sets the "total_amount" field.
func (_c *InvoiceCreate) SetTotalAmount(v int64) *InvoiceCreate {
	_c.mutation.SetTotalAmount(v)
	return _c
}

// SetCurrencyCode sets the "currency_code" field.
func (_c *InvoiceCreate) SetCurrencyCode(v string) *InvoiceCreate {
	_c.mutation.SetCurrencyCode(v)
	return _c
}

// SetNillableCurrencyCode sets the "currency_code" field if the given value is not nil.
func (_c *InvoiceCreate) SetNillableCurrencyCode(v *string) *InvoiceCreate {
	if v != nil {
		_c.SetCurrencyCode(*v)
	}
	return _c
}

// SetStatus sets the "status" field.
func (_c *InvoiceCreate) SetStatus(v string) *InvoiceCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *InvoiceCreate) SetNillableStatus(v *string) *InvoiceCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetCustomerName sets the "customer_name" field.
func (_c *InvoiceCreate) SetCustomerName(v string) *InvoiceCreate {
	_c.mutation.SetCustomerName(v)
	return _c
}

// SetCustomerAddress sets the "customer_address" field.
func (_c *InvoiceCreate) SetCustomerAddress(v string) *InvoiceCreate {
	_c.mutation.SetCustomerAddress(v)
	return _c
}

// SetNillableCustomerAddress sets the "customer_address" field if the given value is not nil.
func (_c *InvoiceCreate) SetNillableCustomerAddress(v *string) *InvoiceCreate {
	if v != nil {
		_c.SetCustomerAddress(*v)
	}
	return _c
}

// SetCustomerContact sets the "customer_contact" field.
func (_c *InvoiceCreate) SetCustomerContact(v string) *InvoiceCreate {
	_c.mutation.SetCustomerContact(v)
	return _c
}

// SetNillableCustomerContact sets the "customer_contact" field if the given value is not nil.
func (_c *InvoiceCreate) SetNillableCustomerContact(v *string) *InvoiceCreate {
	if v != nil {
		_c.SetCustomerContact(*v)
	}
	return _c
}

// SetCustomerTaxID sets the "customer_tax_id" field.
func (_c *InvoiceCreate) SetCustomerTaxID(v string) *InvoiceCreate {
	_c.mutation.SetCustomerTaxID(v)
	return _c
}

// SetNillableCustomerTaxID sets the "customer_tax_id" field if the given value is not nil.
func (_c *InvoiceCreate) SetNillableCustomerTaxID(v *string) *InvoiceCreate {
	if v != nil {
		_c.SetCustomerTaxID(*v)
	}
	return _c
}

// SetVendorName sets the "vendor_name" field.
func (_c *InvoiceCreate) SetVendorName(v string) *InvoiceCreate {
	_c.mutation.SetVendorName(v)
	return _c
}

// SetVendorAddress sets the "vendor_address" field.
func (_c *InvoiceCreate) SetVendorAddress(v string) *InvoiceCreate {
	_c.mutation.SetVendorAddress(v)
	return _c
}

// SetNillableVendorAddress sets the "vendor_address" field if the given value is not nil.
func (_c *InvoiceCreate) SetNillableVendorAddress(v *string) *InvoiceCreate {
	if v != nil {
		_c.SetVendorAddress(*v)
	}
	return _c
}

// SetVendorContact sets the "vendor_contact" field.
func (_c *InvoiceCreate) SetVendorContact(v string) *InvoiceCreate {
	_c.mutation.SetVendorContact(v)
	return _c
}

// SetNillableVendorContact sets the "vendor_contact" field if the given value is not nil.
func (_c *InvoiceCreate) SetNillableVendorContact(v *string) *InvoiceCreate {
	if v != nil {
		_c.SetVendorContact(*v)
	}
	return _c
}

// SetVendorTaxID sets the "vendor_tax_id" field.
func (_c *InvoiceCreate) SetVendorTaxID(v string) *InvoiceCreate {
	_c.mutation.SetVendorTaxID(v)
	return _c
}

// SetNillableVendorTaxID sets the "vendor_tax_id" field if the given value is not nil.
func (_c *InvoiceCreate) SetNillableVendorTaxID(v *string) *InvoiceCreate {
	if v != nil {
		_c.SetVendorTaxID(*v)
	}
	return _c
}

// SetPaymentTerms sets the "payment_terms" field.
func (_c *InvoiceCreate) SetPaymentTerms(v string) *InvoiceCreate {
	_c.mutation.SetPaymentTerms(v)
	return _c
}

// SetNillablePaymentTerms sets the "payment_terms" field if the given value is not nil.
func (_c *InvoiceCreate) SetNillablePaymentTerms(v *string) *InvoiceCreate {
	if v != nil {
		_c.SetPaymentTerms(*v)
	}
	return _c
}

// SetNotes sets the "notes" field.
func (_c *InvoiceCreate) SetNotes(v string) *InvoiceCreate {
	_c.mutation.SetNotes(v)
	return _c
}

// SetNillableNotes sets the "notes" field if the given value is not nil.
func (_c *InvoiceCreate) SetNillableNotes(v *string) *InvoiceCreate {
	if v != nil {
		_c.SetNotes(*v)
	}
	return _c
}

// SetSourceFile sets the "source_file" field.
func (_c *InvoiceCreate) SetSourceFile(v string) *InvoiceCreate {
	_c.mutation.SetSourceFile(v)
	return _c
}

// SetNillableSourceFile sets the "source_file" field if the given value is not nil.
func (_c *InvoiceCreate) SetNillableSourceFile(v *string) *InvoiceCreate {
	if v != nil {
		_c.SetSourceFile(*v)
	}
	return _c
}

// SetProcessingErrors sets the "processing_errors" field.
func (_c *InvoiceCreate) SetProcessingErrors(v []string) *InvoiceCreate {
	_c.mutation.SetProcessingErrors(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *InvoiceCreate) SetCreatedAt(v time.Time) *InvoiceCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *InvoiceCreate) SetNillableCreatedAt(v *time.Time) *InvoiceCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *InvoiceCreate) SetUpdatedAt(v time.Time) *InvoiceCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *InvoiceCreate) SetNillableUpdatedAt(v *time.Time) *InvoiceCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *InvoiceCreate) SetID(v uuid.UUID) *InvoiceCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *InvoiceCreate) SetNillableID(v *uuid.UUID) *InvoiceCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// AddLineItemIDs adds the "line_items" edge to the InvoiceLineItem entity by IDs.
func (_c *InvoiceCreate) AddLineItemIDs(ids ...uuid.UUID) *InvoiceCreate {
	_c.mutation.AddLineItemIDs(ids...)
	return _c
}

// AddLineItems adds the "line_items" edges to the InvoiceLineItem entity.
func (_c *InvoiceCreate) AddLineItems(v ...*InvoiceLineItem) *InvoiceCreate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddLineItemIDs(ids...)
}

// Mutation returns the InvoiceMutation object of the builder.
func (_c *InvoiceCreate) Mutation() *InvoiceMutation {
	return _c.mutation
}

// Save creates the Invoice in the database.
func (_c *InvoiceCreate) Save(ctx context.Context) (*Invoice, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *InvoiceCreate) SaveX(ctx context.Context) *Invoice {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *InvoiceCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *InvoiceCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *InvoiceCreate) defaults() {
	if _, ok := _c.mutation.CurrencyCode(); !ok {
		v := invoice.DefaultCurrencyCode
		_c.mutation.SetCurrencyCode(v)
	}
	if _, ok := _c.mutation.Status(); !ok {
		v := invoice.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := invoice.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := invoice.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := invoice.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *InvoiceCreate) check() error {
	if _, ok := _c.mutation.InvoiceNumber(); !ok {
		return &ValidationError{Name: "invoice_number", err: errors.New(`ent: missing required field "Invoice.invoice_number"`)}
	}
	if v, ok := _c.mutation.InvoiceNumber(); ok {
		if err := invoice.InvoiceNumberValidator(v); err != nil {
			return &ValidationError{Name: "invoice_number", err: fmt.Errorf(`ent: validator failed for field "Invoice.invoice_number": %w`, err)}
		}
	}
	if _, ok := _c.mutation.IssueDate(); !ok {
		return &ValidationError{Name: "issue_date", err: errors.New(`ent: missing required field "Invoice.issue_date"`)}
	}
	if _, ok := _c.mutation.DueDate(); !ok {
		return &ValidationError{Name: "due_date", err: errors.New(`ent: missing required field "Invoice.due_date"`)}
	}
	if _, ok := _c.mutation.TotalAmount(); !ok {
		return &ValidationError{Name: "total_amount", err: errors.New(`ent: missing required field "Invoice.total_amount"`)}
	}
	if v, ok := _c.mutation.TotalAmount(); ok {
		if err := invoice.TotalAmountValidator(v); err != nil {
			return &ValidationError{Name: "total_amount", err: fmt.Errorf(`ent: validator failed for field "Invoice.total_amount": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CurrencyCode(); !ok {
		return &ValidationError{Name: "currency_code", err: errors.New(`ent: missing required field "Invoice.currency_code"`)}
	}
	if v, ok := _c.mutation.CurrencyCode(); ok {
		if err := invoice.CurrencyCodeValidator(v); err != nil {
			return &ValidationError{Name: "currency_code", err: fmt.Errorf(`ent: validator failed for field "Invoice.currency_code": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "Invoice.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := invoice.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Invoice.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CustomerName(); !ok {
		return &ValidationError{Name: "customer_name", err: errors.New(`ent: missing required field "Invoice.customer_name"`)}
	}
	if v, ok := _c.mutation.CustomerName(); ok {
		if err := invoice.CustomerNameValidator(v); err != nil {
			return &ValidationError{Name: "customer_name", err: fmt.Errorf(`ent: validator failed for field "Invoice.customer_name": %w`, err)}
		}
	}
	if _, ok := _c.mutation.VendorName(); !ok {
		return &ValidationError{Name: "vendor_name", err: errors.New(`ent: missing required field "Invoice.vendor_name"`)}
	}
	if v, ok := _c.mutation.VendorName(); ok {
		if err := invoice.VendorNameValidator(v); err != nil {
			return &ValidationError{Name: "vendor_name", err: fmt.Errorf(`ent: validator failed for field "Invoice.vendor_name": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Invoice.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "Invoice.updated_at"`)}
	}
	return nil
}

func (_c *InvoiceCreate) sqlSave(ctx context.Context) (*Invoice, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(*uuid.UUID); ok {
			_node.ID = *id
		} else if err := _node.ID.Scan(_spec.ID.Value); err != nil {
			return nil, err
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *InvoiceCreate) createSpec() (*Invoice, *sqlgraph.CreateSpec) {
	var (
		_node = &Invoice{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(invoice.Table, sqlgraph.NewFieldSpec(invoice.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.InvoiceNumber(); ok {
		_spec.SetField(invoice.FieldInvoiceNumber, field.TypeString, value)
		_node.InvoiceNumber = value
	}
	if value, ok := _c.mutation.IssueDate(); ok {
		_spec.SetField(invoice.FieldIssueDate, field.TypeTime, value)
		_node.IssueDate = value
	}
	if value, ok := _c.mutation.DueDate(); ok {
		_spec.SetField(invoice.FieldDueDate, field.TypeTime, value)
		_node.DueDate = value
	}
	if value, ok := _c.mutation.TotalAmount(); ok {
		_spec.SetField(invoice.FieldTotalAmount, field.TypeInt64, value)
		_node.TotalAmount = value
	}
	if value, ok := _c.mutation.CurrencyCode(); ok {
		_spec.SetField(invoice.FieldCurrencyCode, field.TypeString, value)
		_node.CurrencyCode = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(invoice.FieldStatus, field.TypeString, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.CustomerName(); ok {
		_spec.SetField(invoice.FieldCustomerName, field.TypeString, value)
		_node.CustomerName = value
	}
	if value, ok := _c.mutation.CustomerAddress(); ok {
		_spec.SetField(invoice.FieldCustomerAddress, field.TypeString, value)
		_node.CustomerAddress = &value
	}
	if value, ok := _c.mutation.CustomerContact(); ok {
		_spec.SetField(invoice.FieldCustomerContact, field.TypeString, value)
		_node.CustomerContact = &value
	}
	if value, ok := _c.mutation.CustomerTaxID(); ok {
		_spec.SetField(invoice.FieldCustomerTaxID, field.TypeString, value)
		_node.CustomerTaxID = &value
	}
	if value, ok := _c.mutation.VendorName(); ok {
		_spec.SetField(invoice.FieldVendorName, field.TypeString, value)
		_node.VendorName = value
	}
	if value, ok := _c.mutation.VendorAddress(); ok {
		_spec.SetField(invoice.FieldVendorAddress, field.TypeString, value)
		_node.VendorAddress = &value
	}
	if value, ok := _c.mutation.VendorContact(); ok {
		_spec.SetField(invoice.FieldVendorContact, field.TypeString, value)
		_node.VendorContact = &value
	}
	if value, ok := _c.mutation.VendorTaxID(); ok {
		_spec.SetField(invoice.FieldVendorTaxID, field.TypeString, value)
		_node.VendorTaxID = &value
	}
	if value, ok := _c.mutation.PaymentTerms(); ok {
		_spec.SetField(invoice.FieldPaymentTerms, field.TypeString, value)
		_node.PaymentTerms = &value
	}
	if value, ok := _c.mutation.Notes(); ok {
		_spec.SetField(invoice.FieldNotes, field.TypeString, value)
		_node.Notes = &value
	}
	if value, ok := _c.mutation.SourceFile(); ok {
		_spec.SetField(invoice.FieldSourceFile, field.TypeString, value)
		_node.SourceFile = &value
	}
	if value, ok := _c.mutation.ProcessingErrors(); ok {
		_spec.SetField(invoice.FieldProcessingErrors, field.TypeJSON, value)
		_node.ProcessingErrors = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(invoice.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(invoice.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if nodes := _c.mutation.LineItemsIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// InvoiceCreateBulk is the builder for creating many Invoice entities in bulk.
type InvoiceCreateBulk struct {
	config
	err      error
	builders []*InvoiceCreate
}

// Save creates the Invoice entities in the database.
func (_c *InvoiceCreateBulk) Save(ctx context.Context) ([]*Invoice, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Invoice, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*InvoiceMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *InvoiceCreateBulk) SaveX(ctx context.Context) []*Invoice {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *InvoiceCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *InvoiceCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
