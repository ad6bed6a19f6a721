// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/invoicepilot/invoicepilot/gen/ent/invoice"
	"github.com/invoicepilot/invoicepilot/gen/ent/invoicelineitem"
	"github.com/invoicepilot/invoicepilot/gen/ent/predicate"
)

// InvoiceLineItemUpdate is the builder for updating InvoiceLineItem entities.
type InvoiceLineItemUpdate struct {
	config
	hooks    []Hook
	mutation *InvoiceLineItemMutation
}

// Where appends a list predicates to the InvoiceLineItemUpdate builder.
func (_u *InvoiceLineItemUpdate) Where(ps ...predicate.InvoiceLineItem) *InvoiceLineItemUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetInvoiceID sets the "invoice_id" field.
func (_u *InvoiceLineItemUpdate) SetInvoiceID(v uuid.UUID) *InvoiceLineItemUpdate {
	_u.mutation.SetInvoiceID(v)
	return _u
}

// SetNillableInvoiceID sets the "invoice_id" field if the given value is not nil.
func (_u *InvoiceLineItemUpdate) SetNillableInvoiceID(v *uuid.UUID) *InvoiceLineItemUpdate {
	if v != nil {
		_u.SetInvoiceID(*v)
	}
	return _u
}

// SetDescription sets the "description" field.
func (_u *InvoiceLineItemUpdate) SetDescription(v string) *InvoiceLineItemUpdate {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *InvoiceLineItemUpdate) SetNillableDescription(v *string) *InvoiceLineItemUpdate {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// SetQuantity sets the "quantity" field.
func (_u *InvoiceLineItemUpdate) SetQuantity(v int) *InvoiceLineItemUpdate {
	_u.mutation.ResetQuantity()
	_u.mutation.SetQuantity(v)
	return _u
}

// SetNillableQuantity sets the "quantity" field if the given value is not nil.
func (_u *InvoiceLineItemUpdate) SetNillableQuantity(v *int) *InvoiceLineItemUpdate {
	if v != nil {
		_u.SetQuantity(*v)
	}
	return _u
}

// AddQuantity adds value to the "quantity" field.
func (_u *InvoiceLineItemUpdate) AddQuantity(v int) *InvoiceLineItemUpdate {
	_u.mutation.AddQuantity(v)
	return _u
}

// SetUnitPrice sets the "unit_price" field.
func (_u *InvoiceLineItemUpdate) SetUnitPrice(v int64) *InvoiceLineItemUpdate {
	_u.mutation.ResetUnitPrice()
	_u.mutation.SetUnitPrice(v)
	return _u
}

// SetNillableUnitPrice sets the "unit_price" field if the given value is not nil.
func (_u *InvoiceLineItemUpdate) SetNillableUnitPrice(v *int64) *InvoiceLineItemUpdate {
	if v != nil {
		_u.SetUnitPrice(*v)
	}
	return _u
}

// AddUnitPrice adds value to the "unit_price" field.
func (_u *InvoiceLineItemUpdate) AddUnitPrice(v int64) *InvoiceLineItemUpdate {
	_u.mutation.AddUnitPrice(v)
	return _u
}

// SetTotalPrice sets the "total_price" field.
func (_u *InvoiceLineItemUpdate) SetTotalPrice(v int64) *InvoiceLineItemUpdate {
	_u.mutation.ResetTotalPrice()
	_u.mutation.SetTotalPrice(v)
	return _u
}

// SetNillableTotalPrice sets the "total_price" field if the given value is not nil.
func (_u *InvoiceLineItemUpdate) SetNillableTotalPrice(v *int64) *InvoiceLineItemUpdate {
	if v != nil {
		_u.SetTotalPrice(*v)
	}
	return _u
}

// AddTotalPrice adds value to the "total_price" field.
func (_u *InvoiceLineItemUpdate) AddTotalPrice(v int64) *InvoiceLineItemUpdate {
	_u.mutation.AddTotalPrice(v)
	return _u
}

// SetTaxRate sets the "tax_rate" field.
func (_u *InvoiceLineItemUpdate) SetTaxRate(v int32) *InvoiceLineItemUpdate {
	_u.mutation.ResetTaxRate()
	_u.mutation.SetTaxRate(v)
	return _u
}

// SetNillableTaxRate sets the "tax_rate" field if the given value is not nil.
func (_u *InvoiceLineItemUpdate) SetNillableTaxRate(v *int32) *InvoiceLineItemUpdate {
	if v != nil {
		_u.SetTaxRate(*v)
	}
	return _u
}

// AddTaxRate adds value to the "tax_rate" field.
func (_u *InvoiceLineItemUpdate) AddTaxRate(v int32) *InvoiceLineItemUpdate {
	_u.mutation.AddTaxRate(v)
	return _u
}

// ClearTaxRate clears the value of the "tax_rate" field.
func (_u *InvoiceLineItemUpdate) ClearTaxRate() *InvoiceLineItemUpdate {
	_u.mutation.ClearTaxRate()
	return _u
}

// SetTaxAmount sets the "tax_amount" field.
func (_u *InvoiceLineItemUpdate) SetTaxAmount(v int64) *InvoiceLineItemUpdate {
	_u.mutation.ResetTaxAmount()
	_u.mutation.SetTaxAmount(v)
	return _u
}

// SetNillableTaxAmount sets the "tax_amount" field if the given value is not nil.
func (_u *InvoiceLineItemUpdate) SetNillableTaxAmount(v *int64) *InvoiceLineItemUpdate {
	if v != nil {
		_u.SetTaxAmount(*v)
	}
	return _u
}

// AddTaxAmount adds value to the "tax_amount" field.
func (_u *InvoiceLineItemUpdate) AddTaxAmount(v int64) *InvoiceLineItemUpdate {
	_u.mutation.AddTaxAmount(v)
	return _u
}

// ClearTaxAmount clears the value of the "tax_amount" field.
func (_u *InvoiceLineItemUpdate) ClearTaxAmount() *InvoiceLineItemUpdate {
	_u.mutation.ClearTaxAmount()
	return _u
}

// SetSku sets the "sku" field.
func (_u *InvoiceLineItemUpdate) SetSku(v string) *InvoiceLineItemUpdate {
	_u.mutation.SetSku(v)
	return _u
}

// SetNillableSku sets the "sku" field if the given value is not nil.
func (_u *InvoiceLineItemUpdate) SetNillableSku(v *string) *InvoiceLineItemUpdate {
	if v != nil {
		_u.SetSku(*v)
	}
	return _u
}

// ClearSku clears the value of the "sku" field.
func (_u *InvoiceLineItemUpdate) ClearSku() *InvoiceLineItemUpdate {
	_u.mutation.ClearSku()
	return _u
}

// SetCategory sets the "category" field.
func (_u *InvoiceLineItemUpdate) SetCategory(v string) *InvoiceLineItemUpdate {
	_u.mutation.SetCategory(v)
	return _u
}

// SetNillableCategory sets the "category" field if the given value is not nil.
func (_u *InvoiceLineItemUpdate) SetNillableCategory(v *string) *InvoiceLineItemUpdate {
	if v != nil {
		_u.SetCategory(*v)
	}
	return _u
}

// ClearCategory clears the value of the "category" field.
func (_u *InvoiceLineItemUpdate) ClearCategory() *InvoiceLineItemUpdate {
	_u.mutation.ClearCategory()
	return _u
}

// SetPosition sets the "position" field.
func (_u *InvoiceLineItemUpdate) SetPosition(v int) *InvoiceLineItemUpdate {
	_u.mutation.ResetPosition()
	_u.mutation.SetPosition(v)
	return _u
}

// SetNillablePosition sets the "position" field if the given value is not nil.
func (_u *InvoiceLineItemUpdate) SetNillablePosition(v *int) *InvoiceLineItemUpdate {
	if v != nil {
		_u.SetPosition(*v)
	}
	return _u
}

// AddPosition adds value to the "position" field.
func (_u *InvoiceLineItemUpdate) AddPosition(v int) *InvoiceLineItemUpdate {
	_u.mutation.AddPosition(v)
	return _u
}

// SetInvoice sets the "invoice" edge to the Invoice entity.
func (_u *InvoiceLineItemUpdate) SetInvoice(v *Invoice) *InvoiceLineItemUpdate {
	return _u.SetInvoiceID(v.ID)
}

// Mutation returns the InvoiceLineItemMutation object of the builder.
func (_u *InvoiceLineItemUpdate) Mutation() *InvoiceLineItemMutation {
	return _u.mutation
}

// ClearInvoice clears the "invoice" edge to the Invoice entity.
func (_u *InvoiceLineItemUpdate) ClearInvoice() *InvoiceLineItemUpdate {
	_u.mutation.ClearInvoice()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *InvoiceLineItemUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *InvoiceLineItemUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *InvoiceLineItemUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *InvoiceLineItemUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *InvoiceLineItemUpdate) check() error {
	if v, ok := _u.mutation.Description(); ok {
		if err := invoicelineitem.DescriptionValidator(v); err != nil {
			return &ValidationError{Name: "description", err: fmt.Errorf(`ent: validator failed for field "InvoiceLineItem.description": %w`, err)}
		}
	}
	if _u.mutation.InvoiceCleared() && len(_u.mutation.InvoiceIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "InvoiceLineItem.invoice"`)
	}
	return nil
}

func (_u *InvoiceLineItemUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(invoicelineitem.Table, invoicelineitem.Columns, sqlgraph.NewFieldSpec(invoicelineitem.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(invoicelineitem.FieldDescription, field.TypeString, value)
	}
	if value, ok := _u.mutation.Quantity(); ok {
		_spec.SetField(invoicelineitem.FieldQuantity, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedQuantity(); ok {
		_spec.AddField(invoicelineitem.FieldQuantity, field.TypeInt, value)
	}
	if value, ok := _u.mutation.UnitPrice(); ok {
		_spec.SetField(invoicelineitem.FieldUnitPrice, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedUnitPrice(); ok {
		_spec.AddField(invoicelineitem.FieldUnitPrice, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.TotalPrice(); ok {
		_spec.SetField(invoicelineitem.FieldTotalPrice, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedTotalPrice(); ok {
		_spec.AddField(invoicelineitem.FieldTotalPrice, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.TaxRate(); ok {
		_spec.SetField(invoicelineitem.FieldTaxRate, field.TypeInt32, value)
	}
	if value, ok := _u.mutation.AddedTaxRate(); ok {
		_spec.AddField(invoicelineitem.FieldTaxRate, field.TypeInt32, value)
	}
	if _u.mutation.TaxRateCleared() {
		_spec.ClearField(invoicelineitem.FieldTaxRate, field.TypeInt32)
	}
	if value, ok := _u.mutation.TaxAmount(); ok {
		_spec.SetField(invoicelineitem.FieldTaxAmount, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedTaxAmount(); ok {
		_spec.AddField(invoicelineitem.FieldTaxAmount, field.TypeInt64, value)
	}
	if _u.mutation.TaxAmountCleared() {
		_spec.ClearField(invoicelineitem.FieldTaxAmount, field.TypeInt64)
	}
	if value, ok := _u.mutation.Sku(); ok {
		_spec.SetField(invoicelineitem.FieldSku, field.TypeString, value)
	}
	if _u.mutation.SkuCleared() {
		_spec.ClearField(invoicelineitem.FieldSku, field.TypeString)
	}
	if value, ok := _u.mutation.Category(); ok {
		_spec.SetField(invoicelineitem.FieldCategory, field.TypeString, value)
	}
	if _u.mutation.CategoryCleared() {
		_spec.ClearField(invoicelineitem.FieldCategory, field.TypeString)
	}
	if value, ok := _u.mutation.Position(); ok {
		_spec.SetField(invoicelineitem.FieldPosition, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPosition(); ok {
		_spec.AddField(invoicelineitem.FieldPosition, field.TypeInt, value)
	}
	if _u.mutation.InvoiceCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   invoicelineitem.InvoiceTable,
			Columns: []string{invoicelineitem.InvoiceColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(invoice.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.InvoiceIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   invoicelineitem.InvoiceTable,
			Columns: []string{invoicelineitem.InvoiceColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(invoice.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{invoicelineitem.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// InvoiceLineItemUpdateOne is the builder for updating a single InvoiceLineItem entity.
type InvoiceLineItemUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *InvoiceLineItemMutation
}

// SetInvoiceID sets the "invoice_id" field.
func (_u *InvoiceLineItemUpdateOne) SetInvoiceID(v uuid.UUID) *InvoiceLineItemUpdateOne {
	_u.mutation.SetInvoiceID(v)
	return _u
}

// SetNillableInvoiceID sets the "invoice_id" field if the given value is not nil.
func (_u *InvoiceLineItemUpdateOne) SetNillableInvoiceID(v *uuid.UUID) *InvoiceLineItemUpdateOne {
	if v != nil {
		_u.SetInvoiceID(*v)
	}
	return _u
}

// SetDescription sets the "description" field.
func (_u *InvoiceLineItemUpdateOne) SetDescription(v string) *InvoiceLineItemUpdateOne {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *InvoiceLineItemUpdateOne) SetNillableDescription(v *string) *InvoiceLineItemUpdateOne {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// SetQuantity sets the "quantity" field.
func (_u *InvoiceLineItemUpdateOne) SetQuantity(v int) *InvoiceLineItemUpdateOne {
	_u.mutation.ResetQuantity()
	_u.mutation.SetQuantity(v)
	return _u
}

// SetNillableQuantity sets the "quantity" field if the given value is not nil.
func (_u *InvoiceLineItemUpdateOne) SetNillableQuantity(v *int) *InvoiceLineItemUpdateOne {
	if v != nil {
		_u.SetQuantity(*v)
	}
	return _u
}

// AddQuantity adds value to the "quantity" field.
func (_u *InvoiceLineItemUpdateOne) AddQuantity(v int) *InvoiceLineItemUpdateOne {
	_u.mutation.AddQuantity(v)
	return _u
}

// SetUnitPrice sets the "unit_price" field.
func (_u *InvoiceLineItemUpdateOne) SetUnitPrice(v int64) *InvoiceLineItemUpdateOne {
	_u.mutation.ResetUnitPrice()
	_u.mutation.SetUnitPrice(v)
	return _u
}

// SetNillableUnitPrice sets the "unit_price" field if the given value is not nil.
func (_u *InvoiceLineItemUpdateOne) SetNillableUnitPrice(v *int64) *InvoiceLineItemUpdateOne {
	if v != nil {
		_u.SetUnitPrice(*v)
	}
	return _u
}

// AddUnitPrice adds value to the "unit_price" field.
func (_u *InvoiceLineItemUpdateOne) AddUnitPrice(v int64) *InvoiceLineItemUpdateOne {
	_u.mutation.AddUnitPrice(v)
	return _u
}

// SetTotalPrice sets the "total_price" field.
func (_u *InvoiceLineItemUpdateOne) SetTotalPrice(v int64) *InvoiceLineItemUpdateOne {
	_u.mutation.ResetTotalPrice()
	_u.mutation.SetTotalPrice(v)
	return _u
}

// SetNillableTotalPrice sets the "total_price" field if the given value is not nil.
func (_u *InvoiceLineItemUpdateOne) SetNillableTotalPrice(v *int64) *InvoiceLineItemUpdateOne {
	if v != nil {
		_u.SetTotalPrice(*v)
	}
	return _u
}

// AddTotalPrice adds value to the "total_price" field.
func (_u *InvoiceLineItemUpdateOne) AddTotalPrice(v int64) *InvoiceLineItemUpdateOne {
	_u.mutation.AddTotalPrice(v)
	return _u
}

// SetTaxRate sets the "tax_rate" field.
func (_u *InvoiceLineItemUpdateOne) SetTaxRate(v int32) *InvoiceLineItemUpdateOne {
	_u.mutation.ResetTaxRate()
	_u.mutation.SetTaxRate(v)
	return _u
}

// SetNillableTaxRate sets the "tax_rate" field if the given value is not nil.
func (_u *InvoiceLineItemUpdateOne) SetNillableTaxRate(v *int32) *InvoiceLineItemUpdateOne {
	if v != nil {
		_u.SetTaxRate(*v)
	}
	return _u
}

// AddTaxRate adds value to the "tax_rate" field.
func (_u *InvoiceLineItemUpdateOne) AddTaxRate(v int32) *InvoiceLineItemUpdateOne {
	_u.mutation.AddTaxRate(v)
	return _u
}

// ClearTaxRate clears the value of the "tax_rate" field.
func (_u *InvoiceLineItemUpdateOne) ClearTaxRate() *InvoiceLineItemUpdateOne {
	_u.mutation.ClearTaxRate()
	return _u
}

// SetTaxAmount sets the "tax_amount" field.
func (_u *InvoiceLineItemUpdateOne) SetTaxAmount(v int64) *InvoiceLineItemUpdateOne {
	_u.mutation.ResetTaxAmount()
	_u.mutation.SetTaxAmount(v)
	return _u
}

// SetNillableTaxAmount sets the "tax_amount" field if the given value is not nil.
func (_u *InvoiceLineItemUpdateOne) SetNillableTaxAmount(v *int64) *InvoiceLineItemUpdateOne {
	if v != nil {
		_u.SetTaxAmount(*v)
	}
	return _u
}

// AddTaxAmount adds value to the "tax_amount" field.
func (_u *InvoiceLineItemUpdateOne) AddTaxAmount(v int64) *InvoiceLineItemUpdateOne {
	_u.mutation.AddTaxAmount(v)
	return _u
}

// ClearTaxAmount clears the value of the "tax_amount" field.
func (_u *InvoiceLineItemUpdateOne) ClearTaxAmount() *InvoiceLineItemUpdateOne {
	_u.mutation.ClearTaxAmount()
	return _u
}

// SetSku sets the "sku" field.
func (_u *InvoiceLineItemUpdateOne) SetSku(v string) *InvoiceLineItemUpdateOne {
	_u.mutation.SetSku(v)
	return _u
}

// SetNillableSku sets the "sku" field if the given value is not nil.
func (_u *InvoiceLineItemUpdateOne) SetNillableSku(v *string) *InvoiceLineItemUpdateOne {
	if v != nil {
		_u.SetSku(*v)
	}
	return _u
}

// ClearSku clears the value of the "sku" field.
func (_u *InvoiceLineItemUpdateOne) ClearSku() *InvoiceLineItemUpdateOne {
	_u.mutation.ClearSku()
	return _u
}

// SetCategory sets the "category" field.
func (_u *InvoiceLineItemUpdateOne) SetCategory(v string) *InvoiceLineItemUpdateOne {
	_u.mutation.SetCategory(v)
	return _u
}

// SetNillableCategory sets the "category" field if the given value is not nil.
func (_u *InvoiceLineItemUpdateOne) SetNillableCategory(v *string) *InvoiceLineItemUpdateOne {
	if v != nil {
		_u.SetCategory(*v)
	}
	return _u
}

// ClearCategory clears the value of the "category" field.
func (_u *InvoiceLineItemUpdateOne) ClearCategory() *InvoiceLineItemUpdateOne {
	_u.mutation.ClearCategory()
	return _u
}

// SetPosition sets the "position" field.
func (_u *InvoiceLineItemUpdateOne) SetPosition(v int) *InvoiceLineItemUpdateOne {
	_u.mutation.ResetPosition()
	_u.mutation.SetPosition(v)
	return _u
}

// SetNillablePosition sets the "position" field if the given value is not nil.
func (_u *InvoiceLineItemUpdateOne) SetNillablePosition(v *int) *InvoiceLineItemUpdateOne {
	if v != nil {
		_u.SetPosition(*v)
	}
	return _u
}

// AddPosition adds value to the "position" field.
func (_u *InvoiceLineItemUpdateOne) AddPosition(v int) *InvoiceLineItemUpdateOne {
	_u.mutation.AddPosition(v)
	return _u
}

// SetInvoice sets the "invoice" edge to the Invoice entity.
func (_u *InvoiceLineItemUpdateOne) SetInvoice(v *Invoice) *InvoiceLineItemUpdateOne {
	return _u.SetInvoiceID(v.ID)
}

// Mutation returns the InvoiceLineItemMutation object of the builder.
func (_u *InvoiceLineItemUpdateOne) Mutation() *InvoiceLineItemMutation {
	return _u.mutation
}

// ClearInvoice clears the "invoice" edge to the Invoice entity.
func (_u *InvoiceLineItemUpdateOne) ClearInvoice() *InvoiceLineItemUpdateOne {
	_u.mutation.ClearInvoice()
	return _u
}

// Where appends a list predicates to the InvoiceLineItemUpdate builder.
func (_u *InvoiceLineItemUpdateOne) Where(ps ...predicate.InvoiceLineItem) *InvoiceLineItemUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *InvoiceLineItemUpdateOne) Select(field string, fields ...string) *InvoiceLineItemUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated InvoiceLineItem entity.
func (_u *InvoiceLineItemUpdateOne) Save(ctx context.Context) (*InvoiceLineItem, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *InvoiceLineItemUpdateOne) SaveX(ctx context.Context) *InvoiceLineItem {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *InvoiceLineItemUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *InvoiceLineItemUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *InvoiceLineItemUpdateOne) check() error {
	if v, ok := _u.mutation.Description(); ok {
		if err := invoicelineitem.DescriptionValidator(v); err != nil {
			return &ValidationError{Name: "description", err: fmt.Errorf(`ent: validator failed for field "InvoiceLineItem.description": %w`, err)}
		}
	}
	if _u.mutation.InvoiceCleared() && len(_u.mutation.InvoiceIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "InvoiceLineItem.invoice"`)
	}
	return nil
}

func (_u *InvoiceLineItemUpdateOne) sqlSave(ctx context.Context) (_node *InvoiceLineItem, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(invoicelineitem.Table, invoicelineitem.Columns, sqlgraph.NewFieldSpec(invoicelineitem.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "InvoiceLineItem.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, invoicelineitem.FieldID)
		for _, f := range fields {
			if !invoicelineitem.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != invoicelineitem.FieldID {
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
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(invoicelineitem.FieldDescription, field.TypeString, value)
	}
	if value, ok := _u.mutation.Quantity(); ok {
		_spec.SetField(invoicelineitem.FieldQuantity, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedQuantity(); ok {
		_spec.AddField(invoicelineitem.FieldQuantity, field.TypeInt, value)
	}
	if value, ok := _u.mutation.UnitPrice(); ok {
		_spec.SetField(invoicelineitem.FieldUnitPrice, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedUnitPrice(); ok {
		_spec.AddField(invoicelineitem.FieldUnitPrice, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.TotalPrice(); ok {
		_spec.SetField(invoicelineitem.FieldTotalPrice, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedTotalPrice(); ok {
		_spec.AddField(invoicelineitem.FieldTotalPrice, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.TaxRate(); ok {
		_spec.SetField(invoicelineitem.FieldTaxRate, field.TypeInt32, value)
	}
	if value, ok := _u.mutation.AddedTaxRate(); ok {
		_spec.AddField(invoicelineitem.FieldTaxRate, field.TypeInt32, value)
	}
	if _u.mutation.TaxRateCleared() {
		_spec.ClearField(invoicelineitem.FieldTaxRate, field.TypeInt32)
	}
	if value, ok := _u.mutation.TaxAmount(); ok {
		_spec.SetField(invoicelineitem.FieldTaxAmount, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedTaxAmount(); ok {
		_spec.AddField(invoicelineitem.FieldTaxAmount, field.TypeInt64, value)
	}
	if _u.mutation.TaxAmountCleared() {
		_spec.ClearField(invoicelineitem.FieldTaxAmount, field.TypeInt64)
	}
	if value, ok := _u.mutation.Sku(); ok {
		_spec.SetField(invoicelineitem.FieldSku, field.TypeString, value)
	}
	if _u.mutation.SkuCleared() {
		_spec.ClearField(invoicelineitem.FieldSku, field.TypeString)
	}
	if value, ok := _u.mutation.Category(); ok {
		_spec.SetField(invoicelineitem.FieldCategory, field.TypeString, value)
	}
	if _u.mutation.CategoryCleared() {
		_spec.ClearField(invoicelineitem.FieldCategory, field.TypeString)
	}
	if value, ok := _u.mutation.Position(); ok {
		_spec.SetField(invoicelineitem.FieldPosition, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPosition(); ok {
		_spec.AddField(invoicelineitem.FieldPosition, field.TypeInt, value)
	}
	if _u.mutation.InvoiceCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   invoicelineitem.InvoiceTable,
			Columns: []string{invoicelineitem.InvoiceColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(invoice.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.InvoiceIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   invoicelineitem.InvoiceTable,
			Columns: []string{invoicelineitem.InvoiceColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(invoice.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &InvoiceLineItem{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{invoicelineitem.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
