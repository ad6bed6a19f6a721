// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// Invoice is the predicate function for invoice builders.
type Invoice func(*sql.Selector)

// InvoiceLineItem is the predicate function for invoicelineitem builders.
type InvoiceLineItem func(*sql.Selector)
