package repository

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/invoicepilot/invoicepilot/constants"
	"github.com/invoicepilot/invoicepilot/gen/ent"
	"github.com/invoicepilot/invoicepilot/gen/ent/invoice"
	"github.com/invoicepilot/invoicepilot/gen/ent/invoicelineitem"
	"github.com/invoicepilot/invoicepilot/internal/common"
	"github.com/invoicepilot/invoicepilot/internal/entity"
	"github.com/invoicepilot/invoicepilot/internal/utils"
)

// ListFilter narrows List results; nil fields mean no constraint.
type ListFilter struct {
	Status    *string
	IssueFrom *time.Time
	IssueTo   *time.Time
}

// InvoiceRepository is the persistence boundary for invoices and their line
// items. Save is atomic: either the invoice row and every line item land, or
// nothing does.
type InvoiceRepository interface {
	Save(ctx context.Context, draft *entity.InvoiceDraft) (*entity.Invoice, error)
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Invoice, error)
	ListLineItems(ctx context.Context, invoiceID uuid.UUID) ([]*entity.InvoiceLineItem, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status constants.InvoiceStatus, procErrors []string) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, filter ListFilter) ([]*entity.Invoice, error)
}

type invoiceRepository struct {
	client *ent.Client
	logger *slog.Logger
}

func NewInvoiceRepository(client *ent.Client, logger *slog.Logger) InvoiceRepository {
	if logger == nil {
		logger = slog.Default()
	}
	return &invoiceRepository{client: client, logger: logger}
}

func rollback(tx *ent.Tx, err error) error {
	if rerr := tx.Rollback(); rerr != nil {
		err = fmt.Errorf("%w: rolling back transaction: %v", err, rerr)
	}
	return err
}

func (r *invoiceRepository) Save(ctx context.Context, draft *entity.InvoiceDraft) (*entity.Invoice, error) {
	tx, err := r.client.Tx(ctx)
	if err != nil {
		r.logger.Error("begin save transaction failed", "error", err)
		return nil, fmt.Errorf("%w: begin tx: %v", common.ErrPersistence, err)
	}

	builder := tx.Invoice.Create().
		SetInvoiceNumber(draft.InvoiceNumber).
		SetIssueDate(draft.IssueDate).
		SetDueDate(draft.DueDate).
		SetTotalAmount(draft.TotalAmount).
		SetCurrencyCode(draft.CurrencyCode).
		SetStatus(string(constants.InvoiceStatusValidated)).
		SetCustomerName(draft.CustomerName).
		SetVendorName(draft.VendorName)

	if draft.CustomerAddress != "" {
		builder = builder.SetCustomerAddress(draft.CustomerAddress)
	}
	if draft.CustomerContact != "" {
		builder = builder.SetCustomerContact(draft.CustomerContact)
	}
	if draft.CustomerTaxID != "" {
		builder = builder.SetCustomerTaxID(draft.CustomerTaxID)
	}
	if draft.VendorAddress != "" {
		builder = builder.SetVendorAddress(draft.VendorAddress)
	}
	if draft.VendorContact != "" {
		builder = builder.SetVendorContact(draft.VendorContact)
	}
	if draft.VendorTaxID != "" {
		builder = builder.SetVendorTaxID(draft.VendorTaxID)
	}
	if draft.PaymentTerms != "" {
		builder = builder.SetPaymentTerms(draft.PaymentTerms)
	}
	if draft.Notes != "" {
		builder = builder.SetNotes(draft.Notes)
	}
	if draft.SourceFile != "" {
		builder = builder.SetSourceFile(draft.SourceFile)
	}

	inv, err := builder.Save(ctx)
	if err != nil {
		r.logger.Error("invoice insert failed", "invoice_number", draft.InvoiceNumber, "error", err)
		return nil, fmt.Errorf("%w: insert invoice: %v", common.ErrPersistence, rollback(tx, err))
	}

	for i, li := range draft.LineItems {
		create := tx.InvoiceLineItem.Create().
			SetInvoiceID(inv.ID).
			SetDescription(li.Description).
			SetQuantity(li.Quantity).
			SetUnitPrice(li.UnitPrice).
			SetTotalPrice(li.TotalPrice).
			SetPosition(i)
		if li.TaxRate != nil {
			create = create.SetTaxRate(*li.TaxRate)
		}
		if li.TaxAmount != nil {
			create = create.SetTaxAmount(*li.TaxAmount)
		}
		if li.SKU != "" {
			create = create.SetSku(li.SKU)
		}
		if li.Category != "" {
			create = create.SetCategory(li.Category)
		}
		if _, err := create.Save(ctx); err != nil {
			r.logger.Error("line item insert failed",
				"invoice_id", inv.ID, "position", i, "error", err)
			return nil, fmt.Errorf("%w: insert line item %d: %v", common.ErrPersistence, i, rollback(tx, err))
		}
	}

	if err := tx.Commit(); err != nil {
		r.logger.Error("save commit failed", "invoice_id", inv.ID, "error", err)
		return nil, fmt.Errorf("%w: commit: %v", common.ErrPersistence, err)
	}

	r.logger.Info("invoice saved",
		"invoice_id", inv.ID,
		"invoice_number", inv.InvoiceNumber,
		"total_minor", inv.TotalAmount,
		"currency", inv.CurrencyCode,
		"line_items", len(draft.LineItems),
	)
	return utils.ToInvoice(inv), nil
}

func (r *invoiceRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Invoice, error) {
	inv, err := r.client.Invoice.Get(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, fmt.Errorf("%w: invoice %s", common.ErrNotFound, id)
		}
		r.logger.Error("get invoice failed", "invoice_id", id, "error", err)
		return nil, fmt.Errorf("%w: get invoice: %v", common.ErrPersistence, err)
	}
	return utils.ToInvoice(inv), nil
}

func (r *invoiceRepository) ListLineItems(ctx context.Context, invoiceID uuid.UUID) ([]*entity.InvoiceLineItem, error) {
	rows, err := r.client.InvoiceLineItem.Query().
		Where(invoicelineitem.InvoiceID(invoiceID)).
		Order(invoicelineitem.ByPosition()).
		All(ctx)
	if err != nil {
		r.logger.Error("list line items failed", "invoice_id", invoiceID, "error", err)
		return nil, fmt.Errorf("%w: list line items: %v", common.ErrPersistence, err)
	}
	result := make([]*entity.InvoiceLineItem, len(rows))
	for i, row := range rows {
		result[i] = utils.ToLineItem(row)
	}
	return result, nil
}

func (r *invoiceRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status constants.InvoiceStatus, procErrors []string) error {
	update := r.client.Invoice.UpdateOneID(id).SetStatus(string(status))
	if status == constants.InvoiceStatusInvalid {
		update = update.SetProcessingErrors(procErrors)
	} else {
		// stale errors must not survive a move out of "invalid"
		update = update.ClearProcessingErrors()
	}
	if _, err := update.Save(ctx); err != nil {
		if ent.IsNotFound(err) {
			return fmt.Errorf("%w: invoice %s", common.ErrNotFound, id)
		}
		r.logger.Error("update status failed", "invoice_id", id, "status", status, "error", err)
		return fmt.Errorf("%w: update status: %v", common.ErrPersistence, err)
	}
	r.logger.Info("invoice status updated", "invoice_id", id, "status", status)
	return nil
}

func (r *invoiceRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tx, err := r.client.Tx(ctx)
	if err != nil {
		return fmt.Errorf("%w: begin tx: %v", common.ErrPersistence, err)
	}
	// explicit cascade; the FK constraint also cascades at the DB level
	if _, err := tx.InvoiceLineItem.Delete().
		Where(invoicelineitem.InvoiceID(id)).
		Exec(ctx); err != nil {
		return fmt.Errorf("%w: delete line items: %v", common.ErrPersistence, rollback(tx, err))
	}
	if err := tx.Invoice.DeleteOneID(id).Exec(ctx); err != nil {
		notFound := ent.IsNotFound(err)
		err = rollback(tx, err)
		if notFound {
			return fmt.Errorf("%w: invoice %s", common.ErrNotFound, id)
		}
		return fmt.Errorf("%w: delete invoice: %v", common.ErrPersistence, err)
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("%w: commit: %v", common.ErrPersistence, err)
	}
	r.logger.Info("invoice deleted", "invoice_id", id)
	return nil
}

func (r *invoiceRepository) List(ctx context.Context, filter ListFilter) ([]*entity.Invoice, error) {
	q := r.client.Invoice.Query()
	if filter.Status != nil {
		q = q.Where(invoice.Status(*filter.Status))
	}
	if filter.IssueFrom != nil {
		q = q.Where(invoice.IssueDateGTE(*filter.IssueFrom))
	}
	if filter.IssueTo != nil {
		q = q.Where(invoice.IssueDateLTE(*filter.IssueTo))
	}
	rows, err := q.Order(invoice.ByCreatedAt()).All(ctx)
	if err != nil {
		r.logger.Error("list invoices failed", "error", err)
		return nil, fmt.Errorf("%w: list invoices: %v", common.ErrPersistence, err)
	}
	result := make([]*entity.Invoice, len(rows))
	for i, row := range rows {
		result[i] = utils.ToInvoice(row)
	}
	return result, nil
}
