package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/invoicepilot/invoicepilot/constants"
	"github.com/invoicepilot/invoicepilot/gen/ent"
	"github.com/invoicepilot/invoicepilot/gen/ent/enttest"
	"github.com/invoicepilot/invoicepilot/internal/common"
	"github.com/invoicepilot/invoicepilot/internal/entity"
)

func openTestClient(t *testing.T) *ent.Client {
	t.Helper()
	client := enttest.Open(t, "sqlite3", "file:"+t.Name()+"?mode=memory&cache=shared")
	t.Cleanup(func() { _ = client.Close() })
	return client
}

func sampleDraft() *entity.InvoiceDraft {
	taxRate := int32(2000)
	taxAmount := int64(410)
	return &entity.InvoiceDraft{
		InvoiceNumber: "INV-1",
		IssueDate:     time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		DueDate:       time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC),
		TotalAmount:   12050,
		CurrencyCode:  "USD",
		CustomerName:  "Acme",
		VendorName:    "Bolt Co",
		PaymentTerms:  "Net 14",
		LineItems: []entity.LineItemDraft{
			{Description: "Widget", Quantity: 2, UnitPrice: 1025, TotalPrice: 2050, TaxRate: &taxRate, TaxAmount: &taxAmount, SKU: "W-1"},
			{Description: "Assembly", Quantity: 1, UnitPrice: 10000, TotalPrice: 10000},
		},
	}
}

func TestSave_RoundTrip(t *testing.T) {
	ctx := context.Background()
	repo := NewInvoiceRepository(openTestClient(t), nil)

	draft := sampleDraft()
	saved, err := repo.Save(ctx, draft)
	if err != nil {
		t.Fatalf("Save: %v", err)
	}
	if saved.ID == uuid.Nil {
		t.Fatal("expected generated id")
	}
	if saved.Status != string(constants.InvoiceStatusValidated) {
		t.Fatalf("status: expected validated, got %s", saved.Status)
	}

	got, err := repo.GetByID(ctx, saved.ID)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if got.InvoiceNumber != draft.InvoiceNumber ||
		got.TotalAmount != draft.TotalAmount ||
		got.CurrencyCode != draft.CurrencyCode ||
		got.CustomerName != draft.CustomerName ||
		got.VendorName != draft.VendorName {
		t.Fatalf("round trip mismatch: %+v", got)
	}
	if !got.IssueDate.Equal(draft.IssueDate) || !got.DueDate.Equal(draft.DueDate) {
		t.Fatalf("date mismatch: issue=%v due=%v", got.IssueDate, got.DueDate)
	}

	items, err := repo.ListLineItems(ctx, saved.ID)
	if err != nil {
		t.Fatalf("ListLineItems: %v", err)
	}
	if len(items) != 2 {
		t.Fatalf("expected 2 line items, got %d", len(items))
	}
	// insertion order
	if items[0].Description != "Widget" || items[1].Description != "Assembly" {
		t.Fatalf("line item order: %s, %s", items[0].Description, items[1].Description)
	}
	if items[0].UnitPrice != 1025 || items[0].TotalPrice != 2050 {
		t.Fatalf("line item amounts: %+v", items[0])
	}
	if items[0].TaxRate == nil || *items[0].TaxRate != 2000 {
		t.Fatalf("tax rate: %v", items[0].TaxRate)
	}
}

func TestSave_AtomicOnLineItemFailure(t *testing.T) {
	ctx := context.Background()
	client := openTestClient(t)
	repo := NewInvoiceRepository(client, nil)

	draft := sampleDraft()
	// empty description violates the schema and must fail the whole save
	draft.LineItems[1].Description = ""

	if _, err := repo.Save(ctx, draft); err == nil {
		t.Fatal("expected save to fail")
	} else if !errors.Is(err, common.ErrPersistence) {
		t.Fatalf("expected ErrPersistence, got %v", err)
	}

	if n := client.Invoice.Query().CountX(ctx); n != 0 {
		t.Fatalf("expected no invoice rows after rollback, got %d", n)
	}
	if n := client.InvoiceLineItem.Query().CountX(ctx); n != 0 {
		t.Fatalf("expected no line item rows after rollback, got %d", n)
	}
}

func TestUpdateStatus_ErrorsLifecycle(t *testing.T) {
	ctx := context.Background()
	repo := NewInvoiceRepository(openTestClient(t), nil)

	saved, err := repo.Save(ctx, sampleDraft())
	if err != nil {
		t.Fatalf("Save: %v", err)
	}

	procErrors := []string{"total does not match line items"}
	if err := repo.UpdateStatus(ctx, saved.ID, constants.InvoiceStatusInvalid, procErrors); err != nil {
		t.Fatalf("UpdateStatus(invalid): %v", err)
	}
	got, _ := repo.GetByID(ctx, saved.ID)
	if got.Status != string(constants.InvoiceStatusInvalid) {
		t.Fatalf("status: got %s", got.Status)
	}
	if len(got.ProcessingErrors) != 1 || got.ProcessingErrors[0] != procErrors[0] {
		t.Fatalf("processing errors: got %v", got.ProcessingErrors)
	}

	// moving out of invalid clears stale errors
	if err := repo.UpdateStatus(ctx, saved.ID, constants.InvoiceStatusProcessed, nil); err != nil {
		t.Fatalf("UpdateStatus(processed): %v", err)
	}
	got, _ = repo.GetByID(ctx, saved.ID)
	if got.Status != string(constants.InvoiceStatusProcessed) {
		t.Fatalf("status: got %s", got.Status)
	}
	if len(got.ProcessingErrors) != 0 {
		t.Fatalf("expected cleared processing errors, got %v", got.ProcessingErrors)
	}
}

func TestUpdateStatus_NotFound(t *testing.T) {
	repo := NewInvoiceRepository(openTestClient(t), nil)
	err := repo.UpdateStatus(context.Background(), uuid.New(), constants.InvoiceStatusProcessed, nil)
	if !errors.Is(err, common.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestDelete_Cascades(t *testing.T) {
	ctx := context.Background()
	client := openTestClient(t)
	repo := NewInvoiceRepository(client, nil)

	saved, err := repo.Save(ctx, sampleDraft())
	if err != nil {
		t.Fatalf("Save: %v", err)
	}
	if err := repo.Delete(ctx, saved.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, err := repo.GetByID(ctx, saved.ID); !errors.Is(err, common.ErrNotFound) {
		t.Fatalf("expected ErrNotFound after delete, got %v", err)
	}
	if n := client.InvoiceLineItem.Query().CountX(ctx); n != 0 {
		t.Fatalf("expected no orphaned line items, got %d", n)
	}
}
