package pipeline

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/invoicepilot/invoicepilot/internal/entity"
	"github.com/invoicepilot/invoicepilot/internal/llm"
	"github.com/invoicepilot/invoicepilot/internal/validation"
)

const fencedValid = "```json\n{\"validation\":{\"status\":\"valid\"},\"data\":{\"invoiceNumber\":\"INV-1\",\"issueDate\":\"2024-01-01T00:00:00.000Z\",\"dueDate\":\"2024-01-15T00:00:00.000Z\",\"totalAmount\":120.50,\"customerName\":\"Acme\",\"vendorName\":\"Bolt Co\",\"lineItems\":[]}}\n```"

type extractorFunc func(ctx context.Context, req llm.ExtractRequest) ([]byte, error)

func (f extractorFunc) Extract(ctx context.Context, req llm.ExtractRequest) ([]byte, error) {
	return f(ctx, req)
}

type fakeStore struct {
	mu     sync.Mutex
	saved  []*entity.InvoiceDraft
	err    error
}

func (s *fakeStore) Save(_ context.Context, draft *entity.InvoiceDraft) (*entity.Invoice, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return nil, s.err
	}
	s.saved = append(s.saved, draft)
	return &entity.Invoice{ID: uuid.New(), InvoiceNumber: draft.InvoiceNumber}, nil
}

func (s *fakeStore) count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.saved)
}

func doc() llm.ExtractRequest {
	return llm.ExtractRequest{Document: llm.Document{
		Filename:    "invoice.pdf",
		ContentType: "application/pdf",
		Bytes:       []byte("%PDF-1.4"),
	}}
}

func newProcessor(ex llm.Extractor, store InvoiceStore, opts ...Option) *Processor {
	return NewProcessor(nil, ex, validation.NewGate(nil), store, opts...)
}

func TestProcessUpload_Persists(t *testing.T) {
	store := &fakeStore{}
	ex := extractorFunc(func(context.Context, llm.ExtractRequest) ([]byte, error) {
		return []byte(fencedValid), nil
	})
	res := newProcessor(ex, store).ProcessUpload(context.Background(), doc())
	if res.State != StatePersisted {
		t.Fatalf("expected PERSISTED, got %s (%s)", res.State, res.Message)
	}
	if res.InvoiceID == uuid.Nil {
		t.Fatal("expected invoice id in result")
	}
	if store.count() != 1 {
		t.Fatalf("expected 1 save, got %d", store.count())
	}
	draft := store.saved[0]
	if draft.TotalAmount != 12050 {
		t.Fatalf("total minor units: expected 12050, got %d", draft.TotalAmount)
	}
	if draft.CurrencyCode != "USD" {
		t.Fatalf("currency: expected USD default, got %s", draft.CurrencyCode)
	}
	if !strings.Contains(res.Message, "INV-1") {
		t.Fatalf("message should name the invoice: %q", res.Message)
	}
}

func TestProcessUpload_RejectedWritesNothing(t *testing.T) {
	store := &fakeStore{}
	ex := extractorFunc(func(context.Context, llm.ExtractRequest) ([]byte, error) {
		return []byte(`{"validation":{"status":"invalid","errors":["Missing total amount"]}}`), nil
	})
	res := newProcessor(ex, store).ProcessUpload(context.Background(), doc())
	if res.State != StateRejected {
		t.Fatalf("expected REJECTED, got %s", res.State)
	}
	if len(res.Reasons) != 1 || res.Reasons[0] != "Missing total amount" {
		t.Fatalf("reasons: got %v", res.Reasons)
	}
	if store.count() != 0 {
		t.Fatal("rejected upload must not be persisted")
	}
}

func TestProcessUpload_ParseFailure(t *testing.T) {
	store := &fakeStore{}
	ex := extractorFunc(func(context.Context, llm.ExtractRequest) ([]byte, error) {
		return []byte("this is not an invoice, it is prose"), nil
	})
	res := newProcessor(ex, store).ProcessUpload(context.Background(), doc())
	if res.State != StateParseFailed {
		t.Fatalf("expected PARSE_FAILED, got %s", res.State)
	}
	if store.count() != 0 {
		t.Fatal("parse failure must not be persisted")
	}
}

func TestProcessUpload_ExtractionError(t *testing.T) {
	store := &fakeStore{}
	ex := extractorFunc(func(context.Context, llm.ExtractRequest) ([]byte, error) {
		return nil, errors.New("provider 500")
	})
	res := newProcessor(ex, store).ProcessUpload(context.Background(), doc())
	if res.State != StateExtractionFailed {
		t.Fatalf("expected EXTRACTION_FAILED, got %s", res.State)
	}
	if store.count() != 0 {
		t.Fatal("extraction failure must not be persisted")
	}
}

func TestProcessUpload_PersistenceFailure(t *testing.T) {
	store := &fakeStore{err: errors.New("disk on fire")}
	ex := extractorFunc(func(context.Context, llm.ExtractRequest) ([]byte, error) {
		return []byte(fencedValid), nil
	})
	res := newProcessor(ex, store).ProcessUpload(context.Background(), doc())
	if res.State != StatePersistenceFailed {
		t.Fatalf("expected PERSISTENCE_FAILED, got %s", res.State)
	}
}

func TestProcessUpload_TimeoutDiscardsLateResult(t *testing.T) {
	store := &fakeStore{}
	release := make(chan struct{})
	done := make(chan struct{})
	ex := extractorFunc(func(context.Context, llm.ExtractRequest) ([]byte, error) {
		defer close(done)
		<-release
		// a perfectly valid payload arriving after the timeout
		return []byte(fencedValid), nil
	})

	p := newProcessor(ex, store, WithExtractTimeout(20*time.Millisecond))
	res := p.ProcessUpload(context.Background(), doc())
	if res.State != StateTimedOut {
		t.Fatalf("expected TIMED_OUT, got %s", res.State)
	}
	if res.Message == "" {
		t.Fatal("timeout must produce a user-facing message")
	}

	// let the in-flight call complete late and verify nothing is written
	close(release)
	<-done
	time.Sleep(50 * time.Millisecond)
	if store.count() != 0 {
		t.Fatal("late extraction result must never be persisted after a timeout report")
	}
}
