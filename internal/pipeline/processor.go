// Package pipeline sequences one upload through extraction, parsing, the
// validation gate and persistence, bounded by a wall-clock timeout.
package pipeline

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync/atomic"
	"time"

	"github.com/google/uuid"

	"github.com/invoicepilot/invoicepilot/internal/entity"
	"github.com/invoicepilot/invoicepilot/internal/llm"
	"github.com/invoicepilot/invoicepilot/internal/validation"
)

// State is a terminal orchestration outcome. Every state produces exactly one
// user-visible message.
type State string

const (
	StatePersisted         State = "PERSISTED"
	StateRejected          State = "REJECTED"
	StateParseFailed       State = "PARSE_FAILED"
	StateTimedOut          State = "TIMED_OUT"
	StateExtractionFailed  State = "EXTRACTION_FAILED"
	StatePersistenceFailed State = "PERSISTENCE_FAILED"
)

// Result is what the caller renders back to the user: one terminal state and
// one message. InvoiceID is set only for StatePersisted.
type Result struct {
	State     State
	Message   string
	InvoiceID uuid.UUID
	Reasons   []string
}

// InvoiceStore is the slice of the persistence service the orchestrator
// needs. Rejections never touch it.
type InvoiceStore interface {
	Save(ctx context.Context, draft *entity.InvoiceDraft) (*entity.Invoice, error)
}

// Processor coordinates one upload end to end. It holds no per-request state;
// concurrent uploads share nothing but the store.
type Processor struct {
	logger    *slog.Logger
	extractor llm.Extractor
	gate      *validation.Gate
	store     InvoiceStore
	timeout   time.Duration
}

type Option func(*Processor)

// WithExtractTimeout overrides the default 30s extraction bound.
func WithExtractTimeout(d time.Duration) Option {
	return func(p *Processor) {
		if d > 0 {
			p.timeout = d
		}
	}
}

func NewProcessor(logger *slog.Logger, extractor llm.Extractor, gate *validation.Gate, store InvoiceStore, opts ...Option) *Processor {
	if logger == nil {
		logger = slog.Default()
	}
	p := &Processor{
		logger:    logger,
		extractor: extractor,
		gate:      gate,
		store:     store,
		timeout:   30 * time.Second,
	}
	for _, o := range opts {
		o(p)
	}
	return p
}

type extractOut struct {
	raw []byte
	err error
}

// ProcessUpload runs the state machine for one uploaded document:
// Received -> Extracting -> {Parsed -> Validating -> {Accepted -> Persisted |
// Rejected}} | TimedOut | ExtractionFailed. The extraction call races the
// timeout; once either side resolves the request, the loser's outcome is
// discarded. In particular a late-arriving extraction result can never cause
// a save after a timeout has been reported: persistence only runs on the
// winning receive below, and the resolved flag keeps the background
// goroutine from treating its late result as anything but noise.
func (p *Processor) ProcessUpload(ctx context.Context, req llm.ExtractRequest) Result {
	reqID := uuid.New().String()
	start := time.Now()
	p.logger.Info("upload received",
		"req_id", reqID,
		"filename", req.Document.Filename,
		"content_type", req.Document.ContentType,
		"bytes", len(req.Document.Bytes),
	)

	var resolved atomic.Bool
	ch := make(chan extractOut, 1)

	// The provider call is not cancelled on timeout; timeout is advisory to
	// the user, so the call runs on a context that survives this request.
	callCtx := context.WithoutCancel(ctx)
	go func() {
		raw, err := p.extractor.Extract(callCtx, req)
		if resolved.Load() {
			p.logger.Warn("late extraction result discarded",
				"req_id", reqID,
				"error", err,
				"elapsed_ms", time.Since(start).Milliseconds(),
			)
			return
		}
		ch <- extractOut{raw: raw, err: err}
	}()

	timer := time.NewTimer(p.timeout)
	defer timer.Stop()

	var out extractOut
	select {
	case <-timer.C:
		resolved.Store(true)
		p.logger.Error("extraction timed out",
			"req_id", reqID, "timeout", p.timeout,
		)
		return Result{
			State:   StateTimedOut,
			Message: fmt.Sprintf("Invoice processing timed out after %s. Please try again.", p.timeout),
		}
	case <-ctx.Done():
		resolved.Store(true)
		p.logger.Error("request context cancelled during extraction",
			"req_id", reqID, "error", ctx.Err(),
		)
		return Result{
			State:   StateExtractionFailed,
			Message: "Invoice processing was interrupted. Please try again.",
		}
	case out = <-ch:
		resolved.Store(true)
	}

	if out.err != nil {
		p.logger.Error("extraction failed",
			"req_id", reqID, "error", out.err,
			"elapsed_ms", time.Since(start).Milliseconds(),
		)
		return Result{
			State:   StateExtractionFailed,
			Message: "The extraction service is unavailable right now. Please try again later.",
		}
	}

	res, err := llm.ParseExtraction(out.raw)
	if err != nil {
		var pe *llm.ParseError
		if errors.As(err, &pe) {
			// raw text stays in the logs for diagnostics, never in the reply
			p.logger.Error("unparseable extraction response",
				"req_id", reqID, "kind", pe.Kind, "raw", pe.Raw,
			)
		} else {
			p.logger.Error("unparseable extraction response", "req_id", reqID, "error", err)
		}
		return Result{
			State:   StateParseFailed,
			Message: "The extraction service returned an unreadable response. Please try again.",
		}
	}

	decision := p.gate.Evaluate(res)
	if !decision.Accepted {
		p.logger.Info("invoice rejected",
			"req_id", reqID,
			"reasons", decision.Reasons,
			"elapsed_ms", time.Since(start).Milliseconds(),
		)
		return Result{
			State:   StateRejected,
			Message: "The document was not accepted as a valid invoice: " + strings.Join(decision.Reasons, "; "),
			Reasons: decision.Reasons,
		}
	}

	draft := decision.Draft
	draft.SourceFile = req.Document.Filename
	saved, err := p.store.Save(ctx, draft)
	if err != nil {
		p.logger.Error("invoice persistence failed",
			"req_id", reqID, "invoice_number", draft.InvoiceNumber, "error", err,
		)
		return Result{
			State:   StatePersistenceFailed,
			Message: "The invoice was read successfully but could not be saved. Please try again.",
		}
	}

	p.logger.Info("invoice persisted",
		"req_id", reqID,
		"invoice_id", saved.ID,
		"invoice_number", saved.InvoiceNumber,
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return Result{
		State:     StatePersisted,
		Message:   fmt.Sprintf("Invoice %s saved with ID %s.", saved.InvoiceNumber, saved.ID),
		InvoiceID: saved.ID,
	}
}
