// Package validation implements the accept/reject decision point between the
// extraction parser and the persistence layer.
package validation

import (
	"fmt"
	"log/slog"
	"math"
	"strings"
	"time"

	"github.com/invoicepilot/invoicepilot/constants"
	"github.com/invoicepilot/invoicepilot/internal/entity"
	"github.com/invoicepilot/invoicepilot/internal/llm"
	"github.com/invoicepilot/invoicepilot/internal/money"
)

// DefaultCurrency is applied when the model omits a currency code.
const DefaultCurrency = "USD"

// arithmeticSlackMinor is the rounding slack, in minor units, allowed between
// quantity*unitPrice and a line's stated totalPrice before a warning is logged.
const arithmeticSlackMinor = 1

// Decision is the gate's outcome: either an accepted, normalized draft ready
// for persistence, or a rejection with ordered human-readable reasons.
// A rejection never reaches storage.
type Decision struct {
	Accepted bool
	Draft    *entity.InvoiceDraft
	Reasons  []string
}

type Gate struct {
	logger *slog.Logger
}

func NewGate(logger *slog.Logger) *Gate {
	if logger == nil {
		logger = slog.Default()
	}
	return &Gate{logger: logger}
}

// Evaluate applies the validation policy in order: the model's own verdict,
// required-field completeness, date ordering, total non-negativity. Line-item
// arithmetic is checked last and is advisory only: real-world invoices round
// line totals in ways a strict check would falsely reject, so mismatches are
// logged, never fatal. The model remains the authority on document validity.
func (g *Gate) Evaluate(res *llm.ExtractionResult) Decision {
	if !strings.EqualFold(res.Validation.Status, "valid") {
		reasons := res.Validation.Errors
		if len(reasons) == 0 {
			// should not normally occur, but the contract requires a reason
			reasons = []string{"Unknown validation error"}
		}
		return Decision{Reasons: reasons}
	}

	data := res.Data
	var reasons []string

	if strings.TrimSpace(data.InvoiceNumber) == "" {
		reasons = append(reasons, "Missing invoice number")
	}
	if strings.TrimSpace(data.IssueDate) == "" {
		reasons = append(reasons, "Missing issue date")
	}
	if strings.TrimSpace(data.DueDate) == "" {
		reasons = append(reasons, "Missing due date")
	}
	if data.TotalAmount == nil {
		reasons = append(reasons, "Missing total amount")
	}
	if strings.TrimSpace(data.CustomerName) == "" {
		reasons = append(reasons, "Missing customer name")
	}
	if strings.TrimSpace(data.VendorName) == "" {
		reasons = append(reasons, "Missing vendor name")
	}
	if len(reasons) > 0 {
		return Decision{Reasons: reasons}
	}

	issueDate, err := parseTimestamp(data.IssueDate)
	if err != nil {
		return Decision{Reasons: []string{fmt.Sprintf("Issue date %q is not a valid timestamp", data.IssueDate)}}
	}
	dueDate, err := parseTimestamp(data.DueDate)
	if err != nil {
		return Decision{Reasons: []string{fmt.Sprintf("Due date %q is not a valid timestamp", data.DueDate)}}
	}
	if dueDate.Before(issueDate) {
		return Decision{Reasons: []string{"Due date is before issue date"}}
	}

	if *data.TotalAmount < 0 {
		return Decision{Reasons: []string{"Total amount is negative"}}
	}
	totalMinor, err := money.ToMinorUnitsFloat(*data.TotalAmount)
	if err != nil {
		return Decision{Reasons: []string{"Total amount is not a usable number"}}
	}

	currency := strings.ToUpper(strings.TrimSpace(data.Currency))
	if currency == "" {
		currency = DefaultCurrency
	}

	draft := &entity.InvoiceDraft{
		InvoiceNumber:   strings.TrimSpace(data.InvoiceNumber),
		IssueDate:       issueDate,
		DueDate:         dueDate,
		TotalAmount:     totalMinor,
		CurrencyCode:    currency,
		CustomerName:    strings.TrimSpace(data.CustomerName),
		CustomerAddress: strings.TrimSpace(data.CustomerAddress),
		CustomerContact: strings.TrimSpace(data.CustomerContact),
		CustomerTaxID:   strings.TrimSpace(data.CustomerTaxID),
		VendorName:      strings.TrimSpace(data.VendorName),
		VendorAddress:   strings.TrimSpace(data.VendorAddress),
		VendorContact:   strings.TrimSpace(data.VendorContact),
		VendorTaxID:     strings.TrimSpace(data.VendorTaxID),
		PaymentTerms:    strings.TrimSpace(data.PaymentTerms),
		Notes:           strings.TrimSpace(data.Notes),
	}

	for i, li := range data.LineItems {
		item, reason := g.normalizeLineItem(i, li)
		if reason != "" {
			return Decision{Reasons: []string{reason}}
		}
		draft.LineItems = append(draft.LineItems, item)
	}

	return Decision{Accepted: true, Draft: draft}
}

func (g *Gate) normalizeLineItem(idx int, li llm.LineItemData) (entity.LineItemDraft, string) {
	item := entity.LineItemDraft{
		Description: strings.TrimSpace(li.Description),
		SKU:         strings.TrimSpace(li.SKU),
	}
	if raw := strings.TrimSpace(li.Category); raw != "" {
		cat, known := constants.Canonicalize(raw)
		if !known {
			g.logger.Debug("unrecognized line item category", "line", idx+1, "category", raw)
		}
		item.Category = string(cat)
	}
	if item.Description == "" {
		return item, fmt.Sprintf("Line item %d has no description", idx+1)
	}

	if li.Quantity != nil {
		item.Quantity = int(math.Round(*li.Quantity))
	}
	if li.UnitPrice != nil {
		minor, err := money.ToMinorUnitsFloat(*li.UnitPrice)
		if err != nil {
			return item, fmt.Sprintf("Line item %d has an invalid unit price", idx+1)
		}
		item.UnitPrice = minor
	}
	if li.TotalPrice != nil {
		minor, err := money.ToMinorUnitsFloat(*li.TotalPrice)
		if err != nil {
			return item, fmt.Sprintf("Line item %d has an invalid total price", idx+1)
		}
		item.TotalPrice = minor
	}
	if li.TaxRate != nil {
		if bps, err := money.BasisPoints(*li.TaxRate); err == nil {
			item.TaxRate = &bps
		}
	}
	if li.TaxAmount != nil {
		if minor, err := money.ToMinorUnitsFloat(*li.TaxAmount); err == nil {
			item.TaxAmount = &minor
		}
	}

	// Advisory arithmetic check only. See Evaluate.
	if li.Quantity != nil && li.UnitPrice != nil && li.TotalPrice != nil {
		expect := int64(item.Quantity) * item.UnitPrice
		diff := expect - item.TotalPrice
		if diff < -arithmeticSlackMinor || diff > arithmeticSlackMinor {
			g.logger.Warn("line item arithmetic mismatch",
				"line", idx+1,
				"quantity", item.Quantity,
				"unit_price_minor", item.UnitPrice,
				"stated_total_minor", item.TotalPrice,
				"computed_total_minor", expect,
			)
		}
	}

	return item, ""
}

func parseTimestamp(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t.UTC(), nil
	}
	// date-only fallback, midnight UTC to match DATE semantics
	t, err := time.ParseInLocation("2006-01-02", s, time.UTC)
	if err != nil {
		return time.Time{}, err
	}
	return t, nil
}
