package validation

import (
	"strings"
	"testing"
	"time"

	"github.com/invoicepilot/invoicepilot/internal/llm"
)

func f(v float64) *float64 { return &v }

func validData() *llm.InvoiceData {
	return &llm.InvoiceData{
		InvoiceNumber: "INV-1",
		IssueDate:     "2024-01-01T00:00:00.000Z",
		DueDate:       "2024-01-15T00:00:00.000Z",
		TotalAmount:   f(120.50),
		CustomerName:  "Acme",
		VendorName:    "Bolt Co",
	}
}

func TestEvaluate_ModelInvalidVerdict(t *testing.T) {
	gate := NewGate(nil)
	d := gate.Evaluate(&llm.ExtractionResult{
		Validation: llm.Verdict{Status: "invalid", Errors: []string{"Missing total amount"}},
	})
	if d.Accepted {
		t.Fatal("invalid verdict must be rejected")
	}
	if len(d.Reasons) != 1 || d.Reasons[0] != "Missing total amount" {
		t.Fatalf("reasons: got %v", d.Reasons)
	}
	if d.Draft != nil {
		t.Fatal("rejection must carry no draft")
	}
}

func TestEvaluate_InvalidVerdictWithoutErrors(t *testing.T) {
	gate := NewGate(nil)
	d := gate.Evaluate(&llm.ExtractionResult{Validation: llm.Verdict{Status: "invalid"}})
	if d.Accepted {
		t.Fatal("expected rejection")
	}
	if len(d.Reasons) != 1 || d.Reasons[0] != "Unknown validation error" {
		t.Fatalf("expected fallback reason, got %v", d.Reasons)
	}
}

func TestEvaluate_MissingRequiredFields(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*llm.InvoiceData)
		want   string
	}{
		{"invoice number", func(d *llm.InvoiceData) { d.InvoiceNumber = "" }, "invoice number"},
		{"issue date", func(d *llm.InvoiceData) { d.IssueDate = "" }, "issue date"},
		{"due date", func(d *llm.InvoiceData) { d.DueDate = "" }, "due date"},
		{"total amount", func(d *llm.InvoiceData) { d.TotalAmount = nil }, "total amount"},
		{"customer name", func(d *llm.InvoiceData) { d.CustomerName = "" }, "customer name"},
		{"vendor name", func(d *llm.InvoiceData) { d.VendorName = "" }, "vendor name"},
	}
	gate := NewGate(nil)
	for _, tc := range cases {
		data := validData()
		tc.mutate(data)
		d := gate.Evaluate(&llm.ExtractionResult{
			Validation: llm.Verdict{Status: "valid"},
			Data:       data,
		})
		if d.Accepted {
			t.Fatalf("%s: expected rejection", tc.name)
		}
		found := false
		for _, r := range d.Reasons {
			if strings.Contains(strings.ToLower(r), tc.want) {
				found = true
			}
		}
		if !found {
			t.Fatalf("%s: expected a reason naming the field, got %v", tc.name, d.Reasons)
		}
	}
}

func TestEvaluate_DueDateBeforeIssueDate(t *testing.T) {
	data := validData()
	data.IssueDate = "2024-02-01T00:00:00Z"
	data.DueDate = "2024-01-15T00:00:00Z"
	d := NewGate(nil).Evaluate(&llm.ExtractionResult{
		Validation: llm.Verdict{Status: "valid"},
		Data:       data,
	})
	if d.Accepted {
		t.Fatal("expected rejection for due date before issue date")
	}
}

func TestEvaluate_AcceptNormalizes(t *testing.T) {
	data := validData()
	data.LineItems = []llm.LineItemData{
		{Description: "Widget", Quantity: f(2), UnitPrice: f(10.25), TotalPrice: f(20.50), TaxRate: f(20), SKU: "W-1"},
	}
	d := NewGate(nil).Evaluate(&llm.ExtractionResult{
		Validation: llm.Verdict{Status: "valid"},
		Data:       data,
	})
	if !d.Accepted {
		t.Fatalf("expected accept, got reasons %v", d.Reasons)
	}
	draft := d.Draft
	if draft.TotalAmount != 12050 {
		t.Fatalf("total minor units: expected 12050, got %d", draft.TotalAmount)
	}
	if draft.CurrencyCode != "USD" {
		t.Fatalf("currency default: expected USD, got %s", draft.CurrencyCode)
	}
	want := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	if !draft.IssueDate.Equal(want) {
		t.Fatalf("issue date: got %v", draft.IssueDate)
	}
	if len(draft.LineItems) != 1 {
		t.Fatalf("line items: got %d", len(draft.LineItems))
	}
	li := draft.LineItems[0]
	if li.Quantity != 2 || li.UnitPrice != 1025 || li.TotalPrice != 2050 {
		t.Fatalf("line normalization: got %+v", li)
	}
	if li.TaxRate == nil || *li.TaxRate != 2000 {
		t.Fatalf("tax rate basis points: got %v", li.TaxRate)
	}
}

func TestEvaluate_ArithmeticMismatchIsAdvisory(t *testing.T) {
	data := validData()
	data.LineItems = []llm.LineItemData{
		// 3 * 9.99 = 29.97 but stated total 30.00; mismatch must not reject
		{Description: "Rounded line", Quantity: f(3), UnitPrice: f(9.99), TotalPrice: f(30.00)},
	}
	d := NewGate(nil).Evaluate(&llm.ExtractionResult{
		Validation: llm.Verdict{Status: "valid"},
		Data:       data,
	})
	if !d.Accepted {
		t.Fatalf("arithmetic mismatch must be advisory, got reasons %v", d.Reasons)
	}
}

func TestEvaluate_CategoryCanonicalized(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"saas", "Subscription"},
		{"Freight", "Shipping"},
		{"software", "Software"},
		{"mystery", "Other"},
		{"", ""},
	}
	gate := NewGate(nil)
	for _, tc := range cases {
		data := validData()
		data.LineItems = []llm.LineItemData{
			{Description: "Line", Category: tc.in},
		}
		d := gate.Evaluate(&llm.ExtractionResult{
			Validation: llm.Verdict{Status: "valid"},
			Data:       data,
		})
		if !d.Accepted {
			t.Fatalf("category %q: expected accept, got %v", tc.in, d.Reasons)
		}
		if got := d.Draft.LineItems[0].Category; got != tc.want {
			t.Fatalf("category %q: expected %q, got %q", tc.in, tc.want, got)
		}
	}
}

func TestEvaluate_DateOnlyTolerated(t *testing.T) {
	data := validData()
	data.IssueDate = "2024-01-01"
	data.DueDate = "2024-01-15"
	d := NewGate(nil).Evaluate(&llm.ExtractionResult{
		Validation: llm.Verdict{Status: "valid"},
		Data:       data,
	})
	if !d.Accepted {
		t.Fatalf("expected accept for date-only timestamps, got %v", d.Reasons)
	}
}
