package llm

import (
	"errors"
	"strings"
	"testing"
)

const fencedValid = "```json\n{\"validation\":{\"status\":\"valid\"},\"data\":{\"invoiceNumber\":\"INV-1\",\"issueDate\":\"2024-01-01T00:00:00.000Z\",\"dueDate\":\"2024-01-15T00:00:00.000Z\",\"totalAmount\":120.50,\"customerName\":\"Acme\",\"vendorName\":\"Bolt Co\",\"lineItems\":[]}}\n```"

func TestParseExtraction_FencedJSON(t *testing.T) {
	res, err := ParseExtraction([]byte(fencedValid))
	if err != nil {
		t.Fatalf("ParseExtraction error: %v", err)
	}
	if res.Validation.Status != "valid" {
		t.Fatalf("expected valid status, got %q", res.Validation.Status)
	}
	if res.Data == nil {
		t.Fatal("expected data payload")
	}
	if res.Data.InvoiceNumber != "INV-1" {
		t.Fatalf("invoice number: got %q", res.Data.InvoiceNumber)
	}
	if res.Data.TotalAmount == nil || *res.Data.TotalAmount != 120.50 {
		t.Fatalf("total amount: got %v", res.Data.TotalAmount)
	}
	if res.Data.VendorName != "Bolt Co" {
		t.Fatalf("vendor: got %q", res.Data.VendorName)
	}
}

func TestParseExtraction_InvalidVerdict(t *testing.T) {
	raw := `{"validation":{"status":"invalid","errors":["Missing total amount"]}}`
	res, err := ParseExtraction([]byte(raw))
	if err != nil {
		t.Fatalf("ParseExtraction error: %v", err)
	}
	if res.Validation.Status != "invalid" {
		t.Fatalf("expected invalid status, got %q", res.Validation.Status)
	}
	if len(res.Validation.Errors) != 1 || res.Validation.Errors[0] != "Missing total amount" {
		t.Fatalf("errors: got %v", res.Validation.Errors)
	}
	if res.Data != nil {
		t.Fatal("invalid verdict should carry no data")
	}
}

func TestParseExtraction_BadJSON(t *testing.T) {
	raw := "the document appears to be a photo of a cat"
	_, err := ParseExtraction([]byte(raw))
	var pe *ParseError
	if !errors.As(err, &pe) {
		t.Fatalf("expected *ParseError, got %v", err)
	}
	if pe.Kind != BadJSON {
		t.Fatalf("expected BadJSON, got %s", pe.Kind)
	}
	if !strings.Contains(pe.Raw, "photo of a cat") {
		t.Fatalf("raw text not attached: %q", pe.Raw)
	}
}

func TestParseExtraction_MalformedSchema(t *testing.T) {
	cases := []struct {
		name string
		raw  string
	}{
		{"missing validation key", `{"data":{"invoiceNumber":"INV-1"}}`},
		{"valid without data", `{"validation":{"status":"valid"}}`},
	}
	for _, tc := range cases {
		_, err := ParseExtraction([]byte(tc.raw))
		var pe *ParseError
		if !errors.As(err, &pe) {
			t.Fatalf("%s: expected *ParseError, got %v", tc.name, err)
		}
		if pe.Kind != MalformedSchema {
			t.Fatalf("%s: expected MalformedSchema, got %s", tc.name, pe.Kind)
		}
	}
}

func TestStripCodeFence(t *testing.T) {
	cases := []struct {
		in       string
		expected string
	}{
		{"```json\n{}\n```", "{}"},
		{"```\n{}\n```", "{}"},
		{"  {}  ", "{}"},
		{"```json\n{\"a\":1}```", `{"a":1}`},
	}
	for _, tc := range cases {
		if got := StripCodeFence(tc.in); got != tc.expected {
			t.Fatalf("StripCodeFence(%q) expected %q, got %q", tc.in, tc.expected, got)
		}
	}
}

func TestValidateJSONAgainstSchema(t *testing.T) {
	schema := BuildInvoiceJSONSchema()
	if err := ValidateJSONAgainstSchema(schema, []byte(StripCodeFence(fencedValid))); err != nil {
		t.Fatalf("expected schema match, got %v", err)
	}
	if err := ValidateJSONAgainstSchema(schema, []byte(`{"data":{}}`)); err == nil {
		t.Fatal("expected schema violation for missing validation")
	}
}
