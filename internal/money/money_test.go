package money

import (
	"errors"
	"math"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/invoicepilot/invoicepilot/internal/common"
)

func TestToMinorUnits_RoundTrip(t *testing.T) {
	// Amounts with at most two fractional digits must survive the
	// minor-units round trip exactly.
	cases := []string{"0", "0.01", "1", "12.34", "120.50", "999999.99", "0.1", "7.5"}
	for _, tc := range cases {
		d, err := decimal.NewFromString(tc)
		if err != nil {
			t.Fatalf("NewFromString(%q): %v", tc, err)
		}
		minor, err := ToMinorUnits(d)
		if err != nil {
			t.Fatalf("ToMinorUnits(%s) error: %v", tc, err)
		}
		back := ToDecimal(minor)
		if !back.Equal(d) {
			t.Fatalf("round trip %s -> %d -> %s", tc, minor, back.String())
		}
	}
}

func TestToMinorUnits_Rounding(t *testing.T) {
	cases := []struct {
		in       string
		expected int64
	}{
		{"1.005", 101}, // half rounds away from zero
		{"1.004", 100},
		{"1.0049", 100},
		{"2.675", 268},
		{"0.001", 0},
	}
	for _, tc := range cases {
		d, _ := decimal.NewFromString(tc.in)
		minor, err := ToMinorUnits(d)
		if err != nil {
			t.Fatalf("ToMinorUnits(%s) error: %v", tc.in, err)
		}
		if minor != tc.expected {
			t.Fatalf("ToMinorUnits(%s) expected %d, got %d", tc.in, tc.expected, minor)
		}
	}
}

func TestToMinorUnitsFloat_Invalid(t *testing.T) {
	for _, f := range []float64{math.NaN(), math.Inf(1), math.Inf(-1), -0.01, -100} {
		if _, err := ToMinorUnitsFloat(f); !errors.Is(err, common.ErrInvalidAmount) {
			t.Fatalf("ToMinorUnitsFloat(%v) expected ErrInvalidAmount, got %v", f, err)
		}
	}
}

func TestToMinorUnitsFloat_TwoDecimalAmount(t *testing.T) {
	minor, err := ToMinorUnitsFloat(120.50)
	if err != nil {
		t.Fatalf("ToMinorUnitsFloat(120.50) error: %v", err)
	}
	if minor != 12050 {
		t.Fatalf("ToMinorUnitsFloat(120.50) expected 12050, got %d", minor)
	}
}

func TestBasisPoints(t *testing.T) {
	bps, err := BasisPoints(20.0)
	if err != nil {
		t.Fatalf("BasisPoints(20.0) error: %v", err)
	}
	if bps != 2000 {
		t.Fatalf("BasisPoints(20.0) expected 2000, got %d", bps)
	}
	if _, err := BasisPoints(-5); !errors.Is(err, common.ErrInvalidAmount) {
		t.Fatalf("BasisPoints(-5) expected ErrInvalidAmount, got %v", err)
	}
}

func TestFormatMinor(t *testing.T) {
	if got := FormatMinor(12050); got != "120.50" {
		t.Fatalf("FormatMinor(12050) expected 120.50, got %s", got)
	}
	if got := FormatMinor(7); got != "0.07" {
		t.Fatalf("FormatMinor(7) expected 0.07, got %s", got)
	}
}
