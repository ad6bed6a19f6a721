// Package money converts between decimal currency amounts and their integer
// minor-unit (cent) representation. Nothing downstream of this package ever
// stores a floating-point currency value.
package money

import (
	"fmt"
	"math"

	"github.com/shopspring/decimal"

	"github.com/invoicepilot/invoicepilot/internal/common"
)

var hundred = decimal.NewFromInt(100)

// ToMinorUnits converts a decimal amount to integer minor units, rounding
// half away from zero (decimal.Round semantics). Negative amounts are
// rejected; monetary fields in this system are non-negative.
func ToMinorUnits(d decimal.Decimal) (int64, error) {
	if d.IsNegative() {
		return 0, fmt.Errorf("%w: negative amount %s", common.ErrInvalidAmount, d.String())
	}
	return d.Mul(hundred).Round(0).IntPart(), nil
}

// ToMinorUnitsFloat is ToMinorUnits for raw float64 input as decoded from a
// JSON number. NaN and infinities are rejected before conversion.
func ToMinorUnitsFloat(f float64) (int64, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, fmt.Errorf("%w: non-finite amount", common.ErrInvalidAmount)
	}
	return ToMinorUnits(decimal.NewFromFloat(f))
}

// ToDecimal converts minor units back to a decimal amount (minor / 100).
// Exact inverse of ToMinorUnits for inputs with at most two fractional
// digits; anything finer was already rounded away on the way in.
func ToDecimal(minor int64) decimal.Decimal {
	return decimal.New(minor, -2)
}

// BasisPoints converts a percentage (20.00 meaning 20%) to integer basis
// points (2000), with the same rounding and negativity rules as ToMinorUnits.
func BasisPoints(percent float64) (int32, error) {
	minor, err := ToMinorUnitsFloat(percent)
	if err != nil {
		return 0, err
	}
	if minor > math.MaxInt32 {
		return 0, fmt.Errorf("%w: rate out of range", common.ErrInvalidAmount)
	}
	return int32(minor), nil
}

// FormatMinor renders minor units as a plain two-decimal string for user
// facing output and exports.
func FormatMinor(minor int64) string {
	return ToDecimal(minor).StringFixed(2)
}
