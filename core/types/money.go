// Package types - Monetary ranges
// NEVER use float64 for cost arithmetic; floats appear only at the
// JSON boundary.
package types

import (
	"encoding/json"
	"fmt"

	"github.com/shopspring/decimal"

	"landed-cost/internal/errors"
)

// Range is a {low, high} monetary band in USD.
// Invariant: 0 <= Low <= High.
type Range struct {
	Low  decimal.Decimal
	High decimal.Decimal
}

// NewRange creates a Range, enforcing the invariant.
func NewRange(low, high decimal.Decimal) (Range, error) {
	if low.IsNegative() || high.IsNegative() {
		return Range{}, errors.New(errors.TypeInternal, "range bounds must be non-negative")
	}
	if low.GreaterThan(high) {
		return Range{}, errors.New(errors.TypeInternal, "range low exceeds high")
	}
	return Range{Low: low, High: high}, nil
}

// RangeAround builds a band of ±band (a fraction, e.g. 0.15) around a
// point estimate. The low bound is clamped at zero.
func RangeAround(point decimal.Decimal, band float64) Range {
	delta := point.Mul(decimal.NewFromFloat(band))
	low := point.Sub(delta)
	if low.IsNegative() {
		low = decimal.Zero
	}
	return Range{Low: low, High: point.Add(delta)}
}

// Add sums two ranges bound-by-bound.
func (r Range) Add(other Range) Range {
	return Range{Low: r.Low.Add(other.Low), High: r.High.Add(other.High)}
}

// Scale multiplies both bounds by a non-negative factor.
func (r Range) Scale(factor decimal.Decimal) Range {
	return Range{Low: r.Low.Mul(factor), High: r.High.Mul(factor)}
}

// Mid returns the midpoint of the range.
func (r Range) Mid() decimal.Decimal {
	return r.Low.Add(r.High).Div(decimal.NewFromInt(2))
}

// IsZero reports whether both bounds are zero.
func (r Range) IsZero() bool {
	return r.Low.IsZero() && r.High.IsZero()
}

// MarshalJSON emits {"low": x, "high": y} with plain numbers rounded
// to cents, the shape the report contract requires.
func (r Range) MarshalJSON() ([]byte, error) {
	return []byte(fmt.Sprintf(`{"low":%s,"high":%s}`, r.Low.Round(2), r.High.Round(2))), nil
}

// UnmarshalJSON parses the {"low", "high"} wire form.
func (r *Range) UnmarshalJSON(data []byte) error {
	var raw struct {
		Low  decimal.Decimal `json:"low"`
		High decimal.Decimal `json:"high"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	r.Low = raw.Low
	r.High = raw.High
	return nil
}

// String returns "$low – $high" for logs and driver labels.
func (r Range) String() string {
	return fmt.Sprintf("$%s – $%s", r.Low.StringFixed(2), r.High.StringFixed(2))
}
