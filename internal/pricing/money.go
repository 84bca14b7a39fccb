package pricing

import (
	"fmt"
	"math"

	"github.com/shopspring/decimal"
)

const centPlaces = 2

// roundCents rounds half away from zero, which is half-up for the
// non-negative amounts the engine produces.
func roundCents(d decimal.Decimal) decimal.Decimal {
	return d.Round(centPlaces)
}

// RoundCents rounds a float amount to two decimal places, half-up.
func RoundCents(amount float64) float64 {
	return roundCents(decimal.NewFromFloat(amount)).InexactFloat64()
}

// amountItem keeps the exact amount; only the total is rounded, so the
// amounts of an additive breakdown always sum to the unrounded total.
func amountItem(name string, d decimal.Decimal) LineItem {
	return LineItem{Name: name, Value: d.InexactFloat64()}
}

func textItem(name, value string) LineItem {
	return LineItem{Name: name, Value: value}
}

func newResult(kind ModelKind, total decimal.Decimal, breakdown Breakdown) *CalculationResult {
	return &CalculationResult{
		TotalPrice:   roundCents(total).InexactFloat64(),
		Breakdown:    breakdown,
		AppliedModel: kind,
	}
}

// quantityOf converts the requested quantity, rejecting anything not strictly positive.
func quantityOf(input CalculationInput) (decimal.Decimal, error) {
	q := input.Quantity
	if math.IsNaN(q) || math.IsInf(q, 0) {
		return decimal.Zero, fmt.Errorf("%w: quantity must be a finite number", ErrInvalidInput)
	}
	if q <= 0 {
		return decimal.Zero, fmt.Errorf("%w: quantity must be greater than zero, got %v", ErrInvalidInput, q)
	}
	return decimal.NewFromFloat(q), nil
}

func nonNegative(name string, v float64) (decimal.Decimal, error) {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return decimal.Zero, fmt.Errorf("%w: %s must be a finite number", ErrInvalidInput, name)
	}
	if v < 0 {
		return decimal.Zero, fmt.Errorf("%w: %s must not be negative, got %v", ErrInvalidInput, name, v)
	}
	return decimal.NewFromFloat(v), nil
}
