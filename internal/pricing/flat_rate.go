package pricing

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// FlatRatePricing charges a single rate per unit.
type FlatRatePricing struct {
	Rate decimal.Decimal `json:"rate"`
}

// Kind implements Definition.
func (p *FlatRatePricing) Kind() ModelKind {
	return FlatRate
}

func (p *FlatRatePricing) check() []ValidationIssue {
	return nil
}

// Calculate implements Definition.
func (p *FlatRatePricing) Calculate(input CalculationInput) (*CalculationResult, error) {
	quantity, err := quantityOf(input)
	if err != nil {
		return nil, err
	}

	total := p.Rate.Mul(quantity)
	breakdown := Breakdown{
		amountItem(fmt.Sprintf("%s × %s", p.Rate, quantity), total),
	}

	return newResult(FlatRate, total, breakdown), nil
}
