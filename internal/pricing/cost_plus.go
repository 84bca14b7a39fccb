package pricing

import (
	"fmt"

	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// CostPlusPricing marks up a base cost by a percentage and then adds a fixed
// margin. BaseCost is the card's default when the caller supplies none.
type CostPlusPricing struct {
	BaseCost      decimal.NullDecimal `json:"baseCost"`
	MarkupPercent decimal.NullDecimal `json:"markupPercent"`
	FixedMargin   decimal.NullDecimal `json:"fixedMargin"`
}

// Kind implements Definition.
func (p *CostPlusPricing) Kind() ModelKind {
	return CostPlus
}

func (p *CostPlusPricing) check() []ValidationIssue {
	if !p.MarkupPercent.Valid && !p.FixedMargin.Valid {
		return []ValidationIssue{{
			Path:    "(root)",
			Message: "either markupPercent or fixedMargin is required",
		}}
	}
	return nil
}

// Calculate implements Definition. Quantity is validated but does not scale
// the price; the formula prices a single base cost.
func (p *CostPlusPricing) Calculate(input CalculationInput) (*CalculationResult, error) {
	if _, err := quantityOf(input); err != nil {
		return nil, err
	}

	base := decimal.Zero
	switch {
	case input.BaseCost != nil:
		supplied, err := nonNegative("baseCost", *input.BaseCost)
		if err != nil {
			return nil, err
		}
		base = supplied
	case p.BaseCost.Valid:
		base = p.BaseCost.Decimal
	}

	percent := valueOrZero(p.MarkupPercent)
	margin := valueOrZero(p.FixedMargin)

	markup := base.Mul(percent).Div(hundred)
	total := base.Add(markup).Add(margin)

	breakdown := Breakdown{
		amountItem("Base cost", base),
		amountItem(fmt.Sprintf("Markup (%s%%)", percent), markup),
		amountItem("Fixed margin", margin),
	}

	return newResult(CostPlus, total, breakdown), nil
}

func valueOrZero(d decimal.NullDecimal) decimal.Decimal {
	if !d.Valid {
		return decimal.Zero
	}
	return d.Decimal
}
