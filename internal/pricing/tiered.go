package pricing

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Tier is a quantity band. A tier covers [previous upTo, UpTo); an absent
// UpTo makes the tier unbounded.
type Tier struct {
	Name string              `json:"name,omitempty"`
	UpTo decimal.NullDecimal `json:"upTo"`
	Rate decimal.Decimal     `json:"rate"`
}

// TieredPricing charges each band of the quantity at that band's rate.
type TieredPricing struct {
	Tiers []Tier `json:"tiers"`
}

// Kind implements Definition.
func (p *TieredPricing) Kind() ModelKind {
	return Tiered
}

func (p *TieredPricing) check() []ValidationIssue {
	return checkTiers("tiers", p.Tiers)
}

// Calculate implements Definition.
func (p *TieredPricing) Calculate(input CalculationInput) (*CalculationResult, error) {
	quantity, err := quantityOf(input)
	if err != nil {
		return nil, err
	}

	total, breakdown, err := consumeTiers(p.Tiers, quantity, "Tier")
	if err != nil {
		return nil, err
	}

	return newResult(Tiered, total, breakdown), nil
}

// consumeTiers walks the ordered tiers, charging the portion of quantity that
// falls inside each one. Tiers that consume nothing are left out of the breakdown.
func consumeTiers(tiers []Tier, quantity decimal.Decimal, label string) (decimal.Decimal, Breakdown, error) {
	if len(tiers) == 0 {
		return decimal.Zero, nil, fmt.Errorf("%w: no tiers defined", ErrMalformedPricingData)
	}

	total := decimal.Zero
	breakdown := Breakdown{}
	lower := decimal.Zero
	remaining := quantity

	for i, tier := range tiers {
		if !remaining.IsPositive() {
			break
		}

		consumed := remaining
		if tier.UpTo.Valid {
			capacity := tier.UpTo.Decimal.Sub(lower)
			if !capacity.IsPositive() {
				return decimal.Zero, nil, fmt.Errorf("%w: tier %d has no capacity", ErrMalformedPricingData, i+1)
			}
			if consumed.GreaterThan(capacity) {
				consumed = capacity
			}
		}

		charge := consumed.Mul(tier.Rate)
		total = total.Add(charge)
		breakdown = append(breakdown, amountItem(tierLabel(label, i, tier, lower), charge))

		remaining = remaining.Sub(consumed)
		if tier.UpTo.Valid {
			lower = tier.UpTo.Decimal
		}
	}

	if remaining.IsPositive() {
		return decimal.Zero, nil, fmt.Errorf("%w: quantity %s exceeds the highest tier bound %s",
			ErrInvalidInput, quantity, lower)
	}

	return total, breakdown, nil
}

func tierLabel(label string, index int, tier Tier, lower decimal.Decimal) string {
	name := fmt.Sprintf("%s %d", label, index+1)
	if tier.Name != "" {
		name += " - " + tier.Name
	}

	if !tier.UpTo.Valid {
		return fmt.Sprintf("%s (%s+ @ %s)", name, lower, tier.Rate)
	}
	return fmt.Sprintf("%s (%s-%s @ %s)", name, lower, tier.UpTo.Decimal, tier.Rate)
}
