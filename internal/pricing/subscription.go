package pricing

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

const monthsPerYear = 12

// SubscriptionPricing charges a recurring amount per unit. When YearlyAmount
// is absent the yearly price is twelve monthly payments, undiscounted.
type SubscriptionPricing struct {
	MonthlyAmount decimal.Decimal     `json:"monthlyAmount"`
	YearlyAmount  decimal.NullDecimal `json:"yearlyAmount"`
}

// Kind implements Definition.
func (p *SubscriptionPricing) Kind() ModelKind {
	return Subscription
}

func (p *SubscriptionPricing) check() []ValidationIssue {
	return nil
}

// Calculate implements Definition.
func (p *SubscriptionPricing) Calculate(input CalculationInput) (*CalculationResult, error) {
	quantity, err := quantityOf(input)
	if err != nil {
		return nil, err
	}

	period, err := billingPeriodOf(input)
	if err != nil {
		return nil, err
	}

	breakdown := Breakdown{textItem("Billing period", string(period))}

	perUnit := p.MonthlyAmount
	if period == Yearly {
		if p.YearlyAmount.Valid {
			perUnit = p.YearlyAmount.Decimal
		} else {
			perUnit = p.MonthlyAmount.Mul(decimal.NewFromInt(monthsPerYear))
			breakdown = append(breakdown, textItem("Yearly amount",
				fmt.Sprintf("%s × %d months", p.MonthlyAmount, monthsPerYear)))
		}
	}

	breakdown = append(breakdown,
		amountItem("Per-unit amount", perUnit),
		textItem("Units", quantity.String()),
	)

	return newResult(Subscription, perUnit.Mul(quantity), breakdown), nil
}

// billingPeriodOf defaults to monthly and rejects unknown periods.
func billingPeriodOf(input CalculationInput) (BillingPeriod, error) {
	switch BillingPeriod(strings.ToLower(strings.TrimSpace(string(input.BillingPeriod)))) {
	case "", Monthly:
		return Monthly, nil
	case Yearly:
		return Yearly, nil
	default:
		return "", fmt.Errorf("%w: billing period must be %q or %q, got %q",
			ErrInvalidInput, Monthly, Yearly, input.BillingPeriod)
	}
}
