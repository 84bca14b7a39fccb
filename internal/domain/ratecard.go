package domain

import (
	"time"

	"github.com/davidbz/ratecard/internal/pricing"
)

// RateCard is a named pricing configuration bound to one pricing model.
type RateCard struct {
	ID          string              `json:"id"                    yaml:"id,omitempty"`
	Name        string              `json:"name"                  yaml:"name"`
	Description string              `json:"description,omitempty" yaml:"description,omitempty"`
	Model       pricing.ModelKind   `json:"model"                 yaml:"model"`
	PricingData pricing.PricingData `json:"pricingData"           yaml:"pricingData"`
	CreatedAt   time.Time           `json:"createdAt"             yaml:"-"`
	UpdatedAt   time.Time           `json:"updatedAt"             yaml:"-"`
}

// Clone returns a deep copy of the card. Stores hand out clones so callers
// cannot mutate stored pricing data.
func (c *RateCard) Clone() *RateCard {
	if c == nil {
		return nil
	}
	clone := *c
	clone.PricingData = cloneValue(map[string]any(c.PricingData)).(map[string]any)
	return &clone
}

// ValidationReport is the result of a pre-flight pricing check.
type ValidationReport struct {
	Model  pricing.ModelKind         `json:"model"`
	Valid  bool                      `json:"valid"`
	Issues []pricing.ValidationIssue `json:"issues,omitempty"`
}

// BatchItem is one input of a batch priced against a stored rate card.
type BatchItem struct {
	Label string                   `json:"label,omitempty" yaml:"label,omitempty"`
	Input pricing.CalculationInput `json:"input"           yaml:"input"`
}

func cloneValue(v any) any {
	switch typed := v.(type) {
	case map[string]any:
		if typed == nil {
			return map[string]any(nil)
		}
		out := make(map[string]any, len(typed))
		for k, item := range typed {
			out[k] = cloneValue(item)
		}
		return out
	case pricing.PricingData:
		return cloneValue(map[string]any(typed))
	case []any:
		out := make([]any, len(typed))
		for i, item := range typed {
			out[i] = cloneValue(item)
		}
		return out
	case []map[string]any:
		out := make([]any, len(typed))
		for i, item := range typed {
			out[i] = cloneValue(item)
		}
		return out
	default:
		return v
	}
}
