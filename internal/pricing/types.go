package pricing

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
)

// PricingData is the untyped, model-specific pricing document stored with a rate card.
type PricingData map[string]any

// BillingPeriod selects monthly or yearly pricing for Subscription models.
type BillingPeriod string

const (
	// Monthly selects the monthly amount.
	Monthly BillingPeriod = "monthly"

	// Yearly selects the yearly amount.
	Yearly BillingPeriod = "yearly"
)

// CalculationInput is the caller-supplied side of a calculation.
type CalculationInput struct {
	Quantity      float64        `json:"quantity"                yaml:"quantity"`
	BaseCost      *float64       `json:"baseCost,omitempty"      yaml:"baseCost,omitempty"`
	BillingPeriod BillingPeriod  `json:"billingPeriod,omitempty" yaml:"billingPeriod,omitempty"`
	Parameters    map[string]any `json:"parameters,omitempty"    yaml:"parameters,omitempty"`
}

// CalculationResult is the outcome of a successful calculation.
type CalculationResult struct {
	TotalPrice   float64   `json:"totalPrice"`
	Breakdown    Breakdown `json:"breakdown"`
	AppliedModel ModelKind `json:"appliedModel"`
}

// LineItem is a single named entry of a breakdown. Value holds either a
// float64 amount or a descriptive string.
type LineItem struct {
	Name  string
	Value any
}

// Breakdown is an ordered set of line items. It encodes as a JSON object
// whose keys keep their insertion order.
type Breakdown []LineItem

// Get returns the value of the first line item with the given name.
func (b Breakdown) Get(name string) (any, bool) {
	for _, item := range b {
		if item.Name == name {
			return item.Value, true
		}
	}
	return nil, false
}

// Amounts returns the numeric line items in order.
func (b Breakdown) Amounts() []float64 {
	amounts := make([]float64, 0, len(b))
	for _, item := range b {
		if v, ok := item.Value.(float64); ok {
			amounts = append(amounts, v)
		}
	}
	return amounts
}

// MarshalJSON implements json.Marshaler.
func (b Breakdown) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, item := range b {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(item.Name)
		if err != nil {
			return nil, err
		}
		value, err := json.Marshal(item.Value)
		if err != nil {
			return nil, fmt.Errorf("line item %q: %w", item.Name, err)
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(value)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// UnmarshalJSON implements json.Unmarshaler, preserving key order.
func (b *Breakdown) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))

	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if tok == nil {
		*b = nil
		return nil
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return errors.New("breakdown must be a JSON object")
	}

	items := Breakdown{}
	for dec.More() {
		keyTok, keyErr := dec.Token()
		if keyErr != nil {
			return keyErr
		}
		key, ok := keyTok.(string)
		if !ok {
			return errors.New("breakdown key must be a string")
		}

		var value any
		if decodeErr := dec.Decode(&value); decodeErr != nil {
			return fmt.Errorf("line item %q: %w", key, decodeErr)
		}
		items = append(items, LineItem{Name: key, Value: value})
	}

	*b = items
	return nil
}
