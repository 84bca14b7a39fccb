package pricing

import (
	"fmt"
	"strings"
)

// ModelKind identifies one of the supported pricing models.
type ModelKind string

const (
	// Tiered charges each quantity band at its own rate.
	Tiered ModelKind = "Tiered"

	// SeatBased charges per seat with an optional seat minimum and seat bands.
	SeatBased ModelKind = "SeatBased"

	// FlatRate charges a single rate per unit.
	FlatRate ModelKind = "FlatRate"

	// CostPlus applies a markup and/or fixed margin on top of a base cost.
	CostPlus ModelKind = "CostPlus"

	// Subscription charges a recurring monthly or yearly amount per unit.
	Subscription ModelKind = "Subscription"
)

// ParseModelKind converts a stored model tag into a ModelKind.
// Matching is case-insensitive.
func ParseModelKind(s string) (ModelKind, error) {
	name := strings.TrimSpace(s)
	for _, kind := range allKinds() {
		if strings.EqualFold(name, string(kind)) {
			return kind, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnsupportedModel, s)
}

// String implements fmt.Stringer.
func (k ModelKind) String() string {
	return string(k)
}

// IsKnown reports whether k is one of the supported kinds.
func (k ModelKind) IsKnown() bool {
	for _, kind := range allKinds() {
		if k == kind {
			return true
		}
	}
	return false
}

func allKinds() []ModelKind {
	return []ModelKind{Tiered, SeatBased, FlatRate, CostPlus, Subscription}
}

// UnmarshalText canonicalizes known kinds. Unknown tags are kept verbatim so
// calculation can report them as unsupported.
func (k *ModelKind) UnmarshalText(text []byte) error {
	if kind, err := ParseModelKind(string(text)); err == nil {
		*k = kind
		return nil
	}
	*k = ModelKind(text)
	return nil
}
