package domain

import (
	"errors"
	"strings"

	"github.com/davidbz/ratecard/internal/pricing"
)

var (
	// ErrRateCardNotFound is returned when no rate card has the requested id.
	ErrRateCardNotFound = errors.New("rate card not found")

	// ErrModelImmutable is returned when an update tries to change a card's pricing model.
	ErrModelImmutable = errors.New("rate card pricing model cannot be changed")

	// ErrInvalidRateCard is returned when a rate card fails validation.
	ErrInvalidRateCard = errors.New("invalid rate card")
)

// ValidationError carries the issues that made a rate card invalid.
type ValidationError struct {
	Issues []pricing.ValidationIssue
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Issues))
	for _, issue := range e.Issues {
		parts = append(parts, issue.String())
	}
	return ErrInvalidRateCard.Error() + ": " + strings.Join(parts, "; ")
}

// Is makes ValidationError match ErrInvalidRateCard.
func (e *ValidationError) Is(target error) bool {
	return target == ErrInvalidRateCard
}
