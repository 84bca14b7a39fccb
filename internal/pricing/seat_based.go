package pricing

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// SeatBasedPricing charges per seat, with an optional seat minimum and
// optional seat bands that replace the flat seat rate.
type SeatBasedPricing struct {
	SeatRate  decimal.Decimal     `json:"seatRate"`
	MinSeats  decimal.NullDecimal `json:"minSeats"`
	SeatTiers []Tier              `json:"seatTiers"`
}

// Kind implements Definition.
func (p *SeatBasedPricing) Kind() ModelKind {
	return SeatBased
}

func (p *SeatBasedPricing) check() []ValidationIssue {
	return checkTiers("seatTiers", p.SeatTiers)
}

// Calculate implements Definition.
func (p *SeatBasedPricing) Calculate(input CalculationInput) (*CalculationResult, error) {
	quantity, err := quantityOf(input)
	if err != nil {
		return nil, err
	}

	seats := quantity
	if p.MinSeats.Valid && p.MinSeats.Decimal.GreaterThan(seats) {
		seats = p.MinSeats.Decimal
	}

	breakdown := Breakdown{textItem("Effective seats", seats.String())}
	if !seats.Equal(quantity) {
		breakdown = append(breakdown, textItem("Minimum seats applied", p.MinSeats.Decimal.String()))
	}

	if len(p.SeatTiers) > 0 {
		total, bands, bandErr := consumeTiers(p.SeatTiers, seats, "Seat band")
		if bandErr != nil {
			return nil, bandErr
		}
		breakdown = append(breakdown, textItem("Rate applied", "seat bands"))
		breakdown = append(breakdown, bands...)
		return newResult(SeatBased, total, breakdown), nil
	}

	total := seats.Mul(p.SeatRate)
	breakdown = append(breakdown,
		textItem("Rate applied", p.SeatRate.String()+" per seat"),
		amountItem(fmt.Sprintf("Seats (%s × %s)", seats, p.SeatRate), total),
	)

	return newResult(SeatBased, total, breakdown), nil
}
