// Package schemas holds the JSON Schema documents describing each pricing model's payload.
package schemas

import "embed"

//go:embed *.schema.json
var FS embed.FS

const (
	TieredFile       = "tiered.schema.json"
	SeatBasedFile    = "seat_based.schema.json"
	FlatRateFile     = "flat_rate.schema.json"
	CostPlusFile     = "cost_plus.schema.json"
	SubscriptionFile = "subscription.schema.json"
)
