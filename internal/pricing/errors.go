package pricing

import "errors"

var (
	// ErrUnsupportedModel indicates a pricing model tag that is not one of the known kinds.
	ErrUnsupportedModel = errors.New("unsupported pricing model")

	// ErrMalformedPricingData indicates a payload that does not match its model's shape.
	ErrMalformedPricingData = errors.New("malformed pricing data")

	// ErrInvalidInput indicates a calculation input that violates its own constraints.
	ErrInvalidInput = errors.New("invalid calculation input")

	// ErrEmptyBatch is returned when a batch carries no requests.
	ErrEmptyBatch = errors.New("batch must contain at least one request")

	// ErrBatchTooLarge is returned when a batch exceeds MaxBatchSize.
	ErrBatchTooLarge = errors.New("batch exceeds maximum size")
)
