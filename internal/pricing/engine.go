package pricing

// Engine prices calculation inputs against stored pricing data. It holds no
// mutable state, so a single Engine may serve any number of goroutines.
type Engine struct {
	registry *Registry
}

// NewEngine creates an engine over registry. A nil registry selects the default one.
func NewEngine(registry *Registry) *Engine {
	if registry == nil {
		registry = DefaultRegistry()
	}
	return &Engine{
		registry: registry,
	}
}

// Kinds lists the pricing models the engine understands.
func (e *Engine) Kinds() []ModelKind {
	return e.registry.Kinds()
}

// Validate is the pre-flight structural check. It never fails loudly.
func (e *Engine) Validate(kind ModelKind, data PricingData) bool {
	return e.registry.Validate(kind, data)
}

// Issues explains why Validate would return false.
func (e *Engine) Issues(kind ModelKind, data PricingData) []ValidationIssue {
	return e.registry.Issues(kind, data)
}

// Parse converts data into the typed definition for kind.
func (e *Engine) Parse(kind ModelKind, data PricingData) (Definition, error) {
	capability, err := e.registry.Resolve(kind)
	if err != nil {
		return nil, err
	}
	return capability.Parse(data)
}

// Calculate prices input against data interpreted as kind.
//
// Errors wrap ErrUnsupportedModel, ErrInvalidInput or ErrMalformedPricingData.
// The payload is always re-validated, so callers that skipped the pre-flight
// check still get a typed failure instead of a wrong price.
func (e *Engine) Calculate(kind ModelKind, data PricingData, input CalculationInput) (*CalculationResult, error) {
	capability, err := e.registry.Resolve(kind)
	if err != nil {
		return nil, err
	}

	if _, err := quantityOf(input); err != nil {
		return nil, err
	}

	return capability.Calculate(data, input)
}
