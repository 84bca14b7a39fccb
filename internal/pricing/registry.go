package pricing

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

// Definition is a pricing payload converted into its strongly typed form.
type Definition interface {
	// Kind returns the pricing model the definition belongs to.
	Kind() ModelKind

	// Calculate prices the given input.
	Calculate(input CalculationInput) (*CalculationResult, error)
}

// definition is implemented by every typed pricing payload.
type definition interface {
	Definition

	// check reports the structural rules the JSON schema cannot express.
	check() []ValidationIssue
}

type decodeFunc func(raw []byte) (definition, error)

func decodeAs[T any, P interface {
	*T
	definition
}](raw []byte) (definition, error) {
	var def T
	if err := json.Unmarshal(raw, &def); err != nil {
		return nil, err
	}
	return P(&def), nil
}

// Capability is the validator and calculator pair for one pricing model.
type Capability struct {
	kind   ModelKind
	schema *jsonschema.Schema
	decode decodeFunc
}

// Kind returns the model this capability serves.
func (c Capability) Kind() ModelKind {
	return c.kind
}

// Issues lists every structural problem in data. An empty result means data is valid.
func (c Capability) Issues(data PricingData) []ValidationIssue {
	_, issues := c.inspect(data)
	return issues
}

// Validate reports whether data is structurally valid. It never panics.
func (c Capability) Validate(data PricingData) (valid bool) {
	defer func() {
		if recover() != nil {
			valid = false
		}
	}()

	_, issues := c.inspect(data)
	return len(issues) == 0
}

// Parse validates data and converts it into a typed Definition.
func (c Capability) Parse(data PricingData) (Definition, error) {
	def, issues := c.inspect(data)
	if len(issues) > 0 {
		return nil, fmt.Errorf("%w for %s: %s", ErrMalformedPricingData, c.kind, joinIssues(issues))
	}
	return def, nil
}

// Calculate parses data and prices the input against it.
func (c Capability) Calculate(data PricingData, input CalculationInput) (*CalculationResult, error) {
	def, err := c.Parse(data)
	if err != nil {
		return nil, err
	}
	return def.Calculate(input)
}

func (c Capability) inspect(data PricingData) (definition, []ValidationIssue) {
	raw, instance, err := normalize(data)
	if err != nil {
		return nil, []ValidationIssue{{Path: "(root)", Message: err.Error()}}
	}

	if validateErr := c.schema.Validate(instance); validateErr != nil {
		return nil, schemaIssues(validateErr)
	}

	def, err := c.decode(raw)
	if err != nil {
		return nil, []ValidationIssue{{Path: "(root)", Message: err.Error()}}
	}

	if issues := def.check(); len(issues) > 0 {
		return nil, issues
	}

	return def, nil
}

// Registry maps each ModelKind to its Capability. It is immutable after
// construction and safe for concurrent use.
type Registry struct {
	capabilities map[ModelKind]Capability
}

// NewRegistry compiles the model schemas and builds the dispatch table.
func NewRegistry() (*Registry, error) {
	compiled, err := compileSchemas()
	if err != nil {
		return nil, err
	}

	decoders := map[ModelKind]decodeFunc{
		Tiered:       decodeAs[TieredPricing, *TieredPricing],
		SeatBased:    decodeAs[SeatBasedPricing, *SeatBasedPricing],
		FlatRate:     decodeAs[FlatRatePricing, *FlatRatePricing],
		CostPlus:     decodeAs[CostPlusPricing, *CostPlusPricing],
		Subscription: decodeAs[SubscriptionPricing, *SubscriptionPricing],
	}

	capabilities := make(map[ModelKind]Capability, len(decoders))
	for kind, decode := range decoders {
		sch, ok := compiled[kind]
		if !ok {
			return nil, fmt.Errorf("no schema registered for %s", kind)
		}
		capabilities[kind] = Capability{kind: kind, schema: sch, decode: decode}
	}

	return &Registry{capabilities: capabilities}, nil
}

//nolint:gochecknoglobals // Dispatch table is built once per process
var defaultRegistry = sync.OnceValue(func() *Registry {
	registry, err := NewRegistry()
	if err != nil {
		panic(fmt.Sprintf("pricing: failed to build registry: %v", err))
	}
	return registry
})

// DefaultRegistry returns the process-wide registry.
func DefaultRegistry() *Registry {
	return defaultRegistry()
}

// Resolve returns the capability for kind.
func (r *Registry) Resolve(kind ModelKind) (Capability, error) {
	capability, ok := r.capabilities[kind]
	if !ok {
		return Capability{}, fmt.Errorf("%w: %q", ErrUnsupportedModel, kind)
	}
	return capability, nil
}

// Kinds lists the supported kinds in declaration order.
func (r *Registry) Kinds() []ModelKind {
	kinds := make([]ModelKind, 0, len(r.capabilities))
	for _, kind := range allKinds() {
		if _, ok := r.capabilities[kind]; ok {
			kinds = append(kinds, kind)
		}
	}
	return kinds
}

// Validate reports whether data is valid for kind. Unknown kinds are invalid.
func (r *Registry) Validate(kind ModelKind, data PricingData) bool {
	capability, err := r.Resolve(kind)
	if err != nil {
		return false
	}
	return capability.Validate(data)
}

// Issues lists the structural problems of data for kind.
func (r *Registry) Issues(kind ModelKind, data PricingData) []ValidationIssue {
	capability, err := r.Resolve(kind)
	if err != nil {
		return []ValidationIssue{{Path: "(root)", Message: err.Error()}}
	}

	var issues []ValidationIssue
	func() {
		defer func() {
			if p := recover(); p != nil {
				issues = []ValidationIssue{{Path: "(root)", Message: fmt.Sprintf("unreadable pricing data: %v", p)}}
			}
		}()
		issues = capability.Issues(data)
	}()
	return issues
}
