package pricing

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/santhosh-tekuri/jsonschema/v6"
	"github.com/shopspring/decimal"

	"github.com/davidbz/ratecard/internal/pricing/schemas"
)

// ValidationIssue describes one structural problem in a pricing payload.
type ValidationIssue struct {
	Path    string `json:"path"`
	Message string `json:"message"`
}

func (i ValidationIssue) String() string {
	return fmt.Sprintf("%s: %s", i.Path, i.Message)
}

// Validate reports whether data is a structurally valid payload for kind,
// using the default registry. It never panics.
func Validate(kind ModelKind, data PricingData) bool {
	return DefaultRegistry().Validate(kind, data)
}

var schemaFiles = map[ModelKind]string{
	Tiered:       schemas.TieredFile,
	SeatBased:    schemas.SeatBasedFile,
	FlatRate:     schemas.FlatRateFile,
	CostPlus:     schemas.CostPlusFile,
	Subscription: schemas.SubscriptionFile,
}

func compileSchemas() (map[ModelKind]*jsonschema.Schema, error) {
	compiler := jsonschema.NewCompiler()

	for _, name := range schemaFiles {
		raw, err := schemas.FS.ReadFile(name)
		if err != nil {
			return nil, fmt.Errorf("failed to read schema %s: %w", name, err)
		}
		doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(raw))
		if err != nil {
			return nil, fmt.Errorf("failed to parse schema %s: %w", name, err)
		}
		if err := compiler.AddResource(name, doc); err != nil {
			return nil, fmt.Errorf("failed to add schema %s: %w", name, err)
		}
	}

	compiled := make(map[ModelKind]*jsonschema.Schema, len(schemaFiles))
	for kind, name := range schemaFiles {
		sch, err := compiler.Compile(name)
		if err != nil {
			return nil, fmt.Errorf("failed to compile schema %s: %w", name, err)
		}
		compiled[kind] = sch
	}

	return compiled, nil
}

// normalize turns an arbitrary payload into its JSON text and the
// json.Number-based instance the schema validator expects.
func normalize(data PricingData) ([]byte, any, error) {
	if data == nil {
		return nil, nil, errors.New("pricing data is missing")
	}

	raw, err := json.Marshal(data)
	if err != nil {
		return nil, nil, fmt.Errorf("pricing data is not a JSON document: %w", err)
	}

	instance, err := jsonschema.UnmarshalJSON(bytes.NewReader(raw))
	if err != nil {
		return nil, nil, fmt.Errorf("pricing data is not a JSON document: %w", err)
	}

	return raw, instance, nil
}

func schemaIssues(err error) []ValidationIssue {
	var validationErr *jsonschema.ValidationError
	if !errors.As(err, &validationErr) {
		return []ValidationIssue{{Path: "(root)", Message: err.Error()}}
	}

	var issues []ValidationIssue
	var extract func(e *jsonschema.ValidationError)
	extract = func(e *jsonschema.ValidationError) {
		if len(e.Causes) == 0 && e.ErrorKind != nil {
			path := "/" + strings.Join(e.InstanceLocation, "/")
			if path == "/" {
				path = "(root)"
			}
			issues = append(issues, ValidationIssue{Path: path, Message: formatErrorKind(e.ErrorKind)})
		}
		for _, cause := range e.Causes {
			extract(cause)
		}
	}
	extract(validationErr)

	if len(issues) == 0 {
		issues = append(issues, ValidationIssue{Path: "(root)", Message: validationErr.Error()})
	}
	return issues
}

func formatErrorKind(kind jsonschema.ErrorKind) string {
	s := fmt.Sprintf("%+v", kind)
	s = strings.TrimPrefix(s, "&")
	s = strings.ReplaceAll(s, "kind.", "")

	switch {
	case strings.HasPrefix(s, "{Missing:"):
		fields := strings.TrimPrefix(s, "{Missing:[")
		fields = strings.TrimSuffix(fields, "]}")
		return "missing required field(s): " + fields
	case strings.HasPrefix(s, "{Got:") && strings.Contains(s, "Want:"):
		s = strings.TrimSuffix(strings.TrimPrefix(s, "{"), "}")
		parts := strings.Split(s, " Want:")
		if len(parts) == 2 {
			got := strings.TrimPrefix(parts[0], "Got:")
			return fmt.Sprintf("got '%s', expected '%s'", got, parts[1])
		}
	}
	return s
}

// checkTiers enforces what the schema cannot: only the final tier may be
// unbounded and thresholds strictly increase.
func checkTiers(field string, tiers []Tier) []ValidationIssue {
	var issues []ValidationIssue
	var previous decimal.NullDecimal

	for i, tier := range tiers {
		path := fmt.Sprintf("/%s/%d/upTo", field, i)

		if !tier.UpTo.Valid {
			if i != len(tiers)-1 {
				issues = append(issues, ValidationIssue{
					Path:    path,
					Message: "only the final tier may omit its upper bound",
				})
			}
			continue
		}

		if previous.Valid && !tier.UpTo.Decimal.GreaterThan(previous.Decimal) {
			issues = append(issues, ValidationIssue{
				Path: path,
				Message: fmt.Sprintf("tier thresholds must strictly increase (%s follows %s)",
					tier.UpTo.Decimal, previous.Decimal),
			})
		}
		previous = tier.UpTo
	}

	return issues
}

func joinIssues(issues []ValidationIssue) string {
	parts := make([]string, 0, len(issues))
	for _, issue := range issues {
		parts = append(parts, issue.String())
	}
	return strings.Join(parts, "; ")
}
