package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/davidbz/ratecard/internal/pricing"
)

type calculateOptions struct {
	quantity      float64
	baseCost      float64
	billingPeriod string
	params        []string
}

func newCalculateCommand(opts *options) *cobra.Command {
	calcOpts := &calculateOptions{}

	cmd := &cobra.Command{
		Use:   "calculate <card-file>",
		Short: "Price a quantity against a rate card",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := checkFormat(opts.format); err != nil {
				return err
			}

			card, err := LoadRateCard(args[0])
			if err != nil {
				return err
			}

			input := pricing.CalculationInput{
				Quantity:      calcOpts.quantity,
				BillingPeriod: pricing.BillingPeriod(calcOpts.billingPeriod),
			}
			if cmd.Flags().Changed("base-cost") {
				baseCost := calcOpts.baseCost
				input.BaseCost = &baseCost
			}
			if input.Parameters, err = parseParams(calcOpts.params); err != nil {
				return err
			}

			result, err := newQuoteService().QuoteInline(cmd.Context(), card.Model.String(), card.PricingData, input)
			if err != nil {
				return err
			}

			if opts.format == formatJSON {
				return writeJSON(cmd.OutOrStdout(), result)
			}
			return writeResult(cmd.OutOrStdout(), result)
		},
	}

	cmd.Flags().Float64VarP(&calcOpts.quantity, "quantity", "q", 1, "quantity to price")
	cmd.Flags().Float64Var(&calcOpts.baseCost, "base-cost", 0, "base cost for cost-plus cards")
	cmd.Flags().StringVar(&calcOpts.billingPeriod, "billing-period", "", "billing period for subscription cards (monthly, yearly)")
	cmd.Flags().StringArrayVar(&calcOpts.params, "param", nil, "extra parameter as key=value (repeatable)")

	return cmd
}

// parseParams turns key=value pairs into typed parameters. Values are read as
// YAML scalars, so numbers and booleans keep their type.
func parseParams(pairs []string) (map[string]any, error) {
	if len(pairs) == 0 {
		return nil, nil
	}

	params := make(map[string]any, len(pairs))
	for _, pair := range pairs {
		key, raw, ok := strings.Cut(pair, "=")
		key = strings.TrimSpace(key)
		if !ok || key == "" {
			return nil, fmt.Errorf("invalid --param %q: want key=value", pair)
		}

		var value any
		if err := yaml.Unmarshal([]byte(raw), &value); err != nil || value == nil {
			value = raw
		}
		params[key] = value
	}

	return params, nil
}
