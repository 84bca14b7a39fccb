package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

// ErrInvalidRateCard is returned by validate when the card fails the pre-flight check.
var ErrInvalidRateCard = errors.New("rate card is invalid")

func newValidateCommand(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "validate <card-file>",
		Short: "Check a rate card's pricing data against its model",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := checkFormat(opts.format); err != nil {
				return err
			}

			card, err := LoadRateCard(args[0])
			if err != nil {
				return err
			}

			report := newQuoteService().ValidatePricing(cmd.Context(), card.Model.String(), card.PricingData)

			out := cmd.OutOrStdout()
			if opts.format == formatJSON {
				if err := writeJSON(out, report); err != nil {
					return err
				}
			} else if report.Valid {
				fmt.Fprintf(out, "%s: valid %s rate card\n", args[0], report.Model)
			} else {
				fmt.Fprintf(out, "%s: invalid %s rate card\n", args[0], card.Model)
				for _, issue := range report.Issues {
					fmt.Fprintf(out, "  %s\n", issue)
				}
			}

			if !report.Valid {
				return fmt.Errorf("%s: %w", args[0], ErrInvalidRateCard)
			}
			return nil
		},
	}
}
