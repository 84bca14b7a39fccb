package cli

import (
	"github.com/spf13/cobra"

	"github.com/davidbz/ratecard/internal/pricing"
)

func newBatchCommand(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "batch <card-file> <requests-file>",
		Short: "Price a list of inputs against a rate card",
		Long: `Price every input of a requests file against one rate card.

The requests file is a YAML or JSON list of {label, input} items, or an
object with an items list. Failed items are reported without stopping
the batch.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := checkFormat(opts.format); err != nil {
				return err
			}

			card, err := LoadRateCard(args[0])
			if err != nil {
				return err
			}

			items, err := LoadBatchItems(args[1])
			if err != nil {
				return err
			}

			requests := make([]pricing.BatchRequest, len(items))
			for i, item := range items {
				requests[i] = pricing.BatchRequest{
					Label:       item.Label,
					Model:       card.Model,
					PricingData: card.PricingData,
					Input:       item.Input,
				}
			}

			result, err := newQuoteService().QuoteBatchInline(cmd.Context(), requests)
			if err != nil {
				return err
			}

			if opts.format == formatJSON {
				return writeJSON(cmd.OutOrStdout(), result)
			}
			return writeBatch(cmd.OutOrStdout(), result)
		},
	}
}
