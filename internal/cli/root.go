// Package cli implements the ratecard command line tool.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/davidbz/ratecard/internal/config"
	"github.com/davidbz/ratecard/internal/domain"
	"github.com/davidbz/ratecard/internal/observability"
	"github.com/davidbz/ratecard/internal/pricing"
)

type options struct {
	logLevel string
	format   string
}

// NewRootCommand builds the ratecard command tree.
func NewRootCommand() *cobra.Command {
	opts := &options{}

	root := &cobra.Command{
		Use:   "ratecard",
		Short: "Validate rate cards and quote prices against them",
		Long: `ratecard prices usage against rate cards without running the service.

Rate card files are YAML or JSON documents with a name, a pricing model
and the model's pricing data.

Examples:
  ratecard models
  ratecard validate storage.yaml
  ratecard calculate storage.yaml --quantity 150
  ratecard calculate plan.yaml --quantity 1 --billing-period yearly --format json
  ratecard batch storage.yaml usage.yaml`,
		SilenceUsage: true,
		PersistentPreRunE: func(*cobra.Command, []string) error {
			_, err := observability.InitLogger(&config.LogConfig{Level: opts.logLevel})
			return err
		},
	}

	root.PersistentFlags().StringVar(&opts.logLevel, "log-level", "warn", "log level (debug, info, warn, error)")
	root.PersistentFlags().StringVarP(&opts.format, "format", "f", formatText, "output format (text, json)")

	root.AddCommand(
		newModelsCommand(opts),
		newValidateCommand(opts),
		newCalculateCommand(opts),
		newBatchCommand(opts),
	)

	return root
}

func newQuoteService() *domain.QuoteService {
	engine := pricing.NewEngine(nil)
	return domain.NewQuoteService(
		domain.NewInMemoryRateCardStore(),
		engine,
		pricing.NewOrchestrator(engine, 0),
		nil,
		nil,
	)
}
