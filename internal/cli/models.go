package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newModelsCommand(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "models",
		Short: "List the supported pricing models",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := checkFormat(opts.format); err != nil {
				return err
			}

			models := newQuoteService().Models()
			if opts.format == formatJSON {
				return writeJSON(cmd.OutOrStdout(), map[string]any{"models": models})
			}
			for _, model := range models {
				fmt.Fprintln(cmd.OutOrStdout(), model)
			}
			return nil
		},
	}
}
