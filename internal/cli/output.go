package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/davidbz/ratecard/internal/pricing"
)

const (
	formatText = "text"
	formatJSON = "json"
)

func checkFormat(format string) error {
	switch format {
	case formatText, formatJSON:
		return nil
	default:
		return fmt.Errorf("unknown output format %q (want text or json)", format)
	}
}

func writeJSON(w io.Writer, v any) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(v)
}

func writeResult(w io.Writer, result *pricing.CalculationResult) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "Model:\t%s\n", result.AppliedModel)
	fmt.Fprintln(tw, "Breakdown:\t")
	for _, item := range result.Breakdown {
		switch v := item.Value.(type) {
		case float64:
			fmt.Fprintf(tw, "  %s\t%.2f\n", item.Name, v)
		default:
			fmt.Fprintf(tw, "  %s\t%v\n", item.Name, v)
		}
	}
	fmt.Fprintf(tw, "Total:\t%.2f\n", result.TotalPrice)
	return tw.Flush()
}

func writeBatch(w io.Writer, result *pricing.BatchResult) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "#\tLABEL\tSTATUS\tTOTAL")
	for _, outcome := range result.Results {
		label := outcome.Label
		if label == "" {
			label = "-"
		}
		if outcome.Success {
			fmt.Fprintf(tw, "%d\t%s\tok\t%.2f\n", outcome.Index, label, outcome.Result.TotalPrice)
			continue
		}
		fmt.Fprintf(tw, "%d\t%s\tfailed\t%s\n", outcome.Index, label, outcome.Error)
	}
	fmt.Fprintf(tw, "\nItems: %d  Successful: %d  Failed: %d  Total: %.2f\n",
		result.Summary.Total, result.Summary.Successful, result.Summary.Failed, result.Summary.TotalAmount)
	return tw.Flush()
}
