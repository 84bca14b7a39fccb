package cli_test

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/davidbz/ratecard/internal/cli"
	"github.com/davidbz/ratecard/internal/pricing"
)

const tieredCard = `
name: Storage
model: tiered
pricingData:
  tiers:
    - upTo: 100
      rate: 1
    - upTo: null
      rate: 0.5
`

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := cli.NewRootCommand()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestModelsCommand(t *testing.T) {
	out, err := run(t, "models")
	require.NoError(t, err)
	require.Equal(t, "Tiered\nSeatBased\nFlatRate\nCostPlus\nSubscription\n", out)

	out, err = run(t, "models", "--format", "json")
	require.NoError(t, err)
	require.JSONEq(t, `{"models":["Tiered","SeatBased","FlatRate","CostPlus","Subscription"]}`, out)
}

func TestValidateCommand(t *testing.T) {
	t.Run("valid card", func(t *testing.T) {
		path := writeFile(t, "storage.yaml", tieredCard)
		out, err := run(t, "validate", path)
		require.NoError(t, err)
		require.Contains(t, out, "valid Tiered rate card")
	})

	t.Run("invalid card fails the command", func(t *testing.T) {
		path := writeFile(t, "broken.json", `{"name":"Broken","model":"FlatRate","pricingData":{"rate":-1}}`)
		out, err := run(t, "validate", path)
		require.ErrorIs(t, err, cli.ErrInvalidRateCard)
		require.Contains(t, out, "invalid FlatRate rate card")
		require.Contains(t, out, "/rate")
	})

	t.Run("unknown model", func(t *testing.T) {
		path := writeFile(t, "auction.yaml", "model: Auction\npricingData: {}\n")
		_, err := run(t, "validate", path)
		require.ErrorIs(t, err, cli.ErrInvalidRateCard)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := run(t, "validate", filepath.Join(t.TempDir(), "nope.yaml"))
		require.Error(t, err)
	})
}

func TestCalculateCommand(t *testing.T) {
	path := writeFile(t, "storage.yaml", tieredCard)

	t.Run("text output", func(t *testing.T) {
		out, err := run(t, "calculate", path, "--quantity", "150")
		require.NoError(t, err)
		require.Contains(t, out, "Model:")
		require.Contains(t, out, "Tiered")
		require.Contains(t, out, "125.00")
	})

	t.Run("json output", func(t *testing.T) {
		out, err := run(t, "calculate", path, "-q", "150", "--format", "json")
		require.NoError(t, err)

		var result pricing.CalculationResult
		require.NoError(t, json.Unmarshal([]byte(out), &result))
		require.InDelta(t, 125.0, result.TotalPrice, 1e-9)
		require.Len(t, result.Breakdown, 2)
	})

	t.Run("cost plus with base cost flag", func(t *testing.T) {
		card := writeFile(t, "resale.json", `{"model":"CostPlus","pricingData":{"markupPercent":10}}`)
		out, err := run(t, "calculate", card, "--base-cost", "200", "--format", "json")
		require.NoError(t, err)

		var result pricing.CalculationResult
		require.NoError(t, json.Unmarshal([]byte(out), &result))
		require.InDelta(t, 220.0, result.TotalPrice, 1e-9)
	})

	t.Run("subscription billing period", func(t *testing.T) {
		card := writeFile(t, "plan.yaml", "model: Subscription\npricingData:\n  monthlyAmount: 29\n  yearlyAmount: 290\n")
		out, err := run(t, "calculate", card, "--billing-period", "yearly", "--format", "json")
		require.NoError(t, err)

		var result pricing.CalculationResult
		require.NoError(t, json.Unmarshal([]byte(out), &result))
		require.InDelta(t, 290.0, result.TotalPrice, 1e-9)
	})

	t.Run("invalid quantity", func(t *testing.T) {
		_, err := run(t, "calculate", path, "--quantity", "0")
		require.ErrorIs(t, err, pricing.ErrInvalidInput)
	})

	t.Run("bad param", func(t *testing.T) {
		_, err := run(t, "calculate", path, "--param", "novalue")
		require.Error(t, err)
	})

	t.Run("params are accepted", func(t *testing.T) {
		_, err := run(t, "calculate", path, "--param", "region=eu", "--param", "discount=0.1")
		require.NoError(t, err)
	})

	t.Run("unknown format", func(t *testing.T) {
		_, err := run(t, "calculate", path, "--format", "xml")
		require.Error(t, err)
	})
}

func TestBatchCommand(t *testing.T) {
	card := writeFile(t, "storage.yaml", tieredCard)

	t.Run("list file", func(t *testing.T) {
		requests := writeFile(t, "usage.yaml", `
- label: january
  input:
    quantity: 50
- label: february
  input:
    quantity: 150
- label: broken
  input:
    quantity: -5
`)
		out, err := run(t, "batch", card, requests, "--format", "json")
		require.NoError(t, err)

		var result pricing.BatchResult
		require.NoError(t, json.Unmarshal([]byte(out), &result))
		require.Equal(t, pricing.BatchSummary{Total: 3, Successful: 2, Failed: 1, TotalAmount: 175}, result.Summary)
		require.Equal(t, "february", result.Results[1].Label)
	})

	t.Run("wrapped json file with text output", func(t *testing.T) {
		requests := writeFile(t, "usage.json", `{"items":[{"label":"a","input":{"quantity":10}}]}`)
		out, err := run(t, "batch", card, requests)
		require.NoError(t, err)
		require.Contains(t, out, "ok")
		require.True(t, strings.Contains(out, "Total: 10.00"))
	})

	t.Run("empty batch", func(t *testing.T) {
		requests := writeFile(t, "empty.yaml", "items: []\n")
		_, err := run(t, "batch", card, requests)
		require.ErrorIs(t, err, pricing.ErrEmptyBatch)
	})
}

func TestLoadRateCard(t *testing.T) {
	t.Run("names the card after its file", func(t *testing.T) {
		path := writeFile(t, "api-calls.yaml", "model: FlatRate\npricingData:\n  rate: 0.01\n")
		card, err := cli.LoadRateCard(path)
		require.NoError(t, err)
		require.Equal(t, "api-calls", card.Name)
		require.Equal(t, pricing.FlatRate, card.Model)
	})

	t.Run("requires a model", func(t *testing.T) {
		path := writeFile(t, "nomodel.yaml", "name: x\npricingData: {}\n")
		_, err := cli.LoadRateCard(path)
		require.Error(t, err)
	})

	t.Run("rejects empty files", func(t *testing.T) {
		path := writeFile(t, "empty.yaml", "  \n")
		_, err := cli.LoadRateCard(path)
		require.Error(t, err)
	})
}
