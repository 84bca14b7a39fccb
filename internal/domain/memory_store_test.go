package domain_test

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/davidbz/ratecard/internal/domain"
	"github.com/davidbz/ratecard/internal/pricing"
)

func TestInMemoryRateCardStore(t *testing.T) {
	ctx := context.Background()

	t.Run("should save and get a card", func(t *testing.T) {
		store := domain.NewInMemoryRateCardStore()
		card := flatCard(10)
		card.ID = "card-1"

		require.NoError(t, store.Save(ctx, card))

		got, err := store.Get(ctx, "card-1")
		require.NoError(t, err)
		require.Equal(t, card, got)
		require.NotSame(t, card, got)
	})

	t.Run("should return not found for missing cards", func(t *testing.T) {
		store := domain.NewInMemoryRateCardStore()

		_, err := store.Get(ctx, "missing")
		require.ErrorIs(t, err, domain.ErrRateCardNotFound)

		err = store.Delete(ctx, "missing")
		require.ErrorIs(t, err, domain.ErrRateCardNotFound)
	})

	t.Run("should reject cards without an id", func(t *testing.T) {
		store := domain.NewInMemoryRateCardStore()
		require.Error(t, store.Save(ctx, flatCard(10)))
		require.Error(t, store.Save(ctx, nil))
	})

	t.Run("should hand out copies", func(t *testing.T) {
		store := domain.NewInMemoryRateCardStore()
		card := flatCard(10)
		card.ID = "card-1"
		require.NoError(t, store.Save(ctx, card))

		got, err := store.Get(ctx, "card-1")
		require.NoError(t, err)
		got.PricingData["rate"] = 99

		again, err := store.Get(ctx, "card-1")
		require.NoError(t, err)
		require.Equal(t, 10.0, again.PricingData["rate"])
	})

	t.Run("should list and delete cards", func(t *testing.T) {
		store := domain.NewInMemoryRateCardStore()
		for i := range 3 {
			card := flatCard(float64(i + 1))
			card.ID = fmt.Sprintf("card-%d", i)
			require.NoError(t, store.Save(ctx, card))
		}

		cards, err := store.List(ctx)
		require.NoError(t, err)
		require.Len(t, cards, 3)

		require.NoError(t, store.Delete(ctx, "card-1"))
		cards, err = store.List(ctx)
		require.NoError(t, err)
		require.Len(t, cards, 2)
	})

	t.Run("should be safe for concurrent use", func(t *testing.T) {
		store := domain.NewInMemoryRateCardStore()
		var wg sync.WaitGroup
		for i := range 20 {
			wg.Add(1)
			go func() {
				defer wg.Done()
				card := &domain.RateCard{
					ID:          fmt.Sprintf("card-%d", i),
					Name:        "concurrent",
					Model:       pricing.FlatRate,
					PricingData: pricing.PricingData{"rate": 1},
				}
				_ = store.Save(ctx, card)
				_, _ = store.Get(ctx, card.ID)
				_, _ = store.List(ctx)
			}()
		}
		wg.Wait()

		cards, err := store.List(ctx)
		require.NoError(t, err)
		require.Len(t, cards, 20)
	})
}

func TestRateCard_Clone(t *testing.T) {
	var nilCard *domain.RateCard
	require.Nil(t, nilCard.Clone())

	card := tieredCard()
	clone := card.Clone()
	require.Equal(t, card, clone)

	clone.PricingData["tiers"].([]any)[0].(map[string]any)["rate"] = 7
	require.Equal(t, 1, card.PricingData["tiers"].([]any)[0].(map[string]any)["rate"])
}
