package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/davidbz/ratecard/internal/domain"
	"github.com/davidbz/ratecard/internal/observability"
)

const indexKeySuffix = "index"

// Client is the subset of the go-redis API the store needs. *redis.Client satisfies it.
type Client interface {
	Get(ctx context.Context, key string) *redis.StringCmd
	Set(ctx context.Context, key string, value any, expiration time.Duration) *redis.StatusCmd
	Del(ctx context.Context, keys ...string) *redis.IntCmd
	MGet(ctx context.Context, keys ...string) *redis.SliceCmd
	SAdd(ctx context.Context, key string, members ...any) *redis.IntCmd
	SRem(ctx context.Context, key string, members ...any) *redis.IntCmd
	SMembers(ctx context.Context, key string) *redis.StringSliceCmd
}

// RateCardStore keeps each rate card as a JSON document under its own key,
// plus a set of known ids for listing.
type RateCardStore struct {
	client Client
	prefix string
}

// NewRateCardStore creates a new Redis rate card store.
func NewRateCardStore(client Client, prefix string) *RateCardStore {
	return &RateCardStore{
		client: client,
		prefix: prefix,
	}
}

func (s *RateCardStore) cardKey(id string) string {
	return s.prefix + "card:" + id
}

func (s *RateCardStore) indexKey() string {
	return s.prefix + indexKeySuffix
}

// Get retrieves a rate card by id.
func (s *RateCardStore) Get(ctx context.Context, id string) (*domain.RateCard, error) {
	data, err := s.client.Get(ctx, s.cardKey(id)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, fmt.Errorf("%w: %s", domain.ErrRateCardNotFound, id)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get rate card: %w", err)
	}

	var card domain.RateCard
	if err := json.Unmarshal(data, &card); err != nil {
		return nil, fmt.Errorf("failed to decode rate card %s: %w", id, err)
	}

	return &card, nil
}

// Save creates or replaces a rate card.
func (s *RateCardStore) Save(ctx context.Context, card *domain.RateCard) error {
	if card == nil || card.ID == "" {
		return errors.New("rate card id cannot be empty")
	}

	logger := observability.FromContext(ctx)

	data, err := json.Marshal(card)
	if err != nil {
		return fmt.Errorf("failed to encode rate card: %w", err)
	}

	if err := s.client.Set(ctx, s.cardKey(card.ID), data, 0).Err(); err != nil {
		logger.Error("rate card save failed",
			observability.String("rate_card_id", card.ID),
			observability.Error(err))
		return fmt.Errorf("failed to save rate card: %w", err)
	}

	if err := s.client.SAdd(ctx, s.indexKey(), card.ID).Err(); err != nil {
		return fmt.Errorf("failed to index rate card: %w", err)
	}

	logger.Debug("rate card stored",
		observability.String("rate_card_id", card.ID),
		observability.Int("data_size", len(data)))
	return nil
}

// Delete removes a rate card.
func (s *RateCardStore) Delete(ctx context.Context, id string) error {
	removed, err := s.client.Del(ctx, s.cardKey(id)).Result()
	if err != nil {
		return fmt.Errorf("failed to delete rate card: %w", err)
	}

	if err := s.client.SRem(ctx, s.indexKey(), id).Err(); err != nil {
		return fmt.Errorf("failed to unindex rate card: %w", err)
	}

	if removed == 0 {
		return fmt.Errorf("%w: %s", domain.ErrRateCardNotFound, id)
	}
	return nil
}

// List returns every indexed rate card. Index entries whose document has
// vanished are skipped.
func (s *RateCardStore) List(ctx context.Context) ([]*domain.RateCard, error) {
	logger := observability.FromContext(ctx)

	ids, err := s.client.SMembers(ctx, s.indexKey()).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to list rate card ids: %w", err)
	}
	if len(ids) == 0 {
		return []*domain.RateCard{}, nil
	}

	keys := make([]string, len(ids))
	for i, id := range ids {
		keys[i] = s.cardKey(id)
	}

	values, err := s.client.MGet(ctx, keys...).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to load rate cards: %w", err)
	}

	cards := make([]*domain.RateCard, 0, len(values))
	for i, value := range values {
		raw, ok := value.(string)
		if !ok {
			logger.Warn("indexed rate card missing",
				observability.String("rate_card_id", ids[i]))
			continue
		}

		var card domain.RateCard
		if err := json.Unmarshal([]byte(raw), &card); err != nil {
			return nil, fmt.Errorf("failed to decode rate card %s: %w", ids[i], err)
		}
		cards = append(cards, &card)
	}

	return cards, nil
}
