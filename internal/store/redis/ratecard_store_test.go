package redis_test

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"
	"testing"
	"time"

	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"

	"github.com/davidbz/ratecard/internal/domain"
	"github.com/davidbz/ratecard/internal/pricing"
	"github.com/davidbz/ratecard/internal/store/redis"
)

// fakeRedis is a minimal in-memory stand-in for the commands the store issues.
type fakeRedis struct {
	mu      sync.Mutex
	strings map[string]string
	sets    map[string]map[string]struct{}
	failSet error
}

func newFakeRedis() *fakeRedis {
	return &fakeRedis{
		strings: make(map[string]string),
		sets:    make(map[string]map[string]struct{}),
	}
}

func (f *fakeRedis) Get(ctx context.Context, key string) *goredis.StringCmd {
	f.mu.Lock()
	defer f.mu.Unlock()

	cmd := goredis.NewStringCmd(ctx, "get", key)
	if val, ok := f.strings[key]; ok {
		cmd.SetVal(val)
	} else {
		cmd.SetErr(goredis.Nil)
	}
	return cmd
}

func (f *fakeRedis) Set(ctx context.Context, key string, value any, _ time.Duration) *goredis.StatusCmd {
	f.mu.Lock()
	defer f.mu.Unlock()

	cmd := goredis.NewStatusCmd(ctx, "set", key)
	if f.failSet != nil {
		cmd.SetErr(f.failSet)
		return cmd
	}
	switch v := value.(type) {
	case []byte:
		f.strings[key] = string(v)
	default:
		f.strings[key] = fmt.Sprint(v)
	}
	cmd.SetVal("OK")
	return cmd
}

func (f *fakeRedis) Del(ctx context.Context, keys ...string) *goredis.IntCmd {
	f.mu.Lock()
	defer f.mu.Unlock()

	cmd := goredis.NewIntCmd(ctx, "del")
	var removed int64
	for _, key := range keys {
		if _, ok := f.strings[key]; ok {
			delete(f.strings, key)
			removed++
		}
	}
	cmd.SetVal(removed)
	return cmd
}

func (f *fakeRedis) MGet(ctx context.Context, keys ...string) *goredis.SliceCmd {
	f.mu.Lock()
	defer f.mu.Unlock()

	cmd := goredis.NewSliceCmd(ctx, "mget")
	values := make([]any, len(keys))
	for i, key := range keys {
		if val, ok := f.strings[key]; ok {
			values[i] = val
		}
	}
	cmd.SetVal(values)
	return cmd
}

func (f *fakeRedis) SAdd(ctx context.Context, key string, members ...any) *goredis.IntCmd {
	f.mu.Lock()
	defer f.mu.Unlock()

	cmd := goredis.NewIntCmd(ctx, "sadd", key)
	set, ok := f.sets[key]
	if !ok {
		set = make(map[string]struct{})
		f.sets[key] = set
	}
	for _, member := range members {
		set[fmt.Sprint(member)] = struct{}{}
	}
	cmd.SetVal(int64(len(members)))
	return cmd
}

func (f *fakeRedis) SRem(ctx context.Context, key string, members ...any) *goredis.IntCmd {
	f.mu.Lock()
	defer f.mu.Unlock()

	cmd := goredis.NewIntCmd(ctx, "srem", key)
	for _, member := range members {
		delete(f.sets[key], fmt.Sprint(member))
	}
	cmd.SetVal(int64(len(members)))
	return cmd
}

func (f *fakeRedis) SMembers(ctx context.Context, key string) *goredis.StringSliceCmd {
	f.mu.Lock()
	defer f.mu.Unlock()

	cmd := goredis.NewStringSliceCmd(ctx, "smembers", key)
	members := make([]string, 0, len(f.sets[key]))
	for member := range f.sets[key] {
		members = append(members, member)
	}
	sort.Strings(members)
	cmd.SetVal(members)
	return cmd
}

func card(id string, rate float64) *domain.RateCard {
	return &domain.RateCard{
		ID:          id,
		Name:        "card " + id,
		Model:       pricing.FlatRate,
		PricingData: pricing.PricingData{"rate": rate},
		CreatedAt:   time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC),
		UpdatedAt:   time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC),
	}
}

func TestRateCardStore(t *testing.T) {
	ctx := context.Background()

	t.Run("should round-trip a card", func(t *testing.T) {
		client := newFakeRedis()
		store := redis.NewRateCardStore(client, "test:")

		require.NoError(t, store.Save(ctx, card("a", 10)))
		require.Contains(t, client.strings, "test:card:a")

		got, err := store.Get(ctx, "a")
		require.NoError(t, err)
		require.Equal(t, card("a", 10), got)
	})

	t.Run("should map missing keys to not found", func(t *testing.T) {
		store := redis.NewRateCardStore(newFakeRedis(), "test:")

		_, err := store.Get(ctx, "missing")
		require.ErrorIs(t, err, domain.ErrRateCardNotFound)

		err = store.Delete(ctx, "missing")
		require.ErrorIs(t, err, domain.ErrRateCardNotFound)
	})

	t.Run("should list indexed cards and skip vanished ones", func(t *testing.T) {
		client := newFakeRedis()
		store := redis.NewRateCardStore(client, "test:")

		require.NoError(t, store.Save(ctx, card("a", 1)))
		require.NoError(t, store.Save(ctx, card("b", 2)))
		delete(client.strings, "test:card:b")

		cards, err := store.List(ctx)
		require.NoError(t, err)
		require.Len(t, cards, 1)
		require.Equal(t, "a", cards[0].ID)
	})

	t.Run("should list nothing for an empty index", func(t *testing.T) {
		store := redis.NewRateCardStore(newFakeRedis(), "test:")

		cards, err := store.List(ctx)
		require.NoError(t, err)
		require.Empty(t, cards)
	})

	t.Run("should delete and unindex", func(t *testing.T) {
		client := newFakeRedis()
		store := redis.NewRateCardStore(client, "test:")

		require.NoError(t, store.Save(ctx, card("a", 1)))
		require.NoError(t, store.Delete(ctx, "a"))
		require.Empty(t, client.sets["test:index"])
	})

	t.Run("should surface write failures", func(t *testing.T) {
		client := newFakeRedis()
		client.failSet = errors.New("READONLY")
		store := redis.NewRateCardStore(client, "test:")

		err := store.Save(ctx, card("a", 1))
		require.ErrorIs(t, err, client.failSet)
	})

	t.Run("should reject cards without an id", func(t *testing.T) {
		store := redis.NewRateCardStore(newFakeRedis(), "test:")
		require.Error(t, store.Save(ctx, card("", 1)))
	})

	t.Run("should report corrupt documents", func(t *testing.T) {
		client := newFakeRedis()
		client.strings["test:card:bad"] = "{not json"
		store := redis.NewRateCardStore(client, "test:")

		_, err := store.Get(ctx, "bad")
		require.Error(t, err)
		require.NotErrorIs(t, err, domain.ErrRateCardNotFound)
	})
}
