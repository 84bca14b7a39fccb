package domain

import (
	"context"
	"errors"
	"fmt"
	"sync"
)

// InMemoryRateCardStore stores rate cards in memory.
type InMemoryRateCardStore struct {
	mu    sync.RWMutex
	cards map[string]*RateCard
}

// NewInMemoryRateCardStore creates a new in-memory rate card store.
func NewInMemoryRateCardStore() *InMemoryRateCardStore {
	return &InMemoryRateCardStore{
		mu:    sync.RWMutex{},
		cards: make(map[string]*RateCard),
	}
}

// Get retrieves a rate card by id.
func (s *InMemoryRateCardStore) Get(_ context.Context, id string) (*RateCard, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	card, exists := s.cards[id]
	if !exists {
		return nil, fmt.Errorf("%w: %s", ErrRateCardNotFound, id)
	}

	return card.Clone(), nil
}

// Save creates or replaces a rate card.
func (s *InMemoryRateCardStore) Save(_ context.Context, card *RateCard) error {
	if card == nil || card.ID == "" {
		return errors.New("rate card id cannot be empty")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.cards[card.ID] = card.Clone()
	return nil
}

// Delete removes a rate card.
func (s *InMemoryRateCardStore) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.cards[id]; !exists {
		return fmt.Errorf("%w: %s", ErrRateCardNotFound, id)
	}

	delete(s.cards, id)
	return nil
}

// List returns every stored rate card in no particular order.
func (s *InMemoryRateCardStore) List(_ context.Context) ([]*RateCard, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	cards := make([]*RateCard, 0, len(s.cards))
	for _, card := range s.cards {
		cards = append(cards, card.Clone())
	}

	return cards, nil
}
