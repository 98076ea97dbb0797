package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
)

// CartStore persists per-user carts as a JSON array of product IDs under
// cart:<userID>. Carts have no TTL; they survive until cleared by an order
// or an explicit removal.
type CartStore struct {
	client redis.UniversalClient
	prefix string
}

// NewCartStore creates a new Redis-based cart store.
func NewCartStore(client redis.UniversalClient) *CartStore {
	return &CartStore{client: client, prefix: "cart:"}
}

// Get returns the cart contents for the user. A missing cart is an empty
// cart, not an error.
func (s *CartStore) Get(ctx context.Context, userID string) ([]string, error) {
	if userID == "" {
		return nil, errors.New("user ID cannot be empty")
	}

	data, err := s.client.Get(ctx, s.prefix+userID).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return []string{}, nil
		}
		return nil, fmt.Errorf("redis get: %w", err)
	}

	var items []string
	if unmarshalErr := json.Unmarshal([]byte(data), &items); unmarshalErr != nil {
		return nil, fmt.Errorf("unmarshal cart: %w", unmarshalErr)
	}
	if items == nil {
		items = []string{}
	}
	return items, nil
}

// Save replaces the cart contents for the user.
func (s *CartStore) Save(ctx context.Context, userID string, items []string) error {
	if userID == "" {
		return errors.New("user ID cannot be empty")
	}
	if items == nil {
		items = []string{}
	}

	data, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("marshal cart: %w", err)
	}
	return s.client.Set(ctx, s.prefix+userID, data, 0).Err()
}

// Delete removes the user's cart entirely.
func (s *CartStore) Delete(ctx context.Context, userID string) error {
	if userID == "" {
		return nil
	}
	return s.client.Del(ctx, s.prefix+userID).Err()
}
