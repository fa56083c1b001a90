package cart

import (
	"context"
	"errors"

	"github.com/clubverde/memberweb/internal/logging"
	"github.com/clubverde/memberweb/internal/models"
)

// Store binds session carts to a Storage backend. Mutations are applied to
// the in-memory cart first and then written through; a failed write is
// logged and swallowed so the shopper's action still succeeds.
type Store struct {
	Storage Storage
}

func NewStore(storage Storage) *Store {
	return &Store{Storage: storage}
}

// Get rehydrates the session's cart. A missing entry or corrupt payload
// yields an empty cart; only backend transport errors are reported.
func (s *Store) Get(ctx context.Context, sessionID string) (*Cart, error) {
	payload, err := s.Storage.Load(ctx, sessionID)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return &Cart{}, nil
		}
		return nil, err
	}
	return decode(payload), nil
}

func (s *Store) AddItem(ctx context.Context, sessionID string, item models.CartItem) (*Cart, error) {
	c, err := s.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	c.AddItem(item)
	s.persist(ctx, sessionID, c)
	return c, nil
}

func (s *Store) RemoveItem(ctx context.Context, sessionID, productID string) (*Cart, error) {
	c, err := s.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	c.RemoveItem(productID)
	s.persist(ctx, sessionID, c)
	return c, nil
}

func (s *Store) UpdateQuantity(ctx context.Context, sessionID, productID string, quantity int) (*Cart, error) {
	c, err := s.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	c.UpdateQuantity(productID, quantity)
	s.persist(ctx, sessionID, c)
	return c, nil
}

// Clear is used after a successful checkout.
func (s *Store) Clear(ctx context.Context, sessionID string) error {
	if err := s.Storage.Delete(ctx, sessionID); err != nil {
		logging.FromContext(ctx).Warn("cart_clear_failed", "session_id", sessionID, "error", err)
	}
	return nil
}

func (s *Store) persist(ctx context.Context, sessionID string, c *Cart) {
	payload, err := encode(c)
	if err != nil {
		logging.FromContext(ctx).Warn("cart_encode_failed", "session_id", sessionID, "error", err)
		return
	}
	if err := s.Storage.Save(ctx, sessionID, payload); err != nil {
		logging.FromContext(ctx).Warn("cart_persist_failed", "session_id", sessionID, "error", err)
	}
}
