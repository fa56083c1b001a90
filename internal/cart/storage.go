package cart

import (
	"context"
	"encoding/json"
	"errors"
)

// ErrNotFound is returned by a Storage when no cart exists for a session.
// The Store treats it the same as an empty cart.
var ErrNotFound = errors.New("cart not found")

// Storage persists the serialized cart payload under one entry per session.
type Storage interface {
	Load(ctx context.Context, sessionID string) ([]byte, error)
	Save(ctx context.Context, sessionID string, payload []byte) error
	Delete(ctx context.Context, sessionID string) error
}

func encode(c *Cart) ([]byte, error) {
	return json.Marshal(c)
}

// decode tolerates corrupt payloads: anything that does not unmarshal into
// the cart shape comes back as an empty cart, never an error.
func decode(payload []byte) *Cart {
	c := &Cart{}
	if len(payload) == 0 {
		return c
	}
	if err := json.Unmarshal(payload, c); err != nil {
		return &Cart{}
	}
	return c
}
