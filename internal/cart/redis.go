package cart

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

const keyPrefix = "cart-storage:"

// RedisStorage keeps one serialized cart per session, expiring together
// with the auth cookie so abandoned carts clean themselves up.
type RedisStorage struct {
	Client *redis.Client
	TTL    time.Duration
}

func NewRedisStorage(client *redis.Client, ttl time.Duration) *RedisStorage {
	return &RedisStorage{Client: client, TTL: ttl}
}

func (r *RedisStorage) Load(ctx context.Context, sessionID string) ([]byte, error) {
	payload, err := r.Client.Get(ctx, keyPrefix+sessionID).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return payload, nil
}

func (r *RedisStorage) Save(ctx context.Context, sessionID string, payload []byte) error {
	return r.Client.Set(ctx, keyPrefix+sessionID, payload, r.TTL).Err()
}

func (r *RedisStorage) Delete(ctx context.Context, sessionID string) error {
	return r.Client.Del(ctx, keyPrefix+sessionID).Err()
}
