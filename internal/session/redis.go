package session

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/redis/go-redis/v9"
)

// RedisStore keeps sessions in Redis so that multiple instances can
// share them. Expiry is enforced by the key TTL; there is nothing to
// sweep.
type RedisStore struct {
	client *redis.Client
	prefix string
}

// NewRedisStore returns a session store backed by the given client.
func NewRedisStore(client *redis.Client) *RedisStore {
	return &RedisStore{client: client, prefix: "session:"}
}

func (r *RedisStore) key(token string) string { return r.prefix + token }

func (r *RedisStore) Create(ctx context.Context, id Identity) (string, error) {
	token, err := NewToken()
	if err != nil {
		return "", err
	}
	data, err := json.Marshal(id)
	if err != nil {
		return "", fmt.Errorf("session: marshal identity: %w", err)
	}
	if err := r.client.Set(ctx, r.key(token), data, TTL).Err(); err != nil {
		return "", err
	}
	return token, nil
}

func (r *RedisStore) Lookup(ctx context.Context, token string) (Identity, error) {
	val, err := r.client.Get(ctx, r.key(token)).Result()
	if err == redis.Nil {
		return Identity{}, ErrNoSession
	}
	if err != nil {
		return Identity{}, err
	}
	var id Identity
	if err := json.Unmarshal([]byte(val), &id); err != nil {
		return Identity{}, fmt.Errorf("session: unmarshal identity: %w", err)
	}
	return id, nil
}

func (r *RedisStore) Destroy(ctx context.Context, token string) error {
	return r.client.Del(ctx, r.key(token)).Err()
}
