// internal/adapters/redis/redis.go
package redis

import (
	"context"
	"errors"

	"github.com/redis/go-redis/v9"

	"github.com/mahabubulhasibshawon/storefront-sync/internal/domain"
	"github.com/mahabubulhasibshawon/storefront-sync/internal/ports"
)

var _ ports.StorePort = (*Store)(nil)

// Store keeps the durable keys in redis under a namespace prefix. Entries
// never expire; the session lives until it is cleared.
type Store struct {
	client *redis.Client
	prefix string
}

func NewStore(addr, username, password string, db int, prefix string) *Store {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Username: username,
		Password: password,
		DB:       db,
	})
	return &Store{client: client, prefix: prefix}
}

func (s *Store) key(k string) string {
	return s.prefix + k
}

func (s *Store) Get(ctx context.Context, key string) (string, error) {
	val, err := s.client.Get(ctx, s.key(key)).Result()
	if errors.Is(err, redis.Nil) {
		return "", domain.ErrNotFound
	}
	return val, err
}

func (s *Store) Set(ctx context.Context, key, value string) error {
	return s.client.Set(ctx, s.key(key), value, 0).Err()
}

func (s *Store) Delete(ctx context.Context, key string) error {
	return s.client.Del(ctx, s.key(key)).Err()
}

func (s *Store) Ping(ctx context.Context) error {
	return s.client.Ping(ctx).Err()
}

func (s *Store) Close() error {
	return s.client.Close()
}
