// internal/application/snapshot.go
package application

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/mahabubulhasibshawon/storefront-sync/internal/domain"
	"github.com/mahabubulhasibshawon/storefront-sync/internal/logger"
	"github.com/mahabubulhasibshawon/storefront-sync/internal/ports"
)

// Snapshot is the durable whole-list copy of one collection. It is replaced
// wholesale and never merged.
type Snapshot[T any] struct {
	store ports.StorePort
	key   string
	log   *zap.Logger
}

func NewSnapshot[T any](store ports.StorePort, key string, log *zap.Logger) *Snapshot[T] {
	return &Snapshot[T]{store: store, key: key, log: logger.OrNop(log)}
}

func (s *Snapshot[T]) Save(ctx context.Context, records []T) error {
	if records == nil {
		records = []T{}
	}
	data, err := json.Marshal(records)
	if err != nil {
		return fmt.Errorf("encode %s: %w", s.key, err)
	}
	if err := s.store.Set(ctx, s.key, string(data)); err != nil {
		return fmt.Errorf("save %s: %w", s.key, err)
	}
	return nil
}

// Restore returns the stored records, or an empty slice when the key is
// absent, unreadable or corrupt.
func (s *Snapshot[T]) Restore(ctx context.Context) []T {
	raw, err := s.store.Get(ctx, s.key)
	if err != nil {
		if !errors.Is(err, domain.ErrNotFound) {
			s.log.Warn("snapshot read failed", zap.String("key", s.key), zap.Error(err))
		}
		return []T{}
	}
	var records []T
	if err := json.Unmarshal([]byte(raw), &records); err != nil {
		s.log.Warn("discarding corrupt snapshot", zap.String("key", s.key), zap.Error(err))
		return []T{}
	}
	if records == nil {
		return []T{}
	}
	return records
}

func (s *Snapshot[T]) Clear(ctx context.Context) error {
	if err := s.store.Delete(ctx, s.key); err != nil && !errors.Is(err, domain.ErrNotFound) {
		return fmt.Errorf("clear %s: %w", s.key, err)
	}
	return nil
}
