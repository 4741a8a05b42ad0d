package application

import (
	"context"
	"errors"
	"sync"

	"github.com/mahabubulhasibshawon/storefront-sync/internal/domain"
)

// memStore is an in-memory StorePort; failDelete makes Delete fail for one key.
type memStore struct {
	mu         sync.Mutex
	data       map[string]string
	deletes    []string
	failDelete string
}

func newMemStore(seed map[string]string) *memStore {
	s := &memStore{data: map[string]string{}}
	for k, v := range seed {
		s.data[k] = v
	}
	return s
}

func (s *memStore) Get(_ context.Context, key string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	v, ok := s.data[key]
	if !ok {
		return "", domain.ErrNotFound
	}
	return v, nil
}

func (s *memStore) Set(_ context.Context, key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[key] = value
	return nil
}

func (s *memStore) Delete(_ context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if key == s.failDelete {
		return errors.New("disk full")
	}
	s.deletes = append(s.deletes, key)
	delete(s.data, key)
	return nil
}

func (s *memStore) Ping(context.Context) error { return nil }

func (s *memStore) has(key string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.data[key]
	return ok
}
