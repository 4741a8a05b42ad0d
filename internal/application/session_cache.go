// internal/application/session_cache.go
package application

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"go.uber.org/zap"

	"github.com/mahabubulhasibshawon/storefront-sync/internal/domain"
	"github.com/mahabubulhasibshawon/storefront-sync/internal/logger"
	"github.com/mahabubulhasibshawon/storefront-sync/internal/ports"
)

// Clearer is state that must not outlive the session that fetched it.
type Clearer interface {
	Clear(ctx context.Context) error
}

// SessionCache is the single-slot durable store for the signed-in supplier.
// It also keeps the resident copy handed out by Current.
type SessionCache struct {
	store   ports.StorePort
	cascade []Clearer
	log     *zap.Logger

	mu      sync.Mutex
	current *domain.Supplier
}

// NewSessionCache builds the cache; cascade is cleared before the session on Clear.
func NewSessionCache(store ports.StorePort, log *zap.Logger, cascade ...Clearer) *SessionCache {
	return &SessionCache{store: store, cascade: cascade, log: logger.OrNop(log)}
}

func (c *SessionCache) Save(ctx context.Context, s domain.Supplier) error {
	if !s.Complete() {
		return fmt.Errorf("save session: supplier id missing")
	}
	data, err := json.Marshal(s)
	if err != nil {
		return fmt.Errorf("encode session: %w", err)
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	return c.save(ctx, s, data)
}

// SaveIfCurrent saves s only while the resident session still belongs to
// the same supplier. A sign-out that landed meanwhile yields domain.ErrNoSession.
func (c *SessionCache) SaveIfCurrent(ctx context.Context, s domain.Supplier) error {
	if !s.Complete() {
		return fmt.Errorf("save session: supplier id missing")
	}
	data, err := json.Marshal(s)
	if err != nil {
		return fmt.Errorf("encode session: %w", err)
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if c.current == nil || c.current.ID != s.ID {
		return domain.ErrNoSession
	}
	return c.save(ctx, s, data)
}

// save writes the encoded supplier; callers hold c.mu.
func (c *SessionCache) save(ctx context.Context, s domain.Supplier, data []byte) error {
	if err := c.store.Set(ctx, KeySession, string(data)); err != nil {
		return fmt.Errorf("save session: %w", err)
	}
	c.current = &s
	return nil
}

// Restore loads the persisted supplier. Absent, corrupt or incomplete data
// all yield domain.ErrNoSession.
func (c *SessionCache) Restore(ctx context.Context) (*domain.Supplier, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	raw, err := c.store.Get(ctx, KeySession)
	if err != nil {
		if !errors.Is(err, domain.ErrNotFound) {
			c.log.Warn("session read failed", zap.Error(err))
		}
		c.current = nil
		return nil, domain.ErrNoSession
	}
	var s domain.Supplier
	if err := json.Unmarshal([]byte(raw), &s); err != nil || !s.Complete() {
		c.log.Warn("discarding unreadable session", zap.Error(err))
		c.current = nil
		return nil, domain.ErrNoSession
	}
	c.current = &s
	out := s
	return &out, nil
}

// Current returns a copy of the resident supplier, or nil when signed out.
func (c *SessionCache) Current() *domain.Supplier {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.current == nil {
		return nil
	}
	out := *c.current
	return &out
}

// Clear removes the cascaded state first, then the session, token and PIN
// hash. If a cascade fails the session stays so the pair remains consistent.
func (c *SessionCache) Clear(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	for _, dep := range c.cascade {
		if err := dep.Clear(ctx); err != nil {
			return fmt.Errorf("clear session: %w", err)
		}
	}
	for _, key := range []string{KeySession, KeyAuthToken, KeyPINHash} {
		if err := c.store.Delete(ctx, key); err != nil && !errors.Is(err, domain.ErrNotFound) {
			return fmt.Errorf("clear %s: %w", key, err)
		}
	}
	c.current = nil
	return nil
}

func (c *SessionCache) SaveToken(ctx context.Context, token string) error {
	return c.store.Set(ctx, KeyAuthToken, token)
}

// Token implements the transports' token source. A missing token is "".
func (c *SessionCache) Token(ctx context.Context) (string, error) {
	tok, err := c.store.Get(ctx, KeyAuthToken)
	if errors.Is(err, domain.ErrNotFound) {
		return "", nil
	}
	return tok, err
}

func (c *SessionCache) SavePINHash(ctx context.Context, hash string) error {
	return c.store.Set(ctx, KeyPINHash, hash)
}

func (c *SessionCache) PINHash(ctx context.Context) (string, error) {
	return c.store.Get(ctx, KeyPINHash)
}

// StoredToken reads the bearer token straight from the store, for transports
// built before the session cache exists.
type StoredToken struct {
	Store ports.StorePort
}

func (t StoredToken) Token(ctx context.Context) (string, error) {
	tok, err := t.Store.Get(ctx, KeyAuthToken)
	if errors.Is(err, domain.ErrNotFound) {
		return "", nil
	}
	return tok, err
}
