package sqlite

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mahabubulhasibshawon/storefront-sync/internal/domain"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	s, err := Open(dsn)
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func TestStore_RoundTrip(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	_, err := s.Get(ctx, "session")
	assert.ErrorIs(t, err, domain.ErrNotFound)

	require.NoError(t, s.Set(ctx, "session", `{"id":7}`))
	require.NoError(t, s.Set(ctx, "session", `{"id":8}`))
	got, err := s.Get(ctx, "session")
	require.NoError(t, err)
	assert.Equal(t, `{"id":8}`, got)

	require.NoError(t, s.Delete(ctx, "session"))
	require.NoError(t, s.Delete(ctx, "session"))
	_, err = s.Get(ctx, "session")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestStore_KeysAreIndependent(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	require.NoError(t, s.Set(ctx, "session", "a"))
	require.NoError(t, s.Set(ctx, "customersSnapshot", "b"))
	require.NoError(t, s.Delete(ctx, "customersSnapshot"))

	got, err := s.Get(ctx, "session")
	require.NoError(t, err)
	assert.Equal(t, "a", got)
	assert.NoError(t, s.Ping(ctx))
}
