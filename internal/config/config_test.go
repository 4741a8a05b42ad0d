package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Chdir(t.TempDir())

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "sqlite", cfg.Store.Driver)
	assert.Equal(t, "rest", cfg.Backend.Transport)
	assert.Equal(t, 30*time.Second, cfg.Sync.Interval)
	assert.Equal(t, 15*time.Second, cfg.Backend.Timeout)
}

func TestLoad_Environment(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("STORE_DRIVER", "redis")
	t.Setenv("REDIS_ADDR", "cache:6380")
	t.Setenv("BACKEND_TRANSPORT", "grpc")
	t.Setenv("SYNC_INTERVAL", "5s")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "redis", cfg.Store.Driver)
	assert.Equal(t, "cache:6380", cfg.Store.RedisAddr)
	assert.Equal(t, "grpc", cfg.Backend.Transport)
	assert.Equal(t, 5*time.Second, cfg.Sync.Interval)
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
	}{
		{"unknown driver", map[string]string{"STORE_DRIVER": "floppy"}},
		{"postgres without dsn", map[string]string{"STORE_DRIVER": "postgres"}},
		{"unknown transport", map[string]string{"BACKEND_TRANSPORT": "carrier-pigeon"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Chdir(t.TempDir())
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			_, err := Load()
			assert.Error(t, err)
		})
	}
}
