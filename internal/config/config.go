// internal/config/config.go
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	Store struct {
		Driver      string `mapstructure:"driver"`
		Path        string `mapstructure:"path"`
		RedisAddr   string `mapstructure:"redis_addr"`
		RedisUser   string `mapstructure:"redis_username"`
		RedisPass   string `mapstructure:"redis_password"`
		RedisPrefix string `mapstructure:"redis_prefix"`
		DatabaseURL string `mapstructure:"database_url"`
	} `mapstructure:"store"`

	Backend struct {
		Transport string        `mapstructure:"transport"`
		URL       string        `mapstructure:"url"`
		GRPCAddr  string        `mapstructure:"grpc_addr"`
		Timeout   time.Duration `mapstructure:"timeout"`
	} `mapstructure:"backend"`

	Sync struct {
		Interval time.Duration `mapstructure:"interval"`
	} `mapstructure:"sync"`

	Log struct {
		Level string `mapstructure:"level"`
	} `mapstructure:"log"`

	Metrics struct {
		Addr string `mapstructure:"addr"`
	} `mapstructure:"metrics"`

	Relay struct {
		Addr      string `mapstructure:"addr"`
		JWTSecret string `mapstructure:"jwt_secret"`
	} `mapstructure:"relay"`
}

// envBindings maps config keys onto the flat environment names used in .env files.
var envBindings = map[string]string{
	"store.driver":         "STORE_DRIVER",
	"store.path":           "STORE_PATH",
	"store.redis_addr":     "REDIS_ADDR",
	"store.redis_username": "REDIS_USERNAME",
	"store.redis_password": "REDIS_PASSWORD",
	"store.redis_prefix":   "REDIS_PREFIX",
	"store.database_url":   "DATABASE_URL",
	"backend.transport":    "BACKEND_TRANSPORT",
	"backend.url":          "BACKEND_URL",
	"backend.grpc_addr":    "BACKEND_GRPC_ADDR",
	"backend.timeout":      "BACKEND_TIMEOUT",
	"sync.interval":        "SYNC_INTERVAL",
	"log.level":            "LOG_LEVEL",
	"metrics.addr":         "METRICS_ADDR",
	"relay.addr":           "RELAY_ADDR",
	"relay.jwt_secret":     "JWT_SECRET",
}

// Load reads .env (if present) and the process environment on top of defaults.
func Load() (*Config, error) {
	_ = godotenv.Load()

	v := viper.New()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	for key, env := range envBindings {
		if err := v.BindEnv(key, env); err != nil {
			return nil, fmt.Errorf("bind %s: %w", env, err)
		}
	}

	v.SetDefault("store.driver", "sqlite")
	v.SetDefault("store.path", "storefront.db")
	v.SetDefault("store.redis_addr", "localhost:6379")
	v.SetDefault("store.redis_prefix", "storefront:")
	v.SetDefault("backend.transport", "rest")
	v.SetDefault("backend.url", "http://localhost:3000/api")
	v.SetDefault("backend.grpc_addr", "localhost:50051")
	v.SetDefault("backend.timeout", 15*time.Second)
	v.SetDefault("sync.interval", 30*time.Second)
	v.SetDefault("log.level", "info")
	v.SetDefault("metrics.addr", ":9102")
	v.SetDefault("relay.addr", ":50051")

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) validate() error {
	switch c.Store.Driver {
	case "sqlite", "redis", "postgres":
	default:
		return fmt.Errorf("unknown STORE_DRIVER %q", c.Store.Driver)
	}
	if c.Store.Driver == "postgres" && c.Store.DatabaseURL == "" {
		return fmt.Errorf("DATABASE_URL is required for the postgres store")
	}
	switch c.Backend.Transport {
	case "rest", "grpc":
	default:
		return fmt.Errorf("unknown BACKEND_TRANSPORT %q", c.Backend.Transport)
	}
	return nil
}
