// cmd/syncd/wire.go
package main

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	g "github.com/mahabubulhasibshawon/storefront-sync/internal/adapters/grpc"
	"github.com/mahabubulhasibshawon/storefront-sync/internal/adapters/redis"
	"github.com/mahabubulhasibshawon/storefront-sync/internal/adapters/repository"
	"github.com/mahabubulhasibshawon/storefront-sync/internal/adapters/rest"
	"github.com/mahabubulhasibshawon/storefront-sync/internal/adapters/sqlite"
	"github.com/mahabubulhasibshawon/storefront-sync/internal/application"
	"github.com/mahabubulhasibshawon/storefront-sync/internal/config"
	"github.com/mahabubulhasibshawon/storefront-sync/internal/ports"
)

type closer func() error

func openStore(ctx context.Context, cfg *config.Config, log *zap.Logger) (ports.StorePort, closer, error) {
	switch cfg.Store.Driver {
	case "sqlite":
		s, err := sqlite.Open(cfg.Store.Path)
		if err != nil {
			return nil, nil, err
		}
		log.Info("using sqlite store", zap.String("path", cfg.Store.Path))
		return s, s.Close, nil
	case "redis":
		s := redis.NewStore(cfg.Store.RedisAddr, cfg.Store.RedisUser, cfg.Store.RedisPass, 0, cfg.Store.RedisPrefix)
		if err := s.Ping(ctx); err != nil {
			return nil, nil, fmt.Errorf("failed to connect to Redis: %w", err)
		}
		log.Info("using redis store", zap.String("addr", cfg.Store.RedisAddr))
		return s, s.Close, nil
	case "postgres":
		s, err := repository.Open(ctx, cfg.Store.DatabaseURL)
		if err != nil {
			return nil, nil, err
		}
		log.Info("using postgres store")
		return s, s.Close, nil
	default:
		return nil, nil, fmt.Errorf("unknown store driver %q", cfg.Store.Driver)
	}
}

func newBackend(cfg *config.Config, store ports.StorePort, log *zap.Logger) (ports.BackendPort, closer, error) {
	tokens := application.StoredToken{Store: store}
	switch cfg.Backend.Transport {
	case "rest":
		log.Info("using rest backend", zap.String("url", cfg.Backend.URL))
		return rest.NewClient(cfg.Backend.URL, tokens, cfg.Backend.Timeout), func() error { return nil }, nil
	case "grpc":
		conn, err := g.Dial(cfg.Backend.GRPCAddr)
		if err != nil {
			return nil, nil, fmt.Errorf("dial %s: %w", cfg.Backend.GRPCAddr, err)
		}
		log.Info("using grpc backend", zap.String("addr", cfg.Backend.GRPCAddr))
		return g.NewClient(conn, tokens, cfg.Backend.Timeout), conn.Close, nil
	default:
		return nil, nil, fmt.Errorf("unknown backend transport %q", cfg.Backend.Transport)
	}
}
