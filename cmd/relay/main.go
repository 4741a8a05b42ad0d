// cmd/relay/main.go
package main

import (
	"context"
	"log"
	"net"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	g "github.com/mahabubulhasibshawon/storefront-sync/internal/adapters/grpc"
	"github.com/mahabubulhasibshawon/storefront-sync/internal/adapters/rest"
	"github.com/mahabubulhasibshawon/storefront-sync/internal/config"
	"github.com/mahabubulhasibshawon/storefront-sync/internal/logger"
)

// relay serves the gRPC backend service in front of the REST API, forwarding
// each caller's bearer token upstream.
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}
	lg, err := logger.New(cfg.Log.Level)
	if err != nil {
		log.Fatalf("failed to build logger: %v", err)
	}
	defer lg.Sync()

	upstream := rest.NewClient(cfg.Backend.URL, g.ForwardedToken{}, cfg.Backend.Timeout)
	relay := g.NewRelay(upstream, []byte(cfg.Relay.JWTSecret), lg)
	if cfg.Relay.JWTSecret == "" {
		lg.Warn("JWT_SECRET not set; tokens are checked for presence only")
	}

	lis, err := net.Listen("tcp", cfg.Relay.Addr)
	if err != nil {
		lg.Fatal("failed to listen", zap.String("addr", cfg.Relay.Addr), zap.Error(err))
	}
	grpcServer := relay.NewServer()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	go func() {
		<-ctx.Done()
		lg.Info("shutting down")
		grpcServer.GracefulStop()
	}()

	lg.Info("gRPC relay listening", zap.String("addr", cfg.Relay.Addr), zap.String("upstream", cfg.Backend.URL))
	if err := grpcServer.Serve(lis); err != nil {
		lg.Fatal("failed to serve", zap.Error(err))
	}
}
