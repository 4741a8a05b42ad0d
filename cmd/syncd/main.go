// cmd/syncd/main.go
package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/pflag"
	"go.uber.org/zap"

	"github.com/mahabubulhasibshawon/storefront-sync/internal/application"
	"github.com/mahabubulhasibshawon/storefront-sync/internal/config"
	"github.com/mahabubulhasibshawon/storefront-sync/internal/logger"
	"github.com/mahabubulhasibshawon/storefront-sync/internal/metrics"
)

const usage = `usage: syncd <command> [flags]

commands:
  run            restore the session and keep the collections reconciled (default)
  send-code      --phone P
  verify         --phone P --code C [--name N]
  login          --phone P --pin N
  setup-pin      --pin N
  unlock         --pin N
  status         print the restored session and cached customers
  dashboard      print the supplier's summary counters
  customer       --location ID [--address A] show a customer, or update its address
  logout         clear the session and every cached collection
`

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

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	store, closeStore, err := openStore(ctx, cfg, lg)
	if err != nil {
		lg.Fatal("failed to open store", zap.Error(err))
	}
	defer closeStore()

	backend, closeBackend, err := newBackend(cfg, store, lg)
	if err != nil {
		lg.Fatal("failed to build backend", zap.Error(err))
	}
	defer closeBackend()

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	coord := application.NewCoordinator(store, backend, lg, metrics.New(reg))

	cmd, rest := "run", os.Args[1:]
	if len(rest) > 0 && rest[0] != "" && rest[0][0] != '-' {
		cmd, rest = rest[0], rest[1:]
	}
	if err := dispatch(ctx, cmd, rest, cfg, coord, reg, lg); err != nil {
		lg.Error("command failed", zap.String("command", cmd), zap.Error(err))
		os.Exit(1)
	}
}

func dispatch(ctx context.Context, cmd string, argv []string, cfg *config.Config, coord *application.Coordinator, reg *prometheus.Registry, lg *zap.Logger) error {
	fs := pflag.NewFlagSet(cmd, pflag.ContinueOnError)
	phone := fs.String("phone", "", "supplier phone number")
	code := fs.String("code", "", "one-time code")
	name := fs.String("name", "", "supplier name for sign-up")
	pin := fs.String("pin", "", "4 to 6 digit PIN")
	location := fs.Int64("location", 0, "customer location id")
	address := fs.String("address", "", "new customer address")
	if err := fs.Parse(argv); err != nil {
		return err
	}

	switch cmd {
	case "run":
		return run(ctx, cfg, coord, reg, lg)
	case "send-code":
		return coord.Auth.SendCode(ctx, *phone)
	case "verify":
		s, err := coord.Auth.VerifyCode(ctx, *phone, *code, *name)
		if err != nil {
			return err
		}
		fmt.Printf("signed in as %s (%d)\n", s.Name, s.ID)
		return nil
	case "login":
		s, err := coord.Auth.LoginWithPIN(ctx, *phone, *pin)
		if err != nil {
			return err
		}
		fmt.Printf("signed in as %s (%d)\n", s.Name, s.ID)
		return nil
	case "setup-pin":
		if coord.Start(ctx) == nil {
			return errors.New("sign in first")
		}
		return coord.Auth.SetupPIN(ctx, *pin)
	case "unlock":
		coord.Start(ctx)
		s, err := coord.Auth.UnlockWithPIN(ctx, *pin)
		if err != nil {
			return err
		}
		fmt.Printf("unlocked %s (%d)\n", s.Name, s.ID)
		return nil
	case "status":
		s := coord.Start(ctx)
		if s == nil {
			fmt.Println("signed out")
			return nil
		}
		fmt.Printf("signed in as %s (%d), %d cached customers\n", s.Name, s.ID, len(coord.Customers.Items()))
		return nil
	case "dashboard":
		if coord.Start(ctx) == nil {
			return errors.New("sign in first")
		}
		m, err := coord.Dashboard(ctx)
		if err != nil {
			return err
		}
		fmt.Printf("customers %d, active orders %d, pending %.2f, collected %.2f\n",
			m.TotalCustomers, m.ActiveOrders, m.PendingPayments, m.CompletedPayments)
		return nil
	case "customer":
		if coord.Start(ctx) == nil {
			return errors.New("sign in first")
		}
		cu, err := coord.CustomerDetails(ctx, *location)
		if err != nil {
			return err
		}
		if *address != "" {
			cu.Address = *address
			if err := coord.UpdateCustomer(ctx, cu, map[string]any{"customer_address": *address}); err != nil {
				return err
			}
		}
		fmt.Printf("%s (%d), %s, due %.2f\n", cu.Name, cu.LocationID, cu.Address, cu.DueAmount)
		return nil
	case "logout":
		coord.Start(ctx)
		return coord.Logout(ctx)
	default:
		fmt.Fprint(os.Stderr, usage)
		return fmt.Errorf("unknown command %q", cmd)
	}
}

func run(ctx context.Context, cfg *config.Config, coord *application.Coordinator, reg *prometheus.Registry, lg *zap.Logger) error {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))
	srv := &http.Server{Addr: cfg.Metrics.Addr, Handler: mux, ReadHeaderTimeout: 5 * time.Second}
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			lg.Error("metrics server failed", zap.Error(err))
		}
	}()
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	if s := coord.Start(ctx); s == nil {
		lg.Warn("no session; run `syncd login` or `syncd verify` first")
	}
	coord.OnMount(ctx)

	ticker := time.NewTicker(cfg.Sync.Interval)
	defer ticker.Stop()
	lg.Info("sync loop started", zap.Duration("interval", cfg.Sync.Interval), zap.String("metrics", cfg.Metrics.Addr))
	for {
		select {
		case <-ctx.Done():
			lg.Info("shutting down")
			return nil
		case <-ticker.C:
			if coord.Session.Current() == nil {
				coord.Start(ctx)
			}
			coord.OnFocus(ctx)
		}
	}
}
