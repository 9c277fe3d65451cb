// Command tanrouted serves shortest-route queries over HTTP and, when
// NATS_URL is set, over NATS request/reply. Settings come from the
// environment (see internal/config).
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/katalvlaran/tanroute/internal/api"
	"github.com/katalvlaran/tanroute/internal/broker"
	"github.com/katalvlaran/tanroute/internal/config"
	"github.com/katalvlaran/tanroute/internal/metrics"
	"github.com/katalvlaran/tanroute/internal/planner"
	"github.com/katalvlaran/tanroute/internal/store"
	"github.com/katalvlaran/tanroute/network"
	"github.com/katalvlaran/tanroute/tan"
)

const shutdownTimeout = 10 * time.Second

var (
	version     = "dev"
	showVersion = flag.Bool("version", false, "show command version")
)

func main() {
	flag.Parse()
	if *showVersion {
		fmt.Println(version)
		return
	}

	cfg, err := config.Load()
	if err != nil {
		slog.Error("config error", "error", err)
		os.Exit(1)
	}

	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: cfg.LogLevel}))

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := run(ctx, cfg, logger); err != nil {
		logger.Error("application error", "error", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg *config.Config, logger *slog.Logger) error {
	n, err := loadNetwork(ctx, cfg)
	if err != nil {
		return fmt.Errorf("load network: %w", err)
	}
	logger.Info("network loaded", "stations", n.Len(), "routes", n.RouteCount(), "strategy", cfg.Strategy)

	mcol := metrics.NewCollector()
	mcol.SetNetwork(n.Len(), n.RouteCount())
	if cfg.MetricsAddr != "" {
		msrv := mcol.Serve(cfg.MetricsAddr, logger)
		defer shutdown(msrv, logger)
	}

	p := planner.New(n, cfg.Strategy, cfg.QueryTimeout, mcol, logger)

	if cfg.NATSURL != "" {
		resp, err := broker.Connect(cfg.NATSURL, p, logger)
		if err != nil {
			return fmt.Errorf("nats: %w", err)
		}
		defer resp.Close()
		if err := resp.Serve(ctx, cfg.NATSSubject); err != nil {
			return fmt.Errorf("nats subscribe: %w", err)
		}
	}

	srv := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           api.NewRouter(p, logger),
		ReadHeaderTimeout: 5 * time.Second,
	}
	errCh := make(chan error, 1)
	go func() {
		logger.Info("http listening", "addr", cfg.HTTPAddr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case <-ctx.Done():
		logger.Info("shutting down")
		shutdown(srv, logger)
		return nil
	case err := <-errCh:
		return err
	}
}

func loadNetwork(ctx context.Context, cfg *config.Config) (*network.Network, error) {
	if cfg.NetworkFile != "" {
		f, err := os.Open(cfg.NetworkFile)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		q, err := tan.Parse(f)
		if err != nil {
			return nil, err
		}
		return q.Network, nil
	}

	db, err := store.Open(cfg.DatabaseURL)
	if err != nil {
		return nil, err
	}
	defer db.Close()
	if err := store.Ping(ctx, db); err != nil {
		return nil, err
	}
	return store.LoadNetwork(ctx, db)
}

func shutdown(srv *http.Server, logger *slog.Logger) {
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Warn("server shutdown", "error", err)
	}
}
