package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"menuboard/internal/cache"
	"menuboard/internal/catalog"
	"menuboard/internal/config"
	"menuboard/internal/locations"
	"menuboard/internal/mockmode"
	"menuboard/internal/square"
)

func main() {
	var addr string
	flag.StringVar(&addr, "addr", "", "Address to bind (overrides ADDR)")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}
	if addr == "" {
		addr = cfg.Server.Addr
	}

	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: cfg.Server.SlogLevel(),
	})))

	if err := runServer(cfg, addr); err != nil {
		log.Fatalf("server error: %v", err)
	}
}

func runServer(cfg *config.Config, addr string) error {
	store := cache.New()

	// Credentials are checked at first live-upstream use, so mock mode works
	// without them.
	client := square.NewLazy(cfg.Square)
	if err := cfg.Square.Validate(); err != nil && !cfg.Mocks.Enable {
		slog.Warn("square credentials missing; live endpoints will fail", "error", err)
	}

	mux := http.NewServeMux()

	locations.NewServer(
		locations.NewFetcher(client),
		locations.Mock{},
		store,
		cfg.Mocks.Enable,
	).Register(mux)

	catalog.NewServer(
		catalog.NewService(client),
		catalog.NewMock(),
		store,
		cfg.Mocks.Enable,
	).Register(mux)

	mockmode.NewServer(cfg.Mocks.Enable).Register(mux)

	mux.HandleFunc("GET /ready", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("OK"))
	})
	mux.Handle("GET /metrics", promhttp.Handler())

	server := &http.Server{
		Addr:    addr,
		Handler: WithMiddleware(mux),
	}

	serverErrors := make(chan error, 1)
	go func() {
		slog.Info("serving menuboard", "address", addr, "mock_default", cfg.Mocks.Enable)
		serverErrors <- server.ListenAndServe()
	}()

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		if err != nil && err != http.ErrServerClosed {
			return fmt.Errorf("server error: %w", err)
		}
		return nil
	case sig := <-shutdown:
		slog.Info("shutdown signal received", "signal", sig.String())
		return gracefulShutdown(server)
	}
}

func gracefulShutdown(server *http.Server) error {
	// Outstanding requests get 25 seconds (kubernetes grants 30).
	ctx, cancel := context.WithTimeout(context.Background(), 25*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		slog.Error("server shutdown error", "error", err)
		if closeErr := server.Close(); closeErr != nil {
			slog.Error("server close error", "error", closeErr)
		}
		return err
	}
	return nil
}
