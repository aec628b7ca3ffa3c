package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/putwheel/optionstream/internal/config"
	"github.com/putwheel/optionstream/internal/provider"
	"github.com/putwheel/optionstream/internal/relay"
	"github.com/putwheel/optionstream/internal/upstream"
	"github.com/putwheel/optionstream/internal/version"
	"github.com/putwheel/optionstream/internal/web"
)

func main() {
	configPath := flag.String("config", "configs/relay.local.yaml", "path to config file")
	flag.Parse()

	// Set up structured logging
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	}))
	slog.SetDefault(logger)

	logger.Info("starting relayd",
		"version", version.Version,
		"commit", version.Commit,
		"config", *configPath,
	)

	// Load configuration
	cfg, err := config.LoadAndValidate(*configPath)
	if err != nil {
		logger.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	logger.Info("configuration loaded",
		"stream_url", cfg.Provider.StreamURL,
		"data_url", cfg.Provider.DataURL,
	)

	// Create context with cancellation
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Handle shutdown signals
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigCh
		logger.Info("received shutdown signal", "signal", sig)
		cancel()
	}()

	// Create data API client
	providerClient := provider.NewClient(
		cfg.Provider.DataURL,
		cfg.Provider.Key,
		cfg.Provider.Secret,
		provider.WithLogger(logger),
		provider.WithTimeout(cfg.Provider.Timeout),
		provider.WithRetries(cfg.Provider.MaxRetries, time.Second),
	)

	// Create the tick relay
	r := relay.New(relay.Config{
		Upstream: upstream.Config{
			URL:          cfg.Provider.StreamURL,
			Key:          cfg.Provider.Key,
			Secret:       cfg.Provider.Secret,
			PingInterval: cfg.Stream.PingInterval,
			PingTimeout:  cfg.Stream.PingTimeout,
			BufferSize:   cfg.Stream.BufferSize,
		},
		ReadTimeout: cfg.Stream.ReadTimeout,
	}, logger)

	// Create the HTTP/WebSocket server
	webServer := web.NewServer(r, providerClient, logger)

	server := &http.Server{
		Addr:    fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler: webServer.Handler(),
	}

	go func() {
		logger.Info("listening", "addr", server.Addr)
		if err := server.ListenAndServe(); err != http.ErrServerClosed {
			logger.Error("server error", "error", err)
			cancel()
		}
	}()

	// Wait for shutdown
	<-ctx.Done()

	logger.Info("shutting down...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Warn("shutdown incomplete", "error", err)
	}

	logger.Info("relayd stopped")
}
