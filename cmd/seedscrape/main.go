package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/sowtrack/seedscrape/api"
	"github.com/sowtrack/seedscrape/cache"
	"github.com/sowtrack/seedscrape/config"
	"github.com/sowtrack/seedscrape/fetch"
	"github.com/sowtrack/seedscrape/identity"
	"github.com/sowtrack/seedscrape/llm"
	"github.com/sowtrack/seedscrape/pipeline"
	"github.com/sowtrack/seedscrape/vendors"
)

func main() {
	// ── 1. Load configuration ───────────────────────────────────────
	_ = godotenv.Load()
	cfg := config.Load()

	// ── 2. Initialise structured logging ────────────────────────────
	initLogger(cfg.Log)
	slog.Info("seedscrape starting",
		"host", cfg.Server.Host,
		"port", cfg.Server.Port,
		"mode", cfg.Server.Mode,
		"vendors", len(cfg.Fetch.AllowedDomains),
	)

	// ── 3. Build the pipeline ───────────────────────────────────────
	fetcher := fetch.New(cfg.Fetch.Timeout, cfg.Fetch.ProbeTimeout, cfg.Fetch.Proxy)
	registry := vendors.NewRegistry()
	resolver := identity.NewResolver()
	aiClient := llm.NewClient(nil, cfg.AI)
	searchClient := llm.NewSearchClient(nil, cfg.AI)

	orch := pipeline.New(cfg, fetcher, registry, resolver, aiClient, searchClient, slog.Default())

	if aiClient.Enabled() {
		slog.Info("structured extraction enabled", "model", cfg.AI.OpenAIModel)
	}
	if searchClient.Enabled() {
		slog.Info("web-search fallback enabled", "region", cfg.AI.Region)
	}

	// ── 4. Cache + router ───────────────────────────────────────────
	cc := cache.New(cfg.Cache.MaxEntries)
	startTime := time.Now()
	router := api.NewRouter(orch, registry, cfg, cc, startTime)

	// ── 5. Start HTTP server ────────────────────────────────────────
	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:    addr,
		Handler: router,
	}

	go func() {
		slog.Info("HTTP server listening", "addr", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("HTTP server error", "error", err)
			os.Exit(1)
		}
	}()

	// ── 6. Graceful shutdown ────────────────────────────────────────
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit
	slog.Info("shutdown signal received", "signal", sig.String())

	// Give in-flight requests 5 seconds to complete.
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		slog.Error("HTTP server forced shutdown", "error", err)
	} else {
		slog.Info("HTTP server drained gracefully")
	}

	slog.Info("seedscrape stopped")
}

// initLogger configures slog based on the LogConfig.
func initLogger(cfg config.LogConfig) {
	var level slog.Level
	switch cfg.Level {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{Level: level}

	var handler slog.Handler
	if cfg.Format == "text" {
		handler = slog.NewTextHandler(os.Stdout, opts)
	} else {
		handler = slog.NewJSONHandler(os.Stdout, opts)
	}

	slog.SetDefault(slog.New(handler))
}
