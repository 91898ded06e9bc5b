package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/liinaD3210/Tender-Expert/internal/analysis"
	"github.com/liinaD3210/Tender-Expert/internal/api"
	"github.com/liinaD3210/Tender-Expert/internal/config"
	"github.com/liinaD3210/Tender-Expert/internal/llm"
	"github.com/liinaD3210/Tender-Expert/internal/session"
	"github.com/liinaD3210/Tender-Expert/internal/websearch"
)

func main() {
	log := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	gemini, err := llm.NewGeminiClient(ctx, cfg.GeminiAPIKey, cfg.GeminiModel, log)
	if err != nil {
		log.Error("gemini client init failed", "error", err)
		os.Exit(1)
	}

	pipeline := analysis.NewPipeline(gemini, log)

	var market *websearch.Market
	if cfg.SearchConfigured() {
		cache := websearch.NewCache(cfg.SearchCacheTTL, cfg.SearchCacheSize)
		google := websearch.NewGoogleClient(cfg.SearchAPIKey, cfg.SearchEngineID, cache)
		market = websearch.NewMarket(gemini, google, cfg.SearchResultCount, log)
	} else {
		log.Warn("search credentials not set, market search disabled")
	}

	sessions := session.NewStore(cfg.SessionTTL)
	go sessions.Run(ctx)

	srv := api.NewServer(pipeline, market, sessions, log, cfg)

	httpServer := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      srv,
		ReadTimeout:  60 * time.Second,
		WriteTimeout: 300 * time.Second, // a full comparison run is several model calls
		IdleTimeout:  60 * time.Second,
	}

	// Graceful shutdown.
	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		<-sigCh
		log.Info("shutting down...")

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer shutdownCancel()
		httpServer.Shutdown(shutdownCtx)
		cancel()
	}()

	log.Info("starting tender-expert", "port", cfg.Port)
	if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Error("server error", "error", err)
		os.Exit(1)
	}
}
