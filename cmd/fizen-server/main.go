package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/fizenhive/fizen/internal/clients/gemini"
	"github.com/fizenhive/fizen/internal/clients/yahoo"
	"github.com/fizenhive/fizen/internal/common"
	"github.com/fizenhive/fizen/internal/server"
	"github.com/fizenhive/fizen/internal/services/chat"
	"github.com/fizenhive/fizen/internal/services/insight"
	"github.com/fizenhive/fizen/internal/services/portfolio"
	"github.com/fizenhive/fizen/internal/services/quote"
	"github.com/fizenhive/fizen/internal/services/screener"
	"github.com/fizenhive/fizen/internal/storage"
)

func main() {
	// .env is optional; real env vars win either way
	godotenv.Load()

	configPath := os.Getenv("FIZEN_CONFIG")
	if configPath == "" {
		configPath = "fizen.toml"
	}

	config, err := common.LoadConfig(configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	logger := common.NewLoggerFromConfig(config.Logging)
	common.PrintBanner(config, logger)

	ctx := context.Background()

	store, err := storage.NewManager(logger, config)
	if err != nil {
		logger.Fatal().Err(err).Msg("Failed to initialize storage")
	}
	defer store.Close()

	yahooClient := yahoo.NewClient(
		yahoo.WithBaseURL(config.Clients.Yahoo.BaseURL),
		yahoo.WithRateLimit(config.Clients.Yahoo.RateLimit),
		yahoo.WithTimeout(config.Clients.Yahoo.GetTimeout()),
		yahoo.WithLogger(logger),
	)

	geminiKey, err := common.ResolveAPIKey("gemini_api_key", config.Clients.Gemini.APIKey)
	if err != nil {
		// Last resort: a key persisted in the system KV store
		if v, kvErr := store.InternalStore().GetSystemKV(ctx, "gemini_api_key"); kvErr == nil && v != "" {
			geminiKey, err = v, nil
		}
	}
	if err != nil {
		logger.Fatal().Err(err).Msg("Gemini API key is required")
	}
	geminiClient, err := gemini.NewClient(ctx, geminiKey,
		gemini.WithModel(config.Clients.Gemini.Model),
		gemini.WithLogger(logger),
	)
	if err != nil {
		logger.Fatal().Err(err).Msg("Failed to initialize Gemini client")
	}

	srv := server.NewServer(server.Deps{
		Config:    config,
		Logger:    logger,
		Storage:   store,
		Insights:  insight.NewService(yahooClient, geminiClient, logger),
		Screener:  screener.NewService(yahooClient, logger),
		Quotes:    quote.NewService(yahooClient, logger),
		Chat:      chat.NewService(yahooClient, geminiClient, logger),
		Portfolio: portfolio.NewService(store, yahooClient, logger),
		Vault:     portfolio.NewVault(store, logger),
	})

	go func() {
		if err := srv.Start(); err != nil && err != http.ErrServerClosed {
			logger.Fatal().Err(err).Msg("HTTP server failed")
		}
	}()

	logger.Info().
		Str("url", fmt.Sprintf("http://localhost:%d", config.Server.Port)).
		Msg("Server ready")

	// Wait for interrupt signal
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	<-sigChan

	logger.Info().Msg("Shutdown signal received")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error().Err(err).Msg("HTTP server shutdown failed")
	}

	common.PrintShutdownBanner(logger)
}
