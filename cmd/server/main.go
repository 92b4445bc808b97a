package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/degiro-dashboard/backend/internal/api"
	"github.com/degiro-dashboard/backend/internal/config"
	"github.com/degiro-dashboard/backend/internal/degiro"
	"github.com/degiro-dashboard/backend/internal/service"
	"github.com/degiro-dashboard/backend/internal/version"
)

func main() {
	// Set up zerolog to use pretty printing
	log.Logger = log.Output(zerolog.ConsoleWriter{
		Out: os.Stderr,
	})

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load configuration")
	}
	if cfg.IsProduction() {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	} else {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}

	log.Info().Str("version", version.Version).Str("env", cfg.Env).Msg("Starting up")

	// Create the DeGiro client. No database: every entity this layer handles
	// is request-scoped and fetched fresh from the brokerage.
	client := degiro.NewTraderClient(cfg.Degiro.BaseURL, cfg.Degiro.Timeout)

	// Create services
	svcs := api.Services{
		Session:     service.NewSessionService(client),
		Account:     service.NewAccountService(client),
		Portfolio:   service.NewPortfolioService(client),
		Dividend:    service.NewDividendService(client),
		Transaction: service.NewTransactionService(client),
	}

	// Create router
	router := api.NewRouter(svcs, cfg)

	// Create HTTP server
	server := &http.Server{
		Addr:         cfg.Server.Addr,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in a goroutine
	go func() {
		log.Info().Str("addr", cfg.Server.Addr).Msg("Starting server")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("Server failed to start")
		}
	}()

	// Wait for interrupt signal for graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("Shutting down server...")

	// Graceful shutdown with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Fatal().Err(err).Msg("Server forced to shutdown")
	}

	log.Info().Msg("Server exited")
}
