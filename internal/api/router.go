// Package api wires the HTTP surface: routing, middleware, and handlers.
package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/degiro-dashboard/backend/internal/api/handlers"
	"github.com/degiro-dashboard/backend/internal/api/middleware"
	"github.com/degiro-dashboard/backend/internal/config"
	"github.com/degiro-dashboard/backend/internal/service"
)

// Services bundles the service dependencies the router needs.
type Services struct {
	Session     *service.SessionService
	Account     *service.AccountService
	Portfolio   *service.PortfolioService
	Dividend    *service.DividendService
	Transaction *service.TransactionService
}

// NewRouter creates and configures the HTTP router.
func NewRouter(svcs Services, cfg *config.Config) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(middleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(chimiddleware.Recoverer)

	// CORS middleware
	corsMiddleware := middleware.NewCORS(cfg.CORS.AllowedOrigins)
	r.Use(corsMiddleware.Handler)

	// Credential endpoints get a per-IP rate limit so a misbehaving frontend
	// cannot hammer the brokerage with login attempts.
	loginLimiter := middleware.NewLoginRateLimiter()

	// API routes
	r.Route("/api", func(r chi.Router) {
		authHandler := handlers.NewAuthHandler(svcs.Session)
		r.With(loginLimiter.Limit).Post("/login", authHandler.Login)

		accountHandler := handlers.NewAccountHandler(svcs.Account)
		r.Get("/client", accountHandler.GetClientProfile)

		portfolioHandler := handlers.NewPortfolioHandler(svcs.Portfolio)
		r.Get("/portfolio", portfolioHandler.GetPortfolio)
		r.Post("/products", portfolioHandler.GetProducts)

		dividendHandler := handlers.NewDividendHandler(svcs.Dividend)
		r.Get("/dividends", dividendHandler.GetDividends)

		transactionHandler := handlers.NewTransactionHandler(svcs.Transaction)
		r.Get("/transactions", transactionHandler.GetTransactions)

		// System namespace
		r.Route("/system", func(r chi.Router) {
			systemHandler := handlers.NewSystemHandler()
			r.Get("/health", systemHandler.Health)
			r.Get("/version", systemHandler.Version)
		})
	})

	return r
}
