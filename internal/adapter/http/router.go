package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/khelbook/backoffice/internal/adapter/http/handler"
	"github.com/khelbook/backoffice/internal/adapter/http/middleware"
	"github.com/khelbook/backoffice/internal/infrastructure/auth"
)

// RouterConfig holds dependencies for the router.
type RouterConfig struct {
	DirectoryHandler *handler.DirectoryHandler
	LedgerHandler    *handler.LedgerHandler
	ApprovalHandler  *handler.ApprovalHandler
	BalanceHandler   *handler.BalanceHandler
	HealthHandler    *handler.HealthHandler
	AuthHandler      *handler.AuthHandler

	// JWTManager enables authentication when set. Without it the API is
	// open, which is only acceptable for local development.
	JWTManager *auth.JWTManager

	// Metrics records per-route request counts and latencies when set.
	Metrics *middleware.MetricsMiddleware

	// Logging replaces chi's default request logger when set.
	Logging *middleware.LoggingMiddleware
}

// NewRouter creates a new HTTP router.
func NewRouter(cfg RouterConfig) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	if cfg.Logging != nil {
		r.Use(cfg.Logging.Wrap)
	} else {
		r.Use(chimiddleware.Logger)
	}
	if cfg.Metrics != nil {
		r.Use(cfg.Metrics.Wrap)
	}
	r.Use(middleware.Recovery)

	// Health and observability endpoints
	r.Get("/health", cfg.HealthHandler.Liveness)
	r.Get("/ready", cfg.HealthHandler.Readiness)
	r.Handle("/metrics", promhttp.Handler())

	// Authentication
	if cfg.AuthHandler != nil {
		r.Post("/auth/login", cfg.AuthHandler.Login)
	}

	// API v1
	r.Route("/api/v1", func(r chi.Router) {
		if cfg.JWTManager != nil {
			r.Use(middleware.AuthMiddleware(cfg.JWTManager))
		}

		if cfg.AuthHandler != nil {
			r.Get("/me", cfg.AuthHandler.GetCurrentActor)
		}

		// Banks
		r.Route("/banks", func(r chi.Router) {
			r.Post("/", cfg.DirectoryHandler.CreateBank)
			r.Get("/", cfg.DirectoryHandler.ListBanks)
			r.Get("/{id}", cfg.DirectoryHandler.GetBank)
			r.Get("/{id}/balance", cfg.BalanceHandler.BankBalance)
		})

		// Websites
		r.Route("/websites", func(r chi.Router) {
			r.Post("/", cfg.DirectoryHandler.CreateWebsite)
			r.Get("/", cfg.DirectoryHandler.ListWebsites)
			r.Get("/{id}", cfg.DirectoryHandler.GetWebsite)
			r.Get("/{id}/balance", cfg.BalanceHandler.WebsiteBalance)
		})

		// Client profiles
		r.Route("/users", func(r chi.Router) {
			r.Post("/", cfg.DirectoryHandler.CreateUser)
			r.Get("/", cfg.DirectoryHandler.ListUsers)
			r.Get("/{id}", cfg.DirectoryHandler.GetUser)
			r.Get("/{id}/entries", cfg.LedgerHandler.ListByUser)
		})

		// Introducer commission views
		r.Route("/introducers", func(r chi.Router) {
			r.Get("/{id}/balance", cfg.BalanceHandler.IntroducerBalance)
			r.Get("/{id}/due", cfg.BalanceHandler.IntroducerDue)
		})

		// Ledger entries
		r.Route("/entries", func(r chi.Router) {
			r.Post("/direct", cfg.LedgerHandler.RecordDirect)
			r.Get("/direct/{id}", cfg.LedgerHandler.GetDirect)
			r.Post("/bank", cfg.LedgerHandler.RecordBank)
			r.Post("/website", cfg.LedgerHandler.RecordWebsite)
			r.Post("/introducer", cfg.LedgerHandler.RecordIntroducer)
			r.Get("/totals", cfg.LedgerHandler.Totals)
		})

		// Change requests
		r.Route("/requests", func(r chi.Router) {
			r.Post("/", cfg.ApprovalHandler.Propose)
			r.Get("/", cfg.ApprovalHandler.ListPending)

			// Resolution is reserved for superadmins.
			r.Group(func(r chi.Router) {
				if cfg.JWTManager != nil {
					r.Use(middleware.RequireResolver)
				}
				r.Post("/{id}/approve", cfg.ApprovalHandler.Approve)
				r.Post("/{id}/reject", cfg.ApprovalHandler.Reject)
			})
		})

		// Archive
		r.Get("/archive", cfg.ApprovalHandler.ListArchive)
	})

	return r
}
