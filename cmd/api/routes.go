package main

import (
	"context"
	"database/sql"
	"encoding/json"
	"net/http"
	"time"

	"github.com/georgemunganga/mostrador/internal/modules/auth"
	"github.com/georgemunganga/mostrador/internal/modules/customer"
	"github.com/georgemunganga/mostrador/internal/modules/inventory"
	"github.com/georgemunganga/mostrador/internal/modules/payment"
	"github.com/georgemunganga/mostrador/internal/modules/pos"
	"github.com/georgemunganga/mostrador/internal/modules/report"
	"github.com/georgemunganga/mostrador/internal/modules/user"
	"github.com/georgemunganga/mostrador/internal/session"
	"github.com/georgemunganga/mostrador/internal/view"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func newRouter(db *sql.DB, views view.Renderer, sessions *session.Manager) http.Handler {
	router := chi.NewRouter()
	router.Use(middleware.RequestID)
	router.Use(middleware.RealIP)
	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)
	router.Use(sessions.Load)

	router.Get("/healthz", healthz(db))

	// ── Repositories ────────────────────────────────────────
	userRepo := user.NewPostgresRepository(db)
	productRepo := inventory.NewPostgresRepository(db)
	customerRepo := customer.NewPostgresRepository(db)

	// ── Login & landing ─────────────────────────────────────
	auth.NewHandler(auth.NewService(userRepo), sessions, views).RegisterRoutes(router)

	// ── Admin: accounts & catalog ───────────────────────────
	router.Group(func(r chi.Router) {
		r.Use(session.RequireAdmin)
		user.NewHandler(user.NewService(userRepo), views).RegisterRoutes(r)
		inventory.NewHandler(inventory.NewService(productRepo), views).RegisterRoutes(r)
	})

	// ── Counter: sales, customers, reports ──────────────────
	router.Group(func(r chi.Router) {
		r.Use(session.RequireSession)
		posService := pos.NewService(pos.NewPostgresRepository(db), productRepo, customerRepo)
		pos.NewHandler(posService, views).RegisterRoutes(r)
		customer.NewHandler(customer.NewService(customerRepo), views).RegisterRoutes(r)
		report.NewHandler(report.NewService(report.NewPostgresRepository(db)), views).RegisterRoutes(r)
	})

	// ── Running accounts (guards per route) ─────────────────
	payment.NewHandler(payment.NewService(payment.NewPostgresRepository(db)), views).RegisterRoutes(router)

	return router
}

func healthz(db *sql.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()

		w.Header().Set("Content-Type", "application/json")
		if err := db.PingContext(ctx); err != nil {
			w.WriteHeader(http.StatusServiceUnavailable)
			json.NewEncoder(w).Encode(map[string]string{"status": "error", "error": err.Error()})
			return
		}
		json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
	}
}
