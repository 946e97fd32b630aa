// Package server wires handlers, middleware and routes into the root
// http.Handler.
package server

import (
	"net/http"

	"github.com/fedesascensores/leads-app/internal/auth"
	"github.com/fedesascensores/leads-app/internal/config"
	"github.com/fedesascensores/leads-app/internal/handlers"
	"github.com/fedesascensores/leads-app/internal/httpx"
	"github.com/fedesascensores/leads-app/internal/middleware"
	"github.com/fedesascensores/leads-app/internal/session"
	"github.com/fedesascensores/leads-app/internal/store"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

// New constructs the root handler with all routes and middlewares applied.
func New(cfg config.Config, st *store.Store, log *zap.SugaredLogger) http.Handler {
	sessions := session.NewManager(cfg.SessionSecret)
	verifier := auth.NewVerifier(st, log)

	ah := handlers.NewAuthHandler(sessions, verifier, log)
	lh := handlers.NewLeadHandler(st, log)
	eh := handlers.NewEquipoHandler(st, log)
	vh := handlers.NewListingHandler(st, log)

	mux := http.NewServeMux()

	// ─────────────────────────────────────────────────────────────────────────
	// Public routes (no auth required)
	// ─────────────────────────────────────────────────────────────────────────
	mux.HandleFunc("GET /{$}", ah.Login)
	mux.HandleFunc("POST /{$}", ah.Login)
	mux.HandleFunc("GET /logout", ah.Logout)

	//revive:disable:unused-parameter simple handlers intentionally ignore *http.Request
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		httpx.JSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})
	//revive:enable:unused-parameter
	mux.Handle("GET /metrics", promhttp.Handler())
	mux.Handle("GET /static/", http.StripPrefix("/static/", http.FileServer(http.Dir("static"))))

	// ─────────────────────────────────────────────────────────────────────────
	// Protected routes (session gate)
	// ─────────────────────────────────────────────────────────────────────────
	protected := func(h http.HandlerFunc) http.Handler {
		return sessions.Require(h)
	}
	mux.Handle("GET /home", protected(ah.Home))
	mux.Handle("GET /formulario_lead", protected(lh.Form))
	mux.Handle("POST /formulario_lead", protected(lh.Create))
	mux.Handle("GET /nuevo_equipo", protected(eh.Form))
	mux.Handle("POST /nuevo_equipo", protected(eh.Create))
	mux.Handle("GET /leads", protected(vh.Leads))
	mux.Handle("GET /leads_dashboard", protected(vh.Dashboard))

	metrics := middleware.NewHTTPMetrics("leads-app")

	var handler http.Handler = sessions.Middleware(mux)
	handler = metrics.Middleware(handler)
	handler = middleware.Logging(log)(handler)
	handler = middleware.RequestID(handler)
	handler = middleware.Recover(log)(handler)
	return handler
}
