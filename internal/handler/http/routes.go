package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

// Init builds the router.
//
// Every route gets a trace id, an access log line, panic recovery and CORS.
// API routes are additionally gzip-aware and bounded by the request timeout;
// /metrics is left alone since promhttp negotiates compression itself.
func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(h.withTraceID, h.withLogging, middleware.Recoverer, h.withCORS())

	router.Method(http.MethodGet, "/metrics", h.metrics)

	router.Group(func(r chi.Router) {
		r.Use(withGZip)
		if h.cfg.RequestTimeout > 0 {
			r.Use(middleware.Timeout(h.cfg.RequestTimeout))
		}

		// routes without authorization
		r.Post("/api/auth/register", h.register)
		r.Post("/api/auth/login", h.login)
		r.Post("/api/auth/forgot-password", h.forgotPassword)
		r.Post("/api/auth/reset-password/{token}", h.resetPassword)
		r.Get("/api/version", h.getServerVersion)

		// routes with authorization
		r.Group(func(r chi.Router) {
			r.Use(h.auth)
			r.Get("/api/auth", h.listAccounts)
			r.Get("/api/auth/", h.listAccounts)
			r.Get("/api/auth/me", h.me)
		})
	})

	router.NotFound(notFound)
	router.MethodNotAllowed(notFound)

	return router
}

func (h *Handler) withCORS() func(http.Handler) http.Handler {
	return cors.Handler(cors.Options{
		AllowedOrigins: h.cfg.AllowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type", "Content-Encoding", traceIDHeader},
		ExposedHeaders: []string{traceIDHeader},
		MaxAge:         300,
	})
}
