// Package web provides the HTTP API that the catalog page talks to.
package web

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/JonMunkholm/catalogo/internal/cart"
	"github.com/JonMunkholm/catalogo/internal/catalog"
	"github.com/JonMunkholm/catalogo/internal/config"
	mw "github.com/JonMunkholm/catalogo/internal/web/middleware"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// Server is the HTTP server for the catalog and cart.
type Server struct {
	engine  *cart.Engine
	catalog *catalog.Holder
	cfg     *config.Config
	router  *chi.Mux
	server  *http.Server
}

// NewServer creates a new Server instance.
func NewServer(engine *cart.Engine, products *catalog.Holder, cfg *config.Config) *Server {
	s := &Server{
		engine:  engine,
		catalog: products,
		cfg:     cfg,
		router:  chi.NewRouter(),
	}
	s.setupMiddleware()
	s.setupRoutes()
	return s
}

// setupMiddleware configures middleware for all routes.
func (s *Server) setupMiddleware() {
	s.router.Use(middleware.RequestID)
	s.router.Use(mw.TrustedRealIP(s.cfg.Security.TrustedProxies))
	s.router.Use(mw.Logger)
	s.router.Use(middleware.Recoverer)
	s.router.Use(middleware.Compress(5))
	s.router.Use(middleware.Timeout(s.cfg.Server.RequestTimeout))
	s.router.Use(s.securityHeaders)
}

// setupRoutes configures all HTTP routes.
func (s *Server) setupRoutes() {
	s.router.Get("/healthz", s.handleHealth)

	s.router.Route("/api", func(r chi.Router) {
		r.Get("/catalog", s.handleListProducts)
		r.Get("/catalog/{index}", s.handleGetProduct)

		r.Route("/cart", func(r chi.Router) {
			r.Get("/", s.handleCartSummary)
			r.Delete("/", s.handleClearCart)

			r.Post("/items", s.handleAddItem)
			r.Put("/items/{line}", s.handleUpdateItem)
			r.Delete("/items/{line}", s.handleRemoveItem)

			r.Get("/export", s.handleExport)
			r.Get("/share", s.handleShareLink)
			r.Get("/share/qr.png", s.handleShareQR)
		})
	})
}

// Start begins listening for HTTP requests.
func (s *Server) Start() error {
	s.server = &http.Server{
		Addr:         s.cfg.Server.Addr(),
		Handler:      s.router,
		ReadTimeout:  s.cfg.Server.ReadTimeout,
		WriteTimeout: s.cfg.Server.WriteTimeout,
		IdleTimeout:  s.cfg.Server.IdleTimeout,
	}
	return s.server.ListenAndServe()
}

// Shutdown gracefully stops the server.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.server == nil {
		return nil
	}
	return s.server.Shutdown(ctx)
}

// Router returns the underlying chi router for testing.
func (s *Server) Router() *chi.Mux {
	return s.router
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	status := "ok"
	if _, err := s.catalog.Get(); err != nil {
		status = "degraded"
	}
	writeJSON(w, map[string]any{
		"status":     status,
		"cart_lines": s.engine.Len(),
	})
}

// securityHeaders adds security headers to all responses.
func (s *Server) securityHeaders(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-Content-Type-Options", "nosniff")
		w.Header().Set("X-Frame-Options", "DENY")
		w.Header().Set("Referrer-Policy", "strict-origin-when-cross-origin")

		if s.cfg.Security.EnableCSP {
			w.Header().Set("Content-Security-Policy", "default-src 'self'; img-src 'self' data:; frame-ancestors 'none'")
		}

		next.ServeHTTP(w, r)
	})
}

// writeJSON encodes v as JSON and writes it to w.
// Logs encoding errors since headers are already sent.
func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("json encode error", "error", err)
	}
}
