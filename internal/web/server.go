// Package web exposes the portfolio API over HTTP: contact-form dispatch,
// chat proxy, health probes and optional static SPA serving.
package web

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

// Config holds server configuration
type Config struct {
	Port      int
	StaticDir string // built SPA assets, optional
}

// Server represents the HTTP server
type Server struct {
	router     *chi.Mux
	httpServer *http.Server
	config     *Config
	listener   net.Listener
}

// NewServer creates a new HTTP server around the API handler
func NewServer(cfg *Config, handler *Handler) *Server {
	router := chi.NewRouter()

	srv := &Server{
		router: router,
		config: cfg,
	}

	srv.setupMiddleware()
	srv.setupRoutes(handler)

	return srv
}

func (s *Server) setupMiddleware() {
	s.router.Use(middleware.RequestID)
	s.router.Use(middleware.RealIP)
	s.router.Use(middleware.Logger)
	s.router.Use(middleware.Recoverer)
	s.router.Use(middleware.Timeout(30 * time.Second))
	s.router.Use(middleware.Compress(5))

	// basic cors
	s.router.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "OPTIONS", "DELETE", "PUT"},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type"},
	}))
}

func (s *Server) setupRoutes(h *Handler) {
	// health check
	s.router.Get("/health", h.Health)

	// api routes
	s.router.Route("/api", func(r chi.Router) {
		r.Post("/contact", h.SendContact)
		r.Get("/contact/health", h.Health)
		r.Post("/chat", h.Chat)
	})

	// SPA static files serving
	if s.config.StaticDir != "" {
		assetsFS := http.FileServer(http.Dir(filepath.Join(s.config.StaticDir, "assets")))
		s.router.Handle("/assets/*", http.StripPrefix("/assets/", assetsFS))

		index := filepath.Join(s.config.StaticDir, "index.html")
		if _, err := os.Stat(index); err == nil {
			s.router.Get("/", func(w http.ResponseWriter, r *http.Request) {
				http.ServeFile(w, r, index)
			})
		}
	}
}

// Start starts the HTTP server
func (s *Server) Start() error {
	addr := fmt.Sprintf(":%d", s.config.Port)
	listener, err := net.Listen("tcp", addr)
	if err != nil {
		return err
	}
	s.listener = listener

	s.httpServer = &http.Server{
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	return s.httpServer.Serve(listener)
}

// Stop gracefully stops the server
func (s *Server) Stop(ctx context.Context) error {
	if s.httpServer != nil {
		return s.httpServer.Shutdown(ctx)
	}
	return nil
}

// BaseURL returns the server's base URL
func (s *Server) BaseURL() string {
	if s.listener != nil {
		return fmt.Sprintf("http://%s", s.listener.Addr().String())
	}
	return fmt.Sprintf("http://localhost:%d", s.config.Port)
}

// Router exposes the chi mux for tests.
func (s *Server) Router() http.Handler {
	return s.router
}
