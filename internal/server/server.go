package server

import (
	"context"
	"fmt"
	"log"
	"math/rand"
	"net/http"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/docweave/docweave/internal/nav"
)

// Config holds server configuration.
type Config struct {
	Port     int
	SiteDir  string // directory containing the generated site
	AllowAll bool   // allow all CORS origins (dev mode)
}

// Server serves the generated site plus the navigation API and the
// live-reload socket.
type Server struct {
	cfg   Config
	title string
	pages []nav.FlatPage
	hub   *ReloadHub

	// rnd drives per-request suggestion sampling. *rand.Rand is not safe
	// for concurrent use, hence the mutex.
	mu  sync.Mutex
	rnd *rand.Rand

	router     chi.Router
	httpServer *http.Server
}

// New creates a server for the given site. The outline is flattened once at
// construction; it is static configuration and never mutated at runtime.
// rnd may be nil, in which case a time-seeded source is used.
func New(cfg Config, title string, outline nav.Outline, rnd *rand.Rand) *Server {
	if rnd == nil {
		rnd = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	s := &Server{
		cfg:   cfg,
		title: title,
		pages: nav.Flatten(outline),
		hub:   NewReloadHub(),
		rnd:   rnd,
	}
	s.router = s.buildRouter()
	return s
}

// buildRouter creates and configures the chi router with all routes.
func (s *Server) buildRouter() chi.Router {
	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(60 * time.Second))

	// CORS
	corsOpts := cors.Options{
		AllowedOrigins:   []string{"http://localhost:*", "http://127.0.0.1:*"},
		AllowedMethods:   []string{"GET", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           300,
	}
	if s.cfg.AllowAll {
		corsOpts.AllowedOrigins = []string{"*"}
	}
	r.Use(cors.Handler(corsOpts))

	// Health check
	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok"}`))
	})

	r.Get("/api/nav", s.handleNav)
	r.Get("/api/suggest", s.handleSuggest)
	r.Get("/ws/reload", s.hub.Handle)

	// Static site files for everything else.
	r.Handle("/*", http.FileServer(http.Dir(s.cfg.SiteDir)))

	return r
}

// Router returns the chi router, mainly for tests.
func (s *Server) Router() chi.Router { return s.router }

// Reload returns the live-reload hub so the rebuild watcher can broadcast
// new build IDs.
func (s *Server) Reload() *ReloadHub { return s.hub }

// Start begins listening on the configured port.
func (s *Server) Start() error {
	addr := fmt.Sprintf(":%d", s.cfg.Port)
	s.httpServer = &http.Server{
		Addr:              addr,
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
		WriteTimeout:      120 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	log.Printf("docweave serving %s on %s", s.cfg.SiteDir, addr)
	return s.httpServer.ListenAndServe()
}

// Shutdown gracefully shuts down the server.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.httpServer != nil {
		return s.httpServer.Shutdown(ctx)
	}
	return nil
}
