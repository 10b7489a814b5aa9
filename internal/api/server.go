package api

import (
	"log/slog"
	"net/http"
	"sync"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/dgallion1/mdgraph/internal/config"
	"github.com/dgallion1/mdgraph/internal/graph"
)

// Server is the HTTP API around the document graph. Graph creation is
// serialized with a mutex: the store assumes a single writer.
type Server struct {
	router chi.Router
	store  *graph.Store
	log    *slog.Logger
	cfg    config.Server

	writeMu sync.Mutex
}

// NewServer creates and configures the HTTP server.
func NewServer(store *graph.Store, log *slog.Logger, cfg config.Server) *Server {
	s := &Server{
		store: store,
		log:   log,
		cfg:   cfg,
	}
	s.setupRoutes()
	return s
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func (s *Server) setupRoutes() {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(middleware.RequestID)
	r.Use(RequestLogger(s.log))

	// Public endpoints.
	r.Get("/health", s.handleHealth)

	r.Group(func(r chi.Router) {
		if s.cfg.APIKey != "" {
			r.Use(AuthMiddleware(s.cfg.APIKey))
		}

		r.Post("/api/graph", s.handleCreateGraph)
		r.Get("/api/markdown", s.handleMarkdown)
		r.Post("/api/script", s.handleScript)
	})

	s.router = r
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.Write([]byte(`{"status":"ok"}`))
}
