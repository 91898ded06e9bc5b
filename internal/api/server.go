package api

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/liinaD3210/Tender-Expert/internal/analysis"
	"github.com/liinaD3210/Tender-Expert/internal/config"
	"github.com/liinaD3210/Tender-Expert/internal/session"
	"github.com/liinaD3210/Tender-Expert/internal/websearch"
)

// Server is the HTTP API for the quotation comparison service.
type Server struct {
	router   chi.Router
	pipeline *analysis.Pipeline
	market   *websearch.Market
	sessions *session.Store
	log      *slog.Logger
	cfg      config.Config
}

// NewServer creates and configures the HTTP server. market may be nil when
// the search credentials are not provisioned.
func NewServer(pipeline *analysis.Pipeline, market *websearch.Market, sessions *session.Store, log *slog.Logger, cfg config.Config) *Server {
	s := &Server{
		pipeline: pipeline,
		market:   market,
		sessions: sessions,
		log:      log,
		cfg:      cfg,
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

	r.Get("/health", s.handleHealth)

	r.Group(func(r chi.Router) {
		r.Use(AuthMiddleware(s.cfg.ServiceAPIKey, s.log))

		r.Post("/api/compare", s.handleCompare)
		r.Get("/api/compare/latest", s.handleLatest)
		r.Get("/api/compare/export", s.handleExport)

		r.Post("/api/market-search", s.handleMarketSearch)
	})

	s.router = r
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.Write([]byte(`{"status":"ok"}`))
}
