// Package server implements the vizgraph HTTP API.
//
// The API exposes document storage plus validation and rendering on top of
// it. All request and response bodies are JSON except the SVG render
// endpoint, which returns image/svg+xml.
//
// # Endpoints
//
//	GET    /health                     liveness probe
//	POST   /documents                  store a document (decode + validate first)
//	GET    /documents                  list stored documents
//	GET    /documents/{id}             fetch a stored document
//	DELETE /documents/{id}             delete a stored document
//	GET    /documents/{id}/validate    run referential validation
//	GET    /documents/{id}/render.svg  render the document as SVG
package server

import (
	"net/http"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/vizgraph/vizgraph/pkg/store"
)

// Server holds shared state for all HTTP handlers.
type Server struct {
	store  store.Store
	logger *log.Logger
}

// New creates a server backed by the given document store.
func New(st store.Store, logger *log.Logger) *Server {
	if logger == nil {
		logger = log.Default()
	}
	return &Server{store: st, logger: logger}
}

// Router builds the chi router with all routes and middleware registered.
func (s *Server) Router() http.Handler {
	r := chi.NewRouter()

	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Recoverer)
	r.Use(s.logRequests)

	r.Get("/health", s.handleHealth)

	r.Route("/documents", func(r chi.Router) {
		r.Post("/", s.handleCreateDocument)
		r.Get("/", s.handleListDocuments)
		r.Get("/{id}", s.handleGetDocument)
		r.Delete("/{id}", s.handleDeleteDocument)
		r.Get("/{id}/validate", s.handleValidateDocument)
		r.Get("/{id}/render.svg", s.handleRenderDocument)
	})

	return r
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(`{"status":"healthy"}`))
}
