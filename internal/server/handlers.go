package server

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	apperrors "github.com/vizgraph/vizgraph/pkg/errors"
	"github.com/vizgraph/vizgraph/pkg/io"
	"github.com/vizgraph/vizgraph/pkg/observability"
	"github.com/vizgraph/vizgraph/pkg/render"
	"github.com/vizgraph/vizgraph/pkg/store"
	"github.com/vizgraph/vizgraph/pkg/vgraph"
)

// maxDocumentBytes caps the request body size for document uploads.
const maxDocumentBytes = 16 << 20 // 16 MiB

// createDocumentRequest is the body of POST /documents.
type createDocumentRequest struct {
	Name  string          `json:"name"`
	Graph json.RawMessage `json:"graph"`
}

// documentResponse summarizes a stored document.
type documentResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// validationResponse is the body of the validate endpoint.
type validationResponse struct {
	Valid    bool                `json:"valid"`
	Findings []validationFinding `json:"findings"`
}

type validationFinding struct {
	Collection string `json:"collection"`
	ID         int    `json:"id"`
	Message    string `json:"message"`
	Severity   string `json:"severity"`
}

func (s *Server) handleCreateDocument(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxDocumentBytes)

	var req createDocumentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, r, apperrors.Wrap(apperrors.ErrCodeInvalidInput, err, "malformed request body"))
		return
	}
	if err := apperrors.ValidateDocumentName(req.Name); err != nil {
		s.writeError(w, r, err)
		return
	}
	if len(req.Graph) == 0 {
		s.writeError(w, r, apperrors.New(apperrors.ErrCodeInvalidInput, "missing graph payload"))
		return
	}

	g, err := io.ParseGraph(req.Graph)
	if err != nil {
		s.writeError(w, r, apperrors.Wrap(apperrors.ErrCodeInvalidDocument, err, "graph payload does not decode"))
		return
	}
	if findings := vgraph.Validate(g); vgraph.HasErrors(findings) {
		s.writeJSON(w, http.StatusBadRequest, toValidationResponse(findings))
		return
	}

	doc := store.NewDocument(req.Name, req.Graph)
	if err := s.store.Put(r.Context(), doc); err != nil {
		observability.Store().OnStoreError(r.Context(), "server", "put", err)
		s.writeError(w, r, apperrors.Wrap(apperrors.ErrCodeStore, err, "failed to store document"))
		return
	}
	observability.Store().OnStorePut(r.Context(), "server", doc.ID, len(doc.Data))

	s.writeJSON(w, http.StatusCreated, documentResponse{
		ID:        doc.ID,
		Name:      doc.Name,
		CreatedAt: doc.CreatedAt,
		UpdatedAt: doc.UpdatedAt,
	})
}

func (s *Server) handleListDocuments(w http.ResponseWriter, r *http.Request) {
	infos, err := s.store.List(r.Context())
	if err != nil {
		s.writeError(w, r, apperrors.Wrap(apperrors.ErrCodeStore, err, "failed to list documents"))
		return
	}
	if infos == nil {
		infos = []store.Info{}
	}
	s.writeJSON(w, http.StatusOK, infos)
}

func (s *Server) handleGetDocument(w http.ResponseWriter, r *http.Request) {
	doc, ok := s.loadDocument(w, r)
	if !ok {
		return
	}
	s.writeJSON(w, http.StatusOK, struct {
		documentResponse
		Graph json.RawMessage `json:"graph"`
	}{
		documentResponse: documentResponse{
			ID:        doc.ID,
			Name:      doc.Name,
			CreatedAt: doc.CreatedAt,
			UpdatedAt: doc.UpdatedAt,
		},
		Graph: doc.Data,
	})
}

func (s *Server) handleDeleteDocument(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if err := apperrors.ValidateDocumentID(id); err != nil {
		s.writeError(w, r, err)
		return
	}
	if err := s.store.Delete(r.Context(), id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			s.writeError(w, r, apperrors.New(apperrors.ErrCodeDocumentNotFound, "no document with id %s", id))
			return
		}
		s.writeError(w, r, apperrors.Wrap(apperrors.ErrCodeStore, err, "failed to delete document"))
		return
	}
	observability.Store().OnStoreDelete(r.Context(), "server", id)
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleValidateDocument(w http.ResponseWriter, r *http.Request) {
	doc, ok := s.loadDocument(w, r)
	if !ok {
		return
	}
	g, err := io.ParseGraph(doc.Data)
	if err != nil {
		s.writeError(w, r, apperrors.Wrap(apperrors.ErrCodeInvalidDocument, err, "stored graph does not decode"))
		return
	}
	s.writeJSON(w, http.StatusOK, toValidationResponse(vgraph.Validate(g)))
}

func (s *Server) handleRenderDocument(w http.ResponseWriter, r *http.Request) {
	doc, ok := s.loadDocument(w, r)
	if !ok {
		return
	}
	g, err := io.ParseGraph(doc.Data)
	if err != nil {
		s.writeError(w, r, apperrors.Wrap(apperrors.ErrCodeInvalidDocument, err, "stored graph does not decode"))
		return
	}

	start := time.Now()
	observability.Document().OnRenderStart(r.Context(), "svg")
	dot := render.ToDOT(g, render.Options{Detailed: r.URL.Query().Get("detailed") == "true"})
	svg, err := render.SVG(dot)
	observability.Document().OnRenderComplete(r.Context(), "svg", len(svg), time.Since(start), err)
	if err != nil {
		s.writeError(w, r, apperrors.Wrap(apperrors.ErrCodeInternal, err, "svg rendering failed"))
		return
	}

	w.Header().Set("Content-Type", "image/svg+xml")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(svg)
}

// loadDocument fetches the document named by the {id} URL parameter. On
// failure it writes the error response and returns ok=false.
func (s *Server) loadDocument(w http.ResponseWriter, r *http.Request) (*store.Document, bool) {
	id := chi.URLParam(r, "id")
	if err := apperrors.ValidateDocumentID(id); err != nil {
		s.writeError(w, r, err)
		return nil, false
	}
	doc, err := s.store.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			observability.Store().OnStoreGet(r.Context(), "server", id, false)
			s.writeError(w, r, apperrors.New(apperrors.ErrCodeDocumentNotFound, "no document with id %s", id))
			return nil, false
		}
		s.writeError(w, r, apperrors.Wrap(apperrors.ErrCodeStore, err, "failed to load document"))
		return nil, false
	}
	observability.Store().OnStoreGet(r.Context(), "server", id, true)
	return doc, true
}

func toValidationResponse(findings []vgraph.ValidationError) validationResponse {
	resp := validationResponse{
		Valid:    !vgraph.HasErrors(findings),
		Findings: []validationFinding{},
	}
	for _, f := range findings {
		resp.Findings = append(resp.Findings, validationFinding{
			Collection: f.Collection,
			ID:         f.ID,
			Message:    f.Message,
			Severity:   f.Severity.String(),
		})
	}
	return resp
}

// errorResponse is the JSON shape of all error replies.
type errorResponse struct {
	Error errorBody `json:"error"`
}

type errorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.logger.Error("encode response", "error", err)
	}
}

func (s *Server) writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := apperrors.HTTPStatus(err)
	code := apperrors.GetCode(err)
	if code == "" {
		code = apperrors.ErrCodeInternal
	}
	if status >= 500 {
		s.logger.Error("request failed", "method", r.Method, "path", r.URL.Path, "error", err)
	}
	s.writeJSON(w, status, errorResponse{Error: errorBody{
		Code:    string(code),
		Message: apperrors.UserMessage(err),
	}})
}
