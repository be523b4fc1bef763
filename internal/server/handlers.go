package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/shamsu/conops/internal/contract"
	"github.com/shamsu/conops/internal/domain"
	"github.com/shamsu/conops/internal/missionfile"
	"github.com/shamsu/conops/internal/repository"
)

// Documents arrive as request bodies; a megabyte is far beyond any real
// timeline.
const maxBodySize = 1 << 20

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, map[string]bool{"ok": true})
}

func (s *Server) handleSaveProject(w http.ResponseWriter, r *http.Request) {
	name := r.URL.Query().Get("name")
	if name == "" {
		s.sendError(w, http.StatusBadRequest, "name query parameter is required")
		return
	}
	doc, ok := s.decodeDocument(w, r)
	if !ok {
		return
	}

	p, err := s.projects.Save(r.Context(), name, *doc)
	if err != nil {
		s.sendError(w, http.StatusInternalServerError, "saving project: %v", err)
		return
	}
	s.writeJSON(w, map[string]int64{"id": p.ID})
}

func (s *Server) handleListProjects(w http.ResponseWriter, r *http.Request) {
	summaries, err := s.projects.List(r.Context())
	if err != nil {
		s.sendError(w, http.StatusInternalServerError, "listing projects: %v", err)
		return
	}
	if summaries == nil {
		summaries = []repository.ProjectSummary{}
	}
	s.writeJSON(w, summaries)
}

func (s *Server) handleGetProject(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		s.sendError(w, http.StatusBadRequest, "invalid project id")
		return
	}

	p, err := s.projects.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			s.sendError(w, http.StatusNotFound, "not found")
			return
		}
		s.sendError(w, http.StatusInternalServerError, "loading project: %v", err)
		return
	}
	s.writeJSON(w, p)
}

func (s *Server) handleExport(w http.ResponseWriter, r *http.Request) {
	doc, ok := s.decodeDocument(w, r)
	if !ok {
		return
	}

	res, err := s.exporter.Export(r.Context(), *doc)
	if err != nil {
		s.sendError(w, http.StatusInternalServerError, "export failed: %v", err)
		return
	}
	s.writeJSON(w, res)
}

func (s *Server) handleDownload(w http.ResponseWriter, r *http.Request) {
	name := r.PathValue("name")
	// Artifact names are flat; anything path-like is hostile.
	if name != filepath.Base(name) || strings.Contains(name, "..") {
		s.sendError(w, http.StatusBadRequest, "invalid artifact name")
		return
	}

	path := filepath.Join(s.exportsDir, name)
	info, err := os.Stat(path)
	if err != nil || info.IsDir() {
		s.sendError(w, http.StatusNotFound, "not found")
		return
	}
	http.ServeFile(w, r, path)
}

func (s *Server) handleValidate(w http.ResponseWriter, r *http.Request) {
	doc, ok := s.decodeDocument(w, r)
	if !ok {
		return
	}

	report, err := s.validation.Validate(r.Context(), *doc)
	if err != nil {
		s.sendError(w, http.StatusInternalServerError, "validation failed: %v", err)
		return
	}
	s.writeJSON(w, report)
}

func (s *Server) handleWindows(w http.ResponseWriter, r *http.Request) {
	doc, ok := s.decodeDocument(w, r)
	if !ok {
		return
	}

	allowed, err := s.validation.AllowedWindows(r.Context(), *doc)
	if err != nil {
		s.sendError(w, http.StatusInternalServerError, "window computation failed: %v", err)
		return
	}
	if allowed == nil {
		allowed = []contract.Interval{}
	}
	s.writeJSON(w, map[string]any{
		"total_duration": doc.TotalDuration(),
		"allowed":        allowed,
	})
}

// snapPayload carries the document together with the drag geometry. Grid
// is a pointer so an explicit zero (no grid) is distinct from absent
// (default grid).
type snapPayload struct {
	Document json.RawMessage `json:"document"`
	Desired  float64         `json:"desired"`
	Duration float64         `json:"duration"`
	Grid     *float64        `json:"grid"`
}

func (s *Server) handleSnap(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodySize)
	var payload snapPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		s.sendError(w, http.StatusBadRequest, "invalid request: %v", err)
		return
	}
	if len(payload.Document) == 0 {
		s.sendError(w, http.StatusBadRequest, "document is required")
		return
	}
	doc, ok := s.decodeDocumentBytes(w, payload.Document)
	if !ok {
		return
	}

	req := contract.NewSnapRequest(payload.Desired, payload.Duration)
	if payload.Grid != nil {
		req.GridStep = *payload.Grid
	}
	res, err := s.validation.NearestStart(r.Context(), *doc, req)
	if err != nil {
		s.sendError(w, http.StatusInternalServerError, "snap failed: %v", err)
		return
	}
	s.writeJSON(w, res)
}

// decodeDocument reads the request body as one document and rejects
// structurally invalid ones before any service sees them.
func (s *Server) decodeDocument(w http.ResponseWriter, r *http.Request) (*domain.Document, bool) {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodySize)
	var raw json.RawMessage
	if err := json.NewDecoder(r.Body).Decode(&raw); err != nil {
		s.sendError(w, http.StatusBadRequest, "invalid request: %v", err)
		return nil, false
	}
	return s.decodeDocumentBytes(w, raw)
}

func (s *Server) decodeDocumentBytes(w http.ResponseWriter, data []byte) (*domain.Document, bool) {
	doc, err := missionfile.Decode(data, missionfile.FormatJSON)
	if err != nil {
		s.sendError(w, http.StatusBadRequest, "invalid document: %v", err)
		return nil, false
	}
	if errs := missionfile.Validate(doc); len(errs) > 0 {
		msgs := make([]string, 0, len(errs))
		for _, e := range errs {
			msgs = append(msgs, e.Error())
		}
		s.sendError(w, http.StatusUnprocessableEntity, "invalid document: %s", strings.Join(msgs, "; "))
		return nil, false
	}
	return doc, true
}

func (s *Server) sendError(w http.ResponseWriter, status int, format string, args ...any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(map[string]string{
		"error": fmt.Sprintf(format, args...),
	}); err != nil {
		s.logger.Warn("writing error response", "error", err, "status", status)
	}
}

// writeJSON encodes value into w. If encoding fails the client is
// typically gone; there is no corrective response to send.
func (s *Server) writeJSON(w http.ResponseWriter, value any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(value); err != nil {
		s.logger.Warn("writing response", "error", err)
	}
}
