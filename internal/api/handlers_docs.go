package api

import (
	"encoding/json"
	"errors"
	"io/fs"
	"net/http"
	"time"

	"github.com/dgallion1/outliner/internal/store"
	"github.com/go-chi/chi/v5"
)

// handleListDocuments lists all stored outlines.
func (s *Server) handleListDocuments(w http.ResponseWriter, r *http.Request) {
	entries, err := s.orchestrator.Store().List()
	if err != nil {
		jsonError(w, "failed to list documents: "+err.Error(), http.StatusInternalServerError)
		return
	}

	docs := make([]map[string]any, 0, len(entries))
	for _, e := range entries {
		docs = append(docs, map[string]any{
			"stem":     e.Stem,
			"path":     e.Path,
			"mod_time": e.ModTime.Format(time.RFC3339),
		})
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]any{"documents": docs})
}

// handleGetDocument returns a stored outline by stem.
func (s *Server) handleGetDocument(w http.ResponseWriter, r *http.Request) {
	stem := store.Sanitize(chi.URLParam(r, "stem"))
	res, err := s.orchestrator.Store().Get(stem)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			jsonError(w, "document not found", http.StatusNotFound)
			return
		}
		jsonError(w, "failed to read document: "+err.Error(), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(res)
}

// handleDeleteDocument deletes a stored outline.
func (s *Server) handleDeleteDocument(w http.ResponseWriter, r *http.Request) {
	stem := store.Sanitize(chi.URLParam(r, "stem"))
	if err := s.orchestrator.Store().Delete(stem); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			jsonError(w, "document not found", http.StatusNotFound)
			return
		}
		jsonError(w, "failed to delete document: "+err.Error(), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]any{"deleted": stem})
}
