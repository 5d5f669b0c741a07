package server

import (
	"encoding/json"
	"net/http"

	"github.com/docweave/docweave/internal/nav"
)

// navResponse is the JSON payload for GET /api/nav.
type navResponse struct {
	Title string         `json:"title"`
	Pages []nav.FlatPage `json:"pages"`
}

// suggestResponse is the JSON payload for GET /api/suggest.
type suggestResponse struct {
	Path        string         `json:"path"`
	Suggestions []nav.FlatPage `json:"suggestions"`
}

// handleNav returns the flattened page sequence.
func (s *Server) handleNav(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, navResponse{Title: s.title, Pages: s.pages})
}

// handleSuggest computes a fresh suggestion list for the page named by the
// ?path query parameter. The browser-supplied path may carry a query
// string, fragment, or trailing slash; it is normalized before lookup. An
// unknown path is not an error — the suggestions simply come entirely from
// random backfill.
func (s *Server) handleSuggest(w http.ResponseWriter, r *http.Request) {
	raw := r.URL.Query().Get("path")
	if raw == "" {
		http.Error(w, `{"error":"path query parameter is required"}`, http.StatusBadRequest)
		return
	}
	path := nav.CleanPath(raw)

	s.mu.Lock()
	suggestions := nav.Suggest(s.pages, path, s.rnd)
	s.mu.Unlock()

	writeJSON(w, suggestResponse{Path: path, Suggestions: suggestions})
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		http.Error(w, `{"error":"encoding response"}`, http.StatusInternalServerError)
	}
}
