package api

import (
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
)

// Handler holds API route handlers.
type Handler struct {
	svc *Service
}

// NewHandler creates a new Handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

// postSlug extracts the slug from the URL (everything after /posts/).
// Supports encoded slashes (e.g. notes%2Fhello).
func postSlug(r *http.Request) string {
	raw := strings.TrimPrefix(chi.URLParam(r, "*"), "/")
	if raw == "" {
		return ""
	}
	decoded, err := url.PathUnescape(raw)
	if err != nil {
		return raw
	}
	return decoded
}

// intQuery parses a query parameter as int, falling back to def when the
// parameter is absent or malformed. Bad input never errors here: range
// handling is the pagination engine's job.
func intQuery(r *http.Request, name string, def int) int {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return def
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return def
	}
	return n
}

// ListPosts handles GET /posts with optional page, page_size, category,
// and tag query parameters.
func (h *Handler) ListPosts(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	page := intQuery(r, "page", 1)
	pageSize := intQuery(r, "page_size", DefaultPageSize)
	result := h.svc.ListPosts(page, pageSize, q.Get("category"), q.Get("tag"))
	writeJSON(w, http.StatusOK, result)
}

// RecentPosts handles GET /posts/recent?n=.
func (h *Handler) RecentPosts(w http.ResponseWriter, r *http.Request) {
	n := intQuery(r, "n", 5)
	writeJSON(w, http.StatusOK, map[string]any{
		"posts": h.svc.RecentPosts(n),
	})
}

// GetPost handles GET /posts/*.
func (h *Handler) GetPost(w http.ResponseWriter, r *http.Request) {
	slug := postSlug(r)
	if slug == "" {
		writeJSON(w, http.StatusBadRequest, errorBody("slug is required"))
		return
	}
	p, err := h.svc.GetPost(slug)
	if err != nil {
		writeJSON(w, http.StatusNotFound, errorBody("not found"))
		return
	}
	detail := PostDetail{PostSummary: toSummary(*p), Body: p.Body}
	writeJSON(w, http.StatusOK, detail)
}

// ListThoughts handles GET /thoughts with optional page and page_size.
func (h *Handler) ListThoughts(w http.ResponseWriter, r *http.Request) {
	page := intQuery(r, "page", 1)
	pageSize := intQuery(r, "page_size", DefaultPageSize)
	writeJSON(w, http.StatusOK, h.svc.ListThoughts(page, pageSize))
}

// Search handles GET /search?q=. An empty query is not an error: it
// returns an empty result list.
func (h *Handler) Search(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query().Get("q")
	results := h.svc.Search(q)
	if results == nil {
		results = []SearchResult{}
	}
	writeJSON(w, http.StatusOK, SearchResponse{Query: q, Results: results})
}

// Categories handles GET /categories.
func (h *Handler) Categories(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"categories": nonNilSlice(h.svc.Categories()),
	})
}

// Tags handles GET /tags.
func (h *Handler) Tags(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"tags": nonNilSlice(h.svc.Tags()),
	})
}

// Moods handles GET /moods.
func (h *Handler) Moods(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"moods": nonNilSlice(h.svc.Moods()),
	})
}
