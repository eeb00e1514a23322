package api

import (
	"github.com/go-chi/chi/v5"
)

// NewRouter creates a chi router with all API routes mounted.
// authEnabled controls whether Bearer token auth is enforced.
func NewRouter(svc *Service, authEnabled bool, token string) chi.Router {
	h := NewHandler(svc)

	r := chi.NewRouter()
	r.Use(AuthMiddleware(authEnabled, token))

	// Posts. The recent route must be registered before the wildcard.
	r.Get("/posts", h.ListPosts)
	r.Get("/posts/recent", h.RecentPosts)
	r.Get("/posts/*", h.GetPost)

	// Thoughts.
	r.Get("/thoughts", h.ListThoughts)

	// Search.
	r.Get("/search", h.Search)

	// Index derivations.
	r.Get("/categories", h.Categories)
	r.Get("/tags", h.Tags)
	r.Get("/moods", h.Moods)

	return r
}
