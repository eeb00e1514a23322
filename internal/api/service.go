package api

import (
	"strings"

	"github.com/seralys/inkwell/internal/apperr"
	"github.com/seralys/inkwell/internal/loader"
	"github.com/seralys/inkwell/internal/models"
	"github.com/seralys/inkwell/internal/paginate"
	"github.com/seralys/inkwell/internal/search"
	"github.com/seralys/inkwell/internal/source"
)

// DefaultPageSize is used when a request does not specify one.
const DefaultPageSize = 10

// Service exposes the core query operations over a content source. It
// adds no filtering or ordering of its own: every method is a pass-through
// to the loader, pagination, and search contracts.
type Service struct {
	src source.Source
}

// NewService creates a new API service over src.
func NewService(src source.Source) *Service {
	return &Service{src: src}
}

// ListPosts returns one page of post summaries, optionally pre-filtered
// by category or tag (both filters applied before pagination metadata is
// computed).
func (s *Service) ListPosts(page, pageSize int, category, tag string) paginate.Page[PostSummary] {
	posts := s.src.Posts()
	if category != "" {
		posts = loader.PostsByCategory(posts, category)
	}
	if tag != "" {
		posts = loader.PostsByTag(posts, tag)
	}
	return paginate.Paginate(toSummaries(posts), page, pageSize)
}

// RecentPosts returns the n newest post summaries.
func (s *Service) RecentPosts(n int) []PostSummary {
	return toSummaries(loader.RecentPosts(s.src.Posts(), n))
}

// GetPost finds a post by its slug.
func (s *Service) GetPost(slug string) (*models.Post, error) {
	for _, p := range s.src.Posts() {
		if p.Slug == slug {
			return &p, nil
		}
	}
	return nil, apperr.ErrNotFound
}

// ListThoughts returns one page of thoughts.
func (s *Service) ListThoughts(page, pageSize int) paginate.Page[models.Thought] {
	return paginate.Paginate(nonNilSlice(s.src.Thoughts()), page, pageSize)
}

// Search runs the weighted search over both collections.
func (s *Service) Search(query string) []SearchResult {
	results := search.Search(query, s.src.Posts(), s.src.Thoughts())
	out := make([]SearchResult, 0, len(results))
	for _, r := range results {
		sr := SearchResult{
			Type:          r.Type,
			MatchedFields: r.MatchedFields,
			Score:         r.Score,
		}
		if r.Post != nil {
			sum := toSummary(*r.Post)
			sr.Post = &sum
		}
		sr.Thought = r.Thought
		out = append(out, sr)
	}
	return out
}

// Categories returns the distinct post categories in first-seen order.
func (s *Service) Categories() []string {
	return loader.Categories(s.src.Posts())
}

// Tags returns the distinct post tags in first-seen order.
func (s *Service) Tags() []string {
	return loader.Tags(s.src.Posts())
}

// Moods returns the distinct thought moods in first-seen order.
func (s *Service) Moods() []string {
	return loader.Moods(s.src.Thoughts())
}

func toSummary(p models.Post) PostSummary {
	return PostSummary{
		Slug:     p.Slug,
		Title:    p.Title,
		Excerpt:  strings.TrimSpace(p.Excerpt),
		Date:     p.Date,
		Category: p.Category,
		Tags:     nonNilSlice(p.Tags),
		ReadTime: p.ReadTime,
	}
}

func toSummaries(posts []models.Post) []PostSummary {
	out := make([]PostSummary, len(posts))
	for i, p := range posts {
		out[i] = toSummary(p)
	}
	return out
}

func nonNilSlice[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}
