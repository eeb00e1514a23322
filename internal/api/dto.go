package api

import (
	"time"

	"github.com/seralys/inkwell/internal/models"
)

// PostSummary is the list/search representation of a post (no body).
type PostSummary struct {
	Slug     string    `json:"slug"`
	Title    string    `json:"title"`
	Excerpt  string    `json:"excerpt"`
	Date     time.Time `json:"date"`
	Category string    `json:"category"`
	Tags     []string  `json:"tags"`
	ReadTime string    `json:"read_time"`
}

// PostDetail is the full post payload returned for a single slug.
type PostDetail struct {
	PostSummary
	Body string `json:"body"`
}

// SearchResult is a single ranked hit. Post or Thought is set according
// to Type; MatchedFields names the fields that contributed to the score,
// for highlighting by the caller.
type SearchResult struct {
	Type          string          `json:"type"`
	Post          *PostSummary    `json:"post,omitempty"`
	Thought       *models.Thought `json:"thought,omitempty"`
	MatchedFields []string        `json:"matched_fields"`
	Score         int             `json:"score"`
}

// SearchResponse wraps search results.
type SearchResponse struct {
	Query   string         `json:"query"`
	Results []SearchResult `json:"results"`
}
