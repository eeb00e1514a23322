// Package search implements weighted full-text search over both content
// collections.
//
// Matching is case-insensitive substring containment per field, scoring is
// additive over field weights, and results are ordered by score, then type
// (posts before thoughts), then date. At this scale a single in-memory
// scan per query is enough; no inverted index is kept.
package search

import (
	"sort"
	"strings"
	"time"

	"github.com/seralys/inkwell/internal/models"
)

// Result types.
const (
	TypePost    = "post"
	TypeThought = "thought"
)

// Field weights. A field contributes its weight iff the lowercased query
// is a substring of the lowercased field value (any member, for tag sets).
const (
	weightTitle    = 10
	weightCategory = 8
	weightTags     = 6
	weightExcerpt  = 4
	weightContent  = 4
	weightBody     = 2
)

// Result is one ranked search hit. Exactly one of Post/Thought is set,
// according to Type.
type Result struct {
	Type          string          `json:"type"`
	Post          *models.Post    `json:"post,omitempty"`
	Thought       *models.Thought `json:"thought,omitempty"`
	MatchedFields []string        `json:"matched_fields"`
	Score         int             `json:"score"`
}

// Search scores every post and thought against query and returns the hits
// ordered by descending score, posts before thoughts on ties, then by
// descending date. An empty or whitespace-only query yields no results.
func Search(query string, posts []models.Post, thoughts []models.Thought) []Result {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return nil
	}

	var out []Result
	for i := range posts {
		if r, ok := scorePost(q, &posts[i]); ok {
			out = append(out, r)
		}
	}
	for i := range thoughts {
		if r, ok := scoreThought(q, &thoughts[i]); ok {
			out = append(out, r)
		}
	}

	sort.SliceStable(out, func(i, j int) bool {
		a, b := out[i], out[j]
		if a.Score != b.Score {
			return a.Score > b.Score
		}
		if a.Type != b.Type {
			return a.Type == TypePost
		}
		return a.date().After(b.date())
	})
	return out
}

func (r Result) date() time.Time {
	if r.Post != nil {
		return r.Post.Date
	}
	return r.Thought.Date
}

func scorePost(q string, p *models.Post) (Result, bool) {
	score := 0
	var fields []string

	if contains(p.Title, q) {
		score += weightTitle
		fields = append(fields, "title")
	}
	if contains(p.Category, q) {
		score += weightCategory
		fields = append(fields, "category")
	}
	if anyContains(p.Tags, q) {
		score += weightTags
		fields = append(fields, "tags")
	}
	if contains(p.Excerpt, q) {
		score += weightExcerpt
		fields = append(fields, "excerpt")
	}
	if contains(p.Body, q) {
		score += weightBody
		fields = append(fields, "body")
	}

	if score == 0 {
		return Result{}, false
	}
	return Result{Type: TypePost, Post: p, MatchedFields: fields, Score: score}, true
}

func scoreThought(q string, th *models.Thought) (Result, bool) {
	score := 0
	var fields []string

	if anyContains(th.Tags, q) {
		score += weightTags
		fields = append(fields, "tags")
	}
	if contains(th.Content, q) {
		score += weightContent
		fields = append(fields, "content")
	}

	if score == 0 {
		return Result{}, false
	}
	return Result{Type: TypeThought, Thought: th, MatchedFields: fields, Score: score}, true
}

// contains reports whether q (already lowercased) occurs in s.
func contains(s, q string) bool {
	return strings.Contains(strings.ToLower(s), q)
}

func anyContains(values []string, q string) bool {
	for _, v := range values {
		if contains(v, q) {
			return true
		}
	}
	return false
}
