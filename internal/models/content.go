// Package models defines the domain types for Inkwell.
package models

import "time"

// Default values applied when a frontmatter field is absent.
const (
	DefaultCategory = "uncategorized"
	DefaultMood     = "🤔"
)

// Post represents a long-form article parsed from a Markdown file.
type Post struct {
	Slug     string    `json:"slug"`
	Title    string    `json:"title"`
	Excerpt  string    `json:"excerpt"`
	Body     string    `json:"body,omitempty"`
	Date     time.Time `json:"date"`
	Category string    `json:"category"`
	Tags     []string  `json:"tags"`
	ReadTime string    `json:"read_time"`

	// Provenance, not used for display logic.
	SourceFilename string `json:"-"`
	RelativePath   string `json:"-"`
}

// Thought represents a short-form note parsed from a Markdown file.
type Thought struct {
	ID      string    `json:"id"`
	Content string    `json:"content"`
	Date    time.Time `json:"date"`
	Mood    string    `json:"mood"`
	Tags    []string  `json:"tags"`

	RelativePath string `json:"-"`
}
