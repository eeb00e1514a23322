package parser

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/adrg/frontmatter"

	"github.com/seralys/inkwell/internal/models"
)

// postMeta is the frontmatter schema for long-form posts.
type postMeta struct {
	Title    string   `yaml:"title"`
	Excerpt  string   `yaml:"excerpt"`
	Date     string   `yaml:"date"`
	Category string   `yaml:"category"`
	Tags     []string `yaml:"tags"`
	ReadTime string   `yaml:"readTime"`
}

// ParsePost builds a Post from a Markdown file's raw bytes. rel is the
// file's path relative to the posts root and becomes the slug.
//
// A file without frontmatter parses fine with every field defaulted; a
// file with a malformed frontmatter block returns an error for this file
// only.
func ParsePost(rel string, data []byte) (models.Post, error) {
	var meta postMeta
	rest, err := frontmatter.Parse(bytes.NewReader(data), &meta)
	if err != nil {
		return models.Post{}, fmt.Errorf("parser: post %s: %w", rel, err)
	}
	body := string(rest)

	title := meta.Title
	if title == "" {
		title = filenameStem(rel)
	}

	excerpt := meta.Excerpt
	if excerpt == "" {
		excerpt = truncateRunes(strings.TrimSpace(body), excerptLen) + "..."
	}

	category := meta.Category
	if category == "" {
		category = models.DefaultCategory
	}

	readTime := meta.ReadTime
	if readTime == "" {
		readTime = readTimeLabel(body)
	}

	base := rel
	if i := strings.LastIndex(rel, "/"); i >= 0 {
		base = rel[i+1:]
	}

	return models.Post{
		Slug:           slugFromPath(rel),
		Title:          title,
		Excerpt:        excerpt,
		Body:           body,
		Date:           parseDate(meta.Date),
		Category:       category,
		Tags:           meta.Tags,
		ReadTime:       readTime,
		SourceFilename: base,
		RelativePath:   rel,
	}, nil
}
