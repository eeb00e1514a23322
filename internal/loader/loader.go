// Package loader builds the in-memory collections the query layer works on.
//
// A load is a pure function of the current filesystem state: scan the
// content root, parse each file independently, drop the ones that fail
// with a logged warning, sort by descending date. There is no cache here;
// callers that want one hold their own snapshot (see package source).
package loader

import (
	"log/slog"
	"os"
	"sort"

	"github.com/seralys/inkwell/internal/models"
	"github.com/seralys/inkwell/internal/parser"
	"github.com/seralys/inkwell/internal/scanner"
)

// LoadPosts returns every parseable post under root, newest first.
// A missing root yields an empty collection.
func LoadPosts(root string, logger *slog.Logger) []models.Post {
	var posts []models.Post
	for _, f := range scanner.Scan(root, logger) {
		data, err := os.ReadFile(f.AbsPath)
		if err != nil {
			logger.Warn("loader: read failed",
				slog.String("path", f.RelPath),
				slog.String("error", err.Error()))
			continue
		}
		p, err := parser.ParsePost(f.RelPath, data)
		if err != nil {
			logger.Warn("loader: post excluded",
				slog.String("path", f.RelPath),
				slog.String("error", err.Error()))
			continue
		}
		posts = append(posts, p)
	}
	sort.SliceStable(posts, func(i, j int) bool {
		return posts[i].Date.After(posts[j].Date)
	})
	return posts
}

// LoadThoughts returns every parseable thought under root, newest first.
func LoadThoughts(root string, logger *slog.Logger) []models.Thought {
	var thoughts []models.Thought
	for _, f := range scanner.Scan(root, logger) {
		data, err := os.ReadFile(f.AbsPath)
		if err != nil {
			logger.Warn("loader: read failed",
				slog.String("path", f.RelPath),
				slog.String("error", err.Error()))
			continue
		}
		th, err := parser.ParseThought(f.RelPath, data)
		if err != nil {
			logger.Warn("loader: thought excluded",
				slog.String("path", f.RelPath),
				slog.String("error", err.Error()))
			continue
		}
		thoughts = append(thoughts, th)
	}
	sort.SliceStable(thoughts, func(i, j int) bool {
		return thoughts[i].Date.After(thoughts[j].Date)
	})
	return thoughts
}
