// Package testutil provides shared test helpers for building fixture
// content trees.
package testutil

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// Logger returns a quiet logger for tests.
func Logger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelError,
	}))
}

// ContentRoot creates a temporary content root and returns its path.
func ContentRoot(t *testing.T) string {
	t.Helper()
	return t.TempDir()
}

// WriteFile writes a Markdown file at rel (forward slashes) under root,
// creating parent directories as needed.
func WriteFile(t *testing.T, root, rel, content string) {
	t.Helper()
	abs := filepath.Join(root, filepath.FromSlash(rel))
	if err := os.MkdirAll(filepath.Dir(abs), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(abs, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}

// PostFile renders a post fixture with frontmatter and writes it at rel.
// Zero-valued fields are omitted from the frontmatter block.
func PostFile(t *testing.T, root, rel, title, date, category string, tags []string, body string) {
	t.Helper()
	var b strings.Builder
	b.WriteString("---\n")
	if title != "" {
		fmt.Fprintf(&b, "title: %q\n", title)
	}
	if date != "" {
		fmt.Fprintf(&b, "date: %q\n", date)
	}
	if category != "" {
		fmt.Fprintf(&b, "category: %q\n", category)
	}
	if len(tags) > 0 {
		b.WriteString("tags:\n")
		for _, tag := range tags {
			fmt.Fprintf(&b, "  - %q\n", tag)
		}
	}
	b.WriteString("---\n")
	b.WriteString(body)
	WriteFile(t, root, rel, b.String())
}

// ThoughtFile renders a thought fixture with frontmatter and writes it at rel.
func ThoughtFile(t *testing.T, root, rel, date, mood string, tags []string, content string) {
	t.Helper()
	var b strings.Builder
	b.WriteString("---\n")
	if date != "" {
		fmt.Fprintf(&b, "date: %q\n", date)
	}
	if mood != "" {
		fmt.Fprintf(&b, "mood: %q\n", mood)
	}
	if len(tags) > 0 {
		b.WriteString("tags:\n")
		for _, tag := range tags {
			fmt.Fprintf(&b, "  - %q\n", tag)
		}
	}
	b.WriteString("---\n")
	b.WriteString(content)
	WriteFile(t, root, rel, b.String())
}
