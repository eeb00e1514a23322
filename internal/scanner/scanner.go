// Package scanner discovers Markdown files under a content root.
package scanner

import (
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
)

const markdownExt = ".md"

// File is a discovered Markdown file. RelPath is relative to the scanned
// root and uses forward slashes regardless of platform.
type File struct {
	AbsPath string
	RelPath string
}

// Scan walks root recursively and returns every Markdown file beneath it.
//
// A missing or unreadable root is not an error: an optional content folder
// that does not exist yields an empty result. Per-entry traversal errors
// (e.g. an unreadable subdirectory) are logged and skipped so the rest of
// the tree is still scanned.
func Scan(root string, logger *slog.Logger) []File {
	info, err := os.Stat(root)
	if err != nil || !info.IsDir() {
		return nil
	}

	var out []File
	_ = filepath.WalkDir(root, func(p string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			logger.Warn("scanner: skipping entry",
				slog.String("path", p),
				slog.String("error", walkErr.Error()))
			if d != nil && d.IsDir() {
				return fs.SkipDir
			}
			return nil
		}
		if d.IsDir() || !strings.HasSuffix(d.Name(), markdownExt) {
			return nil
		}
		rel, relErr := filepath.Rel(root, p)
		if relErr != nil {
			return nil
		}
		out = append(out, File{
			AbsPath: p,
			RelPath: filepath.ToSlash(rel),
		})
		return nil
	})
	return out
}
