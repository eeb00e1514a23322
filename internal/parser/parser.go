// Package parser turns raw Markdown files into typed content records.
//
// Each record kind has its own frontmatter schema; missing fields take the
// documented defaults and derived fields (slug, id, read time) are computed
// after defaulting. A malformed frontmatter block fails only the file it
// belongs to — the loader decides what to do with the failure.
package parser

import (
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/araddon/dateparse"
)

const (
	markdownExt = ".md"

	// excerptLen is the number of leading body runes used when a post has
	// no explicit excerpt.
	excerptLen = 200

	// runesPerMinute drives the estimated read time.
	runesPerMinute = 200
)

// parseDate interprets a loosely formatted frontmatter date. Absent or
// unparseable values fall back to the current time, so a record always
// carries a comparable timestamp.
func parseDate(raw string) time.Time {
	if raw == "" {
		return time.Now()
	}
	t, err := dateparse.ParseAny(raw)
	if err != nil {
		return time.Now()
	}
	return t
}

// slugFromPath derives the externally visible identifier from a file's
// path relative to the content root: extension removed, forward slashes.
// Uniqueness follows from unique relative paths; it is not enforced here.
func slugFromPath(rel string) string {
	return strings.TrimSuffix(strings.ReplaceAll(rel, "\\", "/"), markdownExt)
}

// filenameStem returns the last path element without the extension.
func filenameStem(rel string) string {
	s := slugFromPath(rel)
	if i := strings.LastIndex(s, "/"); i >= 0 {
		s = s[i+1:]
	}
	return s
}

// readTimeLabel estimates reading time as ceil(runes/200) minutes.
func readTimeLabel(body string) string {
	n := utf8.RuneCountInString(body)
	minutes := (n + runesPerMinute - 1) / runesPerMinute
	return fmt.Sprintf("%d min read", minutes)
}

// truncateRunes returns at most n leading runes of s.
func truncateRunes(s string, n int) string {
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	runes := []rune(s)
	return string(runes[:n])
}
