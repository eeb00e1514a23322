package parser

import (
	"bytes"
	"fmt"
	"strings"
	"time"

	"github.com/adrg/frontmatter"

	"github.com/seralys/inkwell/internal/models"
)

// thoughtMeta is the frontmatter schema for short-form thoughts.
type thoughtMeta struct {
	Date string   `yaml:"date"`
	Mood string   `yaml:"mood"`
	Tags []string `yaml:"tags"`
}

// ParseThought builds a Thought from a Markdown file's raw bytes. The body
// text is the thought's content; an entirely empty body is degenerate but
// allowed.
func ParseThought(rel string, data []byte) (models.Thought, error) {
	var meta thoughtMeta
	rest, err := frontmatter.Parse(bytes.NewReader(data), &meta)
	if err != nil {
		return models.Thought{}, fmt.Errorf("parser: thought %s: %w", rel, err)
	}
	content := strings.TrimSpace(string(rest))

	mood := meta.Mood
	if mood == "" {
		mood = models.DefaultMood
	}

	date := parseDate(meta.Date)

	return models.Thought{
		ID:           ThoughtID(date, content),
		Content:      content,
		Date:         date,
		Mood:         mood,
		Tags:         meta.Tags,
		RelativePath: rel,
	}, nil
}

// ThoughtID derives a stable identifier from the normalized date and the
// whitespace-stripped length of the content's first 50 runes. External
// anchors depend on this exact scheme staying put: it is deliberately not
// a content hash, and two thoughts on the same date whose leading text
// strips to the same length share an identifier.
func ThoughtID(date time.Time, content string) string {
	head := truncateRunes(content, 50)
	stripped := strings.Join(strings.Fields(head), "")
	return fmt.Sprintf("%s-%d", date.Format("2006-01-02"), len(stripped))
}
