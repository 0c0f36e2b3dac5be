package metadata

import (
	"strings"
	"time"

	"github.com/goliatone/go-codeprob/internal/domain"
)

const (
	// ISODateLayout formats the dateAdded value stored in the content index.
	ISODateLayout = "2006-01-02"
	// DisplayDateLayout formats the human readable date shown on pages.
	DisplayDateLayout = "January 2, 2006"
)

// Entry is the content index record suggested after an export. Field order
// and names match the contributor-config.json schema.
type Entry struct {
	Filename   string   `json:"filename" yaml:"filename"`
	Title      string   `json:"title" yaml:"title"`
	Author     string   `json:"author" yaml:"author"`
	DateAdded  string   `json:"dateAdded" yaml:"dateAdded"`
	Difficulty string   `json:"difficulty,omitempty" yaml:"difficulty,omitempty"`
	Topics     []string `json:"topics,omitempty" yaml:"topics,omitempty"`
	Category   string   `json:"category,omitempty" yaml:"category,omitempty"`
	Complexity string   `json:"complexity,omitempty" yaml:"complexity,omitempty"`
	Tags       []string `json:"tags,omitempty" yaml:"tags,omitempty"`
}

// NewEntry builds the index entry for kind from fields, stamping it with
// the ISO date of now in UTC.
func NewEntry(kind domain.Kind, fields domain.FieldSet, now time.Time) Entry {
	title := fields.Get(domain.FieldTitle)
	entry := Entry{
		Filename:  Filename(kind, title),
		Title:     title,
		Author:    fields.Get(domain.FieldAuthor),
		DateAdded: ISODate(now),
	}

	switch kind {
	case domain.KindProblem:
		entry.Difficulty = fields.Get(domain.FieldDifficulty)
		entry.Topics = SplitList(fields.Get(domain.FieldTopics))
	case domain.KindConcept:
		entry.Category = fields.Get(domain.FieldCategory)
		entry.Complexity = fields.Get(domain.FieldComplexity)
	case domain.KindArticle:
		entry.Tags = SplitList(fields.Get(domain.FieldTags))
	}
	return entry
}

// SplitList splits a comma separated value and trims every element. Empty
// elements are kept so the entry mirrors what the contributor typed.
func SplitList(value string) []string {
	parts := strings.Split(value, ",")
	out := make([]string, len(parts))
	for i, part := range parts {
		out[i] = strings.TrimSpace(part)
	}
	return out
}

// ISODate renders now as YYYY-MM-DD in UTC.
func ISODate(now time.Time) string {
	return now.UTC().Format(ISODateLayout)
}

// DisplayDate renders now as "Month D, YYYY" in now's location.
func DisplayDate(now time.Time) string {
	return now.Format(DisplayDateLayout)
}
