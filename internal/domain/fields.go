package domain

import (
	"sort"
	"strings"
)

// Field names collected from the authoring form.
const (
	FieldTitle       = "title"
	FieldAuthor      = "author"
	FieldDifficulty  = "difficulty"
	FieldTopics      = "topics"
	FieldDescription = "description"
	FieldExamples    = "examples"
	FieldHints       = "hints"
	FieldRelated     = "related"
	FieldCategory    = "category"
	FieldComplexity  = "complexity"
	FieldOverview    = "overview"
	FieldExplanation = "explanation"
	FieldProblems    = "problems"
	FieldTags        = "tags"
	FieldContent     = "content"
	FieldReferences  = "references"
)

// RequiredField pairs a field name with the message reported when it is
// missing.
type RequiredField struct {
	Name    string
	Message string
}

var commonRequired = []RequiredField{
	{Name: FieldTitle, Message: "Title is required"},
	{Name: FieldAuthor, Message: "Author is required"},
}

var kindRequired = map[Kind][]RequiredField{
	KindProblem: {
		{Name: FieldDifficulty, Message: "Difficulty is required"},
		{Name: FieldTopics, Message: "Topics are required"},
		{Name: FieldDescription, Message: "Description is required"},
		{Name: FieldExamples, Message: "Examples are required"},
	},
	KindConcept: {
		{Name: FieldCategory, Message: "Category is required"},
		{Name: FieldComplexity, Message: "Complexity is required"},
		{Name: FieldOverview, Message: "Overview is required"},
		{Name: FieldExplanation, Message: "Explanation is required"},
		{Name: FieldExamples, Message: "Examples are required"},
	},
	KindArticle: {
		{Name: FieldTags, Message: "Tags are required"},
		{Name: FieldContent, Message: "Content is required"},
	},
}

// RequiredFields returns the required fields for kind in declaration order:
// the common fields first, then the kind-specific ones.
func RequiredFields(kind Kind) []RequiredField {
	out := make([]RequiredField, 0, len(commonRequired)+len(kindRequired[kind]))
	out = append(out, commonRequired...)
	out = append(out, kindRequired[kind]...)
	return out
}

// BodyField returns the free-text field that receives a markdown document
// body when fields are read from a file.
func BodyField(kind Kind) string {
	switch kind {
	case KindProblem:
		return FieldDescription
	case KindConcept:
		return FieldExplanation
	case KindArticle:
		return FieldContent
	default:
		return ""
	}
}

// FieldSet holds the trimmed form values for one submission. It is never
// mutated by the core; every export collects a fresh set.
type FieldSet map[string]string

// NewFieldSet copies values into a FieldSet, trimming each value.
func NewFieldSet(values map[string]string) FieldSet {
	out := make(FieldSet, len(values))
	for key, value := range values {
		name := strings.ToLower(strings.TrimSpace(key))
		if name == "" {
			continue
		}
		out[name] = strings.TrimSpace(value)
	}
	return out
}

// Get returns the trimmed value stored under name, or "" when absent.
func (f FieldSet) Get(name string) string {
	if f == nil {
		return ""
	}
	return strings.TrimSpace(f[name])
}

// Has reports whether name holds a non-blank value.
func (f FieldSet) Has(name string) bool {
	return f.Get(name) != ""
}

// Names returns the sorted field names present in the set.
func (f FieldSet) Names() []string {
	names := make([]string, 0, len(f))
	for name := range f {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Merge returns a new FieldSet with values from other layered over f.
// Blank values in other do not clear existing values.
func (f FieldSet) Merge(other FieldSet) FieldSet {
	out := make(FieldSet, len(f)+len(other))
	for key, value := range f {
		out[key] = value
	}
	for key, value := range other {
		if strings.TrimSpace(value) == "" {
			if _, ok := out[key]; ok {
				continue
			}
		}
		out[key] = strings.TrimSpace(value)
	}
	return out
}
