// Package fields reads contributor submissions from files and CLI flags and
// normalises them into domain.FieldSet values.
package fields

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-codeprob/internal/domain"
	"github.com/goliatone/go-codeprob/internal/markdown"
)

const kindKey = "kind"

// ErrInvalidPair is returned by FromPairs for values without "=".
var ErrInvalidPair = errors.New("fields: expected key=value")

// Submission is a field set together with the kind it targets.
type Submission struct {
	Kind   domain.Kind
	Fields domain.FieldSet
}

// FromFile reads a submission from path. Markdown files (.md, .markdown)
// use front matter for scalar fields and the body for the kind's main text
// field; .yaml, .yml and .json files are flat maps. A "kind" key in the
// file wins over fallback.
func FromFile(path string, fallback domain.Kind) (Submission, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Submission{}, fmt.Errorf("fields: read %s: %w", path, err)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		set, err := FromYAML(data)
		if err != nil {
			return Submission{}, err
		}
		return withKind(set, fallback)
	case ".json":
		set, err := FromJSON(data)
		if err != nil {
			return Submission{}, err
		}
		return withKind(set, fallback)
	default:
		return FromFrontMatter(data, fallback)
	}
}

// FromFrontMatter parses a markdown document with optional front matter.
// List values such as topics or tags are joined with ", ".
func FromFrontMatter(data []byte, fallback domain.Kind) (Submission, error) {
	source, err := markdown.ParseFrontMatter(data)
	if err != nil {
		return Submission{}, err
	}

	sub, err := withKind(fromMap(source.Meta), fallback)
	if err != nil {
		return Submission{}, err
	}
	if body := strings.TrimSpace(string(source.Body)); body != "" {
		sub.Fields[domain.BodyField(sub.Kind)] = body
	}
	return sub, nil
}

// FromYAML decodes a flat YAML mapping.
func FromYAML(data []byte) (domain.FieldSet, error) {
	raw := map[string]any{}
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("fields: decode yaml: %w", err)
	}
	return fromMap(raw), nil
}

// FromJSON decodes a flat JSON object.
func FromJSON(data []byte) (domain.FieldSet, error) {
	raw := map[string]any{}
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("fields: decode json: %w", err)
	}
	return fromMap(raw), nil
}

// FromPairs parses key=value strings as given to repeated --field flags.
// Only the first "=" separates key from value.
func FromPairs(pairs []string) (domain.FieldSet, error) {
	values := make(map[string]string, len(pairs))
	for _, pair := range pairs {
		key, value, ok := strings.Cut(pair, "=")
		if !ok || strings.TrimSpace(key) == "" {
			return nil, fmt.Errorf("%w: %q", ErrInvalidPair, pair)
		}
		values[key] = value
	}
	return domain.NewFieldSet(values), nil
}

func withKind(set domain.FieldSet, fallback domain.Kind) (Submission, error) {
	kind := fallback
	if declared := set.Get(kindKey); declared != "" {
		parsed, err := domain.ParseKind(declared)
		if err != nil {
			return Submission{}, err
		}
		kind = parsed
	}
	if !kind.Valid() {
		return Submission{}, fmt.Errorf("%w: no kind given", domain.ErrUnknownKind)
	}
	delete(set, kindKey)
	return Submission{Kind: kind, Fields: set}, nil
}

func fromMap(raw map[string]any) domain.FieldSet {
	values := make(map[string]string, len(raw))
	for key, value := range raw {
		values[key] = stringify(value)
	}
	return domain.NewFieldSet(values)
}

func stringify(value any) string {
	switch typed := value.(type) {
	case nil:
		return ""
	case string:
		return typed
	case []any:
		parts := make([]string, 0, len(typed))
		for _, item := range typed {
			if s := strings.TrimSpace(stringify(item)); s != "" {
				parts = append(parts, s)
			}
		}
		return strings.Join(parts, ", ")
	case []string:
		return strings.Join(typed, ", ")
	case map[string]any:
		keys := make([]string, 0, len(typed))
		for key := range typed {
			keys = append(keys, key)
		}
		sort.Strings(keys)
		lines := make([]string, 0, len(keys))
		for _, key := range keys {
			lines = append(lines, key+": "+stringify(typed[key]))
		}
		return strings.Join(lines, "\n")
	default:
		return fmt.Sprint(typed)
	}
}
