// Package index checks a site checkout against its contributor-config.json:
// every listed page must exist, look like a generated document, and carry
// its title.
package index

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"os"

	"github.com/goliatone/go-codeprob/internal/domain"
	"github.com/goliatone/go-codeprob/internal/metadata"
	"github.com/goliatone/go-codeprob/internal/validation"
)

// DefaultConfigPath is the index file name at the site root.
const DefaultConfigPath = "contributor-config.json"

//go:embed schema.json
var schemaDocument []byte

var configSchema = validation.MustCompile("contributor-config.schema.json", schemaDocument)

// Config is the decoded contributor-config.json.
type Config struct {
	Content Content `json:"content"`
}

// Content groups index entries by kind. Missing arrays decode as empty.
type Content struct {
	Problems []metadata.Entry `json:"problems,omitempty"`
	Concepts []metadata.Entry `json:"concepts,omitempty"`
	Articles []metadata.Entry `json:"articles,omitempty"`
}

// Entries returns the entries listed for kind.
func (c *Config) Entries(kind domain.Kind) []metadata.Entry {
	switch kind {
	case domain.KindProblem:
		return c.Content.Problems
	case domain.KindConcept:
		return c.Content.Concepts
	case domain.KindArticle:
		return c.Content.Articles
	default:
		return nil
	}
}

// Load reads path, validates it against the index schema and decodes it.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("index: read %s: %w", path, err)
	}
	return Parse(data)
}

// Parse validates and decodes an index document.
func Parse(data []byte) (*Config, error) {
	if err := configSchema.ValidateJSON(data); err != nil {
		return nil, fmt.Errorf("index: %w", err)
	}
	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("index: decode: %w", err)
	}
	return &cfg, nil
}
