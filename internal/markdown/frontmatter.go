package markdown

import (
	"bytes"
	"fmt"

	"github.com/adrg/frontmatter"
)

// Source is an authored markdown file split into its front matter and body.
type Source struct {
	Kind   string
	Title  string
	Author string
	// Meta holds every front matter key, including the typed ones above.
	Meta map[string]any
	Body []byte
}

type sourceEnvelope struct {
	Kind   string         `yaml:"kind" toml:"kind" json:"kind"`
	Title  string         `yaml:"title" toml:"title" json:"title"`
	Author string         `yaml:"author" toml:"author" json:"author"`
	Custom map[string]any `yaml:",inline"`
}

// ParseFrontMatter extracts YAML, TOML or JSON front matter from source.
// Sources without front matter return an empty Meta and the whole input as
// Body.
func ParseFrontMatter(source []byte) (Source, error) {
	var env sourceEnvelope
	body, err := frontmatter.Parse(bytes.NewReader(source), &env)
	if err != nil {
		return Source{}, fmt.Errorf("parse frontmatter: %w", err)
	}

	meta := make(map[string]any, len(env.Custom)+3)
	for key, value := range env.Custom {
		meta[key] = value
	}
	if env.Kind != "" {
		meta["kind"] = env.Kind
	}
	if env.Title != "" {
		meta["title"] = env.Title
	}
	if env.Author != "" {
		meta["author"] = env.Author
	}

	return Source{
		Kind:   env.Kind,
		Title:  env.Title,
		Author: env.Author,
		Meta:   meta,
		Body:   body,
	}, nil
}
