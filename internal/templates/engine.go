package templates

import (
	"strings"
	"time"
	"unicode"
	"unicode/utf8"

	"github.com/goliatone/go-codeprob/internal/domain"
	"github.com/goliatone/go-codeprob/internal/logging"
	"github.com/goliatone/go-codeprob/internal/markdown"
	"github.com/goliatone/go-codeprob/internal/metadata"
	"github.com/goliatone/go-codeprob/pkg/interfaces"
)

const hintsSection = `<section class="hints" data-optional="true">
                    <h2>Hints</h2>
                    {{HINTS}}
                </section>`

// Engine fills page skeletons with processed field values.
type Engine struct {
	registry *Registry
	parser   interfaces.MarkdownParser
	logger   interfaces.Logger
}

// Option customises an Engine.
type Option func(*Engine)

// WithRegistry replaces the built-in skeletons.
func WithRegistry(registry *Registry) Option {
	return func(e *Engine) {
		if registry != nil {
			e.registry = registry
		}
	}
}

// WithParser selects the markdown engine used for prose fields.
func WithParser(parser interfaces.MarkdownParser) Option {
	return func(e *Engine) {
		if parser != nil {
			e.parser = parser
		}
	}
}

// WithLogger sets the engine logger.
func WithLogger(logger interfaces.Logger) Option {
	return func(e *Engine) {
		if logger != nil {
			e.logger = logger
		}
	}
}

// NewEngine returns an engine using the built-in skeletons and the markdown
// dialect unless overridden.
func NewEngine(opts ...Option) *Engine {
	engine := &Engine{
		registry: DefaultRegistry(),
		parser:   markdown.NewProcessor(),
		logger:   logging.NoOp(),
	}
	for _, opt := range opts {
		opt(engine)
	}
	return engine
}

// Generate produces the complete HTML document for kind. Every placeholder is
// substituted in a single pass over the skeleton, so field values are never
// rescanned for tokens. Generate does not validate fields; missing values
// render as empty strings.
func (e *Engine) Generate(kind domain.Kind, fields domain.FieldSet, now time.Time) (string, error) {
	skeleton, err := e.registry.Lookup(kind)
	if err != nil {
		return "", err
	}

	r := &replacer{}
	r.set("TITLE", fields.Get(domain.FieldTitle))
	r.set("ID", metadata.Slugify(fields.Get(domain.FieldTitle)))
	r.set("AUTHOR", fields.Get(domain.FieldAuthor))
	r.set("DATE", metadata.DisplayDate(now))

	switch kind {
	case domain.KindProblem:
		difficulty := fields.Get(domain.FieldDifficulty)
		r.set("DIFFICULTY", difficulty)
		r.set("DIFFICULTY_DISPLAY", DisplayCase(difficulty))
		r.set("TOPICS", fields.Get(domain.FieldTopics))
		r.set("DESCRIPTION", e.markdown(r, fields.Get(domain.FieldDescription)))
		r.set("EXAMPLES", markdown.ProcessExamples(fields.Get(domain.FieldExamples)))
		r.set("HINTS_SECTION", e.hints(r, fields.Get(domain.FieldHints)))
		r.set("RELATED_LINKS", markdown.ProcessRelatedLinks(fields.Get(domain.FieldRelated)))
	case domain.KindConcept:
		r.set("CATEGORY", fields.Get(domain.FieldCategory))
		r.set("CATEGORY_DISPLAY", DisplayCase(fields.Get(domain.FieldCategory)))
		r.set("COMPLEXITY_DISPLAY", DisplayCase(fields.Get(domain.FieldComplexity)))
		r.set("OVERVIEW", e.markdown(r, fields.Get(domain.FieldOverview)))
		r.set("EXPLANATION", e.markdown(r, fields.Get(domain.FieldExplanation)))
		r.set("EXAMPLES", e.markdown(r, fields.Get(domain.FieldExamples)))
		r.set("RELATED_PROBLEMS", markdown.ProcessRelatedLinks(fields.Get(domain.FieldProblems)))
	case domain.KindArticle:
		r.set("AUTHOR_ID", metadata.Slugify(fields.Get(domain.FieldAuthor)))
		r.set("TAGS", fields.Get(domain.FieldTags))
		r.set("CONTENT", e.markdown(r, fields.Get(domain.FieldContent)))
		r.set("REFERENCES", markdown.ProcessRelatedLinks(fields.Get(domain.FieldReferences)))
	}

	if r.err != nil {
		e.logger.Error("template.generate.failed", "kind", kind.String(), "error", r.err)
		return "", r.err
	}
	return r.apply(skeleton), nil
}

// Render converts text with the configured markdown engine. It backs the
// live preview, which shows markdown output without any skeleton.
func (e *Engine) Render(text string) (string, error) {
	out, err := e.parser.Parse([]byte(text))
	if err != nil {
		return "", err
	}
	return string(out), nil
}

// Kinds reports the kinds the engine can generate.
func (e *Engine) Kinds() []domain.Kind {
	return e.registry.Kinds()
}

func (e *Engine) markdown(r *replacer, text string) string {
	if r.err != nil {
		return ""
	}
	out, err := e.Render(text)
	if err != nil {
		r.err = err
		return ""
	}
	return out
}

func (e *Engine) hints(r *replacer, text string) string {
	if strings.TrimSpace(text) == "" {
		return ""
	}
	return strings.ReplaceAll(hintsSection, "{{HINTS}}", e.markdown(r, text))
}

type replacer struct {
	pairs []string
	err   error
}

func (r *replacer) set(name, value string) {
	r.pairs = append(r.pairs, "{{"+name+"}}", value)
}

func (r *replacer) apply(skeleton string) string {
	return strings.NewReplacer(r.pairs...).Replace(skeleton)
}

// DisplayCase upper-cases the first character of value and leaves the rest
// untouched.
func DisplayCase(value string) string {
	first, size := utf8.DecodeRuneInString(value)
	if size == 0 || first == utf8.RuneError {
		return value
	}
	return string(unicode.ToUpper(first)) + value[size:]
}
