package templates

import (
	"errors"
	"strings"
	"testing"
	"time"

	goerrors "github.com/goliatone/go-errors"

	"github.com/goliatone/go-codeprob/internal/domain"
	"github.com/goliatone/go-codeprob/internal/markdown"
	"github.com/goliatone/go-codeprob/pkg/interfaces"
)

var fixedNow = time.Date(2025, time.June, 3, 10, 0, 0, 0, time.UTC)

func problemFields() domain.FieldSet {
	return domain.FieldSet{
		domain.FieldTitle:       "Two Sum",
		domain.FieldAuthor:      "Ada Lovelace",
		domain.FieldDifficulty:  "easy",
		domain.FieldTopics:      "arrays, hash-table",
		domain.FieldDescription: "Find **two** numbers.",
		domain.FieldExamples:    "Example 1:\nInput: [2,7]\nOutput: [0,1]",
		domain.FieldRelated:     "- Three Sum",
	}
}

func TestGenerateDocumentInvariants(t *testing.T) {
	engine := NewEngine()
	cases := []struct {
		kind   domain.Kind
		fields domain.FieldSet
	}{
		{domain.KindProblem, problemFields()},
		{domain.KindConcept, domain.FieldSet{
			domain.FieldTitle:       "Dynamic Programming",
			domain.FieldAuthor:      "Richard",
			domain.FieldCategory:    "algorithms",
			domain.FieldComplexity:  "intermediate",
			domain.FieldOverview:    "Break problems down.",
			domain.FieldExplanation: "# Memoization",
			domain.FieldExamples:    "`fib(n)`",
			domain.FieldProblems:    "• Climbing Stairs",
		}},
		{domain.KindArticle, domain.FieldSet{
			domain.FieldTitle:      "Go Tips & Tricks",
			domain.FieldAuthor:     "Rob Pike",
			domain.FieldTags:       "go, tips",
			domain.FieldContent:    "Use ***gofmt***.",
			domain.FieldReferences: "",
		}},
	}

	for _, tc := range cases {
		t.Run(tc.kind.String(), func(t *testing.T) {
			html, err := engine.Generate(tc.kind, tc.fields, fixedNow)
			if err != nil {
				t.Fatalf("Generate: %v", err)
			}
			if !strings.HasPrefix(html, "<!DOCTYPE html>") {
				t.Fatalf("document must start with doctype")
			}
			if !strings.Contains(html, `<article class="`+tc.kind.String()+`"`) {
				t.Fatalf("missing article element for %s", tc.kind)
			}
			if !strings.Contains(html, tc.fields.Get(domain.FieldTitle)) {
				t.Fatalf("missing literal title")
			}
			if strings.Contains(html, "{{") {
				t.Fatalf("unreplaced placeholder in output:\n%s", html)
			}
		})
	}
}

func TestGenerateKeepsPlaceholderTokensInValues(t *testing.T) {
	fields := domain.FieldSet{
		domain.FieldTitle:   "Why {{ID}} matters",
		domain.FieldAuthor:  "{{DATE}}",
		domain.FieldTags:    "go",
		domain.FieldContent: "Literal {{TITLE}} token.",
	}
	html, err := NewEngine().Generate(domain.KindArticle, fields, fixedNow)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	for _, want := range []string{
		"Why {{ID}} matters",
		`data-id="why-id-matters"`,
		"Literal {{TITLE}} token.",
		`<span class="author">{{DATE}}</span>`,
	} {
		if !strings.Contains(html, want) {
			t.Fatalf("expected %q in document:\n%s", want, html)
		}
	}
}

func TestGenerateProblem(t *testing.T) {
	html, err := NewEngine().Generate(domain.KindProblem, problemFields(), fixedNow)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}

	wants := []string{
		`data-id="two-sum"`,
		`data-difficulty="easy"`,
		`<span class="difficulty">Easy</span>`,
		`<span class="topics">arrays, hash-table</span>`,
		`<title>Two Sum - CodeProb</title>`,
		"<strong>two</strong>",
		`<div class="example"><h3>Example 1:</h3>`,
		"<ul><li>Three Sum</li></ul>",
	}
	for _, want := range wants {
		if !strings.Contains(html, want) {
			t.Fatalf("expected %q in problem document", want)
		}
	}
	if strings.Contains(html, `class="hints"`) {
		t.Fatalf("hints section must be omitted when hints are empty")
	}
}

func TestGenerateProblemHints(t *testing.T) {
	cases := []struct {
		hints   string
		present bool
	}{
		{"", false},
		{"   \n  ", false},
		{"Try a *hash map*", true},
	}
	for _, tc := range cases {
		fields := problemFields()
		fields[domain.FieldHints] = tc.hints

		html, err := NewEngine().Generate(domain.KindProblem, fields, fixedNow)
		if err != nil {
			t.Fatalf("Generate: %v", err)
		}
		got := strings.Contains(html, `<section class="hints" data-optional="true">`)
		if got != tc.present {
			t.Fatalf("hints %q: section present = %v, want %v", tc.hints, got, tc.present)
		}
		if tc.present && !strings.Contains(html, "<em>hash map</em>") {
			t.Fatalf("hints must go through the markdown processor")
		}
	}
}

func TestGenerateConceptAndArticle(t *testing.T) {
	engine := NewEngine()

	concept, err := engine.Generate(domain.KindConcept, domain.FieldSet{
		domain.FieldTitle:      "Graphs",
		domain.FieldCategory:   "data-structures",
		domain.FieldComplexity: "advanced",
		domain.FieldExamples:   "```go\nvar g Graph\n```",
	}, fixedNow)
	if err != nil {
		t.Fatalf("Generate concept: %v", err)
	}
	for _, want := range []string{
		`data-category="data-structures"`,
		`<span class="category">Data-structures</span>`,
		`<span class="difficulty">Advanced</span>`,
		`<code class="language-go">`,
		"<p>No related content available.</p>",
	} {
		if !strings.Contains(concept, want) {
			t.Fatalf("expected %q in concept document", want)
		}
	}

	article, err := engine.Generate(domain.KindArticle, domain.FieldSet{
		domain.FieldTitle:   "Go Tips",
		domain.FieldAuthor:  "Rob Pike",
		domain.FieldTags:    "go",
		domain.FieldContent: "***bold italic***",
	}, fixedNow)
	if err != nil {
		t.Fatalf("Generate article: %v", err)
	}
	for _, want := range []string{
		`data-author="rob-pike"`,
		`<span class="author">Rob Pike</span>`,
		`<span class="date">June 3, 2025</span>`,
		"<strong><em>bold italic</em></strong>",
	} {
		if !strings.Contains(article, want) {
			t.Fatalf("expected %q in article document", want)
		}
	}
}

func TestGenerateUnknownKind(t *testing.T) {
	_, err := NewEngine(WithRegistry(NewRegistry())).Generate(domain.KindProblem, problemFields(), fixedNow)
	if !errors.Is(err, ErrTemplateNotFound) {
		t.Fatalf("expected ErrTemplateNotFound, got %v", err)
	}
	if !goerrors.IsNotFound(err) {
		t.Fatalf("expected not_found category, got %v", err)
	}
	var typed *goerrors.Error
	if !goerrors.As(err, &typed) || typed.TextCode != "TEMPLATE_NOT_FOUND" {
		t.Fatalf("expected TEMPLATE_NOT_FOUND text code, got %v", err)
	}
}

func TestGenerateWithGoldmark(t *testing.T) {
	engine := NewEngine(WithParser(markdown.NewGoldmarkParser(interfaces.ParseOptions{})))
	fields := problemFields()
	fields[domain.FieldDescription] = "Plain paragraph"

	html, err := engine.Generate(domain.KindProblem, fields, fixedNow)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if !strings.Contains(html, "<p>Plain paragraph</p>") {
		t.Fatalf("expected goldmark paragraph output")
	}
}

type failingParser struct{}

func (failingParser) Parse([]byte) ([]byte, error) { return nil, errors.New("boom") }
func (failingParser) ParseWithOptions([]byte, interfaces.ParseOptions) ([]byte, error) {
	return nil, errors.New("boom")
}

func TestGeneratePropagatesParserErrors(t *testing.T) {
	_, err := NewEngine(WithParser(failingParser{})).Generate(domain.KindArticle, domain.FieldSet{
		domain.FieldTitle: "x", domain.FieldContent: "y",
	}, fixedNow)
	if err == nil || err.Error() != "boom" {
		t.Fatalf("expected parser error, got %v", err)
	}
}

func TestRegistryKinds(t *testing.T) {
	registry := NewRegistry()
	registry.Register(domain.KindArticle, "<!DOCTYPE html>")
	registry.Register(domain.KindProblem, "<!DOCTYPE html>")

	kinds := registry.Kinds()
	if len(kinds) != 2 || kinds[0] != domain.KindProblem || kinds[1] != domain.KindArticle {
		t.Fatalf("unexpected kinds %v", kinds)
	}
	if got := len(DefaultRegistry().Kinds()); got != 3 {
		t.Fatalf("expected 3 built-in skeletons, got %d", got)
	}
}

func TestDisplayCase(t *testing.T) {
	cases := map[string]string{
		"easy":         "Easy",
		"":             "",
		"élan":         "Élan",
		"Already":      "Already",
		"multi word x": "Multi word x",
	}
	for input, want := range cases {
		if got := DisplayCase(input); got != want {
			t.Fatalf("DisplayCase(%q) = %q, want %q", input, got, want)
		}
	}
}
