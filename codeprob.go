// Package codeprob generates static HTML pages for coding problems, concept
// explainers and articles from contributor-supplied fields, and checks a
// site checkout against its content index.
package codeprob

import (
	"github.com/goliatone/go-codeprob/internal/di"
	"github.com/goliatone/go-codeprob/internal/domain"
	"github.com/goliatone/go-codeprob/internal/exporter"
	"github.com/goliatone/go-codeprob/internal/index"
	"github.com/goliatone/go-codeprob/internal/metadata"
	"github.com/goliatone/go-codeprob/internal/templates"
	"github.com/goliatone/go-codeprob/pkg/interfaces"
)

type (
	// Kind identifies problem, concept or article content.
	Kind = domain.Kind
	// FieldSet holds the submitted form values keyed by field name.
	FieldSet = domain.FieldSet
	// ExportService exports the export orchestrator contract.
	ExportService = exporter.Service
	// ExportResult is the outcome of a successful export.
	ExportResult = exporter.Result
	// ValidationError lists the missing required fields of a submission.
	ValidationError = exporter.ValidationError
	// Entry is a content index record.
	Entry = metadata.Entry
	// IndexReport is the outcome of a content index validation run.
	IndexReport = index.Report
)

const (
	KindProblem = domain.KindProblem
	KindConcept = domain.KindConcept
	KindArticle = domain.KindArticle
)

// ParseKind resolves singular or plural kind names.
func ParseKind(input string) (Kind, error) {
	return domain.ParseKind(input)
}

// Module is the top level façade over the configured services.
type Module struct {
	container *di.Container
}

// New constructs a module using cfg and optional container overrides.
func New(cfg Config, opts ...di.Option) (*Module, error) {
	container, err := di.NewContainer(cfg, opts...)
	if err != nil {
		return nil, err
	}
	return &Module{container: container}, nil
}

// Container exposes the underlying container for advanced integrations.
func (m *Module) Container() *di.Container {
	return m.container
}

// Export returns the export orchestrator.
func (m *Module) Export() ExportService {
	return m.container.ExportService()
}

// Templates returns the template engine.
func (m *Module) Templates() *templates.Engine {
	return m.container.Engine()
}

// Markdown returns the parser used for markdown fields.
func (m *Module) Markdown() interfaces.MarkdownParser {
	return m.container.Parser()
}

// Close releases dispatcher subscriptions held by the module.
func (m *Module) Close() {
	if m == nil || m.container == nil {
		return
	}
	m.container.Close()
}
