package exporter

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/goliatone/go-codeprob/internal/domain"
	"github.com/goliatone/go-codeprob/internal/logging"
	"github.com/goliatone/go-codeprob/internal/metadata"
	"github.com/goliatone/go-codeprob/internal/templates"
	"github.com/goliatone/go-codeprob/pkg/interfaces"
)

// Service validates submissions and turns them into exportable artefacts.
type Service interface {
	Validate(kind domain.Kind, fields domain.FieldSet) []string
	Export(ctx context.Context, kind domain.Kind, fields domain.FieldSet) (*Result, error)
	Preview(ctx context.Context, kind domain.Kind, fields domain.FieldSet) (string, error)
	Render(text string) (string, error)
}

// Result is the outcome of a successful export.
type Result struct {
	ExportID    uuid.UUID      `json:"export_id" yaml:"export_id"`
	Kind        domain.Kind    `json:"kind" yaml:"kind"`
	Filename    string         `json:"filename" yaml:"filename"`
	Document    string         `json:"-" yaml:"-"`
	Entry       metadata.Entry `json:"entry" yaml:"entry"`
	GeneratedAt time.Time      `json:"generated_at" yaml:"generated_at"`
}

// Hint tells the contributor where the metadata entry belongs.
func (r *Result) Hint() string {
	return fmt.Sprintf("Add this entry to contributor-config.json in the %q array", r.Kind.Plural())
}

// IDGenerator produces export identifiers.
type IDGenerator func() uuid.UUID

// ServiceOption configures the export service.
type ServiceOption func(*service)

// WithClock overrides the time source used for dates and GeneratedAt.
func WithClock(clock func() time.Time) ServiceOption {
	return func(s *service) {
		if clock != nil {
			s.now = clock
		}
	}
}

// WithIDGenerator overrides the export identifier source.
func WithIDGenerator(generator IDGenerator) ServiceOption {
	return func(s *service) {
		if generator != nil {
			s.id = generator
		}
	}
}

// WithLogger sets the service logger.
func WithLogger(logger interfaces.Logger) ServiceOption {
	return func(s *service) {
		if logger != nil {
			s.logger = logger
		}
	}
}

type service struct {
	engine *templates.Engine
	now    func() time.Time
	id     IDGenerator
	logger interfaces.Logger
}

// NewService returns an export service rendering through engine. A nil
// engine selects the built-in skeletons with the markdown dialect.
func NewService(engine *templates.Engine, opts ...ServiceOption) Service {
	if engine == nil {
		engine = templates.NewEngine()
	}
	s := &service{
		engine: engine,
		now:    time.Now,
		id:     uuid.New,
		logger: logging.NoOp(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *service) Validate(kind domain.Kind, fields domain.FieldSet) []string {
	return Validate(kind, fields)
}

// Export validates fields and, when they pass, generates the document,
// filename and metadata entry from a single clock reading. Validation
// failures return a *ValidationError and no partial output.
func (s *service) Export(ctx context.Context, kind domain.Kind, fields domain.FieldSet) (*Result, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if !kind.Valid() {
		return nil, fmt.Errorf("%w: %q", domain.ErrUnknownKind, kind)
	}

	logger := logging.WithExportContext(s.logger.WithContext(ctx), kind.String(), "", "")
	if problems := validate(kind, fields); len(problems) > 0 {
		verr := newValidationError(kind, problems)
		logger.Warn("export.validate.failed", "fields", verr.Fields())
		return nil, verr
	}

	now := s.now()
	document, err := s.engine.Generate(kind, fields, now)
	if err != nil {
		logger.Error("export.generate.failed", "error", err)
		return nil, err
	}

	result := &Result{
		ExportID:    s.id(),
		Kind:        kind,
		Filename:    metadata.Filename(kind, fields.Get(domain.FieldTitle)),
		Document:    document,
		Entry:       metadata.NewEntry(kind, fields, now),
		GeneratedAt: now,
	}
	logging.WithExportContext(logger, "", result.Filename, result.ExportID.String()).
		Info("export.generate.success", "bytes", len(document))
	return result, nil
}

// Preview runs Export and returns only the article element of the document.
func (s *service) Preview(ctx context.Context, kind domain.Kind, fields domain.FieldSet) (string, error) {
	result, err := s.Export(ctx, kind, fields)
	if err != nil {
		return "", err
	}
	fragment, err := ExtractArticle(result.Document)
	if err != nil {
		s.logger.Warn("export.preview.parse_failed", "error", err)
		return previewUnavailable, nil
	}
	return fragment, nil
}

func (s *service) Render(text string) (string, error) {
	return s.engine.Render(text)
}
