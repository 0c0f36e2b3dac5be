package contentcmd

import (
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/goliatone/go-codeprob/internal/domain"
	"github.com/goliatone/go-codeprob/internal/exporter"
	"github.com/goliatone/go-codeprob/internal/index"
)

const (
	exportContentMessageType  = "codeprob.content.export"
	previewContentMessageType = "codeprob.content.preview"
	renderMarkdownMessageType = "codeprob.markdown.render"
	validateIndexMessageType  = "codeprob.index.validate"
)

// ExportOutcome is handed to ExportContentCommand.ResultCallback.
type ExportOutcome struct {
	Result *exporter.Result
	// Path is empty for dry runs.
	Path string
	// Metadata is the formatted index entry suggestion.
	Metadata string
}

// ExportContentCommand generates a document for Fields and, unless DryRun is
// set, writes it under OutputDir.
type ExportContentCommand struct {
	Kind           domain.Kind         `json:"kind"`
	Fields         domain.FieldSet     `json:"fields"`
	OutputDir      string              `json:"output_dir,omitempty"`
	MetadataFormat string              `json:"metadata_format,omitempty"`
	DryRun         bool                `json:"dry_run,omitempty"`
	ResultCallback func(ExportOutcome) `json:"-"`
}

// Type implements command.Message.
func (ExportContentCommand) Type() string { return exportContentMessageType }

// Validate checks the kind and metadata format. Field presence is checked by
// the export service so every missing field is reported at once.
func (m ExportContentCommand) Validate() error {
	errs := validation.Errors{}
	if err := validateKind(m.Kind, exportContentMessageType); err != nil {
		errs["kind"] = err
	}
	switch strings.ToLower(strings.TrimSpace(m.MetadataFormat)) {
	case "", exporter.FormatJSON, exporter.FormatYAML:
	default:
		errs["metadata_format"] = validation.NewError(exportContentMessageType+".metadata_format_invalid", "metadata_format must be json or yaml")
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

// PreviewContentCommand renders the article fragment for Fields.
type PreviewContentCommand struct {
	Kind           domain.Kind     `json:"kind"`
	Fields         domain.FieldSet `json:"fields"`
	ResultCallback func(string)    `json:"-"`
}

// Type implements command.Message.
func (PreviewContentCommand) Type() string { return previewContentMessageType }

// Validate ensures the kind is supported.
func (m PreviewContentCommand) Validate() error {
	if err := validateKind(m.Kind, previewContentMessageType); err != nil {
		return validation.Errors{"kind": err}
	}
	return nil
}

// RenderMarkdownCommand converts a markdown fragment with the configured engine.
type RenderMarkdownCommand struct {
	Text           string       `json:"text"`
	ResultCallback func(string) `json:"-"`
}

// Type implements command.Message.
func (RenderMarkdownCommand) Type() string { return renderMarkdownMessageType }

// Validate accepts any text; empty input renders as empty output.
func (RenderMarkdownCommand) Validate() error { return nil }

// ValidateIndexCommand checks a site checkout against its content index.
// Empty fields fall back to the handler defaults.
type ValidateIndexCommand struct {
	RootDir        string              `json:"root_dir,omitempty"`
	ConfigPath     string              `json:"config_path,omitempty"`
	ResultCallback func(*index.Report) `json:"-"`
}

// Type implements command.Message.
func (ValidateIndexCommand) Type() string { return validateIndexMessageType }

// Validate accepts any paths; missing files are reported by the validator.
func (ValidateIndexCommand) Validate() error { return nil }

func validateKind(kind domain.Kind, messageType string) error {
	if strings.TrimSpace(kind.String()) == "" {
		return validation.NewError(messageType+".kind_required", "kind is required")
	}
	if !kind.Valid() {
		return validation.NewError(messageType+".kind_invalid", "kind must be problem, concept or article")
	}
	return nil
}
