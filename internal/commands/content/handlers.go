package contentcmd

import (
	"context"
	"strings"

	command "github.com/goliatone/go-command"

	"github.com/goliatone/go-codeprob/internal/commands"
	"github.com/goliatone/go-codeprob/internal/exporter"
	"github.com/goliatone/go-codeprob/internal/index"
	"github.com/goliatone/go-codeprob/internal/logging"
	"github.com/goliatone/go-codeprob/pkg/interfaces"
)

const (
	exportOperation   = "content.export"
	previewOperation  = "content.preview"
	renderOperation   = "markdown.render"
	validateOperation = "index.validate"
)

var (
	_ command.Commander[ExportContentCommand]  = (*ExportContentHandler)(nil)
	_ command.Commander[PreviewContentCommand] = (*PreviewContentHandler)(nil)
	_ command.Commander[RenderMarkdownCommand] = (*RenderMarkdownHandler)(nil)
	_ command.Commander[ValidateIndexCommand]  = (*ValidateIndexHandler)(nil)
)

// ExportDefaults supplies values for fields an ExportContentCommand leaves empty.
type ExportDefaults struct {
	OutputDir      string
	MetadataFormat string
	Overwrite      bool
}

// ExportContentHandler runs exports and writes the generated documents.
type ExportContentHandler struct {
	inner *commands.Handler[ExportContentCommand]
}

// NewExportContentHandler binds the handler to service.
func NewExportContentHandler(service exporter.Service, defaults ExportDefaults, logger interfaces.Logger, opts ...commands.HandlerOption[ExportContentCommand]) *ExportContentHandler {
	baseLogger := ensureLogger(logger)

	exec := func(ctx context.Context, msg ExportContentCommand) error {
		result, err := service.Export(ctx, msg.Kind, msg.Fields)
		if err != nil {
			return err
		}

		format := firstNonEmpty(msg.MetadataFormat, defaults.MetadataFormat)
		suggestion, err := exporter.FormatEntry(result.Entry, format)
		if err != nil {
			return err
		}

		outcome := ExportOutcome{Result: result, Metadata: suggestion}
		if !msg.DryRun {
			writer := exporter.FileWriter{
				Dir:       firstNonEmpty(msg.OutputDir, defaults.OutputDir),
				Overwrite: defaults.Overwrite,
			}
			path, err := writer.Write(result)
			if err != nil {
				return err
			}
			outcome.Path = path
		}

		logging.WithExportContext(baseLogger, result.Kind.String(), result.Filename, result.ExportID.String()).
			Info("content.command.export.completed", "path", outcome.Path, "dry_run", msg.DryRun)
		if msg.ResultCallback != nil {
			msg.ResultCallback(outcome)
		}
		return nil
	}

	handlerOpts := []commands.HandlerOption[ExportContentCommand]{
		commands.WithLogger[ExportContentCommand](baseLogger),
		commands.WithOperation[ExportContentCommand](exportOperation),
		commands.WithMessageFields(func(msg ExportContentCommand) map[string]any {
			fields := map[string]any{
				"kind":        msg.Kind.String(),
				"field_names": msg.Fields.Names(),
			}
			if msg.DryRun {
				fields["dry_run"] = true
			}
			if msg.OutputDir != "" {
				fields["output_dir"] = msg.OutputDir
			}
			return fields
		}),
	}
	return &ExportContentHandler{inner: commands.NewHandler(exec, append(handlerOpts, opts...)...)}
}

// Execute satisfies command.Commander[ExportContentCommand].
func (h *ExportContentHandler) Execute(ctx context.Context, msg ExportContentCommand) error {
	return h.inner.Execute(ctx, msg)
}

// PreviewContentHandler renders article fragments.
type PreviewContentHandler struct {
	inner *commands.Handler[PreviewContentCommand]
}

// NewPreviewContentHandler binds the handler to service.
func NewPreviewContentHandler(service exporter.Service, logger interfaces.Logger, opts ...commands.HandlerOption[PreviewContentCommand]) *PreviewContentHandler {
	exec := func(ctx context.Context, msg PreviewContentCommand) error {
		fragment, err := service.Preview(ctx, msg.Kind, msg.Fields)
		if err != nil {
			return err
		}
		if msg.ResultCallback != nil {
			msg.ResultCallback(fragment)
		}
		return nil
	}

	handlerOpts := []commands.HandlerOption[PreviewContentCommand]{
		commands.WithLogger[PreviewContentCommand](ensureLogger(logger)),
		commands.WithOperation[PreviewContentCommand](previewOperation),
		commands.WithMessageFields(func(msg PreviewContentCommand) map[string]any {
			return map[string]any{"kind": msg.Kind.String()}
		}),
	}
	return &PreviewContentHandler{inner: commands.NewHandler(exec, append(handlerOpts, opts...)...)}
}

// Execute satisfies command.Commander[PreviewContentCommand].
func (h *PreviewContentHandler) Execute(ctx context.Context, msg PreviewContentCommand) error {
	return h.inner.Execute(ctx, msg)
}

// RenderMarkdownHandler converts markdown fragments for live previews.
type RenderMarkdownHandler struct {
	inner *commands.Handler[RenderMarkdownCommand]
}

// NewRenderMarkdownHandler binds the handler to service.
func NewRenderMarkdownHandler(service exporter.Service, logger interfaces.Logger, opts ...commands.HandlerOption[RenderMarkdownCommand]) *RenderMarkdownHandler {
	exec := func(ctx context.Context, msg RenderMarkdownCommand) error {
		out, err := service.Render(msg.Text)
		if err != nil {
			return err
		}
		if msg.ResultCallback != nil {
			msg.ResultCallback(out)
		}
		return nil
	}

	handlerOpts := []commands.HandlerOption[RenderMarkdownCommand]{
		commands.WithLogger[RenderMarkdownCommand](ensureLogger(logger)),
		commands.WithOperation[RenderMarkdownCommand](renderOperation),
		commands.WithMessageFields(func(msg RenderMarkdownCommand) map[string]any {
			return map[string]any{"bytes": len(msg.Text)}
		}),
	}
	return &RenderMarkdownHandler{inner: commands.NewHandler(exec, append(handlerOpts, opts...)...)}
}

// Execute satisfies command.Commander[RenderMarkdownCommand].
func (h *RenderMarkdownHandler) Execute(ctx context.Context, msg RenderMarkdownCommand) error {
	return h.inner.Execute(ctx, msg)
}

// ValidateIndexHandler runs the content index validator. A report with
// issues is not an error; callers inspect Report.ErrorCount.
type ValidateIndexHandler struct {
	inner *commands.Handler[ValidateIndexCommand]
}

// NewValidateIndexHandler uses defaults for paths the command leaves empty.
func NewValidateIndexHandler(defaults index.Options, logger interfaces.Logger, opts ...commands.HandlerOption[ValidateIndexCommand]) *ValidateIndexHandler {
	baseLogger := ensureLogger(logger)
	if defaults.Logger == nil {
		defaults.Logger = baseLogger
	}

	exec := func(ctx context.Context, msg ValidateIndexCommand) error {
		options := defaults
		options.RootDir = firstNonEmpty(msg.RootDir, defaults.RootDir)
		options.ConfigPath = firstNonEmpty(msg.ConfigPath, defaults.ConfigPath)

		report, err := index.NewValidator(options).Validate(ctx)
		if err != nil {
			return err
		}
		baseLogger.Info("index.command.validate.completed",
			"sections", len(report.Sections),
			"error_count", report.ErrorCount(),
		)
		if msg.ResultCallback != nil {
			msg.ResultCallback(report)
		}
		return nil
	}

	handlerOpts := []commands.HandlerOption[ValidateIndexCommand]{
		commands.WithLogger[ValidateIndexCommand](baseLogger),
		commands.WithOperation[ValidateIndexCommand](validateOperation),
		commands.WithMessageFields(func(msg ValidateIndexCommand) map[string]any {
			return map[string]any{"root_dir": firstNonEmpty(msg.RootDir, defaults.RootDir, ".")}
		}),
	}
	return &ValidateIndexHandler{inner: commands.NewHandler(exec, append(handlerOpts, opts...)...)}
}

// Execute satisfies command.Commander[ValidateIndexCommand].
func (h *ValidateIndexHandler) Execute(ctx context.Context, msg ValidateIndexCommand) error {
	return h.inner.Execute(ctx, msg)
}

func ensureLogger(logger interfaces.Logger) interfaces.Logger {
	if logger == nil {
		return logging.NoOp()
	}
	return logger
}

func firstNonEmpty(values ...string) string {
	for _, value := range values {
		if strings.TrimSpace(value) != "" {
			return value
		}
	}
	return ""
}
