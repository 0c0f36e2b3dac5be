package logging

import (
	"context"
	"strings"

	"github.com/goliatone/go-codeprob/pkg/interfaces"
)

const (
	rootModule     = "codeprob"
	exportModule   = "codeprob.export"
	markdownModule = "codeprob.markdown"
	indexModule    = "codeprob.index"
	commandsModule = "codeprob.commands"
)

const (
	fieldKind     = "kind"
	fieldFilename = "filename"
	fieldExportID = "export_id"
)

// ModuleLogger returns a logger scoped to module, falling back to NoOp when
// provider is nil or returns nil. The module name is attached as the
// "module" field.
func ModuleLogger(provider interfaces.LoggerProvider, module string) interfaces.Logger {
	if module == "" {
		module = rootModule
	}

	logger := NoOp()
	if provider != nil {
		if provided := provider.GetLogger(module); provided != nil {
			logger = provided
		}
	}

	return WithFields(logger, map[string]any{"module": module})
}

// ExportLogger returns the logger used by the export orchestrator.
func ExportLogger(provider interfaces.LoggerProvider) interfaces.Logger {
	return ModuleLogger(provider, exportModule)
}

// MarkdownLogger returns the logger used by the template engine and
// markdown renderers.
func MarkdownLogger(provider interfaces.LoggerProvider) interfaces.Logger {
	return ModuleLogger(provider, markdownModule)
}

// IndexLogger returns the logger used by the content index validator.
func IndexLogger(provider interfaces.LoggerProvider) interfaces.Logger {
	return ModuleLogger(provider, indexModule)
}

// CommandsLogger returns the logger used by command handlers.
func CommandsLogger(provider interfaces.LoggerProvider) interfaces.Logger {
	return ModuleLogger(provider, commandsModule)
}

// WithExportContext enriches logger with the kind, output filename and
// export identifier of an export. Empty values are skipped.
func WithExportContext(logger interfaces.Logger, kind, filename, exportID string) interfaces.Logger {
	fields := map[string]any{}
	if trimmed := strings.TrimSpace(kind); trimmed != "" {
		fields[fieldKind] = trimmed
	}
	if trimmed := strings.TrimSpace(filename); trimmed != "" {
		fields[fieldFilename] = trimmed
	}
	if trimmed := strings.TrimSpace(exportID); trimmed != "" {
		fields[fieldExportID] = trimmed
	}
	return WithFields(logger, fields)
}

// NoOp returns a logger that drops every entry.
func NoOp() interfaces.Logger {
	return noopLogger{}
}

type noopLogger struct{}

var _ interfaces.Logger = noopLogger{}

func (noopLogger) Trace(string, ...any) {}
func (noopLogger) Debug(string, ...any) {}
func (noopLogger) Info(string, ...any)  {}
func (noopLogger) Warn(string, ...any)  {}
func (noopLogger) Error(string, ...any) {}
func (noopLogger) Fatal(string, ...any) {}

func (n noopLogger) WithFields(map[string]any) interfaces.Logger {
	return n
}

func (n noopLogger) WithContext(context.Context) interfaces.Logger {
	return n
}
