// Package di wires the codeprob services from a runtime configuration.
package di

import (
	"fmt"
	"strings"
	"time"

	"github.com/goliatone/go-codeprob/internal/commands"
	contentcmd "github.com/goliatone/go-codeprob/internal/commands/content"
	"github.com/goliatone/go-codeprob/internal/exporter"
	"github.com/goliatone/go-codeprob/internal/index"
	"github.com/goliatone/go-codeprob/internal/logging"
	"github.com/goliatone/go-codeprob/internal/logging/console"
	"github.com/goliatone/go-codeprob/internal/logging/gologger"
	"github.com/goliatone/go-codeprob/internal/markdown"
	"github.com/goliatone/go-codeprob/internal/runtimeconfig"
	"github.com/goliatone/go-codeprob/internal/templates"
	"github.com/goliatone/go-codeprob/pkg/interfaces"
)

// Container holds the configured services.
type Container struct {
	Config runtimeconfig.Config

	loggerProvider interfaces.LoggerProvider
	registry       contentcmd.CommandRegistry
	parser         interfaces.MarkdownParser
	engine         *templates.Engine
	exporter       exporter.Service
	exportOpts     []exporter.ServiceOption
	handlers       *contentcmd.HandlerSet
	release        func()
}

// Option mutates the container before services are built.
type Option func(*Container)

// WithLoggerProvider overrides the provider derived from the logging config.
func WithLoggerProvider(provider interfaces.LoggerProvider) Option {
	return func(c *Container) {
		if provider != nil {
			c.loggerProvider = provider
		}
	}
}

// WithParser overrides the markdown engine selected by the config.
func WithParser(parser interfaces.MarkdownParser) Option {
	return func(c *Container) {
		if parser != nil {
			c.parser = parser
		}
	}
}

// WithExporterOptions forwards options to the export service.
func WithExporterOptions(opts ...exporter.ServiceOption) Option {
	return func(c *Container) {
		c.exportOpts = append(c.exportOpts, opts...)
	}
}

// WithCommandRegistry registers the command handlers with reg.
func WithCommandRegistry(reg contentcmd.CommandRegistry) Option {
	return func(c *Container) {
		c.registry = reg
	}
}

// NewContainer validates cfg and builds every service.
func NewContainer(cfg runtimeconfig.Config, opts ...Option) (*Container, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	c := &Container{Config: cfg, release: func() {}}
	for _, opt := range opts {
		if opt != nil {
			opt(c)
		}
	}

	if err := c.configureLoggerProvider(); err != nil {
		return nil, err
	}
	if err := c.configureMarkdown(); err != nil {
		return nil, err
	}

	c.engine = templates.NewEngine(
		templates.WithParser(c.parser),
		templates.WithLogger(logging.MarkdownLogger(c.loggerProvider)),
	)
	serviceOpts := append([]exporter.ServiceOption{
		exporter.WithLogger(logging.ExportLogger(c.loggerProvider)),
	}, c.exportOpts...)
	c.exporter = exporter.NewService(c.engine, serviceOpts...)

	if err := c.configureCommands(); err != nil {
		return nil, err
	}

	logging.ModuleLogger(c.loggerProvider, "codeprob").Debug("container.configured",
		"markdown_engine", engineName(cfg.Markdown.Engine),
		"logging_provider", cfg.Logging.Provider,
		"dispatcher", cfg.Commands.AutoRegisterDispatcher,
	)
	return c, nil
}

func (c *Container) configureLoggerProvider() error {
	if c.loggerProvider != nil {
		return nil
	}
	if !c.Config.Features.Logger {
		c.loggerProvider = noopProvider{}
		return nil
	}

	logCfg := c.Config.Logging
	switch strings.ToLower(strings.TrimSpace(logCfg.Provider)) {
	case "gologger":
		provider, err := gologger.NewProvider(gologger.Config{
			Level:     logCfg.Level,
			Format:    logCfg.Format,
			AddSource: logCfg.AddSource,
			Focus:     logCfg.Focus,
		})
		if err != nil {
			return fmt.Errorf("di: configure go-logger: %w", err)
		}
		c.loggerProvider = provider
	default:
		level, err := console.ParseLevel(logCfg.Level)
		if err != nil {
			return fmt.Errorf("di: configure console logger: %w", err)
		}
		c.loggerProvider = console.NewProvider(console.Options{
			MinLevel: level,
			Focus:    logCfg.Focus,
		})
	}
	return nil
}

func (c *Container) configureMarkdown() error {
	if c.parser != nil {
		return nil
	}
	parserCfg := c.Config.Markdown.Parser
	parser, err := markdown.NewParser(c.Config.Markdown.Engine, interfaces.ParseOptions{
		Extensions: parserCfg.Extensions,
		HardWraps:  parserCfg.HardWraps,
		SafeMode:   parserCfg.SafeMode,
	})
	if err != nil {
		return err
	}
	c.parser = parser
	return nil
}

func (c *Container) configureCommands() error {
	timeout := time.Duration(c.Config.Commands.TimeoutSeconds) * time.Second
	set, err := contentcmd.RegisterContentCommands(c.registry, contentcmd.Dependencies{
		Service: c.exporter,
		Export: contentcmd.ExportDefaults{
			OutputDir:      c.Config.Export.OutputDir,
			MetadataFormat: c.Config.Export.MetadataFormat,
			Overwrite:      c.Config.Export.Overwrite,
		},
		Index: index.Options{
			RootDir:       c.Config.Index.RootDir,
			ConfigPath:    c.Config.Index.ConfigPath,
			RequiredFiles: c.Config.Index.RequiredFiles,
			Logger:        logging.IndexLogger(c.loggerProvider),
		},
	}, c.loggerProvider,
		contentcmd.WithExportHandlerOptions(commands.WithTimeout[contentcmd.ExportContentCommand](timeout)),
		contentcmd.WithPreviewHandlerOptions(commands.WithTimeout[contentcmd.PreviewContentCommand](timeout)),
		contentcmd.WithRenderHandlerOptions(commands.WithTimeout[contentcmd.RenderMarkdownCommand](timeout)),
		contentcmd.WithValidateHandlerOptions(commands.WithTimeout[contentcmd.ValidateIndexCommand](timeout)),
	)
	if err != nil {
		return err
	}
	c.handlers = set
	if c.Config.Commands.AutoRegisterDispatcher {
		c.release = contentcmd.Subscribe(set)
	}
	return nil
}

// LoggerProvider returns the resolved logger provider.
func (c *Container) LoggerProvider() interfaces.LoggerProvider {
	return c.loggerProvider
}

// Parser returns the markdown parser used for fields.
func (c *Container) Parser() interfaces.MarkdownParser {
	return c.parser
}

// Engine returns the template engine.
func (c *Container) Engine() *templates.Engine {
	return c.engine
}

// ExportService returns the export orchestrator.
func (c *Container) ExportService() exporter.Service {
	return c.exporter
}

// Handlers returns the content command handlers.
func (c *Container) Handlers() *contentcmd.HandlerSet {
	return c.handlers
}

// Close releases dispatcher subscriptions.
func (c *Container) Close() {
	if c == nil || c.release == nil {
		return
	}
	c.release()
	c.release = func() {}
}

func engineName(engine string) string {
	if strings.TrimSpace(engine) == "" {
		return markdown.EngineDialect
	}
	return strings.ToLower(strings.TrimSpace(engine))
}

type noopProvider struct{}

func (noopProvider) GetLogger(string) interfaces.Logger {
	return logging.NoOp()
}
