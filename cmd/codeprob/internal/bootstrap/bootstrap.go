// Package bootstrap builds the codeprob module for the CLI.
package bootstrap

import (
	"fmt"
	"strings"

	"github.com/goliatone/go-codeprob"
	contentcmd "github.com/goliatone/go-codeprob/internal/commands/content"
	"github.com/goliatone/go-codeprob/internal/di"
	"github.com/goliatone/go-codeprob/pkg/interfaces"
)

// Options captures the CLI inputs that shape the runtime config.
type Options struct {
	// ConfigPath is an optional YAML config file.
	ConfigPath string
	// LogLevel enables logging at the given level when set.
	LogLevel string
	// OutputDir, RootDir and IndexConfig override the matching config keys.
	OutputDir      string
	MetadataFormat string
	RootDir        string
	IndexConfig    string
	Overwrite      *bool
	LoggerProvider interfaces.LoggerProvider
}

// Module wraps the codeprob module and its command handlers.
type Module struct {
	Module   *codeprob.Module
	Handlers *contentcmd.HandlerSet
}

// Close releases module resources.
func (m *Module) Close() {
	if m != nil && m.Module != nil {
		m.Module.Close()
	}
}

// Config resolves the runtime config for opts.
func Config(opts Options) (codeprob.Config, error) {
	cfg := codeprob.DefaultConfig()
	if path := strings.TrimSpace(opts.ConfigPath); path != "" {
		loaded, err := codeprob.LoadConfig(path)
		if err != nil {
			return codeprob.Config{}, err
		}
		cfg = loaded
	}
	if level := strings.TrimSpace(opts.LogLevel); level != "" {
		cfg.Features.Logger = true
		cfg.Logging.Level = level
	}
	if dir := strings.TrimSpace(opts.OutputDir); dir != "" {
		cfg.Export.OutputDir = dir
	}
	if format := strings.TrimSpace(opts.MetadataFormat); format != "" {
		cfg.Export.MetadataFormat = format
	}
	if root := strings.TrimSpace(opts.RootDir); root != "" {
		cfg.Index.RootDir = root
	}
	if path := strings.TrimSpace(opts.IndexConfig); path != "" {
		cfg.Index.ConfigPath = path
	}
	if opts.Overwrite != nil {
		cfg.Export.Overwrite = *opts.Overwrite
	}
	return cfg, nil
}

// BuildModule constructs a module configured from opts.
func BuildModule(opts Options) (*Module, error) {
	cfg, err := Config(opts)
	if err != nil {
		return nil, err
	}

	diOpts := []di.Option{}
	if opts.LoggerProvider != nil {
		diOpts = append(diOpts, di.WithLoggerProvider(opts.LoggerProvider))
	}

	module, err := codeprob.New(cfg, diOpts...)
	if err != nil {
		return nil, fmt.Errorf("initialise codeprob module: %w", err)
	}
	return &Module{
		Module:   module,
		Handlers: module.Container().Handlers(),
	}, nil
}
