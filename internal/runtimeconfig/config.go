package runtimeconfig

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

var (
	ErrMarkdownEngineUnknown   = errors.New("codeprob config: markdown engine is invalid")
	ErrGoldmarkFeatureRequired = errors.New("codeprob config: goldmark feature must be enabled to select the goldmark engine")
	ErrExportFormatInvalid     = errors.New("codeprob config: export metadata format is invalid")
	ErrIndexConfigPathRequired = errors.New("codeprob config: index config path is required")
	ErrLoggingProviderRequired = errors.New("codeprob config: logging provider is required when logging feature is enabled")
	ErrLoggingProviderUnknown  = errors.New("codeprob config: logging provider is invalid")
	ErrLoggingLevelInvalid     = errors.New("codeprob config: logging level is invalid")
	ErrLoggingFormatInvalid    = errors.New("codeprob config: logging format is invalid")
	ErrCommandTimeoutInvalid   = errors.New("codeprob config: command timeout must be zero or positive")
)

// Config aggregates the settings of the authoring tool. Every section can be
// supplied from a YAML file; missing keys keep their DefaultConfig value.
type Config struct {
	Markdown MarkdownConfig `yaml:"markdown"`
	Export   ExportConfig   `yaml:"export"`
	Index    IndexConfig    `yaml:"index"`
	Commands CommandsConfig `yaml:"commands"`
	Logging  LoggingConfig  `yaml:"logging"`
	Features Features       `yaml:"features"`
}

// MarkdownConfig selects the engine used for markdown fields.
type MarkdownConfig struct {
	// Engine is "dialect" (default) or "goldmark".
	Engine string               `yaml:"engine"`
	Parser MarkdownParserConfig `yaml:"parser"`
}

// MarkdownParserConfig mirrors interfaces.ParseOptions. Only goldmark reads it.
type MarkdownParserConfig struct {
	Extensions []string `yaml:"extensions"`
	HardWraps  bool     `yaml:"hard_wraps"`
	SafeMode   bool     `yaml:"safe_mode"`
}

// ExportConfig controls where generated documents land.
type ExportConfig struct {
	OutputDir      string `yaml:"output_dir"`
	MetadataFormat string `yaml:"metadata_format"`
	Overwrite      bool   `yaml:"overwrite"`
}

// IndexConfig locates the content index and the site checkout it describes.
type IndexConfig struct {
	RootDir       string   `yaml:"root_dir"`
	ConfigPath    string   `yaml:"config_path"`
	RequiredFiles []string `yaml:"required_files"`
}

// CommandsConfig captures command-layer behaviour.
type CommandsConfig struct {
	// TimeoutSeconds bounds each command; zero disables the timeout.
	TimeoutSeconds int `yaml:"timeout_seconds"`
	// AutoRegisterDispatcher subscribes the handlers to the go-command dispatcher.
	AutoRegisterDispatcher bool `yaml:"auto_register_dispatcher"`
}

// LoggingConfig captures provider-specific options for runtime logging.
type LoggingConfig struct {
	Provider  string   `yaml:"provider"`
	Level     string   `yaml:"level"`
	Format    string   `yaml:"format"`
	AddSource bool     `yaml:"add_source"`
	Focus     []string `yaml:"focus"`
}

// Features toggles optional functionality.
type Features struct {
	Logger   bool `yaml:"logger"`
	Goldmark bool `yaml:"goldmark"`
}

// DefaultConfig returns the settings used when no file is supplied.
func DefaultConfig() Config {
	return Config{
		Markdown: MarkdownConfig{
			Engine: "dialect",
		},
		Export: ExportConfig{
			OutputDir:      ".",
			MetadataFormat: "json",
		},
		Index: IndexConfig{
			RootDir:    ".",
			ConfigPath: "contributor-config.json",
			RequiredFiles: []string{
				"index.html",
				"writer.html",
				"assets/css/main.css",
				"assets/js/main.js",
				"assets/js/content-indexer.js",
			},
		},
		Commands: CommandsConfig{
			TimeoutSeconds: 30,
		},
		Logging: LoggingConfig{
			Provider: "console",
			Level:    "info",
		},
	}
}

// Validate performs consistency checks.
func (cfg Config) Validate() error {
	switch engine := normalize(cfg.Markdown.Engine); engine {
	case "", "dialect":
	case "goldmark":
		if !cfg.Features.Goldmark {
			return ErrGoldmarkFeatureRequired
		}
	default:
		return fmt.Errorf("%w: %s", ErrMarkdownEngineUnknown, engine)
	}

	switch format := normalize(cfg.Export.MetadataFormat); format {
	case "", "json", "yaml":
	default:
		return fmt.Errorf("%w: %s", ErrExportFormatInvalid, format)
	}

	if strings.TrimSpace(cfg.Index.ConfigPath) == "" {
		return ErrIndexConfigPathRequired
	}
	if cfg.Commands.TimeoutSeconds < 0 {
		return ErrCommandTimeoutInvalid
	}

	if cfg.Features.Logger {
		provider := normalize(cfg.Logging.Provider)
		if provider == "" {
			return ErrLoggingProviderRequired
		}
		if !isSupportedProvider(provider) {
			return fmt.Errorf("%w: %s", ErrLoggingProviderUnknown, provider)
		}
		if level := strings.TrimSpace(cfg.Logging.Level); level != "" && !isSupportedLevel(level) {
			return fmt.Errorf("%w: %s", ErrLoggingLevelInvalid, level)
		}
		if provider == "gologger" {
			if format := strings.TrimSpace(cfg.Logging.Format); format != "" && !isSupportedFormat(format) {
				return fmt.Errorf("%w: %s", ErrLoggingFormatInvalid, format)
			}
		}
	}
	return nil
}

// Load reads a YAML file over DefaultConfig and validates the result.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("codeprob config: read %s: %w", path, err)
	}
	return Parse(data)
}

// Parse decodes YAML over DefaultConfig. Unknown keys are rejected.
func Parse(data []byte) (Config, error) {
	cfg := DefaultConfig()
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("codeprob config: decode: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func normalize(value string) string {
	return strings.ToLower(strings.TrimSpace(value))
}

func isSupportedProvider(provider string) bool {
	switch provider {
	case "console", "gologger":
		return true
	default:
		return false
	}
}

func isSupportedLevel(level string) bool {
	switch normalize(level) {
	case "trace", "debug", "info", "warn", "warning", "error", "fatal":
		return true
	default:
		return false
	}
}

func isSupportedFormat(format string) bool {
	switch normalize(format) {
	case "json", "console", "pretty":
		return true
	default:
		return false
	}
}
