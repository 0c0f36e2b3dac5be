package codeprob

import "github.com/goliatone/go-codeprob/internal/runtimeconfig"

var (
	ErrMarkdownEngineUnknown   = runtimeconfig.ErrMarkdownEngineUnknown
	ErrGoldmarkFeatureRequired = runtimeconfig.ErrGoldmarkFeatureRequired
	ErrExportFormatInvalid     = runtimeconfig.ErrExportFormatInvalid
	ErrIndexConfigPathRequired = runtimeconfig.ErrIndexConfigPathRequired
	ErrLoggingProviderRequired = runtimeconfig.ErrLoggingProviderRequired
	ErrLoggingProviderUnknown  = runtimeconfig.ErrLoggingProviderUnknown
	ErrLoggingLevelInvalid     = runtimeconfig.ErrLoggingLevelInvalid
	ErrLoggingFormatInvalid    = runtimeconfig.ErrLoggingFormatInvalid
	ErrCommandTimeoutInvalid   = runtimeconfig.ErrCommandTimeoutInvalid
)

type (
	Config               = runtimeconfig.Config
	MarkdownConfig       = runtimeconfig.MarkdownConfig
	MarkdownParserConfig = runtimeconfig.MarkdownParserConfig
	ExportConfig         = runtimeconfig.ExportConfig
	IndexConfig          = runtimeconfig.IndexConfig
	CommandsConfig       = runtimeconfig.CommandsConfig
	LoggingConfig        = runtimeconfig.LoggingConfig
	Features             = runtimeconfig.Features
)

func DefaultConfig() Config {
	return runtimeconfig.DefaultConfig()
}

// LoadConfig reads a YAML configuration file over DefaultConfig.
func LoadConfig(path string) (Config, error) {
	return runtimeconfig.Load(path)
}
