package commands

import (
	"strings"

	"github.com/goliatone/go-codeprob/internal/logging"
	"github.com/goliatone/go-codeprob/pkg/interfaces"
)

// CommandLogger returns the commands module logger tagged with the command
// group that owns the handler.
func CommandLogger(provider interfaces.LoggerProvider, group string) interfaces.Logger {
	name := strings.TrimSpace(group)
	if name == "" {
		name = "core"
	}
	return logging.WithFields(logging.CommandsLogger(provider), map[string]any{
		"component":     "command",
		"command_group": name,
	})
}
