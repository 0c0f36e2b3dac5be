package contentcmd

import (
	"errors"

	"github.com/goliatone/go-command/dispatcher"

	"github.com/goliatone/go-codeprob/internal/commands"
	"github.com/goliatone/go-codeprob/internal/exporter"
	"github.com/goliatone/go-codeprob/internal/index"
	"github.com/goliatone/go-codeprob/pkg/interfaces"
)

// CommandRegistry is the registration contract used when wiring handlers.
type CommandRegistry interface {
	RegisterCommand(handler any) error
}

// Subscription releases a dispatcher subscription.
type Subscription interface {
	Unsubscribe()
}

// HandlerSet groups the handlers built by RegisterContentCommands.
type HandlerSet struct {
	Export   *ExportContentHandler
	Preview  *PreviewContentHandler
	Render   *RenderMarkdownHandler
	Validate *ValidateIndexHandler
}

// Dependencies carries the services and defaults the handlers need.
type Dependencies struct {
	Service exporter.Service
	Export  ExportDefaults
	Index   index.Options
}

// Option customises handler wiring during registration.
type Option func(*options)

type options struct {
	exportOpts   []commands.HandlerOption[ExportContentCommand]
	previewOpts  []commands.HandlerOption[PreviewContentCommand]
	renderOpts   []commands.HandlerOption[RenderMarkdownCommand]
	validateOpts []commands.HandlerOption[ValidateIndexCommand]
}

// WithExportHandlerOptions forwards options to the export handler.
func WithExportHandlerOptions(opts ...commands.HandlerOption[ExportContentCommand]) Option {
	return func(cfg *options) {
		cfg.exportOpts = append(cfg.exportOpts, opts...)
	}
}

// WithPreviewHandlerOptions forwards options to the preview handler.
func WithPreviewHandlerOptions(opts ...commands.HandlerOption[PreviewContentCommand]) Option {
	return func(cfg *options) {
		cfg.previewOpts = append(cfg.previewOpts, opts...)
	}
}

// WithRenderHandlerOptions forwards options to the render handler.
func WithRenderHandlerOptions(opts ...commands.HandlerOption[RenderMarkdownCommand]) Option {
	return func(cfg *options) {
		cfg.renderOpts = append(cfg.renderOpts, opts...)
	}
}

// WithValidateHandlerOptions forwards options to the index validation handler.
func WithValidateHandlerOptions(opts ...commands.HandlerOption[ValidateIndexCommand]) Option {
	return func(cfg *options) {
		cfg.validateOpts = append(cfg.validateOpts, opts...)
	}
}

// RegisterContentCommands builds the content handlers and registers them
// with reg when it is non-nil.
func RegisterContentCommands(reg CommandRegistry, deps Dependencies, provider interfaces.LoggerProvider, opts ...Option) (*HandlerSet, error) {
	if deps.Service == nil {
		return nil, errors.New("content command registration: service is nil")
	}

	cfg := options{}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	logger := commands.CommandLogger(provider, "content")
	set := &HandlerSet{
		Export:   NewExportContentHandler(deps.Service, deps.Export, logger, cfg.exportOpts...),
		Preview:  NewPreviewContentHandler(deps.Service, logger, cfg.previewOpts...),
		Render:   NewRenderMarkdownHandler(deps.Service, logger, cfg.renderOpts...),
		Validate: NewValidateIndexHandler(deps.Index, logger, cfg.validateOpts...),
	}

	if reg != nil {
		for _, handler := range []any{set.Export, set.Preview, set.Render, set.Validate} {
			if err := reg.RegisterCommand(handler); err != nil {
				return nil, err
			}
		}
	}
	return set, nil
}

// Subscribe attaches every handler in set to the go-command dispatcher so
// messages can be sent with dispatcher.Dispatch. Call the returned function
// to release the subscriptions.
func Subscribe(set *HandlerSet) func() {
	if set == nil {
		return func() {}
	}
	subs := []Subscription{
		dispatcher.SubscribeCommand[ExportContentCommand](set.Export),
		dispatcher.SubscribeCommand[PreviewContentCommand](set.Preview),
		dispatcher.SubscribeCommand[RenderMarkdownCommand](set.Render),
		dispatcher.SubscribeCommand[ValidateIndexCommand](set.Validate),
	}
	return func() {
		for _, sub := range subs {
			sub.Unsubscribe()
		}
	}
}
