package templates

import (
	"embed"
	"errors"
	"fmt"
	"sync"

	goerrors "github.com/goliatone/go-errors"

	"github.com/goliatone/go-codeprob/internal/domain"
)

//go:embed html/*.html
var builtinFS embed.FS

// ErrTemplateNotFound is returned when no skeleton is registered for a kind.
var ErrTemplateNotFound = errors.New("template not found")

// Registry maps content kinds to page skeletons.
type Registry struct {
	mu        sync.RWMutex
	templates map[domain.Kind]string
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{templates: map[domain.Kind]string{}}
}

// DefaultRegistry returns a registry preloaded with the built-in problem,
// concept and article skeletons.
func DefaultRegistry() *Registry {
	registry := NewRegistry()
	for _, kind := range domain.Kinds() {
		data, err := builtinFS.ReadFile("html/" + string(kind) + ".html")
		if err != nil {
			panic(fmt.Sprintf("templates: missing built-in skeleton for %s: %v", kind, err))
		}
		registry.Register(kind, string(data))
	}
	return registry
}

// Register stores or replaces the skeleton for kind.
func (r *Registry) Register(kind domain.Kind, skeleton string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.templates[kind] = skeleton
}

// Lookup returns the skeleton for kind or an error wrapping
// ErrTemplateNotFound.
func (r *Registry) Lookup(kind domain.Kind) (string, error) {
	r.mu.RLock()
	skeleton, ok := r.templates[kind]
	r.mu.RUnlock()
	if !ok {
		return "", goerrors.Wrap(ErrTemplateNotFound, goerrors.CategoryNotFound,
			fmt.Sprintf("template not found for %s", kind)).
			WithTextCode("TEMPLATE_NOT_FOUND").
			WithMetadata(map[string]any{"kind": string(kind)})
	}
	return skeleton, nil
}

// Kinds lists the kinds with a registered skeleton in domain order.
func (r *Registry) Kinds() []domain.Kind {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]domain.Kind, 0, len(r.templates))
	for _, kind := range domain.Kinds() {
		if _, ok := r.templates[kind]; ok {
			out = append(out, kind)
		}
	}
	return out
}
