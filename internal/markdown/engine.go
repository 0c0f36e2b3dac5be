package markdown

import (
	"errors"
	"fmt"
	"strings"

	"github.com/goliatone/go-codeprob/pkg/interfaces"
)

const (
	// EngineDialect selects the regex-driven writer dialect.
	EngineDialect = "dialect"
	// EngineGoldmark selects the CommonMark renderer.
	EngineGoldmark = "goldmark"
)

// ErrUnknownEngine is returned when an engine name is not recognised.
var ErrUnknownEngine = errors.New("markdown: unknown engine")

// NewParser returns the parser registered under engine. An empty name
// selects the dialect.
func NewParser(engine string, opts interfaces.ParseOptions) (interfaces.MarkdownParser, error) {
	switch strings.ToLower(strings.TrimSpace(engine)) {
	case "", EngineDialect:
		return NewProcessor(), nil
	case EngineGoldmark:
		return NewGoldmarkParser(opts), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownEngine, engine)
	}
}
