package domain

import (
	"errors"
	"fmt"
	"strings"
)

// Kind identifies the content flavour being authored. It selects the
// required fields, the page template and the output filename pattern.
type Kind string

const (
	// KindProblem identifies coding problems published under problems/.
	KindProblem Kind = "problem"
	// KindConcept identifies concept explainers published under concepts/.
	KindConcept Kind = "concept"
	// KindArticle identifies long-form articles published under articles/.
	KindArticle Kind = "article"
)

// ErrUnknownKind is returned when a kind string cannot be resolved.
var ErrUnknownKind = errors.New("codeprob: unknown content kind")

// Kinds lists every supported kind in display order.
func Kinds() []Kind {
	return []Kind{KindProblem, KindConcept, KindArticle}
}

// ParseKind resolves singular or plural kind names, ignoring case and
// surrounding whitespace.
func ParseKind(input string) (Kind, error) {
	value := strings.ToLower(strings.TrimSpace(input))
	value = strings.TrimSuffix(value, "s")
	kind := Kind(value)
	if !kind.Valid() {
		return "", fmt.Errorf("%w: %q", ErrUnknownKind, input)
	}
	return kind, nil
}

// Valid reports whether the kind is one of the supported kinds.
func (k Kind) Valid() bool {
	switch k {
	case KindProblem, KindConcept, KindArticle:
		return true
	default:
		return false
	}
}

// String renders the kind identifier.
func (k Kind) String() string {
	return string(k)
}

// Plural returns the section name used by the content index and the site
// directory layout (problems, concepts, articles).
func (k Kind) Plural() string {
	if k == "" {
		return ""
	}
	return string(k) + "s"
}
