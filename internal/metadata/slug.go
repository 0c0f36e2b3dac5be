package metadata

import (
	"regexp"
	"strings"

	"github.com/goliatone/go-codeprob/internal/domain"
)

var (
	// Whitespace covers the Unicode space separators, line separators and
	// BOM in addition to ASCII whitespace.
	slugDisallowed = regexp.MustCompile(`[^a-z0-9\s\v\p{Zs}\x{2028}\x{2029}\x{feff}-]`)
	slugSpaces     = regexp.MustCompile(`[\s\v\p{Zs}\x{2028}\x{2029}\x{feff}]+`)
	slugHyphens    = regexp.MustCompile(`-+`)
)

// Slugify derives the identifier used for data-id attributes and output
// filenames. The result is lowercase, limited to a-z, 0-9 and single
// hyphens, and never starts or ends with a hyphen. Titles without any
// usable character produce "".
func Slugify(title string) string {
	value := strings.ToLower(title)
	value = slugDisallowed.ReplaceAllString(value, "")
	value = slugSpaces.ReplaceAllString(value, "-")
	value = slugHyphens.ReplaceAllString(value, "-")
	return strings.Trim(value, "-")
}

// Filename returns the suggested output filename for kind and title.
func Filename(kind domain.Kind, title string) string {
	id := Slugify(title)
	switch kind {
	case domain.KindProblem:
		return "problem-" + id + ".html"
	case domain.KindArticle:
		return "article-" + id + ".html"
	default:
		return id + ".html"
	}
}
