package exporter

import (
	"strings"

	"github.com/andybalholm/cascadia"
	"golang.org/x/net/html"
)

const previewUnavailable = "<p>Preview not available</p>"

var articleSelector = cascadia.MustCompile("article")

// ExtractArticle returns the serialised first <article> element of document,
// or the "Preview not available" placeholder when there is none.
func ExtractArticle(document string) (string, error) {
	root, err := html.Parse(strings.NewReader(document))
	if err != nil {
		return "", err
	}
	article := articleSelector.MatchFirst(root)
	if article == nil {
		return previewUnavailable, nil
	}

	var b strings.Builder
	if err := html.Render(&b, article); err != nil {
		return "", err
	}
	return b.String(), nil
}
