package markdown

import (
	"fmt"
	"regexp"
	"strings"
)

const noRelatedContent = "<p>No related content available.</p>"

var (
	exampleMarker   = regexp.MustCompile(`Example \d+:`)
	relatedLinkLine = regexp.MustCompile(`^\s*[•\-*]\s*(.+)`)
)

// ProcessExamples splits text on "Example N:" markers and renders every
// segment after the first marker as an example block. Blocks are numbered
// by position, not by the number written in the marker. Text before the
// first marker is discarded and text without markers yields "".
func ProcessExamples(text string) string {
	segments := exampleMarker.Split(text, -1)
	if len(segments) < 2 {
		return ""
	}

	blocks := make([]string, 0, len(segments)-1)
	for i := 1; i < len(segments); i++ {
		blocks = append(blocks, fmt.Sprintf(
			`<div class="example"><h3>Example %d:</h3><pre><code>%s</code></pre></div>`,
			i, strings.TrimSpace(segments[i]),
		))
	}
	return strings.Join(blocks, "\n")
}

// ProcessRelatedLinks renders bullet lines ("•", "-" or "*") as list items
// of a single <ul>. Blank lines and lines without a bullet are dropped.
// Empty input yields a placeholder paragraph.
func ProcessRelatedLinks(text string) string {
	if text == "" {
		return noRelatedContent
	}

	var b strings.Builder
	b.WriteString("<ul>")
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSuffix(line, "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}
		match := relatedLinkLine.FindStringSubmatch(line)
		if match == nil {
			continue
		}
		b.WriteString("<li>")
		b.WriteString(match[1])
		b.WriteString("</li>")
	}
	b.WriteString("</ul>")
	return b.String()
}
