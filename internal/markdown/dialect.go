package markdown

import (
	"regexp"
	"strings"

	"github.com/dlclark/regexp2"

	"github.com/goliatone/go-codeprob/pkg/interfaces"
)

// Stage is a single textual rewrite in the dialect pipeline. Stages are
// pure and operate on the output of the previous stage.
type Stage struct {
	Name  string
	Apply func(string) string
}

var (
	codeBlockPattern  = regexp.MustCompile("```(\\w+)?\\n([\\s\\S]*?)```")
	inlineCodePattern = regexp.MustCompile("`([^`]+)`")

	h3Pattern = regexp.MustCompile(`(?m)^### (.*)$`)
	h2Pattern = regexp.MustCompile(`(?m)^## (.*)$`)
	h1Pattern = regexp.MustCompile(`(?m)^# (.*)$`)

	boldItalicPattern = regexp.MustCompile(`\*\*\*(.*?)\*\*\*`)
	boldPattern       = regexp.MustCompile(`\*\*(.*?)\*\*`)
	italicPattern     = regexp.MustCompile(`\*(.*?)\*`)

	linkPattern  = regexp.MustCompile(`!?\[([^\]]+)\]\(([^)]+)\)`)
	imagePattern = regexp.MustCompile(`!\[([^\]]*)\]\(([^)]+)\)`)

	strikePattern    = regexp.MustCompile(`~~(.*?)~~`)
	highlightPattern = regexp.MustCompile(`==(.*?)==`)

	starItemPattern    = regexp.MustCompile(`(?m)^\* (.*)$`)
	dashItemPattern    = regexp.MustCompile(`(?m)^- (.*)$`)
	plusItemPattern    = regexp.MustCompile(`(?m)^\+ (.*)$`)
	orderedItemPattern = regexp.MustCompile(`(?m)^\d+\. (.*)$`)

	blockquotePattern = regexp.MustCompile(`(?m)^> (.*)$`)

	dashRulePattern = regexp.MustCompile(`(?m)^---$`)
	starRulePattern = regexp.MustCompile(`(?m)^\*\*\*$`)

	// The paragraph pass needs lookarounds, which RE2 does not support.
	paragraphOpenPattern  = regexp2.MustCompile(`^(?!<[h|u|p|l|b])`, regexp2.Multiline)
	paragraphClosePattern = regexp2.MustCompile(`(?<!>)$`, regexp2.Multiline)

	emptyParagraphPattern = regexp.MustCompile(`<p></p>`)
	strayOpenPattern      = regexp.MustCompile(`<p>(<[h|u|b])`)
	strayClosePattern     = regexp.MustCompile(`(</[h|u|b]>)</p>`)
)

var dialectStages = []Stage{
	{Name: "code_blocks", Apply: convertCodeBlocks},
	{Name: "inline_code", Apply: convertInlineCode},
	{Name: "headings", Apply: convertHeadings},
	{Name: "emphasis", Apply: convertEmphasis},
	{Name: "links", Apply: convertLinks},
	{Name: "images", Apply: convertImages},
	{Name: "strikethrough", Apply: convertStrikethrough},
	{Name: "highlight", Apply: convertHighlight},
	{Name: "list_items", Apply: convertListItems},
	{Name: "list_wrap", Apply: wrapListRuns},
	{Name: "blockquotes", Apply: convertBlockquotes},
	{Name: "rules", Apply: convertRules},
	{Name: "paragraphs", Apply: wrapParagraphs},
	{Name: "cleanup", Apply: cleanupParagraphs},
}

// Stages returns the dialect pipeline in application order.
func Stages() []Stage {
	out := make([]Stage, len(dialectStages))
	copy(out, dialectStages)
	return out
}

// ProcessContent converts the writer's markdown dialect into an HTML
// fragment. It is a best-effort sequence of textual rewrites, not a parser:
// emphasis markers inside words, nested lists and code contents are all
// rewritten exactly as the published pages expect. Empty input yields "".
func ProcessContent(content string) string {
	if content == "" {
		return ""
	}
	html := content
	for _, stage := range dialectStages {
		html = stage.Apply(html)
	}
	return html
}

// Processor adapts ProcessContent to interfaces.MarkdownParser.
type Processor struct{}

var _ interfaces.MarkdownParser = Processor{}

// NewProcessor returns the dialect processor.
func NewProcessor() Processor {
	return Processor{}
}

// Parse satisfies interfaces.MarkdownParser. It never fails.
func (Processor) Parse(markdown []byte) ([]byte, error) {
	return []byte(ProcessContent(string(markdown))), nil
}

// ParseWithOptions satisfies interfaces.MarkdownParser; the dialect has no
// tunable options so opts is ignored.
func (p Processor) ParseWithOptions(markdown []byte, _ interfaces.ParseOptions) ([]byte, error) {
	return p.Parse(markdown)
}

func convertCodeBlocks(input string) string {
	return codeBlockPattern.ReplaceAllString(input, `<pre><code class="language-${1}">${2}</code></pre>`)
}

func convertInlineCode(input string) string {
	return inlineCodePattern.ReplaceAllString(input, `<code>${1}</code>`)
}

func convertHeadings(input string) string {
	out := h3Pattern.ReplaceAllString(input, `<h3>${1}</h3>`)
	out = h2Pattern.ReplaceAllString(out, `<h2>${1}</h2>`)
	return h1Pattern.ReplaceAllString(out, `<h1>${1}</h1>`)
}

func convertEmphasis(input string) string {
	out := boldItalicPattern.ReplaceAllString(input, `<strong><em>${1}</em></strong>`)
	out = boldPattern.ReplaceAllString(out, `<strong>${1}</strong>`)
	return italicPattern.ReplaceAllString(out, `<em>${1}</em>`)
}

// convertLinks rewrites [text](url) but leaves image syntax untouched so the
// image stage still sees it.
func convertLinks(input string) string {
	return linkPattern.ReplaceAllStringFunc(input, func(match string) string {
		if strings.HasPrefix(match, "!") {
			return match
		}
		parts := linkPattern.FindStringSubmatch(match)
		if len(parts) < 3 {
			return match
		}
		return `<a href="` + parts[2] + `">` + parts[1] + `</a>`
	})
}

func convertImages(input string) string {
	return imagePattern.ReplaceAllString(input, `<img src="${2}" alt="${1}">`)
}

func convertStrikethrough(input string) string {
	return strikePattern.ReplaceAllString(input, `<del>${1}</del>`)
}

func convertHighlight(input string) string {
	return highlightPattern.ReplaceAllString(input, `<mark>${1}</mark>`)
}

func convertListItems(input string) string {
	out := starItemPattern.ReplaceAllString(input, `<li>${1}</li>`)
	out = dashItemPattern.ReplaceAllString(out, `<li>${1}</li>`)
	out = plusItemPattern.ReplaceAllString(out, `<li>${1}</li>`)
	return orderedItemPattern.ReplaceAllString(out, `<li>${1}</li>`)
}

// wrapListRuns wraps every maximal run of consecutive list item lines in a
// single <ul> element.
func wrapListRuns(input string) string {
	lines := strings.Split(input, "\n")
	inRun := false
	for i, line := range lines {
		item := isListItemLine(line)
		if item && !inRun {
			lines[i] = "<ul>" + line
		}
		if !item && inRun {
			lines[i-1] += "</ul>"
		}
		inRun = item
	}
	if inRun {
		lines[len(lines)-1] += "</ul>"
	}
	return strings.Join(lines, "\n")
}

func isListItemLine(line string) bool {
	return strings.HasPrefix(line, "<li>") && strings.HasSuffix(line, "</li>")
}

func convertBlockquotes(input string) string {
	return blockquotePattern.ReplaceAllString(input, `<blockquote>${1}</blockquote>`)
}

func convertRules(input string) string {
	out := dashRulePattern.ReplaceAllString(input, `<hr>`)
	return starRulePattern.ReplaceAllString(out, `<hr>`)
}

func wrapParagraphs(input string) string {
	out := strings.ReplaceAll(input, "\n\n", "</p><p>")
	out = replaceLookaround(paragraphOpenPattern, out, "<p>")
	return replaceLookaround(paragraphClosePattern, out, "</p>")
}

func cleanupParagraphs(input string) string {
	out := emptyParagraphPattern.ReplaceAllString(input, "")
	out = strayOpenPattern.ReplaceAllString(out, "${1}")
	return strayClosePattern.ReplaceAllString(out, "${1}")
}

// replaceLookaround applies a regexp2 replacement. regexp2 only fails on
// match timeouts, which are not configured, so the input is returned
// unchanged in that case.
func replaceLookaround(re *regexp2.Regexp, input, replacement string) string {
	out, err := re.Replace(input, replacement, -1, -1)
	if err != nil {
		return input
	}
	return out
}
