package markdown

import (
	"strings"
	"testing"
)

func TestProcessExamples(t *testing.T) {
	input := "intro text\nExample 1:\nInput: [1,2]\nOutput: 3\n\nExample 7:\n  second  \n"

	got := ProcessExamples(input)
	want := `<div class="example"><h3>Example 1:</h3><pre><code>Input: [1,2]` + "\n" + `Output: 3</code></pre></div>` +
		"\n" + `<div class="example"><h3>Example 2:</h3><pre><code>second</code></pre></div>`
	if got != want {
		t.Fatalf("ProcessExamples\n got %q\nwant %q", got, want)
	}
	if strings.Contains(got, "intro text") {
		t.Fatalf("text before the first marker must be dropped")
	}
}

func TestProcessExamplesWithoutMarkers(t *testing.T) {
	for _, input := range []string{"", "no examples here", "example 1: lowercase"} {
		if got := ProcessExamples(input); got != "" {
			t.Fatalf("ProcessExamples(%q) = %q, want empty", input, got)
		}
	}
}

func TestProcessExamplesBlockCount(t *testing.T) {
	input := "Example 1: a Example 2: b Example 3: c"
	if got := strings.Count(ProcessExamples(input), `<div class="example">`); got != 3 {
		t.Fatalf("expected 3 example blocks, got %d", got)
	}
}

func TestProcessRelatedLinks(t *testing.T) {
	cases := []struct {
		name  string
		input string
		want  string
	}{
		{name: "empty", input: "", want: "<p>No related content available.</p>"},
		{name: "bullets", input: "• Two Sum\n- Three Sum\n* Four Sum", want: "<ul><li>Two Sum</li><li>Three Sum</li><li>Four Sum</li></ul>"},
		{name: "crlf and blanks", input: "- a\r\n\r\n   \n- b\r\n", want: "<ul><li>a</li><li>b</li></ul>"},
		{name: "indented bullet", input: "   -   spaced", want: "<ul><li>spaced</li></ul>"},
		{name: "lines without bullets dropped", input: "plain line\n- kept", want: "<ul><li>kept</li></ul>"},
		{name: "whitespace only", input: "  \n ", want: "<ul></ul>"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := ProcessRelatedLinks(tc.input); got != tc.want {
				t.Fatalf("ProcessRelatedLinks(%q)\n got %q\nwant %q", tc.input, got, tc.want)
			}
		})
	}
}
