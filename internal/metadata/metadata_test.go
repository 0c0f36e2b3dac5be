package metadata

import (
	"encoding/json"
	"regexp"
	"strings"
	"testing"
	"time"

	"github.com/goliatone/go-codeprob/internal/domain"
)

var slugPattern = regexp.MustCompile(`^[a-z0-9]+(-[a-z0-9]+)*$`)

func TestSlugify(t *testing.T) {
	cases := []struct {
		input string
		want  string
	}{
		{"Two Sum!!", "two-sum"},
		{"  --A--  ", "a"},
		{"Binary   Search -- Trees", "binary-search-trees"},
		{"C++ & Go: 2024 Edition", "c-go-2024-edition"},
		{"!!!", ""},
		{"", ""},
		{"Ünïcode Títle", "ncode-ttle"},
		{"tab\tand\nnewline", "tab-and-newline"},
		{"Two\u00a0Sum", "two-sum"},
		{"Two\vSum", "two-sum"},
		{"Two\u2003Sum", "two-sum"},
		{"Two\u2028Sum\ufeff", "two-sum"},
		{"\u3000Wide\u3000Space", "wide-space"},
	}
	for _, tc := range cases {
		if got := Slugify(tc.input); got != tc.want {
			t.Fatalf("Slugify(%q) = %q, want %q", tc.input, got, tc.want)
		}
	}
}

func TestSlugifyShape(t *testing.T) {
	inputs := []string{
		"Hello, World", "---", "a - b", "  x  y  ", "Longest Common Subsequence (LCS)",
		"__init__", "100% Done", "-lead", "trail-", "MiXeD CaSe",
	}
	for _, input := range inputs {
		got := Slugify(input)
		if got == "" {
			continue
		}
		if !slugPattern.MatchString(got) {
			t.Fatalf("Slugify(%q) = %q does not match slug pattern", input, got)
		}
	}
}

func TestFilename(t *testing.T) {
	cases := []struct {
		kind domain.Kind
		want string
	}{
		{domain.KindProblem, "problem-two-sum.html"},
		{domain.KindConcept, "two-sum.html"},
		{domain.KindArticle, "article-two-sum.html"},
	}
	for _, tc := range cases {
		if got := Filename(tc.kind, "Two Sum"); got != tc.want {
			t.Fatalf("Filename(%s) = %q, want %q", tc.kind, got, tc.want)
		}
	}
}

func TestNewEntryProblem(t *testing.T) {
	now := time.Date(2025, time.March, 4, 23, 30, 0, 0, time.UTC)
	fields := domain.FieldSet{
		domain.FieldTitle:      "Two Sum",
		domain.FieldAuthor:     "Ada",
		domain.FieldDifficulty: "easy",
		domain.FieldTopics:     "arrays, hash-table ,two pointers",
	}

	entry := NewEntry(domain.KindProblem, fields, now)

	if entry.Filename != "problem-two-sum.html" {
		t.Fatalf("unexpected filename %q", entry.Filename)
	}
	if entry.DateAdded != "2025-03-04" {
		t.Fatalf("unexpected date %q", entry.DateAdded)
	}
	want := []string{"arrays", "hash-table", "two pointers"}
	if strings.Join(entry.Topics, "|") != strings.Join(want, "|") {
		t.Fatalf("unexpected topics %#v", entry.Topics)
	}
	if entry.Category != "" || entry.Tags != nil {
		t.Fatalf("problem entry must not carry concept/article fields: %#v", entry)
	}
}

func TestNewEntryUsesUTCForISODate(t *testing.T) {
	zone := time.FixedZone("UTC-5", -5*60*60)
	now := time.Date(2025, time.March, 4, 21, 0, 0, 0, zone)

	entry := NewEntry(domain.KindConcept, domain.FieldSet{
		domain.FieldTitle:      "Recursion",
		domain.FieldAuthor:     "Grace",
		domain.FieldCategory:   "fundamentals",
		domain.FieldComplexity: "beginner",
	}, now)

	if entry.DateAdded != "2025-03-05" {
		t.Fatalf("expected UTC date, got %q", entry.DateAdded)
	}
	if entry.Filename != "recursion.html" || entry.Category != "fundamentals" || entry.Complexity != "beginner" {
		t.Fatalf("unexpected concept entry %#v", entry)
	}
}

func TestEntryJSONShape(t *testing.T) {
	now := time.Date(2025, time.January, 2, 0, 0, 0, 0, time.UTC)
	entry := NewEntry(domain.KindArticle, domain.FieldSet{
		domain.FieldTitle:  "Go Tips",
		domain.FieldAuthor: "Rob",
		domain.FieldTags:   "go,tips",
	}, now)

	payload, err := json.Marshal(entry)
	if err != nil {
		t.Fatalf("marshal entry: %v", err)
	}
	want := `{"filename":"article-go-tips.html","title":"Go Tips","author":"Rob","dateAdded":"2025-01-02","tags":["go","tips"]}`
	if string(payload) != want {
		t.Fatalf("unexpected entry JSON:\n got %s\nwant %s", payload, want)
	}
}

func TestSplitListKeepsEmptyElements(t *testing.T) {
	got := SplitList("a,, b")
	if len(got) != 3 || got[1] != "" || got[2] != "b" {
		t.Fatalf("unexpected split %#v", got)
	}
}

func TestDisplayDate(t *testing.T) {
	now := time.Date(2025, time.October, 9, 12, 0, 0, 0, time.UTC)
	if got := DisplayDate(now); got != "October 9, 2025" {
		t.Fatalf("unexpected display date %q", got)
	}
}
