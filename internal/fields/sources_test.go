package fields

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/goliatone/go-codeprob/internal/domain"
)

func TestFromFrontMatter(t *testing.T) {
	data := []byte(`---
kind: problems
title: "  Two Sum "
author: Ada
difficulty: easy
topics: [arrays, hash-table]
examples: |
  Example 1:
  nums = [2,7]
---

Given an array, return the **indices**.
`)

	sub, err := FromFrontMatter(data, "")
	if err != nil {
		t.Fatalf("FromFrontMatter: %v", err)
	}
	if sub.Kind != domain.KindProblem {
		t.Fatalf("expected problem kind, got %q", sub.Kind)
	}
	cases := map[string]string{
		domain.FieldTitle:       "Two Sum",
		domain.FieldTopics:      "arrays, hash-table",
		domain.FieldDescription: "Given an array, return the **indices**.",
		domain.FieldExamples:    "Example 1:\nnums = [2,7]",
	}
	for field, want := range cases {
		if got := sub.Fields.Get(field); got != want {
			t.Fatalf("field %s = %q, want %q", field, got, want)
		}
	}
	if sub.Fields.Has("kind") {
		t.Fatalf("kind must not leak into fields")
	}
}

func TestFromFrontMatterUsesFallbackKind(t *testing.T) {
	sub, err := FromFrontMatter([]byte("---\ntitle: Recursion\n---\nCalls itself."), domain.KindConcept)
	if err != nil {
		t.Fatalf("FromFrontMatter: %v", err)
	}
	if sub.Kind != domain.KindConcept || sub.Fields.Get(domain.FieldExplanation) != "Calls itself." {
		t.Fatalf("unexpected submission %#v", sub)
	}

	if _, err := FromFrontMatter([]byte("body only"), ""); !errors.Is(err, domain.ErrUnknownKind) {
		t.Fatalf("expected ErrUnknownKind without any kind, got %v", err)
	}
	if _, err := FromFrontMatter([]byte("---\nkind: poem\n---\n"), domain.KindArticle); !errors.Is(err, domain.ErrUnknownKind) {
		t.Fatalf("expected ErrUnknownKind for declared unknown kind, got %v", err)
	}
}

func TestFromYAMLAndJSON(t *testing.T) {
	set, err := FromYAML([]byte("Title: Go Tips\ntags:\n  - go\n  - tips\nyear: 2025\n"))
	if err != nil {
		t.Fatalf("FromYAML: %v", err)
	}
	if set.Get("title") != "Go Tips" || set.Get("tags") != "go, tips" || set.Get("year") != "2025" {
		t.Fatalf("unexpected yaml fields %#v", set)
	}

	set, err = FromJSON([]byte(`{"title":"Go Tips","tags":["go"," tips "],"draft":true,"hints":null}`))
	if err != nil {
		t.Fatalf("FromJSON: %v", err)
	}
	if set.Get("tags") != "go, tips" || set.Get("draft") != "true" || set.Get("hints") != "" {
		t.Fatalf("unexpected json fields %#v", set)
	}

	if _, err := FromJSON([]byte("{")); err == nil {
		t.Fatalf("expected decode error")
	}
}

func TestFromPairs(t *testing.T) {
	set, err := FromPairs([]string{"title=Two Sum", "related=- a=b", " Author = Ada "})
	if err != nil {
		t.Fatalf("FromPairs: %v", err)
	}
	if set.Get("title") != "Two Sum" || set.Get("related") != "- a=b" || set.Get("author") != "Ada" {
		t.Fatalf("unexpected pairs %#v", set)
	}

	for _, bad := range []string{"title", "=value"} {
		if _, err := FromPairs([]string{bad}); !errors.Is(err, ErrInvalidPair) {
			t.Fatalf("FromPairs(%q): expected ErrInvalidPair, got %v", bad, err)
		}
	}
}

func TestFromFileDispatchesOnExtension(t *testing.T) {
	dir := t.TempDir()
	files := map[string]string{
		"article.json": `{"kind":"article","title":"Go Tips","content":"Text"}`,
		"concept.yml":  "title: Graphs\ncategory: data-structures\n",
		"problem.md":   "---\ntitle: Two Sum\n---\nBody",
	}
	for name, content := range files {
		if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644); err != nil {
			t.Fatalf("write %s: %v", name, err)
		}
	}

	cases := []struct {
		file     string
		fallback domain.Kind
		kind     domain.Kind
		field    string
		want     string
	}{
		{"article.json", domain.KindProblem, domain.KindArticle, domain.FieldContent, "Text"},
		{"concept.yml", domain.KindConcept, domain.KindConcept, domain.FieldCategory, "data-structures"},
		{"problem.md", domain.KindProblem, domain.KindProblem, domain.FieldDescription, "Body"},
	}
	for _, tc := range cases {
		sub, err := FromFile(filepath.Join(dir, tc.file), tc.fallback)
		if err != nil {
			t.Fatalf("FromFile(%s): %v", tc.file, err)
		}
		if sub.Kind != tc.kind || sub.Fields.Get(tc.field) != tc.want {
			t.Fatalf("FromFile(%s) = %#v", tc.file, sub)
		}
	}

	if _, err := FromFile(filepath.Join(dir, "missing.md"), domain.KindProblem); err == nil {
		t.Fatalf("expected read error for missing file")
	}
}
