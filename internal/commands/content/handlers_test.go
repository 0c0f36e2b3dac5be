package contentcmd

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	goerrors "github.com/goliatone/go-errors"
	"github.com/google/uuid"

	"github.com/goliatone/go-codeprob/internal/domain"
	"github.com/goliatone/go-codeprob/internal/exporter"
	"github.com/goliatone/go-codeprob/internal/index"
	"github.com/goliatone/go-codeprob/internal/metadata"
	"github.com/goliatone/go-codeprob/pkg/interfaces"
)

var fixedNow = time.Date(2025, time.February, 10, 9, 30, 0, 0, time.UTC)

func newService() exporter.Service {
	return exporter.NewService(nil,
		exporter.WithClock(func() time.Time { return fixedNow }),
		exporter.WithIDGenerator(func() uuid.UUID { return uuid.MustParse("0f8fad5b-d9cb-469f-a165-70867728950e") }),
	)
}

func problemFields() domain.FieldSet {
	return domain.NewFieldSet(map[string]string{
		"title":       "Two Sum",
		"author":      "Ada",
		"difficulty":  "easy",
		"topics":      "arrays, hash-table",
		"description": "Return **indices**.",
		"examples":    "nums = [2,7]",
	})
}

func TestExportHandlerWritesDocument(t *testing.T) {
	dir := t.TempDir()
	handler := NewExportContentHandler(newService(), ExportDefaults{OutputDir: dir}, nil)

	var outcome ExportOutcome
	err := handler.Execute(context.Background(), ExportContentCommand{
		Kind:           domain.KindProblem,
		Fields:         problemFields(),
		ResultCallback: func(o ExportOutcome) { outcome = o },
	})
	if err != nil {
		t.Fatalf("execute: %v", err)
	}

	wantPath := filepath.Join(dir, "problem-two-sum.html")
	if outcome.Path != wantPath {
		t.Fatalf("path = %q, want %q", outcome.Path, wantPath)
	}
	data, err := os.ReadFile(wantPath)
	if err != nil {
		t.Fatalf("read output: %v", err)
	}
	if string(data) != outcome.Result.Document {
		t.Fatalf("written file differs from generated document")
	}

	var entry metadata.Entry
	if err := json.Unmarshal([]byte(outcome.Metadata), &entry); err != nil {
		t.Fatalf("metadata is not JSON: %v\n%s", err, outcome.Metadata)
	}
	if entry.Filename != "problem-two-sum.html" || entry.DateAdded != "2025-02-10" {
		t.Fatalf("unexpected entry %#v", entry)
	}
}

type fieldsRecorder struct {
	fields []map[string]any
}

func (r *fieldsRecorder) Trace(string, ...any) {}
func (r *fieldsRecorder) Debug(string, ...any) {}
func (r *fieldsRecorder) Info(string, ...any)  {}
func (r *fieldsRecorder) Warn(string, ...any)  {}
func (r *fieldsRecorder) Error(string, ...any) {}
func (r *fieldsRecorder) Fatal(string, ...any) {}

func (r *fieldsRecorder) WithFields(fields map[string]any) interfaces.Logger {
	r.fields = append(r.fields, fields)
	return r
}

func (r *fieldsRecorder) WithContext(context.Context) interfaces.Logger { return r }

func TestExportHandlerLogsSortedFieldNames(t *testing.T) {
	recorder := &fieldsRecorder{}
	handler := NewExportContentHandler(newService(), ExportDefaults{}, recorder)

	err := handler.Execute(context.Background(), ExportContentCommand{
		Kind:   domain.KindProblem,
		Fields: problemFields(),
		DryRun: true,
	})
	if err != nil {
		t.Fatalf("execute: %v", err)
	}

	want := "author,description,difficulty,examples,title,topics"
	for _, fields := range recorder.fields {
		if names, ok := fields["field_names"].([]string); ok {
			if got := strings.Join(names, ","); got != want {
				t.Fatalf("field_names = %q, want %q", got, want)
			}
			return
		}
	}
	t.Fatalf("expected field_names in logged fields, got %v", recorder.fields)
}

func TestExportHandlerDryRunSkipsWrite(t *testing.T) {
	dir := t.TempDir()
	handler := NewExportContentHandler(newService(), ExportDefaults{OutputDir: dir, MetadataFormat: exporter.FormatYAML}, nil)

	var outcome ExportOutcome
	err := handler.Execute(context.Background(), ExportContentCommand{
		Kind:           domain.KindProblem,
		Fields:         problemFields(),
		DryRun:         true,
		ResultCallback: func(o ExportOutcome) { outcome = o },
	})
	if err != nil {
		t.Fatalf("execute: %v", err)
	}
	if outcome.Path != "" {
		t.Fatalf("expected no path for dry run, got %q", outcome.Path)
	}
	if !strings.Contains(outcome.Metadata, "filename: problem-two-sum.html") {
		t.Fatalf("expected YAML metadata, got %q", outcome.Metadata)
	}
	entries, _ := os.ReadDir(dir)
	if len(entries) != 0 {
		t.Fatalf("expected empty output dir, got %d entries", len(entries))
	}
}

func TestExportHandlerRefusesOverwrite(t *testing.T) {
	dir := t.TempDir()
	handler := NewExportContentHandler(newService(), ExportDefaults{OutputDir: dir}, nil)
	cmd := ExportContentCommand{Kind: domain.KindProblem, Fields: problemFields()}

	if err := handler.Execute(context.Background(), cmd); err != nil {
		t.Fatalf("first export: %v", err)
	}
	err := handler.Execute(context.Background(), cmd)
	if !errors.Is(err, exporter.ErrFileExists) {
		t.Fatalf("expected ErrFileExists, got %v", err)
	}
	if !goerrors.IsCategory(err, goerrors.CategoryCommand) {
		t.Fatalf("expected command category, got %v", err)
	}
}

func TestExportHandlerKeepsFieldValidationCategory(t *testing.T) {
	handler := NewExportContentHandler(newService(), ExportDefaults{OutputDir: t.TempDir()}, nil)
	called := false
	err := handler.Execute(context.Background(), ExportContentCommand{
		Kind:           domain.KindArticle,
		Fields:         domain.FieldSet{"title": "Go Tips"},
		ResultCallback: func(ExportOutcome) { called = true },
	})
	if !goerrors.IsCategory(err, goerrors.CategoryValidation) {
		t.Fatalf("expected validation category, got %v", err)
	}
	var verr *exporter.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected *exporter.ValidationError, got %T", err)
	}
	if got := verr.Fields(); len(got) != 3 || got[0] != "author" {
		t.Fatalf("unexpected invalid fields %v", got)
	}
	if called {
		t.Fatal("callback must not run on failure")
	}
}

func TestExportHandlerRejectsUnknownKind(t *testing.T) {
	handler := NewExportContentHandler(newService(), ExportDefaults{}, nil)
	err := handler.Execute(context.Background(), ExportContentCommand{Kind: "video"})
	if !goerrors.IsCategory(err, goerrors.CategoryValidation) {
		t.Fatalf("expected validation category, got %v", err)
	}
}

func TestPreviewHandler(t *testing.T) {
	handler := NewPreviewContentHandler(newService(), nil)
	var fragment string
	err := handler.Execute(context.Background(), PreviewContentCommand{
		Kind:           domain.KindProblem,
		Fields:         problemFields(),
		ResultCallback: func(s string) { fragment = s },
	})
	if err != nil {
		t.Fatalf("execute: %v", err)
	}
	if !strings.HasPrefix(fragment, `<article class="problem" data-id="two-sum"`) {
		t.Fatalf("unexpected fragment prefix: %.80q", fragment)
	}
}

func TestRenderHandler(t *testing.T) {
	handler := NewRenderMarkdownHandler(newService(), nil)
	var out string
	err := handler.Execute(context.Background(), RenderMarkdownCommand{
		Text:           "# Notes",
		ResultCallback: func(s string) { out = s },
	})
	if err != nil {
		t.Fatalf("execute: %v", err)
	}
	if out != "<h1>Notes</h1>" {
		t.Fatalf("render = %q", out)
	}
}

func TestValidateIndexHandler(t *testing.T) {
	root := t.TempDir()
	config := `{"content":{"problems":[{"filename":"problem-two-sum.html","title":"Two Sum"}]}}`
	if err := os.WriteFile(filepath.Join(root, index.DefaultConfigPath), []byte(config), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	handler := NewValidateIndexHandler(index.Options{RequiredFiles: []string{"index.html"}}, nil)
	var report *index.Report
	err := handler.Execute(context.Background(), ValidateIndexCommand{
		RootDir:        root,
		ResultCallback: func(r *index.Report) { report = r },
	})
	if err != nil {
		t.Fatalf("execute: %v", err)
	}
	// problems/ and the other two section directories are missing, plus index.html.
	if report.ErrorCount() != 4 {
		t.Fatalf("expected 4 issues, got %#v", report.Issues)
	}
	if report.Issues[3].Code != index.CodeRequiredFileMissing {
		t.Fatalf("expected required file issue last, got %#v", report.Issues[3])
	}
}
