package contentcmd

import (
	"errors"
	"testing"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/goliatone/go-codeprob/internal/domain"
)

func TestExportContentCommandValidate(t *testing.T) {
	cases := []struct {
		name    string
		cmd     ExportContentCommand
		invalid []string
	}{
		{name: "valid", cmd: ExportContentCommand{Kind: domain.KindProblem}},
		{name: "yaml format", cmd: ExportContentCommand{Kind: domain.KindArticle, MetadataFormat: "YAML"}},
		{name: "missing kind", cmd: ExportContentCommand{}, invalid: []string{"kind"}},
		{name: "unknown kind", cmd: ExportContentCommand{Kind: "video"}, invalid: []string{"kind"}},
		{name: "bad format", cmd: ExportContentCommand{Kind: domain.KindConcept, MetadataFormat: "toml"}, invalid: []string{"metadata_format"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.cmd.Validate()
			if len(tc.invalid) == 0 {
				if err != nil {
					t.Fatalf("expected valid command, got %v", err)
				}
				return
			}
			var errs validation.Errors
			if !errors.As(err, &errs) {
				t.Fatalf("expected validation.Errors, got %T %v", err, err)
			}
			for _, key := range tc.invalid {
				if _, ok := errs[key]; !ok {
					t.Fatalf("expected %s error, got %v", key, errs)
				}
			}
		})
	}
}

func TestPreviewContentCommandValidate(t *testing.T) {
	if err := (PreviewContentCommand{Kind: domain.KindConcept}).Validate(); err != nil {
		t.Fatalf("expected valid command, got %v", err)
	}
	err := (PreviewContentCommand{Kind: "problems"}).Validate()
	var errs validation.Errors
	if !errors.As(err, &errs) {
		t.Fatalf("expected validation.Errors, got %v", err)
	}
	var coded validation.Error
	if !errors.As(errs["kind"], &coded) || coded.Code() != previewContentMessageType+".kind_invalid" {
		t.Fatalf("expected kind_invalid code, got %v", errs["kind"])
	}
}

func TestMessageTypes(t *testing.T) {
	cases := map[string]string{
		ExportContentCommand{}.Type():  "codeprob.content.export",
		PreviewContentCommand{}.Type(): "codeprob.content.preview",
		RenderMarkdownCommand{}.Type(): "codeprob.markdown.render",
		ValidateIndexCommand{}.Type():  "codeprob.index.validate",
	}
	for got, want := range cases {
		if got != want {
			t.Fatalf("Type() = %q, want %q", got, want)
		}
	}
}
