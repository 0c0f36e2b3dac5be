package index

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/goliatone/go-codeprob/internal/domain"
	"github.com/goliatone/go-codeprob/internal/logging"
	"github.com/goliatone/go-codeprob/pkg/interfaces"
)

// Issue codes reported by the validator.
const (
	CodeConfigInvalid       = "config_invalid"
	CodeDirectoryMissing    = "directory_missing"
	CodeFileMissing         = "file_missing"
	CodeMissingDoctype      = "missing_doctype"
	CodeMissingArticle      = "missing_article"
	CodeTitleMismatch       = "title_mismatch"
	CodeRequiredFileMissing = "required_file_missing"
)

// DefaultRequiredFiles lists the site files every checkout must contain.
var DefaultRequiredFiles = []string{
	"index.html",
	"writer.html",
	"assets/css/main.css",
	"assets/js/main.js",
	"assets/js/content-indexer.js",
}

// Issue is a single validation error.
type Issue struct {
	Code    string `json:"code"`
	Path    string `json:"path,omitempty"`
	Message string `json:"message"`
}

// SectionReport summarises the checks for one kind.
type SectionReport struct {
	Kind      domain.Kind `json:"kind"`
	Directory string      `json:"directory"`
	Items     int         `json:"items"`
	Missing   bool        `json:"missing"`
}

// Report is the outcome of a validation run.
type Report struct {
	Sections []SectionReport `json:"sections"`
	Issues   []Issue         `json:"issues"`
}

// ErrorCount returns the number of issues found.
func (r *Report) ErrorCount() int {
	if r == nil {
		return 0
	}
	return len(r.Issues)
}

func (r *Report) add(code, path, format string, args ...any) {
	r.Issues = append(r.Issues, Issue{Code: code, Path: path, Message: fmt.Sprintf(format, args...)})
}

// Options configures a Validator.
type Options struct {
	// RootDir is the site checkout. Defaults to ".".
	RootDir string
	// ConfigPath is the index file, relative to RootDir unless absolute.
	ConfigPath string
	// RequiredFiles overrides DefaultRequiredFiles when non-empty.
	RequiredFiles []string
	Logger        interfaces.Logger
}

// Validator checks a site checkout against its index.
type Validator struct {
	root     string
	config   string
	required []string
	logger   interfaces.Logger
}

// NewValidator applies defaults to opts.
func NewValidator(opts Options) *Validator {
	v := &Validator{
		root:     opts.RootDir,
		config:   opts.ConfigPath,
		required: opts.RequiredFiles,
		logger:   opts.Logger,
	}
	if strings.TrimSpace(v.root) == "" {
		v.root = "."
	}
	if strings.TrimSpace(v.config) == "" {
		v.config = DefaultConfigPath
	}
	if !filepath.IsAbs(v.config) {
		v.config = filepath.Join(v.root, v.config)
	}
	if len(v.required) == 0 {
		v.required = DefaultRequiredFiles
	}
	if v.logger == nil {
		v.logger = logging.NoOp()
	}
	return v
}

// Validate runs every check and returns the report. A config that cannot be
// loaded is reported as a single issue and stops the run. The error return is
// reserved for context cancellation.
func (v *Validator) Validate(ctx context.Context) (*Report, error) {
	report := &Report{}
	logger := v.logger.WithContext(ctx)

	cfg, err := Load(v.config)
	if err != nil {
		report.add(CodeConfigInvalid, v.config, "Validation failed: %v", err)
		logger.Error("index.config.invalid", "path", v.config, "error", err)
		return report, nil
	}

	for _, kind := range domain.Kinds() {
		if err := ctx.Err(); err != nil {
			return report, err
		}
		section := v.validateSection(report, kind, cfg)
		report.Sections = append(report.Sections, section)
		logger.Info("index.section.validated", "kind", kind.String(), "items", section.Items, "missing", section.Missing)
	}

	for _, file := range v.required {
		if !exists(filepath.Join(v.root, filepath.FromSlash(file))) {
			report.add(CodeRequiredFileMissing, file, "Required file missing: %s", file)
		}
	}

	for _, issue := range report.Issues {
		logger.Warn("index.issue", "code", issue.Code, "path", issue.Path)
	}
	return report, nil
}

func (v *Validator) validateSection(report *Report, kind domain.Kind, cfg *Config) SectionReport {
	dir := kind.Plural()
	entries := cfg.Entries(kind)
	section := SectionReport{Kind: kind, Directory: dir, Items: len(entries)}

	if !exists(filepath.Join(v.root, dir)) {
		section.Missing = true
		report.add(CodeDirectoryMissing, dir+"/", "Directory missing: %s/", dir)
		return section
	}

	articleMarker := fmt.Sprintf(`<article class="%s"`, kind)
	for _, entry := range entries {
		rel := dir + "/" + entry.Filename
		data, err := os.ReadFile(filepath.Join(v.root, dir, entry.Filename))
		if err != nil {
			report.add(CodeFileMissing, rel, "File missing: %s", rel)
			continue
		}
		content := string(data)
		if !strings.Contains(content, "<!DOCTYPE html>") {
			report.add(CodeMissingDoctype, rel, "Invalid HTML (missing DOCTYPE): %s", rel)
		}
		if !strings.Contains(content, articleMarker) {
			report.add(CodeMissingArticle, rel, "Missing article element: %s", rel)
		}
		if !strings.Contains(content, entry.Title) {
			report.add(CodeTitleMismatch, rel, "Title mismatch: %s", rel)
		}
	}
	return section
}

func exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil || !errors.Is(err, fs.ErrNotExist)
}
