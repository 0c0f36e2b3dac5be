package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	contentcmd "github.com/goliatone/go-codeprob/internal/commands/content"
	"github.com/goliatone/go-codeprob/internal/domain"
	"github.com/goliatone/go-codeprob/internal/exporter"
	"github.com/goliatone/go-codeprob/internal/fields"
	"github.com/goliatone/go-codeprob/internal/index"
)

type submissionFlags struct {
	kind   string
	file   string
	fields []string
}

func (f *submissionFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.kind, "kind", "k", "", "content kind: problem, concept or article")
	cmd.Flags().StringVarP(&f.file, "file", "f", "", "markdown (with front matter), YAML or JSON file holding the fields")
	cmd.Flags().StringArrayVar(&f.fields, "field", nil, "field value as key=value; repeatable, wins over --file")
}

// submission merges the file and --field values. --kind is a fallback for
// files that do not declare one.
func (f *submissionFlags) submission() (fields.Submission, error) {
	var fallback domain.Kind
	if strings.TrimSpace(f.kind) != "" {
		kind, err := domain.ParseKind(f.kind)
		if err != nil {
			return fields.Submission{}, err
		}
		fallback = kind
	}

	sub := fields.Submission{Kind: fallback, Fields: domain.FieldSet{}}
	if strings.TrimSpace(f.file) != "" {
		loaded, err := fields.FromFile(f.file, fallback)
		if err != nil {
			return fields.Submission{}, err
		}
		sub = loaded
	}

	pairs, err := fields.FromPairs(f.fields)
	if err != nil {
		return fields.Submission{}, err
	}
	sub.Fields = sub.Fields.Merge(pairs)

	if !sub.Kind.Valid() {
		return fields.Submission{}, fmt.Errorf("%w: use --kind or declare kind in the file", domain.ErrUnknownKind)
	}
	return sub, nil
}

func newExportCommand(global *globalFlags) *cobra.Command {
	var (
		input     submissionFlags
		outputDir string
		format    string
		dryRun    bool
		overwrite bool
	)
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Generate a content page and print its index entry",
		RunE: func(cmd *cobra.Command, _ []string) error {
			sub, err := input.submission()
			if err != nil {
				return err
			}
			opts := global.options()
			opts.OutputDir = outputDir
			opts.MetadataFormat = format
			if cmd.Flags().Changed("overwrite") {
				opts.Overwrite = &overwrite
			}

			out := cmd.OutOrStdout()
			styles := newPalette(out)
			return withModule(opts, func(res *moduleResources) error {
				err := res.handlers.export.Execute(cmd.Context(), contentcmd.ExportContentCommand{
					Kind:   sub.Kind,
					Fields: sub.Fields,
					DryRun: dryRun,
					ResultCallback: func(outcome contentcmd.ExportOutcome) {
						printExport(out, styles, outcome, dryRun)
					},
				})
				printValidation(cmd.ErrOrStderr(), err)
				return err
			})
		},
	}
	input.register(cmd)
	cmd.Flags().StringVarP(&outputDir, "out", "o", "", "directory the page is written to")
	cmd.Flags().StringVar(&format, "format", "", "metadata suggestion format: json or yaml")
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "print the page instead of writing it")
	cmd.Flags().BoolVar(&overwrite, "overwrite", false, "replace an existing page")
	return cmd
}

func printExport(out io.Writer, styles palette, outcome contentcmd.ExportOutcome, dryRun bool) {
	result := outcome.Result
	if dryRun {
		fmt.Fprintln(out, result.Document)
	} else {
		fmt.Fprintln(out, styles.success.Render("✓ Exported "+result.Filename)+" "+styles.muted.Render(outcome.Path))
	}
	fmt.Fprintln(out, styles.title.Render("Metadata for contributor-config.json:"))
	fmt.Fprintln(out, strings.TrimRight(outcome.Metadata, "\n"))
	fmt.Fprintln(out, styles.muted.Render(result.Hint()))
}

func printValidation(w io.Writer, err error) {
	var verr *exporter.ValidationError
	if !errors.As(err, &verr) {
		return
	}
	styles := newPalette(w)
	fmt.Fprintln(w, styles.failure.Render("Please fill in all required fields:"))
	for _, message := range verr.Messages() {
		fmt.Fprintln(w, styles.failure.Render("  • "+message))
	}
}

func newPreviewCommand(global *globalFlags) *cobra.Command {
	var input submissionFlags
	cmd := &cobra.Command{
		Use:   "preview",
		Short: "Print the article fragment of the generated page",
		RunE: func(cmd *cobra.Command, _ []string) error {
			sub, err := input.submission()
			if err != nil {
				return err
			}
			return withModule(global.options(), func(res *moduleResources) error {
				err := res.handlers.preview.Execute(cmd.Context(), contentcmd.PreviewContentCommand{
					Kind:   sub.Kind,
					Fields: sub.Fields,
					ResultCallback: func(fragment string) {
						fmt.Fprintln(cmd.OutOrStdout(), fragment)
					},
				})
				printValidation(cmd.ErrOrStderr(), err)
				return err
			})
		},
	}
	input.register(cmd)
	return cmd
}

func newRenderCommand(global *globalFlags) *cobra.Command {
	var file string
	cmd := &cobra.Command{
		Use:   "render",
		Short: "Convert markdown to HTML with the configured engine",
		RunE: func(cmd *cobra.Command, _ []string) error {
			text, err := readInput(cmd.InOrStdin(), file)
			if err != nil {
				return err
			}
			return withModule(global.options(), func(res *moduleResources) error {
				return res.handlers.render.Execute(cmd.Context(), contentcmd.RenderMarkdownCommand{
					Text: text,
					ResultCallback: func(html string) {
						fmt.Fprintln(cmd.OutOrStdout(), html)
					},
				})
			})
		},
	}
	cmd.Flags().StringVarP(&file, "file", "f", "-", "markdown file, or - for stdin")
	return cmd
}

func readInput(stdin io.Reader, path string) (string, error) {
	if path == "" || path == "-" {
		data, err := io.ReadAll(stdin)
		return string(data), err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

func newValidateContentCommand(global *globalFlags) *cobra.Command {
	var root, config string
	cmd := &cobra.Command{
		Use:   "validate-content",
		Short: "Check the site checkout against contributor-config.json",
		RunE: func(cmd *cobra.Command, _ []string) error {
			opts := global.options()
			opts.RootDir = root
			opts.IndexConfig = config

			var report *index.Report
			err := withModule(opts, func(res *moduleResources) error {
				return res.handlers.validate.Execute(cmd.Context(), contentcmd.ValidateIndexCommand{
					ResultCallback: func(r *index.Report) { report = r },
				})
			})
			if err != nil {
				return err
			}
			if printReport(cmd.OutOrStdout(), report) > 0 {
				return errContentInvalid
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&root, "root", "", "site checkout to validate")
	cmd.Flags().StringVar(&config, "index", "", "content index path, relative to --root")
	return cmd
}

func printReport(out io.Writer, report *index.Report) int {
	styles := newPalette(out)
	fmt.Fprintln(out, styles.title.Render("Validating content structure"))
	if report == nil {
		return 0
	}
	for _, section := range report.Sections {
		if section.Missing {
			fmt.Fprintln(out, styles.warning.Render(fmt.Sprintf("- %s/ missing", section.Directory)))
			continue
		}
		fmt.Fprintf(out, "- %s/ %s\n", section.Directory, styles.muted.Render(fmt.Sprintf("%d listed", section.Items)))
	}
	for _, issue := range report.Issues {
		fmt.Fprintln(out, styles.failure.Render("✗ "+issue.Message))
	}

	count := report.ErrorCount()
	if count == 0 {
		fmt.Fprintln(out, styles.success.Render("✓ All content is valid"))
	} else {
		fmt.Fprintln(out, styles.failure.Render(fmt.Sprintf("Found %d error(s)", count)))
	}
	return count
}
