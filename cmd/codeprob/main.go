package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	command "github.com/goliatone/go-command"
	"github.com/spf13/cobra"

	"github.com/goliatone/go-codeprob/cmd/codeprob/internal/bootstrap"
	contentcmd "github.com/goliatone/go-codeprob/internal/commands/content"
)

// errContentInvalid signals a validate-content run that found issues.
var errContentInvalid = errors.New("content validation failed")

type handlerSet struct {
	export   command.Commander[contentcmd.ExportContentCommand]
	preview  command.Commander[contentcmd.PreviewContentCommand]
	render   command.Commander[contentcmd.RenderMarkdownCommand]
	validate command.Commander[contentcmd.ValidateIndexCommand]
}

type moduleResources struct {
	handlers handlerSet
	close    func()
}

type moduleOptions = bootstrap.Options

var moduleBuilder = buildModule

func buildModule(opts moduleOptions) (*moduleResources, error) {
	module, err := bootstrap.BuildModule(opts)
	if err != nil {
		return nil, err
	}
	return &moduleResources{
		handlers: handlerSet{
			export:   module.Handlers.Export,
			preview:  module.Handlers.Preview,
			render:   module.Handlers.Render,
			validate: module.Handlers.Validate,
		},
		close: module.Close,
	}, nil
}

func main() {
	if err := run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr); err != nil {
		if !errors.Is(err, errContentInvalid) {
			fmt.Fprintln(os.Stderr, newPalette(os.Stderr).failure.Render("error: "+err.Error()))
		}
		os.Exit(1)
	}
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	root := newRootCommand()
	root.SetArgs(args)
	root.SetIn(stdin)
	root.SetOut(stdout)
	root.SetErr(stderr)
	return root.ExecuteContext(context.Background())
}

type globalFlags struct {
	configPath string
	logLevel   string
}

func newRootCommand() *cobra.Command {
	flags := &globalFlags{}
	root := &cobra.Command{
		Use:   "codeprob",
		Short: "Generate and check CodeProb content pages",
		Long: `codeprob turns contributor submissions into the static HTML pages
published under problems/, concepts/ and articles/, and checks a site
checkout against contributor-config.json.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&flags.configPath, "config", "", "YAML runtime configuration file")
	root.PersistentFlags().StringVar(&flags.logLevel, "log-level", "", "enable logging at this level (trace, debug, info, warn, error)")

	root.AddCommand(
		newExportCommand(flags),
		newPreviewCommand(flags),
		newRenderCommand(flags),
		newValidateContentCommand(flags),
	)
	return root
}

func (g *globalFlags) options() moduleOptions {
	return moduleOptions{ConfigPath: g.configPath, LogLevel: g.logLevel}
}

func withModule(opts moduleOptions, fn func(*moduleResources) error) error {
	resources, err := moduleBuilder(opts)
	if err != nil {
		return err
	}
	if resources.close != nil {
		defer resources.close()
	}
	return fn(resources)
}
