// Package cli implements the resumectl command line front-end to the
// document pipeline.
package cli

import (
	"io"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"resumebuilder/internal/config"
	"resumebuilder/internal/llm"
	"resumebuilder/internal/logging"
	"resumebuilder/internal/render"
	"resumebuilder/internal/service"
)

// Options injects the pipeline collaborators. Zero values are replaced with
// the production client and renderer built from the environment.
type Options struct {
	Generator llm.ContentGenerator
	Renderer  service.PDFRenderer
	Stdout    io.Writer
	Stderr    io.Writer
}

type app struct {
	opts    Options
	verbose bool
}

// NewRootCommand builds the resumectl command tree.
func NewRootCommand(opts Options) *cobra.Command {
	a := &app{opts: opts}

	root := &cobra.Command{
		Use:   "resumectl",
		Short: "Generate resumes, cover letters and portfolio summaries",
		Long: `resumectl turns a profile file into a resume, cover letter or portfolio
summary using the configured chat-completion model, and renders the result
as a PDF.`,
		SilenceUsage: true,
	}
	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "Verbose output")

	if opts.Stdout != nil {
		root.SetOut(opts.Stdout)
	}
	if opts.Stderr != nil {
		root.SetErr(opts.Stderr)
	}

	root.AddCommand(a.generateCommand(), a.renderCommand())
	return root
}

// Execute runs resumectl with the process environment and exits 1 on failure.
func Execute() {
	// .env is optional
	_ = godotenv.Load()

	if err := NewRootCommand(Options{}).Execute(); err != nil {
		os.Exit(1)
	}
}

func (a *app) logger(cmd *cobra.Command) (result *logging.Logger) {
	if !a.verbose {
		result = logging.Discard()
		return result
	}
	result = logging.New(cmd.ErrOrStderr(), time.Local)
	return result
}

func (a *app) service(cmd *cobra.Command) (svc service.DocumentService) {
	gen := a.opts.Generator
	if gen == nil {
		gen = llm.NewClient(config.Load().LLM)
	}
	renderer := a.opts.Renderer
	if renderer == nil {
		renderer = render.NewRenderer()
	}
	svc = service.NewDocumentService(gen, renderer, nil, a.logger(cmd))
	return svc
}
