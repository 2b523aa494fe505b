package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"resumebuilder/internal/model"
)

func (a *app) renderCommand() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "render <markdown-file>",
		Short: "Render a markdown file as PDF without calling the model",
		Long: `Strip markdown from a local file and render it with the same layout used
for generated documents.

Example:
  resumectl render Jane_Doe_Resume.md
  resumectl render notes.md --output notes.pdf`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runRender(cmd, args[0], output)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "Output PDF path (default: input with .pdf extension)")
	return cmd
}

func (a *app) runRender(cmd *cobra.Command, input, output string) (err error) {
	data, err := os.ReadFile(input)
	if err != nil {
		return errors.Wrapf(err, "failed reading %s", input)
	}

	if output == "" {
		output = strings.TrimSuffix(input, filepath.Ext(input)) + ".pdf"
	}

	pdf, err := a.service(cmd).ExportPDF(cmd.Context(), model.GeneratedDocument{
		Kind:    model.KindResume,
		Content: string(data),
	})
	if err != nil {
		return err
	}

	err = os.WriteFile(output, pdf.Data, 0o644)
	if err != nil {
		return errors.Wrapf(err, "failed writing %s", output)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", output)

	return nil
}
