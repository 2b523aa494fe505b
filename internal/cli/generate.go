package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"resumebuilder/internal/llm"
	"resumebuilder/internal/model"
)

type generateFlags struct {
	kind         string
	profile      string
	outputDir    string
	skipPDF      bool
	keepMarkdown bool
}

func (a *app) generateCommand() *cobra.Command {
	var f generateFlags

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate a document from a profile file",
		Long: `Generate a resume, cover letter or portfolio summary from a YAML or JSON
profile and write it as <Name>_<Kind>.pdf (and .md with --keep-markdown).

Example:
  resumectl generate --kind resume --profile jane.yaml
  resumectl generate --kind cover-letter --profile jane.json --output-dir out --keep-markdown`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.runGenerate(cmd, f)
		},
	}

	cmd.Flags().StringVar(&f.kind, "kind", "", "Document kind: resume, cover-letter or portfolio")
	cmd.Flags().StringVar(&f.profile, "profile", "", "Profile file (YAML or JSON)")
	cmd.Flags().StringVar(&f.outputDir, "output-dir", ".", "Output directory")
	cmd.Flags().BoolVar(&f.skipPDF, "skip-pdf", false, "Write markdown only")
	cmd.Flags().BoolVar(&f.keepMarkdown, "keep-markdown", false, "Also write the generated markdown")
	_ = cmd.MarkFlagRequired("kind")
	_ = cmd.MarkFlagRequired("profile")

	return cmd
}

func (a *app) runGenerate(cmd *cobra.Command, f generateFlags) (err error) {
	kind, err := model.ParseDocumentKind(f.kind)
	if err != nil {
		return err
	}

	profile, err := loadProfile(f.profile)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(cmd.Context(), 2*llm.RequestTimeout)
	defer cancel()

	svc := a.service(cmd)
	doc, err := svc.Generate(ctx, kind, profile)
	if err != nil {
		return err
	}
	if doc.Failed() {
		return errors.New(doc.Content)
	}

	err = os.MkdirAll(f.outputDir, 0o755)
	if err != nil {
		return errors.Wrapf(err, "failed creating output directory %s", f.outputDir)
	}

	base := filepath.Join(f.outputDir, strings.TrimSuffix(doc.Filename(), ".pdf"))

	if f.keepMarkdown || f.skipPDF {
		mdPath := base + ".md"
		err = os.WriteFile(mdPath, []byte(doc.Content), 0o644)
		if err != nil {
			return errors.Wrapf(err, "failed writing %s", mdPath)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", mdPath)
	}

	if f.skipPDF {
		return nil
	}

	pdf, err := svc.ExportPDF(ctx, doc)
	if err != nil {
		return err
	}

	pdfPath := filepath.Join(f.outputDir, pdf.Filename)
	err = os.WriteFile(pdfPath, pdf.Data, 0o644)
	if err != nil {
		return errors.Wrapf(err, "failed writing %s", pdfPath)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", pdfPath)

	return nil
}

// loadProfile reads a YAML profile. JSON files parse as well since JSON is valid YAML.
func loadProfile(path string) (profile model.UserProfile, err error) {
	data, err := os.ReadFile(path)
	if err != nil {
		err = errors.Wrapf(err, "failed reading profile %s", path)
		return profile, err
	}

	err = yaml.Unmarshal(data, &profile)
	if err != nil {
		err = errors.Wrapf(err, "failed parsing profile %s", path)
		return profile, err
	}

	return profile, err
}
