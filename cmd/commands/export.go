package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/pluqqy/cvbuilder/internal/cli"
	"github.com/pluqqy/cvbuilder/pkg/composer"
	"github.com/pluqqy/cvbuilder/pkg/editor"
)

var (
	exportHTML     bool
	exportPDF      bool
	exportMarkdown bool
	exportPath     string
)

// NewExportCommand creates the export command
func NewExportCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export the CV as HTML, PDF or Markdown",
		Long: `Export the CV to the exports folder (or export.export_path in settings).

HTML is the printable page exactly as the template renders it. PDF is
printed from that page with headless Chrome; set export.chrome_path or
CHROME_PATH when Chrome is not on the PATH. Markdown is a plain text
rendition for pasting into forms.

Without a format flag the CV is exported as HTML. Several formats are
written in parallel.

Examples:
  # Export HTML
  cvbuilder export

  # Export PDF to a specific file
  cvbuilder export --pdf --path ~/Documents/jane-doe.pdf

  # Export everything
  cvbuilder export --html --pdf --md`,
		Args:    cobra.NoArgs,
		PreRunE: requireProject,
		RunE:    runExport,
	}

	cmd.Flags().BoolVar(&exportHTML, "html", false, "Export the HTML page")
	cmd.Flags().BoolVar(&exportPDF, "pdf", false, "Export a PDF")
	cmd.Flags().BoolVar(&exportMarkdown, "md", false, "Export Markdown")
	cmd.Flags().StringVarP(&exportPath, "path", "p", "", "Output file (only with a single format)")

	return cmd
}

func runExport(cmd *cobra.Command, args []string) error {
	var printable []editor.ExportFormat
	if exportHTML {
		printable = append(printable, editor.ExportHTML)
	}
	if exportPDF {
		printable = append(printable, editor.ExportPDF)
	}
	if len(printable) == 0 && !exportMarkdown {
		printable = append(printable, editor.ExportHTML)
	}

	formats := len(printable)
	if exportMarkdown {
		formats++
	}
	if exportPath != "" && formats > 1 {
		return fmt.Errorf("--path can only be used when exporting a single format")
	}

	ctrl, err := openEditor()
	if err != nil {
		return err
	}
	defer ctrl.Close()

	// the controller is not safe for concurrent use, so printable formats
	// share one goroutine and markdown works on a copy
	doc := ctrl.Document().Clone()
	settings := ctrl.Settings()

	g, gctx := errgroup.WithContext(cmd.Context())
	if len(printable) > 0 {
		g.Go(func() error {
			for _, format := range printable {
				if _, err := ctrl.ExecuteContext(gctx, editor.ExportPrintable(format, exportPath)); err != nil {
					return fmt.Errorf("%s export failed: %w", format, err)
				}
			}
			return nil
		})
	}
	if exportMarkdown {
		g.Go(func() error {
			content, err := composer.ComposeMarkdown(doc)
			if err != nil {
				return err
			}
			path, err := composer.WriteMarkdownFile(content, settings, exportPath)
			if err != nil {
				return fmt.Errorf("markdown export failed: %w", err)
			}
			cli.PrintInfo("CV exported to %s", path)
			return nil
		})
	}

	return g.Wait()
}
