package commands

import (
	"fmt"

	"github.com/atotto/clipboard"
	"github.com/spf13/cobra"

	"github.com/pluqqy/cvbuilder/internal/cli"
	"github.com/pluqqy/cvbuilder/pkg/composer"
	"github.com/pluqqy/cvbuilder/pkg/utils"
)

var (
	clipboardFormat string
)

// NewClipboardCommand creates the clipboard command
func NewClipboardCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "clipboard",
		Short: "Copy the CV to the clipboard",
		Long: `Copy the CV to the system clipboard, ready to paste into an application
form or an email.

Examples:
  # Copy as Markdown
  cvbuilder clipboard

  # Copy the rendered HTML page
  cvbuilder copy --format html`,
		Args:    cobra.NoArgs,
		Aliases: []string{"clip", "copy"},
		PreRunE: requireProject,
		RunE:    runClipboard,
	}

	cmd.Flags().StringVar(&clipboardFormat, "format", "markdown", "Content format (markdown, html)")

	return cmd
}

func runClipboard(cmd *cobra.Command, args []string) error {
	ctrl, err := openEditor()
	if err != nil {
		return err
	}
	defer ctrl.Close()

	markdown, err := composer.ComposeMarkdown(ctrl.Document())
	if err != nil {
		return fmt.Errorf("failed to compose CV: %w", err)
	}

	var content string
	switch clipboardFormat {
	case "markdown", "md":
		content = markdown
	case "html":
		content = ctrl.View()
	default:
		return fmt.Errorf("unsupported clipboard format: %s (must be: markdown or html)", clipboardFormat)
	}

	if err := clipboard.WriteAll(content); err != nil {
		return fmt.Errorf("failed to copy to clipboard: %w", err)
	}

	cli.PrintSuccess("Copied CV to clipboard (%s)", utils.FormatWordCount(utils.CountWords(markdown)))
	return nil
}
