package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pluqqy/cvbuilder/internal/cli"
	"github.com/pluqqy/cvbuilder/pkg/editor"
)

// NewImportCommand creates the import command
func NewImportCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "import <file.html>",
		Short: "Read edits back from an exported HTML page",
		Long: `Read the CV content back from an HTML page exported by cvbuilder and
edited by hand or in a browser. Contact fields, text, entries and skills
found in the page update the matching ones and new entries are appended.
Anything the page leaves out is kept, as are the template and style. Pages
that are not a cvbuilder CV are rejected.

Examples:
  # Export, edit in place, read the edits back
  cvbuilder export --html
  $EDITOR .cvbuilder/exports/cv.html
  cvbuilder import .cvbuilder/exports/cv.html`,
		Args:    cobra.ExactArgs(1),
		PreRunE: requireProject,
		RunE:    runImport,
	}

	return cmd
}

func runImport(cmd *cobra.Command, args []string) error {
	path := args[0]
	if err := cli.ValidateFilePath(path); err != nil {
		return err
	}
	html, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", path, err)
	}

	ctrl, err := openEditor()
	if err != nil {
		return err
	}
	defer ctrl.Close()

	outcome, err := ctrl.Execute(editor.CaptureView(string(html)))
	if err != nil {
		return err
	}
	return saveIfChanged(ctrl, outcome, "CV")
}
