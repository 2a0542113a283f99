package commands

import (
	"github.com/spf13/cobra"

	"github.com/pluqqy/cvbuilder/internal/cli"
	"github.com/pluqqy/cvbuilder/pkg/models"
)

// NewEditCommand creates the edit command
func NewEditCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "edit <field>",
		Short: "Edit a piece of CV text in your editor",
		Long: `Edit a contact field or a piece of CV text in your editor.

The editor is taken from editor.command in settings.yaml, then $EDITOR.
Fields are addressed the same way as in 'cvbuilder set'.

Examples:
  # Rewrite the summary
  cvbuilder edit summary

  # Edit the description of the second job
  cvbuilder edit experience[1].description

  # Edit with a specific editor
  EDITOR=vim cvbuilder edit summary`,
		Args:    cobra.ExactArgs(1),
		PreRunE: requireProject,
		RunE:    runEdit,
	}

	return cmd
}

// currentValue reads the value a field reference points at
func currentValue(doc *models.Document, field string) (string, error) {
	if cli.ValidateIdentityField(field) == nil {
		return doc.Identity.Get(field)
	}
	ref, err := models.ParseSectionRef(field)
	if err != nil {
		return "", err
	}
	return doc.FreeText(ref)
}

func runEdit(cmd *cobra.Command, args []string) error {
	field := args[0]

	ctx, err := cli.NewCommandContext()
	if err != nil {
		return err
	}
	ctrl, err := ctx.OpenEditor()
	if err != nil {
		return err
	}
	defer ctrl.Close()

	current, err := currentValue(ctrl.Document(), field)
	if err != nil {
		return err
	}

	launcher := cli.NewEditorLauncher(ctx.LoadSettingsWithDefault().Editor.Command)
	cli.PrintInfo("Opening %s in %s...", field, launcher.DefaultEditor)
	edited, err := launcher.EditText(current)
	if err != nil {
		return err
	}

	intent, err := fieldIntent(field, edited)
	if err != nil {
		return err
	}
	outcome, err := ctrl.Execute(intent)
	if err != nil {
		return err
	}
	return saveIfChanged(ctrl, outcome, field)
}
