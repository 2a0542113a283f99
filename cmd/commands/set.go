package commands

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/pluqqy/cvbuilder/internal/cli"
	"github.com/pluqqy/cvbuilder/pkg/editor"
	"github.com/pluqqy/cvbuilder/pkg/models"
)

// NewSetCommand creates the set command
func NewSetCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "set <field> <value...>",
		Short: "Set a contact field or a piece of CV text",
		Long: `Set a contact field or a piece of CV text and save the CV.

Contact fields are: name, title, email, phone, location, linkedin.

Text is addressed as summary or <section>[<index>].<field>:
  experience[0].title, experience[0].company, experience[0].date,
  education[1].institution, skills[2].name, skills[2].level, skills[2].group

Indexes start at 0. Use 'cvbuilder add' to create new entries.

Examples:
  # Set your name
  cvbuilder set name Jane Doe

  # Set the first job title
  cvbuilder set experience[0].title "Staff Engineer"

  # Rate a skill
  cvbuilder set skills[0].level 85`,
		Args:    cobra.MinimumNArgs(2),
		PreRunE: requireProject,
		RunE:    runSet,
	}

	return cmd
}

// fieldIntent maps a command-line field name to the intent that writes it
func fieldIntent(field, value string) (editor.Intent, error) {
	if cli.ValidateIdentityField(field) == nil {
		return editor.EditIdentityField(strings.ToLower(field), value), nil
	}
	ref, err := models.ParseSectionRef(field)
	if err != nil {
		return editor.Intent{}, err
	}
	return editor.EditFreeText(ref, value), nil
}

func runSet(cmd *cobra.Command, args []string) error {
	field := args[0]
	value := strings.Join(args[1:], " ")

	intent, err := fieldIntent(field, value)
	if err != nil {
		return err
	}

	ctrl, err := openEditor()
	if err != nil {
		return err
	}
	defer ctrl.Close()

	outcome, err := ctrl.Execute(intent)
	if err != nil {
		return err
	}
	return saveIfChanged(ctrl, outcome, field)
}
