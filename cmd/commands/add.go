package commands

import (
	"github.com/spf13/cobra"

	"github.com/pluqqy/cvbuilder/internal/cli"
	"github.com/pluqqy/cvbuilder/pkg/editor"
)

// NewAddCommand creates the add command
func NewAddCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add <experience|education|skill>",
		Short: "Append a new entry to a section",
		Long: `Append a placeholder entry to the experience, education or skills
section. Fill it in afterwards with 'cvbuilder set' or 'cvbuilder edit'.

Examples:
  # Add a job
  cvbuilder add experience

  # Add a skill and name it
  cvbuilder add skill
  cvbuilder set skills[6].name Kubernetes`,
		Args:      cobra.ExactArgs(1),
		ValidArgs: []string{"experience", "education", "skill"},
		PreRunE:   requireProject,
		RunE:      runAdd,
	}

	return cmd
}

func runAdd(cmd *cobra.Command, args []string) error {
	section, err := cli.ValidateSection(args[0])
	if err != nil {
		return err
	}

	ctrl, err := openEditor()
	if err != nil {
		return err
	}
	defer ctrl.Close()

	if _, err := ctrl.Execute(editor.AppendEntry(section)); err != nil {
		return err
	}
	return cli.SaveEditor(ctrl)
}
