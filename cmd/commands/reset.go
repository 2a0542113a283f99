package commands

import (
	"github.com/spf13/cobra"

	"github.com/pluqqy/cvbuilder/internal/cli"
	"github.com/pluqqy/cvbuilder/pkg/editor"
)

// NewResetCommand creates the reset command
func NewResetCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "reset",
		Short: "Delete the saved CV and start over",
		Long: `Delete the saved CV and start again from the classic template's
starting content. You are asked to confirm unless --yes is given.

Examples:
  cvbuilder reset
  cvbuilder reset --yes`,
		Args:    cobra.NoArgs,
		PreRunE: requireProject,
		RunE:    runReset,
	}

	return cmd
}

func runReset(cmd *cobra.Command, args []string) error {
	ctx, err := cli.NewCommandContext()
	if err != nil {
		return err
	}
	ctrl, err := ctx.OpenEditor()
	if err != nil {
		// a corrupted save can still be cleared
		cli.PrintWarning("%v", err)
		ctrl, err = ctx.NewController(cli.Notifier(), cli.Confirmer(), nil)
		if err != nil {
			return err
		}
	}
	defer ctrl.Close()

	outcome, err := ctrl.Execute(editor.Reset())
	if err != nil {
		return err
	}
	if outcome == editor.Declined {
		cli.PrintInfo("Reset cancelled")
	}
	return nil
}
