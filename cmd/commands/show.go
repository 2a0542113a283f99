package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pluqqy/cvbuilder/internal/cli"
	"github.com/pluqqy/cvbuilder/pkg/render"
)

var (
	showHTML  bool
	showWidth int
)

// NewShowCommand creates the show command
func NewShowCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show",
		Short: "Display the CV",
		Long: `Display the CV in the terminal.

The text view follows the current template's sections. JSON and YAML print
the stored document; --html prints the rendered page.

Examples:
  # Show the CV
  cvbuilder show

  # Narrower output
  cvbuilder show --width 60

  # Output as JSON
  cvbuilder show -o json

  # Rendered page
  cvbuilder show --html > cv.html`,
		Args:    cobra.NoArgs,
		PreRunE: requireProject,
		RunE:    runShow,
	}

	cmd.Flags().BoolVar(&showHTML, "html", false, "Print the rendered HTML page")
	cmd.Flags().IntVarP(&showWidth, "width", "w", 80, "Wrap width for the text view")

	return cmd
}

func runShow(cmd *cobra.Command, args []string) error {
	outputFormat, _ := cmd.Flags().GetString("output")
	if err := cli.ValidateOutputFormat(outputFormat); err != nil {
		return err
	}

	ctrl, err := openEditor()
	if err != nil {
		return err
	}
	defer ctrl.Close()

	out := cmd.OutOrStdout()
	switch {
	case showHTML:
		fmt.Fprint(out, ctrl.View())
		return nil
	case outputFormat != string(cli.FormatText):
		return cli.OutputResults(out, outputFormat, ctrl.Document())
	default:
		fmt.Fprintln(out, render.RenderText(ctrl.Document(), showWidth))
		return nil
	}
}
