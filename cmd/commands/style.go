package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pluqqy/cvbuilder/internal/cli"
	"github.com/pluqqy/cvbuilder/pkg/editor"
)

var (
	styleColor    string
	styleFontSize int
)

// NewStyleCommand creates the style command
func NewStyleCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "style",
		Short: "Change the accent color or font size",
		Long: `Change the accent color and base font size of the CV.

Colors are hex values such as #0EA5E9. Font sizes outside the configured
range are clamped to it.

Examples:
  # Use a teal accent
  cvbuilder style --color "#0D9488"

  # Larger text
  cvbuilder style --font-size 16`,
		Args:    cobra.NoArgs,
		PreRunE: requireProject,
		RunE:    runStyle,
	}

	cmd.Flags().StringVar(&styleColor, "color", "", "Accent color as a hex value")
	cmd.Flags().IntVar(&styleFontSize, "font-size", 0, "Base font size in pixels")

	return cmd
}

func runStyle(cmd *cobra.Command, args []string) error {
	colorSet := cmd.Flags().Changed("color")
	sizeSet := cmd.Flags().Changed("font-size")
	if !colorSet && !sizeSet {
		return fmt.Errorf("nothing to change: pass --color and/or --font-size")
	}

	ctrl, err := openEditor()
	if err != nil {
		return err
	}
	defer ctrl.Close()

	changed := false
	if colorSet {
		outcome, err := ctrl.Execute(editor.ChangeColor(styleColor))
		if err != nil {
			return err
		}
		changed = changed || outcome == editor.Applied
	}
	if sizeSet {
		outcome, err := ctrl.Execute(editor.ChangeFontSize(styleFontSize))
		if err != nil {
			return err
		}
		changed = changed || outcome == editor.Applied
	}

	if !changed {
		cli.PrintInfo("Style unchanged")
		return nil
	}
	if err := cli.SaveEditor(ctrl); err != nil {
		return err
	}
	p := ctrl.Document().Presentation
	cli.PrintInfo("Accent %s, font size %dpx", p.AccentColor, p.FontSizePx)
	return nil
}
