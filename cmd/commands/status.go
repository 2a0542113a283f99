package commands

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/pluqqy/cvbuilder/internal/cli"
	"github.com/pluqqy/cvbuilder/pkg/composer"
	"github.com/pluqqy/cvbuilder/pkg/progress"
	"github.com/pluqqy/cvbuilder/pkg/templates"
	"github.com/pluqqy/cvbuilder/pkg/utils"
)

type statusReport struct {
	Template   string          `json:"template" yaml:"template"`
	Score      int             `json:"score" yaml:"score"`
	Level      string          `json:"level" yaml:"level"`
	Checks     map[string]bool `json:"checks" yaml:"checks"`
	LastSaved  string          `json:"lastSaved" yaml:"last_saved"`
	Words      int             `json:"words" yaml:"words"`
	Pages      int             `json:"pages" yaml:"pages"`
	Length     string          `json:"length" yaml:"length"`
	StoredSize string          `json:"storedSize,omitempty" yaml:"stored_size,omitempty"`
}

// NewStatusCommand creates the status command
func NewStatusCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "status",
		Short: "Show how complete the CV is",
		Long: `Show the completeness score, what is still missing, when the CV was last
saved and how long it is.

Examples:
  cvbuilder status
  cvbuilder status -o json`,
		Args:    cobra.NoArgs,
		PreRunE: requireProject,
		RunE:    runStatus,
	}

	return cmd
}

func runStatus(cmd *cobra.Command, args []string) error {
	outputFormat, _ := cmd.Flags().GetString("output")
	if err := cli.ValidateOutputFormat(outputFormat); err != nil {
		return err
	}

	ctx, err := cli.NewCommandContext()
	if err != nil {
		return err
	}
	ctrl, err := ctx.OpenEditor()
	if err != nil {
		return err
	}
	defer ctrl.Close()

	doc := ctrl.Document()
	tmpl := templates.Get(doc.Template)
	markdown, err := composer.ComposeMarkdown(doc)
	if err != nil {
		return err
	}
	words := utils.CountWords(markdown)
	percentage, limit, pages, length := utils.GetLengthStatus(words)

	report := statusReport{
		Template:  tmpl.Name,
		Score:     ctrl.Score(),
		Level:     progress.LevelFor(ctrl.Score()).String(),
		Checks:    map[string]bool{},
		LastSaved: progress.LastSavedText(time.Now(), ctrl.LastSaved()),
		Words:     words,
		Pages:     pages,
		Length:    length,
	}
	checks := progress.Checklist(doc, tmpl)
	for _, c := range checks {
		report.Checks[c.Name] = c.Passed
	}
	if info, err := os.Stat(ctx.Store().Path()); err == nil {
		report.StoredSize = cli.FormatBytes(info.Size())
	}

	out := cmd.OutOrStdout()
	if outputFormat != string(cli.FormatText) {
		return cli.OutputResults(out, outputFormat, report)
	}

	fmt.Fprintf(out, "Template:    %s\n", report.Template)
	fmt.Fprintf(out, "Completion:  %d%% (%s)\n", report.Score, report.Level)
	for _, c := range checks {
		mark := "[ ]"
		if c.Passed {
			mark = "[x]"
		}
		fmt.Fprintf(out, "  %s %s\n", mark, c.Name)
	}
	fmt.Fprintf(out, "Last saved:  %s\n", report.LastSaved)
	fmt.Fprintf(out, "Length:      %s, %d%% of %d (%d page budget)\n", utils.FormatWordCount(words), percentage, limit, pages)
	if report.StoredSize != "" {
		fmt.Fprintf(out, "Stored size: %s\n", report.StoredSize)
	}
	return nil
}
