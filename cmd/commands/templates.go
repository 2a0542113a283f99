package commands

import (
	"github.com/spf13/cobra"

	"github.com/pluqqy/cvbuilder/internal/cli"
	"github.com/pluqqy/cvbuilder/pkg/editor"
	"github.com/pluqqy/cvbuilder/pkg/models"
	"github.com/pluqqy/cvbuilder/pkg/templates"
)

type templateInfo struct {
	ID          string   `json:"id" yaml:"id"`
	Name        string   `json:"name" yaml:"name"`
	Description string   `json:"description" yaml:"description"`
	Sections    []string `json:"sections" yaml:"sections"`
	Current     bool     `json:"current" yaml:"current"`
}

// requireProject is the PreRunE shared by commands that need an initialized project
func requireProject(cmd *cobra.Command, args []string) error {
	ctx, err := cli.NewCommandContext()
	if err != nil {
		return err
	}
	return ctx.ValidateProject()
}

// openEditor restores the saved CV for a one-shot command
func openEditor() (*editor.Controller, error) {
	ctx, err := cli.NewCommandContext()
	if err != nil {
		return nil, err
	}
	return ctx.OpenEditor()
}

// NewTemplatesCommand creates the templates command
func NewTemplatesCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "templates",
		Short: "List the available CV templates",
		Long: `List the four CV layouts and the sections each one shows.

Examples:
  # List templates
  cvbuilder templates

  # As JSON
  cvbuilder templates -o json`,
		Args:    cobra.NoArgs,
		PreRunE: requireProject,
		RunE:    runTemplates,
	}

	return cmd
}

func runTemplates(cmd *cobra.Command, args []string) error {
	outputFormat, _ := cmd.Flags().GetString("output")
	if err := cli.ValidateOutputFormat(outputFormat); err != nil {
		return err
	}

	var current models.TemplateID
	ctx, err := cli.NewCommandContext()
	if err != nil {
		return err
	}
	if ctx.Store().Exists() {
		ctrl, err := ctx.OpenEditor()
		if err == nil {
			current = ctrl.Document().Template
			ctrl.Close()
		}
	}

	var infos []templateInfo
	for _, t := range templates.All() {
		info := templateInfo{
			ID:          string(t.ID),
			Name:        t.Name,
			Description: t.Description,
			Current:     t.ID == current,
		}
		if t.HasSummary {
			info.Sections = append(info.Sections, "summary")
		}
		for _, s := range t.Sections {
			info.Sections = append(info.Sections, string(s))
		}
		infos = append(infos, info)
	}

	if outputFormat != string(cli.FormatText) {
		return cli.OutputResults(cmd.OutOrStdout(), outputFormat, infos)
	}

	table := cli.NewTableFormatter(cmd.OutOrStdout())
	table.Header("ID", "NAME", "DESCRIPTION")
	for _, info := range infos {
		id := info.ID
		if info.Current {
			id += " *"
		}
		table.Row(id, info.Name, info.Description)
	}
	table.Flush()
	return nil
}

// NewTemplateCommand creates the template command
func NewTemplateCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "template <classic|modern|minimalist|elite>",
		Short: "Switch the CV to another template",
		Long: `Switch the CV to another template.

Switching replaces the content with the new template's starting content.
Your name, title and contact details are kept. You are asked to confirm
unless --yes is given.

Examples:
  # Use the elite layout
  cvbuilder template elite

  # Switch without asking
  cvbuilder template modern --yes`,
		Args:    cobra.ExactArgs(1),
		PreRunE: requireProject,
		RunE:    runTemplate,
	}

	return cmd
}

func runTemplate(cmd *cobra.Command, args []string) error {
	if err := cli.ValidateTemplate(args[0]); err != nil {
		return err
	}
	id := models.ParseTemplateID(args[0])

	ctrl, err := openEditor()
	if err != nil {
		return err
	}
	defer ctrl.Close()

	if ctrl.Document().Template == id {
		cli.PrintInfo("CV already uses the %s template", id)
		return nil
	}

	outcome, err := ctrl.Execute(editor.SelectTemplate(id))
	if err != nil {
		return err
	}
	if outcome == editor.Declined {
		cli.PrintInfo("Template unchanged")
		return nil
	}
	return cli.SaveEditor(ctrl)
}

// saveIfChanged saves after an applied intent and reports a NoOp
func saveIfChanged(ctrl *editor.Controller, outcome editor.Outcome, what string) error {
	if outcome == editor.NoOp {
		cli.PrintInfo("%s unchanged", what)
		return nil
	}
	return cli.SaveEditor(ctrl)
}
