package composer

import (
	"fmt"
	"strings"

	"github.com/pluqqy/cvbuilder/pkg/files"
	"github.com/pluqqy/cvbuilder/pkg/models"
	"github.com/pluqqy/cvbuilder/pkg/templates"
)

// ComposeMarkdown renders a document as Markdown, following the section
// order of its template. Skill groups become sub-lists for layouts that
// group skills.
func ComposeMarkdown(doc *models.Document) (string, error) {
	if doc == nil {
		return "", fmt.Errorf("cannot compose CV: nil document provided")
	}

	tmpl := templates.Get(doc.Template)
	var output strings.Builder

	output.WriteString(fmt.Sprintf("# %s\n\n", fallback(doc.Identity.Name, "Unnamed")))
	if doc.Identity.Title != "" {
		output.WriteString(fmt.Sprintf("**%s**\n\n", doc.Identity.Title))
	}

	var contact []string
	for _, v := range []string{doc.Identity.Email, doc.Identity.Phone, doc.Identity.Location, doc.Identity.LinkedIn} {
		if strings.TrimSpace(v) != "" {
			contact = append(contact, v)
		}
	}
	if len(contact) > 0 {
		output.WriteString(strings.Join(contact, " · "))
		output.WriteString("\n\n")
	}

	if tmpl.HasSummary && strings.TrimSpace(doc.Summary) != "" {
		output.WriteString("## Summary\n\n")
		output.WriteString(strings.TrimSpace(doc.Summary))
		output.WriteString("\n\n")
	}

	for _, section := range tmpl.Sections {
		switch section {
		case models.SectionExperience:
			writeEntries(&output, "Experience", doc.Experience)
		case models.SectionEducation:
			writeEntries(&output, "Education", doc.Education)
		case models.SectionSkill:
			writeSkills(&output, doc.Skills, tmpl)
		}
	}

	return strings.TrimRight(output.String(), "\n") + "\n", nil
}

func writeEntries(output *strings.Builder, heading string, entries []models.Entry) {
	if len(entries) == 0 {
		return
	}
	output.WriteString(fmt.Sprintf("## %s\n\n", heading))
	for i, e := range entries {
		output.WriteString(fmt.Sprintf("### %s\n\n", fallback(e.Title, "Untitled")))
		var meta []string
		if e.Subtitle != "" {
			meta = append(meta, e.Subtitle)
		}
		if e.DateRange != "" {
			meta = append(meta, e.DateRange)
		}
		if len(meta) > 0 {
			output.WriteString(fmt.Sprintf("*%s*\n\n", strings.Join(meta, " | ")))
		}
		if desc := strings.TrimSpace(e.Description); desc != "" {
			output.WriteString(desc)
			output.WriteString("\n\n")
		}

		// Add separator between entries of the same section
		if i < len(entries)-1 {
			output.WriteString("---\n\n")
		}
	}
}

func writeSkills(output *strings.Builder, skills []models.Skill, tmpl templates.Template) {
	if len(skills) == 0 {
		return
	}
	output.WriteString("## Skills\n\n")

	if tmpl.SkillGroups {
		var order []string
		groups := make(map[string][]string)
		for _, s := range skills {
			g := fallback(s.Group, "Skills")
			if _, exists := groups[g]; !exists {
				order = append(order, g)
			}
			groups[g] = append(groups[g], s.Name)
		}
		for _, g := range order {
			output.WriteString(fmt.Sprintf("- **%s**: %s\n", g, strings.Join(groups[g], ", ")))
		}
		output.WriteString("\n")
		return
	}

	for _, s := range skills {
		if tmpl.SkillLevels && s.Rated {
			output.WriteString(fmt.Sprintf("- %s (%d%%)\n", s.Name, s.Level))
			continue
		}
		output.WriteString(fmt.Sprintf("- %s\n", s.Name))
	}
	output.WriteString("\n")
}

func fallback(s, def string) string {
	if strings.TrimSpace(s) == "" {
		return def
	}
	return s
}

// WriteMarkdownFile writes the composed CV next to the other exports
func WriteMarkdownFile(content string, settings *models.Settings, outputPath string) (string, error) {
	if outputPath == "" {
		outputPath = files.ExportPath(settings, ".md")
	}

	if err := files.WriteFile(outputPath, []byte(content)); err != nil {
		return "", fmt.Errorf("failed to write Markdown export: %w", err)
	}

	return outputPath, nil
}
