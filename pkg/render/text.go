package render

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/wordwrap"

	"github.com/pluqqy/cvbuilder/pkg/models"
	"github.com/pluqqy/cvbuilder/pkg/templates"
)

// RenderText lays a document out for a terminal preview of the given width.
// The accent color styles headings the way it styles the HTML page.
func RenderText(doc *models.Document, width int) string {
	if width < 20 {
		width = 20
	}
	accent := lipgloss.Color(doc.Presentation.AccentColor)
	nameStyle := lipgloss.NewStyle().Bold(true).Foreground(accent)
	headingStyle := lipgloss.NewStyle().Bold(true).Foreground(accent).Underline(true)
	mutedStyle := lipgloss.NewStyle().Faint(true)

	tmpl := templates.Get(doc.Template)
	var b strings.Builder

	b.WriteString(nameStyle.Render(doc.Identity.Name))
	b.WriteString("\n")
	b.WriteString(doc.Identity.Title)
	b.WriteString("\n")
	var contact []string
	for _, v := range []string{doc.Identity.Email, doc.Identity.Phone, doc.Identity.Location, doc.Identity.LinkedIn} {
		if strings.TrimSpace(v) != "" {
			contact = append(contact, v)
		}
	}
	b.WriteString(mutedStyle.Render(wordwrap.String(strings.Join(contact, " | "), width)))
	b.WriteString("\n")

	if tmpl.HasSummary {
		b.WriteString("\n" + headingStyle.Render("Summary") + "\n")
		b.WriteString(wordwrap.String(doc.Summary, width) + "\n")
	}

	writeEntries := func(heading string, entries []models.Entry) {
		b.WriteString("\n" + headingStyle.Render(heading) + "\n")
		for _, e := range entries {
			b.WriteString(lipgloss.NewStyle().Bold(true).Render(e.Title))
			if e.DateRange != "" {
				b.WriteString("  " + mutedStyle.Render(e.DateRange))
			}
			b.WriteString("\n")
			if e.Subtitle != "" {
				b.WriteString(e.Subtitle + "\n")
			}
			if e.Description != "" {
				b.WriteString(wordwrap.String(e.Description, width) + "\n")
			}
		}
	}
	if tmpl.HasSection(models.SectionExperience) {
		writeEntries("Experience", doc.Experience)
	}
	if tmpl.HasSection(models.SectionEducation) {
		writeEntries("Education", doc.Education)
	}

	if tmpl.HasSection(models.SectionSkill) {
		b.WriteString("\n" + headingStyle.Render("Skills") + "\n")
		switch {
		case tmpl.SkillGroups:
			for _, g := range groupSkills(doc.Skills) {
				names := make([]string, len(g.Skills))
				for i, s := range g.Skills {
					names[i] = s.Name
				}
				b.WriteString(wordwrap.String(g.Name+": "+strings.Join(names, ", "), width) + "\n")
			}
		case tmpl.SkillLevels:
			for _, s := range doc.Skills {
				b.WriteString(fmt.Sprintf("%-24s %s\n", s.Name, levelBar(s, accent)))
			}
		default:
			names := make([]string, len(doc.Skills))
			for i, s := range doc.Skills {
				names[i] = s.Name
			}
			b.WriteString(wordwrap.String(strings.Join(names, " • "), width) + "\n")
		}
	}

	return b.String()
}

func levelBar(s models.Skill, accent lipgloss.Color) string {
	if !s.Rated {
		return ""
	}
	filled := s.Level / 10
	return lipgloss.NewStyle().Foreground(accent).Render(strings.Repeat("█", filled)) +
		strings.Repeat("░", 10-filled) + fmt.Sprintf(" %d%%", s.Level)
}
