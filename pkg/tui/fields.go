package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/pluqqy/cvbuilder/pkg/editor"
	"github.com/pluqqy/cvbuilder/pkg/models"
	"github.com/pluqqy/cvbuilder/pkg/templates"
)

// fieldRow is one editable value in the field list
type fieldRow struct {
	Group     string
	Label     string
	Value     string
	Multiline bool
	Section   models.Section // section an append from this row extends

	identity string
	ref      models.SectionRef
}

// Intent returns the intent that writes value into the row's field
func (r fieldRow) Intent(value string) editor.Intent {
	if r.identity != "" {
		return editor.EditIdentityField(r.identity, value)
	}
	return editor.EditFreeText(r.ref, value)
}

// Key identifies the row across rebuilds
func (r fieldRow) Key() string {
	if r.identity != "" {
		return r.identity
	}
	return r.ref.String()
}

var identityLabels = map[string]string{
	"name":     "Name",
	"title":    "Title",
	"email":    "Email",
	"phone":    "Phone",
	"location": "Location",
	"linkedin": "LinkedIn",
}

// buildRows lists every field the document's template shows, in display order
func buildRows(doc *models.Document) []fieldRow {
	tmpl := templates.Get(doc.Template)
	var rows []fieldRow

	for _, f := range models.IdentityFields {
		v, _ := doc.Identity.Get(f)
		rows = append(rows, fieldRow{Group: "Contact", Label: identityLabels[f], Value: v, identity: f, Section: models.SectionExperience})
	}
	if tmpl.HasSummary {
		rows = append(rows, fieldRow{Group: "Summary", Label: "Summary", Value: doc.Summary, Multiline: true, Section: models.SectionExperience})
	}

	for _, section := range tmpl.Sections {
		switch section {
		case models.SectionExperience, models.SectionEducation:
			list := doc.Experience
			subtitle := "Company"
			if section == models.SectionEducation {
				list = doc.Education
				subtitle = "Institution"
			}
			for i, e := range list {
				group := fmt.Sprintf("%s %d", sectionTitle(section), i+1)
				entry := func(label, field, value string, multiline bool) fieldRow {
					return fieldRow{
						Group: group, Label: label, Value: value, Multiline: multiline, Section: section,
						ref: models.SectionRef{Section: section, Index: i, Field: field},
					}
				}
				rows = append(rows,
					entry("Title", "title", e.Title, false),
					entry(subtitle, "subtitle", e.Subtitle, false),
					entry("Dates", "date", e.DateRange, false),
					entry("Description", "description", e.Description, true),
				)
			}
		case models.SectionSkill:
			for i, s := range doc.Skills {
				group := fmt.Sprintf("Skill %d", i+1)
				skill := func(label, field, value string) fieldRow {
					return fieldRow{
						Group: group, Label: label, Value: value, Section: section,
						ref: models.SectionRef{Section: section, Index: i, Field: field},
					}
				}
				rows = append(rows, skill("Name", "name", s.Name))
				if tmpl.SkillLevels {
					rows = append(rows, skill("Level", "level", strconv.Itoa(s.Level)))
				}
				if tmpl.SkillGroups {
					rows = append(rows, skill("Group", "group", s.Group))
				}
			}
		}
	}
	return rows
}

func sectionTitle(s models.Section) string {
	switch s {
	case models.SectionExperience:
		return "Experience"
	case models.SectionEducation:
		return "Education"
	}
	return "Skill"
}

// preview shortens a value to one line for the field list
func preview(value string, width int) string {
	line := strings.Join(strings.Fields(value), " ")
	if width > 1 && len([]rune(line)) > width {
		return string([]rune(line)[:width-1]) + "…"
	}
	return line
}
