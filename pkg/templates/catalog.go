// Package templates holds the fixed catalog of CV layouts and the sample
// content each layout starts with.
package templates

import (
	"github.com/google/uuid"

	"github.com/pluqqy/cvbuilder/pkg/models"
)

// Template describes a layout: which sections it shows and how skills render
type Template struct {
	ID          models.TemplateID
	Name        string
	Description string
	// SkillLevels is set when the layout draws a proficiency bar per skill
	SkillLevels bool
	// SkillGroups is set when skills are rendered as tags under categories
	SkillGroups bool
	HasSummary  bool
	Sections    []models.Section
}

var catalog = []Template{
	{
		ID:          models.TemplateClassic,
		Name:        "Classic",
		Description: "Traditional single column with a timeline and skill bars",
		SkillLevels: true,
		HasSummary:  true,
		Sections:    []models.Section{models.SectionExperience, models.SectionEducation, models.SectionSkill},
	},
	{
		ID:          models.TemplateModern,
		Name:        "Modern",
		Description: "Sidebar with contact details and skills next to the main column",
		HasSummary:  true,
		Sections:    []models.Section{models.SectionExperience, models.SectionEducation, models.SectionSkill},
	},
	{
		ID:          models.TemplateMinimalist,
		Name:        "Minimalist",
		Description: "Compact layout with inline contact line and inline skills",
		HasSummary:  true,
		Sections:    []models.Section{models.SectionExperience, models.SectionEducation, models.SectionSkill},
	},
	{
		ID:          models.TemplateElite,
		Name:        "Elite",
		Description: "Executive layout with accent timeline and grouped skill tags",
		SkillGroups: true,
		HasSummary:  true,
		Sections:    []models.Section{models.SectionExperience, models.SectionEducation, models.SectionSkill},
	},
}

// List returns the template ids in display order
func List() []models.TemplateID {
	ids := make([]models.TemplateID, len(catalog))
	for i, t := range catalog {
		ids[i] = t.ID
	}
	return ids
}

// All returns every template in display order
func All() []Template {
	return append([]Template(nil), catalog...)
}

// Get returns the template for id; unknown ids resolve to classic
func Get(id models.TemplateID) Template {
	id = models.ParseTemplateID(string(id))
	for _, t := range catalog {
		if t.ID == id {
			return t
		}
	}
	return catalog[0]
}

// HasSection reports whether the layout shows a section
func (t Template) HasSection(s models.Section) bool {
	for _, sec := range t.Sections {
		if sec == s {
			return true
		}
	}
	return false
}

// DefaultContent returns a fresh document filled with the layout's
// placeholder identity, summary, entries and skills. Every call returns new
// entry ids.
func DefaultContent(id models.TemplateID) models.Document {
	t := Get(id)
	doc := models.Document{
		Template:     t.ID,
		Presentation: models.DefaultPresentation(),
		Started:      true,
	}

	switch t.ID {
	case models.TemplateModern:
		doc.Identity = placeholderIdentity("email@example.com", "linkedin.com/in/you")
		doc.Summary = modernSummary
		doc.Experience = []models.Entry{
			entry("Senior Software Engineer", "Tech Company Inc.", "2020 - Present", modernExperience),
		}
		doc.Education = []models.Entry{
			entry("Bachelor of Science in Computer Science", "University Name", "2013 - 2017", ""),
		}
		doc.Skills = unrated("JavaScript/TypeScript", "React & Node.js", "Python & Django", "Cloud (AWS/Azure)", "DevOps & CI/CD")

	case models.TemplateMinimalist:
		doc.Identity = placeholderIdentity("email@example.com", "linkedin.com/in/you")
		doc.Summary = minimalistSummary
		doc.Experience = []models.Entry{
			entry("Senior Software Engineer", "Tech Company Inc. • City", "2020 - Present", minimalistExperience),
		}
		doc.Education = []models.Entry{
			entry("Bachelor of Science in Computer Science", "University Name", "2013 - 2017", ""),
		}
		doc.Skills = unrated("JavaScript/TypeScript", "React & Node.js", "Python", "Cloud (AWS)", "DevOps")

	case models.TemplateElite:
		doc.Identity = placeholderIdentity("email@example.com", "linkedin.com/in/yourprofile")
		doc.Summary = eliteSummary
		doc.Experience = []models.Entry{
			entry("Senior Software Engineer", "Tech Company Inc. • San Francisco, CA", "2020 - Present", eliteExperience),
		}
		doc.Education = []models.Entry{
			entry("Bachelor of Science in Computer Science", "University Name", "2013 - 2017", "Graduated with Honors"),
		}
		doc.Skills = append(
			grouped("Technical Skills", "JavaScript/TypeScript", "React & Node.js", "Python & Django", "Cloud (AWS/Azure)"),
			grouped("Soft Skills", "Leadership", "Communication", "Project Management", "Strategic Planning")...,
		)

	default:
		doc.Identity = placeholderIdentity("your.email@example.com", "linkedin.com/in/yourprofile")
		doc.Summary = classicSummary
		doc.Experience = []models.Entry{
			entry("Senior Software Engineer", "Tech Company Inc. • San Francisco, CA", "2020 - Present", classicExperience1),
			entry("Software Engineer", "Digital Solutions Ltd. • New York, NY", "2017 - 2020", classicExperience2),
		}
		doc.Education = []models.Entry{
			entry("Bachelor of Science in Computer Science", "University Name • City, State", "2013 - 2017", classicEducation),
		}
		doc.Skills = []models.Skill{
			rated("JavaScript/TypeScript", 90),
			rated("React & Node.js", 85),
			rated("Python & Django", 80),
			rated("Cloud (AWS/Azure)", 75),
			rated("DevOps & CI/CD", 70),
		}
	}

	return doc
}

// NewEntry returns the placeholder entry appended by "add experience" or
// "add education" for a layout.
func NewEntry(id models.TemplateID, section models.Section) models.Entry {
	elite := Get(id).ID == models.TemplateElite
	switch section {
	case models.SectionEducation:
		e := entry("Degree", "Institution Name", "Year - Year", "")
		if elite {
			e.Description = "Honors/Awards"
		}
		return e
	default:
		return entry("Job Title", "Company Name • Location", "Year - Year", "Describe your responsibilities and achievements...")
	}
}

// NewSkill returns the placeholder skill appended by "add skill"
func NewSkill(id models.TemplateID) models.Skill {
	t := Get(id)
	s := models.Skill{ID: uuid.NewString(), Name: "New Skill", Level: 70, Rated: t.SkillLevels}
	if t.SkillGroups {
		s.Group = "Technical Skills"
	}
	return s
}

func placeholderIdentity(email, linkedin string) models.Identity {
	return models.Identity{
		Name:     "Your Full Name",
		Title:    "Your Professional Title",
		Email:    email,
		Phone:    "+1 (555) 123-4567",
		Location: "City, Country",
		LinkedIn: linkedin,
	}
}

func entry(title, subtitle, dates, description string) models.Entry {
	return models.Entry{
		ID:          uuid.NewString(),
		Title:       title,
		Subtitle:    subtitle,
		DateRange:   dates,
		Description: description,
	}
}

func rated(name string, level int) models.Skill {
	return models.Skill{ID: uuid.NewString(), Name: name, Level: level, Rated: true}
}

func unrated(names ...string) []models.Skill {
	skills := make([]models.Skill, len(names))
	for i, n := range names {
		skills[i] = models.Skill{ID: uuid.NewString(), Name: n}
	}
	return skills
}

func grouped(group string, names ...string) []models.Skill {
	skills := unrated(names...)
	for i := range skills {
		skills[i].Group = group
	}
	return skills
}
