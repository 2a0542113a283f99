package testhelpers

import (
	"github.com/pluqqy/cvbuilder/pkg/models"
	"github.com/pluqqy/cvbuilder/pkg/templates"
)

// DocumentBuilder assembles documents for tests, starting from a
// template's default content
type DocumentBuilder struct {
	doc models.Document
}

// NewDocumentBuilder starts from the template's default content
func NewDocumentBuilder(id models.TemplateID) *DocumentBuilder {
	return &DocumentBuilder{doc: templates.DefaultContent(id)}
}

// WithIdentity sets name and title
func (b *DocumentBuilder) WithIdentity(name, title string) *DocumentBuilder {
	b.doc.Identity.Name = name
	b.doc.Identity.Title = title
	return b
}

// WithSummary sets the summary
func (b *DocumentBuilder) WithSummary(summary string) *DocumentBuilder {
	b.doc.Summary = summary
	return b
}

// WithExperience appends an experience entry
func (b *DocumentBuilder) WithExperience(title, company, dates string) *DocumentBuilder {
	e := templates.NewEntry(b.doc.Template, models.SectionExperience)
	e.Title, e.Subtitle, e.DateRange = title, company, dates
	b.doc.Experience = append(b.doc.Experience, e)
	return b
}

// WithoutEntries clears experience, education and skills
func (b *DocumentBuilder) WithoutEntries() *DocumentBuilder {
	b.doc.Experience = nil
	b.doc.Education = nil
	b.doc.Skills = nil
	return b
}

// WithPresentation sets the accent color and font size
func (b *DocumentBuilder) WithPresentation(color string, fontSize int) *DocumentBuilder {
	b.doc.Presentation = models.Presentation{AccentColor: color, FontSizePx: fontSize}
	return b
}

// Build returns a copy of the document
func (b *DocumentBuilder) Build() *models.Document {
	return b.doc.Clone()
}
