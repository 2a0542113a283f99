package models

import (
	"errors"
	"fmt"
	"strings"
)

// TemplateID names one of the fixed CV layouts
type TemplateID string

const (
	TemplateClassic    TemplateID = "classic"
	TemplateModern     TemplateID = "modern"
	TemplateMinimalist TemplateID = "minimalist"
	TemplateElite      TemplateID = "elite"
)

// DefaultTemplate is used whenever a template id is unknown
const DefaultTemplate = TemplateClassic

// ParseTemplateID normalizes a template name, falling back to classic
func ParseTemplateID(s string) TemplateID {
	switch id := TemplateID(strings.ToLower(strings.TrimSpace(s))); id {
	case TemplateClassic, TemplateModern, TemplateMinimalist, TemplateElite:
		return id
	default:
		return DefaultTemplate
	}
}

// IsKnownTemplate reports whether s names a template without falling back
func IsKnownTemplate(s string) bool {
	id := TemplateID(strings.ToLower(strings.TrimSpace(s)))
	return ParseTemplateID(s) == id
}

// Section identifies a repeatable entry list
type Section string

const (
	SectionExperience Section = "experience"
	SectionEducation  Section = "education"
	SectionSkill      Section = "skill"
)

// ParseSection accepts singular and plural section names
func ParseSection(s string) (Section, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "experience", "experiences", "work":
		return SectionExperience, nil
	case "education", "educations":
		return SectionEducation, nil
	case "skill", "skills":
		return SectionSkill, nil
	}
	return "", fmt.Errorf("%w: %s (must be: experience, education, or skill)", ErrUnknownSection, s)
}

var (
	ErrUnknownField   = errors.New("unknown field")
	ErrUnknownSection = errors.New("unknown section")
	ErrIndexRange     = errors.New("entry index out of range")
	ErrInvalidColor   = errors.New("invalid accent color")
)

// Identity holds the contact fields shown in a CV header
type Identity struct {
	Name     string `json:"name" yaml:"name"`
	Title    string `json:"title" yaml:"title"`
	Email    string `json:"email" yaml:"email"`
	Phone    string `json:"phone" yaml:"phone"`
	Location string `json:"location" yaml:"location"`
	LinkedIn string `json:"linkedin" yaml:"linkedin"`
}

// IdentityFields lists the editable identity field names in display order
var IdentityFields = []string{"name", "title", "email", "phone", "location", "linkedin"}

// Get returns the value of the named identity field
func (i Identity) Get(field string) (string, error) {
	switch strings.ToLower(field) {
	case "name":
		return i.Name, nil
	case "title":
		return i.Title, nil
	case "email":
		return i.Email, nil
	case "phone":
		return i.Phone, nil
	case "location":
		return i.Location, nil
	case "linkedin":
		return i.LinkedIn, nil
	}
	return "", fmt.Errorf("%w: %s", ErrUnknownField, field)
}

// Set writes the named identity field
func (i *Identity) Set(field, value string) error {
	switch strings.ToLower(field) {
	case "name":
		i.Name = value
	case "title":
		i.Title = value
	case "email":
		i.Email = value
	case "phone":
		i.Phone = value
	case "location":
		i.Location = value
	case "linkedin":
		i.LinkedIn = value
	default:
		return fmt.Errorf("%w: %s", ErrUnknownField, field)
	}
	return nil
}

// Entry is one experience or education item
type Entry struct {
	ID          string `json:"id" yaml:"id"`
	Title       string `json:"title" yaml:"title"`
	Subtitle    string `json:"subtitle" yaml:"subtitle"`
	DateRange   string `json:"dateRange" yaml:"date_range"`
	Description string `json:"description" yaml:"description"`
}

// Skill is one skill item. Level is only meaningful when Rated is set.
type Skill struct {
	ID    string `json:"id" yaml:"id"`
	Name  string `json:"name" yaml:"name"`
	Level int    `json:"level" yaml:"level"`
	Rated bool   `json:"rated" yaml:"rated"`
	Group string `json:"group,omitempty" yaml:"group,omitempty"`
}

// Presentation holds the visual settings applied to the rendered CV
type Presentation struct {
	AccentColor string `json:"color" yaml:"color" validate:"required,hexcolor"`
	FontSizePx  int    `json:"fontSize" yaml:"font_size" validate:"min=1"`
}

const (
	DefaultAccentColor = "#4F46E5"
	DefaultFontSizePx  = 14
	MinFontSizePx      = 8
	MaxFontSizePx      = 32
)

// DefaultPresentation returns the initial color and font size
func DefaultPresentation() Presentation {
	return Presentation{AccentColor: DefaultAccentColor, FontSizePx: DefaultFontSizePx}
}

// Content is the free-text part of a document: everything a template
// switch replaces and a rendered view can report back.
type Content struct {
	Summary    string  `json:"summary" yaml:"summary"`
	Experience []Entry `json:"experience" yaml:"experience"`
	Education  []Entry `json:"education" yaml:"education"`
	Skills     []Skill `json:"skills" yaml:"skills"`
}

// Document is the single authoritative editable CV
type Document struct {
	Template     TemplateID   `json:"template" yaml:"template"`
	Identity     Identity     `json:"identity" yaml:"identity"`
	Content      `yaml:",inline"`
	Presentation Presentation `json:"presentation" yaml:"presentation"`
	Started      bool         `json:"-" yaml:"-"`
}

// NewDocument returns the empty document that exists before a template is picked
func NewDocument() *Document {
	return &Document{
		Template:     DefaultTemplate,
		Presentation: DefaultPresentation(),
	}
}

// Clone returns a deep copy of the document
func (d *Document) Clone() *Document {
	c := *d
	c.Content = d.Content.Clone()
	return &c
}

// Clone returns a deep copy of the content
func (c Content) Clone() Content {
	return Content{
		Summary:    c.Summary,
		Experience: append([]Entry(nil), c.Experience...),
		Education:  append([]Entry(nil), c.Education...),
		Skills:     append([]Skill(nil), c.Skills...),
	}
}
