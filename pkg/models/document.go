package models

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

var validate = validator.New()

// SetIdentityField sets one identity field. Any string is accepted.
func (d *Document) SetIdentityField(field, value string) error {
	return d.Identity.Set(field, value)
}

// SetTemplate switches layout and replaces the content with the layout's
// defaults. This discards the current content; callers confirm first.
// Identity placeholders are only taken from defaults for a fresh document.
func (d *Document) SetTemplate(id TemplateID, defaults Document) {
	d.Template = ParseTemplateID(string(id))
	d.Content = defaults.Content.Clone()
	if !d.Started {
		d.Identity = defaults.Identity
	}
	d.Started = true
}

// AppendEntry adds an entry to the end of an experience or education list
// and returns its position.
func (d *Document) AppendEntry(section Section, e Entry) (int, error) {
	switch section {
	case SectionExperience:
		d.Experience = append(d.Experience, e)
		return len(d.Experience) - 1, nil
	case SectionEducation:
		d.Education = append(d.Education, e)
		return len(d.Education) - 1, nil
	}
	return -1, fmt.Errorf("%w: %s", ErrUnknownSection, section)
}

// AppendSkill adds a skill to the end of the skill list and returns its position
func (d *Document) AppendSkill(s Skill) int {
	d.Skills = append(d.Skills, s)
	return len(d.Skills) - 1
}

// FontBounds limits the font size a document may carry
type FontBounds struct {
	Min int
	Max int
}

// DefaultFontBounds returns the built-in font size range
func DefaultFontBounds() FontBounds {
	return FontBounds{Min: MinFontSizePx, Max: MaxFontSizePx}
}

// Clamp forces px into the bounds
func (b FontBounds) Clamp(px int) int {
	lo, hi := b.Min, b.Max
	if lo <= 0 {
		lo = MinFontSizePx
	}
	if hi < lo {
		hi = lo
	}
	if px < lo {
		return lo
	}
	if px > hi {
		return hi
	}
	return px
}

// SetPresentation updates color and/or font size. A nil argument leaves the
// value untouched. Colors must be hex; font sizes are clamped.
func (d *Document) SetPresentation(color *string, fontSizePx *int, bounds FontBounds) error {
	if color != nil {
		c := NormalizeColor(*color)
		if err := validate.Var(c, "required,hexcolor"); err != nil {
			return fmt.Errorf("%w: %q", ErrInvalidColor, *color)
		}
		d.Presentation.AccentColor = c
	}
	if fontSizePx != nil {
		d.Presentation.FontSizePx = bounds.Clamp(*fontSizePx)
	}
	return nil
}

// NormalizeColor trims a color and adds the leading '#' when missing
func NormalizeColor(c string) string {
	c = strings.TrimSpace(c)
	if c != "" && !strings.HasPrefix(c, "#") {
		c = "#" + c
	}
	return c
}

// SectionRef addresses a free-text value inside a document, e.g.
// "summary", "experience[0].title" or "skills[2].level".
type SectionRef struct {
	Section Section
	Index   int
	Field   string
}

func (r SectionRef) String() string {
	if r.Section == "" {
		return "summary"
	}
	name := string(r.Section)
	if r.Section == SectionSkill {
		name = "skills"
	}
	return fmt.Sprintf("%s[%d].%s", name, r.Index, r.Field)
}

// IsSummary reports whether the reference points at the summary block
func (r SectionRef) IsSummary() bool {
	return r.Section == ""
}

var sectionRefPattern = regexp.MustCompile(`^([a-z]+)\[(\d+)\]\.([a-z_]+)$`)

var entryFields = map[string]string{
	"title":       "title",
	"subtitle":    "subtitle",
	"company":     "subtitle",
	"institution": "subtitle",
	"date":        "date",
	"daterange":   "date",
	"date_range":  "date",
	"description": "description",
}

var skillFields = map[string]string{
	"name":  "name",
	"level": "level",
	"group": "group",
}

// ParseSectionRef parses a free-text reference
func ParseSectionRef(s string) (SectionRef, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "summary" {
		return SectionRef{}, nil
	}
	m := sectionRefPattern.FindStringSubmatch(s)
	if m == nil {
		return SectionRef{}, fmt.Errorf("%w: %s", ErrUnknownField, s)
	}
	section, err := ParseSection(m[1])
	if err != nil {
		return SectionRef{}, err
	}
	idx, _ := strconv.Atoi(m[2])
	fields := entryFields
	if section == SectionSkill {
		fields = skillFields
	}
	field, ok := fields[m[3]]
	if !ok {
		return SectionRef{}, fmt.Errorf("%w: %s", ErrUnknownField, s)
	}
	return SectionRef{Section: section, Index: idx, Field: field}, nil
}

// SetFreeText writes a value addressed by ref
func (d *Document) SetFreeText(ref SectionRef, value string) error {
	switch ref.Section {
	case "":
		d.Summary = value
		return nil
	case SectionExperience:
		return setEntryField(d.Experience, ref, value)
	case SectionEducation:
		return setEntryField(d.Education, ref, value)
	case SectionSkill:
		if ref.Index < 0 || ref.Index >= len(d.Skills) {
			return fmt.Errorf("%w: %s", ErrIndexRange, ref)
		}
		s := &d.Skills[ref.Index]
		switch ref.Field {
		case "name":
			s.Name = value
		case "group":
			s.Group = value
		case "level":
			lvl, err := strconv.Atoi(strings.TrimSuffix(strings.TrimSpace(value), "%"))
			if err != nil {
				return fmt.Errorf("invalid skill level %q: %w", value, err)
			}
			s.Level = clampLevel(lvl)
			s.Rated = true
		default:
			return fmt.Errorf("%w: %s", ErrUnknownField, ref)
		}
		return nil
	}
	return fmt.Errorf("%w: %s", ErrUnknownSection, ref.Section)
}

// FreeText reads the value addressed by ref
func (d *Document) FreeText(ref SectionRef) (string, error) {
	switch ref.Section {
	case "":
		return d.Summary, nil
	case SectionExperience, SectionEducation:
		list := d.Experience
		if ref.Section == SectionEducation {
			list = d.Education
		}
		if ref.Index < 0 || ref.Index >= len(list) {
			return "", fmt.Errorf("%w: %s", ErrIndexRange, ref)
		}
		e := list[ref.Index]
		switch ref.Field {
		case "title":
			return e.Title, nil
		case "subtitle":
			return e.Subtitle, nil
		case "date":
			return e.DateRange, nil
		case "description":
			return e.Description, nil
		}
	case SectionSkill:
		if ref.Index < 0 || ref.Index >= len(d.Skills) {
			return "", fmt.Errorf("%w: %s", ErrIndexRange, ref)
		}
		s := d.Skills[ref.Index]
		switch ref.Field {
		case "name":
			return s.Name, nil
		case "group":
			return s.Group, nil
		case "level":
			return strconv.Itoa(s.Level), nil
		}
	}
	return "", fmt.Errorf("%w: %s", ErrUnknownField, ref)
}

func setEntryField(list []Entry, ref SectionRef, value string) error {
	if ref.Index < 0 || ref.Index >= len(list) {
		return fmt.Errorf("%w: %s", ErrIndexRange, ref)
	}
	e := &list[ref.Index]
	switch ref.Field {
	case "title":
		e.Title = value
	case "subtitle":
		e.Subtitle = value
	case "date":
		e.DateRange = value
	case "description":
		e.Description = value
	default:
		return fmt.Errorf("%w: %s", ErrUnknownField, ref)
	}
	return nil
}

func clampLevel(lvl int) int {
	if lvl < 0 {
		return 0
	}
	if lvl > 100 {
		return 100
	}
	return lvl
}

// ApplyContent replaces the free-text content
func (d *Document) ApplyContent(c Content) {
	d.Content = c.Clone()
}

// ApplyEdits merges edits captured from a rendered view. Entries match by
// id, or by position when the view has no ids; unmatched ones are
// appended. Entries and fields missing from the view are kept.
func (d *Document) ApplyEdits(e ViewEdits) error {
	for _, field := range IdentityFields {
		if v, ok := e.Identity[field]; ok {
			if err := d.Identity.Set(field, v); err != nil {
				return err
			}
		}
	}
	if e.Summary != nil {
		d.Summary = *e.Summary
	}
	d.Experience = mergeEntries(d.Experience, e.Experience)
	d.Education = mergeEntries(d.Education, e.Education)
	d.Skills = mergeSkills(d.Skills, e.Skills)
	return nil
}

func mergeEntries(list []Entry, edits []EntryEdit) []Entry {
	for i, ed := range edits {
		idx := matchIndex(len(list), i, ed.ID, func(j int) string { return list[j].ID })
		if idx < 0 {
			list = append(list, Entry{ID: newID(ed.ID)})
			idx = len(list) - 1
		}
		e := &list[idx]
		setIf(&e.Title, ed.Title)
		setIf(&e.Subtitle, ed.Subtitle)
		setIf(&e.DateRange, ed.DateRange)
		setIf(&e.Description, ed.Description)
	}
	return list
}

func mergeSkills(list []Skill, edits []SkillEdit) []Skill {
	for i, ed := range edits {
		idx := matchIndex(len(list), i, ed.ID, func(j int) string { return list[j].ID })
		if idx < 0 {
			list = append(list, Skill{ID: newID(ed.ID)})
			idx = len(list) - 1
		}
		s := &list[idx]
		setIf(&s.Name, ed.Name)
		setIf(&s.Group, ed.Group)
		if ed.Level != nil {
			s.Level = clampLevel(*ed.Level)
			s.Rated = ed.Rated
		}
	}
	return list
}

// matchIndex finds the item an edit applies to, or -1
func matchIndex(n, pos int, id string, idAt func(int) string) int {
	if id == "" {
		if pos < n {
			return pos
		}
		return -1
	}
	for j := 0; j < n; j++ {
		if idAt(j) == id {
			return j
		}
	}
	return -1
}

func newID(id string) string {
	if id == "" {
		return uuid.NewString()
	}
	return id
}

func setIf(dst *string, v *string) {
	if v != nil {
		*dst = *v
	}
}

// Validate checks the presentation values carried by a document
func (d *Document) Validate() error {
	if err := validate.Struct(d.Presentation); err != nil {
		return fmt.Errorf("invalid presentation: %w", err)
	}
	return nil
}
