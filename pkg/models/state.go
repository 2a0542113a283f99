package models

import "slices"

// EditorState is an immutable capture of everything undo/redo restores:
// template, identity, free-text content and presentation.
type EditorState struct {
	Template     TemplateID
	Identity     Identity
	Content      Content
	Presentation Presentation
}

// State captures the document as an EditorState
func (d *Document) State() EditorState {
	return EditorState{
		Template:     d.Template,
		Identity:     d.Identity,
		Content:      d.Content.Clone(),
		Presentation: d.Presentation,
	}
}

// Restore overwrites the document with a captured state
func (d *Document) Restore(s EditorState) {
	d.Template = ParseTemplateID(string(s.Template))
	d.Identity = s.Identity
	d.Content = s.Content.Clone()
	d.Presentation = s.Presentation
	d.Started = true
}

// Equal compares two states field by field, including every entry
func (s EditorState) Equal(o EditorState) bool {
	return s.Template == o.Template &&
		s.Identity == o.Identity &&
		s.Presentation == o.Presentation &&
		s.Content.Summary == o.Content.Summary &&
		slices.Equal(s.Content.Experience, o.Content.Experience) &&
		slices.Equal(s.Content.Education, o.Content.Education) &&
		slices.Equal(s.Content.Skills, o.Content.Skills)
}

// ViewEdits is what a rendered view reports back after the user edited it
// in place. Only what the view shows is set: Summary is nil when the page
// has no summary element and Identity holds just the fields found.
type ViewEdits struct {
	Identity   map[string]string
	Summary    *string
	Experience []EntryEdit
	Education  []EntryEdit
	Skills     []SkillEdit
}

// EntryEdit is one experience or education item found in a view. ID is
// empty when the markup carries no entry ids; nil fields were not shown.
type EntryEdit struct {
	ID          string
	Title       *string
	Subtitle    *string
	DateRange   *string
	Description *string
}

// SkillEdit is one skill found in a view. Rated only counts when Level is set.
type SkillEdit struct {
	ID    string
	Name  *string
	Level *int
	Rated bool
	Group *string
}
