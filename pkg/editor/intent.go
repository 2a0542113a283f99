package editor

import (
	"errors"
	"fmt"

	"github.com/pluqqy/cvbuilder/pkg/models"
)

// ErrUnknownIntent is returned for an intent kind the controller does not handle
var ErrUnknownIntent = errors.New("unknown intent")

// IntentKind enumerates every user action the controller accepts
type IntentKind int

const (
	IntentSelectTemplate IntentKind = iota
	IntentEditIdentityField
	IntentEditFreeText
	IntentAppendEntry
	IntentChangeColor
	IntentChangeFontSize
	IntentCaptureView
	IntentSave
	IntentLoad
	IntentReset
	IntentUndo
	IntentRedo
	IntentExportPrintable
)

var intentNames = map[IntentKind]string{
	IntentSelectTemplate:    "selectTemplate",
	IntentEditIdentityField: "editIdentityField",
	IntentEditFreeText:      "editFreeText",
	IntentAppendEntry:       "appendEntry",
	IntentChangeColor:       "changeColor",
	IntentChangeFontSize:    "changeFontSize",
	IntentCaptureView:       "captureView",
	IntentSave:              "save",
	IntentLoad:              "load",
	IntentReset:             "reset",
	IntentUndo:              "undo",
	IntentRedo:              "redo",
	IntentExportPrintable:   "exportPrintable",
}

func (k IntentKind) String() string {
	if name, ok := intentNames[k]; ok {
		return name
	}
	return fmt.Sprintf("intent(%d)", int(k))
}

// ExportFormat selects what ExportPrintable produces
type ExportFormat string

const (
	ExportHTML ExportFormat = "html"
	ExportPDF  ExportFormat = "pdf"
)

// Intent is one user action. Only the fields relevant to Kind are read.
type Intent struct {
	Kind IntentKind

	Template models.TemplateID
	Field    string
	Ref      models.SectionRef
	Value    string
	Section  models.Section
	FontSize int
	// HTML is an edited page for CaptureView
	HTML string

	Format ExportFormat
	// Path overrides the export destination
	Path string
}

// SelectTemplate switches layout
func SelectTemplate(id models.TemplateID) Intent {
	return Intent{Kind: IntentSelectTemplate, Template: id}
}

// EditIdentityField sets name, title, email, phone, location or linkedin
func EditIdentityField(field, value string) Intent {
	return Intent{Kind: IntentEditIdentityField, Field: field, Value: value}
}

// EditFreeText sets the summary or a field of an entry
func EditFreeText(ref models.SectionRef, value string) Intent {
	return Intent{Kind: IntentEditFreeText, Ref: ref, Value: value}
}

// AppendEntry adds a placeholder entry to section
func AppendEntry(section models.Section) Intent {
	return Intent{Kind: IntentAppendEntry, Section: section}
}

// ChangeColor sets the accent color
func ChangeColor(hex string) Intent {
	return Intent{Kind: IntentChangeColor, Value: hex}
}

// ChangeFontSize sets the base font size; out of range values are clamped
func ChangeFontSize(px int) Intent {
	return Intent{Kind: IntentChangeFontSize, FontSize: px}
}

// CaptureView reads in-place edits back from an edited page
func CaptureView(html string) Intent {
	return Intent{Kind: IntentCaptureView, HTML: html}
}

// Save persists the document
func Save() Intent { return Intent{Kind: IntentSave} }

// Load replaces the document with the saved one
func Load() Intent { return Intent{Kind: IntentLoad} }

// Reset restores the default document and clears the saved slot
func Reset() Intent { return Intent{Kind: IntentReset} }

// Undo steps back one snapshot
func Undo() Intent { return Intent{Kind: IntentUndo} }

// Redo steps forward one snapshot
func Redo() Intent { return Intent{Kind: IntentRedo} }

// ExportPrintable writes the rendered page, or a PDF of it, to path.
// An empty path uses the configured export location.
func ExportPrintable(format ExportFormat, path string) Intent {
	return Intent{Kind: IntentExportPrintable, Format: format, Path: path}
}

// Outcome reports what an intent did
type Outcome int

const (
	// Applied means the intent changed something or completed its side effect
	Applied Outcome = iota
	// NoOp means nothing happened, e.g. undo with nothing to undo
	NoOp
	// Declined means the user refused a confirmation; nothing changed
	Declined
	// Failed means the intent was attempted and reported an error
	Failed
)

func (o Outcome) String() string {
	switch o {
	case Applied:
		return "applied"
	case NoOp:
		return "no-op"
	case Declined:
		return "declined"
	case Failed:
		return "failed"
	}
	return "unknown"
}
