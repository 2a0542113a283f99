package editor

import (
	"context"

	"github.com/pluqqy/cvbuilder/pkg/models"
)

// Renderer turns the document into a view and reads edits back from it.
// It only reads the document; edits flow back through CaptureEditedContent.
type Renderer interface {
	RenderTemplate(id models.TemplateID, doc *models.Document) (string, error)
	CaptureEditedContent(html string) (models.ViewEdits, error)
	ApplyPresentation(p models.Presentation) error
	// View returns the current rendered page
	View() string
}

// Severity classifies a user notification
type Severity int

const (
	SeveritySuccess Severity = iota
	SeverityInfo
	SeverityWarning
	SeverityError
)

func (s Severity) String() string {
	switch s {
	case SeveritySuccess:
		return "success"
	case SeverityInfo:
		return "info"
	case SeverityWarning:
		return "warning"
	case SeverityError:
		return "error"
	}
	return "unknown"
}

// Notifier shows short user-facing messages
type Notifier interface {
	Notify(message string, severity Severity, title string)
}

// NotifierFunc adapts a function to Notifier
type NotifierFunc func(message string, severity Severity, title string)

func (f NotifierFunc) Notify(message string, severity Severity, title string) {
	f(message, severity, title)
}

// Prompt describes a destructive action waiting for confirmation
type Prompt struct {
	Title   string
	Message string
}

// Confirmer asks the user to approve a destructive action. It blocks until
// the user answers; no other intent runs meanwhile.
type Confirmer interface {
	Confirm(p Prompt) bool
}

// ConfirmFunc adapts a function to Confirmer
type ConfirmFunc func(p Prompt) bool

func (f ConfirmFunc) Confirm(p Prompt) bool { return f(p) }

// AlwaysConfirm approves every prompt
var AlwaysConfirm = ConfirmFunc(func(Prompt) bool { return true })

// NeverConfirm declines every prompt
var NeverConfirm = ConfirmFunc(func(Prompt) bool { return false })

// Printer converts a rendered page to PDF
type Printer interface {
	Print(ctx context.Context, html string) ([]byte, error)
}

// Prompts the controller asks before destructive intents
var (
	TemplatePrompt = Prompt{
		Title:   "Change template",
		Message: "Changing templates will reset your content. Continue?",
	}
	ResetPrompt = Prompt{
		Title:   "Reset CV",
		Message: "Are you sure you want to reset your CV? This cannot be undone.",
	}
)

type discardNotifier struct{}

func (discardNotifier) Notify(string, Severity, string) {}
