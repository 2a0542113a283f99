package tui

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/pluqqy/cvbuilder/pkg/editor"
)

// StatusFeedback represents a temporary status message
type StatusFeedback struct {
	Title     string
	Message   string
	Icon      string
	ShowUntil time.Time
	Type      editor.Severity
}

// StatusManager shows editor notifications in the status bar. It is the
// TUI's editor.Notifier.
type StatusManager struct {
	CurrentStatus     *StatusFeedback
	DefaultDuration   time.Duration
	PersistentMessage string
	PersistentType    editor.Severity

	seq     int
	pending bool
}

// NewStatusManager creates a new status manager
func NewStatusManager() *StatusManager {
	return &StatusManager{
		DefaultDuration: 3 * time.Second,
	}
}

// Notify implements editor.Notifier
func (sm *StatusManager) Notify(message string, severity editor.Severity, title string) {
	sm.seq++
	sm.CurrentStatus = &StatusFeedback{
		Title:     title,
		Message:   message,
		Icon:      severityIcon(severity),
		ShowUntil: time.Now().Add(sm.DefaultDuration),
		Type:      severity,
	}
	sm.pending = true
}

// ClearCmd returns the command that hides the latest notification after
// DefaultDuration, or nil when nothing new was shown
func (sm *StatusManager) ClearCmd() tea.Cmd {
	if !sm.pending {
		return nil
	}
	sm.pending = false
	seq := sm.seq
	return tea.Tick(sm.DefaultDuration, func(time.Time) tea.Msg {
		return ClearStatusMsg{seq: seq}
	})
}

// HandleClear drops the status if msg belongs to the latest notification
func (sm *StatusManager) HandleClear(msg ClearStatusMsg) {
	if msg.seq == sm.seq {
		sm.CurrentStatus = nil
	}
}

// ShowError shows an error that did not come from the editor
func (sm *StatusManager) ShowError(err error) {
	sm.Notify(err.Error(), editor.SeverityError, "Error")
}

// SetPersistentMessage sets a message that persists until cleared
func (sm *StatusManager) SetPersistentMessage(message string, statusType editor.Severity) {
	sm.PersistentMessage = message
	sm.PersistentType = statusType
}

// ClearPersistentMessage clears the persistent message
func (sm *StatusManager) ClearPersistentMessage() {
	sm.PersistentMessage = ""
}

// Clear removes the current status
func (sm *StatusManager) Clear() {
	sm.CurrentStatus = nil
}

// IsActive checks if a status is currently showing
func (sm *StatusManager) IsActive() bool {
	if sm.CurrentStatus == nil {
		return false
	}

	if time.Now().After(sm.CurrentStatus.ShowUntil) {
		sm.CurrentStatus = nil
		return false
	}

	return true
}

// GetStatus returns the current status message if active
func (sm *StatusManager) GetStatus() (string, editor.Severity, bool) {
	if sm.IsActive() {
		s := sm.CurrentStatus
		text := s.Message
		if s.Title != "" {
			text = fmt.Sprintf("%s: %s", s.Title, s.Message)
		}
		return fmt.Sprintf("%s %s", s.Icon, text), s.Type, true
	}

	if sm.PersistentMessage != "" {
		return fmt.Sprintf("%s %s", severityIcon(sm.PersistentType), sm.PersistentMessage), sm.PersistentType, true
	}

	return "", editor.SeverityInfo, false
}

func severityIcon(s editor.Severity) string {
	switch s {
	case editor.SeveritySuccess:
		return "✓"
	case editor.SeverityWarning:
		return "⚠"
	case editor.SeverityError:
		return "×"
	default:
		return "ℹ"
	}
}

// ClearStatusMsg is sent to clear the status
type ClearStatusMsg struct {
	seq int
}
