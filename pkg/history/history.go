// Package history implements linear undo/redo over editor snapshots.
//
// The log is an ordered list of states plus a cursor pointing at the state
// currently shown. Taking a snapshot that differs from the state at the
// cursor discards everything after the cursor and appends the new state.
package history

import "github.com/pluqqy/cvbuilder/pkg/models"

// Manager holds the snapshot log. It is not safe for concurrent use.
type Manager struct {
	entries    []models.EditorState
	cursor     int
	maxEntries int
}

// New creates an empty history. maxEntries <= 0 keeps every entry.
func New(maxEntries int) *Manager {
	return &Manager{cursor: -1, maxEntries: maxEntries}
}

// Snapshot records state unless it equals the state at the cursor.
// It reports whether a new entry was appended.
func (m *Manager) Snapshot(state models.EditorState) bool {
	if len(m.entries) > 0 && m.entries[m.cursor].Equal(state) {
		return false
	}

	m.entries = append(m.entries[:m.cursor+1], cloneState(state))
	m.cursor++

	if m.maxEntries > 0 && len(m.entries) > m.maxEntries {
		drop := len(m.entries) - m.maxEntries
		m.entries = append([]models.EditorState(nil), m.entries[drop:]...)
		m.cursor -= drop
	}
	return true
}

// Undo moves the cursor back one entry and returns the state there.
// ok is false when there is nothing to undo.
func (m *Manager) Undo() (state models.EditorState, ok bool) {
	if !m.CanUndo() {
		return models.EditorState{}, false
	}
	m.cursor--
	return cloneState(m.entries[m.cursor]), true
}

// Redo moves the cursor forward one entry and returns the state there.
// ok is false at the tail of the log.
func (m *Manager) Redo() (state models.EditorState, ok bool) {
	if !m.CanRedo() {
		return models.EditorState{}, false
	}
	m.cursor++
	return cloneState(m.entries[m.cursor]), true
}

// CanUndo reports whether an earlier entry exists
func (m *Manager) CanUndo() bool {
	return m.cursor > 0
}

// CanRedo reports whether a later entry exists
func (m *Manager) CanRedo() bool {
	return m.cursor < len(m.entries)-1
}

// Current returns the state at the cursor
func (m *Manager) Current() (models.EditorState, bool) {
	if len(m.entries) == 0 {
		return models.EditorState{}, false
	}
	return cloneState(m.entries[m.cursor]), true
}

// Len returns the number of entries in the log
func (m *Manager) Len() int {
	return len(m.entries)
}

// Cursor returns the index of the current entry, -1 when empty
func (m *Manager) Cursor() int {
	return m.cursor
}

// Clear drops every entry
func (m *Manager) Clear() {
	m.entries = nil
	m.cursor = -1
}

func cloneState(s models.EditorState) models.EditorState {
	s.Content = s.Content.Clone()
	return s
}
