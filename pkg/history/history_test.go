package history

import (
	"fmt"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/pluqqy/cvbuilder/pkg/models"
)

func state(name string) models.EditorState {
	return models.EditorState{
		Template:     models.TemplateClassic,
		Identity:     models.Identity{Name: name},
		Presentation: models.DefaultPresentation(),
	}
}

func TestSnapshotDedup(t *testing.T) {
	h := New(0)
	if !h.Snapshot(state("a")) {
		t.Fatal("first snapshot should be recorded")
	}
	if h.Snapshot(state("a")) {
		t.Error("identical snapshot should be a no-op")
	}
	if h.Len() != 1 {
		t.Errorf("Len() = %d, want 1", h.Len())
	}
}

func TestSnapshotDedupComparesEntries(t *testing.T) {
	h := New(0)
	s := state("a")
	s.Content.Experience = []models.Entry{{ID: "1", Title: "Job"}}
	h.Snapshot(s)

	s2 := state("a")
	s2.Content.Experience = []models.Entry{{ID: "1", Title: "Job", Description: "x"}}
	if !h.Snapshot(s2) {
		t.Error("entry difference should create a new snapshot")
	}

	s3 := s2
	s3.Presentation.AccentColor = "#000000"
	if !h.Snapshot(s3) {
		t.Error("color difference should create a new snapshot")
	}
	if h.Len() != 3 {
		t.Errorf("Len() = %d, want 3", h.Len())
	}
}

func TestUndoRedoInverse(t *testing.T) {
	const n = 6
	h := New(0)
	var states []models.EditorState
	for i := 0; i < n; i++ {
		s := state(fmt.Sprintf("step-%d", i))
		states = append(states, s)
		h.Snapshot(s)
	}

	for i := n - 2; i >= 0; i-- {
		got, ok := h.Undo()
		if !ok {
			t.Fatalf("undo %d reported nothing to undo", i)
		}
		if diff := cmp.Diff(states[i], got); diff != "" {
			t.Errorf("undo to %d mismatch (-want +got):\n%s", i, diff)
		}
		if h.Cursor() < 0 || h.Cursor() > h.Len()-1 {
			t.Fatalf("cursor %d out of range", h.Cursor())
		}
	}
	if _, ok := h.Undo(); ok {
		t.Error("undo at the first entry should be a no-op")
	}
	if h.Cursor() != 0 {
		t.Errorf("cursor = %d, want 0", h.Cursor())
	}

	for i := 1; i < n; i++ {
		got, ok := h.Redo()
		if !ok {
			t.Fatalf("redo %d reported nothing to redo", i)
		}
		if diff := cmp.Diff(states[i], got); diff != "" {
			t.Errorf("redo to %d mismatch (-want +got):\n%s", i, diff)
		}
	}
	if _, ok := h.Redo(); ok {
		t.Error("redo at the tail should be a no-op")
	}

	cur, _ := h.Current()
	if diff := cmp.Diff(states[n-1], cur); diff != "" {
		t.Errorf("final state mismatch (-want +got):\n%s", diff)
	}
}

func TestTruncationOnBranch(t *testing.T) {
	h := New(0)
	h.Snapshot(state("a"))
	h.Snapshot(state("b"))
	h.Snapshot(state("c"))

	h.Undo()
	if !h.CanRedo() {
		t.Fatal("redo should be available after undo")
	}

	h.Snapshot(state("d"))
	if h.CanRedo() {
		t.Error("new snapshot should discard the redo tail")
	}
	if _, ok := h.Redo(); ok {
		t.Error("redo should be a no-op after branching")
	}
	if h.Len() != 3 {
		t.Errorf("Len() = %d, want 3 (a, b, d)", h.Len())
	}
	got, _ := h.Undo()
	if got.Identity.Name != "b" {
		t.Errorf("undo after branch = %q, want b", got.Identity.Name)
	}
}

func TestEnablementIsDerived(t *testing.T) {
	h := New(0)
	if h.CanUndo() || h.CanRedo() {
		t.Error("empty history should have nothing to undo or redo")
	}
	h.Snapshot(state("a"))
	if h.CanUndo() || h.CanRedo() {
		t.Error("single entry should have nothing to undo or redo")
	}
	h.Snapshot(state("b"))
	if !h.CanUndo() || h.CanRedo() {
		t.Error("two entries at the tail: undo only")
	}
	h.Undo()
	if h.CanUndo() || !h.CanRedo() {
		t.Error("two entries at the head: redo only")
	}
}

func TestMaxEntries(t *testing.T) {
	h := New(3)
	for _, name := range []string{"a", "b", "c", "d", "e"} {
		h.Snapshot(state(name))
	}
	if h.Len() != 3 {
		t.Fatalf("Len() = %d, want 3", h.Len())
	}
	if h.Cursor() != 2 {
		t.Errorf("Cursor() = %d, want 2", h.Cursor())
	}
	h.Undo()
	got, _ := h.Undo()
	if got.Identity.Name != "c" {
		t.Errorf("oldest kept entry = %q, want c", got.Identity.Name)
	}
	if h.CanUndo() {
		t.Error("dropped entries should not be reachable")
	}
}

func TestSnapshotDoesNotAlias(t *testing.T) {
	h := New(0)
	s := state("a")
	s.Content.Skills = []models.Skill{{ID: "1", Name: "Go"}}
	h.Snapshot(s)
	s.Content.Skills[0].Name = "Rust"

	cur, _ := h.Current()
	if cur.Content.Skills[0].Name != "Go" {
		t.Errorf("history entry was mutated through caller slice: %q", cur.Content.Skills[0].Name)
	}
}

func TestClear(t *testing.T) {
	h := New(0)
	h.Snapshot(state("a"))
	h.Clear()
	if h.Len() != 0 || h.Cursor() != -1 {
		t.Errorf("Clear left Len=%d Cursor=%d", h.Len(), h.Cursor())
	}
	if _, ok := h.Current(); ok {
		t.Error("Current on empty history should report false")
	}
}
