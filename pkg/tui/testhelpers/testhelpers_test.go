package testhelpers

import (
	"errors"
	"testing"

	"github.com/pluqqy/cvbuilder/pkg/editor"
	"github.com/pluqqy/cvbuilder/pkg/files"
	"github.com/pluqqy/cvbuilder/pkg/models"
)

// TestDocumentBuilder tests the DocumentBuilder functionality
func TestDocumentBuilder(t *testing.T) {
	t.Run("starts from template defaults", func(t *testing.T) {
		doc := NewDocumentBuilder(models.TemplateElite).Build()

		if doc.Template != models.TemplateElite {
			t.Errorf("Template = %q, want %q", doc.Template, models.TemplateElite)
		}
		if !doc.Started {
			t.Error("Default content should be started")
		}
		if len(doc.Skills) == 0 {
			t.Error("Default content should carry skills")
		}
	})

	t.Run("applies all builder methods", func(t *testing.T) {
		doc := NewDocumentBuilder(models.TemplateClassic).
			WithoutEntries().
			WithIdentity("Jane Doe", "Engineer").
			WithSummary("Builds things.").
			WithExperience("Staff Engineer", "Acme", "2020 - Present").
			WithPresentation("#0d9488", 16).
			Build()

		if doc.Identity.Name != "Jane Doe" || doc.Identity.Title != "Engineer" {
			t.Errorf("Identity = %+v", doc.Identity)
		}
		if doc.Summary != "Builds things." {
			t.Errorf("Summary = %q", doc.Summary)
		}
		if len(doc.Experience) != 1 || doc.Experience[0].Subtitle != "Acme" {
			t.Errorf("Experience = %+v", doc.Experience)
		}
		if doc.Experience[0].ID == "" {
			t.Error("Experience entry should have an id")
		}
		if len(doc.Education) != 0 || len(doc.Skills) != 0 {
			t.Error("WithoutEntries should clear education and skills")
		}
		if doc.Presentation.FontSizePx != 16 {
			t.Errorf("FontSizePx = %d, want 16", doc.Presentation.FontSizePx)
		}
	})

	t.Run("builds independent copies", func(t *testing.T) {
		b := NewDocumentBuilder(models.TemplateClassic)
		first := b.Build()
		first.Experience[0].Title = "changed"
		second := b.Build()
		if second.Experience[0].Title == "changed" {
			t.Error("Build should return a deep copy")
		}
	})
}

func TestMemoryStore(t *testing.T) {
	s := NewMemoryStore()
	if s.Exists() {
		t.Fatal("New store should be empty")
	}
	if _, err := s.Load(); !errors.Is(err, files.ErrNotFound) {
		t.Fatalf("Load() error = %v, want ErrNotFound", err)
	}

	if err := s.Save([]byte("cv")); err != nil {
		t.Fatalf("Save() error = %v", err)
	}
	data, err := s.Load()
	if err != nil || string(data) != "cv" {
		t.Fatalf("Load() = %q, %v", data, err)
	}

	s.SaveErr = files.ErrCapacity
	if err := s.Save([]byte("bigger")); !errors.Is(err, files.ErrCapacity) {
		t.Errorf("Save() error = %v, want ErrCapacity", err)
	}
	if data, _ := s.Load(); string(data) != "cv" {
		t.Error("Failed save should keep the previous data")
	}

	if err := s.Remove(); err != nil || s.Exists() {
		t.Errorf("Remove() left data behind, err = %v", err)
	}
}

func TestRecordingNotifier(t *testing.T) {
	n := &RecordingNotifier{}
	if _, ok := n.Last(); ok {
		t.Error("Empty notifier should have no last item")
	}
	n.Notify("CV saved successfully!", editor.SeveritySuccess, "Saved")
	n.Notify("Undo successful", editor.SeveritySuccess, "Action undone")

	last, ok := n.Last()
	if !ok || last.Title != "Action undone" {
		t.Errorf("Last() = %+v, %v", last, ok)
	}
	AssertNotified(t, n, "Saved")
}

func TestEnvironmentSaveDocument(t *testing.T) {
	env := NewTestEnvironment(t)
	env.InitProjectStructure()

	doc := NewDocumentBuilder(models.TemplateModern).WithIdentity("Jane Doe", "Engineer").Build()
	env.SaveDocument(doc)

	data, err := env.Store().Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	rec, err := files.DecodeRecord(data)
	if err != nil {
		t.Fatalf("DecodeRecord() error = %v", err)
	}
	restored := rec.Document(models.DefaultPresentation(), models.DefaultFontBounds())
	AssertStateEqual(t, doc, restored)
}

func TestKeyPress(t *testing.T) {
	if got := KeyPress("ctrl+z").String(); got != "ctrl+z" {
		t.Errorf("KeyPress(ctrl+z) = %q", got)
	}
	if got := KeyPress("t").String(); got != "t" {
		t.Errorf("KeyPress(t) = %q", got)
	}
	if got := len(TypeText("Jane")); got != 4 {
		t.Errorf("TypeText produced %d messages", got)
	}
}
