package progress

import (
	"strings"
	"testing"
	"time"

	"github.com/pluqqy/cvbuilder/pkg/models"
	"github.com/pluqqy/cvbuilder/pkg/templates"
)

func TestScoreBoundaries(t *testing.T) {
	tmpl := templates.Get(models.TemplateClassic)

	empty := models.NewDocument()
	if got := Score(empty, tmpl); got != 0 {
		t.Errorf("empty document score = %d, want 0", got)
	}

	full := models.NewDocument()
	full.Identity = models.Identity{Name: "Jane Doe", Title: "Engineer", Email: "jane@example.com"}
	full.Summary = strings.Repeat("x", 51)
	full.Experience = []models.Entry{{Title: "Job"}}
	full.Education = []models.Entry{{Title: "Degree"}}
	if got := Score(full, tmpl); got != 100 {
		t.Errorf("full document score = %d, want 100", got)
	}
}

func TestScorePartial(t *testing.T) {
	tmpl := templates.Get(models.TemplateModern)
	tests := []struct {
		name     string
		doc      models.Document
		expected int
	}{
		{"name only", models.Document{Identity: models.Identity{Name: "Jane"}}, 17},
		{"email without at", models.Document{Identity: models.Identity{Email: "jane.example.com"}}, 0},
		{"whitespace name", models.Document{Identity: models.Identity{Name: "   "}}, 0},
		{"summary exactly 50", models.Document{Content: models.Content{Summary: strings.Repeat("y", 50)}}, 0},
		{"three of six", models.Document{
			Identity: models.Identity{Name: "Jane", Title: "Engineer", Email: "a@b"},
		}, 50},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Score(&tt.doc, tmpl); got != tt.expected {
				t.Errorf("Score() = %d, want %d", got, tt.expected)
			}
		})
	}
}

func TestChecklistExcludesMissingInputs(t *testing.T) {
	tmpl := templates.Template{ID: "bare"}
	doc := &models.Document{Identity: models.Identity{Name: "Jane", Title: "Engineer", Email: "jane@x"}}

	checks := Checklist(doc, tmpl)
	if len(checks) != 3 {
		t.Fatalf("expected only identity checks, got %d", len(checks))
	}
	if got := Score(doc, tmpl); got != 100 {
		t.Errorf("Score() = %d, want 100", got)
	}
}

func TestDefaultsScore(t *testing.T) {
	for _, id := range templates.List() {
		doc := templates.DefaultContent(id)
		if got := Score(&doc, templates.Get(id)); got != 100 {
			t.Errorf("%s defaults score = %d, want 100", id, got)
		}
	}
}

func TestLevelFor(t *testing.T) {
	tests := []struct {
		score    int
		expected Level
	}{
		{0, LevelDanger},
		{29, LevelDanger},
		{30, LevelWarning},
		{69, LevelWarning},
		{70, LevelSuccess},
		{100, LevelSuccess},
	}
	for _, tt := range tests {
		if got := LevelFor(tt.score); got != tt.expected {
			t.Errorf("LevelFor(%d) = %s, want %s", tt.score, got, tt.expected)
		}
	}
}

func TestLastSavedText(t *testing.T) {
	now := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	tests := []struct {
		name     string
		saved    time.Time
		expected string
	}{
		{"never", time.Time{}, "Never"},
		{"seconds", now.Add(-30 * time.Second), "Just now"},
		{"one minute", now.Add(-61 * time.Second), "1 minute ago"},
		{"minutes", now.Add(-5 * time.Minute), "5 minutes ago"},
		{"one hour", now.Add(-time.Hour), "1 hour ago"},
		{"hours", now.Add(-3 * time.Hour), "3 hours ago"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := LastSavedText(now, tt.saved); got != tt.expected {
				t.Errorf("LastSavedText() = %q, want %q", got, tt.expected)
			}
		})
	}
}
