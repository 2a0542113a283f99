// Package progress estimates how complete a CV is.
package progress

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/pluqqy/cvbuilder/pkg/models"
	"github.com/pluqqy/cvbuilder/pkg/templates"
)

// MinSummaryLength is the summary length (in characters) that counts as filled
const MinSummaryLength = 50

// Check is one item of the completeness checklist
type Check struct {
	Name   string
	Passed bool
}

// Checklist evaluates every check the template supports. Checks whose input
// the template does not show are left out rather than failed.
func Checklist(doc *models.Document, tmpl templates.Template) []Check {
	checks := []Check{
		{"name", strings.TrimSpace(doc.Identity.Name) != ""},
		{"title", strings.TrimSpace(doc.Identity.Title) != ""},
		{"email", strings.Contains(doc.Identity.Email, "@")},
	}
	if tmpl.HasSummary {
		checks = append(checks, Check{"summary", len([]rune(strings.TrimSpace(doc.Summary))) > MinSummaryLength})
	}
	if tmpl.HasSection(models.SectionExperience) {
		checks = append(checks, Check{"experience", len(doc.Experience) > 0})
	}
	if tmpl.HasSection(models.SectionEducation) {
		checks = append(checks, Check{"education", len(doc.Education) > 0})
	}
	return checks
}

// Score returns round(100 * passed / total), or 0 when nothing is checked
func Score(doc *models.Document, tmpl templates.Template) int {
	checks := Checklist(doc, tmpl)
	if len(checks) == 0 {
		return 0
	}
	passed := 0
	for _, c := range checks {
		if c.Passed {
			passed++
		}
	}
	return int(math.Round(100 * float64(passed) / float64(len(checks))))
}

// Level buckets a score for display
type Level int

const (
	LevelDanger Level = iota
	LevelWarning
	LevelSuccess
)

func (l Level) String() string {
	switch l {
	case LevelDanger:
		return "danger"
	case LevelWarning:
		return "warning"
	default:
		return "success"
	}
}

// LevelFor maps a score to danger (<30), warning (<70) or success
func LevelFor(score int) Level {
	switch {
	case score < 30:
		return LevelDanger
	case score < 70:
		return LevelWarning
	default:
		return LevelSuccess
	}
}

// LastSavedText describes how long ago saved was, e.g. "Just now" or
// "5 minutes ago". A zero saved time reads "Never".
func LastSavedText(now, saved time.Time) string {
	if saved.IsZero() {
		return "Never"
	}
	diff := now.Sub(saved)
	switch {
	case diff < time.Minute:
		return "Just now"
	case diff < time.Hour:
		n := int(diff / time.Minute)
		return fmt.Sprintf("%s %s ago", humanize.Comma(int64(n)), plural(n, "minute"))
	default:
		n := int(diff / time.Hour)
		return fmt.Sprintf("%s %s ago", humanize.Comma(int64(n)), plural(n, "hour"))
	}
}

func plural(n int, unit string) string {
	if n == 1 {
		return unit
	}
	return unit + "s"
}
