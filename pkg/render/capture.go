package render

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/pluqqy/cvbuilder/pkg/models"
)

var identityIDs = map[string]string{
	"name":     "#cvName",
	"title":    "#cvTitle",
	"email":    "#cvEmail",
	"phone":    "#cvPhone",
	"location": "#cvLocation",
	"linkedin": "#cvLinkedin",
}

// legacy class names per entry field, used when data-field is missing
var entryFieldClasses = map[string]string{
	"title":       ".item-title, .elite-item-title, .elite-degree",
	"subtitle":    ".item-subtitle, .elite-item-company, .elite-institution",
	"date":        ".item-date, .elite-item-date",
	"description": ".item-description, .elite-item-description",
}

var (
	experienceSelector       = `[data-section="experience"] [data-entry-id]`
	legacyExperienceSelector = "#experienceContainer .timeline-item, .elite-timeline-item"
	educationSelector        = `[data-section="education"] [data-entry-id]`
	legacyEducationSelector  = "#educationContainer .timeline-item, .elite-education-item"
	skillSelector            = `[data-section="skill"] [data-skill-id]`
	legacySkillSelector      = "#skillsContainer .skill-item, .elite-skill-tag"
)

var widthPattern = regexp.MustCompile(`width:\s*(\d+)%`)

// cvMarkers matches the containers every CV page has, old or new
const cvMarkers = "#cvSummary, [data-section], #experienceContainer, #educationContainer, #skillsContainer, " +
	".timeline-item, .skill-item, .elite-timeline-item, .elite-education-item, .elite-skill-tag"

// ErrNotCV is returned when a page has none of the CV containers
var ErrNotCV = errors.New("page does not contain a CV")

// Capture reads the edits back out of a rendered page. Text in data-field
// elements is taken as is, so pages produced by RenderHTML map back
// exactly; older markup without data attributes is read by class name with
// its indentation trimmed.
func Capture(html string) (models.ViewEdits, error) {
	page, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return models.ViewEdits{}, fmt.Errorf("failed to parse view: %w", err)
	}
	if page.Find(cvMarkers).Length() == 0 {
		return models.ViewEdits{}, ErrNotCV
	}

	var edits models.ViewEdits
	edits.Identity = captureIdentity(page)
	if sel := page.Find("#cvSummary").First(); sel.Length() > 0 {
		edits.Summary = textOf(sel)
	}
	edits.Experience = captureEntries(page, experienceSelector, legacyExperienceSelector)
	edits.Education = captureEntries(page, educationSelector, legacyEducationSelector)
	edits.Skills = captureSkills(page)
	return edits, nil
}

func captureIdentity(page *goquery.Document) map[string]string {
	found := map[string]string{}
	for _, field := range models.IdentityFields {
		if sel := page.Find(identityIDs[field]).First(); sel.Length() > 0 {
			found[field] = *textOf(sel)
		}
	}
	if len(found) == 0 {
		return nil
	}
	return found
}

func captureEntries(page *goquery.Document, selector, legacy string) []models.EntryEdit {
	items := page.Find(selector)
	if items.Length() == 0 {
		items = page.Find(legacy)
	}

	var entries []models.EntryEdit
	items.Each(func(_ int, item *goquery.Selection) {
		entries = append(entries, models.EntryEdit{
			ID:          item.AttrOr("data-entry-id", ""),
			Title:       entryField(item, "title"),
			Subtitle:    entryField(item, "subtitle"),
			DateRange:   entryField(item, "date"),
			Description: entryField(item, "description"),
		})
	})
	return entries
}

func entryField(item *goquery.Selection, field string) *string {
	if sel := item.Find(`[data-field="` + field + `"]`).First(); sel.Length() > 0 {
		return textOf(sel)
	}
	if sel := item.Find(entryFieldClasses[field]).First(); sel.Length() > 0 {
		return textOf(sel)
	}
	// elite education keeps date and honors in two detail blocks
	details := item.Find(".elite-education-detail")
	switch {
	case field == "date" && details.Length() > 0:
		return textOf(details.Eq(0))
	case field == "description" && details.Length() > 1:
		return textOf(details.Eq(1))
	}
	return nil
}

func captureSkills(page *goquery.Document) []models.SkillEdit {
	items := page.Find(skillSelector)
	if items.Length() == 0 {
		items = page.Find(legacySkillSelector)
	}

	var skills []models.SkillEdit
	items.Each(func(_ int, item *goquery.Selection) {
		s := models.SkillEdit{ID: item.AttrOr("data-skill-id", "")}

		name := item
		if child := item.Find(`[data-field="name"], .skill-name`).First(); child.Length() > 0 {
			name = child
		}
		s.Name = textOf(name)

		if lvl, ok := item.Attr("data-level"); ok {
			if n, err := strconv.Atoi(lvl); err == nil {
				s.Level = &n
				s.Rated = item.AttrOr("data-rated", "") == "true"
			}
		} else if m := widthPattern.FindStringSubmatch(item.Find(".skill-progress").AttrOr("style", "")); m != nil {
			n, _ := strconv.Atoi(m[1])
			s.Level = &n
			s.Rated = true
		}

		if group, ok := item.Attr("data-group"); ok {
			s.Group = &group
		} else if title := item.Closest(".elite-skill-category").Find(".elite-skill-category-title"); title.Length() > 0 {
			s.Group = textOf(title.First())
		}

		skills = append(skills, s)
	})
	return skills
}

// textOf returns the element's text. Elements rendered with data-field hold
// exactly the model's value; anything else is cleaned of markup indentation.
func textOf(sel *goquery.Selection) *string {
	text := sel.Text()
	if _, ok := sel.Attr("data-field"); !ok {
		text = cleanText(text)
	}
	return &text
}

// cleanText trims every line and drops the blank ones markup indentation leaves behind
func cleanText(s string) string {
	var lines []string
	for _, line := range strings.Split(s, "\n") {
		if line = strings.TrimSpace(line); line != "" {
			lines = append(lines, line)
		}
	}
	return strings.Join(lines, "\n")
}
