package render

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pluqqy/cvbuilder/pkg/models"
	"github.com/pluqqy/cvbuilder/pkg/templates"
)

// captured applies the edits read from html to an empty document
func captured(t *testing.T, html string) *models.Document {
	t.Helper()
	edits, err := Capture(html)
	require.NoError(t, err)
	doc := models.NewDocument()
	require.NoError(t, doc.ApplyEdits(edits))
	return doc
}

func TestCaptureRoundTrip(t *testing.T) {
	for _, id := range templates.List() {
		t.Run(string(id), func(t *testing.T) {
			doc := templates.DefaultContent(id)
			doc.Identity.Name = "Jane Doe"
			doc.Summary = "  Summary with leading spaces\n\nand a second paragraph"
			doc.Experience[0].Description = "Line one\n\n  - indented bullet\n"

			html, err := RenderHTML(id, &doc)
			require.NoError(t, err)

			got := captured(t, html)
			assert.Equal(t, doc.Identity, got.Identity)
			assert.Equal(t, doc.Summary, got.Summary)
			assert.Equal(t, doc.Experience, got.Experience)
			assert.Equal(t, doc.Education, got.Education)
			assert.ElementsMatch(t, doc.Skills, got.Skills)

			// reading the page back into the same document changes nothing
			again := doc.Clone()
			edits, err := Capture(html)
			require.NoError(t, err)
			require.NoError(t, again.ApplyEdits(edits))
			assert.True(t, again.State().Equal(doc.State()))
		})
	}
}

func TestCaptureRejectsForeignPage(t *testing.T) {
	_, err := Capture("<html><body><p>hello</p></body></html>")
	assert.ErrorIs(t, err, ErrNotCV)

	_, err = Capture(`<h1 id="cvName">Jane Doe</h1>`)
	assert.ErrorIs(t, err, ErrNotCV, "identity alone is not a CV")
}

func TestCapturePartialPage(t *testing.T) {
	edits, err := Capture(`<h1 id="cvName" data-field="name">Jane Doe</h1>
<div id="cvSummary" data-field="summary">Short</div>`)
	require.NoError(t, err)

	assert.Equal(t, map[string]string{"name": "Jane Doe"}, edits.Identity)
	require.NotNil(t, edits.Summary)
	assert.Equal(t, "Short", *edits.Summary)
	assert.Empty(t, edits.Experience)
	assert.Empty(t, edits.Skills)
}

func TestRenderEscapesText(t *testing.T) {
	doc := templates.DefaultContent(models.TemplateModern)
	doc.Identity.Name = `<script>alert("x")</script>`
	doc.Summary = "Tom & Jerry"

	html, err := RenderHTML(doc.Template, &doc)
	require.NoError(t, err)
	assert.NotContains(t, html, "<script>")

	got := captured(t, html)
	assert.Equal(t, doc.Identity.Name, got.Identity.Name)
	assert.Equal(t, "Tom & Jerry", got.Summary)
}

func TestRenderUnknownTemplateFallsBack(t *testing.T) {
	doc := templates.DefaultContent(models.TemplateClassic)
	html, err := RenderHTML("retro", &doc)
	require.NoError(t, err)
	assert.Contains(t, html, "skill-progress")
}

func TestRenderPresentation(t *testing.T) {
	doc := templates.DefaultContent(models.TemplateClassic)
	doc.Presentation = models.Presentation{AccentColor: "#123456", FontSizePx: 18}

	html, err := RenderHTML(doc.Template, &doc)
	require.NoError(t, err)
	assert.Contains(t, html, "--primary: #123456; font-size: 18px")
	assert.Contains(t, html, "width: 90%")
}

func TestApplyPresentation(t *testing.T) {
	r := NewHTMLRenderer()
	require.NoError(t, r.ApplyPresentation(models.DefaultPresentation()), "empty view is a no-op")
	assert.Empty(t, r.View())

	doc := templates.DefaultContent(models.TemplateElite)
	_, err := r.RenderTemplate(doc.Template, &doc)
	require.NoError(t, err)

	require.NoError(t, r.ApplyPresentation(models.Presentation{AccentColor: "#FF0000", FontSizePx: 20}))
	view := r.View()
	assert.Contains(t, view, "--primary: #FF0000; font-size: 20px")
	assert.Contains(t, view, ":root { --primary: #FF0000; }")
	assert.NotContains(t, view, models.DefaultAccentColor)

	// content is untouched by a restyle
	edits, err := r.CaptureEditedContent(view)
	require.NoError(t, err)
	restyled := doc.Clone()
	require.NoError(t, restyled.ApplyEdits(edits))
	assert.Equal(t, doc.Skills, restyled.Skills)
}

const legacyClassic = `<div class="cv-paper template-classic">
<h1 class="cv-name" contenteditable="true" id="cvName">Jane Doe</h1>
<h2 class="cv-title" contenteditable="true" id="cvTitle">Engineer</h2>
<span id="cvEmail">jane@example.com</span>
<div class="section-content" contenteditable="true" id="cvSummary">
    Ships things.
</div>
<div class="section-content" id="experienceContainer">
    <div class="timeline-item">
        <div class="item-header">
            <div>
                <div class="item-title" contenteditable="true">Staff Engineer</div>
                <div class="item-subtitle" contenteditable="true">Acme • Remote</div>
            </div>
            <div class="item-date" contenteditable="true">2021 - Present</div>
        </div>
        <div class="item-description" contenteditable="true">
            Built the platform.
        </div>
    </div>
</div>
<div class="section-content" id="educationContainer"></div>
<div class="skills-grid" id="skillsContainer">
    <div class="skill-item">
        <div class="skill-name" contenteditable="true">Go</div>
        <div class="skill-bar"><div class="skill-progress" style="width: 90%"></div></div>
    </div>
</div>
</div>`

func TestCaptureLegacyClassic(t *testing.T) {
	edits, err := Capture(legacyClassic)
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"name": "Jane Doe", "title": "Engineer", "email": "jane@example.com"}, edits.Identity)

	got := captured(t, legacyClassic)
	assert.Equal(t, "Ships things.", got.Summary)

	require.Len(t, got.Experience, 1)
	e := got.Experience[0]
	assert.NotEmpty(t, e.ID)
	assert.Equal(t, "Staff Engineer", e.Title)
	assert.Equal(t, "Acme • Remote", e.Subtitle)
	assert.Equal(t, "2021 - Present", e.DateRange)
	assert.Equal(t, "Built the platform.", e.Description)
	assert.Empty(t, got.Education)

	require.Len(t, got.Skills, 1)
	assert.Equal(t, models.Skill{ID: got.Skills[0].ID, Name: "Go", Level: 90, Rated: true}, got.Skills[0])
}

const legacyElite = `<div class="cv-paper template-elite">
<div class="elite-education-item">
    <div class="elite-degree" contenteditable="true">MSc Physics</div>
    <div class="elite-institution" contenteditable="true">Uni</div>
    <div class="elite-education-details">
        <div class="elite-education-detail"><i class="fas fa-calendar"></i><span contenteditable="true">2010 - 2012</span></div>
        <div class="elite-education-detail"><i class="fas fa-award"></i><span contenteditable="true">Cum laude</span></div>
    </div>
</div>
<div class="elite-skills-grid">
    <div class="elite-skill-category">
        <div class="elite-skill-category-title"><i class="fas fa-users"></i><span contenteditable="true">Soft Skills</span></div>
        <div class="elite-skill-list">
            <span class="elite-skill-tag" contenteditable="true">Leadership</span>
        </div>
    </div>
</div>
</div>`

func TestCaptureLegacyElite(t *testing.T) {
	edits, err := Capture(legacyElite)
	require.NoError(t, err)
	assert.Nil(t, edits.Identity, "no identity elements present")
	assert.Nil(t, edits.Summary)

	got := captured(t, legacyElite)
	require.Len(t, got.Education, 1)
	e := got.Education[0]
	assert.Equal(t, "MSc Physics", e.Title)
	assert.Equal(t, "Uni", e.Subtitle)
	assert.Equal(t, "2010 - 2012", e.DateRange)
	assert.Equal(t, "Cum laude", e.Description)

	require.Len(t, got.Skills, 1)
	s := got.Skills[0]
	assert.Equal(t, "Leadership", s.Name)
	assert.Equal(t, "Soft Skills", s.Group)
	assert.False(t, s.Rated)
}

func TestRenderText(t *testing.T) {
	doc := templates.DefaultContent(models.TemplateElite)
	doc.Identity.Name = "Jane Doe"

	out := RenderText(&doc, 60)
	assert.Contains(t, out, "Jane Doe")
	assert.Contains(t, out, "Experience")
	assert.Contains(t, out, "Technical Skills: JavaScript/TypeScript")
}
