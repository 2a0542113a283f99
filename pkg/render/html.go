// Package render turns documents into views and reads edits back from them.
package render

import (
	"bytes"
	"fmt"
	"html/template"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/pluqqy/cvbuilder/pkg/models"
	"github.com/pluqqy/cvbuilder/pkg/templates"
)

var layouts = map[models.TemplateID]*template.Template{}

func init() {
	base := template.Must(template.New("cv").Funcs(template.FuncMap{
		"levelWidth": func(level int) template.CSS {
			return template.CSS(fmt.Sprintf("width: %d%%", level))
		},
	}).Parse(pageTemplate))

	for _, id := range templates.List() {
		t := template.Must(base.Clone())
		template.Must(t.New("layout").Parse(`{{template "` + string(id) + `" .}}`))
		layouts[id] = t
	}
}

type skillGroup struct {
	Name   string
	Skills []models.Skill
}

type pageData struct {
	Doc    *models.Document
	Color  template.CSS
	Style  template.CSS
	Groups []skillGroup
}

// HTMLRenderer renders documents as contenteditable HTML pages and keeps
// the last rendered page as the current view.
type HTMLRenderer struct {
	view string
}

// NewHTMLRenderer creates a renderer with an empty view
func NewHTMLRenderer() *HTMLRenderer {
	return &HTMLRenderer{}
}

// RenderTemplate renders doc with the layout for id and makes it the current view
func (r *HTMLRenderer) RenderTemplate(id models.TemplateID, doc *models.Document) (string, error) {
	html, err := RenderHTML(id, doc)
	if err != nil {
		return "", err
	}
	r.view = html
	return html, nil
}

// View returns the last rendered page
func (r *HTMLRenderer) View() string {
	return r.view
}

// ApplyPresentation restyles the current view without re-rendering it
func (r *HTMLRenderer) ApplyPresentation(p models.Presentation) error {
	if r.view == "" {
		return nil
	}
	page, err := goquery.NewDocumentFromReader(strings.NewReader(r.view))
	if err != nil {
		return fmt.Errorf("failed to parse current view: %w", err)
	}
	page.Find(".cv-paper").SetAttr("style", string(paperStyle(p)))
	page.Find("style").First().SetText(rootColorRule(p) + stylesheetBody(page.Find("style").First().Text()))

	html, err := goquery.OuterHtml(page.Selection)
	if err != nil {
		return fmt.Errorf("failed to serialize view: %w", err)
	}
	r.view = html
	return nil
}

// CaptureEditedContent reads free-text edits back from an edited page
func (r *HTMLRenderer) CaptureEditedContent(html string) (models.ViewEdits, error) {
	return Capture(html)
}

// RenderHTML renders doc with the layout for id
func RenderHTML(id models.TemplateID, doc *models.Document) (string, error) {
	t, ok := layouts[models.ParseTemplateID(string(id))]
	if !ok {
		t = layouts[models.DefaultTemplate]
	}

	data := pageData{
		Doc:   doc,
		Color: template.CSS(doc.Presentation.AccentColor),
		Style: paperStyle(doc.Presentation),
	}
	if templates.Get(id).SkillGroups {
		data.Groups = groupSkills(doc.Skills)
	}

	var buf bytes.Buffer
	if err := t.ExecuteTemplate(&buf, "page", data); err != nil {
		return "", fmt.Errorf("failed to render %s template: %w", id, err)
	}
	return buf.String(), nil
}

func paperStyle(p models.Presentation) template.CSS {
	return template.CSS(fmt.Sprintf("--primary: %s; font-size: %dpx", p.AccentColor, p.FontSizePx))
}

func rootColorRule(p models.Presentation) string {
	return fmt.Sprintf("\n:root { --primary: %s; }", p.AccentColor)
}

// stylesheetBody drops the leading :root rule written by the page template
func stylesheetBody(css string) string {
	css = strings.TrimLeft(css, "\n")
	if strings.HasPrefix(css, ":root") {
		if i := strings.Index(css, "}"); i >= 0 {
			return css[i+1:]
		}
	}
	return "\n" + css
}

func groupSkills(skills []models.Skill) []skillGroup {
	var groups []skillGroup
	index := map[string]int{}
	for _, s := range skills {
		name := s.Group
		if name == "" {
			name = "Skills"
		}
		i, ok := index[name]
		if !ok {
			i = len(groups)
			index[name] = i
			groups = append(groups, skillGroup{Name: name})
		}
		groups[i].Skills = append(groups[i].Skills, s)
	}
	return groups
}
