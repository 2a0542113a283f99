package render

// pageTemplate wraps every layout. Editable elements carry data-field and
// entries carry data-entry-id so Capture can map edits back to the model.
const pageTemplate = `{{define "page"}}<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>{{.Doc.Identity.Name}} - CV</title>
<style>
:root { --primary: {{.Color}}; }
body { margin: 0; background: #f3f4f6; font-family: "Helvetica Neue", Arial, sans-serif; color: #1f2937; }
.cv-paper { background: #fff; max-width: 210mm; min-height: 297mm; margin: 24px auto; padding: 18mm; box-sizing: border-box; line-height: 1.5; }
.cv-name, .elite-name { margin: 0; color: var(--primary); }
.cv-title, .elite-title { margin: 4px 0 12px; font-weight: 400; }
.section-title, .elite-section-title { color: var(--primary); border-bottom: 2px solid var(--primary); padding-bottom: 4px; }
.timeline-item, .elite-timeline-item, .elite-education-item { margin-bottom: 12px; }
.item-header, .elite-item-header { display: flex; justify-content: space-between; }
.item-title, .elite-item-title, .elite-degree { font-weight: 600; }
.item-date, .elite-item-date { color: var(--primary); white-space: nowrap; }
.item-description, .elite-item-description { white-space: pre-line; }
.skill-bar { background: #e5e7eb; height: 6px; border-radius: 3px; }
.skill-progress { background: var(--primary); height: 6px; border-radius: 3px; }
.template-modern { display: grid; grid-template-columns: 32% 1fr; gap: 24px; }
.elite-skill-tag { display: inline-block; border: 1px solid var(--primary); border-radius: 12px; padding: 2px 10px; margin: 2px; }
[contenteditable="true"]:hover { outline: 1px dashed var(--primary); }
@media print {
  body { background: #fff; }
  .cv-paper { margin: 0; box-shadow: none; }
  [contenteditable="true"]:hover { outline: none; }
}
</style>
</head>
<body>
<div class="cv-paper template-{{.Doc.Template}}" data-template="{{.Doc.Template}}" style="{{.Style}}">
{{template "layout" .}}
</div>
</body>
</html>
{{end}}

{{define "contact"}}
<span class="contact-item" contenteditable="true" id="cvEmail" data-field="email">{{.Email}}</span>
<span class="contact-item" contenteditable="true" id="cvPhone" data-field="phone">{{.Phone}}</span>
<span class="contact-item" contenteditable="true" id="cvLocation" data-field="location">{{.Location}}</span>
<span class="contact-item" contenteditable="true" id="cvLinkedin" data-field="linkedin">{{.LinkedIn}}</span>
{{end}}

{{define "entries"}}
{{range .}}<div class="timeline-item" data-entry-id="{{.ID}}">
<div class="item-header">
<div>
<div class="item-title" contenteditable="true" data-field="title">{{.Title}}</div>
<div class="item-subtitle" contenteditable="true" data-field="subtitle">{{.Subtitle}}</div>
</div>
<div class="item-date" contenteditable="true" data-field="date">{{.DateRange}}</div>
</div>
<div class="item-description" contenteditable="true" data-field="description">{{.Description}}</div>
</div>
{{end}}
{{end}}

{{define "skills-inline"}}
{{range .}}<span class="skill-item" contenteditable="true" data-skill-id="{{.ID}}" data-level="{{.Level}}" data-rated="{{.Rated}}" data-group="{{.Group}}" data-field="name">{{.Name}}</span>
{{end}}
{{end}}

{{define "classic"}}
<div class="cv-header">
<h1 class="cv-name" contenteditable="true" id="cvName" data-field="name">{{.Doc.Identity.Name}}</h1>
<h2 class="cv-title" contenteditable="true" id="cvTitle" data-field="title">{{.Doc.Identity.Title}}</h2>
<div class="cv-contact">{{template "contact" .Doc.Identity}}</div>
</div>
<div class="cv-body">
<div class="cv-section">
<h3 class="section-title">Professional Summary</h3>
<div class="section-content" contenteditable="true" id="cvSummary" data-field="summary">{{.Doc.Summary}}</div>
</div>
<div class="cv-section">
<h3 class="section-title">Work Experience</h3>
<div class="section-content" id="experienceContainer" data-section="experience">{{template "entries" .Doc.Experience}}</div>
</div>
<div class="cv-section">
<h3 class="section-title">Education</h3>
<div class="section-content" id="educationContainer" data-section="education">{{template "entries" .Doc.Education}}</div>
</div>
<div class="cv-section">
<h3 class="section-title">Technical Skills</h3>
<div class="section-content">
<div class="skills-grid" id="skillsContainer" data-section="skill">
{{range .Doc.Skills}}<div class="skill-item" data-skill-id="{{.ID}}" data-level="{{.Level}}" data-rated="{{.Rated}}" data-group="{{.Group}}">
<div class="skill-name" contenteditable="true" data-field="name">{{.Name}}</div>
{{if .Rated}}<div class="skill-bar"><div class="skill-progress" style="{{levelWidth .Level}}"></div></div>{{end}}
</div>
{{end}}
</div>
</div>
</div>
</div>
{{end}}

{{define "modern"}}
<div class="cv-sidebar">
<h1 class="cv-name" contenteditable="true" id="cvName" data-field="name">{{.Doc.Identity.Name}}</h1>
<h2 class="cv-title" contenteditable="true" id="cvTitle" data-field="title">{{.Doc.Identity.Title}}</h2>
<div class="sidebar-section">
<h3>Contact</h3>
<div class="contact-list">{{template "contact" .Doc.Identity}}</div>
</div>
<div class="sidebar-section">
<h3>Skills</h3>
<div class="skills-list" id="skillsContainer" data-section="skill">{{template "skills-inline" .Doc.Skills}}</div>
</div>
</div>
<div class="cv-main">
<div class="cv-section">
<h3 class="section-title">About Me</h3>
<div class="section-content" contenteditable="true" id="cvSummary" data-field="summary">{{.Doc.Summary}}</div>
</div>
<div class="cv-section">
<h3 class="section-title">Experience</h3>
<div class="section-content" id="experienceContainer" data-section="experience">{{template "entries" .Doc.Experience}}</div>
</div>
<div class="cv-section">
<h3 class="section-title">Education</h3>
<div class="section-content" id="educationContainer" data-section="education">{{template "entries" .Doc.Education}}</div>
</div>
</div>
{{end}}

{{define "minimalist"}}
<div class="cv-header">
<h1 class="cv-name" contenteditable="true" id="cvName" data-field="name">{{.Doc.Identity.Name}}</h1>
<h2 class="cv-title" contenteditable="true" id="cvTitle" data-field="title">{{.Doc.Identity.Title}}</h2>
<div class="cv-contact-inline">{{template "contact" .Doc.Identity}}</div>
</div>
<div class="cv-section">
<h3 class="section-title">Professional Summary</h3>
<div class="section-content" contenteditable="true" id="cvSummary" data-field="summary">{{.Doc.Summary}}</div>
</div>
<div class="cv-section">
<h3 class="section-title">Experience</h3>
<div class="section-content" id="experienceContainer" data-section="experience">{{template "entries" .Doc.Experience}}</div>
</div>
<div class="cv-section">
<h3 class="section-title">Education</h3>
<div class="section-content" id="educationContainer" data-section="education">{{template "entries" .Doc.Education}}</div>
</div>
<div class="cv-section">
<h3 class="section-title">Skills</h3>
<div class="section-content skills-inline" id="skillsContainer" data-section="skill">{{template "skills-inline" .Doc.Skills}}</div>
</div>
{{end}}

{{define "elite"}}
<div class="elite-accent"></div>
<div class="elite-header">
<h1 class="elite-name" contenteditable="true" id="cvName" data-field="name">{{.Doc.Identity.Name}}</h1>
<h2 class="elite-title" contenteditable="true" id="cvTitle" data-field="title">{{.Doc.Identity.Title}}</h2>
<div class="elite-contact">{{template "contact" .Doc.Identity}}</div>
</div>
<div class="elite-section">
<h3 class="elite-section-title">Executive Profile</h3>
<div class="elite-summary" contenteditable="true" id="cvSummary" data-field="summary">{{.Doc.Summary}}</div>
</div>
<div class="elite-section" id="experienceContainer" data-section="experience">
<h3 class="elite-section-title">Professional Experience</h3>
{{range .Doc.Experience}}<div class="elite-timeline-item" data-entry-id="{{.ID}}">
<div class="elite-item-header">
<div>
<div class="elite-item-title" contenteditable="true" data-field="title">{{.Title}}</div>
<div class="elite-item-company" contenteditable="true" data-field="subtitle">{{.Subtitle}}</div>
</div>
<div class="elite-item-date" contenteditable="true" data-field="date">{{.DateRange}}</div>
</div>
<div class="elite-item-description" contenteditable="true" data-field="description">{{.Description}}</div>
</div>
{{end}}
</div>
<div class="elite-section" id="educationContainer" data-section="education">
<h3 class="elite-section-title">Education &amp; Credentials</h3>
{{range .Doc.Education}}<div class="elite-education-item" data-entry-id="{{.ID}}">
<div class="elite-degree" contenteditable="true" data-field="title">{{.Title}}</div>
<div class="elite-institution" contenteditable="true" data-field="subtitle">{{.Subtitle}}</div>
<div class="elite-education-details">
<span class="elite-education-detail" contenteditable="true" data-field="date">{{.DateRange}}</span>
<span class="elite-education-detail" contenteditable="true" data-field="description">{{.Description}}</span>
</div>
</div>
{{end}}
</div>
<div class="elite-section">
<h3 class="elite-section-title">Core Competencies</h3>
<div class="elite-skills-grid" id="skillsContainer" data-section="skill">
{{range .Groups}}<div class="elite-skill-category">
<div class="elite-skill-category-title">{{.Name}}</div>
<div class="elite-skill-list">
{{range .Skills}}<span class="elite-skill-tag" contenteditable="true" data-skill-id="{{.ID}}" data-level="{{.Level}}" data-rated="{{.Rated}}" data-group="{{.Group}}" data-field="name">{{.Name}}</span>
{{end}}
</div>
</div>
{{end}}
</div>
</div>
{{end}}
`
