package rendering

import "html/template"

// resumeTmpl is the single section-render dispatcher shared by every
// template style. Section iteration and sorting happen exactly once, here
// and in buildSections; styles only vary typography and treatment.
var resumeTmpl = template.Must(template.New("resume").Funcs(template.FuncMap{
	"title": func(s Style, label string) string { return s.SectionTitle(label) },
}).Parse(resumeTemplateSource))

const resumeTemplateSource = `<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<style>{{.CSS}}</style>
</head>
<body>
<div class="resume" data-template="{{.Style.Name}}">
{{- /* Personal info renders unconditionally and outside the section loop. */}}
<header class="header">
<h1>{{.Header.Name}}</h1>
{{- if .Header.Profession}}
<div class="profession">{{.Header.Profession}}</div>
{{- end}}
<div class="contact-line">
{{- if .Header.Email}}<span>{{.Header.Email}}</span>{{end}}
{{- if .Header.Phone}} <span>{{.Header.Phone}}</span>{{end}}
{{- if .Header.Address}} <span>{{.Header.Address}}</span>{{end}}
{{- if .Header.Website}} <span>{{.Header.Website}}</span>{{end}}
{{- if .Header.LinkedIn}} <span>{{.Header.LinkedIn}}</span>{{end}}
{{- if .Header.GitHub}} <span>{{.Header.GitHub}}</span>{{end}}
{{- if .Header.Twitter}} <span>{{.Header.Twitter}}</span>{{end}}
</div>
{{- if .Header.Summary}}
<p class="summary">{{.Header.Summary}}</p>
{{- end}}
</header>
{{- $style := .Style}}
{{- $edit := .EditMode}}
{{- range .Sections}}
<section class="section" data-section="{{.Key}}">
<h2 class="section-title">{{title $style .Title}}{{if $edit}}<button type="button" class="edit-section" data-edit-section="{{.Key}}">Edit</button>{{end}}</h2>
{{- if eq .Key "experience"}}
{{- range .Experience}}
<div class="entry">
<strong>{{.Role}}</strong>, {{.Company}}{{if .Location}} &middot; {{.Location}}{{end}}
{{- if or .StartDate .EndDate}}<span class="entry-dates">{{.StartDate}}{{if .EndDate}} &ndash; {{.EndDate}}{{end}}</span>{{end}}
{{- if .Achievements}}
<ul class="achievements">
{{- range .Achievements}}
<li>{{.Content}}</li>
{{- end}}
</ul>
{{- end}}
</div>
{{- end}}
{{- else if eq .Key "education"}}
{{- range .Education}}
<div class="entry">
<strong>{{.School}}</strong>{{if .Degree}}, {{.Degree}}{{end}}{{if .Field}} in {{.Field}}{{end}}
{{- if or .StartDate .EndDate}}<span class="entry-dates">{{.StartDate}}{{if .EndDate}} &ndash; {{.EndDate}}{{end}}</span>{{end}}
{{- if .Description}}
<div class="entry-description">{{.Description}}</div>
{{- end}}
</div>
{{- end}}
{{- else if eq .Key "projects"}}
{{- range .Projects}}
<div class="entry">
<strong>{{.Name}}</strong>{{if .URL}} &middot; {{.URL}}{{end}}
{{- if .Description}}
<div class="entry-description">{{.Description}}</div>
{{- end}}
{{- if .Achievements}}
<ul class="achievements">
{{- range .Achievements}}
<li>{{.Content}}</li>
{{- end}}
</ul>
{{- end}}
</div>
{{- end}}
{{- else if eq .Key "skills"}}
<ul class="skills">
{{- range .Skills}}
<li>{{.Name}}{{if .Level}} ({{.Level}}){{end}}</li>
{{- end}}
</ul>
{{- else if eq .Key "certifications"}}
{{- range .Certifications}}
<div class="entry">
<strong>{{.Name}}</strong>{{if .Issuer}}, {{.Issuer}}{{end}}{{if .Date}}<span class="entry-dates">{{.Date}}</span>{{end}}
</div>
{{- end}}
{{- else if eq .Key "references"}}
{{- range .References}}
<div class="entry">
<strong>{{.Name}}</strong>{{if .Position}}, {{.Position}}{{end}}{{if .Company}} &middot; {{.Company}}{{end}}
{{- if or .Email .Phone}}
<div class="entry-description">{{.Email}}{{if and .Email .Phone}} &middot; {{end}}{{.Phone}}</div>
{{- end}}
</div>
{{- end}}
{{- else if eq .Key "custom_sections"}}
{{- range .CustomSections}}
<div class="entry">
<strong>{{.Title}}</strong>{{if .Subtitle}}, {{.Subtitle}}{{end}}
{{- if .Description}}
<div class="entry-description">{{.Description}}</div>
{{- end}}
{{- if .Achievements}}
<ul class="achievements">
{{- range .Achievements}}
<li>{{.Content}}</li>
{{- end}}
</ul>
{{- end}}
</div>
{{- end}}
{{- end}}
</section>
{{- end}}
{{- if .Markers}}
{{.Markers}}
{{- end}}
</div>
</body>
</html>
`
