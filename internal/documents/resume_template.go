package documents

import (
	"bytes"
	"fmt"
	"html/template"
)

var resumeTmpl = template.Must(template.New("resume").Funcs(template.FuncMap{
	"month": FormatMonth,
}).Parse(resumeTemplateHTML))

// RenderResumeHTML produces the HTML document submitted to the rendering
// API for résumé PDF generation.
func RenderResumeHTML(r *Resume) (string, error) {
	var buf bytes.Buffer
	if err := resumeTmpl.Execute(&buf, r); err != nil {
		return "", fmt.Errorf("failed to render resume template: %w", err)
	}
	return buf.String(), nil
}

const resumeTemplateHTML = `<!DOCTYPE html>
<html>
<head>
<meta charset="UTF-8">
<style>
* { margin: 0; padding: 0; box-sizing: border-box; }
body {
  font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', Roboto, 'Helvetica Neue', Arial, sans-serif;
  color: #374151;
  line-height: 1.5;
  background: white;
}
.resume { max-width: 800px; margin: 0 auto; padding: 48px; }
.section { font-size: 12px; font-weight: 700; color: #111827; text-transform: uppercase; letter-spacing: 0.1em; border-bottom: 1px solid #d1d5db; padding-bottom: 4px; margin-bottom: 16px; }
.entry-title { font-size: 14px; font-weight: 600; color: #111827; margin: 0; }
.entry-sub { font-size: 13px; color: #4b5563; margin: 2px 0 0 0; }
.entry-dates { font-size: 12px; color: #6b7280; margin: 0; text-align: right; white-space: nowrap; }
</style>
</head>
<body>
<div class="resume">
  <div style="text-align: center; margin-bottom: 24px; padding-bottom: 16px; border-bottom: 2px solid #111827;">
    <h1 style="font-size: 26px; font-weight: 700; color: #111827;">{{.FullName}}</h1>
    <p style="font-size: 13px; color: #4b5563; margin-top: 4px;">
      {{.Email}}{{if .Phone}} | {{.Phone}}{{end}}{{if .Location}} | {{.Location}}{{end}}
    </p>
    {{if or .LinkedIn .Portfolio}}
    <p style="font-size: 13px; color: #4b5563;">
      {{.LinkedIn}}{{if and .LinkedIn .Portfolio}} | {{end}}{{.Portfolio}}
    </p>
    {{end}}
  </div>

  {{if .Summary}}
  <div style="margin-bottom: 24px;">
    <h2 class="section">Professional Summary</h2>
    <p style="font-size: 13px; color: #374151; white-space: pre-wrap;">{{.Summary}}</p>
  </div>
  {{end}}

  {{if .HasWorkExperience}}
  <div style="margin-bottom: 24px;">
    <h2 class="section">Work Experience</h2>
    {{range .WorkExperience}}{{if or .JobTitle .Company}}
    <div style="margin-bottom: 16px;">
      <div style="display: flex; justify-content: space-between; align-items: flex-start;">
        <div>
          <h3 class="entry-title">{{if .JobTitle}}{{.JobTitle}}{{else}}Job Title{{end}}</h3>
          <p class="entry-sub">{{.Company}}{{if .Location}} | {{.Location}}{{end}}</p>
        </div>
        <p class="entry-dates">{{month .StartDate}}{{if .StartDate}} - {{end}}{{if .IsCurrentRole}}Present{{else}}{{month .EndDate}}{{end}}</p>
      </div>
      {{if .Description}}<div style="margin-top: 8px; font-size: 13px; color: #374151; line-height: 1.5; white-space: pre-wrap;">{{.Description}}</div>{{end}}
    </div>
    {{end}}{{end}}
  </div>
  {{end}}

  {{if .HasEducation}}
  <div style="margin-bottom: 24px;">
    <h2 class="section">Education</h2>
    {{range .Education}}{{if or .Degree .School}}
    <div style="margin-bottom: 12px;">
      <div style="display: flex; justify-content: space-between; align-items: flex-start;">
        <div>
          <h3 class="entry-title">{{.Degree}}</h3>
          <p class="entry-sub">{{.School}}{{if .Location}} | {{.Location}}{{end}}{{if .GPA}} | GPA: {{.GPA}}{{end}}</p>
        </div>
        <p class="entry-dates">{{month .GraduationDate}}</p>
      </div>
    </div>
    {{end}}{{end}}
  </div>
  {{end}}

  {{if .HasSkills}}
  <div style="margin-bottom: 24px;">
    <h2 class="section">Skills</h2>
    <p style="font-size: 13px; color: #374151;">{{.Skills}}</p>
  </div>
  {{end}}

  {{if .HasLanguages}}
  <div style="margin-bottom: 24px;">
    <h2 class="section">Languages</h2>
    <p style="font-size: 13px; color: #374151;">
      {{range $i, $lang := .Languages}}{{if $lang.Language}}{{if $i}}, {{end}}{{$lang.Language}} ({{$lang.Proficiency}}){{end}}{{end}}
    </p>
  </div>
  {{end}}
</div>
</body>
</html>
`
