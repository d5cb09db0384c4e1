package assembly

import (
	"fmt"
	"html/template"
	"strings"
)

// documentHTML is the A4 markup both the export renderer and any
// HTML-based preview consume. Section blocks render only when the
// assembled projection carries content for them.
const documentHTML = `<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<style>
  @page { size: A4; margin: 18mm; }
  body { font-family: Helvetica, Arial, sans-serif; font-size: 11pt; line-height: 1.4; color: #333; }
  h1 { font-size: 18pt; margin: 0 0 4pt; }
  h2 { font-size: 13pt; border-bottom: 1px solid #999; padding-bottom: 2pt; margin: 14pt 0 6pt; }
  .job-title { margin: 0 0 3pt; }
  .contact { font-size: 9pt; color: #555; }
  .entry { margin-bottom: 8pt; }
  .entry-head { font-weight: bold; }
  .entry-meta { font-size: 9pt; color: #555; }
</style>
</head>
<body>
  <header class="section" id="personal-details">
    <h1>{{.FullName}}</h1>
    {{if .JobTitle}}<p class="job-title">{{.JobTitle}}</p>{{end}}
    {{if .HasContact}}<p class="contact">{{.Email}} | {{.PhoneNumber}} | {{.Location}}</p>{{end}}
    {{if .Linkedin}}<p class="contact">{{.Linkedin}}</p>{{end}}
    {{if .Portfolio}}<p class="contact">{{.Portfolio}}</p>{{end}}
  </header>

  {{if .AboutMe}}
  <section id="about-me">
    <h2>About Me</h2>
    <p>{{.AboutMe}}</p>
  </section>
  {{end}}

  {{if .Education}}
  <section id="educations">
    <h2>Education</h2>
    {{range .Education}}
    <div class="entry">
      <div class="entry-head">{{.Title}}, {{.Org}}</div>
      <div class="entry-meta">{{.Location}} | {{.Period}} | CGPA: {{.Grade}}</div>
      {{if .Detail}}<p>{{.Detail}}</p>{{end}}
    </div>
    {{end}}
  </section>
  {{end}}

  {{if .Work}}
  <section id="work-experience">
    <h2>Work Experience</h2>
    {{range .Work}}
    <div class="entry">
      <div class="entry-head">{{.Title}}, {{.Org}}</div>
      <div class="entry-meta">{{.Location}} | {{.Period}}</div>
      <p>{{.Detail}}</p>
    </div>
    {{end}}
  </section>
  {{end}}

  {{if .Internships}}
  <section id="internships">
    <h2>Internships</h2>
    {{range .Internships}}
    <div class="entry">
      <div class="entry-head">{{.Title}}, {{.Org}}</div>
      <div class="entry-meta">{{.Location}} | {{.Period}}</div>
      <p>{{.Detail}}</p>
    </div>
    {{end}}
  </section>
  {{end}}

  {{if .Skills}}
  <section id="skills">
    <h2>Skills</h2>
    <p>{{.Skills}}</p>
  </section>
  {{end}}

  {{if .Projects}}
  <section id="projects">
    <h2>Projects</h2>
    {{range .Projects}}
    <div class="entry">
      <div class="entry-head">{{.Title}}</div>
      <p>{{.Description}}</p>
    </div>
    {{end}}
  </section>
  {{end}}

  {{if .Certifications}}
  <section id="certifications">
    <h2>Certifications</h2>
    {{range .Certifications}}
    <div class="entry">
      <div class="entry-head">{{.Name}}</div>
      <div class="entry-meta">{{.Issuer}} | {{.Issued}}</div>
      {{if .Skills}}<p>Skills: {{.Skills}}</p>{{end}}
    </div>
    {{end}}
  </section>
  {{end}}

  {{if .Interests}}
  <section id="interests">
    <h2>Interests</h2>
    <p>{{.Interests}}</p>
  </section>
  {{end}}

  {{if .Languages}}
  <section id="languages">
    <h2>Languages</h2>
    {{range .Languages}}<p>{{.Language}} - {{.Level}}</p>{{end}}
  </section>
  {{end}}
</body>
</html>`

var documentTemplate = template.Must(template.New("resume").Parse(documentHTML))

// RenderHTML renders an assembled resume to the static document
// markup handed to the PDF renderer.
func RenderHTML(r *Resume) (string, error) {
	var sb strings.Builder
	if err := documentTemplate.Execute(&sb, r); err != nil {
		return "", fmt.Errorf("failed to render resume HTML: %w", err)
	}
	return sb.String(), nil
}
