package assembly

import (
	"github.com/jonathan/resume-builder/internal/sections"
	"github.com/jonathan/resume-builder/internal/types"
)

// EntryView is one dated entry (education, work, internship) with its
// display fields already formatted.
type EntryView struct {
	Title    string // degree or job title
	Org      string // institution or company
	Location string
	Period   string
	Detail   string // description or responsibilities
	Grade    string // CGPA, education only
}

// ProjectView is one project entry.
type ProjectView struct {
	Title       string
	Description string
}

// CertificationView is one certification entry.
type CertificationView struct {
	Name   string
	Issuer string
	Issued string
	Skills string // joined tag list
}

// LanguageView is one language/proficiency pair.
type LanguageView struct {
	Language string
	Level    string
}

// Resume is the assembled display form of a document. Sections left
// empty by the user are absent (zero-length) rather than padded.
type Resume struct {
	FullName    string
	JobTitle    string
	Email       string
	PhoneNumber string
	Location    string
	Linkedin    string
	Portfolio   string

	AboutMe        string
	Education      []EntryView
	Work           []EntryView
	Internships    []EntryView
	Skills         string // joined tag list
	Projects       []ProjectView
	Certifications []CertificationView
	Interests      string // joined tag list
	Languages      []LanguageView
}

// Preview assembles the live work-in-progress view: every non-empty
// instance is included, valid or not, so the preview tracks keystrokes.
func Preview(doc *types.Document) *Resume {
	return project(doc, false)
}

// Export assembles the final document view: only filled, schema-valid
// instances survive, and an unsaved draft cannot export at all.
func Export(doc *types.Document) (*Resume, error) {
	if !doc.Saved() {
		return nil, &NotReadyForExportError{}
	}
	return project(doc, true), nil
}

// project is the single derivation both modes share. strict drops
// instances that fail their section schema.
func project(doc *types.Document, strict bool) *Resume {
	r := &Resume{
		AboutMe:   doc.AboutMe.AboutMe,
		Skills:    JoinTags(doc.Skills),
		Interests: JoinTags(doc.Interests),
	}

	if sections.ClassifyPersonalInfo(doc.PersonalInfo) == sections.Filled {
		if !strict || len(sections.ValidatePersonalInfo(doc.PersonalInfo)) == 0 {
			r.FullName = doc.PersonalInfo.FullName
			r.JobTitle = doc.PersonalInfo.JobTitle
			r.Email = doc.PersonalInfo.Email
			r.PhoneNumber = doc.PersonalInfo.PhoneNumber
			r.Location = doc.PersonalInfo.Location
			r.Linkedin = doc.PersonalInfo.LinkedinProfile
			r.Portfolio = doc.PersonalInfo.Portfolio
		}
	}
	if strict && len(sections.ValidateAboutMe(doc.AboutMe)) != 0 {
		r.AboutMe = ""
	}
	if sections.ClassifyAboutMe(doc.AboutMe) == sections.Empty {
		r.AboutMe = ""
	}

	for i, e := range sections.FilledEducation(doc.Education) {
		if strict && len(sections.ValidateEducation(i, e)) != 0 {
			continue
		}
		r.Education = append(r.Education, EntryView{
			Title:    e.Degree,
			Org:      e.Institution,
			Location: e.Location,
			Period:   FormatPeriod(e.StartDate, e.EndDate),
			Detail:   e.Description,
			Grade:    e.CGPA,
		})
	}

	// Experience splits into Work and Internship display blocks, kept
	// in document order within each block.
	for i, e := range sections.FilledExperience(doc.Experience) {
		if strict && len(sections.ValidateExperience(i, e)) != 0 {
			continue
		}
		view := EntryView{
			Title:    e.JobTitle,
			Org:      e.CompanyName,
			Location: e.Location,
			Period:   FormatPeriod(e.StartDate, e.EndDate),
			Detail:   e.Responsibilities,
		}
		switch e.ExperienceType {
		case types.ExperienceWork:
			r.Work = append(r.Work, view)
		case types.ExperienceInternship:
			r.Internships = append(r.Internships, view)
		}
	}

	for i, p := range sections.FilledProjects(doc.Projects) {
		if strict && len(sections.ValidateProject(i, p)) != 0 {
			continue
		}
		r.Projects = append(r.Projects, ProjectView{
			Title:       p.ProjectTitle,
			Description: p.Description,
		})
	}

	for i, c := range sections.FilledCertifications(doc.Certifications) {
		if strict && len(sections.ValidateCertification(i, c)) != 0 {
			continue
		}
		r.Certifications = append(r.Certifications, CertificationView{
			Name:   c.CertificationName,
			Issuer: c.Issuer,
			Issued: FormatDate(c.IssuedDate),
			Skills: JoinTags(c.SkillsCovered),
		})
	}

	for i, l := range sections.FilledLanguages(doc.Languages) {
		if strict && len(sections.ValidateLanguage(i, l)) != 0 {
			continue
		}
		r.Languages = append(r.Languages, LanguageView{Language: l.Language, Level: l.Level})
	}

	return r
}

// HasContact reports whether the header line has anything to show.
func (r *Resume) HasContact() bool {
	return r.Email != "" || r.PhoneNumber != "" || r.Location != ""
}
