package db

import (
	"sort"
	"strings"
	"time"

	"github.com/jonathan/resume-builder/internal/sections"
	"github.com/jonathan/resume-builder/internal/types"
)

// Canonicalize rewrites a stored document into its server-canonical
// form: whitespace trimmed, empty instances dropped, tag lists cleaned,
// and dated sections ordered most recent first. Editable placeholders
// are a client concern and never persist.
func Canonicalize(doc *types.Document) {
	trimPersonalInfo(&doc.PersonalInfo)
	doc.AboutMe.AboutMe = strings.TrimSpace(doc.AboutMe.AboutMe)

	doc.Education = sections.FilledEducation(doc.Education)
	for i := range doc.Education {
		trimEducation(&doc.Education[i])
	}
	sortByStartDate(doc.Education, func(e types.Education) string { return e.StartDate })

	doc.Experience = sections.FilledExperience(doc.Experience)
	for i := range doc.Experience {
		trimExperience(&doc.Experience[i])
	}
	sortByStartDate(doc.Experience, func(e types.Experience) string { return e.StartDate })

	doc.Projects = sections.FilledProjects(doc.Projects)
	for i := range doc.Projects {
		doc.Projects[i].ProjectTitle = strings.TrimSpace(doc.Projects[i].ProjectTitle)
		doc.Projects[i].Description = strings.TrimSpace(doc.Projects[i].Description)
	}

	doc.Certifications = sections.FilledCertifications(doc.Certifications)
	for i := range doc.Certifications {
		trimCertification(&doc.Certifications[i])
	}

	doc.Languages = sections.FilledLanguages(doc.Languages)
	for i := range doc.Languages {
		doc.Languages[i].Language = strings.TrimSpace(doc.Languages[i].Language)
		doc.Languages[i].Level = strings.TrimSpace(doc.Languages[i].Level)
	}

	doc.Skills = sections.CleanTags(doc.Skills)
	doc.Interests = sections.CleanTags(doc.Interests)
}

// Title derives the dashboard title of a document.
func Title(doc *types.Document) string {
	if name := strings.TrimSpace(doc.PersonalInfo.FullName); name != "" {
		return name
	}
	return "Untitled resume"
}

func trimPersonalInfo(p *types.PersonalInfo) {
	p.FullName = strings.TrimSpace(p.FullName)
	p.JobTitle = strings.TrimSpace(p.JobTitle)
	p.Email = strings.TrimSpace(p.Email)
	p.PhoneNumber = strings.TrimSpace(p.PhoneNumber)
	p.Location = strings.TrimSpace(p.Location)
	p.LinkedinProfile = strings.TrimSpace(p.LinkedinProfile)
	p.Portfolio = strings.TrimSpace(p.Portfolio)
	p.ProfilePicture = strings.TrimSpace(p.ProfilePicture)
}

func trimEducation(e *types.Education) {
	e.Degree = strings.TrimSpace(e.Degree)
	e.Institution = strings.TrimSpace(e.Institution)
	e.Location = strings.TrimSpace(e.Location)
	e.StartDate = strings.TrimSpace(e.StartDate)
	e.EndDate = strings.TrimSpace(e.EndDate)
	e.Description = strings.TrimSpace(e.Description)
	e.CGPA = strings.TrimSpace(e.CGPA)
}

func trimExperience(e *types.Experience) {
	e.ExperienceType = strings.TrimSpace(e.ExperienceType)
	e.JobTitle = strings.TrimSpace(e.JobTitle)
	e.CompanyName = strings.TrimSpace(e.CompanyName)
	e.Location = strings.TrimSpace(e.Location)
	e.StartDate = strings.TrimSpace(e.StartDate)
	e.EndDate = strings.TrimSpace(e.EndDate)
	e.Responsibilities = strings.TrimSpace(e.Responsibilities)
}

func trimCertification(c *types.Certification) {
	c.CertificationName = strings.TrimSpace(c.CertificationName)
	c.Issuer = strings.TrimSpace(c.Issuer)
	c.IssuedDate = strings.TrimSpace(c.IssuedDate)
	c.SkillsCovered = sections.CleanTags(c.SkillsCovered)
}

// sortByStartDate orders instances most recent first. Instances whose
// start date does not parse keep their relative order at the end.
func sortByStartDate[T any](items []T, start func(T) string) {
	sort.SliceStable(items, func(i, j int) bool {
		ti, oki := parseMonth(start(items[i]))
		tj, okj := parseMonth(start(items[j]))
		if oki != okj {
			return oki
		}
		if !oki {
			return false
		}
		return ti.After(tj)
	})
}

func parseMonth(s string) (time.Time, bool) {
	for _, layout := range []string{"2006-01", "2006-01-02"} {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}
