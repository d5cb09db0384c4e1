// Package types provides type definitions for structured data used throughout the resume-builder system.
//
//nolint:revive // types is a standard Go package name pattern
package types

import (
	"time"

	"github.com/google/uuid"
)

// SectionType identifies one of the nine resume sections.
// The values double as the URL path segments of the persistence API.
type SectionType string

// Section type constants, in display order.
const (
	SectionPersonalInfo   SectionType = "personal-details"
	SectionAboutMe        SectionType = "about-me"
	SectionEducation      SectionType = "educations"
	SectionExperience     SectionType = "experiences"
	SectionSkills         SectionType = "skills"
	SectionProjects       SectionType = "projects"
	SectionCertifications SectionType = "certifications"
	SectionInterests      SectionType = "interests"
	SectionLanguages      SectionType = "languages"
)

// AllSections lists every section type in display order.
func AllSections() []SectionType {
	return []SectionType{
		SectionPersonalInfo,
		SectionAboutMe,
		SectionEducation,
		SectionExperience,
		SectionSkills,
		SectionProjects,
		SectionCertifications,
		SectionInterests,
		SectionLanguages,
	}
}

// IsRepeatable reports whether a section holds an ordered list of instances.
// Singular sections (personal details, about me) have exactly one instance.
func (s SectionType) IsRepeatable() bool {
	return s != SectionPersonalInfo && s != SectionAboutMe
}

// Valid reports whether s is a known section type.
func (s SectionType) Valid() bool {
	for _, known := range AllSections() {
		if s == known {
			return true
		}
	}
	return false
}

// Experience discriminator values. An unset discriminator opts the
// whole instance out of validation and persistence.
const (
	ExperienceWork       = "Work"
	ExperienceInternship = "Internship"
)

// LanguageLevels is the closed set of accepted proficiency levels.
var LanguageLevels = []string{"Beginner", "Intermediate", "Fluent", "Native"}

// PersonalInfo is the singular contact/header section.
type PersonalInfo struct {
	FullName        string `json:"full_name"`
	JobTitle        string `json:"job_title,omitempty"`
	Email           string `json:"email"`
	PhoneNumber     string `json:"phone_number"`
	Location        string `json:"location"`
	LinkedinProfile string `json:"linkedin_profile,omitempty"`
	Portfolio       string `json:"portfolio,omitempty"`
	ProfilePicture  string `json:"profile_picture,omitempty"`
}

// AboutMe is the singular free-text summary section.
type AboutMe struct {
	AboutMe string `json:"about_me"`
}

// Education is one schooling entry. Dates are "YYYY-MM" month strings.
type Education struct {
	Degree      string `json:"degree"`
	Institution string `json:"institution"`
	Location    string `json:"location"`
	StartDate   string `json:"start_date"`
	EndDate     string `json:"end_date"`
	Description string `json:"description,omitempty"`
	CGPA        string `json:"cgpa"`
}

// Experience is one work or internship entry. While ExperienceType is
// unset the instance counts as empty regardless of the other fields.
type Experience struct {
	ExperienceType   string `json:"experience_type"`
	JobTitle         string `json:"job_title"`
	CompanyName      string `json:"company_name"`
	Location         string `json:"location"`
	StartDate        string `json:"start_date"`
	EndDate          string `json:"end_date"`
	Responsibilities string `json:"responsibilities"`
}

// Project is one project entry. Valid only entirely empty or entirely filled.
type Project struct {
	ProjectTitle string `json:"project_title"`
	Description  string `json:"description"`
}

// Certification is one certification entry. Valid only entirely empty
// or entirely filled.
type Certification struct {
	CertificationName string   `json:"certification_name"`
	Issuer            string   `json:"issuer"`
	IssuedDate        string   `json:"issued_date"`
	SkillsCovered     []string `json:"skills_covered"`
}

// Language pairs a language name with a proficiency level.
type Language struct {
	Language string `json:"language"`
	Level    string `json:"level"`
}

// Document is one resume draft: identity plus all nine section slots.
// ID is uuid.Nil until the first successful remote save; once assigned
// it is tied to exactly one remote record.
type Document struct {
	ID        uuid.UUID  `json:"id,omitempty"`
	CreatedAt *time.Time `json:"created_at,omitempty"`

	PersonalInfo   PersonalInfo    `json:"personal_details"`
	AboutMe        AboutMe         `json:"about_me"`
	Education      []Education     `json:"educations"`
	Experience     []Experience    `json:"experiences"`
	Skills         []string        `json:"skills"`
	Projects       []Project       `json:"projects"`
	Certifications []Certification `json:"certifications"`
	Interests      []string        `json:"interests"`
	Languages      []Language      `json:"languages"`
}

// NewDocument returns an unsaved draft: singular sections blank, each
// struct-instance repeatable section seeded with one empty placeholder
// so the editor always has an addressable row, tag lists empty.
func NewDocument() *Document {
	return &Document{
		Education:      []Education{{}},
		Experience:     []Experience{{}},
		Projects:       []Project{{}},
		Certifications: []Certification{{}},
		Languages:      []Language{{}},
		Skills:         []string{},
		Interests:      []string{},
	}
}

// EnsureEditable backfills the editing placeholders after a fetch:
// repeatable struct sections missing from the server payload get one
// empty instance so the editor stays addressable, tag lists become
// non-nil. The persisted form never carries these placeholders.
func (d *Document) EnsureEditable() {
	if len(d.Education) == 0 {
		d.Education = []Education{{}}
	}
	if len(d.Experience) == 0 {
		d.Experience = []Experience{{}}
	}
	if len(d.Projects) == 0 {
		d.Projects = []Project{{}}
	}
	if len(d.Certifications) == 0 {
		d.Certifications = []Certification{{}}
	}
	if len(d.Languages) == 0 {
		d.Languages = []Language{{}}
	}
	if d.Skills == nil {
		d.Skills = []string{}
	}
	if d.Interests == nil {
		d.Interests = []string{}
	}
}

// Saved reports whether the document is backed by a remote record.
func (d *Document) Saved() bool {
	return d.ID != uuid.Nil
}

// Clone returns a deep copy of the document.
func (d *Document) Clone() *Document {
	out := *d
	if d.CreatedAt != nil {
		t := *d.CreatedAt
		out.CreatedAt = &t
	}
	out.Education = append([]Education(nil), d.Education...)
	out.Experience = append([]Experience(nil), d.Experience...)
	out.Skills = append([]string(nil), d.Skills...)
	out.Projects = append([]Project(nil), d.Projects...)
	out.Certifications = make([]Certification, len(d.Certifications))
	for i, c := range d.Certifications {
		c.SkillsCovered = append([]string(nil), c.SkillsCovered...)
		out.Certifications[i] = c
	}
	out.Interests = append([]string(nil), d.Interests...)
	out.Languages = append([]Language(nil), d.Languages...)
	return &out
}

// InstanceCount returns the number of instances currently held for a
// repeatable section, or 1 for singular sections.
func (d *Document) InstanceCount(section SectionType) int {
	switch section {
	case SectionEducation:
		return len(d.Education)
	case SectionExperience:
		return len(d.Experience)
	case SectionSkills:
		return len(d.Skills)
	case SectionProjects:
		return len(d.Projects)
	case SectionCertifications:
		return len(d.Certifications)
	case SectionInterests:
		return len(d.Interests)
	case SectionLanguages:
		return len(d.Languages)
	default:
		return 1
	}
}
