package types

// SectionPayload is the wire form of one section's instances, used by
// both sides of the persistence API: the client sends the filled
// instances of a section, the server answers with the canonical ones.
// Only the slot named by Section is meaningful.
type SectionPayload struct {
	Section SectionType `json:"section"`

	PersonalInfo   *PersonalInfo   `json:"personal_details,omitempty"`
	AboutMe        *AboutMe        `json:"about_me,omitempty"`
	Education      []Education     `json:"educations,omitempty"`
	Experience     []Experience    `json:"experiences,omitempty"`
	Skills         []string        `json:"skills,omitempty"`
	Projects       []Project       `json:"projects,omitempty"`
	Certifications []Certification `json:"certifications,omitempty"`
	Interests      []string        `json:"interests,omitempty"`
	Languages      []Language      `json:"languages,omitempty"`
}

// PayloadFrom extracts one section slot of a document as a payload.
func PayloadFrom(doc *Document, section SectionType) SectionPayload {
	p := SectionPayload{Section: section}
	switch section {
	case SectionPersonalInfo:
		info := doc.PersonalInfo
		p.PersonalInfo = &info
	case SectionAboutMe:
		about := doc.AboutMe
		p.AboutMe = &about
	case SectionEducation:
		p.Education = doc.Education
	case SectionExperience:
		p.Experience = doc.Experience
	case SectionSkills:
		p.Skills = doc.Skills
	case SectionProjects:
		p.Projects = doc.Projects
	case SectionCertifications:
		p.Certifications = doc.Certifications
	case SectionInterests:
		p.Interests = doc.Interests
	case SectionLanguages:
		p.Languages = doc.Languages
	}
	return p
}

// ApplyTo writes the payload's slot into the document. Absent list
// slots become empty lists, never nil holes.
func (p *SectionPayload) ApplyTo(doc *Document) {
	switch p.Section {
	case SectionPersonalInfo:
		if p.PersonalInfo != nil {
			doc.PersonalInfo = *p.PersonalInfo
		} else {
			doc.PersonalInfo = PersonalInfo{}
		}
	case SectionAboutMe:
		if p.AboutMe != nil {
			doc.AboutMe = *p.AboutMe
		} else {
			doc.AboutMe = AboutMe{}
		}
	case SectionEducation:
		doc.Education = append([]Education{}, p.Education...)
	case SectionExperience:
		doc.Experience = append([]Experience{}, p.Experience...)
	case SectionSkills:
		doc.Skills = append([]string{}, p.Skills...)
	case SectionProjects:
		doc.Projects = append([]Project{}, p.Projects...)
	case SectionCertifications:
		doc.Certifications = append([]Certification{}, p.Certifications...)
	case SectionInterests:
		doc.Interests = append([]string{}, p.Interests...)
	case SectionLanguages:
		doc.Languages = append([]Language{}, p.Languages...)
	}
}
