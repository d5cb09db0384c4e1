package types

// CopySectionFrom overwrites one section slot of d with the same slot
// of src, deep-copying list data. Used when a canonical server
// response replaces locally edited section data.
func (d *Document) CopySectionFrom(src *Document, section SectionType) {
	switch section {
	case SectionPersonalInfo:
		d.PersonalInfo = src.PersonalInfo
	case SectionAboutMe:
		d.AboutMe = src.AboutMe
	case SectionEducation:
		d.Education = append([]Education(nil), src.Education...)
	case SectionExperience:
		d.Experience = append([]Experience(nil), src.Experience...)
	case SectionSkills:
		d.Skills = append([]string(nil), src.Skills...)
	case SectionProjects:
		d.Projects = append([]Project(nil), src.Projects...)
	case SectionCertifications:
		d.Certifications = make([]Certification, len(src.Certifications))
		for i, c := range src.Certifications {
			c.SkillsCovered = append([]string(nil), c.SkillsCovered...)
			d.Certifications[i] = c
		}
	case SectionInterests:
		d.Interests = append([]string(nil), src.Interests...)
	case SectionLanguages:
		d.Languages = append([]Language(nil), src.Languages...)
	}
}
