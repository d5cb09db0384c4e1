package types

// Patch is a partial update to one section instance. Nil fields are
// left untouched; patches merge into the target, they never replace it.
type Patch interface {
	// Section returns the section type this patch addresses.
	Section() SectionType
}

// AppendInstance addresses a new empty instance appended to a
// repeatable section instead of an existing index.
const AppendInstance = -1

// PersonalInfoPatch updates the personal details section.
type PersonalInfoPatch struct {
	FullName        *string
	JobTitle        *string
	Email           *string
	PhoneNumber     *string
	Location        *string
	LinkedinProfile *string
	Portfolio       *string
	ProfilePicture  *string
}

// Section implements Patch.
func (PersonalInfoPatch) Section() SectionType { return SectionPersonalInfo }

// AboutMePatch updates the about-me section.
type AboutMePatch struct {
	AboutMe *string
}

// Section implements Patch.
func (AboutMePatch) Section() SectionType { return SectionAboutMe }

// EducationPatch updates one education instance.
type EducationPatch struct {
	Degree      *string
	Institution *string
	Location    *string
	StartDate   *string
	EndDate     *string
	Description *string
	CGPA        *string
}

// Section implements Patch.
func (EducationPatch) Section() SectionType { return SectionEducation }

// ExperiencePatch updates one experience instance.
type ExperiencePatch struct {
	ExperienceType   *string
	JobTitle         *string
	CompanyName      *string
	Location         *string
	StartDate        *string
	EndDate          *string
	Responsibilities *string
}

// Section implements Patch.
func (ExperiencePatch) Section() SectionType { return SectionExperience }

// ProjectPatch updates one project instance.
type ProjectPatch struct {
	ProjectTitle *string
	Description  *string
}

// Section implements Patch.
func (ProjectPatch) Section() SectionType { return SectionProjects }

// CertificationPatch updates one certification instance. SkillsCovered
// is a full replacement of the tag list when non-nil.
type CertificationPatch struct {
	CertificationName *string
	Issuer            *string
	IssuedDate        *string
	SkillsCovered     []string
}

// Section implements Patch.
func (CertificationPatch) Section() SectionType { return SectionCertifications }

// LanguagePatch updates one language instance.
type LanguagePatch struct {
	Language *string
	Level    *string
}

// Section implements Patch.
func (LanguagePatch) Section() SectionType { return SectionLanguages }

// SkillsPatch replaces the whole skills tag list. Tag lists reorder by
// full-sequence replace, never by per-item moves.
type SkillsPatch struct {
	Skills []string
}

// Section implements Patch.
func (SkillsPatch) Section() SectionType { return SectionSkills }

// InterestsPatch replaces the whole interests tag list.
type InterestsPatch struct {
	Interests []string
}

// Section implements Patch.
func (InterestsPatch) Section() SectionType { return SectionInterests }

// PatchSection merges a partial instance into the document. For
// singular sections index is ignored. For repeatable sections index
// addresses an existing instance and AppendInstance appends a new
// empty one before merging. Tag-list patches always replace the whole
// list and ignore index.
func (d *Document) PatchSection(index int, p Patch) error {
	switch patch := p.(type) {
	case PersonalInfoPatch:
		patch.apply(&d.PersonalInfo)
	case AboutMePatch:
		if patch.AboutMe != nil {
			d.AboutMe.AboutMe = *patch.AboutMe
		}
	case EducationPatch:
		i, err := resolveIndex(p.Section(), index, len(d.Education))
		if err != nil {
			return err
		}
		if i == len(d.Education) {
			d.Education = append(d.Education, Education{})
		}
		patch.apply(&d.Education[i])
	case ExperiencePatch:
		i, err := resolveIndex(p.Section(), index, len(d.Experience))
		if err != nil {
			return err
		}
		if i == len(d.Experience) {
			d.Experience = append(d.Experience, Experience{})
		}
		patch.apply(&d.Experience[i])
	case ProjectPatch:
		i, err := resolveIndex(p.Section(), index, len(d.Projects))
		if err != nil {
			return err
		}
		if i == len(d.Projects) {
			d.Projects = append(d.Projects, Project{})
		}
		patch.apply(&d.Projects[i])
	case CertificationPatch:
		i, err := resolveIndex(p.Section(), index, len(d.Certifications))
		if err != nil {
			return err
		}
		if i == len(d.Certifications) {
			d.Certifications = append(d.Certifications, Certification{})
		}
		patch.apply(&d.Certifications[i])
	case LanguagePatch:
		i, err := resolveIndex(p.Section(), index, len(d.Languages))
		if err != nil {
			return err
		}
		if i == len(d.Languages) {
			d.Languages = append(d.Languages, Language{})
		}
		patch.apply(&d.Languages[i])
	case SkillsPatch:
		d.Skills = append([]string(nil), patch.Skills...)
	case InterestsPatch:
		d.Interests = append([]string(nil), patch.Interests...)
	default:
		return &UnknownSectionError{Section: p.Section()}
	}
	return nil
}

// RemoveInstance removes one instance from a repeatable section. The
// editor keeps at least one instance addressable, so removing the last
// remaining instance resets it to empty instead of shrinking to zero.
func (d *Document) RemoveInstance(section SectionType, index int) error {
	if !section.IsRepeatable() {
		return &UnknownSectionError{Section: section}
	}
	switch section {
	case SectionEducation:
		return removeAt(&d.Education, section, index)
	case SectionExperience:
		return removeAt(&d.Experience, section, index)
	case SectionProjects:
		return removeAt(&d.Projects, section, index)
	case SectionCertifications:
		return removeAt(&d.Certifications, section, index)
	case SectionLanguages:
		return removeAt(&d.Languages, section, index)
	default:
		return &UnknownSectionError{Section: section}
	}
}

// resolveIndex maps AppendInstance to the append position and bounds-checks
// everything else.
func resolveIndex(section SectionType, index, length int) (int, error) {
	if index == AppendInstance {
		return length, nil
	}
	if index < 0 || index >= length {
		return 0, &IndexOutOfRangeError{Section: section, Index: index, Length: length}
	}
	return index, nil
}

func removeAt[T any](instances *[]T, section SectionType, index int) error {
	s := *instances
	if index < 0 || index >= len(s) {
		return &IndexOutOfRangeError{Section: section, Index: index, Length: len(s)}
	}
	if len(s) == 1 {
		var zero T
		s[0] = zero
		return nil
	}
	*instances = append(s[:index], s[index+1:]...)
	return nil
}

func (p PersonalInfoPatch) apply(dst *PersonalInfo) {
	setIf(&dst.FullName, p.FullName)
	setIf(&dst.JobTitle, p.JobTitle)
	setIf(&dst.Email, p.Email)
	setIf(&dst.PhoneNumber, p.PhoneNumber)
	setIf(&dst.Location, p.Location)
	setIf(&dst.LinkedinProfile, p.LinkedinProfile)
	setIf(&dst.Portfolio, p.Portfolio)
	setIf(&dst.ProfilePicture, p.ProfilePicture)
}

func (p EducationPatch) apply(dst *Education) {
	setIf(&dst.Degree, p.Degree)
	setIf(&dst.Institution, p.Institution)
	setIf(&dst.Location, p.Location)
	setIf(&dst.StartDate, p.StartDate)
	setIf(&dst.EndDate, p.EndDate)
	setIf(&dst.Description, p.Description)
	setIf(&dst.CGPA, p.CGPA)
}

func (p ExperiencePatch) apply(dst *Experience) {
	setIf(&dst.ExperienceType, p.ExperienceType)
	setIf(&dst.JobTitle, p.JobTitle)
	setIf(&dst.CompanyName, p.CompanyName)
	setIf(&dst.Location, p.Location)
	setIf(&dst.StartDate, p.StartDate)
	setIf(&dst.EndDate, p.EndDate)
	setIf(&dst.Responsibilities, p.Responsibilities)
}

func (p ProjectPatch) apply(dst *Project) {
	setIf(&dst.ProjectTitle, p.ProjectTitle)
	setIf(&dst.Description, p.Description)
}

func (p CertificationPatch) apply(dst *Certification) {
	setIf(&dst.CertificationName, p.CertificationName)
	setIf(&dst.Issuer, p.Issuer)
	setIf(&dst.IssuedDate, p.IssuedDate)
	if p.SkillsCovered != nil {
		dst.SkillsCovered = append([]string(nil), p.SkillsCovered...)
	}
}

func (p LanguagePatch) apply(dst *Language) {
	setIf(&dst.Language, p.Language)
	setIf(&dst.Level, p.Level)
}

func setIf(dst *string, src *string) {
	if src != nil {
		*dst = *src
	}
}

// Str is a convenience for building patches from literals.
func Str(s string) *string { return &s }
