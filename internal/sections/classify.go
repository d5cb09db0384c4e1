package sections

import (
	"strings"

	"github.com/jonathan/resume-builder/internal/types"
)

// FillState is the emptiness classification of one section instance.
type FillState int

// Fill states. Empty instances are always valid and are excluded from
// persistence and output; Filled instances must pass their schema.
const (
	Empty FillState = iota
	Filled
)

func (s FillState) String() string {
	if s == Filled {
		return "filled"
	}
	return "empty"
}

func blank(s string) bool { return strings.TrimSpace(s) == "" }

// CleanTags trims every tag and drops blanks. Both persistence and the
// render projections normalize tag lists through here so they agree.
func CleanTags(tags []string) []string {
	out := make([]string, 0, len(tags))
	for _, t := range tags {
		if trimmed := strings.TrimSpace(t); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

// ClassifyPersonalInfo reports whether any personal-details field is
// meaningfully filled.
func ClassifyPersonalInfo(p types.PersonalInfo) FillState {
	if blank(p.FullName) && blank(p.JobTitle) && blank(p.Email) && blank(p.PhoneNumber) &&
		blank(p.Location) && blank(p.LinkedinProfile) && blank(p.Portfolio) && blank(p.ProfilePicture) {
		return Empty
	}
	return Filled
}

// ClassifyAboutMe classifies the summary section.
func ClassifyAboutMe(a types.AboutMe) FillState {
	if blank(a.AboutMe) {
		return Empty
	}
	return Filled
}

// ClassifyEducation classifies one education instance.
func ClassifyEducation(e types.Education) FillState {
	if blank(e.Degree) && blank(e.Institution) && blank(e.Location) && blank(e.StartDate) &&
		blank(e.EndDate) && blank(e.Description) && blank(e.CGPA) {
		return Empty
	}
	return Filled
}

// ClassifyExperience classifies one experience instance. An unset
// discriminator short-circuits to Empty regardless of the other
// fields; that is how a user opts out of the whole section.
func ClassifyExperience(e types.Experience) FillState {
	if e.ExperienceType != types.ExperienceWork && e.ExperienceType != types.ExperienceInternship {
		return Empty
	}
	return Filled
}

// ClassifyProject classifies one project instance.
func ClassifyProject(p types.Project) FillState {
	if blank(p.ProjectTitle) && blank(p.Description) {
		return Empty
	}
	return Filled
}

// ClassifyCertification classifies one certification instance.
func ClassifyCertification(c types.Certification) FillState {
	if blank(c.CertificationName) && blank(c.Issuer) && blank(c.IssuedDate) && len(CleanTags(c.SkillsCovered)) == 0 {
		return Empty
	}
	return Filled
}

// ClassifyLanguage classifies one language instance.
func ClassifyLanguage(l types.Language) FillState {
	if blank(l.Language) && blank(l.Level) {
		return Empty
	}
	return Filled
}

// FilledEducation returns only the filled instances, in order.
func FilledEducation(in []types.Education) []types.Education {
	return keepFilled(in, ClassifyEducation)
}

// FilledExperience returns only the filled instances, in order.
func FilledExperience(in []types.Experience) []types.Experience {
	return keepFilled(in, ClassifyExperience)
}

// FilledProjects returns only the filled instances, in order.
func FilledProjects(in []types.Project) []types.Project {
	return keepFilled(in, ClassifyProject)
}

// FilledCertifications returns only the filled instances, in order.
func FilledCertifications(in []types.Certification) []types.Certification {
	return keepFilled(in, ClassifyCertification)
}

// FilledLanguages returns only the filled instances, in order.
func FilledLanguages(in []types.Language) []types.Language {
	return keepFilled(in, ClassifyLanguage)
}

func keepFilled[T any](in []T, classify func(T) FillState) []T {
	out := make([]T, 0, len(in))
	for _, inst := range in {
		if classify(inst) == Filled {
			out = append(out, inst)
		}
	}
	return out
}
