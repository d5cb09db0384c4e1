package sections

import (
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/jonathan/resume-builder/internal/types"
)

// Validation constants carried over from the editor's form rules.
const (
	minNameLen    = 2
	minPhoneLen   = 10
	minAboutMeLen = 50
	maxAboutMeLen = 1000
)

var validate = validator.New()

// dateLayouts accepted for start/end dates. Month inputs produce the
// first form; the second appears in older stored documents.
var dateLayouts = []string{"2006-01", "2006-01-02"}

func parseDate(s string) (time.Time, bool) {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, strings.TrimSpace(s)); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

func validEmail(s string) bool {
	return validate.Var(s, "email") == nil
}

func fieldErr(section types.SectionType, index int, field, message string) FieldError {
	return FieldError{Section: section, Index: index, Field: field, Message: message}
}

// ValidatePersonalInfo validates the personal-details section.
// Name, email, phone and location are required; links are optional.
func ValidatePersonalInfo(p types.PersonalInfo) []FieldError {
	var errs []FieldError
	if len(strings.TrimSpace(p.FullName)) < minNameLen {
		errs = append(errs, fieldErr(types.SectionPersonalInfo, 0, "full_name", "Full Name is required"))
	}
	switch {
	case blank(p.Email):
		errs = append(errs, fieldErr(types.SectionPersonalInfo, 0, "email", "Email is required"))
	case !validEmail(strings.TrimSpace(p.Email)):
		errs = append(errs, fieldErr(types.SectionPersonalInfo, 0, "email", "Invalid email"))
	}
	if len(strings.TrimSpace(p.PhoneNumber)) < minPhoneLen {
		errs = append(errs, fieldErr(types.SectionPersonalInfo, 0, "phone_number", "Phone Number is required"))
	}
	if blank(p.Location) {
		errs = append(errs, fieldErr(types.SectionPersonalInfo, 0, "location", "Location is required"))
	}
	return errs
}

// ValidateAboutMe validates the summary section.
func ValidateAboutMe(a types.AboutMe) []FieldError {
	text := strings.TrimSpace(a.AboutMe)
	switch {
	case len(text) < minAboutMeLen:
		return []FieldError{fieldErr(types.SectionAboutMe, 0, "about_me",
			fmt.Sprintf("About Me must be at least %d characters long", minAboutMeLen))}
	case len(text) > maxAboutMeLen:
		return []FieldError{fieldErr(types.SectionAboutMe, 0, "about_me",
			fmt.Sprintf("Keep it within %d characters", maxAboutMeLen))}
	}
	return nil
}

// ValidateEducation validates one education instance. The chronological
// rule attaches to end_date, never to start_date.
func ValidateEducation(index int, e types.Education) []FieldError {
	var errs []FieldError
	if len(strings.TrimSpace(e.Degree)) < minNameLen {
		errs = append(errs, fieldErr(types.SectionEducation, index, "degree", "Degree is required"))
	}
	if blank(e.Institution) {
		errs = append(errs, fieldErr(types.SectionEducation, index, "institution", "Institution is required"))
	}
	if blank(e.Location) {
		errs = append(errs, fieldErr(types.SectionEducation, index, "location", "Location is required"))
	}
	if blank(e.StartDate) {
		errs = append(errs, fieldErr(types.SectionEducation, index, "start_date", "Start Date is required"))
	}
	if blank(e.EndDate) {
		errs = append(errs, fieldErr(types.SectionEducation, index, "end_date", "End Date is required"))
	}
	if blank(e.CGPA) {
		errs = append(errs, fieldErr(types.SectionEducation, index, "cgpa", "CGPA is required"))
	}
	if err := checkChronology(types.SectionEducation, index, e.StartDate, e.EndDate); err != nil {
		errs = append(errs, *err)
	}
	return errs
}

// ValidateExperience validates one experience instance. Callers only
// reach this once the discriminator is set; with an unset discriminator
// the instance classifies as empty and is skipped entirely.
func ValidateExperience(index int, e types.Experience) []FieldError {
	var errs []FieldError
	if e.ExperienceType != types.ExperienceWork && e.ExperienceType != types.ExperienceInternship {
		return []FieldError{fieldErr(types.SectionExperience, index, "experience_type", "Experience type must be Work or Internship")}
	}
	if len(strings.TrimSpace(e.JobTitle)) < minNameLen {
		errs = append(errs, fieldErr(types.SectionExperience, index, "job_title", "Job title cannot be empty"))
	}
	if len(strings.TrimSpace(e.CompanyName)) < minNameLen {
		errs = append(errs, fieldErr(types.SectionExperience, index, "company_name", "Company name cannot be empty"))
	}
	if len(strings.TrimSpace(e.Location)) < minNameLen {
		errs = append(errs, fieldErr(types.SectionExperience, index, "location", "Location cannot be empty"))
	}
	if blank(e.StartDate) {
		errs = append(errs, fieldErr(types.SectionExperience, index, "start_date", "Start Date is required"))
	}
	if blank(e.EndDate) {
		errs = append(errs, fieldErr(types.SectionExperience, index, "end_date", "End Date is required"))
	}
	if blank(e.Responsibilities) {
		errs = append(errs, fieldErr(types.SectionExperience, index, "responsibilities", "Responsibilities is required"))
	}
	if err := checkChronology(types.SectionExperience, index, e.StartDate, e.EndDate); err != nil {
		errs = append(errs, *err)
	}
	return errs
}

// ValidateProject validates one project instance. All-or-nothing: a
// partially filled project is an error, pinned to the description
// field the way the editor reports it.
func ValidateProject(index int, p types.Project) []FieldError {
	hasTitle := !blank(p.ProjectTitle)
	hasDesc := !blank(p.Description)
	if hasTitle != hasDesc {
		return []FieldError{fieldErr(types.SectionProjects, index, "description",
			"Both title and description are required if one is filled.")}
	}
	return nil
}

// ValidateCertification validates one certification instance.
// All-or-nothing: every field populated or every field blank; each
// missing field is reported individually.
func ValidateCertification(index int, c types.Certification) []FieldError {
	hasName := !blank(c.CertificationName)
	hasIssuer := !blank(c.Issuer)
	hasDate := !blank(c.IssuedDate)
	hasSkills := len(CleanTags(c.SkillsCovered)) > 0

	if hasName == hasIssuer && hasIssuer == hasDate && hasDate == hasSkills {
		return nil // entirely empty or entirely filled
	}

	var errs []FieldError
	if !hasName {
		errs = append(errs, fieldErr(types.SectionCertifications, index, "certification_name", "Certificate Name is required"))
	}
	if !hasIssuer {
		errs = append(errs, fieldErr(types.SectionCertifications, index, "issuer", "Issuer is required"))
	}
	if !hasDate {
		errs = append(errs, fieldErr(types.SectionCertifications, index, "issued_date", "Issued Date is required"))
	}
	if !hasSkills {
		errs = append(errs, fieldErr(types.SectionCertifications, index, "skills_covered", "At least one skill is required"))
	}
	return errs
}

// ValidateLanguage validates one language instance.
func ValidateLanguage(index int, l types.Language) []FieldError {
	var errs []FieldError
	if len(strings.TrimSpace(l.Language)) < minNameLen {
		errs = append(errs, fieldErr(types.SectionLanguages, index, "language",
			fmt.Sprintf("Language name must be at least %d characters", minNameLen)))
	}
	if !validLevel(l.Level) {
		errs = append(errs, fieldErr(types.SectionLanguages, index, "level", "Please select a level"))
	}
	return errs
}

// ValidateTags validates a skills or interests tag list: every entry
// must be non-blank. Whether an all-empty list is acceptable is the
// emptiness policy's call, not the schema's.
func ValidateTags(section types.SectionType, tags []string) []FieldError {
	var errs []FieldError
	for i, tag := range tags {
		if blank(tag) {
			errs = append(errs, fieldErr(section, i, "tag", "Tag cannot be empty"))
		}
	}
	return errs
}

func validLevel(level string) bool {
	for _, l := range types.LanguageLevels {
		if level == l {
			return true
		}
	}
	return false
}

// checkChronology attaches an error to end_date when both dates parse
// and the end precedes the start.
func checkChronology(section types.SectionType, index int, startDate, endDate string) *FieldError {
	start, okStart := parseDate(startDate)
	end, okEnd := parseDate(endDate)
	if !okStart || !okEnd {
		return nil
	}
	if end.Before(start) {
		fe := fieldErr(section, index, "end_date", "Start date cannot be later than end date")
		return &fe
	}
	return nil
}

// CheckSection validates every filled instance of one section of the
// document, per the save-call granularity: a single invalid instance
// fails the whole section. Empty instances are skipped, never
// validated. Returns nil when the section is ready to persist.
func CheckSection(doc *types.Document, section types.SectionType) *SectionError {
	var errs []FieldError
	switch section {
	case types.SectionPersonalInfo:
		if ClassifyPersonalInfo(doc.PersonalInfo) == Filled {
			errs = ValidatePersonalInfo(doc.PersonalInfo)
		}
	case types.SectionAboutMe:
		if ClassifyAboutMe(doc.AboutMe) == Filled {
			errs = ValidateAboutMe(doc.AboutMe)
		}
	case types.SectionEducation:
		for i, e := range doc.Education {
			if ClassifyEducation(e) == Filled {
				errs = append(errs, ValidateEducation(i, e)...)
			}
		}
	case types.SectionExperience:
		for i, e := range doc.Experience {
			if ClassifyExperience(e) == Filled {
				errs = append(errs, ValidateExperience(i, e)...)
			}
		}
	case types.SectionSkills:
		errs = ValidateTags(types.SectionSkills, doc.Skills)
	case types.SectionProjects:
		for i, p := range doc.Projects {
			if ClassifyProject(p) == Filled {
				errs = append(errs, ValidateProject(i, p)...)
			}
		}
	case types.SectionCertifications:
		for i, c := range doc.Certifications {
			if ClassifyCertification(c) == Filled {
				errs = append(errs, ValidateCertification(i, c)...)
			}
		}
	case types.SectionInterests:
		errs = ValidateTags(types.SectionInterests, doc.Interests)
	case types.SectionLanguages:
		for i, l := range doc.Languages {
			if ClassifyLanguage(l) == Filled {
				errs = append(errs, ValidateLanguage(i, l)...)
			}
		}
	}
	if len(errs) == 0 {
		return nil
	}
	return &SectionError{Section: section, Fields: errs}
}
