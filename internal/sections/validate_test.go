package sections

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-builder/internal/types"
)

func fieldsOf(errs []FieldError) []string {
	out := make([]string, len(errs))
	for i, e := range errs {
		out[i] = e.Field
	}
	return out
}

func TestValidatePersonalInfo(t *testing.T) {
	ok := types.PersonalInfo{
		FullName:    "Ada Lovelace",
		Email:       "ada@example.com",
		PhoneNumber: "0123456789",
		Location:    "London",
	}
	assert.Empty(t, ValidatePersonalInfo(ok))

	bad := ok
	bad.Email = "not-an-email"
	bad.PhoneNumber = "12345"
	errs := ValidatePersonalInfo(bad)
	assert.ElementsMatch(t, []string{"email", "phone_number"}, fieldsOf(errs))
}

func TestValidateAboutMe_LengthBounds(t *testing.T) {
	assert.NotEmpty(t, ValidateAboutMe(types.AboutMe{AboutMe: "too short"}))
	assert.NotEmpty(t, ValidateAboutMe(types.AboutMe{AboutMe: strings.Repeat("x", 1001)}))
	assert.Empty(t, ValidateAboutMe(types.AboutMe{AboutMe: strings.Repeat("x", 120)}))
}

func TestValidateEducation_ChronologyPinnedToEndDate(t *testing.T) {
	e := types.Education{
		Degree:      "BSc Computer Science",
		Institution: "MIT",
		Location:    "Cambridge",
		StartDate:   "2023-09",
		EndDate:     "2021-06",
		CGPA:        "3.8",
	}
	errs := ValidateEducation(0, e)
	require.Len(t, errs, 1)
	assert.Equal(t, "end_date", errs[0].Field)
	assert.NotContains(t, fieldsOf(errs), "start_date")
}

func TestValidateEducation_MissingRequired(t *testing.T) {
	errs := ValidateEducation(1, types.Education{Degree: "BSc"})
	assert.ElementsMatch(t,
		[]string{"institution", "location", "start_date", "end_date", "cgpa"},
		fieldsOf(errs))
	for _, e := range errs {
		assert.Equal(t, 1, e.Index)
	}
}

func TestValidateExperience_AllRequiredOnceTyped(t *testing.T) {
	errs := ValidateExperience(0, types.Experience{ExperienceType: types.ExperienceWork})
	assert.ElementsMatch(t,
		[]string{"job_title", "company_name", "location", "start_date", "end_date", "responsibilities"},
		fieldsOf(errs))
}

func TestValidateExperience_Chronology(t *testing.T) {
	e := types.Experience{
		ExperienceType:   types.ExperienceInternship,
		JobTitle:         "Engineer",
		CompanyName:      "Acme",
		Location:         "Berlin",
		StartDate:        "2024-05",
		EndDate:          "2024-01",
		Responsibilities: "Built things",
	}
	errs := ValidateExperience(0, e)
	require.Len(t, errs, 1)
	assert.Equal(t, "end_date", errs[0].Field)
}

func TestValidateProject_AllOrNothing(t *testing.T) {
	assert.Empty(t, ValidateProject(0, types.Project{}))
	assert.Empty(t, ValidateProject(0, types.Project{ProjectTitle: "CLI", Description: "A tool"}))

	errs := ValidateProject(0, types.Project{ProjectTitle: "CLI"})
	require.Len(t, errs, 1)
	assert.Equal(t, "description", errs[0].Field)

	errs = ValidateProject(0, types.Project{Description: "orphan"})
	require.Len(t, errs, 1)
	assert.Equal(t, "description", errs[0].Field)
}

func TestValidateCertification_AllOrNothing(t *testing.T) {
	full := types.Certification{
		CertificationName: "CKA",
		Issuer:            "CNCF",
		IssuedDate:        "2024-03",
		SkillsCovered:     []string{"Kubernetes"},
	}
	assert.Empty(t, ValidateCertification(0, full))
	assert.Empty(t, ValidateCertification(0, types.Certification{}))

	partial := types.Certification{CertificationName: "CKA"}
	errs := ValidateCertification(0, partial)
	assert.ElementsMatch(t, []string{"issuer", "issued_date", "skills_covered"}, fieldsOf(errs))
}

func TestValidateLanguage(t *testing.T) {
	assert.Empty(t, ValidateLanguage(0, types.Language{Language: "English", Level: "Native"}))

	errs := ValidateLanguage(0, types.Language{Language: "E", Level: "Expert"})
	assert.ElementsMatch(t, []string{"language", "level"}, fieldsOf(errs))
}

func TestValidateTags_BlankEntries(t *testing.T) {
	assert.Empty(t, ValidateTags(types.SectionSkills, []string{"Go"}))
	assert.NotEmpty(t, ValidateTags(types.SectionInterests, []string{"chess", " "}))
}

func TestCheckSection_SkipsEmptyInstances(t *testing.T) {
	doc := types.NewDocument()
	// Placeholder instances everywhere: nothing filled, nothing to flag.
	for _, section := range types.AllSections() {
		assert.Nil(t, CheckSection(doc, section), "section %s", section)
	}
}

func TestCheckSection_SecondInstancePinpointed(t *testing.T) {
	doc := types.NewDocument()
	doc.Education = []types.Education{
		{
			Degree:      "BSc Computer Science",
			Institution: "MIT",
			Location:    "Cambridge",
			StartDate:   "2019-09",
			EndDate:     "2023-06",
			CGPA:        "3.8",
		},
		{Degree: "MSc"}, // partially filled
	}

	serr := CheckSection(doc, types.SectionEducation)
	require.NotNil(t, serr)
	assert.Equal(t, types.SectionEducation, serr.Section)
	for _, fe := range serr.Fields {
		assert.Equal(t, 1, fe.Index, "errors must point at the second instance only")
	}

	errMap := serr.ErrorMap()
	assert.Contains(t, errMap[1], "institution")
	assert.NotContains(t, errMap, 0)
}

func TestCheckSection_ExperienceOptOut(t *testing.T) {
	doc := types.NewDocument()
	doc.Experience = []types.Experience{{
		JobTitle: "cleared later", // discriminator never set
	}}
	assert.Nil(t, CheckSection(doc, types.SectionExperience))
}
