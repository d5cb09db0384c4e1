package assembly

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-builder/internal/types"
)

func sampleDocument() *types.Document {
	doc := types.NewDocument()
	doc.ID = uuid.New()
	doc.PersonalInfo = types.PersonalInfo{
		FullName:    "Ada Lovelace",
		JobTitle:    "Software Engineer",
		Email:       "ada@example.com",
		PhoneNumber: "0123456789",
		Location:    "London",
	}
	doc.AboutMe.AboutMe = "Engineer with a decade of experience building analytical machines."
	doc.Education = []types.Education{{
		Degree:      "BSc Computer Science",
		Institution: "MIT",
		Location:    "Cambridge",
		StartDate:   "2019-09",
		EndDate:     "2023-06",
		CGPA:        "3.8",
	}}
	doc.Experience = []types.Experience{
		{
			ExperienceType:   types.ExperienceWork,
			JobTitle:         "Backend Engineer",
			CompanyName:      "Acme",
			Location:         "Berlin",
			StartDate:        "2023-07",
			EndDate:          "2025-01",
			Responsibilities: "Built services.",
		},
		{
			ExperienceType:   types.ExperienceInternship,
			JobTitle:         "Intern",
			CompanyName:      "Initech",
			Location:         "Remote",
			StartDate:        "2022-06",
			EndDate:          "2022-09",
			Responsibilities: "Shadowed the team.",
		},
	}
	doc.Skills = []string{" Go ", "PostgreSQL"}
	doc.Projects = []types.Project{{ProjectTitle: "CLI tool", Description: "A resume CLI"}}
	doc.Certifications = []types.Certification{{
		CertificationName: "CKA",
		Issuer:            "CNCF",
		IssuedDate:        "2024-03",
		SkillsCovered:     []string{"Kubernetes", "Helm"},
	}}
	doc.Interests = []string{"chess", "rowing"}
	doc.Languages = []types.Language{{Language: "English", Level: "Native"}}
	return doc
}

func TestPreview_IncludesNonEmptyInvalidInstances(t *testing.T) {
	doc := types.NewDocument()
	// Half-typed education entry: invalid but non-empty, the live
	// preview still shows it.
	doc.Education = []types.Education{{Degree: "BSc"}}

	r := Preview(doc)
	require.Len(t, r.Education, 1)
	assert.Equal(t, "BSc", r.Education[0].Title)
}

func TestPreview_ExcludesEmptyInstances(t *testing.T) {
	doc := types.NewDocument() // placeholders only everywhere

	r := Preview(doc)
	assert.Empty(t, r.Education)
	assert.Empty(t, r.Work)
	assert.Empty(t, r.Internships)
	assert.Empty(t, r.Projects)
	assert.Empty(t, r.Certifications)
	assert.Empty(t, r.Languages)
	assert.Empty(t, r.Skills)
	assert.Empty(t, r.Interests)
}

func TestPreview_ExperienceWithoutTypeHidden(t *testing.T) {
	doc := types.NewDocument()
	doc.Experience = []types.Experience{{JobTitle: "Engineer", CompanyName: "Acme"}}

	r := Preview(doc)
	assert.Empty(t, r.Work)
	assert.Empty(t, r.Internships)
}

func TestExport_RequiresSavedDocument(t *testing.T) {
	doc := sampleDocument()
	doc.ID = uuid.Nil

	_, err := Export(doc)
	var notReady *NotReadyForExportError
	require.ErrorAs(t, err, &notReady)
}

func TestExport_PartitionsExperience(t *testing.T) {
	r, err := Export(sampleDocument())
	require.NoError(t, err)

	require.Len(t, r.Work, 1)
	require.Len(t, r.Internships, 1)
	assert.Equal(t, "Backend Engineer", r.Work[0].Title)
	assert.Equal(t, "Intern", r.Internships[0].Title)
}

func TestExport_DropsInvalidInstances(t *testing.T) {
	doc := sampleDocument()
	doc.Projects = append(doc.Projects, types.Project{ProjectTitle: "half-finished"})

	r, err := Export(doc)
	require.NoError(t, err)
	require.Len(t, r.Projects, 1)
	assert.Equal(t, "CLI tool", r.Projects[0].Title)
}

func TestPreviewAndExport_AgreeOnSharedFields(t *testing.T) {
	doc := sampleDocument()

	preview := Preview(doc)
	export, err := Export(doc)
	require.NoError(t, err)

	// Every field present in both projections renders identically.
	assert.Equal(t, preview.FullName, export.FullName)
	assert.Equal(t, preview.Skills, export.Skills)
	assert.Equal(t, preview.Interests, export.Interests)
	assert.Equal(t, preview.Education, export.Education)
	assert.Equal(t, preview.Work, export.Work)
	assert.Equal(t, preview.Internships, export.Internships)
	assert.Equal(t, preview.Certifications, export.Certifications)
	assert.Equal(t, preview.Languages, export.Languages)
}

func TestProjection_FormattedValues(t *testing.T) {
	r := Preview(sampleDocument())

	assert.Equal(t, "Sep 2019 - Jun 2023", r.Education[0].Period)
	assert.Equal(t, "Go, PostgreSQL", r.Skills)
	assert.Equal(t, "chess, rowing", r.Interests)
	assert.Equal(t, "Mar 2024", r.Certifications[0].Issued)
	assert.Equal(t, "Kubernetes, Helm", r.Certifications[0].Skills)
}
