package schemas

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-builder/internal/types"
)

func canonicalDocument() *types.Document {
	now := time.Now().UTC()
	doc := types.NewDocument()
	doc.ID = uuid.New()
	doc.CreatedAt = &now
	// Persisted documents carry filled instances only, no placeholders.
	doc.Education = []types.Education{{
		Degree:      "BSc Computer Science",
		Institution: "MIT",
		Location:    "Cambridge",
		StartDate:   "2019-09",
		EndDate:     "2023-06",
		CGPA:        "3.8",
	}}
	doc.Experience = []types.Experience{}
	doc.Projects = []types.Project{}
	doc.Certifications = []types.Certification{}
	doc.Languages = []types.Language{{Language: "English", Level: "Native"}}
	doc.Skills = []string{"Go"}
	return doc
}

func TestValidateDocument_Canonical(t *testing.T) {
	assert.NoError(t, ValidateDocument(canonicalDocument()))
}

func TestValidateDocument_BadLanguageLevel(t *testing.T) {
	doc := canonicalDocument()
	doc.Languages = []types.Language{{Language: "English", Level: "Expert"}}

	err := ValidateDocument(doc)
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.NotEmpty(t, verr.Errors)
}

func TestValidateDocument_MissingRequiredEducationField(t *testing.T) {
	doc := canonicalDocument()
	doc.Education[0].Institution = ""
	// minLength 1 on institution
	err := ValidateDocument(doc)
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
}

func TestValidateDocumentJSON_Garbage(t *testing.T) {
	err := ValidateDocumentJSON([]byte(`{"unknown_slot": true}`))
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
}
