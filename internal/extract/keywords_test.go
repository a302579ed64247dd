package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCertifications_FindsWholeWordKeywords(t *testing.T) {
	keywords := []string{"aws certified", "pmp", "cissp"}

	found := Certifications("AWS Certified Solutions Architect, PMP holder.", keywords)

	assert.Equal(t, []string{"aws certified", "pmp"}, found)
}

func TestCertifications_PreservesKeywordOrder(t *testing.T) {
	keywords := []string{"cissp", "pmp", "aws certified"}

	found := Certifications("pmp and cissp and aws certified", keywords)

	assert.Equal(t, []string{"cissp", "pmp", "aws certified"}, found)
}

func TestCertifications_EmptyTextYieldsEmptySlice(t *testing.T) {
	found := Certifications("  ", []string{"pmp"})

	require.NotNil(t, found)
	assert.Empty(t, found)
}

func TestCertifications_NoSubstringFalsePositives(t *testing.T) {
	found := Certifications("The pump room plan.", []string{"pmp"})

	assert.Empty(t, found)
}

func TestExtracurricular_EmitsMatchingLines(t *testing.T) {
	text := "Senior Engineer at Acme\nVolunteer tutor at the local library\nLed the hackathon team to first place"

	found := Extracurricular(text, []string{"volunteer", "hackathon"})

	assert.Equal(t, []string{
		"Volunteer tutor at the local library",
		"Led the hackathon team to first place",
	}, found)
}

func TestExtracurricular_TrimsEmittedLines(t *testing.T) {
	found := Extracurricular("   Volunteer firefighter   \n", []string{"volunteer"})

	assert.Equal(t, []string{"Volunteer firefighter"}, found)
}

func TestExtracurricular_PreservesDuplicateLines(t *testing.T) {
	text := "Volunteer work\nVolunteer work"

	found := Extracurricular(text, []string{"volunteer"})

	assert.Len(t, found, 2)
}

func TestExtracurricular_OneEntryPerLine(t *testing.T) {
	// A line mentioning two keywords still produces a single entry.
	found := Extracurricular("Volunteer hackathon organizer", []string{"volunteer", "hackathon"})

	assert.Equal(t, []string{"Volunteer hackathon organizer"}, found)
}
