package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRemoveBiasTerms_StripsGenderTerms(t *testing.T) {
	cleaned := RemoveBiasTerms("Looking for a male candidate with Python skills.")

	assert.NotContains(t, cleaned, "male")
	assert.Contains(t, cleaned, "Python")
}

func TestRemoveBiasTerms_StripsAgeAndMaritalTerms(t *testing.T) {
	cleaned := RemoveBiasTerms("Must be under 30 years old and single.")

	assert.NotContains(t, cleaned, "years old")
	assert.NotContains(t, cleaned, "single")
}

func TestRemoveBiasTerms_WholeWordOnly(t *testing.T) {
	// "female" inside another word is not a standalone bias term.
	cleaned := RemoveBiasTerms("The management team")

	assert.Equal(t, "The management team", cleaned)
}

func TestRemoveBiasTerms_PreservesLineStructure(t *testing.T) {
	cleaned := RemoveBiasTerms("line one\nmale\nline three")

	assert.Contains(t, cleaned, "\n")
	assert.Contains(t, cleaned, "line one")
	assert.Contains(t, cleaned, "line three")
}
