package experience

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

var fixedNow = time.Date(2023, time.January, 15, 0, 0, 0, 0, time.UTC)

func TestTotalYears_SingleYearRange(t *testing.T) {
	years := TotalYears("Jan 2020 - Jan 2021", fixedNow, Options{})

	assert.Equal(t, 1.0, years)
}

func TestTotalYears_PresentResolvesToNow(t *testing.T) {
	years := TotalYears("Jan 2020 - Present", fixedNow, Options{})

	assert.Equal(t, 3.0, years)
}

func TestTotalYears_SumsMultipleRanges(t *testing.T) {
	text := "Acme Corp Jan 2018 - Jan 2020\nBeta Inc Jun 2020 - Jun 2021"

	years := TotalYears(text, fixedNow, Options{})

	assert.Equal(t, 3.0, years)
}

func TestTotalYears_EnDashAndDottedMonths(t *testing.T) {
	years := TotalYears("Feb.2024 – Apr.2024", time.Date(2025, time.June, 1, 0, 0, 0, 0, time.UTC), Options{})

	assert.Equal(t, 0.2, years)
}

func TestTotalYears_FullMonthNames(t *testing.T) {
	years := TotalYears("February 2020 - February 2021", fixedNow, Options{})

	assert.Equal(t, 1.0, years)
}

func TestTotalYears_SeptAbbreviation(t *testing.T) {
	years := TotalYears("Sept 2020 - Sept 2021", fixedNow, Options{})

	assert.Equal(t, 1.0, years)
}

func TestTotalYears_UnparsableEndpointsAreSkipped(t *testing.T) {
	years := TotalYears("Blah 2020 - Blah 2021", fixedNow, Options{})

	assert.Equal(t, 0.0, years)
}

func TestTotalYears_InvertedRangeIsSkipped(t *testing.T) {
	years := TotalYears("Jan 2022 - Jan 2020", fixedNow, Options{})

	assert.Equal(t, 0.0, years)
}

func TestTotalYears_NoRangesYieldsZero(t *testing.T) {
	years := TotalYears("No dates in this text at all.", fixedNow, Options{})

	assert.Equal(t, 0.0, years)
}

func TestTotalYears_NaiveSumDoubleCountsOverlaps(t *testing.T) {
	text := "Jan 2020 - Jan 2022\nJan 2021 - Jan 2023"

	years := TotalYears(text, fixedNow, Options{})

	assert.Equal(t, 4.0, years)
}

func TestTotalYears_MergeOverlapsCountsOnce(t *testing.T) {
	text := "Jan 2020 - Jan 2022\nJan 2021 - Jan 2023"

	years := TotalYears(text, fixedNow, Options{MergeOverlaps: true})

	assert.Equal(t, 3.0, years)
}

func TestTotalYears_MergeOverlapsLeavesDisjointRangesAlone(t *testing.T) {
	text := "Jan 2018 - Jan 2019\nJan 2020 - Jan 2021"

	naive := TotalYears(text, fixedNow, Options{})
	merged := TotalYears(text, fixedNow, Options{MergeOverlaps: true})

	assert.Equal(t, naive, merged)
	assert.Equal(t, 2.0, merged)
}

func TestTotalYears_RangeSplitAcrossNewline(t *testing.T) {
	// Newlines are flattened before scanning, so a range broken over two
	// lines still parses.
	years := TotalYears("Jan 2020 -\nJan 2021", fixedNow, Options{})

	assert.Equal(t, 1.0, years)
}

func TestTotalYears_RoundsToOneDecimal(t *testing.T) {
	// 5 months = 0.41666... years.
	years := TotalYears("Jan 2020 - Jun 2020", fixedNow, Options{})

	assert.Equal(t, 0.4, years)
}

func TestRequiredYears_ParsesPlusPhrasing(t *testing.T) {
	assert.Equal(t, 3, RequiredYears("Requires 3+ years of backend experience."))
}

func TestRequiredYears_ParsesPlainPhrasing(t *testing.T) {
	assert.Equal(t, 5, RequiredYears("At least 5 years in the field."))
}

func TestRequiredYears_ZeroWhenAbsent(t *testing.T) {
	assert.Equal(t, 0, RequiredYears("No experience requirement stated."))
}

func TestRequiredYears_TakesFirstOccurrence(t *testing.T) {
	assert.Equal(t, 2, RequiredYears("2+ years required, 10 years preferred."))
}

func TestParseMonthYear_RejectsNonMonthPrefix(t *testing.T) {
	_, ok := parseMonthYear("Janxyz 2020")

	assert.False(t, ok)
}
