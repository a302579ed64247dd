package observability

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jfields/resume-screener/internal/types"
)

func TestPrintSignals_IncludesAllFields(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintSignals("Resume Signals", &types.DocumentSignals{
		Skills:         []string{"python", "sql"},
		Certifications: []string{"pmp"},
		Projects:       []string{"built a thing"},
		Years:          4.5,
	})

	out := buf.String()
	assert.Contains(t, out, "Resume Signals")
	assert.Contains(t, out, "python, sql")
	assert.Contains(t, out, "pmp")
	assert.Contains(t, out, "4.5 years")
}

func TestPrintSignals_NilSignalsPrintsNothing(t *testing.T) {
	var buf bytes.Buffer
	NewPrinter(&buf).PrintSignals("Resume", nil)

	assert.Empty(t, buf.String())
}

func TestPrintMatch_ShowsCategoryCounts(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintMatch(&types.MatchResult{
		Matched:  []string{"python"},
		Missing:  []string{"sql"},
		Coverage: 50,
		Categories: []types.CategoryCoverage{
			{Name: "Programming", Matched: 1, Missing: 0},
		},
	})

	out := buf.String()
	assert.Contains(t, out, "50.00%")
	assert.Contains(t, out, "Programming: 1 matched, 0 missing")
}

func TestPrintBreakdown_ShowsVerdict(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintBreakdown(&types.ScoreBreakdown{FinalScore: 65.92}, types.VerdictPartialMatch)

	out := buf.String()
	assert.Contains(t, out, "65.92")
	assert.Contains(t, out, "PARTIAL_MATCH")
}

func TestPrintRecommendations_TruncatesLongLists(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintRecommendations([]string{"one", "two", "three", "four", "five", "six", "seven"})

	out := buf.String()
	assert.Contains(t, out, "- five")
	assert.NotContains(t, out, "- six")
	assert.Contains(t, out, "... and 2 more")
}

func TestPrintRecommendations_EmptyListPrintsNothing(t *testing.T) {
	var buf bytes.Buffer
	NewPrinter(&buf).PrintRecommendations(nil)

	assert.Empty(t, buf.String())
}

func TestJoinOrNone(t *testing.T) {
	assert.Equal(t, "(none)", joinOrNone(nil))
	assert.Equal(t, "a, b", joinOrNone([]string{"a", "b"}))
}
