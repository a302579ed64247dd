// Package recommend derives human-readable improvement suggestions from
// screening shortfall signals.
package recommend

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// Fixed wording for the generic category suggestions.
const (
	certSuggestion    = "Add at least one industry certification relevant to your target role."
	projectSuggestion = "Describe hands-on projects or internships to demonstrate applied skills."
	extraSuggestion   = "Mention extracurricular activity such as volunteering, clubs, or competitions."
)

// Inputs holds the shortfall signals the generator works from.
type Inputs struct {
	// MissingSkills are job-required skills absent from the resume.
	MissingSkills []string
	// ResumeYears and RequiredYears drive the experience suggestion.
	ResumeYears   float64
	RequiredYears int
	// Zero counts in any of these trigger one generic suggestion each.
	CertCount    int
	ProjectCount int
	ExtraCount   int
}

// Generate produces suggestions in a fixed order: one per missing skill in
// sorted label order, then experience shortfall, then the generic
// certification, project, and extracurricular suggestions. Output is
// deterministic for identical inputs.
func Generate(in Inputs) []string {
	recs := []string{}

	missing := make([]string, len(in.MissingSkills))
	copy(missing, in.MissingSkills)
	sort.Strings(missing)
	for _, skill := range missing {
		recs = append(recs, fmt.Sprintf("Consider adding a project or certification related to %s.", titleCase(skill)))
	}

	if in.ResumeYears < float64(in.RequiredYears) {
		shortfall := float64(in.RequiredYears) - in.ResumeYears
		recs = append(recs, fmt.Sprintf("Gain %s more years of relevant experience to meet the %d-year requirement.",
			formatYears(shortfall), in.RequiredYears))
	}

	if in.CertCount == 0 {
		recs = append(recs, certSuggestion)
	}
	if in.ProjectCount == 0 {
		recs = append(recs, projectSuggestion)
	}
	if in.ExtraCount == 0 {
		recs = append(recs, extraSuggestion)
	}

	return recs
}

// formatYears renders a year count without trailing zeros ("2", "1.5").
func formatYears(y float64) string {
	return strconv.FormatFloat(y, 'f', -1, 64)
}

// titleCase uppercases the first letter of each word in a skill label.
func titleCase(s string) string {
	words := strings.Fields(s)
	for i, w := range words {
		if w == "" {
			continue
		}
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}
