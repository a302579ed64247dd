// Package types provides type definitions for structured data used throughout the resume-screener system.
//
//nolint:revive // types is a standard Go package name pattern
package types

// Verdict is the categorical hiring recommendation derived from the final
// weighted score.
type Verdict string

const (
	// VerdictStrongMatch is assigned when the final score is at least 75.
	VerdictStrongMatch Verdict = "STRONG_MATCH"
	// VerdictPartialMatch is assigned when the final score is in [50, 75).
	VerdictPartialMatch Verdict = "PARTIAL_MATCH"
	// VerdictNotSuitable is assigned when the final score is below 50.
	VerdictNotSuitable Verdict = "NOT_SUITABLE"
)

// MatchResult is the outcome of comparing resume skills against the skills
// required by a job description.
type MatchResult struct {
	// Matched holds job-required skills present in the resume, sorted.
	Matched []string `json:"matched"`
	// Missing holds job-required skills absent from the resume, sorted.
	Missing []string `json:"missing"`
	// Coverage is |matched| / |job skills| as a percentage in [0,100],
	// rounded to two decimals. Defined as 0 when the job requires no
	// recognizable skills.
	Coverage float64 `json:"coverage"`
	// Categories breaks the matched/missing counts down per vocabulary
	// category, in sorted category order.
	Categories []CategoryCoverage `json:"categories,omitempty"`
}

// CategoryCoverage counts matched and missing job skills within one
// vocabulary category.
type CategoryCoverage struct {
	Name    string `json:"name"`
	Matched int    `json:"matched"`
	Missing int    `json:"missing"`
}

// ScoreBreakdown holds each scoring component as a percentage in [0,100]
// together with the aggregated final score. It is immutable once computed.
type ScoreBreakdown struct {
	SkillCoverage        float64 `json:"skill_coverage"`
	SemanticScore        float64 `json:"semantic_score"`
	ExperienceScore      float64 `json:"experience_score"`
	CertificationScore   float64 `json:"certification_score"`
	ProjectScore         float64 `json:"project_score"`
	ExtracurricularScore float64 `json:"extracurricular_score"`
	FinalScore           float64 `json:"final_score"`
}

// ScreeningResult is the full output of one resume-to-job screening run.
type ScreeningResult struct {
	// ID uniquely identifies this screening run.
	ID string `json:"id"`
	// Resume holds the signals extracted from the resume text.
	Resume DocumentSignals `json:"resume"`
	// Job holds the signals extracted from the job-description text.
	Job DocumentSignals `json:"job"`
	// RequiredYears is the experience requirement parsed from the job
	// description ("N+ years"), 0 when absent.
	RequiredYears int `json:"required_years"`
	// Match is the skill set-algebra result.
	Match MatchResult `json:"match"`
	// Breakdown holds the weighted component scores and the final score.
	Breakdown ScoreBreakdown `json:"breakdown"`
	// Verdict is the categorical recommendation for the final score.
	Verdict Verdict `json:"verdict"`
	// Recommendations lists improvement suggestions in deterministic order.
	Recommendations []string `json:"recommendations"`
}
