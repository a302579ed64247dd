// Package scoring combines the extracted screening signals into a weighted
// final score and a categorical verdict.
package scoring

import (
	"math"

	"github.com/jfields/resume-screener/internal/types"
)

// Component weights. They sum to 1.0 exactly and are a fixed policy, not
// configuration.
const (
	skillCoverageWeight   = 0.35
	semanticScoreWeight   = 0.25
	experienceWeight      = 0.20
	certificationWeight   = 0.10
	projectWeight         = 0.05
	extracurricularWeight = 0.05
)

// Verdict band boundaries, inclusive on the lower end of each band.
const (
	strongMatchThreshold  = 75.0
	partialMatchThreshold = 50.0
)

// projectCap and extraCap bound the counted projects and extracurricular
// entries; more than five of either earns no extra credit.
const (
	projectCap = 5
	extraCap   = 5
)

// Inputs holds the raw signals the scoring engine combines.
type Inputs struct {
	// SkillCoverage is the matcher's coverage percentage in [0,100].
	SkillCoverage float64
	// SemanticScore is the externally supplied similarity score in [0,100].
	SemanticScore float64
	// ResumeYears is the resume's estimated years of experience.
	ResumeYears float64
	// RequiredYears is the job's required years; 0 means no requirement.
	RequiredYears int
	// CertCount and CertUniverse size the certification signal.
	CertCount    int
	CertUniverse int
	// ProjectCount and ExtraCount are the secondary signal counts.
	ProjectCount int
	ExtraCount   int
}

// Score computes every component score and the weighted final score, each
// rounded to two decimals.
func Score(in Inputs) types.ScoreBreakdown {
	b := types.ScoreBreakdown{
		SkillCoverage:        round2(in.SkillCoverage),
		SemanticScore:        round2(in.SemanticScore),
		ExperienceScore:      experienceScore(in.ResumeYears, in.RequiredYears),
		CertificationScore:   certificationScore(in.CertCount, in.CertUniverse),
		ProjectScore:         cappedScore(in.ProjectCount, projectCap),
		ExtracurricularScore: cappedScore(in.ExtraCount, extraCap),
	}

	b.FinalScore = round2(skillCoverageWeight*b.SkillCoverage +
		semanticScoreWeight*b.SemanticScore +
		experienceWeight*b.ExperienceScore +
		certificationWeight*b.CertificationScore +
		projectWeight*b.ProjectScore +
		extracurricularWeight*b.ExtracurricularScore)

	return b
}

// VerdictFor maps a final score to its categorical verdict.
func VerdictFor(finalScore float64) types.Verdict {
	switch {
	case finalScore >= strongMatchThreshold:
		return types.VerdictStrongMatch
	case finalScore >= partialMatchThreshold:
		return types.VerdictPartialMatch
	default:
		return types.VerdictNotSuitable
	}
}

// experienceScore is 100 when the resume meets or exceeds the requirement,
// otherwise the met fraction of the requirement. A requirement of 0 years is
// treated as automatically satisfied, which also guards the division.
func experienceScore(resumeYears float64, requiredYears int) float64 {
	if requiredYears == 0 || resumeYears >= float64(requiredYears) {
		return 100
	}
	score := 100 * resumeYears / float64(requiredYears)
	if score < 0 {
		score = 0
	}
	return round2(score)
}

// certificationScore is the fraction of the certification universe present,
// 0 when the universe is empty.
func certificationScore(count, universe int) float64 {
	if universe == 0 {
		return 0
	}
	return round2(100 * float64(count) / float64(universe))
}

// cappedScore grants credit linearly up to limit occurrences.
func cappedScore(count, limit int) float64 {
	if count > limit {
		count = limit
	}
	if count < 0 {
		count = 0
	}
	return round2(100 * float64(count) / float64(limit))
}

func round2(x float64) float64 {
	return math.Round(x*100) / 100
}
