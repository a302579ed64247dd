// Package match performs the set algebra between resume skills and the
// skills a job description requires.
package match

import (
	"math"
	"sort"
	"strings"

	"github.com/jfields/resume-screener/internal/extract"
	"github.com/jfields/resume-screener/internal/types"
)

// Skills extracts the job-required skills from the job-description text with
// the given extractor and intersects them with the resume's skills. Coverage
// is |matched| / |job skills| as a percentage rounded to two decimals, and is
// 0 when the job requires no recognizable skills. Membership tests are
// case-insensitive on both sides.
func Skills(resumeSkills []string, jobText string, extractor *extract.SkillExtractor) types.MatchResult {
	jobSkills := extractor.Extract(jobText)

	resumeSet := make(map[string]struct{}, len(resumeSkills))
	for _, s := range resumeSkills {
		resumeSet[strings.ToLower(strings.TrimSpace(s))] = struct{}{}
	}

	matched := []string{}
	missing := []string{}
	for _, s := range jobSkills {
		if _, ok := resumeSet[s]; ok {
			matched = append(matched, s)
		} else {
			missing = append(missing, s)
		}
	}
	sort.Strings(matched)
	sort.Strings(missing)

	coverage := 0.0
	if len(jobSkills) > 0 {
		coverage = round2(float64(len(matched)) / float64(len(jobSkills)) * 100)
	}

	return types.MatchResult{
		Matched:    matched,
		Missing:    missing,
		Coverage:   coverage,
		Categories: categoryBreakdown(extractor.Vocabulary(), matched, missing),
	}
}

// categoryBreakdown counts matched and missing job skills per vocabulary
// category, in sorted category order. Returns nil when the vocabulary has
// no categories.
func categoryBreakdown(v *types.SkillVocabulary, matched, missing []string) []types.CategoryCoverage {
	if len(v.Categories) == 0 {
		return nil
	}

	matchedSet := toSet(matched)
	missingSet := toSet(missing)

	breakdown := make([]types.CategoryCoverage, 0, len(v.Categories))
	for _, name := range v.CategoryNames() {
		cc := types.CategoryCoverage{Name: name}
		for _, skill := range v.Categories[name] {
			key := strings.ToLower(strings.TrimSpace(skill))
			if _, ok := matchedSet[key]; ok {
				cc.Matched++
			}
			if _, ok := missingSet[key]; ok {
				cc.Missing++
			}
		}
		breakdown = append(breakdown, cc)
	}

	return breakdown
}

func toSet(ss []string) map[string]struct{} {
	set := make(map[string]struct{}, len(ss))
	for _, s := range ss {
		set[strings.ToLower(s)] = struct{}{}
	}
	return set
}

func round2(x float64) float64 {
	return math.Round(x*100) / 100
}
