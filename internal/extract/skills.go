// Package extract provides keyword-driven signal extractors over free-text
// resume and job-description documents.
package extract

import (
	"regexp"
	"sort"
	"strings"

	"github.com/jfields/resume-screener/internal/types"
)

// SkillExtractor finds vocabulary skills in a text blob using whole-word
// matching. Construct once per vocabulary; the compiled patterns are
// read-only and safe for concurrent use.
type SkillExtractor struct {
	vocab    *types.SkillVocabulary
	patterns []skillPattern
}

type skillPattern struct {
	label string
	re    *regexp.Regexp
}

// NewSkillExtractor compiles a whole-word matcher for every skill in the
// vocabulary. Skill labels are case-normalized to lowercase.
func NewSkillExtractor(v *types.SkillVocabulary) *SkillExtractor {
	patterns := make([]skillPattern, 0, len(v.Skills))
	seen := make(map[string]struct{}, len(v.Skills))

	for _, skill := range v.Skills {
		label := strings.ToLower(strings.TrimSpace(skill))
		if label == "" {
			continue
		}
		if _, dup := seen[label]; dup {
			continue
		}
		seen[label] = struct{}{}
		patterns = append(patterns, skillPattern{label: label, re: wordPattern(label)})
	}

	return &SkillExtractor{vocab: v, patterns: patterns}
}

// Vocabulary returns the vocabulary this extractor was built from.
func (e *SkillExtractor) Vocabulary() *types.SkillVocabulary {
	return e.vocab
}

// Extract returns the subset of the vocabulary present in text as a
// deduplicated, sorted slice of lowercase skill labels. Empty text yields
// an empty result; there are no error conditions.
func (e *SkillExtractor) Extract(text string) []string {
	if strings.TrimSpace(text) == "" {
		return []string{}
	}

	found := make([]string, 0, len(e.patterns))
	for _, p := range e.patterns {
		if p.re.MatchString(text) {
			found = append(found, p.label)
		}
	}

	sort.Strings(found)
	return found
}

// wordPattern builds a case-insensitive pattern that matches the phrase only
// when delimited by non-word characters or the ends of the text. The custom
// boundary (instead of \b) keeps labels ending in symbols, like "c++" and
// "ci/cd", from misbehaving, and keeps "java" from leaking into "javascript".
func wordPattern(phrase string) *regexp.Regexp {
	return regexp.MustCompile(`(?i)(?:^|[^\w])` + regexp.QuoteMeta(phrase) + `(?:[^\w]|$)`)
}
