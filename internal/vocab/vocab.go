// Package vocab provides the canonical skill vocabulary and keyword lists
// used by the extractors. Vocabularies are explicitly constructed and passed
// to components rather than read from a package-level global, so tests can
// substitute alternates.
package vocab

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/jfields/resume-screener/internal/schemas"
	"github.com/jfields/resume-screener/internal/types"
)

// Default returns the built-in skill vocabulary with category groupings.
// The returned value is freshly allocated; callers may not mutate a shared copy.
func Default() *types.SkillVocabulary {
	return &types.SkillVocabulary{
		Skills: []string{
			"python", "java", "c++", "c", "javascript", "react", "reactjs", "react native",
			"spring boot", "nodejs", "html", "css", "flask", "django", "pandas", "numpy",
			"tensorflow", "pytorch", "aws", "azure", "gcp", "docker", "kubernetes", "git",
			"mysql", "mongodb", "firebase", "power bi", "tableau", "ci/cd", "jest", "junit",
		},
		Categories: map[string][]string{
			"Programming": {"python", "java", "c++", "c", "javascript"},
			"Frameworks":  {"react", "reactjs", "react native", "spring boot", "nodejs", "flask", "django"},
			"Cloud":       {"aws", "azure", "gcp", "docker", "kubernetes"},
			"Data":        {"pandas", "numpy", "tensorflow", "pytorch", "mysql", "mongodb", "firebase", "power bi", "tableau"},
		},
	}
}

// CertificationKeywords is the default certification universe tested against
// resume and job text with whole-word matching.
func CertificationKeywords() []string {
	return []string{
		"aws certified", "azure certified", "gcp certified", "pmp", "scrum master",
		"cissp", "ccna", "comptia", "oracle certified", "microsoft certified",
		"google certified", "databricks certified", "cka", "ckad", "istqb",
		"six sigma", "itil",
	}
}

// ProjectKeywords are the line-level indicators used to accrete project blocks.
func ProjectKeywords() []string {
	return []string{
		"project", "internship", "developed", "implemented", "designed",
		"created", "built", "worked on",
	}
}

// ExtracurricularKeywords are the line-level indicators of extracurricular activity.
func ExtracurricularKeywords() []string {
	return []string{
		"volunteer", "leadership", "captain", "award", "club", "hackathon",
		"competition", "community", "medal", "athletic", "sports", "relay",
		"tournament", "achievement",
	}
}

// Load reads a vocabulary from a JSON file, validates it against the
// vocabulary schema, and checks the category invariant.
func Load(path string) (*types.SkillVocabulary, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read vocabulary file %s: %w", path, err)
	}

	if err := schemas.ValidateVocabulary(data); err != nil {
		return nil, fmt.Errorf("invalid vocabulary file %s: %w", path, err)
	}

	var v types.SkillVocabulary
	if err := json.Unmarshal(data, &v); err != nil {
		return nil, fmt.Errorf("failed to parse vocabulary JSON: %w", err)
	}

	if err := Validate(&v); err != nil {
		return nil, err
	}

	return &v, nil
}

// Validate checks the vocabulary invariant: every skill appearing in a
// category list also appears in the flat skill list (case-insensitive).
func Validate(v *types.SkillVocabulary) error {
	known := make(map[string]struct{}, len(v.Skills))
	for _, s := range v.Skills {
		known[strings.ToLower(strings.TrimSpace(s))] = struct{}{}
	}

	for _, name := range v.CategoryNames() {
		for _, s := range v.Categories[name] {
			if _, ok := known[strings.ToLower(strings.TrimSpace(s))]; !ok {
				return fmt.Errorf("vocabulary error: category %q lists unknown skill %q", name, s)
			}
		}
	}

	return nil
}
