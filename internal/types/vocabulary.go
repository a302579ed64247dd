// Package types provides type definitions for structured data used throughout the resume-screener system.
//
//nolint:revive // types is a standard Go package name pattern
package types

import (
	"sort"
	"strings"
)

// SkillVocabulary is the canonical registry of recognizable skill labels.
// It is constructed once at startup and treated as read-only afterwards,
// which makes it safe for unsynchronized concurrent reads.
type SkillVocabulary struct {
	// Skills is the flat, ordered list of canonical skill labels.
	Skills []string `json:"skills"`
	// Categories optionally partitions skills into named groups used for
	// per-category match breakdowns. Every skill listed here must also
	// appear in Skills (case-insensitive).
	Categories map[string][]string `json:"categories,omitempty"`
}

// Contains reports whether the vocabulary includes the given skill label,
// compared case-insensitively.
func (v *SkillVocabulary) Contains(skill string) bool {
	needle := strings.ToLower(strings.TrimSpace(skill))
	for _, s := range v.Skills {
		if strings.ToLower(s) == needle {
			return true
		}
	}
	return false
}

// CategoryNames returns category names in sorted order so that iteration
// over the Categories map stays deterministic across runs.
func (v *SkillVocabulary) CategoryNames() []string {
	names := make([]string, 0, len(v.Categories))
	for name := range v.Categories {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
