// Package types provides type definitions for structured data used throughout the resume-screener system.
//
//nolint:revive // types is a standard Go package name pattern
package types

// DocumentSignals holds the structured signals extracted from a single
// free-text document (a resume or a job description). All fields are
// recomputed per document; instances carry no identity beyond their contents.
type DocumentSignals struct {
	// Skills is the deduplicated set of vocabulary skills found in the
	// document, in sorted order for stable display.
	Skills []string `json:"skills"`
	// Certifications lists the certification keywords present in the
	// document, preserving keyword-list order.
	Certifications []string `json:"certifications"`
	// Projects lists project blocks accreted from contiguous
	// project-indicating lines.
	Projects []string `json:"projects"`
	// Extracurricular lists the literal lines that mention an
	// extracurricular keyword. Duplicates across lines are preserved.
	Extracurricular []string `json:"extracurricular"`
	// Years is the heuristic total of professional experience derived from
	// date ranges found in the document, rounded to one decimal place.
	Years float64 `json:"years"`
}
