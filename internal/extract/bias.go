package extract

import "regexp"

// biasPatterns match terms that could skew screening toward protected
// attributes. They are stripped from job text before any matching runs.
var biasPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)\b(male|female|gender)\b`),
	regexp.MustCompile(`(?i)\b(age|years old)\b`),
	regexp.MustCompile(`(?i)\b(married|single)\b`),
	regexp.MustCompile(`(?i)\b(religion|caste)\b`),
}

// RemoveBiasTerms strips bias-indicating terms from the text. The
// surrounding text is left untouched, so downstream extractors see the
// original line structure.
func RemoveBiasTerms(text string) string {
	for _, p := range biasPatterns {
		text = p.ReplaceAllString(text, "")
	}
	return text
}
