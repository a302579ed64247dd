package extract

import "strings"

// Certifications tests each certification keyword against the document using
// whole-word, case-insensitive matching and returns the subset present,
// preserving keyword-list order.
func Certifications(text string, keywords []string) []string {
	found := []string{}
	if strings.TrimSpace(text) == "" {
		return found
	}

	for _, kw := range keywords {
		label := strings.ToLower(strings.TrimSpace(kw))
		if label == "" {
			continue
		}
		if wordPattern(label).MatchString(text) {
			found = append(found, label)
		}
	}

	return found
}

// Extracurricular scans the document line by line and emits the literal
// (trimmed) line whenever it mentions any of the keywords, case-insensitive
// substring match. Duplicate lines are preserved.
func Extracurricular(text string, keywords []string) []string {
	matches := []string{}

	for _, line := range strings.Split(text, "\n") {
		lower := strings.ToLower(line)
		for _, kw := range keywords {
			k := strings.ToLower(strings.TrimSpace(kw))
			if k == "" {
				continue
			}
			if strings.Contains(lower, k) {
				matches = append(matches, strings.TrimSpace(line))
				break
			}
		}
	}

	return matches
}
