// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jfields/resume-screener/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	for _, line := range strings.Split(content, "\n") {
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintSignals outputs a human-readable summary of one document's signals.
func (p *Printer) PrintSignals(title string, sig *types.DocumentSignals) {
	if sig == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Skills:          %s\n", joinOrNone(sig.Skills)))
	sb.WriteString(fmt.Sprintf("Certifications:  %s\n", joinOrNone(sig.Certifications)))
	sb.WriteString(fmt.Sprintf("Projects:        %d\n", len(sig.Projects)))
	sb.WriteString(fmt.Sprintf("Extracurricular: %d\n", len(sig.Extracurricular)))
	sb.WriteString(fmt.Sprintf("Experience:      %.1f years", sig.Years))

	p.printBox(title, sb.String())
}

// PrintMatch outputs the skill match result with per-category counts.
func (p *Printer) PrintMatch(m *types.MatchResult) {
	if m == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Coverage: %.2f%%\n", m.Coverage))
	sb.WriteString(fmt.Sprintf("Matched:  %s\n", joinOrNone(m.Matched)))
	sb.WriteString(fmt.Sprintf("Missing:  %s", joinOrNone(m.Missing)))

	for _, c := range m.Categories {
		sb.WriteString(fmt.Sprintf("\n%s: %d matched, %d missing", c.Name, c.Matched, c.Missing))
	}

	p.printBox("Skill Match", sb.String())
}

// PrintBreakdown outputs the component scores, final score, and verdict.
func (p *Printer) PrintBreakdown(b *types.ScoreBreakdown, verdict types.Verdict) {
	if b == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Skill coverage:  %6.2f\n", b.SkillCoverage))
	sb.WriteString(fmt.Sprintf("Semantic:        %6.2f\n", b.SemanticScore))
	sb.WriteString(fmt.Sprintf("Experience:      %6.2f\n", b.ExperienceScore))
	sb.WriteString(fmt.Sprintf("Certifications:  %6.2f\n", b.CertificationScore))
	sb.WriteString(fmt.Sprintf("Projects:        %6.2f\n", b.ProjectScore))
	sb.WriteString(fmt.Sprintf("Extracurricular: %6.2f\n", b.ExtracurricularScore))
	sb.WriteString(fmt.Sprintf("Final score:     %6.2f\n", b.FinalScore))
	sb.WriteString(fmt.Sprintf("Verdict:         %s", verdict))

	p.printBox("Score Breakdown", sb.String())
}

// PrintRecommendations outputs the suggestion list, truncated for long lists.
func (p *Printer) PrintRecommendations(recs []string) {
	if len(recs) == 0 {
		return
	}

	var sb strings.Builder
	shown := recs
	if len(shown) > maxItemsToShow {
		shown = shown[:maxItemsToShow]
	}
	for i, rec := range shown {
		if i > 0 {
			sb.WriteString("\n")
		}
		sb.WriteString("- " + rec)
	}
	if len(recs) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("\n... and %d more", len(recs)-maxItemsToShow))
	}

	p.printBox("Recommendations", sb.String())
}

func joinOrNone(items []string) string {
	if len(items) == 0 {
		return "(none)"
	}
	return strings.Join(items, ", ")
}
