// Package experience estimates years of professional experience from date
// ranges found in free text, and parses experience requirements from job
// descriptions.
package experience

import (
	"math"
	"regexp"
	"sort"
	"strconv"
	"strings"
	"time"
)

// rangePattern matches textual date ranges such as "Dec 2020 - Aug 2024",
// "Feb.2024 – Apr.2024" and "Jan 2020 – Present". The dash may be a hyphen
// or an en-dash with arbitrary whitespace around it.
var rangePattern = regexp.MustCompile(`(?i)([A-Za-z]{3,}\.?\s*\d{4})\s*[-–]\s*([A-Za-z]{3,}\.?\s*\d{4}|present)`)

// monthYearPattern splits a single range endpoint into month name and year.
var monthYearPattern = regexp.MustCompile(`(?i)^([A-Za-z]{3,})\.?\s*(\d{4})$`)

// requiredPattern matches "N+ years" phrasing in job descriptions.
var requiredPattern = regexp.MustCompile(`(?i)(\d+)\+?\s?years`)

var monthIndex = map[string]time.Month{
	"jan": time.January, "feb": time.February, "mar": time.March,
	"apr": time.April, "may": time.May, "jun": time.June,
	"jul": time.July, "aug": time.August, "sep": time.September,
	"oct": time.October, "nov": time.November, "dec": time.December,
}

// Options controls how date ranges are aggregated.
type Options struct {
	// MergeOverlaps merges overlapping ranges before summing, so concurrent
	// roles are not double-counted. Off by default to preserve the naive sum
	// semantics; the two modes diverge only for overlapping ranges.
	MergeOverlaps bool
}

// TotalYears scans text for date ranges and sums their month spans into a
// year estimate, rounded to one decimal place. "Present" endpoints resolve
// to now. Unparsable or inverted ranges are skipped silently; text with no
// ranges yields 0.
func TotalYears(text string, now time.Time, opts Options) float64 {
	text = strings.ReplaceAll(text, "\n", " ")

	type span struct{ start, end int } // months since year 0
	spans := make([]span, 0)

	for _, m := range rangePattern.FindAllStringSubmatch(text, -1) {
		start, ok := parseMonthYear(m[1])
		if !ok {
			continue
		}

		var end int
		if strings.Contains(strings.ToLower(m[2]), "present") {
			end = now.Year()*12 + int(now.Month())
		} else {
			end, ok = parseMonthYear(m[2])
			if !ok {
				continue
			}
		}

		if end < start {
			continue
		}
		spans = append(spans, span{start: start, end: end})
	}

	totalMonths := 0
	if opts.MergeOverlaps {
		// Sort by start, then sweep merging adjacent intervals.
		sort.Slice(spans, func(i, j int) bool {
			return spans[i].start < spans[j].start
		})
		for i := 0; i < len(spans); {
			cur := spans[i]
			j := i + 1
			for j < len(spans) && spans[j].start <= cur.end {
				if spans[j].end > cur.end {
					cur.end = spans[j].end
				}
				j++
			}
			totalMonths += cur.end - cur.start
			i = j
		}
	} else {
		for _, s := range spans {
			totalMonths += s.end - s.start
		}
	}

	return math.Round(float64(totalMonths)/12*10) / 10
}

// RequiredYears returns the integer from the first "N+ years" phrase in the
// text, or 0 when no such phrase occurs.
func RequiredYears(text string) int {
	m := requiredPattern.FindStringSubmatch(text)
	if m == nil {
		return 0
	}
	n, err := strconv.Atoi(m[1])
	if err != nil {
		return 0
	}
	return n
}

// parseMonthYear parses endpoints like "Dec 2020", "Feb.2024" or
// "February 2024" into an absolute month count.
func parseMonthYear(s string) (int, bool) {
	m := monthYearPattern.FindStringSubmatch(strings.TrimSpace(s))
	if m == nil {
		return 0, false
	}

	name := strings.ToLower(m[1])
	month, ok := monthIndex[name]
	if !ok && len(name) > 3 {
		// Allow full names and longer abbreviations like "Sept" as long as
		// they are a prefix of the full month name.
		if short, found := monthIndex[name[:3]]; found {
			if strings.HasPrefix(strings.ToLower(short.String()), name) {
				month, ok = short, true
			}
		}
	}
	if !ok {
		return 0, false
	}

	year, err := strconv.Atoi(m[2])
	if err != nil {
		return 0, false
	}

	return year*12 + int(month), true
}
