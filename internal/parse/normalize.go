package parse

import (
	"regexp"
	"strings"
)

// PDF text layers tend to linearize table rows onto a single physical line.
// A currency amount immediately followed by a capitalized token is the most
// reliable boundary between two records, so a break is re-inserted there.
var reRecordBoundary = regexp.MustCompile(`€\s+([A-ZÀ-Ÿ])`)

// minLineLength drops fragments too short to carry a record.
const minLineLength = 4

// NormalizeLines splits raw extracted text into trimmed candidate record
// lines. Pure function of its input; running it twice over its own re-joined
// output yields the same sequence, since the boundary repair replaces the
// single newline it inserted with itself.
func NormalizeLines(raw string) []string {
	repaired := reRecordBoundary.ReplaceAllString(raw, "€\n${1}")

	parts := strings.Split(repaired, "\n")
	lines := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if len([]rune(p)) < minLineLength {
			continue
		}
		lines = append(lines, p)
	}
	return lines
}
