package outline

import (
	"fmt"
	"strings"
)

var validLevels = map[string]bool{
	"H1": true,
	"H2": true,
	"H3": true,
}

// Problems returns human-readable structural anomalies in an outline:
// unknown levels, empty heading text, bad page numbers, headings out
// of reading order, and a page-1 heading that duplicates the title.
// A correctly built outline returns nil.
func Problems(o Outline) []string {
	var problems []string
	for i, h := range o.Headings {
		if !validLevels[h.Level] {
			problems = append(problems, fmt.Sprintf("heading %d: unknown level %q", i, h.Level))
		}
		if strings.TrimSpace(h.Text) == "" {
			problems = append(problems, fmt.Sprintf("heading %d: empty text", i))
		}
		if h.Page < 1 {
			problems = append(problems, fmt.Sprintf("heading %d: page %d is not 1-based", i, h.Page))
		}
		if i > 0 {
			prev := o.Headings[i-1]
			if h.Page < prev.Page || (h.Page == prev.Page && h.YPos < prev.YPos) {
				problems = append(problems, fmt.Sprintf("heading %d: out of reading order", i))
			}
		}
		if o.Title != "" && h.Page == 1 && h.Text == o.Title {
			problems = append(problems, fmt.Sprintf("heading %d: duplicates the title", i))
		}
	}
	return problems
}

// Valid reports whether the outline has no structural anomalies.
func Valid(o Outline) bool {
	return len(Problems(o)) == 0
}
