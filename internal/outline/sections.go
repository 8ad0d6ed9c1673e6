package outline

import (
	"sort"
	"strings"
)

type spanKey struct {
	text string
	page int
}

// GroupSections attaches to each heading the spans strictly between
// its position and the next heading's position (end of document for
// the last heading), excluding spans that are themselves recognized
// headings. Span texts are joined with newlines and trimmed.
//
// Headings must already be in reading order, as produced by Classify.
// The grouping is a single ordered merge over the sorted span
// sequence, so it stays linear in spans plus headings.
func GroupSections(spans []TextSpan, headings []Heading) []Section {
	if len(headings) == 0 {
		return nil
	}

	headingKeys := make(map[spanKey]bool, len(headings))
	for _, h := range headings {
		headingKeys[spanKey{h.Text, h.Page}] = true
	}

	ordered := make([]TextSpan, len(spans))
	copy(ordered, spans)
	sort.SliceStable(ordered, func(i, j int) bool {
		if ordered[i].Page != ordered[j].Page {
			return ordered[i].Page < ordered[j].Page
		}
		return ordered[i].YPos < ordered[j].YPos
	})

	after := func(s TextSpan, page int, y float64) bool {
		return s.Page > page || (s.Page == page && s.YPos > y)
	}

	sections := make([]Section, 0, len(headings))
	j := 0
	for i, h := range headings {
		for j < len(ordered) && !after(ordered[j], h.Page, h.YPos) {
			j++
		}

		var content strings.Builder
		for j < len(ordered) {
			s := ordered[j]
			if i+1 < len(headings) {
				next := headings[i+1]
				// Stop at the next heading's position; spans at exactly
				// that position belong to neither section.
				if !(s.Page < next.Page || (s.Page == next.Page && s.YPos < next.YPos)) {
					break
				}
			}
			if !headingKeys[spanKey{s.Text, s.Page}] {
				content.WriteString(s.Text)
				content.WriteByte('\n')
			}
			j++
		}

		sections = append(sections, Section{
			HeadingText:  h.Text,
			HeadingLevel: h.Level,
			Page:         h.Page,
			Content:      strings.TrimSpace(content.String()),
		})
	}
	return sections
}
