package outline

import (
	"fmt"
	"sort"
)

// Classify assigns H1..H3 levels to candidates by rank of distinct
// font size: the largest candidate size becomes H1, the next H2, and
// so on up to MaxLevels. Candidates whose size falls outside the top
// ranks are dropped entirely. Level assignment is per-document; sizes
// are not comparable across documents.
//
// The returned headings are in reading order: ascending (page, y_pos),
// with extraction order preserved on exact ties.
func Classify(candidates []Candidate, h Heuristics) []Heading {
	if len(candidates) == 0 {
		return nil
	}

	seen := make(map[float64]bool, len(candidates))
	var sizes []float64
	for _, c := range candidates {
		if !seen[c.FontSize] {
			seen[c.FontSize] = true
			sizes = append(sizes, c.FontSize)
		}
	}
	sort.Sort(sort.Reverse(sort.Float64Slice(sizes)))
	if len(sizes) > h.MaxLevels {
		sizes = sizes[:h.MaxLevels]
	}

	levelFor := make(map[float64]string, len(sizes))
	for i, sz := range sizes {
		levelFor[sz] = fmt.Sprintf("H%d", i+1)
	}

	var headings []Heading
	for _, c := range candidates {
		level, ok := levelFor[c.FontSize]
		if !ok {
			continue
		}
		headings = append(headings, Heading{
			Level: level,
			Text:  c.Text,
			Page:  c.Page,
			YPos:  c.YPos,
		})
	}

	sort.SliceStable(headings, func(i, j int) bool {
		if headings[i].Page != headings[j].Page {
			return headings[i].Page < headings[j].Page
		}
		return headings[i].YPos < headings[j].YPos
	})
	return headings
}
