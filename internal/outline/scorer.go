package outline

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

// numberedPrefix matches section-number prefixes such as "3 ", "2.1 ",
// "4.1.2. " and single letter prefixes like "A. ".
var numberedPrefix = regexp.MustCompile(`^\s*(\d+(\.\d+)*\.?|[A-Z]\.)\s+`)

// Candidate is a span that crossed the acceptance threshold, annotated
// with its score. Candidates exist only between scoring and
// classification.
type Candidate struct {
	TextSpan
	Score int
}

// Score applies the additive heading rubric to a single span. The
// signals are independent; a span can collect points from all of them.
func Score(span TextSpan, bodySize float64, h Heuristics) int {
	score := 0
	if span.FontSize > bodySize+h.OversizedDelta {
		score += h.OversizedScore
	}
	if strings.Contains(strings.ToLower(span.FontName), "bold") {
		score += h.BoldScore
	}
	if numberedPrefix.MatchString(span.Text) {
		score += h.NumberedScore
	}
	if len(strings.Fields(span.Text)) < h.ShortWordLimit {
		score += h.ShortScore
	}
	if utf8.RuneCountInString(span.Text) > h.AllCapsMinRunes && isAllCaps(span.Text) {
		score += h.AllCapsScore
	}
	return score
}

// FindCandidates returns the spans that behave like headings. The
// selected title span, if any, is skipped even when it would qualify.
func FindCandidates(spans []TextSpan, bodySize float64, title *Title, h Heuristics) []Candidate {
	var candidates []Candidate
	for _, s := range spans {
		if title != nil && s.Page == title.Page && s.Text == title.Text {
			continue
		}
		if sc := Score(s, bodySize, h); sc >= h.AcceptThreshold {
			candidates = append(candidates, Candidate{TextSpan: s, Score: sc})
		}
	}
	return candidates
}

// isAllCaps reports whether the text contains at least one cased rune
// and none of them are lowercase.
func isAllCaps(s string) bool {
	hasCased := false
	for _, r := range s {
		if unicode.IsLower(r) {
			return false
		}
		if unicode.IsUpper(r) || unicode.IsTitle(r) {
			hasCased = true
		}
	}
	return hasCased
}
