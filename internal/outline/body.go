package outline

// EstimateBodySize returns the font size most likely to represent
// normal paragraph text. Sizes at or above MaxBodySize are excluded
// from the estimate so titles and large headings cannot skew it; if
// that filter empties the set, the unfiltered sizes are used. The
// result is the statistical mode; when several sizes share the top
// frequency, the one seen first in span order wins, which keeps the
// estimate deterministic.
func EstimateBodySize(spans []TextSpan, h Heuristics) float64 {
	if len(spans) == 0 {
		return h.DefaultBodySize
	}

	sizes := make([]float64, 0, len(spans))
	for _, s := range spans {
		if s.FontSize < h.MaxBodySize {
			sizes = append(sizes, s.FontSize)
		}
	}
	if len(sizes) == 0 {
		for _, s := range spans {
			sizes = append(sizes, s.FontSize)
		}
	}

	counts := make(map[float64]int, len(sizes))
	order := make([]float64, 0, len(sizes))
	for _, sz := range sizes {
		if counts[sz] == 0 {
			order = append(order, sz)
		}
		counts[sz]++
	}

	best := order[0]
	for _, sz := range order[1:] {
		if counts[sz] > counts[best] {
			best = sz
		}
	}
	return best
}
