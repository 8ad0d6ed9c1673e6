package outline

// Build runs the full heading pipeline over an extracted span
// sequence. An empty sequence yields a valid empty outline with an
// empty title; a non-empty sequence with no derivable title falls back
// to "Untitled". Zero candidates is not an error: the outline is valid
// with an empty heading list.
func Build(spans []TextSpan, h Heuristics) Outline {
	out := Empty()
	if len(spans) == 0 {
		return out
	}

	bodySize := EstimateBodySize(spans, h)
	title := SelectTitle(spans)
	candidates := FindCandidates(spans, bodySize, title, h)
	out.Headings = append(out.Headings, Classify(candidates, h)...)

	if title != nil {
		out.Title = title.Text
	} else {
		out.Title = "Untitled"
	}
	return out
}
