package outline

// SelectTitle picks the document title from first-page spans: the
// first span, in document order, whose font size equals the first-page
// maximum. Returns nil when the first page has no spans. Selection
// runs before candidate scoring so the scorer can exclude the title
// span by exact text and page match.
func SelectTitle(spans []TextSpan) *Title {
	largest := 0.0
	found := false
	for _, s := range spans {
		if s.Page != 1 {
			continue
		}
		if !found || s.FontSize > largest {
			largest = s.FontSize
			found = true
		}
	}
	if !found {
		return nil
	}
	for _, s := range spans {
		if s.Page == 1 && s.FontSize == largest {
			return &Title{Text: s.Text, Page: 1}
		}
	}
	return nil
}
