package outline

import "testing"

func span(text string, size float64, page int, y float64) TextSpan {
	return TextSpan{Text: text, FontSize: size, FontName: "Helvetica", Page: page, YPos: y}
}

func TestEstimateBodySize_Mode(t *testing.T) {
	spans := []TextSpan{
		span("a", 12, 1, 10),
		span("b", 12, 1, 20),
		span("c", 12, 1, 30),
		span("d", 14, 1, 40),
		span("e", 10, 1, 50),
	}
	got := EstimateBodySize(spans, DefaultHeuristics())
	if got != 12 {
		t.Errorf("expected body size 12, got %v", got)
	}
}

func TestEstimateBodySize_LargeSizesExcluded(t *testing.T) {
	// Sizes at 20 or above never represent body text, even when they
	// dominate the document.
	spans := []TextSpan{
		span("title", 28, 1, 10),
		span("banner", 28, 1, 20),
		span("banner", 28, 1, 30),
		span("body", 11, 1, 40),
		span("body", 11, 1, 50),
	}
	got := EstimateBodySize(spans, DefaultHeuristics())
	if got != 11 {
		t.Errorf("expected body size 11, got %v", got)
	}
}

func TestEstimateBodySize_FallbackToUnfiltered(t *testing.T) {
	// When every span is oversized, the unfiltered set is used.
	spans := []TextSpan{
		span("a", 24, 1, 10),
		span("b", 24, 1, 20),
		span("c", 30, 1, 30),
	}
	got := EstimateBodySize(spans, DefaultHeuristics())
	if got != 24 {
		t.Errorf("expected body size 24, got %v", got)
	}
}

func TestEstimateBodySize_NoSpans(t *testing.T) {
	got := EstimateBodySize(nil, DefaultHeuristics())
	if got != 12 {
		t.Errorf("expected default body size 12, got %v", got)
	}
}

func TestEstimateBodySize_TieIsDeterministic(t *testing.T) {
	// Two sizes with equal frequency: the one seen first wins, every time.
	spans := []TextSpan{
		span("a", 11, 1, 10),
		span("b", 13, 1, 20),
		span("c", 11, 1, 30),
		span("d", 13, 1, 40),
	}
	h := DefaultHeuristics()
	first := EstimateBodySize(spans, h)
	if first != 11 {
		t.Errorf("expected first-seen size 11 to win the tie, got %v", first)
	}
	for i := 0; i < 50; i++ {
		if got := EstimateBodySize(spans, h); got != first {
			t.Fatalf("run %d: expected %v, got %v", i, first, got)
		}
	}
}
