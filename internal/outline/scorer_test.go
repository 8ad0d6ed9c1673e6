package outline

import (
	"strings"
	"testing"
)

func TestScore_Rubric(t *testing.T) {
	h := DefaultHeuristics()
	body := 10.0

	tests := []struct {
		name string
		span TextSpan
		want int
	}{
		{
			name: "oversized numbered short",
			span: TextSpan{Text: "1. Overview", FontSize: 14, FontName: "Helvetica", Page: 1, YPos: 10},
			want: 2 + 5 + 1,
		},
		{
			name: "oversized sub-numbered short",
			span: TextSpan{Text: "1.1 Details", FontSize: 12, FontName: "Helvetica", Page: 1, YPos: 20},
			want: 2 + 5 + 1,
		},
		{
			name: "body sized plain text",
			span: TextSpan{Text: "just an ordinary sentence of prose", FontSize: 10, FontName: "Helvetica", Page: 1, YPos: 30},
			want: 1, // short only
		},
		{
			name: "bold short",
			span: TextSpan{Text: "Summary of findings", FontSize: 10, FontName: "Helvetica-Bold", Page: 1, YPos: 40},
			want: 1 + 1,
		},
		{
			name: "bold detection is case-insensitive",
			span: TextSpan{Text: "Summary of findings", FontSize: 10, FontName: "Arial-BOLD", Page: 1, YPos: 40},
			want: 1 + 1,
		},
		{
			name: "all caps short",
			span: TextSpan{Text: "APPENDIX", FontSize: 10, FontName: "Helvetica", Page: 1, YPos: 50},
			want: 1 + 1,
		},
		{
			name: "all caps too short to count",
			span: TextSpan{Text: "AB", FontSize: 10, FontName: "Helvetica", Page: 1, YPos: 60},
			want: 1, // short only; length must exceed 2
		},
		{
			name: "letter prefix",
			span: TextSpan{Text: "A. Background", FontSize: 10, FontName: "Helvetica", Page: 1, YPos: 70},
			want: 5 + 1,
		},
		{
			name: "oversized barely not enough",
			span: TextSpan{Text: "slightly larger line of body text", FontSize: 11, FontName: "Helvetica", Page: 1, YPos: 80},
			want: 1, // 11 is not > body+1
		},
		{
			name: "exactly body plus one is not oversized",
			span: TextSpan{Text: "exactly at the boundary", FontSize: 11, FontName: "Times", Page: 1, YPos: 90},
			want: 1,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := Score(tc.span, body, h); got != tc.want {
				t.Errorf("Score(%q) = %d, want %d", tc.span.Text, got, tc.want)
			}
		})
	}
}

func TestScore_LongLetterPrefixParagraphStillQualifies(t *testing.T) {
	// A 300-word paragraph starting with "A." scores 5 from the prefix
	// alone and nothing else: no stricter rule suppresses it.
	para := "A. " + strings.TrimSpace(strings.Repeat("word ", 300))
	spanUnderTest := TextSpan{Text: para, FontSize: 10, FontName: "Helvetica", Page: 2, YPos: 100}
	h := DefaultHeuristics()

	got := Score(spanUnderTest, 10, h)
	if got != 5 {
		t.Fatalf("expected score 5 (prefix only), got %d", got)
	}
	if got < h.AcceptThreshold {
		t.Fatalf("expected paragraph to cross the acceptance threshold")
	}
}

func TestFindCandidates_Threshold(t *testing.T) {
	spans := []TextSpan{
		span("1. Overview", 14, 1, 10),               // 8: candidate
		span("plain paragraph text runs on", 10, 1, 20), // 1: not a candidate
		span("CONCLUSIONS", 12, 3, 30),               // 2+1+1 = 4: candidate
	}
	got := FindCandidates(spans, 10, nil, DefaultHeuristics())
	if len(got) != 2 {
		t.Fatalf("expected 2 candidates, got %d", len(got))
	}
	if got[0].Text != "1. Overview" || got[1].Text != "CONCLUSIONS" {
		t.Errorf("unexpected candidates: %q, %q", got[0].Text, got[1].Text)
	}
	if got[1].Score != 4 {
		t.Errorf("expected CONCLUSIONS to score exactly 4, got %d", got[1].Score)
	}
}

func TestFindCandidates_TitleExcluded(t *testing.T) {
	title := &Title{Text: "1. Overview", Page: 1}
	spans := []TextSpan{
		span("1. Overview", 14, 1, 10), // would qualify, but is the title
		span("1. Overview", 14, 2, 10), // same text on another page still qualifies
	}
	got := FindCandidates(spans, 10, title, DefaultHeuristics())
	if len(got) != 1 {
		t.Fatalf("expected 1 candidate, got %d", len(got))
	}
	if got[0].Page != 2 {
		t.Errorf("expected the page-2 span to survive, got page %d", got[0].Page)
	}
}
