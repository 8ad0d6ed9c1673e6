package outline

import "testing"

func TestSelectTitle_LargestFirstPageSpan(t *testing.T) {
	spans := []TextSpan{
		span("preface note", 10, 1, 5),
		span("Annual Report", 24, 1, 40),
		span("body text", 12, 1, 80),
		span("huge chapter heading", 30, 2, 10),
	}
	title := SelectTitle(spans)
	if title == nil {
		t.Fatal("expected a title")
	}
	if title.Text != "Annual Report" {
		t.Errorf("expected title %q, got %q", "Annual Report", title.Text)
	}
	if title.Page != 1 {
		t.Errorf("expected title page 1, got %d", title.Page)
	}
}

func TestSelectTitle_FirstOfEqualMax(t *testing.T) {
	// Two first-page spans share the maximum size: document order decides.
	spans := []TextSpan{
		span("Volume One", 24, 1, 10),
		span("Second Line", 24, 1, 30),
	}
	title := SelectTitle(spans)
	if title == nil || title.Text != "Volume One" {
		t.Fatalf("expected first max-size span as title, got %+v", title)
	}
}

func TestSelectTitle_NoFirstPageSpans(t *testing.T) {
	spans := []TextSpan{
		span("later content", 12, 2, 10),
		span("more", 12, 3, 10),
	}
	if title := SelectTitle(spans); title != nil {
		t.Errorf("expected no title, got %+v", title)
	}
}

func TestSelectTitle_Empty(t *testing.T) {
	if title := SelectTitle(nil); title != nil {
		t.Errorf("expected no title for empty spans, got %+v", title)
	}
}
