package extractor

import (
	"strings"
	"testing"
)

func stringsReader(s string) *strings.Reader { return strings.NewReader(s) }

func TestMarkdownExtractor_Headings(t *testing.T) {
	input := `# Getting Started

Some intro text.

## Installation

Steps here.

### Linux

More steps.

#### Too Deep

This one is below the level cap.

## Usage
`
	e := &MarkdownExtractor{}
	out, err := e.Extract(stringsReader(input), "guide.md")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if out.Title != "guide" {
		t.Errorf("expected title %q, got %q", "guide", out.Title)
	}

	want := []struct {
		level, text string
	}{
		{"H1", "Getting Started"},
		{"H2", "Installation"},
		{"H3", "Linux"},
		{"H2", "Usage"},
	}
	if len(out.Headings) != len(want) {
		t.Fatalf("expected %d headings, got %d: %+v", len(want), len(out.Headings), out.Headings)
	}
	for i, w := range want {
		h := out.Headings[i]
		if h.Level != w.level || h.Text != w.text {
			t.Errorf("heading %d: expected %s %q, got %s %q", i, w.level, w.text, h.Level, h.Text)
		}
		if h.Page != 1 {
			t.Errorf("heading %d: expected page 1, got %d", i, h.Page)
		}
	}
}

func TestMarkdownExtractor_ReadingOrderByPosition(t *testing.T) {
	input := "# One\n\n# Two\n\n# Three\n"
	e := &MarkdownExtractor{}
	out, err := e.Extract(stringsReader(input), "x.md")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for i := 1; i < len(out.Headings); i++ {
		if out.Headings[i].YPos <= out.Headings[i-1].YPos {
			t.Errorf("heading %d: expected ascending positions, got %v then %v",
				i, out.Headings[i-1].YPos, out.Headings[i].YPos)
		}
	}
}

func TestMarkdownExtractor_InlineFormattingInHeading(t *testing.T) {
	input := "## Working with `code` and *emphasis*\n"
	e := &MarkdownExtractor{}
	out, err := e.Extract(stringsReader(input), "fmt.md")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(out.Headings) != 1 {
		t.Fatalf("expected 1 heading, got %d", len(out.Headings))
	}
	if out.Headings[0].Text != "Working with code and emphasis" {
		t.Errorf("unexpected heading text: %q", out.Headings[0].Text)
	}
}

func TestMarkdownExtractor_NoHeadings(t *testing.T) {
	e := &MarkdownExtractor{}
	out, err := e.Extract(stringsReader("just a paragraph\n\nand another\n"), "plain.md")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(out.Headings) != 0 {
		t.Errorf("expected no headings, got %+v", out.Headings)
	}
	if out.Headings == nil {
		t.Error("heading list must be non-nil for JSON output")
	}
}
