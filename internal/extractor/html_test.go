package extractor

import "testing"

func TestHTMLExtractor_Headings(t *testing.T) {
	input := `<html>
<head><title>Service Manual</title></head>
<body>
<h1>Overview</h1>
<p>Intro.</p>
<h2>Setup</h2>
<h3>Prerequisites</h3>
<h4>Ignored Depth</h4>
<nav><h2>Navigation Heading</h2></nav>
<h2>Operations</h2>
</body>
</html>`
	e := &HTMLExtractor{}
	out, err := e.Extract(stringsReader(input), "manual.html")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if out.Title != "Service Manual" {
		t.Errorf("expected title from <title>, got %q", out.Title)
	}

	want := []struct {
		level, text string
	}{
		{"H1", "Overview"},
		{"H2", "Setup"},
		{"H3", "Prerequisites"},
		{"H2", "Operations"},
	}
	if len(out.Headings) != len(want) {
		t.Fatalf("expected %d headings, got %d: %+v", len(want), len(out.Headings), out.Headings)
	}
	for i, w := range want {
		if out.Headings[i].Level != w.level || out.Headings[i].Text != w.text {
			t.Errorf("heading %d: expected %s %q, got %s %q",
				i, w.level, w.text, out.Headings[i].Level, out.Headings[i].Text)
		}
	}
}

func TestHTMLExtractor_TitleFallsBackToStem(t *testing.T) {
	e := &HTMLExtractor{}
	out, err := e.Extract(stringsReader("<html><body><h1>Top</h1></body></html>"), "page.htm")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.Title != "page" {
		t.Errorf("expected title %q, got %q", "page", out.Title)
	}
}

func TestHTMLExtractor_NestedInlineText(t *testing.T) {
	e := &HTMLExtractor{}
	out, err := e.Extract(stringsReader("<h2>Deploying <em>fast</em> builds</h2>"), "d.html")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(out.Headings) != 1 || out.Headings[0].Text != "Deploying fast builds" {
		t.Errorf("unexpected headings: %+v", out.Headings)
	}
}
