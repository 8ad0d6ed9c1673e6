package extractor

import (
	"fmt"
	"io"
	"strings"

	"github.com/dgallion1/outliner/internal/outline"
	"golang.org/x/net/html"
)

// HTMLExtractor reads h1..h3 tags from HTML. The document <title>
// becomes the outline title when present, falling back to the
// filename stem.
type HTMLExtractor struct{}

func (e *HTMLExtractor) Extract(r io.Reader, filename string) (outline.Outline, error) {
	doc, err := html.Parse(r)
	if err != nil {
		return outline.Empty(), fmt.Errorf("parse html: %w", err)
	}

	out := outline.Empty()
	out.Title = Stem(filename)
	if title := findTitle(doc); title != "" {
		out.Title = title
	}

	order := 0
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode {
			switch n.Data {
			case "script", "style", "nav", "footer":
				return
			}
			if level := headingLevel(n.Data); level > 0 {
				if level <= maxStructuralLevel {
					if t := textContent(n); t != "" {
						out.Headings = append(out.Headings, outline.Heading{
							Level: fmt.Sprintf("H%d", level),
							Text:  t,
							Page:  1,
							YPos:  float64(order),
						})
						order++
					}
				}
				return
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}

	if body := findBody(doc); body != nil {
		walk(body)
	} else {
		walk(doc)
	}
	return out, nil
}

func headingLevel(tag string) int {
	switch tag {
	case "h1":
		return 1
	case "h2":
		return 2
	case "h3":
		return 3
	case "h4":
		return 4
	case "h5":
		return 5
	case "h6":
		return 6
	}
	return 0
}

func textContent(n *html.Node) string {
	var buf strings.Builder
	var extract func(*html.Node)
	extract = func(n *html.Node) {
		if n.Type == html.TextNode {
			buf.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			extract(c)
		}
	}
	extract(n)
	return strings.TrimSpace(buf.String())
}

func findTitle(n *html.Node) string {
	if n.Type == html.ElementNode && n.Data == "title" {
		return textContent(n)
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if t := findTitle(c); t != "" {
			return t
		}
	}
	return ""
}

func findBody(n *html.Node) *html.Node {
	if n.Type == html.ElementNode && n.Data == "body" {
		return n
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if b := findBody(c); b != nil {
			return b
		}
	}
	return nil
}
