package extractor

import (
	"bytes"
	"fmt"
	"io"

	"github.com/dgallion1/outliner/internal/outline"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

// maxStructuralLevel mirrors the engine's 3-level cap for formats that
// carry explicit heading levels. Deeper headings are dropped, not
// clamped.
const maxStructuralLevel = 3

// MarkdownExtractor reads ATX/setext headings from Markdown using
// goldmark. Structural documents have no pages; every heading reports
// page 1 and takes its vertical position from document order.
type MarkdownExtractor struct{}

func (e *MarkdownExtractor) Extract(r io.Reader, filename string) (outline.Outline, error) {
	src, err := io.ReadAll(r)
	if err != nil {
		return outline.Empty(), err
	}

	md := goldmark.New()
	doc := md.Parser().Parse(text.NewReader(src))

	out := outline.Empty()
	out.Title = Stem(filename)

	order := 0
	for n := doc.FirstChild(); n != nil; n = n.NextSibling() {
		h, ok := n.(*ast.Heading)
		if !ok || h.Level > maxStructuralLevel {
			continue
		}
		title := headingText(h, src)
		if title == "" {
			continue
		}
		out.Headings = append(out.Headings, outline.Heading{
			Level: fmt.Sprintf("H%d", h.Level),
			Text:  title,
			Page:  1,
			YPos:  float64(order),
		})
		order++
	}
	return out, nil
}

// headingText collects the text content of a heading's inline children.
func headingText(n ast.Node, src []byte) string {
	var buf bytes.Buffer
	for c := n.FirstChild(); c != nil; c = c.NextSibling() {
		if t, ok := c.(*ast.Text); ok {
			buf.Write(t.Segment.Value(src))
		} else {
			buf.WriteString(headingText(c, src))
		}
	}
	return buf.String()
}
