package extractor

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/dgallion1/outliner/internal/outline"
	"github.com/fumiama/go-docx"
)

// DOCXExtractor reads Heading1..Heading3 paragraph styles from .docx
// files.
type DOCXExtractor struct{}

func (e *DOCXExtractor) Extract(r io.Reader, filename string) (outline.Outline, error) {
	// go-docx needs a ReadSeeker+size, so write to a temp file.
	tmp, err := os.CreateTemp("", "outliner-docx-*.docx")
	if err != nil {
		return outline.Empty(), fmt.Errorf("create temp file: %w", err)
	}
	tmpPath := tmp.Name()
	defer os.Remove(tmpPath)

	size, err := io.Copy(tmp, r)
	if err != nil {
		tmp.Close()
		return outline.Empty(), fmt.Errorf("write temp file: %w", err)
	}
	if _, err := tmp.Seek(0, io.SeekStart); err != nil {
		tmp.Close()
		return outline.Empty(), fmt.Errorf("seek temp file: %w", err)
	}

	doc, err := docx.Parse(tmp, size)
	tmp.Close()
	if err != nil {
		return outline.Empty(), fmt.Errorf("parse docx: %w", err)
	}

	out := outline.Empty()
	out.Title = Stem(filename)

	order := 0
	for _, item := range doc.Document.Body.Items {
		para, ok := item.(*docx.Paragraph)
		if !ok {
			continue
		}
		level := docxHeadingLevel(para)
		if level == 0 || level > maxStructuralLevel {
			continue
		}
		text := docxParagraphText(para)
		if text == "" {
			continue
		}
		out.Headings = append(out.Headings, outline.Heading{
			Level: fmt.Sprintf("H%d", level),
			Text:  text,
			Page:  1,
			YPos:  float64(order),
		})
		order++
	}
	return out, nil
}

func docxHeadingLevel(para *docx.Paragraph) int {
	if para.Properties == nil || para.Properties.Style == nil {
		return 0
	}
	style := para.Properties.Style.Val
	for level := 1; level <= 6; level++ {
		if strings.EqualFold(style, fmt.Sprintf("Heading%d", level)) ||
			strings.EqualFold(style, fmt.Sprintf("heading %d", level)) {
			return level
		}
	}
	return 0
}

func docxParagraphText(para *docx.Paragraph) string {
	var buf strings.Builder
	for _, child := range para.Children {
		run, ok := child.(*docx.Run)
		if !ok {
			continue
		}
		for _, rc := range run.Children {
			if t, ok := rc.(*docx.Text); ok {
				buf.WriteString(t.Text)
			}
		}
	}
	return strings.TrimSpace(buf.String())
}
