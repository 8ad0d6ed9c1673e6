package extractor

import (
	"fmt"
	"io"
	"math"
	"os"
	"sort"
	"strings"

	"github.com/dgallion1/outliner/internal/outline"
	pdflib "github.com/ledongthuc/pdf"
	"golang.org/x/text/unicode/norm"
)

const (
	// rowTolerance is the Y delta (in points) within which glyph runs
	// are treated as sitting on the same text row.
	rowTolerance = 2.0
	// wordGapRatio is the fraction of the font size an X gap must
	// exceed before a space is inserted between merged runs.
	wordGapRatio = 0.3
	// letterHeight is the fallback page height when the MediaBox is
	// missing or inherited.
	letterHeight = 792.0
)

// PDFExtractor turns styled PDF text runs into spans and feeds them
// through the heading engine.
type PDFExtractor struct {
	Heuristics outline.Heuristics
	PageLimit  int // 0 means all pages
}

func (e *PDFExtractor) Extract(r io.Reader, filename string) (outline.Outline, error) {
	spans, err := e.Spans(r)
	if err != nil {
		return outline.Empty(), err
	}
	return outline.Build(spans, e.Heuristics), nil
}

func (e *PDFExtractor) ExtractSections(r io.Reader, filename string) (outline.Outline, []outline.Section, error) {
	spans, err := e.Spans(r)
	if err != nil {
		return outline.Empty(), nil, err
	}
	o := outline.Build(spans, e.Heuristics)
	return o, outline.GroupSections(spans, o.Headings), nil
}

// Spans extracts the ordered span sequence: one span per inline text
// run, page by page, top to bottom. ledongthuc/pdf needs a ReadSeeker
// with a known size, so the stream goes through a temp file.
func (e *PDFExtractor) Spans(r io.Reader) ([]outline.TextSpan, error) {
	tmp, err := os.CreateTemp("", "outliner-pdf-*.pdf")
	if err != nil {
		return nil, fmt.Errorf("create temp file: %w", err)
	}
	tmpPath := tmp.Name()
	defer os.Remove(tmpPath)

	if _, err := io.Copy(tmp, r); err != nil {
		tmp.Close()
		return nil, fmt.Errorf("write temp file: %w", err)
	}
	tmp.Close()

	f, reader, err := pdflib.Open(tmpPath)
	if err != nil {
		return nil, fmt.Errorf("open pdf: %w", err)
	}
	defer f.Close()

	total := reader.NumPage()
	if e.PageLimit > 0 && e.PageLimit < total {
		total = e.PageLimit
	}

	var spans []outline.TextSpan
	for pageNum := 1; pageNum <= total; pageNum++ {
		page := reader.Page(pageNum)
		if page.V.IsNull() {
			continue
		}
		spans = append(spans, pageSpans(page, pageNum)...)
	}
	return spans, nil
}

// pageSpans orders a page's glyph runs top-to-bottom, left-to-right,
// then merges consecutive runs that share font name, font size, and
// row into a single span. X gaps wider than wordGapRatio of the font
// size become spaces. Y is flipped to top-origin so y_pos ascends in
// reading order.
func pageSpans(page pdflib.Page, pageNum int) []outline.TextSpan {
	texts := page.Content().Text
	if len(texts) == 0 {
		return nil
	}
	height := mediaBoxHeight(page)

	ordered := make([]pdflib.Text, len(texts))
	copy(ordered, texts)
	sort.SliceStable(ordered, func(i, j int) bool {
		if d := ordered[i].Y - ordered[j].Y; d > rowTolerance || d < -rowTolerance {
			return ordered[i].Y > ordered[j].Y // higher on the page first
		}
		return ordered[i].X < ordered[j].X
	})

	var spans []outline.TextSpan
	var buf strings.Builder
	var run pdflib.Text // first glyph of the open run
	var endX float64
	open := false

	flush := func() {
		if !open {
			return
		}
		text := strings.TrimSpace(norm.NFC.String(buf.String()))
		if text != "" {
			spans = append(spans, outline.TextSpan{
				Text:     text,
				FontSize: run.FontSize,
				FontName: run.Font,
				Page:     pageNum,
				YPos:     height - run.Y,
			})
		}
		buf.Reset()
		open = false
	}

	for _, t := range ordered {
		sameRun := open &&
			t.Font == run.Font &&
			t.FontSize == run.FontSize &&
			math.Abs(t.Y-run.Y) <= rowTolerance
		if !sameRun {
			flush()
			run = t
			open = true
		} else if t.X-endX > wordGapRatio*t.FontSize {
			buf.WriteByte(' ')
		}
		buf.WriteString(t.S)
		endX = t.X + t.W
	}
	flush()
	return spans
}

func mediaBoxHeight(page pdflib.Page) float64 {
	box := page.V.Key("MediaBox")
	if box.IsNull() || box.Len() < 4 {
		return letterHeight
	}
	h := box.Index(3).Float64() - box.Index(1).Float64()
	if h <= 0 {
		return letterHeight
	}
	return h
}
