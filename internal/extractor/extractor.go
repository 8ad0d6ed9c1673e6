package extractor

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/dgallion1/outliner/internal/outline"
)

// Extractor produces a document outline from raw file bytes.
type Extractor interface {
	Extract(r io.Reader, filename string) (outline.Outline, error)
}

// SectionProvider is an optional interface for extractors that can
// also materialize each heading's trailing body text.
type SectionProvider interface {
	ExtractSections(r io.Reader, filename string) (outline.Outline, []outline.Section, error)
}

// SupportedExtensions lists file extensions this service can handle.
var SupportedExtensions = map[string]bool{
	".pdf":      true,
	".md":       true,
	".markdown": true,
	".html":     true,
	".htm":      true,
	".docx":     true,
}

// ForFile returns the appropriate extractor for a filename. PDF input
// goes through the heuristic heading engine configured by heur and
// pageLimit; structural formats carry explicit headings and ignore
// both.
func ForFile(filename string, heur outline.Heuristics, pageLimit int) (Extractor, error) {
	ext := strings.ToLower(filepath.Ext(filename))
	switch ext {
	case ".pdf":
		return &PDFExtractor{Heuristics: heur, PageLimit: pageLimit}, nil
	case ".md", ".markdown":
		return &MarkdownExtractor{}, nil
	case ".html", ".htm":
		return &HTMLExtractor{}, nil
	case ".docx":
		return &DOCXExtractor{}, nil
	default:
		return nil, fmt.Errorf("unsupported file extension: %s", ext)
	}
}

// IsSupportedExtension checks if a file extension is supported.
func IsSupportedExtension(filename string) bool {
	return SupportedExtensions[strings.ToLower(filepath.Ext(filename))]
}

// Stem strips the directory and extension from a filename, yielding
// the output naming stem.
func Stem(filename string) string {
	base := filepath.Base(filename)
	return strings.TrimSuffix(base, filepath.Ext(base))
}
