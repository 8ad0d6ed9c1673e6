package extractor

import (
	"testing"

	"github.com/dgallion1/outliner/internal/outline"
)

func TestForFile_Dispatch(t *testing.T) {
	heur := outline.DefaultHeuristics()

	tests := []struct {
		filename string
		wantPDF  bool
		wantErr  bool
	}{
		{filename: "report.pdf", wantPDF: true},
		{filename: "REPORT.PDF", wantPDF: true},
		{filename: "notes.md"},
		{filename: "notes.markdown"},
		{filename: "page.html"},
		{filename: "page.htm"},
		{filename: "memo.docx"},
		{filename: "data.csv", wantErr: true},
		{filename: "plain.txt", wantErr: true},
		{filename: "noextension", wantErr: true},
	}

	for _, tc := range tests {
		t.Run(tc.filename, func(t *testing.T) {
			ext, err := ForFile(tc.filename, heur, 0)
			if tc.wantErr {
				if err == nil {
					t.Fatalf("expected error for %s", tc.filename)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			_, isPDF := ext.(*PDFExtractor)
			if isPDF != tc.wantPDF {
				t.Errorf("pdf extractor = %v, want %v", isPDF, tc.wantPDF)
			}
		})
	}
}

func TestIsSupportedExtension(t *testing.T) {
	if !IsSupportedExtension("a.pdf") || !IsSupportedExtension("b.MD") {
		t.Error("expected pdf and md to be supported")
	}
	if IsSupportedExtension("c.exe") || IsSupportedExtension("d") {
		t.Error("expected exe and extension-less names to be unsupported")
	}
}

func TestStem(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"report.pdf", "report"},
		{"dir/sub/report.pdf", "report"},
		{"archive.tar.gz", "archive.tar"},
		{"noext", "noext"},
	}
	for _, tc := range tests {
		if got := Stem(tc.in); got != tc.want {
			t.Errorf("Stem(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestPDFExtractor_CorruptInput(t *testing.T) {
	// Unparseable bytes surface as an error; the caller converts this
	// to the error-outline variant.
	e := &PDFExtractor{Heuristics: outline.DefaultHeuristics()}
	_, err := e.Extract(stringsReader("this is not a pdf"), "bad.pdf")
	if err == nil {
		t.Fatal("expected an open failure for corrupt input")
	}
}
