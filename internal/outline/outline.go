// Package outline implements font- and layout-heuristic heading
// detection for documents that carry no usable bookmark metadata.
// The pipeline is strictly linear: spans in, body-size estimate,
// title selection, candidate scoring, level classification.
package outline

import "encoding/json"

// TextSpan is a contiguous run of text sharing one font size and style.
// Spans are immutable once extracted; every downstream stage reads the
// same shared sequence.
type TextSpan struct {
	Text     string
	FontSize float64
	FontName string
	Page     int     // 1-based
	YPos     float64 // distance from the top of the page
}

// Heading is an accepted, leveled outline entry. YPos is retained for
// ordering and section grouping only and never serialized.
type Heading struct {
	Level string  `json:"level"`
	Text  string  `json:"text"`
	Page  int     `json:"page"`
	YPos  float64 `json:"-"`
}

// Title is the document title selected from first-page spans. A span
// chosen as title is excluded from heading candidacy.
type Title struct {
	Text string
	Page int
}

// Outline is the externally visible result for one document. Headings
// is never nil so the JSON "outline" field is always an array.
type Outline struct {
	Title    string    `json:"title"`
	Headings []Heading `json:"outline"`
	Error    string    `json:"error,omitempty"`
}

// Empty returns a valid outline with no title and no headings.
func Empty() Outline {
	return Outline{Headings: []Heading{}}
}

// Failed returns the error variant of an outline: structurally valid,
// with the failure recorded in the Error field.
func Failed(err error) Outline {
	o := Empty()
	if err != nil {
		o.Error = err.Error()
	}
	return o
}

// Section is a heading together with the body text that follows it, up
// to the next heading.
type Section struct {
	HeadingText  string `json:"heading_text"`
	HeadingLevel string `json:"heading_level"`
	Page         int    `json:"page"`
	Content      string `json:"content"`
}

// EncodeJSON renders an outline with four-space indentation. The
// encoding is deterministic: re-running extraction over the same span
// sequence yields byte-identical output.
func EncodeJSON(o Outline) ([]byte, error) {
	return json.MarshalIndent(o, "", "    ")
}
