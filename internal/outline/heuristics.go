package outline

// Heuristics bundles every scoring weight and threshold used by the
// heading engine in one explicit value, so a given configuration is
// reproducible and testable in isolation. The defaults are the tuned
// baseline; they are deliberately not exposed through env config.
type Heuristics struct {
	// OversizedDelta is how far above the body size a span's font must
	// be to count as oversized.
	OversizedDelta float64
	// OversizedScore is awarded when font_size > body + OversizedDelta.
	OversizedScore int
	// BoldScore is awarded when the font name contains "bold".
	BoldScore int
	// NumberedScore is awarded for a numbered prefix such as "2.1" or "A.".
	NumberedScore int
	// ShortScore is awarded when the span has fewer than ShortWordLimit words.
	ShortWordLimit int
	ShortScore     int
	// AllCapsScore is awarded for fully uppercase text longer than
	// AllCapsMinRunes runes.
	AllCapsMinRunes int
	AllCapsScore    int
	// AcceptThreshold is the minimum total score for candidacy.
	AcceptThreshold int
	// MaxLevels caps the hierarchy depth; candidates whose font size
	// ranks below the cap are dropped.
	MaxLevels int
	// MaxBodySize excludes large (title/heading) spans from the body
	// size estimate.
	MaxBodySize float64
	// DefaultBodySize is used when a document has no spans at all.
	DefaultBodySize float64
}

// DefaultHeuristics returns the tuned baseline configuration.
func DefaultHeuristics() Heuristics {
	return Heuristics{
		OversizedDelta:  1,
		OversizedScore:  2,
		BoldScore:       1,
		NumberedScore:   5,
		ShortWordLimit:  15,
		ShortScore:      1,
		AllCapsMinRunes: 2,
		AllCapsScore:    1,
		AcceptThreshold: 4,
		MaxLevels:       3,
		MaxBodySize:     20,
		DefaultBodySize: 12,
	}
}
