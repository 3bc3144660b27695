package commitsense

// ColorPair represents a foreground and background color combination.
// Colors are hex strings in "#RRGGBB" format. Empty strings indicate no
// color override (use terminal default).
type ColorPair struct {
	Foreground string
	Background string
}

// Styles contains color pairs for all visual elements of a rendered
// response.
type Styles struct {
	Primary     ColorPair // the variant-0 suggestion message
	Alternative ColorPair // alternative suggestion messages
	TypeTag     ColorPair // the change-type label next to each message
	Rationale   ColorPair // per-suggestion rationale line
	Summary     ColorPair // the summary block
	Usage       ColorPair // the usage block
	Selected    ColorPair // the highlighted row in the interactive picker
}

// Theme provides styles for rendering suggestions.
// Different implementations can provide light/dark variants.
type Theme interface {
	Styles() Styles
}
