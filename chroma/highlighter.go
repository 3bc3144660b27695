// Package chroma provides diff highlighting using the chroma library.
package chroma

import (
	"strings"

	chromalib "github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/formatters"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"

	"github.com/pgebal/commitsense"
)

// Compile-time interface verification.
var _ commitsense.Highlighter = (*Highlighter)(nil)

// Highlighter colors raw diff text for terminal display using the
// chroma diff lexer.
type Highlighter struct {
	style     *chromalib.Style
	formatter chromalib.Formatter
}

// NewHighlighter creates a Highlighter with the given chroma style name.
// Unknown style names fall back to the chroma default.
func NewHighlighter(styleName string) *Highlighter {
	style := styles.Get(styleName)
	if style == nil {
		style = styles.Fallback
	}
	return &Highlighter{
		style:     style,
		formatter: formatters.Get("terminal256"),
	}
}

// Highlight returns diff with ANSI colors applied. Content the diff
// lexer cannot process is returned unchanged; highlighting is
// best-effort, never an error that blocks output.
func (h *Highlighter) Highlight(diff string) (string, error) {
	if diff == "" {
		return diff, nil
	}

	lexer := lexers.Get("diff")
	if lexer == nil {
		return diff, nil
	}
	lexer = chromalib.Coalesce(lexer)

	iterator, err := lexer.Tokenise(nil, diff)
	if err != nil {
		return diff, nil
	}

	var sb strings.Builder
	if err := h.formatter.Format(&sb, h.style, iterator); err != nil {
		return diff, nil
	}
	return sb.String(), nil
}
