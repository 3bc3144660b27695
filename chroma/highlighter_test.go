package chroma_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pgebal/commitsense"
	"github.com/pgebal/commitsense/chroma"
)

// Compile-time check that Highlighter implements commitsense.Highlighter.
var _ commitsense.Highlighter = (*chroma.Highlighter)(nil)

const sampleDiff = `diff --git a/main.go b/main.go
index 1234567..abcdefg 100644
--- a/main.go
+++ b/main.go
@@ -1,3 +1,4 @@
 package main
-old line
+new line
+another line
`

func TestHighlighter_Highlight(t *testing.T) {
	t.Parallel()

	h := chroma.NewHighlighter("monokai")

	out, err := h.Highlight(sampleDiff)

	require.NoError(t, err)
	assert.NotEmpty(t, out)
	assert.Contains(t, out, "+new line")
	assert.Contains(t, out, "-old line")
}

func TestHighlighter_EmptyInput(t *testing.T) {
	t.Parallel()

	h := chroma.NewHighlighter("monokai")

	out, err := h.Highlight("")

	require.NoError(t, err)
	assert.Empty(t, out)
}

func TestHighlighter_UnknownStyleFallsBack(t *testing.T) {
	t.Parallel()

	h := chroma.NewHighlighter("no-such-style")

	out, err := h.Highlight(sampleDiff)

	require.NoError(t, err)
	assert.NotEmpty(t, out)
}
