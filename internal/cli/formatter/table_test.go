package formatter

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderTable(t *testing.T) {
	got := RenderTable(
		[]string{"KEY", "USER"},
		[][]string{
			{"2026-02-14T09-30-00_ada", "ada"},
			{"2026-02-15T11-00-00_anon", "anon"},
		},
	)

	lines := strings.Split(strings.TrimRight(got, "\n"), "\n")
	require.Len(t, lines, 4)

	assert.Contains(t, lines[0], "KEY")
	assert.Contains(t, lines[0], "USER")
	assert.Contains(t, lines[1], "─")
	assert.Contains(t, lines[2], "2026-02-14T09-30-00_ada")
	assert.Contains(t, lines[3], "anon")
}

func TestRenderTable_ShortRows(t *testing.T) {
	got := RenderTable(
		[]string{"KEY", "USER", "SUBMITTED"},
		[][]string{{"only-key"}},
	)
	assert.Contains(t, got, "only-key")
}

func TestRenderTable_NoHeaders(t *testing.T) {
	assert.Empty(t, RenderTable(nil, [][]string{{"x"}}))
}
