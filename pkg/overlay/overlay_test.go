package overlay

import (
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSpliceReplacesRegion(t *testing.T) {
	view := strings.Join([]string{
		"..........",
		"..........",
		"..........",
	}, "\n")

	out := Splice(view, []string{"AB", "CD"}, 2, 1)
	rows := strings.Split(out, "\n")
	require.Len(t, rows, 3)

	assert.Equal(t, "..........", ansi.Strip(rows[0]))
	assert.Equal(t, "..AB......", ansi.Strip(rows[1]))
	assert.Equal(t, "..CD......", ansi.Strip(rows[2]))
	assert.Contains(t, rows[1], reset)
}

func TestSplicePreservesHostStyling(t *testing.T) {
	styled := "\x1b[31m..........\x1b[0m"
	out := Splice(styled, []string{"XX"}, 4, 0)

	assert.Equal(t, "....XX....", ansi.Strip(out))
	assert.Contains(t, out, "\x1b[31m", "the host row keeps its color on the prefix side")
}

func TestSpliceDropsRowsOutsideView(t *testing.T) {
	view := "aaaa\nbbbb"
	out := Splice(view, []string{"11", "22", "33", "44"}, 0, -1)

	rows := strings.Split(out, "\n")
	require.Len(t, rows, 2, "splicing never grows the view")
	assert.Equal(t, "22aa", ansi.Strip(rows[0]))
	assert.Equal(t, "33bb", ansi.Strip(rows[1]))
}

func TestSplicePadsNarrowBaseRow(t *testing.T) {
	out := Splice("abc", []string{"XY"}, 6, 0)
	assert.Equal(t, "abc   XY", ansi.Strip(out))
}

func TestSpliceNegativeAnchorClampsToColumnZero(t *testing.T) {
	out := Splice("abcdef", []string{"XY"}, -3, 0)
	assert.Equal(t, "XYcdef", ansi.Strip(out))
}

func TestSpliceEmptyOverlayKeepsView(t *testing.T) {
	view := "one\ntwo"
	assert.Equal(t, view, Splice(view, nil, 3, 0))
}

func TestWidth(t *testing.T) {
	assert.Equal(t, 0, Width(nil))
	assert.Equal(t, 5, Width([]string{"ab", "abcde", "a"}))
	assert.Equal(t, 3, Width([]string{"\x1b[1mabc\x1b[0m"}), "escape sequences carry no width")
}
