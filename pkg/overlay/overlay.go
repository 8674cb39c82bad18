// Package overlay splices rendered popup rows over a host view without
// disturbing the view's own escape sequences.
package overlay

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
)

// reset clears SGR state at the splice boundary so the popup's styling
// cannot leak into the host row and vice versa.
const reset = "\x1b[0m"

// Splice draws lines over view starting at screen cell (x, y). Rows
// that fall outside the view are dropped rather than extending it, and
// a base row narrower than x is padded with spaces up to the anchor.
func Splice(view string, lines []string, x, y int) string {
	if len(lines) == 0 {
		return view
	}
	if x < 0 {
		x = 0
	}

	rows := strings.Split(view, "\n")
	for i, line := range lines {
		row := y + i
		if row < 0 || row >= len(rows) {
			continue
		}
		rows[row] = spliceRow(rows[row], line, x)
	}
	return strings.Join(rows, "\n")
}

func spliceRow(base, line string, x int) string {
	baseWidth := ansi.StringWidth(base)
	lineWidth := ansi.StringWidth(line)

	var b strings.Builder
	b.Grow(len(base) + len(line) + 2*len(reset))

	if x > 0 {
		prefix := ansi.Truncate(base, x, "")
		b.WriteString(prefix)
		if gap := x - ansi.StringWidth(prefix); gap > 0 {
			b.WriteString(strings.Repeat(" ", gap))
		}
	}
	b.WriteString(reset)
	b.WriteString(line)
	b.WriteString(reset)

	if end := x + lineWidth; end < baseWidth {
		b.WriteString(ansi.TruncateLeft(base, end, ""))
	}
	return b.String()
}

// Width returns the widest visible row of a rendered block.
func Width(lines []string) int {
	width := 0
	for _, line := range lines {
		if w := ansi.StringWidth(line); w > width {
			width = w
		}
	}
	return width
}
