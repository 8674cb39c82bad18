package menu

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/truncate"
)

const ellipsis = "…"

// Row layout: one leading space, a highlight marker cell, one space,
// the label, right padding to the shared width. The title row drops the
// marker cell.
const (
	itemInset  = 5
	titleInset = 3
)

// measure fixes the popup size from the current items and label. Runs
// on open and whenever the item list changes so hit testing and
// rendering agree.
func (c *Controller) measure() {
	width := lipgloss.Width(c.label) + titleInset
	for _, it := range c.items {
		if w := lipgloss.Width(it.Label) + itemInset; w > width {
			width = w
		}
	}
	if width > c.maxWidth {
		width = c.maxWidth
	}
	c.width = width
	c.height = len(c.items) + 1
}

// Bounds returns the popup rectangle in screen cells.
func (c *Controller) Bounds() (x, y, width, height int) {
	x, y = c.pos.Rect(c.width, c.height, c.screenWidth, c.screenHeight)
	return x, y, c.width, c.height
}

// Contains reports whether the screen coordinate falls inside the
// popup. Always false while closed.
func (c *Controller) Contains(x, y int) bool {
	if !c.open {
		return false
	}
	px, py, w, h := c.Bounds()
	return x >= px && x < px+w && y >= py && y < py+h
}

// ItemAt returns the item rendered at the given screen row.
func (c *Controller) ItemAt(y int) (Item, bool) {
	if !c.open {
		return Item{}, false
	}
	_, py, _, _ := c.Bounds()
	raw := y - py - 1
	if raw < 0 || raw >= len(c.items) {
		return Item{}, false
	}
	return c.items[raw], true
}

// eligibleIndexAt maps a screen row to an index in the eligible subset.
// The second result is false over the title row, separators, and
// disabled rows.
func (c *Controller) eligibleIndexAt(y int) (int, bool) {
	_, py, _, _ := c.Bounds()
	raw := y - py - 1
	if raw < 0 || raw >= len(c.items) || !c.items[raw].Eligible() {
		return 0, false
	}
	eligible := 0
	for i := 0; i < raw; i++ {
		if c.items[i].Eligible() {
			eligible++
		}
	}
	return eligible, true
}

// Lines renders the popup rows for overlay splicing. Every line has the
// same visible width. Returns nil while closed.
func (c *Controller) Lines() []string {
	if !c.open {
		return nil
	}
	lines := make([]string, 0, len(c.items)+1)
	lines = append(lines, c.titleLine())

	highlighted := c.focus.Index()
	eligibleSeen := 0
	for _, it := range c.items {
		switch it.Kind {
		case KindDivider:
			lines = append(lines, c.separatorLine())
		case KindDisabled:
			lines = append(lines, c.itemLine(it, false, c.theme.Disabled))
		default:
			style := c.theme.Item
			marked := eligibleSeen == highlighted
			if marked {
				style = c.theme.Highlight
			}
			lines = append(lines, c.itemLine(it, marked, style))
			eligibleSeen++
		}
	}
	return lines
}

// View renders the popup as one block. Returns the empty string while
// closed.
func (c *Controller) View() string {
	return strings.Join(c.Lines(), "\n")
}

func (c *Controller) titleLine() string {
	label := truncate.StringWithTail(c.label, c.labelBudget(titleInset), ellipsis)
	return c.theme.Title.Render(c.pad(" " + label))
}

func (c *Controller) itemLine(it Item, marked bool, style *lipgloss.Style) string {
	marker := " "
	if marked {
		marker = ">"
	}
	label := truncate.StringWithTail(it.Label, c.labelBudget(itemInset), ellipsis)
	return style.Render(c.pad(" " + marker + " " + label))
}

func (c *Controller) separatorLine() string {
	width := c.width - 2
	if width < 0 {
		width = 0
	}
	return c.theme.Separator.Render(c.pad(" " + strings.Repeat("─", width)))
}

func (c *Controller) labelBudget(inset int) uint {
	budget := c.width - inset
	if budget < 0 {
		budget = 0
	}
	return uint(budget)
}

// pad fills the row to the shared popup width. Labels are plain text,
// so lipgloss.Width is an exact cell count here.
func (c *Controller) pad(text string) string {
	fill := c.width - lipgloss.Width(text)
	if fill < 0 {
		fill = 0
	}
	return text + strings.Repeat(" ", fill)
}
