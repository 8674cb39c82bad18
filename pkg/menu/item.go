package menu

import tea "github.com/charmbracelet/bubbletea"

// Kind classifies a menu entry. Exactly one kind applies to each item:
// action items participate in navigation and selection, dividers are
// structural, and disabled items render but cannot be reached.
type Kind int

const (
	KindAction Kind = iota
	KindDivider
	KindDisabled
)

// Role identifies how an entry is exposed to assistive technology.
type Role int

const (
	RoleMenu Role = iota
	RoleItem
	RoleSeparator
)

// Item represents one selectable or structural menu entry. Label is
// opaque to the controller. Action produces the command to run when the
// item is activated; it is nil for dividers and ignored for disabled
// items.
type Item struct {
	ID     string
	Label  string
	Kind   Kind
	Action func() tea.Cmd
}

// Eligible reports whether keyboard and pointer navigation can reach
// the item.
func (it Item) Eligible() bool { return it.Kind == KindAction }

// Disabled reports whether the item renders but cannot be selected.
func (it Item) Disabled() bool { return it.Kind == KindDisabled }

// Role returns the assistive-technology role for the entry.
func (it Item) Role() Role {
	if it.Kind == KindDivider {
		return RoleSeparator
	}
	return RoleItem
}

// EligibleItems returns the ordered subset of items reachable by
// navigation, preserving the original order. Callers recompute it
// whenever the item list changes; items may change while a menu is
// open.
func EligibleItems(items []Item) []Item {
	subset := make([]Item, 0, len(items))
	for _, it := range items {
		if it.Eligible() {
			subset = append(subset, it)
		}
	}
	return subset
}

// EligibleCount returns the number of items reachable by navigation.
func EligibleCount(items []Item) int {
	n := 0
	for _, it := range items {
		if it.Eligible() {
			n++
		}
	}
	return n
}

// CloneItems produces a shallow copy of the provided menu items.
func CloneItems(items []Item) []Item {
	dup := make([]Item, len(items))
	copy(dup, items)
	return dup
}
