package menu

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the key bindings the controller consumes while a menu
// is open. Hosts may rebind any of them through WithKeyMap.
type KeyMap struct {
	Next     key.Binding
	Previous key.Binding
	First    key.Binding
	Last     key.Binding
	Activate key.Binding

	// Dismiss closes the menu in place; Release closes it because
	// focus is moving on.
	Dismiss key.Binding
	Release key.Binding
}

// DefaultKeyMap is the conventional menu binding set: arrows move the
// highlight, Home/End jump, Enter or Space activates, Escape dismisses,
// Tab releases.
var DefaultKeyMap = KeyMap{
	Next: key.NewBinding(
		key.WithKeys("down"),
		key.WithHelp("↓", "next item"),
	),
	Previous: key.NewBinding(
		key.WithKeys("up"),
		key.WithHelp("↑", "previous item"),
	),
	First: key.NewBinding(
		key.WithKeys("home"),
		key.WithHelp("Home", "first item"),
	),
	Last: key.NewBinding(
		key.WithKeys("end"),
		key.WithHelp("End", "last item"),
	),
	Activate: key.NewBinding(
		key.WithKeys("enter", " "),
		key.WithHelp("Enter", "activate"),
	),
	Dismiss: key.NewBinding(
		key.WithKeys("esc"),
		key.WithHelp("Esc", "dismiss"),
	),
	Release: key.NewBinding(
		key.WithKeys("tab", "shift+tab"),
		key.WithHelp("Tab", "dismiss"),
	),
}
