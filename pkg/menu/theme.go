package menu

import "github.com/charmbracelet/lipgloss"

// Theme describes the Lip Gloss styles used to render a popup.
type Theme struct {
	Title     *lipgloss.Style
	Item      *lipgloss.Style
	Highlight *lipgloss.Style
	Disabled  *lipgloss.Style
	Separator *lipgloss.Style
}

var defaultTheme = Theme{
	Title: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Background(lipgloss.Color("236")).Bold(true),
	),
	Item: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("249")).Background(lipgloss.Color("236")),
	),
	Highlight: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Background(lipgloss.Color("238")).Bold(true),
	),
	Disabled: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Background(lipgloss.Color("236")),
	),
	Separator: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Background(lipgloss.Color("236")),
	),
}

// DefaultTheme exposes the stock popup style set.
func DefaultTheme() Theme {
	return defaultTheme
}

func ptr(s lipgloss.Style) *lipgloss.Style { return &s }
