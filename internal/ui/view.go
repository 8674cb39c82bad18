package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"

	"github.com/atomicstack/menukit/pkg/overlay"
)

// Screen geometry: tab row, blank row, then the entity list. Context
// menus for list rows anchor at menuColumn.
const (
	listTop    = 2
	menuColumn = 4
)

// View renders the demo: tabs, the active pane's rows, a status line,
// and whatever popup is open spliced on top.
func (m *Model) View() string {
	rows := make([]string, 0, m.height)
	rows = append(rows, m.tabRow(), "")
	rows = append(rows, m.paneRows()...)

	footer := 0
	if m.showFooter {
		footer = 1
	}
	for len(rows) < m.height-1-footer {
		rows = append(rows, "")
	}
	if m.showFooter {
		rows = append(rows, m.footerRow())
	}
	rows = append(rows, m.statusRow())

	view := strings.Join(rows, "\n")

	if m.menu.IsOpen() {
		x, y, _, _ := m.menu.Bounds()
		view = spliceAt(view, m.menu.Lines(), x, y)
	}
	view = m.palette.Overlay(view)
	return view
}

func (m *Model) tabRow() string {
	parts := make([]string, 0, paneCount+1)
	parts = append(parts, styles.Header.Render("menukit"))
	for p := Pane(0); p < paneCount; p++ {
		style := styles.Tab
		if p == m.pane {
			style = styles.ActiveTab
		}
		parts = append(parts, style.Render(p.Title()))
	}
	return " " + strings.Join(parts, "  ")
}

func (m *Model) paneRows() []string {
	switch m.pane {
	case PaneTasks:
		tasks := m.tasks.Tasks()
		rows := make([]string, len(tasks))
		for i, t := range tasks {
			rows[i] = m.listRow(i, t.Title, string(t.Status))
		}
		return rows
	case PaneChats:
		chats := m.chats.Chats()
		rows := make([]string, len(chats))
		for i, c := range chats {
			meta := ""
			if c.Pinned {
				meta = "pinned"
			}
			if c.Archived {
				meta = "archived"
			}
			rows[i] = m.listRow(i, c.Title, meta)
		}
		return rows
	case PaneProjects:
		projects := m.projects.Projects()
		rows := make([]string, len(projects))
		for i, p := range projects {
			rows[i] = m.listRow(i, p.Name, p.Path)
		}
		return rows
	case PaneWorkflows:
		workflows := m.workflows.Workflows()
		rows := make([]string, len(workflows))
		for i, w := range workflows {
			rows[i] = m.listRow(i, w.Name, fmt.Sprintf("%d%%", w.Progress()))
		}
		return rows
	}
	return nil
}

func (m *Model) listRow(index int, label, meta string) string {
	marker := "  "
	style := styles.Item
	if index == m.cursors[m.pane] {
		marker = styles.ItemIndicator.Render("> ")
		style = styles.SelectedItem
	}
	row := " " + marker + style.Render(label)
	if meta != "" {
		row += "  " + styles.ItemMeta.Render(meta)
	}
	return row
}

func (m *Model) statusRow() string {
	if m.errMsg != "" {
		return " " + styles.Error.Render(m.errMsg)
	}
	if announcement := m.announcement(); announcement != "" {
		return " " + styles.Announce.Render(announcement)
	}
	if m.infoMsg != "" {
		return " " + styles.Info.Render(m.infoMsg)
	}
	if warn, msg := m.hasBackendIssue(); warn {
		return " " + styles.Error.Render("backend: "+msg)
	}
	return ""
}

// announcement surfaces whichever popup announced most recently; only
// one can be open at a time in this model.
func (m *Model) announcement() string {
	if m.palette.Active() {
		return m.palette.Announcement()
	}
	return m.menu.Announcement()
}

func (m *Model) footerRow() string {
	keys := m.keys
	hints := []string{
		keyHint(keys.OpenMenu), keyHint(keys.Palette),
		keyHint(keys.NextPane), keyHint(keys.Quit),
	}
	return " " + styles.Footer.Render(strings.Join(hints, "  "))
}

func keyHint(b key.Binding) string {
	h := b.Help()
	return h.Key + " " + h.Desc
}

func spliceAt(view string, lines []string, x, y int) string {
	return overlay.Splice(view, lines, x, y)
}

func padRight(text string, width int) string {
	fill := width - lipgloss.Width(text)
	if fill <= 0 {
		return text
	}
	return text + strings.Repeat(" ", fill)
}
