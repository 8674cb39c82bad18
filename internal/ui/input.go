package ui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/atomicstack/menukit/internal/menus"
	"github.com/atomicstack/menukit/internal/trace"
	"github.com/atomicstack/menukit/pkg/menu"
)

// KeyMap defines the host-level bindings. They apply while no popup is
// open; an open popup consumes its own keys first.
type KeyMap struct {
	Up       key.Binding
	Down     key.Binding
	Top      key.Binding
	Bottom   key.Binding
	NextPane key.Binding
	PrevPane key.Binding
	OpenMenu key.Binding
	Palette  key.Binding
	Quit     key.Binding
}

var DefaultKeyMap = KeyMap{
	Up: key.NewBinding(
		key.WithKeys("up", "k"),
		key.WithHelp("↑/k", "up"),
	),
	Down: key.NewBinding(
		key.WithKeys("down", "j"),
		key.WithHelp("↓/j", "down"),
	),
	Top: key.NewBinding(
		key.WithKeys("home", "g"),
		key.WithHelp("Home", "first"),
	),
	Bottom: key.NewBinding(
		key.WithKeys("end", "G"),
		key.WithHelp("End", "last"),
	),
	NextPane: key.NewBinding(
		key.WithKeys("tab", "right"),
		key.WithHelp("Tab", "next pane"),
	),
	PrevPane: key.NewBinding(
		key.WithKeys("shift+tab", "left"),
		key.WithHelp("S-Tab", "previous pane"),
	),
	OpenMenu: key.NewBinding(
		key.WithKeys("m", "enter"),
		key.WithHelp("m", "menu"),
	),
	Palette: key.NewBinding(
		key.WithKeys("ctrl+p"),
		key.WithHelp("^p", "palette"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
}

func (m *Model) handleKeyMsg(msg tea.Msg) tea.Cmd {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil
	}
	if m.palette.Active() {
		return m.palette.HandleKey(keyMsg)
	}
	if m.menu.IsOpen() {
		label := m.menu.Label()
		before := m.menu.Highlighted()
		item, hadItem := m.menu.HighlightedItem()
		cmd := m.menu.HandleKey(keyMsg)
		if !m.menu.IsOpen() {
			m.menuFor = ""
			if hadItem && key.Matches(keyMsg, m.menu.KeyMap().Activate) {
				trace.Menu.Activated(label, item.ID)
			} else {
				trace.Menu.Closed(label)
			}
			return cmd
		}
		if now := m.menu.Highlighted(); now != before {
			trace.Menu.Highlight(label, now)
		}
		return cmd
	}

	n := m.paneLength(m.pane)
	cursor := &m.cursors[m.pane]
	switch {
	case key.Matches(keyMsg, m.keys.Quit):
		return tea.Quit
	case key.Matches(keyMsg, m.keys.Up):
		if *cursor > 0 {
			*cursor--
		}
	case key.Matches(keyMsg, m.keys.Down):
		if *cursor < n-1 {
			*cursor++
		}
	case key.Matches(keyMsg, m.keys.Top):
		*cursor = 0
	case key.Matches(keyMsg, m.keys.Bottom):
		if n > 0 {
			*cursor = n - 1
		}
	case key.Matches(keyMsg, m.keys.NextPane):
		m.pane = (m.pane + 1) % paneCount
	case key.Matches(keyMsg, m.keys.PrevPane):
		m.pane = (m.pane + paneCount - 1) % paneCount
	case key.Matches(keyMsg, m.keys.OpenMenu):
		return m.openContextMenu(menuColumn, listTop+*cursor)
	case key.Matches(keyMsg, m.keys.Palette):
		return m.palette.Open(m.listFocus)
	}
	return nil
}

func (m *Model) handleMouseMsg(msg tea.Msg) tea.Cmd {
	mouse, ok := msg.(tea.MouseMsg)
	if !ok {
		return nil
	}
	if m.palette.Active() {
		return m.palette.HandleMouse(mouse)
	}
	if m.menu.IsOpen() {
		label := m.menu.Label()
		outside := mouse.Action == tea.MouseActionPress && !m.menu.Contains(mouse.X, mouse.Y)
		clicked, hadClick := m.menu.ItemAt(mouse.Y)
		cmd := m.menu.HandleMouse(mouse)
		if !m.menu.IsOpen() {
			m.menuFor = ""
			switch {
			case outside:
				trace.Menu.Dismissed(label, "outside-press")
			case hadClick:
				trace.Menu.Activated(label, clicked.ID)
			default:
				trace.Menu.Closed(label)
			}
		}
		return cmd
	}
	if mouse.Action != tea.MouseActionPress {
		return nil
	}
	idx, onRow := m.rowAt(mouse.Y)
	switch mouse.Button {
	case tea.MouseButtonLeft:
		if onRow {
			m.cursors[m.pane] = idx
		}
	case tea.MouseButtonRight:
		if onRow {
			m.cursors[m.pane] = idx
		}
		return m.openContextMenu(mouse.X, mouse.Y)
	}
	return nil
}

// rowAt maps a screen row to an index in the active pane's list.
func (m *Model) rowAt(y int) (int, bool) {
	idx := y - listTop
	if idx < 0 || idx >= m.paneLength(m.pane) {
		return 0, false
	}
	return idx, true
}

// openContextMenu builds the menu for the entity under the cursor and
// opens it anchored at the given cell.
func (m *Model) openContextMenu(x, y int) tea.Cmd {
	items, label, id := m.contextMenuFor(m.pane)
	if len(items) == 0 {
		return nil
	}
	m.menuFor = id
	m.menuPane = m.pane
	wrapped := m.bus.Wrap(items)
	trace.Menu.Opened(label, len(wrapped), menu.EligibleCount(wrapped))
	anchor := menu.Anchor{X: menu.At(float64(x)), Y: menu.At(float64(y))}
	return m.menu.Open(anchor, wrapped,
		menu.WithLabel(label),
		menu.WithFocusReturn(m.listFocus),
	)
}

// contextMenuFor returns the item list, accessible label, and entity id
// for the selected row of a pane. Empty panes produce no menu.
func (m *Model) contextMenuFor(p Pane) ([]menu.Item, string, string) {
	cursor := m.cursors[p]
	switch p {
	case PaneTasks:
		tasks := m.tasks.Tasks()
		if cursor >= len(tasks) {
			return nil, "", ""
		}
		t := tasks[cursor]
		return menus.TaskItems(t), menus.TaskMenuLabel(t), t.ID
	case PaneChats:
		chats := m.chats.Chats()
		if cursor >= len(chats) {
			return nil, "", ""
		}
		c := chats[cursor]
		return menus.ChatItems(c), menus.ChatMenuLabel(c), c.ID
	case PaneProjects:
		projects := m.projects.Projects()
		if cursor >= len(projects) {
			return nil, "", ""
		}
		pr := projects[cursor]
		return menus.ProjectItems(pr), menus.ProjectMenuLabel(pr), pr.ID
	case PaneWorkflows:
		workflows := m.workflows.Workflows()
		if cursor >= len(workflows) {
			return nil, "", ""
		}
		w := workflows[cursor]
		return menus.WorkflowItems(w), menus.WorkflowMenuLabel(w), w.ID
	}
	return nil, "", ""
}

// refreshOpenMenu rebuilds the open context menu's items after the
// backend updated the entity it was built from. The controller clamps
// the highlight if the eligible subset shrank.
func (m *Model) refreshOpenMenu(updated Pane) {
	if !m.menu.IsOpen() || m.menuFor == "" || updated != m.menuPane {
		return
	}
	items, _, id := m.contextMenuFor(m.menuPane)
	if id != m.menuFor {
		return
	}
	m.menu.SetItems(m.bus.Wrap(items))
}
