// Package menus turns demo entities into menu item lists. Builders are
// pure: they inspect entity state to decide which actions are enabled
// and leave the rest to the popup controller.
package menus

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/atomicstack/menukit/internal/entity"
	"github.com/atomicstack/menukit/pkg/menu"
)

// Context carries the store snapshots the builders read from.
type Context struct {
	Tasks       []entity.Task
	CurrentTask string

	Chats       []entity.Chat
	CurrentChat string

	Projects       []entity.Project
	CurrentProject string

	Workflows       []entity.Workflow
	CurrentWorkflow string
}

// ActionResult reports the outcome of a menu action back to the host
// model.
type ActionResult struct {
	ID   string
	Info string
	Err  error
}

// action builds an eligible or disabled item. Disabled items render but
// cannot be reached by navigation; their action never runs.
func action(id, label string, enabled bool, info string) menu.Item {
	item := menu.Item{ID: id, Label: label, Kind: menu.KindAction}
	if !enabled {
		item.Kind = menu.KindDisabled
		return item
	}
	item.Action = func() tea.Cmd {
		return func() tea.Msg {
			return ActionResult{ID: id, Info: info}
		}
	}
	return item
}

func divider(id string) menu.Item {
	return menu.Item{ID: id, Kind: menu.KindDivider}
}
