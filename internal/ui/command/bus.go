// Package command executes menu actions as Bubble Tea commands with
// trace instrumentation around each run.
package command

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/atomicstack/menukit/internal/trace"
	"github.com/atomicstack/menukit/pkg/menu"
)

// Bus coordinates the execution of menu actions.
type Bus struct{}

// New initialises a command bus instance.
func New() *Bus {
	return &Bus{}
}

// Wrap returns a copy of the items with every action routed through the
// bus, so each activation leaves a trace record regardless of which
// path (key, click, palette) triggered it.
func (b *Bus) Wrap(items []menu.Item) []menu.Item {
	wrapped := menu.CloneItems(items)
	for i := range wrapped {
		if wrapped[i].Action == nil {
			continue
		}
		item := wrapped[i]
		wrapped[i].Action = func() tea.Cmd {
			return b.Execute(item)
		}
	}
	return wrapped
}

// Execute runs one item's underlying action, tracing the queue and the
// produced message type.
func (b *Bus) Execute(item menu.Item) tea.Cmd {
	trace.Command.Queue(item.ID, item.Label)
	return func() tea.Msg {
		cmd := item.Action()
		if cmd == nil {
			trace.Command.Result(item.ID, item.Label, "none")
			return nil
		}
		msg := cmd()
		trace.Command.Result(item.ID, item.Label, fmt.Sprintf("%T", msg))
		return msg
	}
}
