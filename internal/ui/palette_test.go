package ui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/atomicstack/menukit/internal/backend"
	"github.com/atomicstack/menukit/internal/entity"
	"github.com/atomicstack/menukit/pkg/menu"
)

func seedChats(h *Harness, chats ...entity.Chat) {
	h.Send(backendEventMsg{event: backend.Event{
		Kind: backend.KindChats,
		Data: entity.ChatSnapshot{Chats: chats, Current: chats[0].ID},
	}})
}

func openPalette(h *Harness) {
	h.Send(tea.KeyMsg{Type: tea.KeyCtrlP})
}

func typeString(h *Harness, s string) {
	for _, r := range s {
		if r == ' ' {
			h.Send(tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}})
			continue
		}
		h.Send(keyRune(r))
	}
}

func TestPaletteOpensWithAllCommands(t *testing.T) {
	m := testModel()
	h := NewHarness(m)
	seedTasks(h, entity.Task{ID: "t1", Title: "Wire login", Status: entity.TaskTodo})
	seedChats(h, entity.Chat{ID: "c1", Title: "Planning"})

	openPalette(h)

	if !m.palette.Active() {
		t.Fatal("palette should be open")
	}
	if m.listFocus.focused {
		t.Fatal("list should be blurred while the palette holds focus")
	}
	// Start work + Mark done for the task, Open chat for the chat.
	if got := len(m.palette.ctl.Items()); got != 3 {
		t.Fatalf("items = %d, want 3", got)
	}
}

func TestPaletteTypingFilters(t *testing.T) {
	m := testModel()
	h := NewHarness(m)
	seedTasks(h, entity.Task{ID: "t1", Title: "Wire login", Status: entity.TaskTodo})
	seedChats(h, entity.Chat{ID: "c1", Title: "Planning"})

	openPalette(h)
	typeString(h, "start")

	eligible := m.palette.ctl.Eligible()
	if len(eligible) != 1 {
		t.Fatalf("eligible = %d, want 1", len(eligible))
	}
	if !strings.Contains(eligible[0].Label, "Start work") {
		t.Fatalf("label = %q", eligible[0].Label)
	}
}

func TestPaletteSpaceTypesIntoFilter(t *testing.T) {
	m := testModel()
	h := NewHarness(m)
	seedChats(h, entity.Chat{ID: "c1", Title: "Project plan"})

	openPalette(h)
	typeString(h, "open c")

	if !m.palette.Active() {
		t.Fatal("space must type into the filter, not activate")
	}
	if got := m.palette.input.Value(); got != "open c" {
		t.Fatalf("filter value = %q, want %q", got, "open c")
	}
	if got := len(m.palette.ctl.Eligible()); got != 1 {
		t.Fatalf("eligible = %d, want 1", got)
	}
}

func TestPaletteActivateRunsCommand(t *testing.T) {
	m := testModel()
	h := NewHarness(m)
	seedTasks(h, entity.Task{ID: "t1", Title: "Wire login", Status: entity.TaskTodo})

	openPalette(h)
	typeString(h, "start")
	h.Send(tea.KeyMsg{Type: tea.KeyDown})

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	runAction(t, m, cmd)

	if m.palette.Active() {
		t.Fatal("palette should close after activation")
	}
	if m.palette.input.Focused() {
		t.Fatal("filter input should blur on close")
	}
	if !strings.Contains(m.infoMsg, "t1") {
		t.Fatalf("infoMsg = %q, want action info", m.infoMsg)
	}
	if !m.listFocus.focused {
		t.Fatal("focus should return to the list")
	}
}

func TestPaletteHighlightsBestMatch(t *testing.T) {
	m := testModel()
	h := NewHarness(m)
	seedTasks(h, entity.Task{ID: "t1", Title: "Wire login", Status: entity.TaskTodo})
	seedChats(h, entity.Chat{ID: "c1", Title: "Planning"})

	openPalette(h)
	if got := m.palette.ctl.Highlighted(); got != menu.None {
		t.Fatalf("highlight = %d, want None before typing", got)
	}

	typeString(h, "start")

	item, ok := m.palette.ctl.HighlightedItem()
	if !ok || !strings.Contains(item.Label, "Start work") {
		t.Fatalf("highlighted item = %+v, want best match", item)
	}

	// Enter runs the pre-highlighted match without any arrow key.
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	runAction(t, m, cmd)
	if m.palette.Active() {
		t.Fatal("palette should close after activation")
	}
	if !strings.Contains(m.infoMsg, "t1") {
		t.Fatalf("infoMsg = %q, want action info", m.infoMsg)
	}
}

func TestPaletteBestMatchSkipsDisabled(t *testing.T) {
	m := testModel()
	h := NewHarness(m)
	// A todo task keeps "Mark done" in the list but disabled.
	seedTasks(h, entity.Task{ID: "t1", Title: "Wire login", Status: entity.TaskTodo})

	openPalette(h)
	typeString(h, "mark")

	if got := len(m.palette.ctl.Items()); got != 1 {
		t.Fatalf("items = %d, want the disabled match only", got)
	}
	if got := m.palette.ctl.Highlighted(); got != menu.None {
		t.Fatalf("highlight = %d, want None when the best match is disabled", got)
	}
}

func TestPaletteEscapeCloses(t *testing.T) {
	m := testModel()
	h := NewHarness(m)
	seedChats(h, entity.Chat{ID: "c1", Title: "Planning"})

	openPalette(h)
	h.Send(tea.KeyMsg{Type: tea.KeyEscape})

	if m.palette.Active() {
		t.Fatal("escape should close the palette")
	}
	if m.palette.input.Focused() {
		t.Fatal("filter input should blur on close")
	}
	if !m.listFocus.focused {
		t.Fatal("focus should return to the list")
	}
}

func TestPaletteRefreshesOnBackendEvent(t *testing.T) {
	m := testModel()
	h := NewHarness(m)
	seedChats(h, entity.Chat{ID: "c1", Title: "Planning"})

	openPalette(h)
	if got := len(m.palette.ctl.Items()); got != 1 {
		t.Fatalf("items = %d, want 1", got)
	}

	seedChats(h,
		entity.Chat{ID: "c1", Title: "Planning"},
		entity.Chat{ID: "c2", Title: "Retro"},
	)

	if !m.palette.Active() {
		t.Fatal("backend refresh must not close the palette")
	}
	if got := len(m.palette.ctl.Items()); got != 2 {
		t.Fatalf("items = %d, want 2 after refresh", got)
	}
}

func TestPaletteOverlayRendersCommands(t *testing.T) {
	m := testModel()
	h := NewHarness(m)
	seedTasks(h, entity.Task{ID: "t1", Title: "Wire login", Status: entity.TaskTodo})

	openPalette(h)

	if view := m.View(); !strings.Contains(view, "Start work") {
		t.Fatal("view should include the palette commands")
	}
}
