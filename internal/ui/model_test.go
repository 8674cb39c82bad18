package ui

import (
	"errors"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/go-logr/logr"
	"github.com/go-logr/logr/funcr"

	"github.com/atomicstack/menukit/internal/backend"
	"github.com/atomicstack/menukit/internal/entity"
	"github.com/atomicstack/menukit/internal/menus"
	"github.com/atomicstack/menukit/internal/trace"
	"github.com/atomicstack/menukit/pkg/menu"
)

func testModel() *Model {
	return NewModel(Options{
		Verbose:            true,
		AnnounceClearAfter: time.Millisecond,
		StatusFadeAfter:    time.Millisecond,
	})
}

func seedTasks(h *Harness, tasks ...entity.Task) {
	h.Send(backendEventMsg{event: backend.Event{
		Kind: backend.KindTasks,
		Data: entity.TaskSnapshot{Tasks: tasks, Current: tasks[0].ID},
	}})
}

func keyRune(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

// runAction executes an activation command and delivers its result
// message, leaving the scheduled status fade pending so the status line
// can be inspected.
func runAction(t *testing.T, m *Model, cmd tea.Cmd) {
	t.Helper()
	if cmd == nil {
		t.Fatal("expected an activation command")
	}
	msg := cmd()
	if msg == nil {
		t.Fatal("activation produced no message")
	}
	m.Update(msg)
}

func TestOpenContextMenuOnKey(t *testing.T) {
	m := testModel()
	h := NewHarness(m)
	seedTasks(h, entity.Task{ID: "t1", Title: "Wire login", Status: entity.TaskInProgress})

	h.Send(keyRune('m'))

	if !m.menu.IsOpen() {
		t.Fatal("menu should be open")
	}
	if m.menuFor != "t1" {
		t.Fatalf("menuFor = %q, want t1", m.menuFor)
	}
	if got := m.menu.Label(); !strings.Contains(got, "t1") {
		t.Fatalf("label = %q, want task id", got)
	}
	// The harness drains the open command, so arming has landed.
	if !m.menu.Armed() {
		t.Fatal("dismissal should be armed after the open command ran")
	}
	if m.listFocus.focused {
		t.Fatal("list should be blurred while the menu holds focus")
	}
}

func TestMenuNavigateAndActivate(t *testing.T) {
	m := testModel()
	h := NewHarness(m)
	seedTasks(h, entity.Task{ID: "t1", Title: "Wire login", Status: entity.TaskInProgress})

	h.Send(keyRune('m'))
	h.Send(tea.KeyMsg{Type: tea.KeyDown})

	if got := m.menu.Highlighted(); got != 0 {
		t.Fatalf("highlight = %d, want 0", got)
	}
	item, ok := m.menu.HighlightedItem()
	if !ok || item.Label != "Mark in review" {
		t.Fatalf("highlighted item = %+v", item)
	}

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	runAction(t, m, cmd)

	if m.menu.IsOpen() {
		t.Fatal("menu should close after activation")
	}
	if !strings.Contains(m.infoMsg, "t1") {
		t.Fatalf("infoMsg = %q, want action info", m.infoMsg)
	}
	if !m.listFocus.focused {
		t.Fatal("focus should return to the list after close")
	}
}

func TestEscapeClosesMenu(t *testing.T) {
	m := testModel()
	h := NewHarness(m)
	seedTasks(h, entity.Task{ID: "t1", Title: "Wire login", Status: entity.TaskTodo})

	h.Send(keyRune('m'))
	h.Send(tea.KeyMsg{Type: tea.KeyEscape})

	if m.menu.IsOpen() {
		t.Fatal("escape should close the menu")
	}
	if !m.listFocus.focused {
		t.Fatal("focus should return to the list")
	}
	if m.menuFor != "" {
		t.Fatalf("menuFor = %q, want empty after close", m.menuFor)
	}
}

func TestOutsidePressBeforeArmKeepsMenuOpen(t *testing.T) {
	m := testModel()
	h := NewHarness(m)
	seedTasks(h, entity.Task{ID: "t1", Title: "Wire login", Status: entity.TaskTodo})

	// Open without draining commands: arming is scheduled but has not
	// been delivered, like the click that opened the menu still being
	// in flight.
	_, openCmd := m.Update(keyRune('m'))
	if !m.menu.IsOpen() || m.menu.Armed() {
		t.Fatalf("open=%v armed=%v, want open and unarmed", m.menu.IsOpen(), m.menu.Armed())
	}

	outside := tea.MouseMsg{X: 79, Y: 23, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft}
	m.Update(outside)
	if !m.menu.IsOpen() {
		t.Fatal("outside press before arming must not dismiss")
	}

	h.ProcessCmd(openCmd)
	if !m.menu.Armed() {
		t.Fatal("arming should land once the open command is delivered")
	}
	m.Update(outside)
	if m.menu.IsOpen() {
		t.Fatal("outside press after arming should dismiss")
	}
}

func TestRightClickOpensMenuAtRow(t *testing.T) {
	m := testModel()
	h := NewHarness(m)
	seedTasks(h,
		entity.Task{ID: "t1", Title: "First", Status: entity.TaskTodo},
		entity.Task{ID: "t2", Title: "Second", Status: entity.TaskTodo},
	)

	h.Send(tea.MouseMsg{X: 10, Y: listTop + 1, Action: tea.MouseActionPress, Button: tea.MouseButtonRight})

	if !m.menu.IsOpen() {
		t.Fatal("right click should open the menu")
	}
	if m.cursors[PaneTasks] != 1 {
		t.Fatalf("cursor = %d, want 1", m.cursors[PaneTasks])
	}
	if m.menuFor != "t2" {
		t.Fatalf("menuFor = %q, want t2", m.menuFor)
	}
}

func TestBackendReshapeClampsHighlight(t *testing.T) {
	m := testModel()
	h := NewHarness(m)
	seedTasks(h, entity.Task{ID: "t1", Title: "Wire login", Status: entity.TaskInProgress})

	h.Send(keyRune('m'))
	h.Send(tea.KeyMsg{Type: tea.KeyEnd})

	before := len(m.menu.Eligible())
	if got := m.menu.Highlighted(); got != before-1 {
		t.Fatalf("highlight = %d, want last (%d)", got, before-1)
	}

	// The task finishes while the menu is open; the status section all
	// turns disabled and the eligible subset shrinks below the
	// highlight.
	seedTasks(h, entity.Task{ID: "t1", Title: "Wire login", Status: entity.TaskDone})

	if !m.menu.IsOpen() {
		t.Fatal("reshape must not close the menu")
	}
	after := len(m.menu.Eligible())
	if after >= before {
		t.Fatalf("eligible count %d should shrink below %d", after, before)
	}
	if got := m.menu.Highlighted(); got != menu.None {
		t.Fatalf("highlight = %d, want None after clamp", got)
	}
}

func TestActionErrorSurfacesAndFades(t *testing.T) {
	m := testModel()
	m.Update(menus.ActionResult{ID: "x", Err: errors.New("boom")})
	if m.errMsg != "boom" {
		t.Fatalf("errMsg = %q", m.errMsg)
	}

	h := NewHarness(m)
	h.Send(menus.ActionResult{ID: "y", Err: errors.New("later")})
	// The harness delivered the fade tick synchronously.
	if m.errMsg != "" {
		t.Fatalf("errMsg = %q, want cleared after fade", m.errMsg)
	}
}

func TestPaneSwitchingAndCursorClamp(t *testing.T) {
	m := testModel()
	h := NewHarness(m)
	seedTasks(h,
		entity.Task{ID: "t1", Title: "First", Status: entity.TaskTodo},
		entity.Task{ID: "t2", Title: "Second", Status: entity.TaskTodo},
	)

	h.Send(tea.KeyMsg{Type: tea.KeyEnd})
	if m.cursors[PaneTasks] != 1 {
		t.Fatalf("cursor = %d, want 1", m.cursors[PaneTasks])
	}

	h.Send(tea.KeyMsg{Type: tea.KeyTab})
	if m.pane != PaneChats {
		t.Fatalf("pane = %v, want chats", m.pane)
	}
	h.Send(tea.KeyMsg{Type: tea.KeyShiftTab})
	if m.pane != PaneTasks {
		t.Fatalf("pane = %v, want tasks", m.pane)
	}

	// The list shrinks under the cursor.
	seedTasks(h, entity.Task{ID: "t1", Title: "First", Status: entity.TaskTodo})
	if m.cursors[PaneTasks] != 0 {
		t.Fatalf("cursor = %d, want clamped to 0", m.cursors[PaneTasks])
	}
}

func TestWindowSizePropagates(t *testing.T) {
	m := testModel()
	m.Update(tea.WindowSizeMsg{Width: 100, Height: 40})
	if m.width != 100 || m.height != 40 {
		t.Fatalf("size = %dx%d, want 100x40", m.width, m.height)
	}
}

// captureTrace routes trace events into a slice for the duration of a
// test.
func captureTrace(t *testing.T) *[]string {
	t.Helper()
	var got []string
	log := funcr.New(func(prefix, args string) {
		got = append(got, args)
	}, funcr.Options{Verbosity: 1})
	trace.Configure(&log)
	t.Cleanup(func() {
		discard := logr.Discard()
		trace.Configure(&discard)
	})
	return &got
}

func hasEntry(entries []string, substrs ...string) bool {
	for _, entry := range entries {
		found := true
		for _, s := range substrs {
			if !strings.Contains(entry, s) {
				found = false
				break
			}
		}
		if found {
			return true
		}
	}
	return false
}

func TestControllerLoggerWired(t *testing.T) {
	var entries []string
	log := funcr.New(func(prefix, args string) {
		entries = append(entries, args)
	}, funcr.Options{Verbosity: 1})

	m := NewModel(Options{
		Verbose:            true,
		Logger:             &log,
		AnnounceClearAfter: time.Millisecond,
		StatusFadeAfter:    time.Millisecond,
	})
	h := NewHarness(m)
	seedTasks(h, entity.Task{ID: "t1", Title: "Wire login", Status: entity.TaskTodo})

	h.Send(keyRune('m'))
	if !hasEntry(entries, "menu opened") {
		t.Fatalf("entries = %v, want a menu opened entry", entries)
	}
	h.Send(tea.KeyMsg{Type: tea.KeyEscape})
	if !hasEntry(entries, "menu closed") {
		t.Fatalf("entries = %v, want a menu closed entry", entries)
	}

	openPalette(h)
	if !hasEntry(entries, "menu opened", "Command palette") {
		t.Fatalf("entries = %v, want a palette open entry", entries)
	}
}

func TestMenuTraceEvents(t *testing.T) {
	entries := captureTrace(t)
	m := testModel()
	h := NewHarness(m)
	seedTasks(h, entity.Task{ID: "t1", Title: "Wire login", Status: entity.TaskInProgress})

	h.Send(keyRune('m'))
	h.Send(tea.KeyMsg{Type: tea.KeyDown})
	h.Send(tea.KeyMsg{Type: tea.KeyEscape})

	for _, want := range []string{"menu.open", "menu.arm", "menu.highlight", "menu.close"} {
		if !hasEntry(*entries, want) {
			t.Fatalf("entries = %v, want %q", *entries, want)
		}
	}
}

func TestMenuTraceActivateAndDismiss(t *testing.T) {
	entries := captureTrace(t)
	m := testModel()
	h := NewHarness(m)
	seedTasks(h, entity.Task{ID: "t1", Title: "Wire login", Status: entity.TaskInProgress})

	h.Send(keyRune('m'))
	h.Send(tea.KeyMsg{Type: tea.KeyDown})
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	runAction(t, m, cmd)
	if !hasEntry(*entries, "menu.activate") {
		t.Fatalf("entries = %v, want menu.activate", *entries)
	}

	h.Send(keyRune('m'))
	outside := tea.MouseMsg{X: 79, Y: 23, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft}
	h.Send(outside)
	if !hasEntry(*entries, "menu.dismiss", "outside-press") {
		t.Fatalf("entries = %v, want menu.dismiss with cause", *entries)
	}
}

func TestActionErrorTraced(t *testing.T) {
	entries := captureTrace(t)
	m := testModel()

	m.Update(menus.ActionResult{ID: "x", Err: errors.New("boom")})

	if !hasEntry(*entries, "command.error", "boom") {
		t.Fatalf("entries = %v, want command.error with message", *entries)
	}
}

func TestViewShowsAnnouncementWhileOpen(t *testing.T) {
	m := testModel()
	h := NewHarness(m)
	seedTasks(h, entity.Task{ID: "t1", Title: "Wire login", Status: entity.TaskTodo})

	// Bypass the harness so the announcement clear tick stays pending.
	m.Update(keyRune('m'))
	if got := m.menu.Announcement(); !strings.Contains(got, "actions") {
		t.Fatalf("announcement = %q", got)
	}
	if view := m.View(); !strings.Contains(view, "actions") {
		t.Fatal("view should surface the open announcement")
	}
}
