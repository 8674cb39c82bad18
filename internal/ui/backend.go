package ui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/atomicstack/menukit/internal/backend"
)

func waitForBackendEvent(w *backend.Watcher) tea.Cmd {
	return func() tea.Msg {
		evt, ok := <-w.Events()
		if !ok {
			return backendDoneMsg{}
		}
		return backendEventMsg{event: evt}
	}
}

type backendEventMsg struct {
	event backend.Event
}

type backendDoneMsg struct{}

func (m *Model) handleBackendEventMsg(msg tea.Msg) tea.Cmd {
	eventMsg, ok := msg.(backendEventMsg)
	if !ok {
		return nil
	}
	m.applyBackendEvent(eventMsg.event)
	if m.backend != nil {
		return waitForBackendEvent(m.backend)
	}
	return nil
}

func (m *Model) handleBackendDoneMsg(msg tea.Msg) tea.Cmd {
	m.backend = nil
	return nil
}

// applyBackendEvent routes a snapshot into the stores and refreshes
// whatever popup was built from the entity that changed. Items may
// change while a menu is open; the controller handles the reshape.
func (m *Model) applyBackendEvent(evt backend.Event) {
	if m.backendState == nil {
		m.backendState = make(map[backend.Kind]error)
	}
	m.backendState[evt.Kind] = evt.Err
	if evt.Err != nil {
		m.backendLastErr = evt.Err.Error()
		return
	}

	res := m.dispatcher.Handle(evt)
	m.clampCursors()

	switch {
	case res.TasksUpdated:
		m.refreshOpenMenu(PaneTasks)
	case res.ChatsUpdated:
		m.refreshOpenMenu(PaneChats)
	case res.ProjectsUpdated:
		m.refreshOpenMenu(PaneProjects)
	case res.WorkflowsUpdated:
		m.refreshOpenMenu(PaneWorkflows)
	}
	if m.palette.Active() {
		m.palette.Refresh()
	}

	if warn, _ := m.hasBackendIssue(); !warn {
		m.backendLastErr = ""
	}
}

func (m *Model) hasBackendIssue() (bool, string) {
	for _, err := range m.backendState {
		if err != nil {
			msg := m.backendLastErr
			if msg == "" {
				msg = err.Error()
			}
			return true, msg
		}
	}
	return false, ""
}
