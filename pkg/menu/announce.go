package menu

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// DefaultAnnounceClearAfter is how long the transient open announcement
// stays before it clears so the next open re-announces.
const DefaultAnnounceClearAfter = time.Second

type announceClearMsg struct {
	session uint64
}

// openAnnouncement builds the transient status text emitted on the
// closed-to-open edge. It always carries the eligible action count so
// assistive output receives the same readiness signal the visual popup
// gives sighted users.
func openAnnouncement(label string, eligible int) string {
	if eligible == 1 {
		return fmt.Sprintf("%s opened, 1 action", label)
	}
	return fmt.Sprintf("%s opened, %d actions", label, eligible)
}

// defaultLabel is the generated accessible name used when the caller
// supplies none.
func defaultLabel() string {
	return "Menu"
}

func (c *Controller) scheduleAnnounceClear(session uint64) tea.Cmd {
	return tea.Tick(c.clearAfter, func(time.Time) tea.Msg {
		return announceClearMsg{session: session}
	})
}
