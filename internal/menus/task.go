package menus

import (
	"fmt"

	"github.com/atomicstack/menukit/internal/entity"
	"github.com/atomicstack/menukit/pkg/menu"
)

// TaskItems builds the context menu for one task. Status transitions
// are gated by the task's current status, so entries the task cannot
// take render disabled rather than disappearing.
func TaskItems(t entity.Task) []menu.Item {
	id := func(op string) string { return "task:" + op + ":" + t.ID }
	return []menu.Item{
		action(id("start"), "Start work",
			t.Status == entity.TaskTodo,
			fmt.Sprintf("Task %s started", t.ID)),
		action(id("review"), "Mark in review",
			t.Status == entity.TaskInProgress,
			fmt.Sprintf("Task %s moved to review", t.ID)),
		action(id("done"), "Mark done",
			t.Status == entity.TaskInReview,
			fmt.Sprintf("Task %s marked done", t.ID)),
		action(id("cancel"), "Cancel task",
			t.Status.Active(),
			fmt.Sprintf("Task %s cancelled", t.ID)),
		divider(id("sep-status")),
		action(id("rename"), "Rename…", true,
			fmt.Sprintf("Rename requested for %s", t.ID)),
		action(id("duplicate"), "Duplicate", true,
			fmt.Sprintf("Task %s duplicated", t.ID)),
		action(id("copy-id"), "Copy task ID", true,
			fmt.Sprintf("Copied %s", t.ID)),
		divider(id("sep-edit")),
		action(id("delete"), "Delete task", true,
			fmt.Sprintf("Task %s deleted", t.ID)),
	}
}

// TaskMenuLabel is the accessible name for a task context menu.
func TaskMenuLabel(t entity.Task) string {
	return fmt.Sprintf("Task %s actions", t.ID)
}
