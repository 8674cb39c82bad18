package menus

import (
	"fmt"
	"strconv"

	"github.com/atomicstack/menukit/internal/entity"
	"github.com/atomicstack/menukit/internal/format/table"
	"github.com/atomicstack/menukit/pkg/menu"
)

// WorkflowItems builds the context menu for a workflow: one aligned
// step row per step, then the transitions available to the step the
// workflow is currently on. Rows for steps that need no further work
// render disabled so the shape of the workflow stays visible.
func WorkflowItems(w entity.Workflow) []menu.Item {
	rows := make([][]string, len(w.Steps))
	for i, step := range w.Steps {
		rows[i] = []string{step.Name, string(step.Status)}
	}
	labels := table.Format(rows, []table.Alignment{table.AlignLeft, table.AlignLeft})

	items := make([]menu.Item, 0, len(w.Steps)+5)
	for i, step := range w.Steps {
		items = append(items, action(
			"workflow:step:"+w.ID+":"+strconv.Itoa(step.Index),
			labels[i],
			!step.Status.Complete(),
			fmt.Sprintf("Selected step %s of %s", step.Name, w.Name),
		))
	}
	items = append(items, divider("workflow:sep:"+w.ID))
	items = append(items, stepTransitions(w)...)
	return items
}

// stepTransitions returns the start/complete/skip entries for the
// workflow's active step, or its next pending step when nothing runs.
func stepTransitions(w entity.Workflow) []menu.Item {
	step, running := w.CurrentStep()
	if !running {
		var ok bool
		step, ok = w.NextPending()
		if !ok {
			return []menu.Item{
				action("workflow:done:"+w.ID, "Workflow complete", false, ""),
			}
		}
	}
	id := func(op string) string {
		return "workflow:" + op + ":" + w.ID + ":" + strconv.Itoa(step.Index)
	}
	return []menu.Item{
		action(id("start"), fmt.Sprintf("Start %q", step.Name),
			!running && step.Status.CanStart(),
			fmt.Sprintf("Step %s started", step.Name)),
		action(id("complete"), fmt.Sprintf("Complete %q", step.Name),
			running,
			fmt.Sprintf("Step %s completed", step.Name)),
		action(id("skip"), fmt.Sprintf("Skip %q", step.Name),
			!step.Status.Complete(),
			fmt.Sprintf("Step %s skipped", step.Name)),
	}
}

// WorkflowMenuLabel is the accessible name for a workflow context menu.
func WorkflowMenuLabel(w entity.Workflow) string {
	return fmt.Sprintf("Workflow %s (%d%%)", w.Name, w.Progress())
}
