package menus

import (
	"fmt"

	"github.com/atomicstack/menukit/internal/entity"
	"github.com/atomicstack/menukit/pkg/menu"
)

// ProjectItems builds the context menu for one project. Archived
// projects cannot grow new tasks.
func ProjectItems(p entity.Project) []menu.Item {
	id := func(op string) string { return "project:" + op + ":" + p.ID }
	archiveLabel := "Archive project"
	archiveInfo := fmt.Sprintf("Project %s archived", p.Name)
	if p.Archived {
		archiveLabel = "Restore project"
		archiveInfo = fmt.Sprintf("Project %s restored", p.Name)
	}
	return []menu.Item{
		action(id("open"), "Open project", true,
			fmt.Sprintf("Opened %s", p.Name)),
		action(id("new-task"), "New task…", !p.Archived,
			fmt.Sprintf("New task in %s", p.Name)),
		divider(id("sep-open")),
		action(id("reveal"), "Reveal in file manager", true,
			fmt.Sprintf("Revealed %s", p.Path)),
		action(id("copy-path"), "Copy path", true,
			fmt.Sprintf("Copied %s", p.Path)),
		divider(id("sep-files")),
		action(id("archive"), archiveLabel, true, archiveInfo),
	}
}

// ProjectMenuLabel is the accessible name for a project context menu.
func ProjectMenuLabel(p entity.Project) string {
	return fmt.Sprintf("Project %s actions", p.Name)
}
