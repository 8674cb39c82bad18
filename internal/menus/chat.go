package menus

import (
	"fmt"

	"github.com/atomicstack/menukit/internal/entity"
	"github.com/atomicstack/menukit/pkg/menu"
)

// ChatItems builds the context menu for one chat. Archived chats keep
// their pin state frozen, and pinned chats cannot be deleted.
func ChatItems(c entity.Chat) []menu.Item {
	id := func(op string) string { return "chat:" + op + ":" + c.ID }
	pinLabel := "Pin chat"
	pinInfo := fmt.Sprintf("Chat %s pinned", c.ID)
	if c.Pinned {
		pinLabel = "Unpin chat"
		pinInfo = fmt.Sprintf("Chat %s unpinned", c.ID)
	}
	archiveLabel := "Archive chat"
	archiveInfo := fmt.Sprintf("Chat %s archived", c.ID)
	if c.Archived {
		archiveLabel = "Restore chat"
		archiveInfo = fmt.Sprintf("Chat %s restored", c.ID)
	}
	return []menu.Item{
		action(id("open"), "Open chat", true,
			fmt.Sprintf("Opened chat %s", c.ID)),
		action(id("pin"), pinLabel, !c.Archived, pinInfo),
		action(id("archive"), archiveLabel, true, archiveInfo),
		divider(id("sep-state")),
		action(id("rename"), "Rename…", !c.Archived,
			fmt.Sprintf("Rename requested for %s", c.ID)),
		action(id("copy-link"), "Copy chat link", true,
			fmt.Sprintf("Copied link for %s", c.ID)),
		divider(id("sep-edit")),
		action(id("delete"), "Delete chat", !c.Pinned,
			fmt.Sprintf("Chat %s deleted", c.ID)),
	}
}

// ChatMenuLabel is the accessible name for a chat context menu.
func ChatMenuLabel(c entity.Chat) string {
	return fmt.Sprintf("Chat %s actions", c.ID)
}
