package menus

import (
	"fmt"
	"strings"

	"github.com/lithammer/fuzzysearch/fuzzy"

	"github.com/atomicstack/menukit/internal/entity"
	"github.com/atomicstack/menukit/internal/format/table"
	"github.com/atomicstack/menukit/pkg/menu"
)

// PaletteItems flattens the commands for the current entities into one
// searchable list. Labels carry an aligned target column so the palette
// reads as a table.
func PaletteItems(ctx Context) []menu.Item {
	type entry struct {
		id      string
		command string
		target  string
		enabled bool
		info    string
	}
	entries := make([]entry, 0, 16)

	for _, t := range ctx.Tasks {
		if t.ID != ctx.CurrentTask && !t.Status.Active() {
			continue
		}
		entries = append(entries,
			entry{"palette:task:start:" + t.ID, "Start work", t.Title,
				t.Status == entity.TaskTodo,
				fmt.Sprintf("Task %s started", t.ID)},
			entry{"palette:task:done:" + t.ID, "Mark done", t.Title,
				t.Status == entity.TaskInReview,
				fmt.Sprintf("Task %s marked done", t.ID)},
		)
	}
	for _, c := range ctx.Chats {
		if c.Archived {
			continue
		}
		entries = append(entries, entry{
			"palette:chat:open:" + c.ID, "Open chat", c.Title, true,
			fmt.Sprintf("Opened chat %s", c.ID),
		})
	}
	for _, p := range ctx.Projects {
		if p.Archived {
			continue
		}
		entries = append(entries, entry{
			"palette:project:open:" + p.ID, "Open project", p.Name, true,
			fmt.Sprintf("Opened %s", p.Name),
		})
	}
	for _, w := range ctx.Workflows {
		if w.ID != ctx.CurrentWorkflow {
			continue
		}
		if step, ok := w.CurrentStep(); ok {
			entries = append(entries, entry{
				"palette:workflow:complete:" + w.ID, "Complete step", step.Name, true,
				fmt.Sprintf("Step %s completed", step.Name),
			})
		}
	}

	rows := make([][]string, len(entries))
	for i, e := range entries {
		rows[i] = []string{e.command, e.target}
	}
	labels := table.Format(rows, []table.Alignment{table.AlignLeft, table.AlignLeft})

	items := make([]menu.Item, len(entries))
	for i, e := range entries {
		items[i] = action(e.id, labels[i], e.enabled, e.info)
	}
	return items
}

// Filter returns the items matching the query. The fuzzy pass folds
// case and diacritics; when it matches nothing the plain substring pass
// over labels and IDs gets a say, so exact fragments always work.
func Filter(items []menu.Item, query string) []menu.Item {
	trimmed := strings.TrimSpace(query)
	if trimmed == "" {
		return menu.CloneItems(items)
	}
	labels := make([]string, len(items))
	for i, item := range items {
		labels[i] = item.Label
	}
	ranks := fuzzy.RankFindNormalizedFold(trimmed, labels)
	if len(ranks) > 0 {
		matches := make(map[int]struct{}, len(ranks))
		for _, rank := range ranks {
			matches[rank.OriginalIndex] = struct{}{}
		}
		filtered := make([]menu.Item, 0, len(matches))
		for idx, item := range items {
			if _, ok := matches[idx]; ok {
				filtered = append(filtered, item)
			}
		}
		if len(filtered) > 0 {
			return filtered
		}
	}
	lower := strings.ToLower(trimmed)
	filtered := make([]menu.Item, 0, len(items))
	for _, item := range items {
		if strings.Contains(strings.ToLower(item.Label), lower) ||
			strings.Contains(strings.ToLower(item.ID), lower) {
			filtered = append(filtered, item)
		}
	}
	return filtered
}

// BestMatchIndex picks the item a query most plausibly means: exact
// label or ID first, then label prefix, then substring, then the
// closest fuzzy rank. Returns -1 when the list is empty.
func BestMatchIndex(items []menu.Item, query string) int {
	if len(items) == 0 {
		return -1
	}
	trimmed := strings.TrimSpace(query)
	if trimmed == "" {
		return 0
	}
	lower := strings.ToLower(trimmed)
	for i, item := range items {
		if strings.EqualFold(item.Label, trimmed) || strings.EqualFold(item.ID, trimmed) {
			return i
		}
	}
	for i, item := range items {
		if strings.HasPrefix(strings.ToLower(item.Label), lower) {
			return i
		}
	}
	for i, item := range items {
		if strings.Contains(strings.ToLower(item.Label), lower) ||
			strings.Contains(strings.ToLower(item.ID), lower) {
			return i
		}
	}
	labels := make([]string, len(items))
	for i, item := range items {
		labels[i] = item.Label
	}
	ranks := fuzzy.RankFindNormalizedFold(trimmed, labels)
	if len(ranks) == 0 {
		return 0
	}
	best := ranks[0]
	for _, rank := range ranks[1:] {
		if rank.Distance < best.Distance ||
			(rank.Distance == best.Distance && rank.OriginalIndex < best.OriginalIndex) {
			best = rank
		}
	}
	if best.OriginalIndex < 0 || best.OriginalIndex >= len(items) {
		return 0
	}
	return best.OriginalIndex
}
