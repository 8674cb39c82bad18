// Package trace emits structured trace events for the interactive
// surfaces. Events carry dotted names and go out at V(1) so they only
// reach the log when verbose logging is on.
package trace

import (
	"sync"

	"github.com/go-logr/logr"
)

var (
	mu   sync.RWMutex
	sink logr.Logger = logr.Discard()
)

// Configure routes trace events to the given logger. Until then every
// event is discarded.
func Configure(log *logr.Logger) {
	if log == nil {
		return
	}
	mu.Lock()
	sink = *log
	mu.Unlock()
}

func emit(event string, keysAndValues ...any) {
	mu.RLock()
	l := sink
	mu.RUnlock()
	l.V(1).Info(event, keysAndValues...)
}

type MenuTracer struct{}

type PaletteTracer struct{}

type CommandTracer struct{}

type BackendTracer struct{}

var (
	Menu    = MenuTracer{}
	Palette = PaletteTracer{}
	Command = CommandTracer{}
	Backend = BackendTracer{}
)

func (MenuTracer) Opened(label string, items, eligible int) {
	emit("menu.open", "label", label, "items", items, "eligible", eligible)
}

func (MenuTracer) Closed(label string) {
	emit("menu.close", "label", label)
}

func (MenuTracer) Armed(label string) {
	emit("menu.arm", "label", label)
}

func (MenuTracer) Highlight(label string, index int) {
	emit("menu.highlight", "label", label, "index", index)
}

func (MenuTracer) Activated(label, itemID string) {
	emit("menu.activate", "label", label, "item", itemID)
}

func (MenuTracer) Dismissed(label, cause string) {
	emit("menu.dismiss", "label", label, "cause", cause)
}

func (PaletteTracer) Query(query string, matches int) {
	emit("palette.query", "query", query, "matches", matches)
}

func (PaletteTracer) Cleared() {
	emit("palette.clear")
}

func (CommandTracer) Queue(id, label string) {
	emit("command.queue", "id", id, "label", label)
}

func (CommandTracer) Result(id, label, msgType string) {
	emit("command.result", "id", id, "label", label, "msg", msgType)
}

func (CommandTracer) Error(err error) {
	if err == nil {
		return
	}
	emit("command.error", "error", err.Error())
}

func (BackendTracer) Started(name string) {
	emit("backend.start", "worker", name)
}

func (BackendTracer) Stopped(name string) {
	emit("backend.stop", "worker", name)
}

func (BackendTracer) Event(kind, id string) {
	emit("backend.event", "kind", kind, "id", id)
}

func (BackendTracer) Throttled(worker string) {
	emit("backend.throttle", "worker", worker)
}
