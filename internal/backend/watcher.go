package backend

import (
	"context"
	"sync"
	"time"

	"github.com/atomicstack/menukit/internal/entity"
	"github.com/atomicstack/menukit/internal/trace"
)

// Kind represents the type of data emitted by the backend watcher.
type Kind int

const (
	KindTasks Kind = iota
	KindChats
	KindProjects
	KindWorkflows
)

func (k Kind) String() string {
	switch k {
	case KindTasks:
		return "tasks"
	case KindChats:
		return "chats"
	case KindProjects:
		return "projects"
	case KindWorkflows:
		return "workflows"
	}
	return "unknown"
}

// Event conveys updated data or an error from a backend poll.
type Event struct {
	Kind Kind
	Data interface{}
	Err  error
}

// Source supplies entity snapshots. The demo uses the Simulator; a real
// host would back this with its own data layer.
type Source interface {
	FetchTasks(ctx context.Context) (entity.TaskSnapshot, error)
	FetchChats(ctx context.Context) (entity.ChatSnapshot, error)
	FetchProjects(ctx context.Context) (entity.ProjectSnapshot, error)
	FetchWorkflows(ctx context.Context) (entity.WorkflowSnapshot, error)
}

// Watcher polls a Source at a fixed interval and publishes events.
type Watcher struct {
	source   Source
	interval time.Duration

	ctx    context.Context
	cancel context.CancelFunc

	events chan Event
	wg     sync.WaitGroup
}

// NewWatcher creates a backend watcher that polls the source every
// interval. Each kind gets its own poller so one slow fetch cannot
// starve the rest.
func NewWatcher(source Source, interval time.Duration) *Watcher {
	ctx, cancel := context.WithCancel(context.Background())
	w := &Watcher{
		source:   source,
		interval: interval,
		ctx:      ctx,
		cancel:   cancel,
		events:   make(chan Event, 16),
	}

	// One throttle across all pollers spaces the fetches out, most
	// visibly at startup when every poller fires at once.
	throttle := newThrottle(interval / 4)
	w.startPoller(KindTasks, throttle, func(ctx context.Context) (interface{}, error) {
		return w.source.FetchTasks(ctx)
	})
	w.startPoller(KindChats, throttle, func(ctx context.Context) (interface{}, error) {
		return w.source.FetchChats(ctx)
	})
	w.startPoller(KindProjects, throttle, func(ctx context.Context) (interface{}, error) {
		return w.source.FetchProjects(ctx)
	})
	w.startPoller(KindWorkflows, throttle, func(ctx context.Context) (interface{}, error) {
		return w.source.FetchWorkflows(ctx)
	})

	go func() {
		w.wg.Wait()
		close(w.events)
	}()

	return w
}

// Events returns a channel of backend events.
func (w *Watcher) Events() <-chan Event {
	return w.events
}

// Stop cancels the watcher. Pollers exit after their current fetch
// completes; use Wait if a clean drain is required (e.g. in tests).
func (w *Watcher) Stop() {
	w.cancel()
}

// Wait blocks until all poller goroutines have exited and the events
// channel is closed. Call after Stop when a clean shutdown is required.
func (w *Watcher) Wait() {
	w.wg.Wait()
}

func (w *Watcher) startPoller(kind Kind, throttle *throttle, fetch func(context.Context) (interface{}, error)) {
	w.wg.Add(1)
	go w.poll(kind, func(ctx context.Context) (interface{}, error) {
		paused, ok := throttle.wait(ctx)
		if !ok {
			return nil, ctx.Err()
		}
		if paused {
			trace.Backend.Throttled(kind.String())
		}
		return fetch(ctx)
	})
}

func (w *Watcher) poll(kind Kind, fetch func(context.Context) (interface{}, error)) {
	defer w.wg.Done()
	trace.Backend.Started(kind.String())
	defer trace.Backend.Stopped(kind.String())

	emit := func() bool {
		data, err := fetch(w.ctx)
		evt := Event{Kind: kind, Data: data, Err: err}
		select {
		case <-w.ctx.Done():
			return false
		case w.events <- evt:
			return true
		}
	}

	if !emit() {
		return
	}

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-w.ctx.Done():
			return
		case <-ticker.C:
			if !emit() {
				return
			}
		}
	}
}
