package backend

import (
	"context"
	"sync"
	"time"
)

// throttle spaces fetches at least interval apart so the per-kind
// pollers cannot gang up on the source right after startup.
type throttle struct {
	interval time.Duration

	mu   sync.Mutex
	next time.Time
}

func newThrottle(interval time.Duration) *throttle {
	t := &throttle{}
	if interval > 0 {
		t.interval = interval
	}
	return t
}

// wait blocks until the next slot opens or the context is cancelled.
// paused reports whether the caller actually had to wait; ok reports
// whether it may proceed with a fetch.
func (t *throttle) wait(ctx context.Context) (paused, ok bool) {
	if t == nil || t.interval <= 0 {
		return false, ctx.Err() == nil
	}
	for {
		t.mu.Lock()
		pause := time.Until(t.next)
		if pause <= 0 {
			t.next = time.Now().Add(t.interval)
			t.mu.Unlock()
			return paused, ctx.Err() == nil
		}
		t.mu.Unlock()

		timer := time.NewTimer(pause)
		select {
		case <-ctx.Done():
			timer.Stop()
			return paused, false
		case <-timer.C:
			paused = true
		}
	}
}
