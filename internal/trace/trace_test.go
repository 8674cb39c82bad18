package trace

import (
	"errors"
	"strings"
	"testing"

	"github.com/go-logr/logr"
	"github.com/go-logr/logr/funcr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func capture(t *testing.T) *[]string {
	t.Helper()
	var got []string
	log := funcr.New(func(prefix, args string) {
		got = append(got, args)
	}, funcr.Options{Verbosity: 1})
	Configure(&log)
	t.Cleanup(func() {
		discard := logr.Discard()
		Configure(&discard)
	})
	return &got
}

func TestMenuEventsCarryDottedNames(t *testing.T) {
	got := capture(t)

	Menu.Opened("Task actions", 4, 2)
	Menu.Armed("Task actions")
	Menu.Activated("Task actions", "task.done")
	Menu.Dismissed("Task actions", "outside-press")
	Menu.Closed("Task actions")

	require.Len(t, *got, 5)
	assert.Contains(t, (*got)[0], `"menu.open"`)
	assert.Contains(t, (*got)[0], `"eligible"=2`)
	assert.Contains(t, (*got)[1], `"menu.arm"`)
	assert.Contains(t, (*got)[2], `"task.done"`)
	assert.Contains(t, (*got)[3], `"outside-press"`)
	assert.Contains(t, (*got)[4], `"menu.close"`)
}

func TestCommandErrorSwallowsNil(t *testing.T) {
	got := capture(t)

	Command.Error(nil)
	assert.Empty(t, *got)

	Command.Error(errors.New("boom"))
	require.Len(t, *got, 1)
	assert.Contains(t, (*got)[0], "boom")
}

func TestEventsRespectVerbosity(t *testing.T) {
	var got []string
	log := funcr.New(func(prefix, args string) {
		got = append(got, args)
	}, funcr.Options{Verbosity: 0})
	Configure(&log)
	t.Cleanup(func() {
		discard := logr.Discard()
		Configure(&discard)
	})

	Backend.Event("task", "T-1")
	Palette.Query("de", 3)
	assert.Empty(t, got, "trace events sit above the default verbosity")
}

func TestConfigureNilKeepsSink(t *testing.T) {
	got := capture(t)
	Configure(nil)

	Backend.Throttled("tasks")
	require.Len(t, *got, 1)
	assert.True(t, strings.Contains((*got)[0], "backend.throttle"))
}
