package logger

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/go-logr/logr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetupWritesJSONEntries(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "test.log")
	log, err := Setup(path, 1)
	require.NoError(t, err)

	log.Info("menu opened", "session", 3)
	log.V(1).Info("dismissal armed")
	log.V(2).Info("should be filtered")
	Sync()

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	require.Len(t, lines, 2, "entries above the verbosity threshold are dropped")

	var entry map[string]any
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &entry))
	assert.Equal(t, "menu opened", entry[MessageKey])
	assert.Equal(t, float64(3), entry["session"])
	assert.Equal(t, "menukit", entry[AppKey])
	assert.NotEmpty(t, entry[TimeStampKey])
}

func TestSetupCreatesMissingDirectories(t *testing.T) {
	path := filepath.Join(t.TempDir(), "a", "b", "c.log")
	_, err := Setup(path, 0)
	require.NoError(t, err)

	_, err = os.Stat(filepath.Dir(path))
	assert.NoError(t, err)
}

func TestContextRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ctx.log")
	log, err := Setup(path, 0)
	require.NoError(t, err)

	ctx := WithLogger(context.Background(), log)
	assert.Same(t, log, FromContext(ctx))
	assert.Equal(t, ctx, WithLogger(ctx, log), "re-attaching the same logger keeps the context")

	named := log.WithName("menus")
	child := WithLogger(ctx, &named)
	assert.NotEqual(t, ctx, child)
	assert.Same(t, &named, FromContext(child))
}

func TestFromContextFallsBack(t *testing.T) {
	got := FromContext(context.Background())
	require.NotNil(t, got)
	assert.NotPanics(t, func() { got.Info("fallback is safe to use") })
}

func TestNoopLoggerDiscards(t *testing.T) {
	log := Noop()
	assert.False(t, log.Enabled())
	assert.Equal(t, logr.Discard(), *log)
}
