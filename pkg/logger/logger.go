// Package logger wires the process-wide structured logger. Entries go
// to a log file rather than stderr so a fullscreen TUI never has its
// alternate screen corrupted by log output.
package logger

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime/debug"
	"strings"
	"sync"
	"syscall"

	"github.com/go-logr/logr"
	"github.com/go-logr/zapr"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// DefaultLogFile receives entries when no path is configured.
const DefaultLogFile = "menukit.log"

const (
	TimeStampKey = "timestamp"
	MessageKey   = "message"
	AppKey       = "app"
	GoVersionKey = "go_version"
)

// Unexported context key type so lookups cannot collide.
type loggerContextKey struct{}

var (
	mu        sync.Mutex
	zapLogger *zap.Logger
	root      *logr.Logger

	noop logr.Logger = logr.Discard()
)

// Setup opens the log file and installs the global logger. verbosity
// maps to logr V-levels: entries up to V(verbosity) are emitted. An
// empty path falls back to DefaultLogFile; missing directories are
// created. Calling Setup again replaces the sink, so tests can point
// the logger at a scratch file.
func Setup(path string, verbosity int) (*logr.Logger, error) {
	if strings.TrimSpace(path) == "" {
		path = DefaultLogFile
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create log directory: %w", err)
		}
	}
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}

	encoderCfg := zap.NewProductionEncoderConfig()
	encoderCfg.EncodeTime = zapcore.ISO8601TimeEncoder
	encoderCfg.TimeKey = TimeStampKey
	encoderCfg.MessageKey = MessageKey

	buildInfo, _ := debug.ReadBuildInfo()
	goVersion := ""
	if buildInfo != nil {
		goVersion = buildInfo.GoVersion
	}

	// logr V(n) maps to zap level -n, so the core threshold is the
	// negated verbosity.
	core := zapcore.NewCore(
		zapcore.NewJSONEncoder(encoderCfg),
		zapcore.Lock(zapcore.AddSync(f)),
		zap.NewAtomicLevelAt(zapcore.Level(-verbosity)),
	).With([]zapcore.Field{
		zap.String(AppKey, "menukit"),
		zap.String(GoVersionKey, goVersion),
	})

	zl := zap.New(core,
		zap.AddCaller(),
		zap.AddStacktrace(zap.ErrorLevel),
		zap.WithFatalHook(zapcore.WriteThenPanic),
	)

	mu.Lock()
	defer mu.Unlock()
	zapLogger = zl
	gl := zapr.NewLogger(zl)
	root = &gl
	return root, nil
}

// Global returns the configured logger, or a no-op logger before Setup.
func Global() *logr.Logger {
	mu.Lock()
	defer mu.Unlock()
	if root != nil {
		return root
	}
	return &noop
}

// Noop returns a logger that discards everything.
func Noop() *logr.Logger {
	return &noop
}

// WithLogger returns a context carrying the given logger. Passing the
// logger already in the context returns the original context.
func WithLogger(ctx context.Context, log *logr.Logger) context.Context {
	if lp, ok := ctx.Value(loggerContextKey{}).(*logr.Logger); ok && lp == log {
		return ctx
	}
	return context.WithValue(ctx, loggerContextKey{}, log)
}

// FromContext returns the logger carried by the context, falling back
// to the global logger, then to a no-op logger before Setup.
func FromContext(ctx context.Context) *logr.Logger {
	if log, ok := ctx.Value(loggerContextKey{}).(*logr.Logger); ok {
		return log
	}
	return Global()
}

// Sync flushes buffered entries. Call it on the way out of main.
func Sync() {
	mu.Lock()
	zl := zapLogger
	mu.Unlock()
	if zl == nil {
		return
	}
	if err := zl.Sync(); err != nil && !isIgnorableSyncError(err) {
		fmt.Fprintf(os.Stderr, "WARNING: failed to sync logger: %v\n", err)
	}
}

// isIgnorableSyncError reports the Sync errors pipes and TTYs produce
// in normal operation. Windows consoles return an invalid-handle error
// wrapped in *os.PathError, which never compares equal to
// syscall.EINVAL, hence the string match.
func isIgnorableSyncError(err error) bool {
	if errors.Is(err, syscall.ENOTTY) || errors.Is(err, syscall.EINVAL) ||
		errors.Is(err, syscall.EIO) || errors.Is(err, syscall.EBADF) {
		return true
	}
	return strings.Contains(err.Error(), "The handle is invalid")
}
