// Command menukit-demo runs a fullscreen demo of the popup menus: four
// entity panes fed by a simulated backend, per-row context menus, and a
// command palette.
package main

import (
	"fmt"
	"os"

	"github.com/go-logr/logr"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/atomicstack/menukit/internal/app"
	"github.com/atomicstack/menukit/internal/config"
	"github.com/atomicstack/menukit/internal/trace"
	"github.com/atomicstack/menukit/pkg/logger"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	cfg := config.Defaults(os.Environ())
	cmd := &cobra.Command{
		Use:          "menukit-demo",
		Short:        "interactive demo of the menukit popup menus",
		SilenceUsage: true,
		Args:         cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := config.Validate(cfg); err != nil {
				return err
			}
			if _, err := logger.Setup(cfg.Logging.FilePath, cfg.Logging.Verbosity); err != nil {
				return err
			}
			defer logger.Sync()
			log := logger.Global()
			trace.Configure(log)
			logStartup(log, cfg)
			ctx := logger.WithLogger(cmd.Context(), log)
			if err := app.Run(ctx, cfg.App); err != nil {
				log.Error(err, "run failed")
				return err
			}
			return nil
		},
	}
	config.Bind(cmd.Flags(), &cfg)
	return cmd
}

func logStartup(log *logr.Logger, cfg config.Config) {
	kvs := []any{
		"width", cfg.App.Width,
		"height", cfg.App.Height,
		"footer", cfg.App.ShowFooter,
		"verbose", cfg.App.Verbose,
		"seed", cfg.App.Seed,
		"tick", cfg.App.Tick.String(),
		"tty", collectTTYDetails(),
	}
	if exe, err := os.Executable(); err == nil {
		kvs = append(kvs, "executable", exe)
	}
	if cwd, err := os.Getwd(); err == nil {
		kvs = append(kvs, "cwd", cwd)
	}
	log.Info("starting", kvs...)
}

type ttyDetails struct {
	Detected *ttyDetected     `json:"detected,omitempty"`
	Probes   []ttyProbeResult `json:"probes"`
}

type ttyDetected struct {
	Source string `json:"source"`
	Width  int    `json:"width"`
	Height int    `json:"height"`
}

type ttyProbeResult struct {
	Name       string `json:"name"`
	IsTerminal bool   `json:"is_terminal"`
	Width      int    `json:"width,omitempty"`
	Height     int    `json:"height,omitempty"`
	Error      string `json:"error,omitempty"`
}

// collectTTYDetails inspects standard descriptors for terminal support
// and dimensions, so size problems show up in the log.
func collectTTYDetails() ttyDetails {
	probes := []struct {
		name string
		fd   uintptr
	}{
		{"stdin", os.Stdin.Fd()},
		{"stdout", os.Stdout.Fd()},
		{"stderr", os.Stderr.Fd()},
	}
	results := make([]ttyProbeResult, 0, len(probes))
	var detected *ttyDetected
	for _, probe := range probes {
		entry := ttyProbeResult{Name: probe.name}
		fd := int(probe.fd)
		if fd >= 0 && term.IsTerminal(fd) {
			entry.IsTerminal = true
			if width, height, err := term.GetSize(fd); err == nil {
				entry.Width = width
				entry.Height = height
				if detected == nil {
					detected = &ttyDetected{Source: probe.name, Width: width, Height: height}
				}
			} else {
				entry.Error = err.Error()
			}
		}
		results = append(results, entry)
	}
	return ttyDetails{Detected: detected, Probes: results}
}
