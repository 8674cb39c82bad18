// Package app bootstraps the demo: a simulated backend feeding the
// Bubble Tea program that hosts the menus.
package app

import (
	"context"
	"errors"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/atomicstack/menukit/internal/backend"
	"github.com/atomicstack/menukit/internal/ui"
	"github.com/atomicstack/menukit/pkg/logger"
)

// Config describes user-provided application options.
type Config struct {
	Width      int
	Height     int
	ShowFooter bool
	Verbose    bool
	Seed       int64
	Tick       time.Duration
}

// Run bootstraps and executes the Bubble Tea program. The context
// carries the process logger and cancels the program when done.
func Run(ctx context.Context, cfg Config) error {
	log := logger.FromContext(ctx)
	tick := cfg.Tick
	if tick <= 0 {
		tick = 1500 * time.Millisecond
	}
	watcher := backend.NewWatcher(backend.NewSimulator(cfg.Seed), tick)
	defer watcher.Stop()

	model := ui.NewModel(ui.Options{
		Width:      cfg.Width,
		Height:     cfg.Height,
		ShowFooter: cfg.ShowFooter,
		Verbose:    cfg.Verbose,
		Watcher:    watcher,
		Logger:     log,
	})
	program := tea.NewProgram(model,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
		tea.WithContext(ctx),
	)
	_, err := program.Run()
	if errors.Is(err, tea.ErrProgramKilled) {
		return nil
	}
	return err
}
