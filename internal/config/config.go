// Package config resolves runtime configuration for the demo binary.
// Environment variables seed the defaults and flags override them, so a
// wrapper script can set the environment once and still be overridden
// per invocation.
package config

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/pflag"

	"github.com/atomicstack/menukit/internal/app"
)

// Config captures everything the binary needs at startup.
type Config struct {
	App     app.Config
	Logging Logging
}

// Logging configures the file sink and verbosity of the process logger.
type Logging struct {
	FilePath  string
	Verbosity int
}

const (
	envLogFile   = "MENUKIT_LOG_FILE"
	envVerbosity = "MENUKIT_VERBOSITY"
	envWidth     = "MENUKIT_WIDTH"
	envHeight    = "MENUKIT_HEIGHT"
	envFooter    = "MENUKIT_FOOTER"
	envVerbose   = "MENUKIT_VERBOSE"
	envSeed      = "MENUKIT_SEED"
	envTick      = "MENUKIT_TICK"
)

// Defaults builds the configuration implied by the environment alone.
func Defaults(environ []string) Config {
	env := parseEnv(environ)
	return Config{
		App: app.Config{
			Width:      envOrInt(env, envWidth, 0),
			Height:     envOrInt(env, envHeight, 0),
			ShowFooter: envOrBool(env, envFooter, false),
			Verbose:    envOrBool(env, envVerbose, false),
			Seed:       envOrInt64(env, envSeed, time.Now().UnixNano()),
			Tick:       envOrDuration(env, envTick, 1500*time.Millisecond),
		},
		Logging: Logging{
			FilePath:  env[envLogFile],
			Verbosity: envOrInt(env, envVerbosity, 0),
		},
	}
}

// Bind registers the flags over the config's current values, so the
// environment-derived defaults show up in help output.
func Bind(fs *pflag.FlagSet, cfg *Config) {
	fs.IntVar(&cfg.App.Width, "width", cfg.App.Width, "viewport width in cells (0 uses the terminal width)")
	fs.IntVar(&cfg.App.Height, "height", cfg.App.Height, "viewport height in rows (0 uses the terminal height)")
	fs.BoolVar(&cfg.App.ShowFooter, "footer", cfg.App.ShowFooter, "show the key hint footer row")
	fs.BoolVarP(&cfg.App.Verbose, "verbose", "v", cfg.App.Verbose, "surface action results in the status line")
	fs.Int64Var(&cfg.App.Seed, "seed", cfg.App.Seed, "seed for the simulated backend")
	fs.DurationVar(&cfg.App.Tick, "tick", cfg.App.Tick, "poll interval for the simulated backend")
	fs.StringVar(&cfg.Logging.FilePath, "log-file", cfg.Logging.FilePath, "path to the log file")
	fs.IntVar(&cfg.Logging.Verbosity, "verbosity", cfg.Logging.Verbosity, "log verbosity (higher logs more)")
}

// Validate rejects values no run can make sense of.
func Validate(cfg Config) error {
	if cfg.App.Width < 0 {
		return fmt.Errorf("width must be >= 0 (got %d)", cfg.App.Width)
	}
	if cfg.App.Height < 0 {
		return fmt.Errorf("height must be >= 0 (got %d)", cfg.App.Height)
	}
	if cfg.App.Tick <= 0 {
		return fmt.Errorf("tick must be positive (got %s)", cfg.App.Tick)
	}
	if cfg.Logging.Verbosity < 0 {
		return fmt.Errorf("verbosity must be >= 0 (got %d)", cfg.Logging.Verbosity)
	}
	return nil
}

func parseEnv(environ []string) map[string]string {
	values := make(map[string]string, len(environ))
	for _, entry := range environ {
		if entry == "" {
			continue
		}
		parts := strings.SplitN(entry, "=", 2)
		if len(parts) != 2 {
			continue
		}
		values[parts[0]] = parts[1]
	}
	return values
}

func envOrInt(env map[string]string, key string, fallback int) int {
	v, ok := env[key]
	if !ok || strings.TrimSpace(v) == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return parsed
}

func envOrInt64(env map[string]string, key string, fallback int64) int64 {
	v, ok := env[key]
	if !ok || strings.TrimSpace(v) == "" {
		return fallback
	}
	parsed, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		return fallback
	}
	return parsed
}

func envOrBool(env map[string]string, key string, fallback bool) bool {
	v, ok := env[key]
	if !ok || strings.TrimSpace(v) == "" {
		return fallback
	}
	parsed, err := strconv.ParseBool(v)
	if err != nil {
		return fallback
	}
	return parsed
}

func envOrDuration(env map[string]string, key string, fallback time.Duration) time.Duration {
	v, ok := env[key]
	if !ok || strings.TrimSpace(v) == "" {
		return fallback
	}
	parsed, err := time.ParseDuration(v)
	if err != nil {
		return fallback
	}
	return parsed
}
