package app

import (
	"log/slog"

	"aghctl/internal/config"
	"aghctl/internal/control"
	"aghctl/internal/diag"
)

// Options configures the top-level controller.
type Options struct {
	// Config carries the resolved wrapper configuration.
	Config config.Config
	// Log receives diagnostic records; nil means discard.
	Log *slog.Logger
}

// App exposes high-level operations that the CLI/menu/TUI can reuse.
type App struct {
	cfg    config.Config
	log    *slog.Logger
	runner *control.Runner
}

// New constructs the shared controller facade.
func New(opts Options) *App {
	log := opts.Log
	if log == nil {
		log = diag.Nop()
	}
	return &App{
		cfg: opts.Config,
		log: log,
		runner: &control.Runner{
			BinPath: opts.Config.CtlPath,
			Timeout: opts.Config.CtlTimeout,
			Log:     log,
		},
	}
}

// Config returns the configuration the controller was built with.
func (a *App) Config() config.Config {
	return a.cfg
}
