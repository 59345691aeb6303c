package app

import (
	"context"

	"aghctl/internal/control"
)

// Start asks the control binary to start the daemon.
func (a *App) Start(ctx context.Context) (control.Result, error) {
	return runControl(ctx, a.runner, control.VerbStart)
}
