package app

import (
	"context"

	"aghctl/internal/control"
)

// Stop asks the control binary to stop the daemon.
func (a *App) Stop(ctx context.Context) (control.Result, error) {
	return runControl(ctx, a.runner, control.VerbStop)
}
