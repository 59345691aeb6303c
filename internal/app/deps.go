package app

import (
	"context"

	"aghctl/internal/control"
	"aghctl/internal/dnscheck"
)

var (
	runControl = func(ctx context.Context, r *control.Runner, verb control.Verb) (control.Result, error) {
		return r.Run(ctx, verb)
	}
	processRunning = control.ProcessRunning
	dnsProbe       = dnscheck.Check
)

func resetControlDeps() {
	runControl = func(ctx context.Context, r *control.Runner, verb control.Verb) (control.Result, error) {
		return r.Run(ctx, verb)
	}
	processRunning = control.ProcessRunning
	dnsProbe = dnscheck.Check
}
