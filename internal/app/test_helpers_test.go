package app

import (
	"context"
	"testing"

	"aghctl/internal/config"
	"aghctl/internal/control"
)

func testApp() *App {
	return New(Options{Config: config.Config{
		CtlPath:  "/opt/AdGuardHome/AdGuardHome-ctl",
		ProcName: "AdGuardHome",
		SelfName: "aghctl",
	}})
}

func stubControl(t *testing.T, fn func(control.Verb) (control.Result, error)) {
	t.Helper()
	resetControlDeps()
	runControl = func(_ context.Context, _ *control.Runner, verb control.Verb) (control.Result, error) {
		return fn(verb)
	}
	t.Cleanup(resetControlDeps)
}

func stubProbe(t *testing.T, running bool) {
	t.Helper()
	processRunning = func(procName, selfName string) bool { return running }
	t.Cleanup(resetControlDeps)
}

func stubDNSProbe(t *testing.T, err error) {
	t.Helper()
	dnsProbe = func(context.Context, string) error { return err }
	t.Cleanup(resetControlDeps)
}
