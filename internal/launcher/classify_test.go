package launcher

import (
	"log/slog"
	"testing"
)

func TestInteractiveAnySignalSuffices(t *testing.T) {
	if Interactive(Signals{}) {
		t.Fatal("no signals should not be interactive")
	}
	cases := []Signals{
		{StdoutTTY: true},
		{StdinTTY: true},
		{TermVar: true},
	}
	for _, s := range cases {
		if !Interactive(s) {
			t.Fatalf("expected interactive for %+v", s)
		}
	}
}

func TestLauncherModeRequiresNoTerminal(t *testing.T) {
	if !LauncherMode(Signals{DesktopSession: true}) {
		t.Fatal("desktop session without terminal should be launcher mode")
	}
	if !LauncherMode(Signals{SessionBus: true}) {
		t.Fatal("session bus without terminal should be launcher mode")
	}
	if LauncherMode(Signals{}) {
		t.Fatal("no signals at all should not be launcher mode")
	}

	// Any interactive signal vetoes launcher mode.
	vetoed := []Signals{
		{DesktopSession: true, StdoutTTY: true},
		{DesktopSession: true, StdinTTY: true},
		{SessionBus: true, TermVar: true},
		{DesktopSession: true, SessionBus: true, StdoutTTY: true},
	}
	for _, s := range vetoed {
		if LauncherMode(s) {
			t.Fatalf("expected launcher mode false for %+v", s)
		}
	}
}

func TestClassifyDeterministic(t *testing.T) {
	stubIsTerminal(t, false)
	t.Setenv("TERM", "xterm-256color")
	t.Setenv("DESKTOP_SESSION", "plasma")
	t.Setenv("XDG_CURRENT_DESKTOP", "")
	t.Setenv("DBUS_SESSION_BUS_ADDRESS", "")

	log := slog.New(slog.DiscardHandler)
	first := Classify(log)
	second := Classify(log)
	if first != second {
		t.Fatalf("classification not stable: %+v vs %+v", first, second)
	}
	if !first.TermVar || !first.DesktopSession {
		t.Fatalf("unexpected signals: %+v", first)
	}
	if first.SessionBus {
		t.Fatalf("session bus should be unset: %+v", first)
	}
}

func TestClassifyDumbTerm(t *testing.T) {
	stubIsTerminal(t, false)
	t.Setenv("TERM", "dumb")

	s := Classify(slog.New(slog.DiscardHandler))
	if s.TermVar {
		t.Fatal("TERM=dumb must not count as a terminal signal")
	}
}
