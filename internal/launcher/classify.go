// Package launcher detects how the program was started and, when it was
// started by a desktop quick-launcher without a terminal, re-executes it
// inside one.
package launcher

import (
	"log/slog"
	"os"

	"golang.org/x/term"
)

// Signals is a one-shot snapshot of the execution environment. Fields are
// derived once at startup and never mutated.
type Signals struct {
	StdoutTTY      bool // stdout is a terminal device
	StdinTTY       bool // stdin is a terminal device
	TermVar        bool // TERM is set and not "dumb"
	DesktopSession bool // DESKTOP_SESSION or XDG_CURRENT_DESKTOP is set
	SessionBus     bool // DBUS_SESSION_BUS_ADDRESS is set
}

var isTerminal = term.IsTerminal

// Classify captures the environment signals for the current process.
func Classify(log *slog.Logger) Signals {
	termVar := os.Getenv("TERM")
	s := Signals{
		StdoutTTY:      isTerminal(int(os.Stdout.Fd())),
		StdinTTY:       isTerminal(int(os.Stdin.Fd())),
		TermVar:        termVar != "" && termVar != "dumb",
		DesktopSession: os.Getenv("DESKTOP_SESSION") != "" || os.Getenv("XDG_CURRENT_DESKTOP") != "",
		SessionBus:     os.Getenv("DBUS_SESSION_BUS_ADDRESS") != "",
	}
	log.Info("environment classified",
		"stdout_tty", s.StdoutTTY,
		"stdin_tty", s.StdinTTY,
		"term_var", s.TermVar,
		"desktop_session", s.DesktopSession,
		"session_bus", s.SessionBus,
	)
	return s
}

// Interactive reports whether the process has any usable terminal signal.
// Deliberately permissive: a false negative would trigger an unwanted
// relaunch, so any single signal suffices.
func Interactive(s Signals) bool {
	return s.StdoutTTY || s.StdinTTY || s.TermVar
}

// LauncherMode reports whether the process was started by a desktop
// quick-launcher with no attached terminal, as opposed to a shell.
func LauncherMode(s Signals) bool {
	return (s.DesktopSession || s.SessionBus) && !Interactive(s)
}
