package app

import (
	"context"
	"strings"

	"aghctl/internal/control"
)

// DaemonState classifies what the status check learned about the daemon.
type DaemonState int

const (
	StateUnknown DaemonState = iota
	StateRunning
	StateStopped
)

func (s DaemonState) String() string {
	switch s {
	case StateRunning:
		return "running"
	case StateStopped:
		return "stopped"
	}
	return "unknown"
}

// DNSState is the outcome of the optional live DNS query.
type DNSState int

const (
	DNSNotProbed DNSState = iota
	DNSAnswering
	DNSUnreachable
)

// StatusReport is the aggregate result of the status operation.
type StatusReport struct {
	State   DaemonState
	Message string
	// Degraded is set when the status verb failed and the process table
	// was consulted instead.
	Degraded bool
	DNS      DNSState
}

// Status runs the status verb and classifies the daemon's answer. When the
// verb itself fails, it falls back to scanning the process table.
func (a *App) Status(ctx context.Context) (StatusReport, error) {
	res, err := runControl(ctx, a.runner, control.VerbStatus)
	if err != nil {
		return StatusReport{}, err
	}

	var report StatusReport
	if res.OK {
		report = classifyStatusText(res.Message)
	} else {
		report.Degraded = true
		if processRunning(a.cfg.ProcName, a.cfg.SelfName) {
			report.State = StateRunning
			report.Message = "AdGuard Home appears to be running (status command failed)"
		} else {
			report.State = StateStopped
			report.Message = "AdGuard Home appears to be stopped (status command failed)"
		}
	}

	if a.cfg.DNSProbe != "" && report.State != StateStopped {
		if dnsProbe(ctx, a.cfg.DNSProbe) == nil {
			report.DNS = DNSAnswering
		} else {
			report.DNS = DNSUnreachable
		}
	}

	a.log.Info("status resolved",
		"state", report.State.String(),
		"degraded", report.Degraded,
		"dns_probed", report.DNS != DNSNotProbed,
	)
	return report, nil
}

// classifyStatusText pattern-matches the control binary's human-readable
// output. "is not running" must be checked before "is running" since the
// former contains the latter. Unrecognized text falls through unchanged.
func classifyStatusText(msg string) StatusReport {
	lower := strings.ToLower(msg)
	switch {
	case strings.Contains(lower, "is not running"):
		return StatusReport{State: StateStopped, Message: msg}
	case strings.Contains(lower, "is running"):
		return StatusReport{State: StateRunning, Message: msg}
	}
	return StatusReport{State: StateUnknown, Message: msg}
}
