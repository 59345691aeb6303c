package main

import (
	"context"
	"os"
	"time"

	"github.com/briandowns/spinner"
	"github.com/fatih/color"

	"aghctl/internal/app"
	"aghctl/internal/control"
)

var (
	green  = color.New(color.FgGreen)
	red    = color.New(color.FgRed)
	yellow = color.New(color.FgYellow)
)

// withSpinner animates a progress indicator while fn blocks on the control
// binary. The spinner is purely cosmetic and is always stopped before the
// result is printed.
func withSpinner(suffix string, fn func() (control.Result, error)) (control.Result, error) {
	spin := spinner.New(spinner.CharSets[21], 120*time.Millisecond, spinner.WithWriter(os.Stdout))
	spin.Suffix = " " + suffix
	spin.Start()
	res, err := fn()
	spin.Stop()
	return res, err
}

// runAndPrint executes a start/stop action and prints its colored result.
// Failures are reported, never escalated: "the daemon refused" is not a
// wrapper fault.
func runAndPrint(ctx context.Context, action func(context.Context) (control.Result, error), suffix string) {
	res, err := withSpinner(suffix, func() (control.Result, error) {
		return action(ctx)
	})
	if err != nil {
		red.Fprintf(os.Stdout, "Error: %v\n", err)
		return
	}
	printResult(res)
}

func printResult(res control.Result) {
	if res.OK {
		green.Fprintln(os.Stdout, res.Message)
	} else {
		red.Fprintln(os.Stdout, res.Message)
	}
}

// queryAndPrintStatus runs the status operation and renders the report.
func queryAndPrintStatus(ctx context.Context, ctrl *app.App) {
	report, err := withStatusSpinner(ctx, ctrl)
	if err != nil {
		red.Fprintf(os.Stdout, "Error: %v\n", err)
		return
	}
	printStatus(report)
}

func withStatusSpinner(ctx context.Context, ctrl *app.App) (app.StatusReport, error) {
	spin := spinner.New(spinner.CharSets[21], 120*time.Millisecond, spinner.WithWriter(os.Stdout))
	spin.Suffix = " Checking AdGuard Home status..."
	spin.Start()
	report, err := ctrl.Status(ctx)
	spin.Stop()
	return report, err
}

func printStatus(report app.StatusReport) {
	switch report.State {
	case app.StateRunning:
		green.Fprintln(os.Stdout, report.Message)
	case app.StateStopped:
		red.Fprintln(os.Stdout, report.Message)
	default:
		yellow.Fprintln(os.Stdout, report.Message)
	}
	switch report.DNS {
	case app.DNSAnswering:
		green.Fprintln(os.Stdout, "DNS listener is answering queries")
	case app.DNSUnreachable:
		yellow.Fprintln(os.Stdout, "DNS listener is not answering queries")
	}
}
