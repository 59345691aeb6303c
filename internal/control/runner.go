package control

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"os/exec"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	// ErrBinaryNotFound means the configured control binary path does not exist.
	ErrBinaryNotFound = errors.New("control binary not found")
	// ErrPermissionDenied means the OS refused to execute the control binary.
	ErrPermissionDenied = errors.New("control binary not executable")
)

// Runner executes the control binary.
type Runner struct {
	// BinPath is the control binary location.
	BinPath string
	// Timeout bounds one invocation. Zero disables the bound and the call
	// blocks until the binary exits.
	Timeout time.Duration
	// Log receives one record per invocation.
	Log *slog.Logger
}

// Run invokes `<BinPath> <verb>` and captures stdout and stderr separately.
// A non-zero exit is not an error: it yields Result.OK=false with the
// stderr text. Only failures to invoke at all are returned as errors.
func (r *Runner) Run(ctx context.Context, verb Verb) (Result, error) {
	if _, err := os.Stat(r.BinPath); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return Result{}, fmt.Errorf("%w: %s", ErrBinaryNotFound, r.BinPath)
		}
		return Result{}, fmt.Errorf("stat %s: %w", r.BinPath, err)
	}

	if r.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, r.Timeout)
		defer cancel()
	}

	runID := uuid.New().String()

	cmd := exec.CommandContext(ctx, r.BinPath, string(verb))
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	runErr := cmd.Run()
	if runErr != nil {
		var exitErr *exec.ExitError
		if errors.As(runErr, &exitErr) {
			res := Result{
				RunID:   runID,
				OK:      false,
				Message: "Error: " + strings.TrimSpace(stderr.String()),
			}
			r.logRun(verb, res, exitErr.ExitCode())
			return res, nil
		}
		if errors.Is(runErr, fs.ErrPermission) {
			return Result{}, fmt.Errorf("%w: %s", ErrPermissionDenied, r.BinPath)
		}
		return Result{}, fmt.Errorf("executing %s %s: %w", r.BinPath, verb, runErr)
	}

	res := Result{
		RunID:   runID,
		OK:      true,
		Message: strings.TrimSpace(stdout.String()),
	}
	r.logRun(verb, res, 0)
	return res, nil
}

func (r *Runner) logRun(verb Verb, res Result, exitCode int) {
	if r.Log == nil {
		return
	}
	r.Log.Info("control binary invoked",
		"run_id", res.RunID,
		"verb", string(verb),
		"exit_code", exitCode,
		"ok", res.OK,
	)
}
