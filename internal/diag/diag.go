// Package diag provides the optional append-only diagnostic log. It is an
// observability hook only: every failure path degrades to a no-op logger
// rather than affecting program behavior.
package diag

import (
	"log/slog"
	"os"
)

// Nop returns a logger that discards everything.
func Nop() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

// Open returns a logger appending timestamped records to path, or a no-op
// logger when disabled or when the file cannot be opened.
func Open(enabled bool, path string) *slog.Logger {
	if !enabled || path == "" {
		return Nop()
	}
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o600)
	if err != nil {
		return Nop()
	}
	return slog.New(slog.NewTextHandler(f, nil))
}
