package control

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// procRoot is swapped in tests for a synthetic /proc tree.
var procRoot = "/proc"

// ProcessRunning scans the process table for a command line containing
// procName while excluding selfName, so the wrapper never matches itself.
// Used as a fallback when the status verb fails. Any enumeration failure
// is treated as "not running".
func ProcessRunning(procName, selfName string) bool {
	entries, err := os.ReadDir(procRoot)
	if err != nil {
		return false
	}

	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		if _, err := strconv.Atoi(entry.Name()); err != nil {
			continue
		}

		data, err := os.ReadFile(filepath.Join(procRoot, entry.Name(), "cmdline"))
		if err != nil {
			// Process exited between the listing and the read.
			continue
		}
		cmdline := strings.ReplaceAll(string(data), "\x00", " ")
		if strings.Contains(cmdline, procName) && !strings.Contains(cmdline, selfName) {
			return true
		}
	}
	return false
}
