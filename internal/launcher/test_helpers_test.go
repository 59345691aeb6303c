package launcher

import (
	"os"
	"os/exec"
	"syscall"
	"testing"

	"golang.org/x/term"
)

func resetLauncherDeps() {
	isTerminal = term.IsTerminal
	lookPath = exec.LookPath
	execProcess = syscall.Exec
	selfPath = os.Executable
}

func stubIsTerminal(t *testing.T, value bool) {
	t.Helper()
	isTerminal = func(int) bool { return value }
	t.Cleanup(resetLauncherDeps)
}

func stubLookPath(t *testing.T, present map[string]string) {
	t.Helper()
	lookPath = func(name string) (string, error) {
		if path, ok := present[name]; ok {
			return path, nil
		}
		return "", exec.ErrNotFound
	}
	t.Cleanup(resetLauncherDeps)
}
