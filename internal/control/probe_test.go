package control

import (
	"os"
	"path/filepath"
	"testing"
)

func fakeProcTree(t *testing.T, cmdlines map[string]string) {
	t.Helper()
	root := t.TempDir()
	for pid, cmdline := range cmdlines {
		dir := filepath.Join(root, pid)
		if err := os.MkdirAll(dir, 0o755); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(filepath.Join(dir, "cmdline"), []byte(cmdline), 0o644); err != nil {
			t.Fatal(err)
		}
	}
	// Non-pid noise that a real /proc carries.
	if err := os.MkdirAll(filepath.Join(root, "sys"), 0o755); err != nil {
		t.Fatal(err)
	}

	old := procRoot
	procRoot = root
	t.Cleanup(func() { procRoot = old })
}

func TestProcessRunningMatchesDaemon(t *testing.T) {
	fakeProcTree(t, map[string]string{
		"1":    "init\x00",
		"4242": "/opt/AdGuardHome/AdGuardHome\x00-s\x00run\x00",
	})
	if !ProcessRunning("AdGuardHome", "aghctl") {
		t.Fatal("expected daemon to be detected")
	}
}

func TestProcessRunningExcludesSelf(t *testing.T) {
	// The wrapper's own invocation mentions the daemon name but must not
	// count as the daemon running.
	fakeProcTree(t, map[string]string{
		"999": "/usr/local/bin/aghctl\x00status\x00",
		"998": "grep\x00AdGuardHome\x00aghctl\x00",
	})
	if ProcessRunning("AdGuardHome", "aghctl") {
		t.Fatal("self-referencing command lines must be excluded")
	}
}

func TestProcessRunningAbsent(t *testing.T) {
	fakeProcTree(t, map[string]string{
		"1": "init\x00",
		"2": "kthreadd\x00",
	})
	if ProcessRunning("AdGuardHome", "aghctl") {
		t.Fatal("expected no match")
	}
}

func TestProcessRunningEnumerationFailure(t *testing.T) {
	old := procRoot
	procRoot = filepath.Join(t.TempDir(), "does-not-exist")
	t.Cleanup(func() { procRoot = old })

	if ProcessRunning("AdGuardHome", "aghctl") {
		t.Fatal("enumeration failure must read as not running")
	}
}
