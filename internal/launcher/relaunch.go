package launcher

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/exec"
	"syscall"
)

// ErrNoTerminal is returned when none of the candidate emulators resolve.
var ErrNoTerminal = errors.New("no suitable terminal emulator found")

// relaunchGuardEnv marks a process that was already re-executed inside a
// terminal, so a misdetected environment cannot loop forever.
const relaunchGuardEnv = "AGHCTL_RELAUNCHED"

// Terminal describes one emulator launch template: the program name plus
// the flags that precede the command to run inside it.
type Terminal struct {
	Program string   `yaml:"program"`
	Args    []string `yaml:"args"`
}

// DefaultTerminals is the fixed preference order tried by Relaunch.
// First match on PATH wins.
var DefaultTerminals = []Terminal{
	{Program: "konsole", Args: []string{"-e"}},
	{Program: "gnome-terminal", Args: []string{"--"}},
	{Program: "xfce4-terminal", Args: []string{"-x"}},
	{Program: "x-terminal-emulator", Args: []string{"-e"}},
	{Program: "alacritty", Args: []string{"-e"}},
	{Program: "kitty", Args: []string{"--"}},
	{Program: "xterm", Args: []string{"-e"}},
}

var (
	lookPath    = exec.LookPath
	execProcess = syscall.Exec
	selfPath    = os.Executable
)

// Relaunched reports whether this process is already the result of a
// terminal relaunch.
func Relaunched() bool {
	return os.Getenv(relaunchGuardEnv) != ""
}

// Relaunch re-executes the current program, with the given arguments, inside
// the first terminal emulator from the list that resolves on PATH. On
// success the current process image is replaced and Relaunch does not
// return.
func Relaunch(terminals []Terminal, args []string, log *slog.Logger) error {
	if len(terminals) == 0 {
		terminals = DefaultTerminals
	}

	self, err := selfPath()
	if err != nil {
		return fmt.Errorf("resolve own executable: %w", err)
	}

	for _, t := range terminals {
		path, err := lookPath(t.Program)
		if err != nil {
			continue
		}

		argv := append([]string{t.Program}, t.Args...)
		argv = append(argv, self)
		argv = append(argv, args...)

		log.Info("relaunching in terminal", "emulator", t.Program, "path", path)
		env := append(os.Environ(), relaunchGuardEnv+"=1")
		return execProcess(path, argv, env)
	}

	return ErrNoTerminal
}
