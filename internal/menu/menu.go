// Package menu implements the interactive numbered menu shown when the
// program runs without arguments.
package menu

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Action is a menu choice that triggers work.
type Action int

const (
	ActionStart Action = iota + 1
	ActionStop
	ActionStatus
)

const exitChoice = 4

// Menu drives the display -> choice -> execute loop until the user picks
// Exit or input ends. It never recurses: each iteration of Run is one pass
// through the loop.
type Menu struct {
	In  io.Reader
	Out io.Writer

	// StatusLine renders the current daemon state for the header.
	StatusLine func() string
	// Execute performs the chosen action and prints its result.
	Execute func(Action)
}

// Run loops until Exit is chosen or In is exhausted.
func (m *Menu) Run() error {
	scanner := bufio.NewScanner(m.In)

	for {
		m.display()

		choice, ok := m.awaitChoice(scanner)
		if !ok {
			// Input closed; treat like Exit.
			return scanner.Err()
		}
		if choice == exitChoice {
			return nil
		}

		m.Execute(Action(choice))
		fmt.Fprintln(m.Out)
	}
}

func (m *Menu) display() {
	fmt.Fprintln(m.Out, "AdGuard Home control")
	if m.StatusLine != nil {
		fmt.Fprintf(m.Out, "Current status: %s\n", m.StatusLine())
	}
	fmt.Fprintln(m.Out)
	fmt.Fprintln(m.Out, "  1) Start")
	fmt.Fprintln(m.Out, "  2) Stop")
	fmt.Fprintln(m.Out, "  3) Status")
	fmt.Fprintln(m.Out, "  4) Exit")
}

// awaitChoice re-prompts on invalid input without limit. It only returns a
// number in [1, 4].
func (m *Menu) awaitChoice(scanner *bufio.Scanner) (int, bool) {
	for {
		fmt.Fprint(m.Out, "Choice [1-4]: ")
		if !scanner.Scan() {
			return 0, false
		}
		n, err := strconv.Atoi(strings.TrimSpace(scanner.Text()))
		if err != nil || n < 1 || n > exitChoice {
			fmt.Fprintln(m.Out, "Please enter a number between 1 and 4.")
			continue
		}
		return n, true
	}
}
