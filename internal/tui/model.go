package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"aghctl/internal/app"
	"aghctl/internal/control"
)

// Controller defines the subset of app.App behaviour the TUI needs.
type Controller interface {
	Start(context.Context) (control.Result, error)
	Stop(context.Context) (control.Result, error)
	Status(context.Context) (app.StatusReport, error)
}

// Model represents the Bubble Tea state.
type Model struct {
	controller Controller

	list list.Model

	report    app.StatusReport
	statusMsg string
	result    string
	resultOK  bool

	err     error
	working bool

	width  int
	height int

	lastUpdated time.Time
}

// New constructs a TUI model with default styles.
func New(ctrl Controller) *Model {
	delegate := list.NewDefaultDelegate()
	items := []list.Item{
		actionItem{label: "Start", desc: "Start the AdGuard Home daemon"},
		actionItem{label: "Stop", desc: "Stop the AdGuard Home daemon"},
		actionItem{label: "Status", desc: "Query the daemon state"},
		actionItem{label: "Exit", desc: "Leave aghctl"},
	}
	lst := list.New(items, delegate, 0, 0)
	lst.Title = "AdGuard Home control"
	lst.SetShowHelp(false)
	lst.SetFilteringEnabled(false)
	lst.DisableQuitKeybindings()

	return &Model{
		controller: ctrl,
		list:       lst,
		statusMsg:  "Checking daemon status…",
	}
}

// Run spins up the Bubble Tea program with sensible defaults.
func Run(ctrl Controller) error {
	m := New(ctrl)
	prog := tea.NewProgram(m, tea.WithAltScreen())
	_, err := prog.Run()
	return err
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return checkStatusCmd(m.controller)
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		if m.height > 6 {
			m.list.SetSize(msg.Width, m.height-6)
		}

	case statusMsg:
		m.working = false
		m.err = nil
		m.report = msg.report
		m.statusMsg = statusLine(msg.report)
		m.lastUpdated = time.Now()

	case actionDoneMsg:
		m.working = false
		m.err = nil
		m.result = msg.result.Message
		m.resultOK = msg.result.OK
		return m, checkStatusCmd(m.controller)

	case errMsg:
		m.working = false
		m.err = msg.err

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit
		case "r":
			m.working = true
			return m, checkStatusCmd(m.controller)
		case "enter":
			if m.working {
				break
			}
			switch m.list.Index() {
			case 0:
				m.working = true
				m.result = ""
				return m, runActionCmd(m.controller.Start)
			case 1:
				m.working = true
				m.result = ""
				return m, runActionCmd(m.controller.Stop)
			case 2:
				m.working = true
				m.result = ""
				return m, checkStatusCmd(m.controller)
			case 3:
				return m, tea.Quit
			}
		}
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

// View implements tea.Model.
func (m *Model) View() string {
	var b strings.Builder

	statusStyle := lipgloss.NewStyle().Bold(true)
	switch m.report.State {
	case app.StateRunning:
		statusStyle = statusStyle.Foreground(lipgloss.Color("42"))
	case app.StateStopped:
		statusStyle = statusStyle.Foreground(lipgloss.Color("203"))
	default:
		statusStyle = statusStyle.Foreground(lipgloss.Color("214"))
	}
	b.WriteString(statusStyle.Render(m.statusMsg))
	b.WriteByte('\n')

	if m.working {
		b.WriteString("Working…\n")
	} else if m.err != nil {
		errStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("203"))
		b.WriteString(errStyle.Render(fmt.Sprintf("Error: %v", m.err)))
		b.WriteByte('\n')
	}

	b.WriteString(m.list.View())
	b.WriteByte('\n')

	if m.result != "" {
		resultStyle := lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1).MarginBottom(1)
		if !m.resultOK {
			resultStyle = resultStyle.BorderForeground(lipgloss.Color("203"))
		}
		b.WriteString(resultStyle.Render(m.result))
		b.WriteByte('\n')
	}

	help := "Commands: enter run • r refresh status • q quit"
	if !m.lastUpdated.IsZero() {
		help += fmt.Sprintf(" • last update %s", m.lastUpdated.Format(time.Kitchen))
	}
	helpStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("244"))
	b.WriteString(helpStyle.Render(help))

	return b.String()
}

// statusLine renders the header text for a status report.
func statusLine(report app.StatusReport) string {
	line := "Daemon is " + report.State.String()
	if report.Degraded {
		line += " (status command failed, process table consulted)"
	}
	switch report.DNS {
	case app.DNSAnswering:
		line += " • DNS answering"
	case app.DNSUnreachable:
		line += " • DNS not answering"
	}
	return line
}

// actionItem adapts a menu action to the bubbles list item interface.
type actionItem struct {
	label string
	desc  string
}

func (a actionItem) Title() string       { return a.label }
func (a actionItem) Description() string { return a.desc }
func (a actionItem) FilterValue() string { return a.label }

type statusMsg struct {
	report app.StatusReport
}

type actionDoneMsg struct {
	result control.Result
}

type errMsg struct{ err error }

func (e errMsg) Error() string { return e.err.Error() }

func checkStatusCmd(ctrl Controller) tea.Cmd {
	return func() tea.Msg {
		report, err := ctrl.Status(context.Background())
		if err != nil {
			return errMsg{err}
		}
		return statusMsg{report: report}
	}
}

func runActionCmd(action func(context.Context) (control.Result, error)) tea.Cmd {
	return func() tea.Msg {
		res, err := action(context.Background())
		if err != nil {
			return errMsg{err}
		}
		return actionDoneMsg{result: res}
	}
}
