// Package tui renders pipeline progress on interactive terminals.
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// StageMsg announces a stage transition.
type StageMsg struct {
	Step  int
	Total int
	Name  string
}

// LogMsg appends one line of external tool output.
type LogMsg string

// DoneMsg ends the monitor; Err is nil on success.
type DoneMsg struct {
	Err error
}

const maxLogLines = 100

// Monitor is the bubbletea model for a pipeline run.
type Monitor struct {
	spinner spinner.Model
	step    int
	total   int
	stage   string
	logs    []string
	err     error
	done    bool
	width   int
	height  int
}

// NewMonitor builds a monitor with the default spinner.
func NewMonitor() Monitor {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	return Monitor{spinner: sp}
}

func (m Monitor) Init() tea.Cmd {
	return m.spinner.Tick
}

func (m Monitor) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
	case StageMsg:
		m.step = msg.Step
		m.total = msg.Total
		m.stage = msg.Name
	case LogMsg:
		m.logs = append(m.logs, string(msg))
		if len(m.logs) > maxLogLines {
			m.logs = m.logs[1:]
		}
	case DoneMsg:
		m.err = msg.Err
		m.done = true
		return m, tea.Quit
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m Monitor) View() string {
	if m.done {
		return ""
	}
	w := m.width
	if w == 0 {
		w = 80
	}

	title := lipgloss.NewStyle().Bold(true).Render("wheelstage")
	progress := fmt.Sprintf("%s %d/%d %s", m.spinner.View(), m.step, m.total, m.stage)

	visible := 8
	start := len(m.logs) - visible
	if start < 0 {
		start = 0
	}
	var logLines []string
	for _, line := range m.logs[start:] {
		if len(line) > w-4 {
			line = line[:w-7] + "..."
		}
		logLines = append(logLines, "  "+line)
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		title,
		progress,
		strings.Join(logLines, "\n"),
	) + "\n"
}
