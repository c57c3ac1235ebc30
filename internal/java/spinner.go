package java

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

type scanFinishedMsg struct{}

type scanModel struct {
	spinner  spinner.Model
	message  string
	quitting bool
}

func newScanModel(message string) scanModel {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("12"))

	return scanModel{
		spinner: s,
		message: message,
	}
}

func (m scanModel) Init() tea.Cmd {
	return m.spinner.Tick
}

func (m scanModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			m.quitting = true
			return m, tea.Quit
		}
		return m, nil

	case scanFinishedMsg:
		m.quitting = true
		return m, tea.Quit

	default:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}
}

func (m scanModel) View() string {
	if m.quitting {
		return ""
	}
	return fmt.Sprintf(" %s %s\n", m.spinner.View(), m.message)
}

// WithScanner runs fn behind a spinner animation while a filesystem scan is
// in flight.
func WithScanner(message string, fn func() error) error {
	p := tea.NewProgram(newScanModel(message))

	// Run the scan in the background; give the UI a moment to start first.
	go func() {
		time.Sleep(50 * time.Millisecond)
		fn()
		p.Send(scanFinishedMsg{})
	}()

	if _, err := p.Run(); err != nil {
		return err
	}
	return nil
}
