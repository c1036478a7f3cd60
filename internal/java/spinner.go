package java

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// ErrScanCancelled is returned by WithScanner when the user quits the spinner
var ErrScanCancelled = errors.New("scan cancelled")

type scanDoneMsg struct{ err error }

type scannerModel struct {
	spinner   spinner.Model
	label     string
	err       error
	cancelled bool
	quitting  bool
}

func newScannerModel(label string) scannerModel {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("12"))

	return scannerModel{spinner: s, label: label}
}

func (m scannerModel) Init() tea.Cmd {
	return m.spinner.Tick
}

func (m scannerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			m.cancelled = true
			m.quitting = true
			return m, tea.Quit
		}
		return m, nil

	case scanDoneMsg:
		m.err = msg.err
		m.quitting = true
		return m, tea.Quit

	default:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}
}

func (m scannerModel) View() string {
	if m.quitting {
		return ""
	}
	return fmt.Sprintf(" %s %s\n", m.spinner.View(), m.label)
}

// WithScanner runs fn behind a spinner and returns its error
func WithScanner(label string, fn func() error) error {
	return runScanner(label, fn)
}

func runScanner(label string, fn func() error, opts ...tea.ProgramOption) error {
	p := tea.NewProgram(newScannerModel(label), opts...)

	go func() {
		p.Send(scanDoneMsg{err: fn()})
	}()

	final, err := p.Run()
	if err != nil {
		return err
	}
	// fn keeps running in the background after a cancel; its result is dropped
	if m, ok := final.(scannerModel); ok {
		if m.cancelled {
			return ErrScanCancelled
		}
		return m.err
	}
	return nil
}
