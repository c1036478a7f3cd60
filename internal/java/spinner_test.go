package java

import (
	"errors"
	"io"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func headless() []tea.ProgramOption {
	return []tea.ProgramOption{tea.WithInput(nil), tea.WithOutput(io.Discard)}
}

func TestScannerModelCtrlCCancels(t *testing.T) {
	m, cmd := newScannerModel("Scanning").Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())

	sm := m.(scannerModel)
	assert.True(t, sm.cancelled)
	assert.Empty(t, sm.View())
}

func TestScannerModelIgnoresOtherKeys(t *testing.T) {
	m, cmd := newScannerModel("Scanning").Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	assert.Nil(t, cmd)
	assert.False(t, m.(scannerModel).cancelled)
	assert.Contains(t, m.View(), "Scanning")
}

func TestScannerModelDone(t *testing.T) {
	scanErr := errors.New("boom")
	m, cmd := newScannerModel("Scanning").Update(scanDoneMsg{err: scanErr})
	require.NotNil(t, cmd)

	sm := m.(scannerModel)
	assert.False(t, sm.cancelled)
	assert.Equal(t, scanErr, sm.err)
}

func TestRunScanner(t *testing.T) {
	ran := false
	err := runScanner("Scanning", func() error {
		ran = true
		return nil
	}, headless()...)
	require.NoError(t, err)
	assert.True(t, ran)

	scanErr := errors.New("read failed")
	err = runScanner("Scanning", func() error { return scanErr }, headless()...)
	assert.ErrorIs(t, err, scanErr)
}
