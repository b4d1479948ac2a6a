package main

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

func (m *model) enterJumpMode() tea.Cmd {
	m.ui.mode = modeJump
	return m.jumpInput.Focus()
}

// exitJumpMode leaves the field's text as typed.
func (m *model) exitJumpMode() {
	m.ui.mode = modeView
	m.jumpInput.Blur()
}

func (m *model) handleJumpKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case msg.Type == tea.KeyCtrlC:
		return m, tea.Quit

	// universal cancel
	case key.Matches(msg, Keys.Cancel):
		m.exitJumpMode()
		return m, nil

	// commit
	case key.Matches(msg, Keys.Go):
		cmd := m.jumpTo(m.jumpInput.Value())
		m.exitJumpMode()
		return m, cmd
	}

	// editing
	var cmd tea.Cmd
	m.jumpInput, cmd = m.jumpInput.Update(msg)
	return m, cmd
}
