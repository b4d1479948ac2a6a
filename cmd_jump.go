package main

import (
	"errors"

	"github.com/andareed/siftly-slideshow/deck"
	"github.com/andareed/siftly-slideshow/logging"
	tea "github.com/charmbracelet/bubbletea"
)

func (m *model) advance() {
	from := m.data.cursor.Index()
	m.data.cursor.Advance()
	m.recordNavigation("advance", from, nil)
}

func (m *model) retreat() {
	from := m.data.cursor.Index()
	m.data.cursor.Retreat()
	m.recordNavigation("retreat", from, nil)
}

// jumpTo moves to the slide number typed in raw. A successful jump clears the
// jump field; a failed one leaves it as typed so it can be corrected.
func (m *model) jumpTo(raw string) tea.Cmd {
	from := m.data.cursor.Index()
	err := m.data.cursor.JumpTo(raw)
	m.recordNavigation("jump", from, err)

	switch {
	case err == nil:
		m.jumpInput.Reset()
		return nil
	case errors.Is(err, deck.ErrInvalidInput):
		return m.showNotice(noticeWarn, "Type a valid number")
	case errors.Is(err, deck.ErrOutOfRange):
		return m.showNotice(noticeWarn, "Enter a number from 1 to %d", m.data.cursor.Len())
	default:
		return m.showNotice(noticeError, "%v", err)
	}
}

func (m *model) recordNavigation(action string, from int, err error) {
	to := m.data.cursor.Index()
	if err != nil {
		logging.Infof("%s from slide %d rejected: %v", action, from+1, err)
	} else {
		logging.Debugf("%s: slide %d -> %d", action, from+1, to+1)
	}
	m.tracer.Navigation(m.ctx, action, from, to, m.data.cursor.Len(), err)
}
