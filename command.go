package main

import "fmt"

func (m *model) modeLabel() string {
	switch m.ui.mode {
	case modeJump:
		return "JUMP"
	default:
		return "NORMAL"
	}
}

// jumpLabel is the caption above the jump field, e.g. "Picture # (1..5)".
func (m *model) jumpLabel() string {
	return fmt.Sprintf("Picture # (1..%d)", m.data.cursor.Len())
}

func (m *model) positionText() string {
	return fmt.Sprintf("%d/%d", m.data.cursor.Position(), m.data.cursor.Len())
}
