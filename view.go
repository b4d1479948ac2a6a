package main

import (
	"fmt"
	"strings"

	"github.com/andareed/siftly-slideshow/logging"
	"github.com/andareed/siftly-slideshow/picture"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/wordwrap"
)

func (m *model) View() string {
	if !m.ready {
		return "loading..."
	}

	if m.activeDialog != nil && m.activeDialog.IsVisible() {
		return lipgloss.Place(
			m.terminalWidth, m.terminalHeight,
			lipgloss.Center, lipgloss.Center,
			m.activeDialog.View(),
			lipgloss.WithWhitespaceChars(" "),
			lipgloss.WithWhitespaceBackground(lipgloss.Color("236")),
		)
	}

	slide := lipgloss.JoinVertical(lipgloss.Left,
		m.titleView(),
		"",
		m.imageView(),
		"",
		m.captionView(),
		"",
		m.controlsView(),
		"",
		m.jumpView(),
	)
	return appstyle.Render(lipgloss.JoinVertical(lipgloss.Left, slide, "", m.footerView(m.contentWidth())))
}

// contentWidth is the image box width, or the terminal width minus margins if
// that is wider.
func (m *model) contentWidth() int {
	w := m.data.box.Width
	if avail := m.terminalWidth - appstyle.GetHorizontalFrameSize(); avail > w {
		w = avail
	}
	return w
}

func (m *model) titleView() string {
	title := fmt.Sprintf("%s (%s)", m.data.cursor.Deck().Title(), m.positionText())
	return titleStyle.Render(title)
}

func (m *model) imageView() string {
	slide := m.data.cursor.Current()
	img, err := m.data.images.RenderFile(slide.Image, m.data.box)
	if err != nil {
		logging.Warnf("image %q for slide %d: %v", slide.Image, m.data.cursor.Position(), err)
		return picture.Placeholder(m.data.box, slide.Caption)
	}
	return img
}

func (m *model) captionView() string {
	w := m.data.box.Width
	caption := wordwrap.String(m.data.cursor.Current().Caption, w)
	return captionStyle.Width(w).Render(caption)
}

func (m *model) controlsView() string {
	back := buttonStyle.Render("◀ Back")
	next := buttonStyle.Render("Next ▶")
	gap := m.data.box.Width - lipgloss.Width(back) - lipgloss.Width(next)
	if gap < 1 {
		gap = 1
	}
	return back + strings.Repeat(" ", gap) + next
}

func (m *model) jumpView() string {
	style := inputStyle
	if m.ui.mode == modeJump {
		style = inputFocusedStyle
	}
	field := style.Render(m.jumpInput.View())
	goButton := lipgloss.Place(
		lipgloss.Width(buttonStyle.Render("Go")), lipgloss.Height(field),
		lipgloss.Left, lipgloss.Center,
		buttonStyle.Render("Go"),
	)
	row := lipgloss.JoinHorizontal(lipgloss.Center, field, " ", goButton)
	return lipgloss.JoinVertical(lipgloss.Left, labelStyle.Render(m.jumpLabel()), row)
}

func (m *model) footerView(width int) string {
	legend := Keys.ShortHelp()
	if m.ui.mode == modeJump {
		legend = Keys.JumpHelp()
	}

	st := footerState{
		Mode:          m.modeLabel(),
		DeckTitle:     m.data.cursor.Deck().Title(),
		Position:      m.data.cursor.Position(),
		Total:         m.data.cursor.Len(),
		StatusMessage: m.ui.notice.String(),
		Legend:        m.help.ShortHelpView(legend),
	}
	if st.StatusMessage == "" {
		st.StatusMessage = m.data.cursor.Current().Caption
	}

	if logging.IsDebugMode() {
		st.Legend += fmt.Sprintf(" | dbg term=%dx%d box=%dx%d", m.terminalWidth, m.terminalHeight, m.data.box.Width, m.data.box.Height)
	}

	return renderFooter(width, st, defaultFooterStyles())
}
