package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/truncate"
)

type footerState struct {
	Mode      string
	DeckTitle string

	Position int
	Total    int

	StatusMessage string
	Legend        string
}

type footerStyles struct {
	ModePill lipgloss.Style
	Title    lipgloss.Style
	Position lipgloss.Style
	Gap      lipgloss.Style
	Status   lipgloss.Style
}

func defaultFooterStyles() footerStyles {
	bar := lipgloss.NewStyle().Background(lipgloss.Color("#2b2b2b"))
	return footerStyles{
		ModePill: lipgloss.NewStyle().
			Background(lipgloss.Color(accentColor)).
			Foreground(lipgloss.Color("#000000")).
			Bold(true),
		Title:    bar.Foreground(lipgloss.Color("#e0e0e0")),
		Position: bar.Foreground(lipgloss.Color("#cfcfcf")).Bold(true),
		Gap:      bar,
		Status:   lipgloss.NewStyle().Foreground(lipgloss.Color("#9a9a9a")),
	}
}

// renderFooter draws the two footer lines, each exactly width cells wide:
// mode, deck and slide position on top; notice or caption and key legend
// below.
func renderFooter(width int, st footerState, styles footerStyles) string {
	if width <= 0 {
		return ""
	}
	if st.Position < 0 {
		st.Position = 0
	}
	if st.Total < 0 {
		st.Total = 0
	}

	line1 := renderControlBar(width, st, styles)
	line2 := renderStatusBar(width, st, styles)
	return line1 + "\n" + line2
}

func renderControlBar(width int, st footerState, styles footerStyles) string {
	pill := styles.ModePill.Render(" " + st.Mode + " ")
	right := styles.Position.Render(fmt.Sprintf(" Slide %d/%d ", st.Position, st.Total))

	titleW := width - lipgloss.Width(pill) - lipgloss.Width(right) - 2
	if titleW < 0 {
		return fitWidth(pill+right, width)
	}
	title := styles.Title.Render(padRight(truncate.String("▸ "+st.DeckTitle, uint(titleW)), titleW))
	gap := styles.Gap.Render(" ")
	return pill + gap + title + gap + right
}

func renderStatusBar(width int, st footerState, styles footerStyles) string {
	legend := truncate.String(st.Legend, uint(width))
	msgW := width - lipgloss.Width(legend) - 1
	if msgW <= 0 {
		return fitWidth(legend, width)
	}
	msg := styles.Status.Render(padRight(truncate.String(st.StatusMessage, uint(msgW)), msgW))
	return msg + " " + legend
}

// fitWidth truncates or pads s to exactly w cells.
func fitWidth(s string, w int) string {
	return padRight(truncate.String(s, uint(w)), w)
}

func padRight(s string, w int) string {
	cur := lipgloss.Width(s)
	if cur >= w {
		return s
	}
	return s + strings.Repeat(" ", w-cur)
}
