package main

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderFooter_LinesFillWidth(t *testing.T) {
	st := footerState{
		Mode:          "NORMAL",
		DeckTitle:     "Slideshow",
		Position:      3,
		Total:         5,
		StatusMessage: "! Enter a number from 1 to 5",
		Legend:        "←/h back • q quit",
	}

	out := renderFooter(80, st, defaultFooterStyles())
	lines := strings.Split(out, "\n")
	require.Len(t, lines, 2)
	for i, l := range lines {
		assert.Equal(t, 80, lipgloss.Width(l), "line %d", i+1)
	}
	assert.Contains(t, lines[0], "NORMAL")
	assert.Contains(t, lines[0], "Slideshow")
	assert.Contains(t, lines[0], "Slide 3/5")
	assert.Contains(t, lines[1], "Enter a number from 1 to 5")
	assert.Contains(t, lines[1], "q quit")
}

func TestRenderFooter_Narrow(t *testing.T) {
	st := footerState{
		Mode:          "JUMP",
		DeckTitle:     "A very long deck title that cannot fit",
		Position:      1,
		Total:         5,
		StatusMessage: "Arsenal",
		Legend:        "enter go • esc cancel",
	}

	out := renderFooter(12, st, defaultFooterStyles())
	for _, l := range strings.Split(out, "\n") {
		assert.LessOrEqual(t, lipgloss.Width(l), 12)
	}
}

func TestRenderFooter_ZeroWidth(t *testing.T) {
	assert.Empty(t, renderFooter(0, footerState{}, defaultFooterStyles()))
}

func TestRenderFooter_ClampsNegativePosition(t *testing.T) {
	out := renderFooter(60, footerState{Mode: "NORMAL", Position: -2, Total: -1}, defaultFooterStyles())
	assert.Contains(t, out, "Slide 0/0")
}
