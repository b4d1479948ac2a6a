package dialogs

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const helpWidth = 48

// Help lists key bindings until enter, esc, ? or q is pressed.
type Help struct {
	visible  bool
	bindings []key.Binding
}

// NewHelpDialog creates a visible help dialog for the given bindings.
func NewHelpDialog(bindings []key.Binding) *Help {
	return &Help{
		visible:  true,
		bindings: bindings,
	}
}

func (d *Help) Update(msg tea.Msg) (Dialog, tea.Cmd) {
	if km, ok := msg.(tea.KeyMsg); ok {
		switch km.String() {
		case "enter", "esc", "?", "q":
			d.visible = false
		}
	}
	return d, nil
}

func (d *Help) View() string {
	if !d.visible {
		return ""
	}

	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("252")).
		BorderBackground(lipgloss.Color("236")).
		Padding(1, 2).
		Width(helpWidth)

	keyStyle := lipgloss.NewStyle().Bold(true)

	var lines []string
	for _, b := range d.bindings {
		if !b.Enabled() {
			continue
		}
		h := b.Help()
		lines = append(lines, fmt.Sprintf("%s %s", keyStyle.Render(fmt.Sprintf("%-12s", h.Key)), h.Desc))
	}

	title := center(lipgloss.NewStyle().Bold(true).Render("Keys"), helpWidth-4, 1)
	hint := lipgloss.NewStyle().Faint(true).Render("enter/esc to return")

	return box.Render(strings.Join([]string{title, "", strings.Join(lines, "\n"), "", hint}, "\n"))
}

func (d *Help) Show()           { d.visible = true }
func (d *Help) Hide()           { d.visible = false }
func (d *Help) IsVisible() bool { return d.visible }

func center(s string, width, height int) string {
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, s)
}
