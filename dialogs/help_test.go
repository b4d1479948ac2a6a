package dialogs

import (
	"testing"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
)

func bindings() []key.Binding {
	return []key.Binding{
		key.NewBinding(key.WithKeys("n"), key.WithHelp("n", "next slide")),
		key.NewBinding(key.WithKeys("p"), key.WithHelp("p", "previous slide")),
		key.NewBinding(key.WithKeys("x"), key.WithHelp("x", "hidden"), key.WithDisabled()),
	}
}

func TestHelp_ViewListsEnabledBindings(t *testing.T) {
	d := NewHelpDialog(bindings())
	out := d.View()
	assert.Contains(t, out, "next slide")
	assert.Contains(t, out, "previous slide")
	assert.Contains(t, out, "Keys")
	assert.NotContains(t, out, "hidden")
}

func TestHelp_ClosesOnEsc(t *testing.T) {
	d := NewHelpDialog(bindings())
	assert.True(t, d.IsVisible())

	_, _ = d.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'n'}})
	assert.True(t, d.IsVisible(), "other keys keep it open")

	_, _ = d.Update(tea.KeyMsg{Type: tea.KeyEsc})
	assert.False(t, d.IsVisible())
	assert.Empty(t, d.View())

	d.Show()
	assert.True(t, d.IsVisible())
	d.Hide()
	assert.False(t, d.IsVisible())
}
