package main

import (
	"github.com/charmbracelet/bubbles/key"
)

type Keymap struct {
	Quit     key.Binding
	Next     key.Binding
	Back     key.Binding
	Jump     key.Binding
	Go       key.Binding
	Cancel   key.Binding
	Copy     key.Binding
	OpenHelp key.Binding
}

var Keys = Keymap{
	Quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
	Next: key.NewBinding(
		key.WithKeys("right", "l", "n", " "),
		key.WithHelp("→/l/space", "next"),
	),
	Back: key.NewBinding(
		key.WithKeys("left", "h", "p", "backspace"),
		key.WithHelp("←/h", "back"),
	),
	Jump: key.NewBinding(
		key.WithKeys(":", "/", "g", "tab"),
		key.WithHelp(":/g", "picture #"),
	),
	Go: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "go"),
	),
	Cancel: key.NewBinding(
		key.WithKeys("esc"),
		key.WithHelp("esc", "cancel"),
	),
	Copy: key.NewBinding(
		key.WithKeys("y"),
		key.WithHelp("y", "copy caption"),
	),
	OpenHelp: key.NewBinding(
		key.WithKeys("?"),
		key.WithHelp("?", "help / keys"),
	),
}

// ShortHelp is the footer legend.
func (k Keymap) ShortHelp() []key.Binding {
	return []key.Binding{k.Back, k.Next, k.Jump, k.OpenHelp, k.Quit}
}

// JumpHelp is the footer legend while the jump field has focus.
func (k Keymap) JumpHelp() []key.Binding {
	return []key.Binding{k.Go, k.Cancel}
}

func (k Keymap) Legend() []key.Binding {
	return []key.Binding{
		k.Next,
		k.Back,
		k.Jump,
		k.Go,
		k.Cancel,
		k.Copy,
		k.OpenHelp,
		k.Quit,
	}
}
