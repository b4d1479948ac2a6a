package dialogs

import tea "github.com/charmbracelet/bubbletea"

// Dialog is a modal drawn over the slideshow. While one is visible it
// receives every key press.
type Dialog interface {
	Update(msg tea.Msg) (Dialog, tea.Cmd)
	View() string
	IsVisible() bool
	Show()
	Hide()
}
