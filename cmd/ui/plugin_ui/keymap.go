package plugin_ui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/slsforge/slsforge/pkg/plugins"
)

type keyMap struct {
	Up      key.Binding
	Down    key.Binding
	Toggle  key.Binding
	Confirm key.Binding
	Cancel  key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Up:      key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:    key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Toggle:  key.NewBinding(key.WithKeys(" "), key.WithHelp("space", "toggle")),
		Confirm: key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "confirm")),
		Cancel:  key.NewBinding(key.WithKeys("q", "esc"), key.WithHelp("q", "cancel")),
	}
}

// Decode maps raw key input onto the closed set of logical menu events.
// Anything outside the bindings is EventNone.
func (k keyMap) Decode(msg tea.KeyMsg) plugins.Event {
	switch {
	case key.Matches(msg, k.Up):
		return plugins.EventUp
	case key.Matches(msg, k.Down):
		return plugins.EventDown
	case key.Matches(msg, k.Toggle):
		return plugins.EventToggle
	case key.Matches(msg, k.Confirm):
		return plugins.EventConfirm
	case key.Matches(msg, k.Cancel):
		return plugins.EventCancel
	default:
		return plugins.EventNone
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Toggle, k.Confirm, k.Cancel}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Toggle},
		{k.Confirm, k.Cancel},
	}
}
