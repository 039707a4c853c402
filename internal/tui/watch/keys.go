package watch

import (
	"github.com/charmbracelet/bubbles/key"
)

type keyMap struct {
	Hover  key.Binding
	Click  key.Binding
	More   key.Binding
	Less   key.Binding
	Speed  key.Binding
	Smooth key.Binding
	Mode   key.Binding
	Pulse  key.Binding
	Help   key.Binding
	Quit   key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Hover: key.NewBinding(
			key.WithKeys("h"),
			key.WithHelp("h", "hover"),
		),
		Click: key.NewBinding(
			key.WithKeys("c", " "),
			key.WithHelp("c", "press"),
		),
		More: key.NewBinding(
			key.WithKeys("+", "="),
			key.WithHelp("+", "more points"),
		),
		Less: key.NewBinding(
			key.WithKeys("-", "_"),
			key.WithHelp("-", "fewer points"),
		),
		Speed: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "speed"),
		),
		Smooth: key.NewBinding(
			key.WithKeys("m"),
			key.WithHelp("m", "smooth"),
		),
		Mode: key.NewBinding(
			key.WithKeys("d"),
			key.WithHelp("d", "dark mode"),
		),
		Pulse: key.NewBinding(
			key.WithKeys("p"),
			key.WithHelp("p", "pulse"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Hover, k.Click, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Hover, k.Click, k.Smooth},
		{k.More, k.Less, k.Speed},
		{k.Mode, k.Pulse},
		{k.Help, k.Quit},
	}
}
