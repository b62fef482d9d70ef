package ui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	PanLeft  key.Binding
	PanRight key.Binding
	ZoomIn   key.Binding
	ZoomOut  key.Binding
	Today    key.Binding
	Goto     key.Binding
	Reload   key.Binding
	Quit     key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		PanLeft: key.NewBinding(
			key.WithKeys("h", "left"),
			key.WithHelp("h", "pan left"),
		),
		PanRight: key.NewBinding(
			key.WithKeys("l", "right"),
			key.WithHelp("l", "pan right"),
		),
		ZoomIn: key.NewBinding(
			key.WithKeys("+", "="),
			key.WithHelp("+", "zoom in"),
		),
		ZoomOut: key.NewBinding(
			key.WithKeys("-", "_"),
			key.WithHelp("-", "zoom out"),
		),
		Today: key.NewBinding(
			key.WithKeys("o"),
			key.WithHelp("o", "today"),
		),
		Goto: key.NewBinding(
			key.WithKeys("g"),
			key.WithHelp("g", "goto date"),
		),
		Reload: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "reload"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}
