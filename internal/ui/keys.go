package ui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Pause   key.Binding
	Faster  key.Binding
	Slower  key.Binding
	Bigger  key.Binding
	Smaller key.Binding
	Grid    key.Binding
	Easing  key.Binding
	Help    key.Binding
	Quit    key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		Pause: key.NewBinding(
			key.WithKeys(" ", "p"),
			key.WithHelp("space", "pause"),
		),
		Faster: key.NewBinding(
			key.WithKeys("+", "=", "right", "l"),
			key.WithHelp("+", "faster"),
		),
		Slower: key.NewBinding(
			key.WithKeys("-", "_", "left", "h"),
			key.WithHelp("-", "slower"),
		),
		Bigger: key.NewBinding(
			key.WithKeys("]", "up", "k"),
			key.WithHelp("]", "bigger"),
		),
		Smaller: key.NewBinding(
			key.WithKeys("[", "down", "j"),
			key.WithHelp("[", "smaller"),
		),
		Grid: key.NewBinding(
			key.WithKeys("g"),
			key.WithHelp("g", "grid"),
		),
		Easing: key.NewBinding(
			key.WithKeys("e"),
			key.WithHelp("e", "easing"),
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

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Pause, k.Faster, k.Slower, k.Bigger, k.Smaller, k.Help, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Pause, k.Faster, k.Slower},
		{k.Bigger, k.Smaller},
		{k.Grid, k.Easing},
		{k.Help, k.Quit},
	}
}
