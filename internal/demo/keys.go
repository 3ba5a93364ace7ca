package demo

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	NextScreen key.Binding
	PrevScreen key.Binding
	Up         key.Binding
	Down       key.Binding
	Blur       key.Binding
	Toggle     key.Binding
	Copy       key.Binding
	PageUp     key.Binding
	PageDown   key.Binding
	Help       key.Binding
	Quit       key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		NextScreen: key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next screen")),
		PrevScreen: key.NewBinding(key.WithKeys("shift+tab"), key.WithHelp("shift+tab", "prev screen")),
		Up:         key.NewBinding(key.WithKeys("up"), key.WithHelp("↑", "focus up")),
		Down:       key.NewBinding(key.WithKeys("down"), key.WithHelp("↓", "focus down")),
		Blur:       key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "leave field")),
		Toggle:     key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "light/dark")),
		Copy:       key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "copy hex")),
		PageUp:     key.NewBinding(key.WithKeys("pgup"), key.WithHelp("pgup", "scroll up")),
		PageDown:   key.NewBinding(key.WithKeys("pgdown"), key.WithHelp("pgdn", "scroll down")),
		Help:       key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "more keys")),
		Quit:       key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.NextScreen, k.Down, k.Toggle, k.Copy, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.NextScreen, k.PrevScreen, k.Up, k.Down},
		{k.Toggle, k.Copy, k.Blur},
		{k.PageUp, k.PageDown, k.Help, k.Quit},
	}
}
