package demo

import tea "github.com/charmbracelet/bubbletea"

// copiedMsg reports the outcome of a clipboard write.
type copiedMsg struct {
	hex string
	err error
}

func copyCmd(write func(string) error, hex string) tea.Cmd {
	return func() tea.Msg {
		return copiedMsg{hex: hex, err: write(hex)}
	}
}
