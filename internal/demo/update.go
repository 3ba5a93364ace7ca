package demo

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.viewport.Width = m.contentWidth()
		m.viewport.Height = max(msg.Height-chromeHeight, 1)
		m.refresh()
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case copiedMsg:
		if msg.err != nil {
			m.status = fmt.Sprintf("Copy failed: %v", msg.err)
			m.log.Error(msg.err, "clipboard write failed")
			return m, nil
		}
		m.status = fmt.Sprintf("Copied %s to clipboard", msg.hex)
		return m, nil
	}

	if m.editing() {
		var cmd tea.Cmd
		m.fields[m.focus], cmd = m.fields[m.focus].Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case msg.Type == tea.KeyCtrlC:
		return m, tea.Quit
	case key.Matches(msg, m.keys.NextScreen):
		m.setScreen(m.screen.Next())
		return m, nil
	case key.Matches(msg, m.keys.PrevScreen):
		m.setScreen(m.screen.Prev())
		return m, nil
	case key.Matches(msg, m.keys.Up):
		return m, m.setFocus(m.focus - 1)
	case key.Matches(msg, m.keys.Down):
		return m, m.setFocus(m.focus + 1)
	case key.Matches(msg, m.keys.PageUp, m.keys.PageDown):
		var cmd tea.Cmd
		m.viewport, cmd = m.viewport.Update(msg)
		return m, cmd
	}

	if m.editing() {
		if key.Matches(msg, m.keys.Blur) {
			return m, m.setFocus(len(m.fields))
		}
		var cmd tea.Cmd
		m.fields[m.focus], cmd = m.fields[m.focus].Update(msg)
		m.refresh()
		return m, cmd
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Toggle):
		m.toggleAppearance()
		return m, nil
	case key.Matches(msg, m.keys.Copy):
		if s, ok := m.focusedSwatch(); ok {
			return m, copyCmd(m.copy, s.color.Hex())
		}
		return m, nil
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	}
	return m, nil
}
