// Package demo is an interactive Bubble Tea program that renders every
// palette on four screens and lets the user flip between light and dark
// appearance.
package demo

import (
	"context"
	"fmt"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/cooler/internal/logger"
	"github.com/alexisbeaulieu97/cooler/internal/theme"
	"github.com/alexisbeaulieu97/cooler/internal/ui/components"
)

const (
	maxContentWidth = 72
	chromeHeight    = 5
)

// Options configures a demo Model.
type Options struct {
	// Binding supplies the active palette. Nil binds the preset pair in
	// light appearance.
	Binding *theme.Binding
	Logger  *logger.Logger
	// Copy writes to the system clipboard; defaults to atotto/clipboard.
	Copy   func(string) error
	Screen Screen
}

// Model is the demo state.
type Model struct {
	binding *theme.Binding
	log     *logger.Logger
	copy    func(string) error
	theme   components.Theme
	keys    keyMap

	screen   Screen
	focus    int
	fields   []textinput.Model
	swatches []swatch
	viewport viewport.Model
	help     help.Model
	status   string

	width  int
	height int
}

// NewModel builds the initial state. Focus starts on the first swatch.
func NewModel(opts Options) Model {
	binding := opts.Binding
	if binding == nil {
		binding = theme.Bind(theme.NewSlot(nil), theme.PresetPair(), theme.AppearanceLight)
	}
	copyFn := opts.Copy
	if copyFn == nil {
		copyFn = clipboard.WriteAll
	}
	log := opts.Logger
	if log == nil {
		log = logger.Nop()
	}

	m := Model{
		binding:  binding,
		log:      log.WithComponent("demo"),
		copy:     copyFn,
		keys:     defaultKeyMap(),
		screen:   opts.Screen,
		fields:   []textinput.Model{newField("Enter username"), newField("Enter email")},
		viewport: viewport.New(maxContentWidth, 20),
		help:     help.New(),
	}
	m.viewport.KeyMap = viewport.KeyMap{PageUp: m.keys.PageUp, PageDown: m.keys.PageDown}
	m.focus = len(m.fields)
	m.applyTheme()
	return m
}

func newField(placeholder string) textinput.Model {
	field := textinput.New()
	field.Placeholder = placeholder
	field.Prompt = ""
	field.CharLimit = 64
	return field
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Screen returns the visible page.
func (m Model) Screen() Screen {
	return m.screen
}

// Appearance returns the appearance the palette follows.
func (m Model) Appearance() theme.Appearance {
	return m.binding.Appearance()
}

// Status returns the last status line message.
func (m Model) Status() string {
	return m.status
}

// FieldValues returns the username and email entered so far.
func (m Model) FieldValues() []string {
	values := make([]string, len(m.fields))
	for i, f := range m.fields {
		values[i] = f.Value()
	}
	return values
}

func (m Model) editing() bool {
	return m.focus < len(m.fields)
}

func (m Model) focusedSwatch() (swatch, bool) {
	index := m.focus - len(m.fields)
	if index < 0 || index >= len(m.swatches) {
		return swatch{}, false
	}
	return m.swatches[index], true
}

func (m Model) contentWidth() int {
	if m.width > 0 && m.width < maxContentWidth {
		return m.width
	}
	return maxContentWidth
}

// applyTheme rebuilds the component theme from the bound palette.
func (m *Model) applyTheme() {
	m.theme = components.NewTheme(m.binding.Slot().Load())
	p := m.theme.Palette
	for i := range m.fields {
		m.fields[i].TextStyle = m.fields[i].TextStyle.Foreground(p.Primary.Base)
		m.fields[i].PlaceholderStyle = m.fields[i].PlaceholderStyle.Foreground(p.Disabled)
		m.fields[i].Cursor.Style = m.fields[i].Cursor.Style.Foreground(p.Highlight.Base)
	}
	keyStyle := lipgloss.NewStyle().Foreground(p.Highlight.Base)
	descStyle := lipgloss.NewStyle().Foreground(p.Disabled)
	m.help.Styles.ShortKey = keyStyle
	m.help.Styles.FullKey = keyStyle
	m.help.Styles.ShortDesc = descStyle
	m.help.Styles.FullDesc = descStyle
	m.refresh()
}

// setFocus moves focus to index, wrapping around the field and swatch ring.
func (m *Model) setFocus(index int) tea.Cmd {
	count := len(m.fields) + len(m.swatches)
	if count == 0 {
		return nil
	}
	m.focus = ((index % count) + count) % count

	var cmd tea.Cmd
	for i := range m.fields {
		if i == m.focus {
			cmd = m.fields[i].Focus()
		} else {
			m.fields[i].Blur()
		}
	}
	m.refresh()
	return cmd
}

func (m *Model) setScreen(s Screen) {
	m.screen = s
	m.refresh()
	if m.focus >= len(m.fields)+len(m.swatches) {
		m.focus = len(m.fields)
		m.refresh()
	}
	m.viewport.GotoTop()
	m.log.WithFields(map[string]any{"screen": s.String()}).Debug("screen changed")
}

func (m *Model) toggleAppearance() {
	appearance := m.binding.Toggle()
	m.applyTheme()
	m.status = fmt.Sprintf("Appearance: %s", appearance)
	m.log.WithFields(map[string]any{"appearance": appearance.String()}).Debug("palette rebound")
}

// Run starts the demo on the terminal and blocks until the user quits or ctx
// is cancelled.
func Run(ctx context.Context, opts Options) error {
	p := tea.NewProgram(NewModel(opts), tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run demo: %w", err)
	}
	return nil
}
