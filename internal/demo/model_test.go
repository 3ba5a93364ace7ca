package demo

import (
	"errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/cooler/internal/palette"
	"github.com/alexisbeaulieu97/cooler/internal/theme"
)

func newTestModel(t *testing.T, copyFn func(string) error) (Model, theme.Pair, *theme.Slot) {
	t.Helper()
	pair := theme.PresetPair()
	slot := theme.NewSlot(nil)
	if copyFn == nil {
		copyFn = func(string) error { return nil }
	}
	m := NewModel(Options{
		Binding: theme.Bind(slot, pair, theme.AppearanceLight),
		Copy:    copyFn,
	})
	return m, pair, slot
}

func send(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	updated, cmd := m.Update(msg)
	next, ok := updated.(Model)
	require.True(t, ok)
	return next, cmd
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestNewModelDefaults(t *testing.T) {
	t.Parallel()

	m := NewModel(Options{})
	require.Equal(t, ScreenBase, m.Screen())
	require.Equal(t, theme.AppearanceLight, m.Appearance())
	require.False(t, m.editing())
	require.Len(t, m.swatches, len(palette.Roles()))
	require.Equal(t, []string{"", ""}, m.FieldValues())
	require.Nil(t, m.Init())

	s, ok := m.focusedSwatch()
	require.True(t, ok)
	require.Equal(t, "primary", s.label)
}

func TestScreenCycle(t *testing.T) {
	t.Parallel()

	require.Equal(t, ScreenGradient, ScreenBase.Next())
	require.Equal(t, ScreenBase, ScreenSemantic.Next())
	require.Equal(t, ScreenSemantic, ScreenBase.Prev())
	require.Equal(t, "Translucent Palette", ScreenTranslucent.String())
	require.Equal(t, "unknown", Screen(42).String())
	require.Len(t, Screens(), 4)
}

func TestBuildPageCoversEveryScreen(t *testing.T) {
	t.Parallel()

	c := theme.Default()
	for _, s := range Screens() {
		pg := buildPage(s, c, 40)
		require.NotEmpty(t, pg.title, s.String())
		require.NotEmpty(t, pg.buttons, s.String())
		require.NotEmpty(t, pg.cards, s.String())
		require.NotEmpty(t, pg.swatches, s.String())
		for _, card := range pg.cards {
			require.NotEmpty(t, card.View())
		}
	}

	gradients := buildPage(ScreenGradient, c, 40)
	require.Len(t, gradients.swatches, 8)
	require.Equal(t, c.Base().Primary().Hex(), gradients.swatches[0].color.Hex())
	require.Equal(t, c.Base().Secondary().Hex(), gradients.swatches[1].color.Hex())

	translucent := buildPage(ScreenTranslucent, c, 40)
	require.Equal(t, c.Translucent().Primary(), translucent.swatches[0].color)
}

func TestBindingDefaultsWhenMissing(t *testing.T) {
	t.Parallel()

	m := NewModel(Options{Screen: ScreenSemantic})
	require.Equal(t, ScreenSemantic, m.Screen())
	require.Same(t, palette.Light(), m.binding.Slot().Load().Base())
}

func TestCopyErrorIsReported(t *testing.T) {
	t.Parallel()

	m, _, _ := newTestModel(t, func(string) error { return errors.New("no clipboard") })
	m, cmd := send(t, m, runes("c"))
	require.NotNil(t, cmd)

	m, _ = send(t, m, cmd())
	require.Equal(t, "Copy failed: no clipboard", m.Status())
}
