package components

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/cooler/internal/palette"
	"github.com/alexisbeaulieu97/cooler/internal/theme"
)

func TestNewThemeResolvesPaletteColors(t *testing.T) {
	t.Parallel()

	light := palette.Light()
	th := NewTheme(palette.NewComposite(light))

	require.Equal(t, lipgloss.Color("#3b82f6"), th.Palette.Primary.Base)
	require.Equal(t, lipgloss.Color("#ffffff"), th.Palette.Primary.OnBase)
	require.Equal(t, lipgloss.Color("#ffffff"), th.Palette.Surface.Base)
	require.Equal(t, lipgloss.Color("#000000"), th.Palette.Surface.OnBase)
	require.Equal(t, TerminalColor(light.Highlight(), light.Background()), th.Palette.Highlight.Base)
	require.Equal(t, TerminalColor(light.Primary().Opacity(palette.DefaultAlpha), light.Background()), th.Palette.Primary.Muted)
	require.Equal(t, TerminalColor(palette.Gray.Opacity(0.5), light.Background()), th.Palette.Divider)
}

func TestNewThemeFlattensTranslucentColors(t *testing.T) {
	t.Parallel()

	th := NewTheme(palette.NewComposite(palette.Dark()))
	for _, c := range []lipgloss.Color{
		th.Palette.Highlight.Base,
		th.Palette.Primary.Muted,
		th.Palette.Background.Muted,
		th.Palette.Divider,
	} {
		require.Len(t, string(c), 7, "terminal colors carry no alpha: %s", c)
	}
}

func TestThemeDefaults(t *testing.T) {
	t.Parallel()

	require.Same(t, theme.Default(), DefaultTheme().Source)
	require.Same(t, theme.Default(), NewTheme(nil).Source)
	require.Same(t, theme.Default(), Theme{}.Composite())
	require.NotNil(t, DefaultTheme().Variants.Get(ButtonVariantPrimary))
	require.NotNil(t, DefaultTheme().Variants.Get(AlertVariantError))

	var registry *VariantRegistry
	require.Nil(t, registry.Get(ButtonVariantPrimary))
}

func TestTerminalColor(t *testing.T) {
	t.Parallel()

	require.Equal(t, lipgloss.Color("#808080"), TerminalColor(palette.Black.Opacity(0.5), palette.White))
	require.Equal(t, lipgloss.Color("#ff0000"), TerminalColor(palette.RGB(1, 0, 0), palette.White))
	require.Equal(t, lipgloss.Color("#ffffff"), TerminalColor(palette.Clear, palette.White.Opacity(0.2)))
}

func TestContrastTextUsesBrightness(t *testing.T) {
	t.Parallel()

	require.Equal(t, palette.Black, ContrastText(palette.White))
	require.Equal(t, palette.White, ContrastText(palette.Black))
	require.Equal(t, palette.White, ContrastText(palette.Light().Primary()))
}

func TestDimmedFill(t *testing.T) {
	t.Parallel()

	require.Equal(t, "#f2f2f2", DimmedFill(palette.White, palette.White).Hex())
	require.Equal(t, "#000000", DimmedFill(palette.Black, palette.White).Hex())
	require.Equal(t, palette.Black.Opacity(0.05), dimOverlay(palette.White))
	require.Equal(t, palette.Black.Opacity(0.25), dimOverlay(palette.Dark().Surface()))

	// A half-transparent blue reads light once flattened over the light
	// background, but the wash follows the raw fill.
	light := palette.Light()
	highlight := palette.MustHex("#3B82F6").Opacity(0.5)
	flat := highlight.Over(light.Background())
	require.True(t, flat.IsLight())
	want := palette.Black.Opacity(0.25).Over(flat)
	require.Equal(t, want.Hex(), DimmedFill(highlight, light.Background()).Hex())
}

func TestSlotFor(t *testing.T) {
	t.Parallel()

	p := NewTheme(palette.NewComposite(palette.Light())).Palette
	for _, role := range palette.Roles() {
		slot := SlotFor(role)
		require.NotNil(t, slot)
	}
	require.Equal(t, p.Error, SlotFor(palette.RoleError)(p))
	require.Equal(t, p.Highlight, SlotFor(palette.RoleHighlight)(p))
	require.Equal(t, p.Primary, SlotFor(palette.Role(42))(p))
}

func TestStyleFuncsUsePalette(t *testing.T) {
	t.Parallel()

	th := NewTheme(palette.NewComposite(palette.Light()))

	style := Background(SlotPrimary)(lipgloss.NewStyle(), th)
	require.Equal(t, th.Palette.Primary.Base, style.GetBackground())
	require.Equal(t, th.Palette.Primary.OnBase, style.GetForeground())

	style = MutedBackground(SlotSecondary)(lipgloss.NewStyle(), th)
	require.Equal(t, th.Palette.Secondary.Muted, style.GetBackground())

	style = Foreground(SlotSurface)(lipgloss.NewStyle(), th)
	require.Equal(t, th.Palette.Surface.Text, style.GetForeground())

	require.Equal(t, 2, PaddingValue(th, SpacingSizeMedium))
	require.Equal(t, 2, MarginValue(th, SpacingSize(99)))
}
