package components

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/cooler/internal/palette"
)

func plain(s string) string {
	return ansi.Strip(s)
}

func darkContext() RenderContext {
	return DefaultContext().WithTheme(NewTheme(palette.NewComposite(palette.Dark())))
}

func TestTextWrapsToWidth(t *testing.T) {
	t.Parallel()

	view := plain(NewText("one two three four").WithWrap(9).View())
	lines := strings.Split(view, "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "one two", strings.TrimSpace(lines[0]))
	assert.Equal(t, "three", strings.TrimSpace(lines[1]))
	assert.Equal(t, "four", strings.TrimSpace(lines[2]))

	ctx := DefaultContext().WithConstraints(WithMaxWidth(9))
	require.Equal(t, view, plain(NewText("one two three four").ViewWithContext(ctx)))
}

func TestTextHelpersRender(t *testing.T) {
	t.Parallel()

	for _, text := range []*Text{
		TitleText("a"), SubtitleText("a"), BodyText("a"),
		CaptionText("a"), EmphasisText("a"), CodeText("a"),
	} {
		assert.Contains(t, plain(text.ViewWithContext(darkContext())), "a")
	}
}

func TestStackJoinsChildren(t *testing.T) {
	t.Parallel()

	h := HStack(NewText("a"), NewText("b")).WithGap(1)
	require.Equal(t, "a b", plain(h.View()))

	v := VStack(NewText("a"), nil, NewText("b"))
	require.Equal(t, "a\nb", plain(v.View()))

	require.Empty(t, plain(NewStack().View()))
}

func TestHorizontalStackSplitsWidth(t *testing.T) {
	t.Parallel()

	s := HStack(NewDivider(), NewDivider()).WithGap(2).WithConstraints(WithMaxWidth(12))
	require.Equal(t, 12, lipgloss.Width(s.View()))
}

func TestContainerDrawsBorder(t *testing.T) {
	t.Parallel()

	c := NewContainer(NewText("inside")).
		WithBorder(BorderVariantRounded).
		WithPadding(SymmetricSpacing(0, 1))
	view := plain(c.View())
	require.True(t, strings.HasPrefix(view, "╭"))
	require.Contains(t, view, "│ inside │")
	require.Len(t, c.Children(), 1)
}

func TestAddAppliersKeepsExistingStrategy(t *testing.T) {
	t.Parallel()

	th := DefaultTheme()
	text := NewText("x").WithAppliers(Background(SlotPrimary))
	text.AddAppliers(Border(BorderVariantNormal))

	style := text.ComputeStyle(th)
	require.Equal(t, th.Palette.Primary.Base, style.GetBackground())
	require.True(t, style.GetBorderTop())

	custom := NewText("y")
	custom.SetStrategy(NewCompositeStrategy(Foreground(SlotError)))
	custom.AddAppliers(Padding(SpacingSizeSmall))
	style = custom.ComputeStyle(th)
	require.Equal(t, th.Palette.Error.Text, style.GetForeground())
	require.Equal(t, 1, style.GetPaddingLeft())
}

func TestButtonFills(t *testing.T) {
	t.Parallel()

	ctx := darkContext()

	solid := PrimaryButton("Save").WithWidth(12)
	view := solid.ViewWithContext(ctx)
	require.Equal(t, 12, lipgloss.Width(view))
	require.Contains(t, plain(view), "Save")
	require.Equal(t, palette.RolePrimary, solid.Variant().Role())

	gradient := GradientButton("Go").WithWidth(8)
	view = gradient.ViewWithContext(ctx)
	require.Equal(t, 8, lipgloss.Width(view))
	require.Equal(t, "   Go   ", plain(view))

	translucent := TranslucentButton("Glass", ButtonVariantSecondary)
	require.Contains(t, plain(translucent.ViewWithContext(ctx)), "Glass")

	disabled := SecondaryButton("Off").WithDisabled(true)
	require.True(t, disabled.IsDisabled())
	require.Equal(t, "Off", disabled.Label())
	require.Contains(t, plain(disabled.ViewWithContext(ctx)), "Off")
}

func TestButtonVariantRoles(t *testing.T) {
	t.Parallel()

	cases := map[ButtonVariant]palette.Role{
		ButtonVariantPrimary:   palette.RolePrimary,
		ButtonVariantSecondary: palette.RoleSecondary,
		ButtonVariantSuccess:   palette.RoleSuccess,
		ButtonVariantWarning:   palette.RoleWarning,
		ButtonVariantError:     palette.RoleError,
		ButtonVariantHighlight: palette.RoleHighlight,
	}
	for variant, role := range cases {
		assert.Equal(t, role, variant.Role())
	}
}

func TestCardLayout(t *testing.T) {
	t.Parallel()

	card := NewCard("Title", "A short description").WithWidth(30)
	view := card.ViewWithContext(darkContext())
	lines := strings.Split(plain(view), "\n")

	require.Len(t, lines, 4)
	require.Equal(t, 30, lipgloss.Width(view))
	require.Contains(t, lines[1], "Title")
	require.Contains(t, lines[2], "A short description")
	require.Equal(t, "Title", card.Title())
}

func TestCardWrapsDescriptionAndFooter(t *testing.T) {
	t.Parallel()

	card := NewCard("News", "alpha beta gamma delta epsilon").
		WithWidth(16).
		WithFill(palette.RolePrimary).
		WithTextRole(palette.RoleSurface).
		WithTranslucent(true).
		WithFooter(NewText("more"))
	view := plain(card.ViewWithContext(darkContext()))

	require.Contains(t, view, "more")
	for _, line := range strings.Split(view, "\n") {
		require.LessOrEqual(t, lipgloss.Width(line), 16)
	}
	require.Greater(t, strings.Count(view, "\n"), 4)
}

func TestImageCardHasFixedHeight(t *testing.T) {
	t.Parallel()

	card := NewImageCard("Image Card", "Photo background").WithWidth(30)
	view := card.ViewWithContext(darkContext())
	lines := strings.Split(plain(view), "\n")

	require.Len(t, lines, imageCardHeight)
	require.Equal(t, 30, lipgloss.Width(view))
	require.Contains(t, lines[0], "┌")
	require.Contains(t, lines[imageCardHeight-2], "Image Card")
	require.Contains(t, lines[imageCardHeight-1], "Photo background")

	composite := palette.NewComposite(palette.Dark())
	overlay := NewImageCard("With gradient", "x").
		WithWidth(30).
		WithGradient(composite.Gradients().PrimaryGradient())
	require.Len(t, strings.Split(plain(overlay.ViewWithContext(darkContext())), "\n"), imageCardHeight)
}

func TestGradientCard(t *testing.T) {
	t.Parallel()

	g := palette.NewComposite(palette.Light()).Gradients().SuccessGradient()
	card := NewGradientCard("Success Gradient", "Uses the success gradient.", g).WithWidth(40)
	view := card.ViewWithContext(DefaultContext())
	lines := strings.Split(plain(view), "\n")

	require.Len(t, lines, 4)
	require.Equal(t, 40, lipgloss.Width(view))
	require.Equal(t, "  Success Gradient", strings.TrimRight(lines[1], " "))
	require.Equal(t, g, card.Gradient())
}

func TestTextFieldStates(t *testing.T) {
	t.Parallel()

	ctx := darkContext()

	empty := NewTextField("Username", "Enter username").WithWidth(24)
	view := plain(empty.ViewWithContext(ctx))
	require.True(t, strings.HasPrefix(view, "Username"))
	require.Contains(t, view, "Enter username")
	require.Contains(t, view, "╭")
	require.False(t, empty.Focused())

	focused := NewTextField("Email", "Enter email").WithValue("me@example.com").WithFocus(true).WithWidth(24)
	view = plain(focused.ViewWithContext(ctx))
	require.Contains(t, view, "me@example.com")
	require.Contains(t, view, "┏")
	require.NotContains(t, view, "Enter email")
	require.Equal(t, "me@example.com", focused.Value())

	long := NewTextField("Email", "").WithValue(strings.Repeat("x", 50)).WithWidth(20)
	view = plain(long.ViewWithContext(ctx))
	require.Contains(t, view, "…")
	for _, line := range strings.Split(view, "\n") {
		require.LessOrEqual(t, lipgloss.Width(line), 20)
	}

	input := NewTextField("Custom", "").WithInput(NewText("typed")).WithDisabled(true)
	require.Contains(t, plain(input.ViewWithContext(ctx)), "typed")
}

func TestTextFieldBorderColorFollowsFocus(t *testing.T) {
	t.Parallel()

	th := DefaultTheme()
	require.Equal(t, th.Palette.Divider, InputStyle(th, InputStateDefault).GetBorderTopForeground())
	require.Equal(t, th.Palette.Highlight.Base, InputStyle(th, InputStateFocus).GetBorderTopForeground())
	require.Equal(t, th.Palette.Disabled, InputStyle(th, InputStateDisabled).GetBorderTopForeground())
}

func TestTextFieldVariants(t *testing.T) {
	t.Parallel()

	c := palette.NewComposite(palette.Dark())
	ctx := DefaultContext().WithTheme(NewTheme(c))
	bg := c.Base().Background()
	sem := c.Semantic()

	frame, text := NewTextField("Name", "").WithVariant(FieldVariantSemantic).WithFocus(true).styles(ctx)
	require.Equal(t, TerminalColor(sem.TextOnPrimaryBackground(), bg), frame.GetBorderTopForeground())
	require.Equal(t, TerminalColor(sem.TextOnSurfaceBackground(), bg), text.GetForeground())

	frame, _ = NewTextField("Name", "").WithVariant(FieldVariantSemantic).styles(ctx)
	require.Equal(t, ctx.Theme.Palette.Divider, frame.GetBorderTopForeground())

	tr := c.Translucent()
	fill := tr.Surface().Over(bg)
	frame, text = NewTextField("Name", "").WithVariant(FieldVariantTranslucent).styles(ctx)
	require.Equal(t, TerminalColor(fill, fill), frame.GetBackground())
	require.Equal(t, TerminalColor(palette.White.Opacity(0.5), bg), frame.GetBorderTopForeground())
	require.Equal(t, TerminalColor(palette.White, fill), text.GetForeground())

	frame, _ = NewTextField("Name", "").WithVariant(FieldVariantTranslucent).WithFocus(true).styles(ctx)
	require.Equal(t, TerminalColor(tr.Highlight(), bg), frame.GetBorderTopForeground())

	frame, _ = NewTextField("Name", "").WithVariant(FieldVariantTranslucent).WithDisabled(true).styles(ctx)
	require.Equal(t, ctx.Theme.Palette.Disabled, frame.GetBorderTopForeground())
}

func TestBackdropFollowsReversedGradient(t *testing.T) {
	t.Parallel()

	c := palette.NewComposite(palette.Light())
	g := c.Gradients().PrimaryGradient()
	forward := Backdrop{Gradient: g, Base: c.Base().Background()}
	reversed := Backdrop{Gradient: g.Reversed(), Base: c.Base().Background()}

	require.NotEqual(t, reversed.At(0.5, 0.05).Hex(), reversed.At(0.5, 0.95).Hex())
	require.Equal(t, forward.At(0.9, 0.9).Hex(), reversed.At(0.1, 0.1).Hex())
	require.Equal(t, c.Base().Secondary().Hex(), reversed.At(0, 0).Hex())

	view := reversed.Paint("top\n\nbottom", 12)
	lines := strings.Split(view, "\n")
	require.Len(t, lines, 3)
	for _, line := range lines {
		require.Equal(t, 12, lipgloss.Width(line))
	}
	require.Equal(t, "top", strings.TrimRight(plain(lines[0]), " "))
}

func TestComponentsFlattenOverBackdrop(t *testing.T) {
	t.Parallel()

	c := palette.NewComposite(palette.Light())
	ctx := DefaultContext().WithTheme(NewTheme(c))
	require.Equal(t, c.Base().Background(), ctx.Backdrop())

	backdrop := palette.MustHex("#9333EA")
	onBackdrop := ctx.WithBackdrop(backdrop)
	require.Equal(t, backdrop, onBackdrop.Backdrop())

	glass := TranslucentButton("Glass", ButtonVariantPrimary)
	muted := c.Translucent().Primary()
	require.Equal(t, TerminalColor(muted, c.Base().Background()), glass.computeStyle(ctx).GetBackground())
	require.Equal(t, TerminalColor(muted, backdrop), glass.computeStyle(onBackdrop).GetBackground())
	require.NotEqual(t, glass.computeStyle(ctx).GetBackground(), glass.computeStyle(onBackdrop).GetBackground())
}

func TestDisabledButtonUsesSurfaceFill(t *testing.T) {
	t.Parallel()

	c := palette.NewComposite(palette.Dark())
	ctx := DefaultContext().WithTheme(NewTheme(c))
	surface := c.Base().Surface()

	style := PrimaryButton("Off").WithDisabled(true).computeStyle(ctx)
	require.Equal(t, TerminalColor(surface, surface), style.GetBackground())
	require.Equal(t, TerminalColor(c.Semantic().Disabled(), surface), style.GetForeground())
}

func TestDivider(t *testing.T) {
	t.Parallel()

	require.Equal(t, "─────", plain(NewDivider().WithWidth(5).View()))
	require.Equal(t, "━━━", plain(ThickDivider().WithWidth(3).View()))

	ctx := DefaultContext().WithConstraints(WithMaxWidth(7))
	require.Equal(t, 7, lipgloss.Width(NewDivider().ViewWithContext(ctx)))
}

func TestSwatchShowsRawHex(t *testing.T) {
	t.Parallel()

	highlight := palette.Light().Highlight()
	swatch := NewSwatch("highlight", highlight).WithSelected(true)
	view := plain(swatch.View())

	require.Contains(t, view, "highlight")
	require.Contains(t, view, "#3b82f680")
	require.True(t, strings.HasPrefix(view, "▸ "))
	require.Equal(t, "#3b82f680", swatch.Hex())
	require.Equal(t, highlight, swatch.Color())
	require.Equal(t, "highlight", swatch.Label())
}

func TestGradientBarSize(t *testing.T) {
	t.Parallel()

	g := palette.NewComposite(palette.Light()).Gradients().PrimaryGradient()
	view := NewGradientBar(g).WithSize(10, 3).WithLabel("mid").View()
	lines := strings.Split(plain(view), "\n")

	require.Len(t, lines, 3)
	for _, line := range lines {
		require.Equal(t, 10, lipgloss.Width(line))
	}
	require.Contains(t, lines[1], "mid")
}

func TestGradientCellsSampleAlongAxis(t *testing.T) {
	t.Parallel()

	bg := palette.White
	g := palette.NewLinearGradient([]palette.Color{palette.Black, palette.White}, palette.Leading, palette.Trailing)
	cell := gradientCells(g, bg, 2, 1)

	left := palette.Black.Mix(palette.White, 0.25)
	right := palette.Black.Mix(palette.White, 0.75)
	require.Equal(t, TerminalColor(left, bg), cell(0, 0))
	require.Equal(t, TerminalColor(right, bg), cell(1, 0))
}

func TestAlertVariants(t *testing.T) {
	t.Parallel()

	ctx := darkContext()
	cases := []struct {
		alert *Alert
		icon  string
	}{
		{NewAlert("heads up"), "ℹ"},
		{SuccessAlert("saved"), "✓"},
		{WarningAlert("careful"), "⚠"},
		{ErrorAlert("failed"), "✗"},
	}
	for _, tc := range cases {
		view := plain(tc.alert.ViewWithContext(ctx))
		assert.Contains(t, view, tc.icon)
		assert.Contains(t, view, tc.alert.Message())
	}

	titled := plain(ErrorAlert("disk full").WithTitle("Error").WithWidth(30).ViewWithContext(ctx))
	require.Contains(t, titled, "Error")
	for _, line := range strings.Split(titled, "\n") {
		require.Equal(t, 30, lipgloss.Width(line))
	}
}
