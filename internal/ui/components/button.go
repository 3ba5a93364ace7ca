package components

import (
	"strings"

	"github.com/alexisbeaulieu97/cooler/internal/palette"
	"github.com/charmbracelet/lipgloss"
)

// ButtonVariant picks the palette role a button is filled with.
type ButtonVariant int

const (
	ButtonVariantPrimary ButtonVariant = iota
	ButtonVariantSecondary
	ButtonVariantSuccess
	ButtonVariantWarning
	ButtonVariantError
	ButtonVariantHighlight
)

// Role returns the palette role behind the variant.
func (v ButtonVariant) Role() palette.Role {
	switch v {
	case ButtonVariantSecondary:
		return palette.RoleSecondary
	case ButtonVariantSuccess:
		return palette.RoleSuccess
	case ButtonVariantWarning:
		return palette.RoleWarning
	case ButtonVariantError:
		return palette.RoleError
	case ButtonVariantHighlight:
		return palette.RoleHighlight
	default:
		return palette.RolePrimary
	}
}

// ButtonFill selects how the button background is drawn.
type ButtonFill int

const (
	// ButtonFillSolid uses the variant color.
	ButtonFillSolid ButtonFill = iota
	// ButtonFillGradient uses the palette primary gradient unless another
	// one is set.
	ButtonFillGradient
	// ButtonFillTranslucent uses the translucent variant color.
	ButtonFillTranslucent
)

// Button is a single-line label on a filled background.
type Button struct {
	BaseComponent
	label    string
	variant  ButtonVariant
	fill     ButtonFill
	width    int
	text     *palette.Color
	gradient *palette.LinearGradient
	disabled bool
	active   bool
}

// NewButton creates a solid primary button.
func NewButton(label string) *Button {
	return &Button{
		BaseComponent: NewBaseComponent(),
		label:         label,
	}
}

// View renders with the default theme.
func (b *Button) View() string {
	return b.ViewWithContext(DefaultContext())
}

// ViewWithContext renders the button.
func (b *Button) ViewWithContext(ctx RenderContext) string {
	if b.fill == ButtonFillGradient && !b.disabled {
		return b.gradientView(ctx)
	}
	return b.computeStyle(ctx).Render(b.label)
}

func (b *Button) computeStyle(ctx RenderContext) lipgloss.Style {
	theme := ctx.Theme
	base := theme.Composite().Base()
	bg := ctx.Backdrop()
	style := b.ComputeStyle(theme)

	switch b.fill {
	case ButtonFillTranslucent:
		muted := translucentColor(theme.Composite(), b.variant.Role())
		style = style.
			Background(TerminalColor(muted, bg)).
			Foreground(TerminalColor(palette.White, bg))
		style = PaddingX(SpacingSizeMedium)(style, theme)
	default:
		if strategy := theme.Variants.Get(b.variant); strategy != nil {
			style = strategy.Apply(style, theme)
		}
	}

	if b.text != nil {
		fill := base.Color(b.variant.Role()).Over(bg.Opaque())
		style = style.Foreground(TerminalColor(*b.text, fill))
	}
	if b.width > 0 {
		style = style.Width(b.width).Align(lipgloss.Center)
	}
	if b.disabled {
		surface := base.Surface().Over(bg.Opaque())
		style = style.
			Background(TerminalColor(surface, surface)).
			Foreground(TerminalColor(theme.Composite().Semantic().Disabled(), surface))
	}
	if b.active {
		style = style.Bold(true).Underline(true)
	}
	return style
}

func (b *Button) gradientView(ctx RenderContext) string {
	composite := ctx.Theme.Composite()
	bg := ctx.Backdrop()
	pad := PaddingValue(ctx.Theme, SpacingSizeMedium)

	label := b.label
	width := max(b.width, len([]rune(label))+2*pad)
	left := (width - len([]rune(label))) / 2
	line := padLine(strings.Repeat(" ", left)+label, width)

	g := composite.Gradients().PrimaryGradient()
	if b.gradient != nil {
		g = *b.gradient
	}
	white := TerminalColor(palette.White, bg)
	out := paintCells([]string{line}, width, gradientCells(g, bg, width, 1), solid(white))
	if b.active {
		out = lipgloss.NewStyle().Bold(true).Render(out)
	}
	return out
}

// WithVariant sets the fill role.
func (b *Button) WithVariant(variant ButtonVariant) *Button {
	b.variant = variant
	return b
}

// WithFill sets how the background is drawn.
func (b *Button) WithFill(fill ButtonFill) *Button {
	b.fill = fill
	return b
}

// WithTextColor draws the label in an explicit color over the fill.
func (b *Button) WithTextColor(color palette.Color) *Button {
	b.text = &color
	return b
}

// WithGradient fills with g instead of the primary gradient.
func (b *Button) WithGradient(g palette.LinearGradient) *Button {
	b.gradient = &g
	b.fill = ButtonFillGradient
	return b
}

// WithWidth stretches the button to width cells with the label centered.
func (b *Button) WithWidth(width int) *Button {
	b.width = width
	return b
}

// WithDisabled draws the label in the disabled color on the surface fill.
func (b *Button) WithDisabled(disabled bool) *Button {
	b.disabled = disabled
	return b
}

// WithActive marks the button as selected.
func (b *Button) WithActive(active bool) *Button {
	b.active = active
	return b
}

// WithAppliers adds theme modifiers.
func (b *Button) WithAppliers(appliers ...StyleFunc) *Button {
	b.AddAppliers(appliers...)
	return b
}

// Label returns the button label.
func (b *Button) Label() string {
	return b.label
}

// Variant returns the button variant.
func (b *Button) Variant() ButtonVariant {
	return b.variant
}

// IsDisabled reports whether the button is disabled.
func (b *Button) IsDisabled() bool {
	return b.disabled
}

// PrimaryButton creates a solid primary button.
func PrimaryButton(label string) *Button {
	return NewButton(label).WithVariant(ButtonVariantPrimary)
}

// SecondaryButton creates a solid secondary button.
func SecondaryButton(label string) *Button {
	return NewButton(label).WithVariant(ButtonVariantSecondary)
}

// GradientButton creates a button over the primary gradient.
func GradientButton(label string) *Button {
	return NewButton(label).WithFill(ButtonFillGradient)
}

// TranslucentButton creates a button on the translucent variant color.
func TranslucentButton(label string, variant ButtonVariant) *Button {
	return NewButton(label).WithVariant(variant).WithFill(ButtonFillTranslucent)
}
