package components

import (
	"github.com/alexisbeaulieu97/cooler/internal/palette"
	"github.com/alexisbeaulieu97/cooler/internal/ui"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

const (
	defaultFieldWidth      = 32
	translucentFieldBorder = 0.5
)

// FieldVariant picks the colors a text field is drawn with.
type FieldVariant int

const (
	// FieldVariantDefault draws primary text inside a highlight or divider
	// border.
	FieldVariantDefault FieldVariant = iota
	// FieldVariantSemantic uses the surface text color, and the text color
	// meant for primary backgrounds as the focus border.
	FieldVariantSemantic
	// FieldVariantTranslucent draws white text on the translucent surface
	// with a half-transparent white border that turns translucent highlight
	// on focus.
	FieldVariantTranslucent
)

// TextField is a titled single-line input frame. The border uses the
// highlight color while focused and the divider color otherwise. The field
// only draws; editing is left to whatever supplies the value or input view.
type TextField struct {
	BaseComponent
	title       string
	placeholder string
	value       string
	input       ui.Renderable
	variant     FieldVariant
	focused     bool
	disabled    bool
	width       int
}

// NewTextField creates an empty field.
func NewTextField(title, placeholder string) *TextField {
	return &TextField{
		BaseComponent: NewBaseComponent(),
		title:         title,
		placeholder:   placeholder,
	}
}

// View renders with the default theme.
func (f *TextField) View() string {
	return f.ViewWithContext(DefaultContext())
}

// ViewWithContext renders the title above the framed value.
func (f *TextField) ViewWithContext(ctx RenderContext) string {
	theme := ctx.Theme
	width := f.width
	if width <= 0 {
		width = ctx.availableWidth(defaultFieldWidth)
	}

	frame, text := f.styles(ctx)
	frame = frame.Width(width - 2)
	inner := max(width-2-frame.GetHorizontalPadding(), 1)

	var content string
	switch {
	case f.input != nil:
		content = f.input.View()
	case f.value == "":
		content = theme.Input.Placeholder.Inherit(text).Render(ansi.Truncate(f.placeholder, inner, "…"))
	default:
		content = text.Render(ansi.Truncate(f.value, inner, "…"))
	}

	title := TypographyStyle(theme, TypographyVariantEmphasis).
		Foreground(theme.Palette.Background.Text).
		Render(f.title)
	return lipgloss.JoinVertical(lipgloss.Left, title, frame.Render(content))
}

// styles returns the frame and value styles for the field's state and
// variant.
func (f *TextField) styles(ctx RenderContext) (lipgloss.Style, lipgloss.Style) {
	theme := ctx.Theme
	frame := InputStyle(theme, f.state()).Inherit(f.ComputeStyle(theme))
	if f.focused {
		frame = frame.Border(theme.Borders.Thick)
	}
	text := lipgloss.NewStyle().Foreground(theme.Palette.Primary.Base)
	if f.disabled {
		return frame, text
	}

	bg := ctx.Backdrop()
	composite := theme.Composite()
	switch f.variant {
	case FieldVariantSemantic:
		sem := composite.Semantic()
		text = text.Foreground(TerminalColor(sem.TextOnSurfaceBackground(), bg))
		if f.focused {
			frame = frame.BorderForeground(TerminalColor(sem.TextOnPrimaryBackground(), bg))
		}
	case FieldVariantTranslucent:
		tr := composite.Translucent()
		fill := tr.Surface().Over(bg.Opaque())
		border := palette.White.Opacity(translucentFieldBorder)
		if f.focused {
			border = tr.Highlight()
		}
		fillTerm := TerminalColor(fill, fill)
		frame = frame.
			Background(fillTerm).
			BorderForeground(TerminalColor(border, bg))
		text = text.
			Background(fillTerm).
			Foreground(TerminalColor(palette.White, fill))
	}
	return frame, text
}

func (f *TextField) state() InputState {
	switch {
	case f.disabled:
		return InputStateDisabled
	case f.focused:
		return InputStateFocus
	default:
		return InputStateDefault
	}
}

// WithValue sets the displayed value.
func (f *TextField) WithValue(value string) *TextField {
	f.value = value
	return f
}

// WithInput draws input inside the frame in place of the value.
func (f *TextField) WithInput(input ui.Renderable) *TextField {
	f.input = input
	return f
}

// WithVariant sets the color variant.
func (f *TextField) WithVariant(variant FieldVariant) *TextField {
	f.variant = variant
	return f
}

// WithFocus marks the field as focused.
func (f *TextField) WithFocus(focused bool) *TextField {
	f.focused = focused
	return f
}

// WithDisabled greys the field out.
func (f *TextField) WithDisabled(disabled bool) *TextField {
	f.disabled = disabled
	return f
}

// WithWidth fixes the outer width.
func (f *TextField) WithWidth(width int) *TextField {
	f.width = width
	return f
}

// Focused reports whether the field is focused.
func (f *TextField) Focused() bool {
	return f.focused
}

// Value returns the displayed value.
func (f *TextField) Value() string {
	return f.value
}
