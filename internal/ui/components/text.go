package components

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/wordwrap"
)

// Text renders styled text content.
type Text struct {
	BaseComponent
	content string
	wrap    int
}

// NewText creates a text component.
func NewText(content string) *Text {
	return &Text{
		BaseComponent: NewBaseComponent(),
		content:       content,
	}
}

// View renders with the default theme.
func (t *Text) View() string {
	return t.ViewWithContext(DefaultContext())
}

// ViewWithContext renders the text, word-wrapped to the explicit wrap width or
// the context width when one is known.
func (t *Text) ViewWithContext(ctx RenderContext) string {
	content := t.content
	if width := t.wrapWidth(ctx); width > 0 {
		content = wordwrap.String(content, width)
	}
	return t.ComputeStyle(ctx.Theme).Render(content)
}

func (t *Text) wrapWidth(ctx RenderContext) int {
	if t.wrap > 0 {
		return t.wrap
	}
	return ctx.availableWidth(0)
}

// Content returns the raw text.
func (t *Text) Content() string {
	return t.content
}

// SetContent updates the text.
func (t *Text) SetContent(content string) *Text {
	t.content = content
	return t
}

// WithWrap word-wraps at width cells.
func (t *Text) WithWrap(width int) *Text {
	t.wrap = width
	return t
}

// WithStyle sets the lipgloss style directly.
func (t *Text) WithStyle(style lipgloss.Style) *Text {
	t.SetStyle(style)
	return t
}

// WithAppliers replaces the theme modifiers.
func (t *Text) WithAppliers(appliers ...StyleFunc) *Text {
	t.SetAppliers(appliers...)
	return t
}

// TitleText is a bold heading in the primary color.
func TitleText(content string) *Text {
	return NewText(content).WithAppliers(Typography(TypographyVariantTitle))
}

// SubtitleText uses the secondary text color.
func SubtitleText(content string) *Text {
	return NewText(content).WithAppliers(Typography(TypographyVariantSubtitle))
}

// BodyText is drawn in the main-background text color.
func BodyText(content string) *Text {
	return NewText(content).WithAppliers(Typography(TypographyVariantBody))
}

// CaptionText is dimmed secondary information.
func CaptionText(content string) *Text {
	return NewText(content).WithAppliers(Typography(TypographyVariantCaption))
}

// EmphasisText is bold body text.
func EmphasisText(content string) *Text {
	return NewText(content).WithAppliers(Typography(TypographyVariantEmphasis))
}

// CodeText renders inline code on the surface color.
func CodeText(content string) *Text {
	return NewText(content).WithAppliers(Typography(TypographyVariantCode))
}
