package components

import (
	"strings"

	"github.com/alexisbeaulieu97/cooler/internal/palette"
	"github.com/alexisbeaulieu97/cooler/internal/ui"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/wordwrap"
)

const (
	defaultCardWidth       = 44
	descriptionOpacity     = 0.9
	imageCardHeight        = 8
	imageGlyphOpacity      = 0.15
	imageOverlayOpacity    = 0.25
	imageGradientOpacity   = 0.6
	gradientCardPaddingRow = 1
)

// Card shows a title and description on a filled, slightly dimmed panel.
// Fill defaults to the surface color and text to the primary color.
type Card struct {
	BaseComponent
	title       string
	description string
	fill        palette.Role
	text        palette.Role
	textColor   *palette.Color
	translucent bool
	footer      ui.Renderable
	width       int
}

// NewCard creates a surface card.
func NewCard(title, description string) *Card {
	return &Card{
		BaseComponent: NewBaseComponent(),
		title:         title,
		description:   description,
		fill:          palette.RoleSurface,
		text:          palette.RolePrimary,
	}
}

// View renders with the default theme.
func (c *Card) View() string {
	return c.ViewWithContext(DefaultContext())
}

// ViewWithContext renders the card.
func (c *Card) ViewWithContext(ctx RenderContext) string {
	composite := ctx.Theme.Composite()
	bg := ctx.Backdrop()

	fillColor := composite.Base().Color(c.fill)
	if c.translucent {
		fillColor = translucentColor(composite, c.fill)
	}
	fill := DimmedFill(fillColor, bg)
	textColor := composite.Base().Color(c.text)
	if c.textColor != nil {
		textColor = *c.textColor
	}

	width := c.width
	if width <= 0 {
		width = ctx.availableWidth(defaultCardWidth)
	}
	inner := max(width-4, 1)

	fillTerm := TerminalColor(fill, fill)
	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Background(fillTerm).
		Foreground(TerminalColor(textColor, fill))
	descStyle := lipgloss.NewStyle().
		Background(fillTerm).
		Foreground(TerminalColor(textColor.Opacity(descriptionOpacity), fill))

	lines := []string{titleStyle.Render(c.title)}
	if c.description != "" {
		for _, line := range strings.Split(wordwrap.String(c.description, inner), "\n") {
			lines = append(lines, descStyle.Render(line))
		}
	}
	if c.footer != nil {
		lines = append(lines, "", render(c.footer, ctx.WithConstraints(WithMaxWidth(inner))))
	}

	frame := c.ComputeStyle(ctx.Theme).
		Border(ctx.Theme.Borders.Rounded).
		BorderForeground(ctx.Theme.Palette.Divider).
		Background(fillTerm).
		Padding(0, 1).
		Width(width - 2)
	return frame.Render(strings.Join(lines, "\n"))
}

// WithFill sets the fill role.
func (c *Card) WithFill(role palette.Role) *Card {
	c.fill = role
	return c
}

// WithTextRole sets the role used for the title and description.
func (c *Card) WithTextRole(role palette.Role) *Card {
	c.text = role
	return c
}

// WithTextColor draws the title and description in an explicit color,
// overriding the text role.
func (c *Card) WithTextColor(color palette.Color) *Card {
	c.textColor = &color
	return c
}

// WithTranslucent fills with the translucent variant of the fill role.
func (c *Card) WithTranslucent(translucent bool) *Card {
	c.translucent = translucent
	return c
}

// WithFooter adds content below the description.
func (c *Card) WithFooter(footer ui.Renderable) *Card {
	c.footer = footer
	return c
}

// WithWidth fixes the outer width.
func (c *Card) WithWidth(width int) *Card {
	c.width = width
	return c
}

// WithAppliers adds theme modifiers to the frame.
func (c *Card) WithAppliers(appliers ...StyleFunc) *Card {
	c.AddAppliers(appliers...)
	return c
}

// Title returns the card title.
func (c *Card) Title() string {
	return c.title
}

var imageGlyph = []string{
	"┌──────────┐",
	"│  ▲   ◉   │",
	"│ ▲▲▲ ▲    │",
	"└──────────┘",
}

// ImageCard is a fixed-height card with a faint picture glyph behind white
// text. The fill is darkened with a black wash, or covered by a translucent
// gradient when one is set.
type ImageCard struct {
	title       string
	description string
	fill        palette.Role
	gradient    *palette.LinearGradient
	width       int
}

// NewImageCard creates an image card on the surface color.
func NewImageCard(title, description string) *ImageCard {
	return &ImageCard{title: title, description: description, fill: palette.RoleSurface}
}

// View renders with the default theme.
func (c *ImageCard) View() string {
	return c.ViewWithContext(DefaultContext())
}

// ViewWithContext renders the card.
func (c *ImageCard) ViewWithContext(ctx RenderContext) string {
	composite := ctx.Theme.Composite()
	bg := ctx.Backdrop()
	fill := composite.Base().Color(c.fill).Over(bg.Opaque())

	width := c.width
	if width <= 0 {
		width = ctx.availableWidth(defaultCardWidth)
	}

	lines := make([]string, 0, imageCardHeight)
	for _, row := range imageGlyph {
		pad := max((width-len([]rune(row)))/2, 0)
		lines = append(lines, strings.Repeat(" ", pad)+row)
	}
	text := []string{" " + c.title}
	for _, line := range strings.Split(wordwrap.String(c.description, max(width-2, 1)), "\n") {
		text = append(text, " "+line)
	}
	for len(lines)+len(text) < imageCardHeight {
		lines = append(lines, "")
	}
	lines = append(lines, text...)
	glyphRows := len(imageGlyph)

	var background func(col, row int) lipgloss.Color
	if c.gradient != nil {
		background = gradientCells(c.gradient.Opacity(imageGradientOpacity), fill, width, len(lines))
	} else {
		dimmed := palette.Black.Opacity(imageOverlayOpacity).Over(fill)
		flat := TerminalColor(dimmed, dimmed)
		background = func(int, int) lipgloss.Color { return flat }
	}

	glyph := TerminalColor(palette.Gray.Opacity(imageGlyphOpacity), fill)
	white := TerminalColor(palette.White, fill)
	foreground := func(row int) lipgloss.Color {
		if row < glyphRows {
			return glyph
		}
		return white
	}
	return paintCells(lines, width, background, foreground)
}

// WithFill sets the fill role.
func (c *ImageCard) WithFill(role palette.Role) *ImageCard {
	c.fill = role
	return c
}

// WithGradient overlays g at reduced opacity instead of the black wash.
func (c *ImageCard) WithGradient(g palette.LinearGradient) *ImageCard {
	c.gradient = &g
	return c
}

// WithWidth fixes the width.
func (c *ImageCard) WithWidth(width int) *ImageCard {
	c.width = width
	return c
}

// GradientCard draws white text over a gradient fill.
type GradientCard struct {
	title       string
	description string
	gradient    palette.LinearGradient
	width       int
}

// NewGradientCard creates a card over g.
func NewGradientCard(title, description string, g palette.LinearGradient) *GradientCard {
	return &GradientCard{title: title, description: description, gradient: g}
}

// View renders with the default theme.
func (c *GradientCard) View() string {
	return c.ViewWithContext(DefaultContext())
}

// ViewWithContext renders the card.
func (c *GradientCard) ViewWithContext(ctx RenderContext) string {
	bg := ctx.Backdrop()

	width := c.width
	if width <= 0 {
		width = ctx.availableWidth(defaultCardWidth)
	}

	lines := make([]string, 0, 4)
	for range gradientCardPaddingRow {
		lines = append(lines, "")
	}
	lines = append(lines, "  "+c.title)
	for _, line := range strings.Split(wordwrap.String(c.description, max(width-4, 1)), "\n") {
		lines = append(lines, "  "+line)
	}
	for range gradientCardPaddingRow {
		lines = append(lines, "")
	}

	white := TerminalColor(palette.White, bg)
	return paintCells(lines, width, gradientCells(c.gradient, bg, width, len(lines)), solid(white))
}

// WithWidth fixes the width.
func (c *GradientCard) WithWidth(width int) *GradientCard {
	c.width = width
	return c
}

// Gradient returns the card's gradient.
func (c *GradientCard) Gradient() palette.LinearGradient {
	return c.gradient
}
