package components

import (
	"strings"

	"github.com/alexisbeaulieu97/cooler/internal/palette"
	"github.com/charmbracelet/lipgloss"
)

const (
	swatchChipWidth  = 6
	swatchLabelWidth = 28
	defaultBarWidth  = 40
)

// Swatch previews one palette color: a chip flattened over the background,
// a label and the color's own hex value, alpha included.
type Swatch struct {
	label    string
	color    palette.Color
	selected bool
}

// NewSwatch creates a swatch for c.
func NewSwatch(label string, c palette.Color) *Swatch {
	return &Swatch{label: label, color: c}
}

// View renders with the default theme.
func (s *Swatch) View() string {
	return s.ViewWithContext(DefaultContext())
}

// ViewWithContext renders the chip, label and hex on one line.
func (s *Swatch) ViewWithContext(ctx RenderContext) string {
	bg := ctx.Backdrop()
	chip := lipgloss.NewStyle().
		Background(TerminalColor(s.color, bg)).
		Render(strings.Repeat(" ", swatchChipWidth))

	marker := "  "
	labelStyle := lipgloss.NewStyle().Foreground(ctx.Theme.Palette.Background.Text)
	if s.selected {
		marker = "▸ "
		labelStyle = labelStyle.Bold(true).Foreground(ctx.Theme.Palette.Highlight.Base)
	}
	hex := lipgloss.NewStyle().Foreground(ctx.Theme.Palette.Disabled).Render(s.Hex())
	return marker + chip + " " + labelStyle.Render(padLine(s.label, swatchLabelWidth)) + " " + hex
}

// WithSelected marks the swatch as the current selection.
func (s *Swatch) WithSelected(selected bool) *Swatch {
	s.selected = selected
	return s
}

// Label returns the swatch label.
func (s *Swatch) Label() string {
	return s.label
}

// Color returns the previewed color.
func (s *Swatch) Color() palette.Color {
	return s.color
}

// Hex returns the color's hex form, with alpha when translucent.
func (s *Swatch) Hex() string {
	return s.color.Hex()
}

// GradientBar paints a gradient across a width x height block of cells.
type GradientBar struct {
	gradient palette.LinearGradient
	width    int
	height   int
	label    string
}

// NewGradientBar creates a one-row bar.
func NewGradientBar(g palette.LinearGradient) *GradientBar {
	return &GradientBar{gradient: g, height: 1}
}

// View renders with the default theme.
func (b *GradientBar) View() string {
	return b.ViewWithContext(DefaultContext())
}

// ViewWithContext renders the bar, with the label centered on the middle row.
func (b *GradientBar) ViewWithContext(ctx RenderContext) string {
	bg := ctx.Backdrop()
	width := b.width
	if width <= 0 {
		width = ctx.availableWidth(defaultBarWidth)
	}
	height := max(b.height, 1)

	lines := make([]string, height)
	if b.label != "" {
		left := max((width-len([]rune(b.label)))/2, 0)
		lines[height/2] = strings.Repeat(" ", left) + b.label
	}
	return paintCells(lines, width, gradientCells(b.gradient, bg, width, height), solid(TerminalColor(palette.White, bg)))
}

// WithSize sets the block size in cells.
func (b *GradientBar) WithSize(width, height int) *GradientBar {
	b.width = width
	b.height = height
	return b
}

// WithLabel draws text over the bar.
func (b *GradientBar) WithLabel(label string) *GradientBar {
	b.label = label
	return b
}
