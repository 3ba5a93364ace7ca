package components

import (
	"strings"

	"github.com/alexisbeaulieu97/cooler/internal/palette"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// dimOverlay returns the black wash laid over card fills: faint on light
// colors, stronger on dark ones.
func dimOverlay(fill palette.Color) palette.Color {
	if fill.IsLight() {
		return palette.Black.Opacity(0.05)
	}
	return palette.Black.Opacity(0.25)
}

// DimmedFill returns fill with the card dim overlay applied, as an opaque
// color over bg. The overlay strength follows the raw fill, so a translucent
// dark fill keeps the strong wash even when bg lightens it.
func DimmedFill(fill, bg palette.Color) palette.Color {
	flat := fill.Over(bg.Opaque())
	return dimOverlay(fill).Over(flat)
}

// padLine pads or truncates s to exactly width cells.
func padLine(s string, width int) string {
	w := ansi.StringWidth(s)
	if w > width {
		return ansi.Truncate(s, width, "…")
	}
	return s + strings.Repeat(" ", width-w)
}

// paintCells draws plain-text lines cell by cell. background picks the fill
// of each cell and foreground the text color of each row.
func paintCells(lines []string, width int, background func(col, row int) lipgloss.Color, foreground func(row int) lipgloss.Color) string {
	if width <= 0 || len(lines) == 0 {
		return ""
	}

	var out strings.Builder
	for row, line := range lines {
		if row > 0 {
			out.WriteByte('\n')
		}
		fg := foreground(row)
		for col, r := range []rune(padLine(line, width)) {
			out.WriteString(lipgloss.NewStyle().Background(background(col, row)).Foreground(fg).Render(string(r)))
		}
	}
	return out.String()
}

// gradientCells samples g at the center of each cell of a width x height box
// and flattens the result over bg.
func gradientCells(g palette.LinearGradient, bg palette.Color, width, height int) func(col, row int) lipgloss.Color {
	return func(col, row int) lipgloss.Color {
		point := palette.Point{
			X: (float64(col) + 0.5) / float64(width),
			Y: (float64(row) + 0.5) / float64(height),
		}
		return TerminalColor(g.At(g.Param(point)), bg)
	}
}

func solid(c lipgloss.Color) func(int) lipgloss.Color {
	return func(int) lipgloss.Color { return c }
}

// Backdrop is a gradient laid over an opaque base and painted behind a block
// of content.
type Backdrop struct {
	Gradient palette.LinearGradient
	Base     palette.Color
}

// At returns the opaque backdrop color at the unit point (x, y).
func (b Backdrop) At(x, y float64) palette.Color {
	g := b.Gradient
	return g.At(g.Param(palette.Point{X: x, Y: y})).Over(b.Base.Opaque())
}

// Paint fills content out to width cells over the backdrop. Each line sits on
// the color sampled at the middle of its row, and the cells right of it follow
// the gradient column by column.
func (b Backdrop) Paint(content string, width int) string {
	if width <= 0 {
		return content
	}

	lines := strings.Split(content, "\n")
	height := float64(len(lines))
	var out strings.Builder
	for row, line := range lines {
		if row > 0 {
			out.WriteByte('\n')
		}
		y := (float64(row) + 0.5) / height
		w := ansi.StringWidth(line)
		if w > width {
			line = ansi.Truncate(line, width, "")
			w = width
		}
		if w > 0 {
			rowColor := b.At(0.5, y)
			out.WriteString(lipgloss.NewStyle().Background(TerminalColor(rowColor, rowColor)).Render(line))
		}
		for col := w; col < width; col++ {
			cell := b.At((float64(col)+0.5)/float64(width), y)
			out.WriteString(lipgloss.NewStyle().Background(TerminalColor(cell, cell)).Render(" "))
		}
	}
	return out.String()
}
