package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const defaultDividerWidth = 40

// Divider is a horizontal rule in the palette divider color.
type Divider struct {
	BaseComponent
	char  string
	width int
}

// NewDivider creates a thin divider.
func NewDivider() *Divider {
	return &Divider{
		BaseComponent: NewBaseComponent(),
		char:          "─",
	}
}

// View renders with the default theme.
func (d *Divider) View() string {
	return d.ViewWithContext(DefaultContext())
}

// ViewWithContext renders a rule as wide as the context allows.
func (d *Divider) ViewWithContext(ctx RenderContext) string {
	width := d.width
	if width <= 0 {
		width = ctx.availableWidth(defaultDividerWidth)
	}
	style := d.ComputeStyle(ctx.Theme)
	if _, unset := style.GetForeground().(lipgloss.NoColor); unset {
		style = style.Foreground(ctx.Theme.Palette.Divider)
	}
	return style.Render(strings.Repeat(d.char, width))
}

// WithChar sets the rule character.
func (d *Divider) WithChar(char string) *Divider {
	if char != "" {
		d.char = char
	}
	return d
}

// WithWidth fixes the width.
func (d *Divider) WithWidth(width int) *Divider {
	d.width = width
	return d
}

// WithAppliers replaces the theme modifiers.
func (d *Divider) WithAppliers(appliers ...StyleFunc) *Divider {
	d.SetAppliers(appliers...)
	return d
}

// ThickDivider creates a heavy rule.
func ThickDivider() *Divider {
	return NewDivider().WithChar("━")
}
