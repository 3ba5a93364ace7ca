package components

import (
	"github.com/alexisbeaulieu97/cooler/internal/ui"
	"github.com/charmbracelet/lipgloss"
)

// Container is a box around a vertical stack of children.
type Container struct {
	BaseComponent
	layout  *Stack
	border  BorderVariant
	padding Spacing
	margin  Spacing
}

// NewContainer creates an unbordered container.
func NewContainer(children ...ui.Renderable) *Container {
	return &Container{
		BaseComponent: NewBaseComponent(),
		layout:        VStack(children...),
	}
}

// View renders with the default theme.
func (c *Container) View() string {
	return c.ViewWithContext(DefaultContext())
}

// ViewWithContext renders the children inside the border and padding. Width
// consumed by the frame is removed from the children's constraints.
func (c *Container) ViewWithContext(ctx RenderContext) string {
	style := c.ComputeStyle(ctx.Theme)
	if c.border != BorderVariantNone {
		style = style.BorderStyle(BorderForVariant(ctx.Theme, c.border))
		if _, unset := style.GetBorderTopForeground().(lipgloss.NoColor); unset {
			style = style.BorderForeground(ctx.Theme.Palette.Divider)
		}
	}
	style = c.padding.apply(style, true)
	style = c.margin.apply(style, false)

	inner := ctx
	if ctx.Constraints.MaxWidth > 0 {
		frame := style.GetHorizontalFrameSize()
		if w := ctx.Constraints.MaxWidth - frame; w > 0 {
			inner = ctx.WithConstraints(WithMaxWidth(w))
		}
	}

	var content string
	if len(c.layout.Children()) > 0 {
		content = c.layout.ViewWithContext(inner)
	}
	return style.Render(content)
}

// WithBorder sets the border shape.
func (c *Container) WithBorder(variant BorderVariant) *Container {
	c.border = variant
	return c
}

// WithPadding sets the inner spacing.
func (c *Container) WithPadding(padding Spacing) *Container {
	c.padding = padding
	return c
}

// WithMargin sets the outer spacing.
func (c *Container) WithMargin(margin Spacing) *Container {
	c.margin = margin
	return c
}

// WithStyle sets the lipgloss style directly.
func (c *Container) WithStyle(style lipgloss.Style) *Container {
	c.SetStyle(style)
	return c
}

// WithAppliers replaces the theme modifiers.
func (c *Container) WithAppliers(appliers ...StyleFunc) *Container {
	c.SetAppliers(appliers...)
	return c
}

// WithGap sets the gap between children.
func (c *Container) WithGap(gap int) *Container {
	c.layout.WithGap(gap)
	return c
}

// Add appends children.
func (c *Container) Add(children ...ui.Renderable) *Container {
	c.layout.Add(children...)
	return c
}

// Children returns the children.
func (c *Container) Children() []ui.Renderable {
	return c.layout.Children()
}
