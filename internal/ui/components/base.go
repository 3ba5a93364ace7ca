package components

import (
	"github.com/alexisbeaulieu97/cooler/internal/palette"
	"github.com/alexisbeaulieu97/cooler/internal/ui"
	"github.com/charmbracelet/lipgloss"
)

// BaseComponent carries the raw style and the theme strategy shared by every
// component. Embed it.
type BaseComponent struct {
	style    lipgloss.Style
	strategy StyleStrategy
}

// StyleStrategy turns a base style into a themed one.
type StyleStrategy interface {
	Apply(base lipgloss.Style, theme Theme) lipgloss.Style
}

// StyleFunc applies theme data to a lipgloss style.
type StyleFunc func(lipgloss.Style, Theme) lipgloss.Style

// CompositeStrategy applies its funcs in order.
type CompositeStrategy struct {
	funcs []StyleFunc
}

// Apply runs every func over base.
func (c CompositeStrategy) Apply(base lipgloss.Style, theme Theme) lipgloss.Style {
	for _, fn := range c.funcs {
		base = fn(base, theme)
	}
	return base
}

// NewCompositeStrategy creates a strategy from style funcs.
func NewCompositeStrategy(funcs ...StyleFunc) StyleStrategy {
	return CompositeStrategy{funcs: funcs}
}

// NewBaseComponent returns an unstyled base.
func NewBaseComponent() BaseComponent {
	return BaseComponent{
		style:    lipgloss.NewStyle(),
		strategy: CompositeStrategy{},
	}
}

// ComputeStyle resolves the component style against theme.
func (b *BaseComponent) ComputeStyle(theme Theme) lipgloss.Style {
	if b.strategy == nil {
		return b.style
	}
	return b.strategy.Apply(b.style, theme)
}

// SetStyle replaces the raw lipgloss style.
func (b *BaseComponent) SetStyle(style lipgloss.Style) {
	b.style = style
}

// SetStrategy replaces the style strategy.
func (b *BaseComponent) SetStrategy(strategy StyleStrategy) {
	b.strategy = strategy
}

// SetAppliers replaces the strategy with the given funcs.
func (b *BaseComponent) SetAppliers(appliers ...StyleFunc) {
	b.strategy = NewCompositeStrategy(appliers...)
}

// AddAppliers appends funcs after the current strategy.
func (b *BaseComponent) AddAppliers(appliers ...StyleFunc) {
	if existing, ok := b.strategy.(CompositeStrategy); ok {
		funcs := make([]StyleFunc, len(existing.funcs), len(existing.funcs)+len(appliers))
		copy(funcs, existing.funcs)
		b.strategy = CompositeStrategy{funcs: append(funcs, appliers...)}
		return
	}

	current := b.strategy
	b.strategy = NewCompositeStrategy(func(base lipgloss.Style, theme Theme) lipgloss.Style {
		if current != nil {
			base = current.Apply(base, theme)
		}
		for _, applier := range appliers {
			base = applier(base, theme)
		}
		return base
	})
}

// Spacing is padding or margin in top, right, bottom, left order.
type Spacing struct {
	Top    int
	Right  int
	Bottom int
	Left   int
}

// UniformSpacing uses size on all sides.
func UniformSpacing(size int) Spacing {
	return Spacing{Top: size, Right: size, Bottom: size, Left: size}
}

// SymmetricSpacing uses vertical for top/bottom and horizontal for left/right.
func SymmetricSpacing(vertical, horizontal int) Spacing {
	return Spacing{Top: vertical, Right: horizontal, Bottom: vertical, Left: horizontal}
}

// IsZero reports whether every side is zero.
func (s Spacing) IsZero() bool {
	return s.Top == 0 && s.Right == 0 && s.Bottom == 0 && s.Left == 0
}

// Horizontal returns left + right.
func (s Spacing) Horizontal() int {
	return s.Left + s.Right
}

func (s Spacing) apply(style lipgloss.Style, padding bool) lipgloss.Style {
	if s.IsZero() {
		return style
	}
	if padding {
		return style.Padding(s.Top, s.Right, s.Bottom, s.Left)
	}
	return style.Margin(s.Top, s.Right, s.Bottom, s.Left)
}

// Constraints bound a component's size. A negative maximum means unlimited.
type Constraints struct {
	MinWidth  int
	MaxWidth  int
	MinHeight int
	MaxHeight int
}

// Unconstrained returns constraints with no limits.
func Unconstrained() Constraints {
	return Constraints{MaxWidth: -1, MaxHeight: -1}
}

// WithMaxWidth limits width only.
func WithMaxWidth(maxWidth int) Constraints {
	return Constraints{MaxWidth: maxWidth, MaxHeight: -1}
}

// Constrain clamps a size into the constraints.
func (c Constraints) Constrain(width, height int) (int, int) {
	if c.MinWidth > 0 && width < c.MinWidth {
		width = c.MinWidth
	}
	if c.MaxWidth >= 0 && width > c.MaxWidth {
		width = c.MaxWidth
	}
	if c.MinHeight > 0 && height < c.MinHeight {
		height = c.MinHeight
	}
	if c.MaxHeight >= 0 && height > c.MaxHeight {
		height = c.MaxHeight
	}
	return width, height
}

// HasWidth reports whether any width bound is set.
func (c Constraints) HasWidth() bool {
	return c.MinWidth > 0 || c.MaxWidth >= 0
}

// RenderContext carries the theme and layout bounds down the component tree.
type RenderContext struct {
	Theme       Theme
	Constraints Constraints
	ParentWidth int

	backdrop    palette.Color
	hasBackdrop bool
}

// DefaultContext uses DefaultTheme and no constraints.
func DefaultContext() RenderContext {
	return RenderContext{
		Theme:       DefaultTheme(),
		Constraints: Unconstrained(),
	}
}

// WithTheme returns a copy using theme.
func (r RenderContext) WithTheme(theme Theme) RenderContext {
	r.Theme = theme
	return r
}

// WithConstraints returns a copy using c.
func (r RenderContext) WithConstraints(c Constraints) RenderContext {
	r.Constraints = c
	return r
}

// WithBackdrop returns a copy whose translucent fills are flattened over c
// instead of the palette background. Use it when components sit on a painted
// surface such as a gradient.
func (r RenderContext) WithBackdrop(c palette.Color) RenderContext {
	r.backdrop = c
	r.hasBackdrop = true
	return r
}

// Backdrop returns the color components are drawn over: the one set with
// WithBackdrop, or the palette background.
func (r RenderContext) Backdrop() palette.Color {
	if r.hasBackdrop {
		return r.backdrop
	}
	return r.Theme.Composite().Base().Background()
}

// availableWidth picks the tightest known width, or fallback.
func (r RenderContext) availableWidth(fallback int) int {
	if r.Constraints.MaxWidth > 0 {
		return r.Constraints.MaxWidth
	}
	if r.ParentWidth > 0 {
		return r.ParentWidth
	}
	return fallback
}

// ContextualRenderable is a component that honours a RenderContext.
type ContextualRenderable interface {
	ui.Renderable
	ViewWithContext(ctx RenderContext) string
}

// render draws child with ctx when it supports one.
func render(child ui.Renderable, ctx RenderContext) string {
	if child == nil {
		return ""
	}
	if contextual, ok := child.(ContextualRenderable); ok {
		return contextual.ViewWithContext(ctx)
	}
	return child.View()
}

// CrossAxisAlignment aligns children across a stack's direction.
type CrossAxisAlignment int

const (
	CrossStart CrossAxisAlignment = iota
	CrossCenter
	CrossEnd
)

func (c CrossAxisAlignment) position() lipgloss.Position {
	switch c {
	case CrossCenter:
		return lipgloss.Center
	case CrossEnd:
		return lipgloss.Right
	default:
		return lipgloss.Left
	}
}
