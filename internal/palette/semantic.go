package palette

// textOpacity is applied to every text-on-background color.
const textOpacity = 0.9

// dividerOpacity is applied to the neutral gray used for dividers.
const dividerOpacity = 0.5

// Semantic maps base colors to roles: text drawn on each kind of background,
// plus neutral disabled and divider colors. Every accessor is computed from
// the referenced Base on each call.
type Semantic struct {
	base *Base
}

// NewSemantic returns a semantic palette over base. The base is referenced,
// not copied.
func NewSemantic(base *Base) *Semantic {
	return &Semantic{base: base}
}

// Base returns the palette the semantic colors derive from.
func (s *Semantic) Base() *Base { return s.base }

// TextOnPrimaryBackground is for labels on primary-filled elements.
func (s *Semantic) TextOnPrimaryBackground() Color {
	return s.base.Primary().Opacity(textOpacity)
}

// TextOnSecondaryBackground is for labels on secondary-filled elements.
func (s *Semantic) TextOnSecondaryBackground() Color {
	return s.base.Secondary().Opacity(textOpacity)
}

// TextOnSurfaceBackground is for content inside cards, panels and inputs.
func (s *Semantic) TextOnSurfaceBackground() Color {
	return s.base.Surface().Opacity(textOpacity)
}

// TextOnMainBackground is for body text drawn directly on the screen
// background. It derives from the primary color, not from background.
func (s *Semantic) TextOnMainBackground() Color {
	return s.base.Primary().Opacity(textOpacity)
}

// TextOnHighlightBackground is for text inside focused or selected elements.
func (s *Semantic) TextOnHighlightBackground() Color {
	return s.base.Highlight().Opacity(textOpacity)
}

// Disabled is an opaque neutral gray, independent of the base palette.
func (s *Semantic) Disabled() Color {
	return Gray
}

// Divider is the neutral gray at half opacity, independent of the base palette.
func (s *Semantic) Divider() Color {
	return Gray.Opacity(dividerOpacity)
}
