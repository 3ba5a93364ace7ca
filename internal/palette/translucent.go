package palette

// DefaultAlpha is the opacity applied to translucent colors when none is given.
const DefaultAlpha = 0.7

// Translucent exposes alpha-scaled versions of the base colors, all sharing a
// single alpha factor.
type Translucent struct {
	base  *Base
	alpha float64
}

// NewTranslucent returns a translucent palette over base. The alpha is stored
// as given; out-of-range values are clamped by Color.Opacity when applied.
func NewTranslucent(base *Base, alpha float64) *Translucent {
	return &Translucent{base: base, alpha: alpha}
}

// Base returns the palette the translucent colors derive from.
func (t *Translucent) Base() *Base { return t.base }

// Alpha returns the shared opacity factor.
func (t *Translucent) Alpha() float64 { return t.alpha }

func (t *Translucent) Primary() Color    { return t.base.Primary().Opacity(t.alpha) }
func (t *Translucent) Secondary() Color  { return t.base.Secondary().Opacity(t.alpha) }
func (t *Translucent) Background() Color { return t.base.Background().Opacity(t.alpha) }
func (t *Translucent) Surface() Color    { return t.base.Surface().Opacity(t.alpha) }
func (t *Translucent) Highlight() Color  { return t.base.Highlight().Opacity(t.alpha) }
