package palette

// Composite bundles one base palette with the semantic, translucent and
// gradient palettes derived from it. It is the single value handed to
// rendering code and represents the active theme; it is never mutated after
// construction.
type Composite struct {
	base        *Base
	alpha       float64
	semantic    *Semantic
	translucent *Translucent
	gradients   *Gradients
}

// Option configures NewComposite.
type Option func(*compositeOptions)

type compositeOptions struct {
	alpha float64
}

// WithAlpha sets the translucency factor (default DefaultAlpha).
func WithAlpha(alpha float64) Option {
	return func(o *compositeOptions) {
		o.alpha = alpha
	}
}

// NewComposite derives every sub-palette from base. All of them reference the
// same *Base. A nil base falls back to the light preset.
func NewComposite(base *Base, opts ...Option) *Composite {
	options := compositeOptions{alpha: DefaultAlpha}
	for _, opt := range opts {
		opt(&options)
	}
	if base == nil {
		base = Light()
	}

	return &Composite{
		base:        base,
		alpha:       options.alpha,
		semantic:    NewSemantic(base),
		translucent: NewTranslucent(base, options.alpha),
		gradients:   NewGradients(base),
	}
}

func (c *Composite) Base() *Base               { return c.base }
func (c *Composite) Alpha() float64            { return c.alpha }
func (c *Composite) Semantic() *Semantic       { return c.semantic }
func (c *Composite) Translucent() *Translucent { return c.translucent }
func (c *Composite) Gradients() *Gradients     { return c.gradients }
