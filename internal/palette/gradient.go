package palette

import "sort"

// gradientStartOpacity is the faded end of the success and highlight gradients.
const gradientStartOpacity = 0.7

// Point is an anchor in unit space: (0,0) is the top-leading corner and (1,1)
// the bottom-trailing one.
type Point struct {
	X, Y float64
}

// Named anchor points.
var (
	TopLeading     = Point{X: 0, Y: 0}
	Top            = Point{X: 0.5, Y: 0}
	TopTrailing    = Point{X: 1, Y: 0}
	Leading        = Point{X: 0, Y: 0.5}
	Center         = Point{X: 0.5, Y: 0.5}
	Trailing       = Point{X: 1, Y: 0.5}
	BottomLeading  = Point{X: 0, Y: 1}
	Bottom         = Point{X: 0.5, Y: 1}
	BottomTrailing = Point{X: 1, Y: 1}
)

// Stop is a color pinned at a location in [0, 1] along the gradient axis.
type Stop struct {
	Color    Color
	Location float64
}

// LinearGradient describes a linear interpolation between color stops along
// the axis from Start to End. It is a description, not rendered pixels.
type LinearGradient struct {
	Stops []Stop
	Start Point
	End   Point
}

// NewLinearGradient spaces colors evenly between start and end.
func NewLinearGradient(colors []Color, start, end Point) LinearGradient {
	stops := make([]Stop, len(colors))
	for i, c := range colors {
		location := 0.0
		if len(colors) > 1 {
			location = float64(i) / float64(len(colors)-1)
		}
		stops[i] = Stop{Color: c, Location: location}
	}
	return LinearGradient{Stops: stops, Start: start, End: end}
}

// Colors returns the stop colors in order.
func (g LinearGradient) Colors() []Color {
	colors := make([]Color, len(g.Stops))
	for i, stop := range g.Stops {
		colors[i] = stop.Color
	}
	return colors
}

// At returns the interpolated color at parameter t along the axis.
func (g LinearGradient) At(t float64) Color {
	switch len(g.Stops) {
	case 0:
		return Clear
	case 1:
		return g.Stops[0].Color
	}

	t = clamp01(t)
	stops := g.sortedStops()
	if t <= stops[0].Location {
		return stops[0].Color
	}
	for i := 1; i < len(stops); i++ {
		prev, next := stops[i-1], stops[i]
		if t > next.Location {
			continue
		}
		if t == next.Location {
			return next.Color
		}
		span := next.Location - prev.Location
		if span <= 0 {
			return next.Color
		}
		return prev.Color.Mix(next.Color, (t-prev.Location)/span)
	}
	return stops[len(stops)-1].Color
}

// Sample returns n colors evenly spaced from the start to the end of the axis.
func (g LinearGradient) Sample(n int) []Color {
	if n <= 0 {
		return nil
	}
	if n == 1 {
		return []Color{g.At(0)}
	}
	samples := make([]Color, n)
	for i := range samples {
		samples[i] = g.At(float64(i) / float64(n-1))
	}
	return samples
}

// Param projects p onto the Start→End axis and returns its position, clamped
// to [0, 1]. Degenerate gradients, where Start equals End, always yield 0.
func (g LinearGradient) Param(p Point) float64 {
	dx := g.End.X - g.Start.X
	dy := g.End.Y - g.Start.Y
	length := dx*dx + dy*dy
	if length == 0 {
		return 0
	}
	return clamp01(((p.X-g.Start.X)*dx + (p.Y-g.Start.Y)*dy) / length)
}

// Opacity returns a copy with every stop scaled by factor.
func (g LinearGradient) Opacity(factor float64) LinearGradient {
	stops := make([]Stop, len(g.Stops))
	for i, stop := range g.Stops {
		stops[i] = Stop{Color: stop.Color.Opacity(factor), Location: stop.Location}
	}
	return LinearGradient{Stops: stops, Start: g.Start, End: g.End}
}

// Reversed returns the gradient rotated by 180 degrees.
func (g LinearGradient) Reversed() LinearGradient {
	stops := make([]Stop, len(g.Stops))
	copy(stops, g.Stops)
	return LinearGradient{Stops: stops, Start: g.End, End: g.Start}
}

func (g LinearGradient) sortedStops() []Stop {
	stops := make([]Stop, len(g.Stops))
	copy(stops, g.Stops)
	sort.SliceStable(stops, func(i, j int) bool {
		return stops[i].Location < stops[j].Location
	})
	return stops
}

// Gradients derives named two-stop gradients from a base palette.
type Gradients struct {
	base *Base
}

// NewGradients returns a gradient palette over base. The base is referenced,
// not copied.
func NewGradients(base *Base) *Gradients {
	return &Gradients{base: base}
}

// Base returns the palette the gradients derive from.
func (g *Gradients) Base() *Base { return g.base }

// PrimaryGradient runs from primary to secondary, corner to opposite corner.
func (g *Gradients) PrimaryGradient() LinearGradient {
	return NewLinearGradient(
		[]Color{g.base.Primary(), g.base.Secondary()},
		TopLeading,
		BottomTrailing,
	)
}

// SuccessGradient fades the success color in from 70% opacity, top to bottom.
func (g *Gradients) SuccessGradient() LinearGradient {
	success := g.base.Success()
	return NewLinearGradient(
		[]Color{success.Opacity(gradientStartOpacity), success},
		Top,
		Bottom,
	)
}

// HighlightGradient fades the highlight color in from 70% opacity, top to bottom.
func (g *Gradients) HighlightGradient() LinearGradient {
	highlight := g.base.Highlight()
	return NewLinearGradient(
		[]Color{highlight.Opacity(gradientStartOpacity), highlight},
		Top,
		Bottom,
	)
}

// GradientOption customizes a custom gradient.
type GradientOption func(*LinearGradient)

// WithStart overrides the start anchor (default Top).
func WithStart(p Point) GradientOption {
	return func(g *LinearGradient) { g.Start = p }
}

// WithEnd overrides the end anchor (default Bottom).
func WithEnd(p Point) GradientOption {
	return func(g *LinearGradient) { g.End = p }
}

// Gradient builds an ad hoc two-stop gradient from two arbitrary colors.
func (g *Gradients) Gradient(from, to Color, opts ...GradientOption) LinearGradient {
	gradient := NewLinearGradient([]Color{from, to}, Top, Bottom)
	for _, opt := range opts {
		opt(&gradient)
	}
	return gradient
}
