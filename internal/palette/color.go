package palette

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"

	coolererrors "github.com/alexisbeaulieu97/cooler/pkg/errors"
)

// lightThreshold is the perceived brightness above which a color counts as light.
const lightThreshold = 0.7

var errHexLength = errors.New("expected 3, 6 or 8 hex digits")

// Color is an RGBA color with straight (non-premultiplied) channels in [0, 1].
// The zero value is fully transparent black.
type Color struct {
	R, G, B, A float64
}

// Well-known colors.
var (
	White = Color{R: 1, G: 1, B: 1, A: 1}
	Black = Color{A: 1}
	Clear = Color{}
	// Gray matches the neutral system gray used for disabled content and dividers.
	Gray = Color{R: 142.0 / 255, G: 142.0 / 255, B: 147.0 / 255, A: 1}
)

// RGB returns an opaque color.
func RGB(r, g, b float64) Color {
	return Color{R: r, G: g, B: b, A: 1}
}

// RGBA returns a color with the given channels.
func RGBA(r, g, b, a float64) Color {
	return Color{R: r, G: g, B: b, A: a}
}

// Hex parses #RGB, #RRGGBB or #RRGGBBAA. The leading '#' is optional.
func Hex(value string) (Color, error) {
	digits := strings.TrimPrefix(strings.TrimSpace(value), "#")

	alpha := 1.0
	switch len(digits) {
	case 3, 6:
	case 8:
		a, err := strconv.ParseUint(digits[6:], 16, 8)
		if err != nil {
			return Color{}, coolererrors.NewColorError(value, err)
		}
		alpha = float64(a) / 255
		digits = digits[:6]
	default:
		return Color{}, coolererrors.NewColorError(value, errHexLength)
	}

	// colorful.Hex relies on Sscanf, which accepts a leading sign; reject it up front.
	if _, err := strconv.ParseUint(digits, 16, 32); err != nil {
		return Color{}, coolererrors.NewColorError(value, err)
	}

	c, err := colorful.Hex("#" + digits)
	if err != nil {
		return Color{}, coolererrors.NewColorError(value, err)
	}
	return Color{R: c.R, G: c.G, B: c.B, A: alpha}, nil
}

// MustHex is like Hex but panics on malformed input. Intended for literals.
func MustHex(value string) Color {
	c, err := Hex(value)
	if err != nil {
		panic(err)
	}
	return c
}

// Opacity scales the alpha channel by factor. The factor is clamped to [0, 1];
// NaN counts as 0.
func (c Color) Opacity(factor float64) Color {
	c.A = clamp01(c.A) * clamp01(factor)
	return c
}

// Brightness returns the perceived brightness 0.299·R + 0.587·G + 0.114·B.
// Alpha is ignored.
func (c Color) Brightness() float64 {
	return 0.299*c.R + 0.587*c.G + 0.114*c.B
}

// IsLight reports whether the perceived brightness is strictly above 0.7.
func (c Color) IsLight() bool {
	return isLightBrightness(c.Brightness())
}

func isLightBrightness(brightness float64) bool {
	return brightness > lightThreshold
}

// Over composites c on top of bg using source-over blending.
func (c Color) Over(bg Color) Color {
	sa := clamp01(c.A)
	ba := clamp01(bg.A)
	outA := sa + ba*(1-sa)
	if outA == 0 {
		return Clear
	}
	blend := func(s, b float64) float64 {
		return (s*sa + b*ba*(1-sa)) / outA
	}
	return Color{
		R: blend(c.R, bg.R),
		G: blend(c.G, bg.G),
		B: blend(c.B, bg.B),
		A: outA,
	}
}

// Mix interpolates linearly from c to other; t is clamped to [0, 1].
func (c Color) Mix(other Color, t float64) Color {
	t = clamp01(t)
	mixed := c.colorful().BlendRgb(other.colorful(), t)
	return Color{R: mixed.R, G: mixed.G, B: mixed.B, A: c.A + (other.A-c.A)*t}
}

// Opaque returns c with alpha forced to 1.
func (c Color) Opaque() Color {
	c.A = 1
	return c
}

// Hex formats the color as #rrggbb, appending an alpha byte when the color is
// not fully opaque.
func (c Color) Hex() string {
	rgb := c.colorful().Clamped().Hex()
	a := clamp01(c.A)
	if a >= 1 {
		return rgb
	}
	return fmt.Sprintf("%s%02x", rgb, uint8(math.Round(a*255)))
}

func (c Color) String() string {
	return c.Hex()
}

// Equal reports whether two colors match within a small tolerance.
func (c Color) Equal(other Color) bool {
	const epsilon = 1e-9
	return math.Abs(c.R-other.R) < epsilon &&
		math.Abs(c.G-other.G) < epsilon &&
		math.Abs(c.B-other.B) < epsilon &&
		math.Abs(c.A-other.A) < epsilon
}

func (c Color) colorful() colorful.Color {
	return colorful.Color{R: c.R, G: c.G, B: c.B}
}

func clamp01(v float64) float64 {
	switch {
	case math.IsNaN(v), v <= 0:
		return 0
	case v >= 1:
		return 1
	default:
		return v
	}
}
