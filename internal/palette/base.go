// Package palette defines the color model for cooler themes: a base palette of
// eight named colors and the semantic, translucent and gradient palettes
// derived from it, bundled together as a Composite.
//
// Every derived palette holds a pointer to the Base it was built from rather
// than a copy, so all views of a theme agree on the underlying colors. A Base
// has no setters; changing theme means building a new Composite.
package palette

import (
	"fmt"
	"strings"
	"sync"
)

// Role names one of the eight base colors.
type Role int

const (
	RolePrimary Role = iota
	RoleSecondary
	RoleBackground
	RoleSurface
	RoleSuccess
	RoleWarning
	RoleError
	RoleHighlight
)

var roleNames = [...]string{
	RolePrimary:    "primary",
	RoleSecondary:  "secondary",
	RoleBackground: "background",
	RoleSurface:    "surface",
	RoleSuccess:    "success",
	RoleWarning:    "warning",
	RoleError:      "error",
	RoleHighlight:  "highlight",
}

// Roles returns every role in declaration order.
func Roles() []Role {
	return []Role{
		RolePrimary,
		RoleSecondary,
		RoleBackground,
		RoleSurface,
		RoleSuccess,
		RoleWarning,
		RoleError,
		RoleHighlight,
	}
}

func (r Role) String() string {
	if r < 0 || int(r) >= len(roleNames) {
		return fmt.Sprintf("role(%d)", int(r))
	}
	return roleNames[r]
}

// ParseRole resolves a role by its case-insensitive name.
func ParseRole(name string) (Role, error) {
	needle := strings.ToLower(strings.TrimSpace(name))
	for i, candidate := range roleNames {
		if candidate == needle {
			return Role(i), nil
		}
	}
	return 0, fmt.Errorf("unknown palette role %q (want one of %s)", name, strings.Join(roleNames[:], ", "))
}

// Colors lists the eight colors of a base palette. It is the construction
// input for NewBase.
type Colors struct {
	Primary    Color
	Secondary  Color
	Background Color
	Surface    Color
	Success    Color
	Warning    Color
	Error      Color
	Highlight  Color
}

// Base is the source-of-truth color record for one theme. It is immutable
// once constructed.
type Base struct {
	colors Colors
}

// NewBase builds a base palette from eight explicit colors. Any RGBA value is
// accepted, including translucent ones.
func NewBase(colors Colors) *Base {
	return &Base{colors: colors}
}

// Primary is the main accent for primary actions and active states.
func (b *Base) Primary() Color { return b.colors.Primary }

// Secondary complements the primary accent on supporting elements.
func (b *Base) Secondary() Color { return b.colors.Secondary }

// Background fills screens and large canvas areas.
func (b *Base) Background() Color { return b.colors.Background }

// Surface fills cards, panels, inputs and other content containers.
func (b *Base) Surface() Color { return b.colors.Surface }

// Success marks confirmations and completed states.
func (b *Base) Success() Color { return b.colors.Success }

// Warning marks cautionary states.
func (b *Base) Warning() Color { return b.colors.Warning }

// Error marks failures and invalid input.
func (b *Base) Error() Color { return b.colors.Error }

// Highlight marks focused or selected interactive elements.
func (b *Base) Highlight() Color { return b.colors.Highlight }

// Colors returns a copy of the eight colors.
func (b *Base) Colors() Colors { return b.colors }

// Color returns the color assigned to role. Unknown roles yield Clear.
func (b *Base) Color(role Role) Color {
	switch role {
	case RolePrimary:
		return b.colors.Primary
	case RoleSecondary:
		return b.colors.Secondary
	case RoleBackground:
		return b.colors.Background
	case RoleSurface:
		return b.colors.Surface
	case RoleSuccess:
		return b.colors.Success
	case RoleWarning:
		return b.colors.Warning
	case RoleError:
		return b.colors.Error
	case RoleHighlight:
		return b.colors.Highlight
	default:
		return Clear
	}
}

var (
	lightPreset = sync.OnceValue(func() *Base {
		primary := MustHex("#3B82F6")
		return NewBase(Colors{
			Primary:    primary,
			Secondary:  MustHex("#9333EA"),
			Background: MustHex("#F9FAFB"),
			Surface:    White,
			Success:    MustHex("#10B981"),
			Warning:    MustHex("#F59E0B"),
			Error:      MustHex("#EF4444"),
			Highlight:  primary.Opacity(0.5),
		})
	})

	darkPreset = sync.OnceValue(func() *Base {
		primary := MustHex("#60A5FA")
		return NewBase(Colors{
			Primary:    primary,
			Secondary:  MustHex("#A855F7"),
			Background: MustHex("#111827"),
			Surface:    MustHex("#1F2937"),
			Success:    MustHex("#34D399"),
			Warning:    MustHex("#FBBF24"),
			Error:      MustHex("#F87171"),
			Highlight:  primary.Opacity(0.5),
		})
	})
)

// Light returns the built-in light palette. It is built on first use and the
// same instance is returned thereafter.
func Light() *Base {
	return lightPreset()
}

// Dark returns the built-in dark palette. It is built on first use and the
// same instance is returned thereafter.
func Dark() *Base {
	return darkPreset()
}
