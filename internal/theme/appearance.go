// Package theme binds the active palette Composite to rendering code.
//
// There is no global mutable theme: callers either hold a Slot and pass it
// around, or thread the palette through a context.Context. In both cases the
// light preset is used when nothing has been bound.
package theme

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Appearance is the terminal's light or dark mode.
type Appearance int

const (
	AppearanceLight Appearance = iota
	AppearanceDark
)

func (a Appearance) String() string {
	if a == AppearanceDark {
		return "dark"
	}
	return "light"
}

// Toggle returns the opposite appearance.
func (a Appearance) Toggle() Appearance {
	if a == AppearanceDark {
		return AppearanceLight
	}
	return AppearanceDark
}

// ParseAppearance accepts "light" or "dark", case-insensitively.
func ParseAppearance(value string) (Appearance, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "light":
		return AppearanceLight, nil
	case "dark":
		return AppearanceDark, nil
	default:
		return AppearanceLight, fmt.Errorf("unknown appearance %q (want light or dark)", value)
	}
}

// DarkBackgroundFunc reports whether the terminal background is dark.
type DarkBackgroundFunc func() bool

// DetectAppearance queries the terminal background through lipgloss' default
// renderer.
func DetectAppearance() Appearance {
	return DetectAppearanceWith(lipgloss.HasDarkBackground)
}

// DetectAppearanceWith resolves the appearance using probe. A nil probe means
// light.
func DetectAppearanceWith(probe DarkBackgroundFunc) Appearance {
	if probe != nil && probe() {
		return AppearanceDark
	}
	return AppearanceLight
}
