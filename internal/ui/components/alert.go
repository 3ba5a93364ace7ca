package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/wordwrap"
)

// AlertVariant picks the alert color and icon.
type AlertVariant int

const (
	AlertVariantInfo AlertVariant = iota
	AlertVariantSuccess
	AlertVariantWarning
	AlertVariantError
)

var alertIcons = map[AlertVariant]string{
	AlertVariantInfo:    "ℹ",
	AlertVariantSuccess: "✓",
	AlertVariantWarning: "⚠",
	AlertVariantError:   "✗",
}

// Alert is a bordered message on the translucent variant color.
type Alert struct {
	BaseComponent
	title   string
	message string
	variant AlertVariant
	width   int
}

// NewAlert creates an info alert.
func NewAlert(message string) *Alert {
	return &Alert{
		BaseComponent: NewBaseComponent(),
		message:       message,
	}
}

// View renders with the default theme.
func (a *Alert) View() string {
	return a.ViewWithContext(DefaultContext())
}

// ViewWithContext renders the alert.
func (a *Alert) ViewWithContext(ctx RenderContext) string {
	theme := ctx.Theme
	style := a.ComputeStyle(theme).Border(theme.Borders.Rounded).Padding(0, 1)
	if strategy := theme.Variants.Get(a.variant); strategy != nil {
		style = strategy.Apply(style, theme)
	}

	width := a.width
	if width <= 0 {
		width = ctx.availableWidth(0)
	}
	message := alertIcons[a.variant] + " " + a.message
	if width > 4 {
		style = style.Width(width - 2)
		message = wordwrap.String(message, width-4)
	}

	lines := make([]string, 0, 2)
	if a.title != "" {
		lines = append(lines, lipgloss.NewStyle().Bold(true).Render(a.title))
	}
	lines = append(lines, message)
	return style.Render(strings.Join(lines, "\n"))
}

// WithVariant sets the variant.
func (a *Alert) WithVariant(variant AlertVariant) *Alert {
	a.variant = variant
	return a
}

// WithTitle adds a bold first line.
func (a *Alert) WithTitle(title string) *Alert {
	a.title = title
	return a
}

// WithWidth fixes the outer width.
func (a *Alert) WithWidth(width int) *Alert {
	a.width = width
	return a
}

// WithAppliers adds theme modifiers.
func (a *Alert) WithAppliers(appliers ...StyleFunc) *Alert {
	a.AddAppliers(appliers...)
	return a
}

// Message returns the alert message.
func (a *Alert) Message() string {
	return a.message
}

// SuccessAlert creates a success alert.
func SuccessAlert(message string) *Alert {
	return NewAlert(message).WithVariant(AlertVariantSuccess)
}

// WarningAlert creates a warning alert.
func WarningAlert(message string) *Alert {
	return NewAlert(message).WithVariant(AlertVariantWarning)
}

// ErrorAlert creates an error alert.
func ErrorAlert(message string) *Alert {
	return NewAlert(message).WithVariant(AlertVariantError)
}
