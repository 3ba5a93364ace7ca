package demo

import (
	"github.com/alexisbeaulieu97/cooler/internal/palette"
	"github.com/alexisbeaulieu97/cooler/internal/ui"
	"github.com/alexisbeaulieu97/cooler/internal/ui/components"
)

// Screen is one of the demo pages.
type Screen int

const (
	ScreenBase Screen = iota
	ScreenGradient
	ScreenTranslucent
	ScreenSemantic
)

var screenNames = [...]string{
	ScreenBase:        "Base Palette",
	ScreenGradient:    "Gradient Palette",
	ScreenTranslucent: "Translucent Palette",
	ScreenSemantic:    "Semantic Palette",
}

// Screens lists every page in tab order.
func Screens() []Screen {
	return []Screen{ScreenBase, ScreenGradient, ScreenTranslucent, ScreenSemantic}
}

func (s Screen) String() string {
	if s < 0 || int(s) >= len(screenNames) {
		return "unknown"
	}
	return screenNames[s]
}

// Next returns the following page, wrapping around.
func (s Screen) Next() Screen {
	return Screen((int(s) + 1) % len(screenNames))
}

// Prev returns the preceding page, wrapping around.
func (s Screen) Prev() Screen {
	return Screen((int(s) + len(screenNames) - 1) % len(screenNames))
}

// swatch is a named color offered for inspection and copying.
type swatch struct {
	label string
	color palette.Color
}

// page is the static content of a screen under one palette.
type page struct {
	title    string
	buttons  []ui.Renderable
	cards    []ui.Renderable
	swatches []swatch
}

func buildPage(s Screen, c *palette.Composite, width int) page {
	switch s {
	case ScreenGradient:
		return gradientPage(c, width)
	case ScreenTranslucent:
		return translucentPage(c, width)
	case ScreenSemantic:
		return semanticPage(c, width)
	default:
		return basePage(c, width)
	}
}

func basePage(c *palette.Composite, width int) page {
	base := c.Base()
	p := page{
		title: "Base Palette Demo",
		buttons: []ui.Renderable{
			components.PrimaryButton("Primary Button").WithWidth(width),
			components.SecondaryButton("Secondary Button").WithWidth(width),
			components.NewButton("Highlight Button").WithVariant(components.ButtonVariantHighlight).WithWidth(width),
		},
		cards: []ui.Renderable{
			components.NewCard("Surface Card",
				"This card uses the surface color. Great for elevated components like info panels or pop-ups.").
				WithWidth(width),
			components.NewCard("Highlight Card",
				"Use highlight color for selected states, buttons, or important notices.").
				WithFill(palette.RoleHighlight).
				WithTextColor(palette.White).
				WithWidth(width),
			components.NewCard("Long Text Card",
				"This card contains a longer block of text to show how wrapping behaves inside a card. "+
					"You can use this for news feeds, notifications, or article previews.").
				WithWidth(width),
			components.NewImageCard("Image Card",
				"Illustrative card with a picture in the background.").
				WithWidth(width),
			components.NewGradientCard("Gradient Card",
				"Primary → Secondary gradient background.",
				c.Gradients().PrimaryGradient()).
				WithWidth(width),
		},
	}
	for _, role := range palette.Roles() {
		p.swatches = append(p.swatches, swatch{label: role.String(), color: base.Color(role)})
	}
	return p
}

func gradientPage(c *palette.Composite, width int) page {
	g := c.Gradients()
	base := c.Base()
	custom := g.Gradient(base.Warning(), base.Error(),
		palette.WithStart(palette.TopLeading),
		palette.WithEnd(palette.BottomTrailing))

	p := page{
		title: "Gradient Palette Demo",
		buttons: []ui.Renderable{
			components.GradientButton("Primary Gradient Button").WithWidth(width),
			components.NewButton("Success Gradient Button").WithGradient(g.SuccessGradient()).WithWidth(width),
			components.NewGradientBar(g.HighlightGradient()).WithSize(width, 1).WithLabel("highlight"),
		},
		cards: []ui.Renderable{
			components.NewGradientCard("Primary → Secondary Gradient",
				"This card uses the primary gradient from your palette.",
				g.PrimaryGradient()).WithWidth(width),
			components.NewGradientCard("Success Gradient",
				"This card uses the success gradient.",
				g.SuccessGradient()).WithWidth(width),
			components.NewGradientCard("Custom Gradient",
				"You can also create custom gradients on the fly.",
				custom).WithWidth(width),
			components.NewImageCard("Image Card",
				"This card has an image background with a gradient overlay to make text readable.").
				WithGradient(g.PrimaryGradient()).
				WithWidth(width),
		},
	}

	named := []struct {
		name     string
		gradient palette.LinearGradient
	}{
		{"primary gradient", g.PrimaryGradient()},
		{"success gradient", g.SuccessGradient()},
		{"highlight gradient", g.HighlightGradient()},
		{"custom gradient", custom},
	}
	for _, n := range named {
		stops := n.gradient.Colors()
		p.swatches = append(p.swatches,
			swatch{label: n.name + " start", color: stops[0]},
			swatch{label: n.name + " end", color: stops[len(stops)-1]},
		)
	}
	return p
}

func translucentPage(c *palette.Composite, width int) page {
	t := c.Translucent()
	card := func(title string, role palette.Role) ui.Renderable {
		return components.NewCard(title, "This card uses translucent "+role.String()+" color.").
			WithFill(role).
			WithTranslucent(true).
			WithTextColor(palette.White).
			WithWidth(width)
	}
	return page{
		title: "Translucent Palette Demo",
		buttons: []ui.Renderable{
			components.TranslucentButton("Primary Translucent Button", components.ButtonVariantPrimary).WithWidth(width),
			components.TranslucentButton("Secondary Translucent Button", components.ButtonVariantSecondary).WithWidth(width),
			components.TranslucentButton("Highlight Translucent Button", components.ButtonVariantHighlight).WithWidth(width),
		},
		cards: []ui.Renderable{
			card("Primary Card", palette.RolePrimary),
			card("Secondary Card", palette.RoleSecondary),
			card("Surface Card", palette.RoleSurface),
			card("Background Card", palette.RoleBackground),
		},
		swatches: []swatch{
			{label: "translucent primary", color: t.Primary()},
			{label: "translucent secondary", color: t.Secondary()},
			{label: "translucent background", color: t.Background()},
			{label: "translucent surface", color: t.Surface()},
			{label: "translucent highlight", color: t.Highlight()},
		},
	}
}

func semanticPage(c *palette.Composite, width int) page {
	sem := c.Semantic()
	button := func(label string, variant components.ButtonVariant, text palette.Color) ui.Renderable {
		return components.NewButton(label).WithVariant(variant).WithTextColor(text).WithWidth(width)
	}
	card := func(title, description string, fill palette.Role, text palette.Color) ui.Renderable {
		return components.NewCard(title, description).WithFill(fill).WithTextColor(text).WithWidth(width)
	}
	return page{
		title: "Semantic Palette Demo",
		buttons: []ui.Renderable{
			button("Primary Text on Primary Background", components.ButtonVariantPrimary, sem.TextOnPrimaryBackground()),
			button("Secondary Text on Secondary Background", components.ButtonVariantSecondary, sem.TextOnSecondaryBackground()),
			components.NewButton("Disabled Button").WithDisabled(true).WithWidth(width),
		},
		cards: []ui.Renderable{
			card("Primary Background Card", "Text uses the text-on-primary color.",
				palette.RolePrimary, sem.TextOnPrimaryBackground()),
			card("Secondary Background Card", "Text uses the text-on-secondary color.",
				palette.RoleSecondary, sem.TextOnSecondaryBackground()),
			card("Surface Background Card", "Text uses the text-on-surface color.",
				palette.RoleSurface, sem.TextOnSurfaceBackground()),
			card("Main Background Card", "Text uses the text-on-main-background color.",
				palette.RoleBackground, sem.TextOnMainBackground()),
			card("Divider / Disabled Text Example", "Divider and disabled text are demonstrated below.",
				palette.RoleSurface, sem.Divider()),
		},
		swatches: []swatch{
			{label: "text on primary", color: sem.TextOnPrimaryBackground()},
			{label: "text on secondary", color: sem.TextOnSecondaryBackground()},
			{label: "text on surface", color: sem.TextOnSurfaceBackground()},
			{label: "text on main background", color: sem.TextOnMainBackground()},
			{label: "text on highlight", color: sem.TextOnHighlightBackground()},
			{label: "disabled", color: sem.Disabled()},
			{label: "divider", color: sem.Divider()},
		},
	}
}
