package demo

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/cooler/internal/ui"
	"github.com/alexisbeaulieu97/cooler/internal/ui/components"
)

var fieldTitles = []string{"Username", "Email"}

// View implements tea.Model.
func (m Model) View() string {
	ctx := m.renderContext()
	p := m.theme.Palette

	title := components.TitleText("Cooler Palette Demos").ViewWithContext(ctx)
	divider := components.NewDivider().WithWidth(m.contentWidth()).ViewWithContext(ctx)

	status := m.status
	if status == "" {
		status = "Appearance: " + m.binding.Appearance().String()
	}
	footer := lipgloss.NewStyle().Foreground(p.Disabled).Render(status)

	body := lipgloss.JoinVertical(lipgloss.Left,
		title,
		m.tabs(ctx),
		divider,
		m.viewport.View(),
		footer,
		m.help.View(m.keys),
	)
	return lipgloss.NewStyle().
		Background(p.Background.Base).
		Foreground(p.Background.Text).
		Width(max(m.width, m.contentWidth())).
		Render(body)
}

func (m Model) renderContext() components.RenderContext {
	return components.DefaultContext().
		WithTheme(m.theme).
		WithConstraints(components.WithMaxWidth(m.contentWidth()))
}

func (m Model) tabs(ctx components.RenderContext) string {
	tabs := make([]ui.Renderable, 0, len(Screens()))
	for _, s := range Screens() {
		tab := components.NewText(s.String())
		if s == m.screen {
			tab.WithAppliers(components.Background(components.SlotHighlight), components.PaddingX(components.SpacingSizeExtraSmall))
		} else {
			tab.WithAppliers(components.Disabled(), components.PaddingX(components.SpacingSizeExtraSmall))
		}
		tabs = append(tabs, tab)
	}
	return components.HStack(tabs...).ViewWithContext(ctx.WithConstraints(components.Unconstrained()))
}

// backdrop returns the surface painted behind the page body: the primary
// gradient turned around on the gradient and translucent screens, nothing on
// the others.
func (m Model) backdrop() (components.Backdrop, bool) {
	switch m.screen {
	case ScreenGradient, ScreenTranslucent:
		c := m.binding.Slot().Load()
		return components.Backdrop{
			Gradient: c.Gradients().PrimaryGradient().Reversed(),
			Base:     c.Base().Background(),
		}, true
	default:
		return components.Backdrop{}, false
	}
}

func (m Model) fieldVariant() components.FieldVariant {
	switch m.screen {
	case ScreenSemantic:
		return components.FieldVariantSemantic
	case ScreenTranslucent:
		return components.FieldVariantTranslucent
	default:
		return components.FieldVariantDefault
	}
}

// section is one block of the page body.
type section struct {
	render  func(ctx components.RenderContext) string
	focused bool
}

// refresh re-renders the page into the viewport and scrolls the focused
// element into view.
func (m *Model) refresh() {
	width := m.contentWidth()
	ctx := m.renderContext()
	pg := buildPage(m.screen, m.binding.Slot().Load(), width)
	m.swatches = pg.swatches

	var sections []section
	add := func(focused bool, render func(ctx components.RenderContext) string) {
		sections = append(sections, section{render: render, focused: focused})
	}
	heading := func(text string) {
		add(false, func(components.RenderContext) string { return "" })
		add(false, components.SubtitleText(text).ViewWithContext)
	}

	add(false, components.TitleText(pg.title).ViewWithContext)

	heading("Fields")
	for i, f := range m.fields {
		field := components.NewTextField(fieldTitles[i], f.Placeholder).
			WithInput(f).
			WithVariant(m.fieldVariant()).
			WithFocus(i == m.focus).
			WithWidth(width)
		add(i == m.focus, field.ViewWithContext)
	}

	heading("Colors")
	for i, s := range pg.swatches {
		selected := i == m.focus-len(m.fields)
		add(selected, components.NewSwatch(s.label, s.color).WithSelected(selected).ViewWithContext)
	}

	heading("Buttons")
	for _, b := range pg.buttons {
		add(false, func(ctx components.RenderContext) string { return renderWith(b, ctx) })
	}

	heading("Cards")
	for _, c := range pg.cards {
		add(false, func(ctx components.RenderContext) string { return renderWith(c, ctx) })
	}

	views := make([]string, len(sections))
	starts := make([]int, len(sections))
	line, focusLine := 0, -1
	for i, sec := range sections {
		views[i] = sec.render(ctx)
		starts[i] = line
		if sec.focused {
			focusLine = line
		}
		line += lipgloss.Height(views[i])
	}

	content := strings.Join(views, "\n")
	if backdrop, ok := m.backdrop(); ok && line > 0 {
		// Translucent fills flatten over the backdrop color behind their
		// middle row.
		for i, sec := range sections {
			mid := float64(starts[i]) + float64(lipgloss.Height(views[i]))/2
			views[i] = sec.render(ctx.WithBackdrop(backdrop.At(0.5, mid/float64(line))))
		}
		content = backdrop.Paint(strings.Join(views, "\n"), width)
	}

	m.viewport.SetContent(content)
	if focusLine >= 0 && (focusLine < m.viewport.YOffset || focusLine >= m.viewport.YOffset+m.viewport.Height) {
		m.viewport.SetYOffset(max(focusLine-m.viewport.Height/3, 0))
	}
}

func renderWith(r ui.Renderable, ctx components.RenderContext) string {
	if contextual, ok := r.(components.ContextualRenderable); ok {
		return contextual.ViewWithContext(ctx)
	}
	return r.View()
}
