package components

import (
	"strings"

	"github.com/alexisbeaulieu97/cooler/internal/ui"
	"github.com/charmbracelet/lipgloss"
)

// Direction is the layout axis of a Stack.
type Direction int

const (
	DirectionVertical Direction = iota
	DirectionHorizontal
)

// Stack arranges children along one axis.
type Stack struct {
	BaseComponent
	children    []ui.Renderable
	direction   Direction
	gap         int
	crossAlign  CrossAxisAlignment
	constraints Constraints
}

// NewStack creates a vertical stack.
func NewStack(children ...ui.Renderable) *Stack {
	return &Stack{
		BaseComponent: NewBaseComponent(),
		children:      children,
		direction:     DirectionVertical,
		constraints:   Unconstrained(),
	}
}

// VStack creates a vertical stack.
func VStack(children ...ui.Renderable) *Stack {
	return NewStack(children...)
}

// HStack creates a horizontal stack.
func HStack(children ...ui.Renderable) *Stack {
	return NewStack(children...).WithDirection(DirectionHorizontal)
}

// View renders with the default theme.
func (s *Stack) View() string {
	return s.ViewWithContext(DefaultContext())
}

// ViewWithContext renders every child and joins them along the stack axis.
func (s *Stack) ViewWithContext(ctx RenderContext) string {
	style := s.ComputeStyle(ctx.Theme)
	effective := s.mergeConstraints(ctx.Constraints)
	childCtx := ctx.WithConstraints(s.childConstraints(effective))

	views := make([]string, 0, len(s.children))
	for _, child := range s.children {
		if view := render(child, childCtx); view != "" {
			views = append(views, view)
		}
	}
	if len(views) == 0 {
		return style.Render("")
	}

	var content string
	if s.direction == DirectionHorizontal {
		content = s.join(views, strings.Repeat(" ", s.gap), lipgloss.JoinHorizontal)
	} else {
		content = s.join(views, strings.Repeat("\n", s.gap), lipgloss.JoinVertical)
	}

	if effective.MaxWidth > 0 {
		style = style.MaxWidth(effective.MaxWidth)
	}
	if effective.MaxHeight > 0 {
		style = style.MaxHeight(effective.MaxHeight)
	}
	return style.Render(content)
}

func (s *Stack) join(views []string, spacer string, joiner func(lipgloss.Position, ...string) string) string {
	if s.gap == 0 {
		return joiner(s.crossAlign.position(), views...)
	}
	parts := make([]string, 0, len(views)*2-1)
	for i, view := range views {
		if i > 0 {
			parts = append(parts, spacer)
		}
		parts = append(parts, view)
	}
	return joiner(s.crossAlign.position(), parts...)
}

// mergeConstraints keeps the tighter of the stack and parent bounds.
func (s *Stack) mergeConstraints(parent Constraints) Constraints {
	result := parent
	if s.constraints.MaxWidth > 0 && (result.MaxWidth <= 0 || s.constraints.MaxWidth < result.MaxWidth) {
		result.MaxWidth = s.constraints.MaxWidth
	}
	if s.constraints.MaxHeight > 0 && (result.MaxHeight <= 0 || s.constraints.MaxHeight < result.MaxHeight) {
		result.MaxHeight = s.constraints.MaxHeight
	}
	if s.constraints.MinWidth > result.MinWidth {
		result.MinWidth = s.constraints.MinWidth
	}
	return result
}

// childConstraints splits the width evenly between horizontal children.
func (s *Stack) childConstraints(parent Constraints) Constraints {
	child := parent
	if s.direction == DirectionHorizontal && parent.MaxWidth > 0 && len(s.children) > 0 {
		available := parent.MaxWidth - s.gap*(len(s.children)-1)
		if available > 0 {
			child.MaxWidth = available / len(s.children)
		}
	}
	return child
}

// WithDirection sets the layout axis.
func (s *Stack) WithDirection(dir Direction) *Stack {
	s.direction = dir
	return s
}

// WithGap sets the blank rows or columns between children.
func (s *Stack) WithGap(gap int) *Stack {
	s.gap = gap
	return s
}

// WithCrossAlign sets the cross-axis alignment.
func (s *Stack) WithCrossAlign(align CrossAxisAlignment) *Stack {
	s.crossAlign = align
	return s
}

// WithAppliers replaces the theme modifiers.
func (s *Stack) WithAppliers(appliers ...StyleFunc) *Stack {
	s.SetAppliers(appliers...)
	return s
}

// WithConstraints sets sizing constraints.
func (s *Stack) WithConstraints(constraints Constraints) *Stack {
	s.constraints = constraints
	return s
}

// Add appends children.
func (s *Stack) Add(children ...ui.Renderable) *Stack {
	s.children = append(s.children, children...)
	return s
}

// Children returns the children.
func (s *Stack) Children() []ui.Renderable {
	return s.children
}
