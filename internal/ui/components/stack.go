package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/pagedots/internal/ui"
)

// Axis specifies the layout axis for a Stack.
type Axis int

const (
	AxisVertical Axis = iota
	AxisHorizontal
)

// Stack arranges children along one axis with an optional gap.
type Stack struct {
	BaseComponent
	children []ui.Renderable
	axis     Axis
	gap      int
	align    Alignment
}

// NewStack creates a new stack with default vertical layout.
func NewStack(children ...ui.Renderable) *Stack {
	return &Stack{
		BaseComponent: NewBaseComponent(),
		children:      children,
		axis:          AxisVertical,
	}
}

// VStack creates a vertical stack.
func VStack(children ...ui.Renderable) *Stack {
	return NewStack(children...).WithAxis(AxisVertical)
}

// HStack creates a horizontal stack.
func HStack(children ...ui.Renderable) *Stack {
	return NewStack(children...).WithAxis(AxisHorizontal)
}

// View renders the stack and its children.
func (s *Stack) View() string {
	return s.ViewWithContext(DefaultContext())
}

// ViewWithContext renders the stack, handing ctx to contextual children.
func (s *Stack) ViewWithContext(ctx RenderContext) string {
	childCtx := ctx
	if s.axis == AxisHorizontal && ctx.Width > 0 && len(s.children) > 0 {
		available := ctx.Width - s.gap*(len(s.children)-1)
		if available > 0 {
			childCtx = ctx.WithWidth(available / len(s.children))
		}
	}

	views := make([]string, 0, len(s.children))
	for _, child := range s.children {
		if child == nil {
			continue
		}

		var view string
		if contextual, ok := child.(ContextualRenderable); ok {
			view = contextual.ViewWithContext(childCtx)
		} else {
			view = child.View()
		}

		if view != "" {
			views = append(views, view)
		}
	}

	style := s.ComputeStyle(ctx.Theme)
	if ctx.Width > 0 {
		style = style.MaxWidth(ctx.Width)
	}

	if len(views) == 0 {
		return style.Render("")
	}

	return style.Render(s.join(views))
}

func (s *Stack) join(views []string) string {
	pos := s.align.ToLipglossPosition()
	if s.axis == AxisHorizontal {
		pos = lipgloss.Top
		if s.align == AlignCenter {
			pos = lipgloss.Center
		} else if s.align == AlignEnd {
			pos = lipgloss.Bottom
		}
	}

	if s.gap > 0 {
		spacer := strings.Repeat(" ", s.gap)
		if s.axis == AxisVertical {
			spacer = strings.Repeat("\n", s.gap-1)
		}
		spaced := make([]string, 0, len(views)*2-1)
		for i, view := range views {
			if i > 0 {
				spaced = append(spaced, spacer)
			}
			spaced = append(spaced, view)
		}
		views = spaced
	}

	if s.axis == AxisHorizontal {
		return lipgloss.JoinHorizontal(pos, views...)
	}
	return lipgloss.JoinVertical(pos, views...)
}

// WithAxis sets the layout axis.
func (s *Stack) WithAxis(axis Axis) *Stack {
	s.axis = axis
	return s
}

// WithGap sets the spacing between children, in cells or rows.
func (s *Stack) WithGap(gap int) *Stack {
	s.gap = gap
	return s
}

// WithAlign sets the cross axis alignment.
func (s *Stack) WithAlign(align Alignment) *Stack {
	s.align = align
	return s
}

// WithAppliers applies theme-based style modifiers.
func (s *Stack) WithAppliers(appliers ...StyleFunc) *Stack {
	s.SetAppliers(appliers...)
	return s
}

// Add appends children to the stack.
func (s *Stack) Add(children ...ui.Renderable) *Stack {
	s.children = append(s.children, children...)
	return s
}

// Children returns the child renderables.
func (s *Stack) Children() []ui.Renderable {
	return s.children
}
