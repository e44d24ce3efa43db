package components

import (
	"github.com/charmbracelet/lipgloss"
)

// Button renders a label styled by its projected interaction state.
type Button struct {
	BaseComponent
	label string
	state InteractionState
	caps  Capabilities
}

// NewButton creates a button that supports every interaction state.
func NewButton(label string) *Button {
	return &Button{
		BaseComponent: NewBaseComponent(),
		label:         label,
		caps:          AllCapabilities,
	}
}

// View renders the button.
func (b *Button) View() string {
	return b.ViewWithContext(DefaultContext())
}

// ViewWithContext renders the button with the given theme context.
func (b *Button) ViewWithContext(ctx RenderContext) string {
	state := b.State()
	label := b.label
	if state == StateLoading {
		label += " " + ctx.Profile.Glyphs.Ellipsis
	}
	return b.computeStyle(ctx.Theme, state).Render("[" + label + "]")
}

func (b *Button) computeStyle(theme Theme, state InteractionState) lipgloss.Style {
	style := b.ComputeStyle(theme).Foreground(theme.Palette.Primary)

	switch state {
	case StatePressed:
		style = style.Reverse(true)
	case StateFocused:
		style = style.Bold(true).Underline(true)
	case StateDisabled, StateLoading:
		style = style.Foreground(theme.Palette.Muted).Faint(true)
	}

	return style
}

// WithState requests an interaction state. It is projected onto the
// button's capabilities when rendered.
func (b *Button) WithState(state InteractionState) *Button {
	b.state = state
	return b
}

// WithCapabilities restricts the states the button can show.
func (b *Button) WithCapabilities(caps Capabilities) *Button {
	b.caps = caps
	return b
}

// WithAppliers applies theme-based style modifiers.
func (b *Button) WithAppliers(appliers ...StyleFunc) *Button {
	b.AddAppliers(appliers...)
	return b
}

// Label returns the button label.
func (b *Button) Label() string {
	return b.label
}

// State returns the projected state the button renders with.
func (b *Button) State() InteractionState {
	return b.caps.Project(b.state)
}
