package components

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/pagedots/internal/ui"
)

// BaseComponent provides common functionality for all components.
// Embed this in your component structs to get standard behavior.
type BaseComponent struct {
	style    lipgloss.Style
	appliers []StyleFunc
}

// StyleFunc applies a theme-aware transformation to a lipgloss.Style.
type StyleFunc func(lipgloss.Style, Theme) lipgloss.Style

// NewBaseComponent creates a new base component with default styling.
func NewBaseComponent() BaseComponent {
	return BaseComponent{style: lipgloss.NewStyle()}
}

// ComputeStyle returns the computed style for this component using the provided theme.
func (b *BaseComponent) ComputeStyle(theme Theme) lipgloss.Style {
	style := b.style
	for _, fn := range b.appliers {
		style = fn(style, theme)
	}
	return style
}

// SetStyle replaces the raw lipgloss style.
func (b *BaseComponent) SetStyle(style lipgloss.Style) {
	b.style = style
}

// SetAppliers replaces the style appliers.
func (b *BaseComponent) SetAppliers(appliers ...StyleFunc) {
	b.appliers = append([]StyleFunc(nil), appliers...)
}

// AddAppliers appends additional style appliers.
func (b *BaseComponent) AddAppliers(appliers ...StyleFunc) {
	merged := make([]StyleFunc, len(b.appliers), len(b.appliers)+len(appliers))
	copy(merged, b.appliers)
	b.appliers = append(merged, appliers...)
}

// Spacing represents spacing (padding or margin) around a component.
// Uses CSS box model ordering: Top, Right, Bottom, Left.
type Spacing struct {
	Top    int
	Right  int
	Bottom int
	Left   int
}

// UniformSpacing creates spacing with the same value on all sides.
func UniformSpacing(size int) Spacing {
	return Spacing{Top: size, Right: size, Bottom: size, Left: size}
}

// SymmetricSpacing creates spacing with different horizontal and vertical values.
func SymmetricSpacing(vertical, horizontal int) Spacing {
	return Spacing{Top: vertical, Right: horizontal, Bottom: vertical, Left: horizontal}
}

// RenderContext provides the theme, platform profile and available width to
// components during rendering. Nothing is read from globals.
type RenderContext struct {
	Theme   Theme
	Profile Profile
	// Width is the available width in cells; 0 means unconstrained.
	Width int
}

// DefaultContext returns a render context with the default theme, the
// unicode profile and no width limit.
func DefaultContext() RenderContext {
	return RenderContext{
		Theme:   DefaultTheme(),
		Profile: UnicodeProfile(),
	}
}

// WithTheme returns a new context with the specified theme.
func (r RenderContext) WithTheme(theme Theme) RenderContext {
	r.Theme = theme
	return r
}

// WithProfile returns a new context with the specified platform profile.
func (r RenderContext) WithProfile(profile Profile) RenderContext {
	r.Profile = profile
	return r
}

// WithWidth returns a new context limited to width cells.
func (r RenderContext) WithWidth(width int) RenderContext {
	r.Width = width
	return r
}

// ContextualRenderable is a component that can receive render context.
type ContextualRenderable interface {
	ui.Renderable
	ViewWithContext(ctx RenderContext) string
}

// Alignment specifies how content should be aligned.
type Alignment int

const (
	AlignStart Alignment = iota
	AlignCenter
	AlignEnd
)

// ToLipglossPosition converts Alignment to lipgloss.Position.
func (a Alignment) ToLipglossPosition() lipgloss.Position {
	switch a {
	case AlignCenter:
		return lipgloss.Center
	case AlignEnd:
		return lipgloss.Right
	default:
		return lipgloss.Left
	}
}
