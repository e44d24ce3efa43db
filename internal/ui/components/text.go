package components

import "github.com/charmbracelet/lipgloss"

// Text is a primitive component for rendering styled text content.
type Text struct {
	BaseComponent
	content string
}

// NewText creates a new text component with the given content.
func NewText(content string) *Text {
	return &Text{
		BaseComponent: NewBaseComponent(),
		content:       content,
	}
}

// View renders the text with its styling.
func (t *Text) View() string {
	return t.ViewWithContext(DefaultContext())
}

// ViewWithContext renders the text with the given theme context.
func (t *Text) ViewWithContext(ctx RenderContext) string {
	style := t.ComputeStyle(ctx.Theme)
	if ctx.Width > 0 {
		style = style.MaxWidth(ctx.Width)
	}
	return style.Render(t.content)
}

// Content returns the text content.
func (t *Text) Content() string {
	return t.content
}

// SetContent updates the text content.
func (t *Text) SetContent(content string) *Text {
	t.content = content
	return t
}

// WithStyle sets the lipgloss style directly.
func (t *Text) WithStyle(style lipgloss.Style) *Text {
	t.SetStyle(style)
	return t
}

// WithAppliers applies theme-based style modifiers.
func (t *Text) WithAppliers(appliers ...StyleFunc) *Text {
	t.AddAppliers(appliers...)
	return t
}

// TitleText creates title text using theme typography.
func TitleText(content string) *Text {
	return NewText(content).WithAppliers(TypographyStyle(TypographyVariantTitle), Foreground(RolePrimary))
}

// MutedText creates de-emphasised text.
func MutedText(content string) *Text {
	return NewText(content).WithAppliers(Foreground(RoleMuted))
}

// BodyText creates body text.
func BodyText(content string) *Text {
	return NewText(content).WithAppliers(TypographyStyle(TypographyVariantBody), Foreground(RoleText))
}
