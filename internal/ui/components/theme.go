package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// ColourRole names a semantic palette slot.
type ColourRole int

const (
	RolePrimary ColourRole = iota
	RoleSecondary
	RoleSurface
	RoleText
	RoleMuted
	RoleDanger
)

// Palette describes semantic colour slots used by components.
type Palette struct {
	Primary   lipgloss.Color
	Secondary lipgloss.Color
	Surface   lipgloss.Color
	Text      lipgloss.Color
	Muted     lipgloss.Color
	Danger    lipgloss.Color
}

// Colour returns the colour assigned to role.
func (p Palette) Colour(role ColourRole) lipgloss.Color {
	switch role {
	case RolePrimary:
		return p.Primary
	case RoleSecondary:
		return p.Secondary
	case RoleSurface:
		return p.Surface
	case RoleMuted:
		return p.Muted
	case RoleDanger:
		return p.Danger
	default:
		return p.Text
	}
}

// IndicatorColours styles page indicator dots.
type IndicatorColours struct {
	Active   lipgloss.Color
	Inactive lipgloss.Color
	// Edge colours dots drawn at the smallest glyph.
	Edge lipgloss.Color
}

// BorderSet groups reusable border definitions.
type BorderSet struct {
	Normal  lipgloss.Border
	Rounded lipgloss.Border
}

// TypographyVariant represents a strongly-typed typography token.
type TypographyVariant int

const (
	TypographyVariantBody TypographyVariant = iota
	TypographyVariantTitle
	TypographyVariantSubtitle
	TypographyVariantEmphasis
	TypographyVariantCode
)

// Typography maps variants to base text styles.
type Typography struct {
	Body     lipgloss.Style
	Title    lipgloss.Style
	Subtitle lipgloss.Style
	Emphasis lipgloss.Style
	Code     lipgloss.Style
}

// Style returns the style for variant.
func (t Typography) Style(variant TypographyVariant) lipgloss.Style {
	switch variant {
	case TypographyVariantTitle:
		return t.Title
	case TypographyVariantSubtitle:
		return t.Subtitle
	case TypographyVariantEmphasis:
		return t.Emphasis
	case TypographyVariantCode:
		return t.Code
	default:
		return t.Body
	}
}

// Theme is a plain value passed to components through RenderContext. It
// carries data only; components decide how to use it.
type Theme struct {
	Name       string
	Palette    Palette
	Borders    BorderSet
	Typography Typography
	Indicator  IndicatorColours
}

func baseTypography() Typography {
	return Typography{
		Body:     lipgloss.NewStyle(),
		Title:    lipgloss.NewStyle().Bold(true),
		Subtitle: lipgloss.NewStyle().Italic(true),
		Emphasis: lipgloss.NewStyle().Italic(true).Bold(true),
		Code:     lipgloss.NewStyle().Faint(true),
	}
}

func baseBorders() BorderSet {
	return BorderSet{Normal: lipgloss.NormalBorder(), Rounded: lipgloss.RoundedBorder()}
}

// DefaultTheme returns the stock theme.
func DefaultTheme() Theme {
	return Theme{
		Name: "default",
		Palette: Palette{
			Primary:   lipgloss.Color("#3B82F6"),
			Secondary: lipgloss.Color("#8B5CF6"),
			Surface:   lipgloss.Color("#1E293B"),
			Text:      lipgloss.Color("#E2E8F0"),
			Muted:     lipgloss.Color("#64748B"),
			Danger:    lipgloss.Color("#EF4444"),
		},
		Borders:    baseBorders(),
		Typography: baseTypography(),
		Indicator: IndicatorColours{
			Active:   lipgloss.Color("#3B82F6"),
			Inactive: lipgloss.Color("#94A3B8"),
			Edge:     lipgloss.Color("#475569"),
		},
	}
}

// DarkTheme suits dark terminal backgrounds.
func DarkTheme() Theme {
	theme := DefaultTheme()
	theme.Name = "dark"
	theme.Palette.Primary = lipgloss.Color("#22D3EE")
	theme.Palette.Surface = lipgloss.Color("#0F172A")
	theme.Indicator = IndicatorColours{
		Active:   lipgloss.Color("#22D3EE"),
		Inactive: lipgloss.Color("#CBD5E1"),
		Edge:     lipgloss.Color("#334155"),
	}
	return theme
}

// LightTheme suits light terminal backgrounds.
func LightTheme() Theme {
	theme := DefaultTheme()
	theme.Name = "light"
	theme.Palette = Palette{
		Primary:   lipgloss.Color("#1D4ED8"),
		Secondary: lipgloss.Color("#6D28D9"),
		Surface:   lipgloss.Color("#F1F5F9"),
		Text:      lipgloss.Color("#0F172A"),
		Muted:     lipgloss.Color("#64748B"),
		Danger:    lipgloss.Color("#B91C1C"),
	}
	theme.Indicator = IndicatorColours{
		Active:   lipgloss.Color("#1D4ED8"),
		Inactive: lipgloss.Color("#475569"),
		Edge:     lipgloss.Color("#CBD5E1"),
	}
	return theme
}

// ThemeByName resolves a configured theme name. Unknown or empty names give
// the default theme and false.
func ThemeByName(name string) (Theme, bool) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "dark":
		return DarkTheme(), true
	case "light":
		return LightTheme(), true
	case "default":
		return DefaultTheme(), true
	default:
		return DefaultTheme(), false
	}
}

// Foreground colours text with a palette role.
func Foreground(role ColourRole) StyleFunc {
	return func(s lipgloss.Style, theme Theme) lipgloss.Style {
		return s.Foreground(theme.Palette.Colour(role))
	}
}

// TypographyStyle inherits the theme's style for variant.
func TypographyStyle(variant TypographyVariant) StyleFunc {
	return func(s lipgloss.Style, theme Theme) lipgloss.Style {
		return s.Inherit(theme.Typography.Style(variant))
	}
}

// RoundedBorder draws the theme's rounded border in role's colour.
func RoundedBorder(role ColourRole) StyleFunc {
	return func(s lipgloss.Style, theme Theme) lipgloss.Style {
		return s.Border(theme.Borders.Rounded).BorderForeground(theme.Palette.Colour(role))
	}
}

// Padding applies the given spacing as padding.
func Padding(sp Spacing) StyleFunc {
	return func(s lipgloss.Style, _ Theme) lipgloss.Style {
		return s.Padding(sp.Top, sp.Right, sp.Bottom, sp.Left)
	}
}

// FixedWidth pins the rendered width in cells.
func FixedWidth(width int) StyleFunc {
	return func(s lipgloss.Style, _ Theme) lipgloss.Style {
		return s.Width(width)
	}
}
