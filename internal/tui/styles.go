package tui

import (
	"github.com/charmbracelet/lipgloss"

	uicomponents "github.com/alexisbeaulieu97/pagedots/internal/ui/components"
)

type styles struct {
	title  lipgloss.Style
	status lipgloss.Style
	err    lipgloss.Style
	help   lipgloss.Style
	frame  lipgloss.Style
}

func newStyles(theme uicomponents.Theme) styles {
	return styles{
		title:  lipgloss.NewStyle().Bold(true).Foreground(theme.Palette.Primary),
		status: lipgloss.NewStyle().Foreground(theme.Palette.Muted),
		err:    lipgloss.NewStyle().Foreground(theme.Palette.Danger).Bold(true),
		help:   lipgloss.NewStyle().MarginTop(1),
		frame:  lipgloss.NewStyle().Padding(1, 2),
	}
}
