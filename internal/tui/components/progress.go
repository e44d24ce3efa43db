package components

import (
	"fmt"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/lipgloss"
)

const defaultBarWidth = 30

// Position renders where the selected page sits among the real pages.
type Position struct {
	bar progress.Model
}

// NewPosition creates a position bar of the given width in cells.
func NewPosition(width int) Position {
	bar := progress.New(progress.WithDefaultGradient(), progress.WithoutPercentage())
	if width <= 0 {
		width = defaultBarWidth
	}
	bar.Width = width
	return Position{bar: bar}
}

// Width returns the bar width in cells.
func (p Position) Width() int {
	return p.bar.Width
}

// WithWidth returns the bar resized to width cells.
func (p Position) WithWidth(width int) Position {
	if width > 0 {
		p.bar.Width = width
	}
	return p
}

// Ratio is the filled fraction for the zero-based page index.
func Ratio(index, total int) float64 {
	if total <= 0 || index < 0 {
		return 0
	}
	if index >= total {
		return 1
	}
	return float64(index+1) / float64(total)
}

// View renders "n/total" followed by the bar for the zero-based index.
func (p Position) View(index, total int) string {
	current := 0
	if total > 0 {
		current = min(max(index, 0), total-1) + 1
	}
	label := lipgloss.NewStyle().Bold(true).Render(fmt.Sprintf("%d/%d", current, total))
	return lipgloss.JoinHorizontal(lipgloss.Left, label, " ", p.bar.ViewAs(Ratio(index, total)))
}
