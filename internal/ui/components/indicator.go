package components

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/pagedots/internal/indicator"
)

// Marker wraps rendered content in a mouse zone. bubblezone's Manager
// satisfies it.
type Marker interface {
	Mark(id, v string) string
}

// DotZoneID names the mouse zone of the dot at index.
func DotZoneID(prefix string, index int) string {
	return fmt.Sprintf("%s%d", prefix, index)
}

// ParseDotZoneID is the inverse of DotZoneID.
func ParseDotZoneID(prefix, id string) (int, bool) {
	rest, ok := strings.CutPrefix(id, prefix)
	if !ok || rest == "" {
		return 0, false
	}
	index, err := strconv.Atoi(rest)
	if err != nil || index < 0 {
		return 0, false
	}
	return index, true
}

// PageIndicator renders an indicator.Frame as a row or column of dots.
type PageIndicator struct {
	BaseComponent
	frame      indicator.Frame
	marker     Marker
	zonePrefix string
}

// NewPageIndicator creates an indicator for frame.
func NewPageIndicator(frame indicator.Frame) *PageIndicator {
	return &PageIndicator{BaseComponent: NewBaseComponent(), frame: frame}
}

// WithFrame replaces the rendered frame.
func (p *PageIndicator) WithFrame(frame indicator.Frame) *PageIndicator {
	p.frame = frame
	return p
}

// WithMarker wraps every dot in a zone named DotZoneID(prefix, index).
func (p *PageIndicator) WithMarker(marker Marker, prefix string) *PageIndicator {
	p.marker = marker
	p.zonePrefix = prefix
	return p
}

// WithAppliers applies theme-based style modifiers.
func (p *PageIndicator) WithAppliers(appliers ...StyleFunc) *PageIndicator {
	p.AddAppliers(appliers...)
	return p
}

// Frame returns the rendered frame.
func (p *PageIndicator) Frame() indicator.Frame {
	return p.frame
}

// View renders the indicator.
func (p *PageIndicator) View() string {
	return p.ViewWithContext(DefaultContext())
}

// ViewWithContext renders the indicator with the given theme and profile.
func (p *PageIndicator) ViewWithContext(ctx RenderContext) string {
	dots := p.frame.Dots()
	if len(dots) == 0 {
		return ""
	}

	cfg := p.frame.Config()
	if cfg.Direction.Reversed() {
		for i, j := 0, len(dots)-1; i < j; i, j = i+1, j-1 {
			dots[i], dots[j] = dots[j], dots[i]
		}
	}

	glyphs := ctx.Profile.Glyphs
	smallest := ""
	if len(glyphs.Dots) > 0 {
		smallest = glyphs.Dots[len(glyphs.Dots)-1]
	}

	cellWidth := max(1, ctx.Profile.CellWidth) * max(1, int(math.Round(cfg.DotSize)))
	cell := lipgloss.NewStyle().Width(cellWidth).Align(lipgloss.Center)

	cells := make([]string, 0, len(dots))
	for _, dot := range dots {
		glyph := glyphs.Glyph(dot.Scale, dot.Selected)

		style := cell.Foreground(ctx.Theme.Indicator.Inactive)
		switch {
		case dot.Selected:
			style = cell.Foreground(ctx.Theme.Indicator.Active).Bold(true)
		case glyph == smallest:
			style = cell.Foreground(ctx.Theme.Indicator.Edge)
		}

		rendered := style.Render(glyph)
		if p.marker != nil {
			rendered = p.marker.Mark(DotZoneID(p.zonePrefix, dot.Index), rendered)
		}
		cells = append(cells, rendered)
	}

	gap := max(0, int(math.Round(cfg.Spacing)))
	return p.ComputeStyle(ctx.Theme).Render(joinCells(cells, cfg.Direction.Vertical(), gap))
}

func joinCells(cells []string, vertical bool, gap int) string {
	if vertical {
		sep := "\n" + strings.Repeat("\n", gap)
		return strings.Join(cells, sep)
	}
	return strings.Join(cells, strings.Repeat(" ", gap))
}
