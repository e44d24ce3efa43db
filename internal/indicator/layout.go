package indicator

import (
	"math"

	apperrors "github.com/alexisbeaulieu97/pagedots/pkg/errors"
)

// Layout is a validated compact indicator configuration. It computes, for a
// row of total dots and a selected index, the translation of the row and the
// scale of each dot so that only a window of VisibleCount dots is shown and
// the dots near the window edges shrink.
type Layout struct {
	cfg    Config
	side   int
	middle int
}

// NewLayout validates cfg and returns a Layout. No geometry can be obtained
// from an invalid configuration.
func NewLayout(cfg Config) (*Layout, error) {
	cfg.Direction = cfg.Direction.Normalize()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &Layout{
		cfg:    cfg,
		side:   (cfg.VisibleCount - cfg.CenterCount) / 2,
		middle: cfg.VisibleCount / 2,
	}, nil
}

// MustLayout is NewLayout for configurations known to be valid, such as DefaultConfig.
func MustLayout(cfg Config) *Layout {
	l, err := NewLayout(cfg)
	if err != nil {
		panic(err)
	}
	return l
}

// Config returns the normalized configuration.
func (l *Layout) Config() Config { return l.cfg }

// SideCount is the number of shrinking dots at each window edge.
func (l *Layout) SideCount() int { return l.side }

// MiddleCount is the number of dots between the window centre and either edge.
func (l *Layout) MiddleCount() int { return l.middle }

// Pitch is the distance between the starts of two neighbouring dots.
func (l *Layout) Pitch() float64 { return l.cfg.DotSize + l.cfg.Spacing }

// ScaleStep is the scale difference between neighbouring dots of a shrink ramp.
func (l *Layout) ScaleStep() float64 {
	return (1 - l.cfg.EdgeScale) / float64(l.side)
}

// Compact reports whether total dots need the sliding window.
func (l *Layout) Compact(total int) bool {
	return total > l.cfg.VisibleCount
}

// span is the extent of n dots and the n-1 gaps between them.
func (l *Layout) span(n int) float64 {
	if n <= 0 {
		return 0
	}
	return float64(n)*l.cfg.DotSize + float64(n-1)*l.cfg.Spacing
}

// RawOffset is the translation that aligns the window with the first
// VisibleCount dots of a centred row of total dots.
func (l *Layout) RawOffset(total int) float64 {
	if !l.Compact(total) {
		return 0
	}
	return (l.span(total) - l.span(l.cfg.VisibleCount)) / 2
}

// Region classifies selected within a row of total dots.
func (l *Layout) Region(total, selected int) Region {
	return ClassifyRegion(selected, total, l.middle)
}

// Frame computes the geometry for one render. selected must lie in
// [0, total); total == 0 yields an empty frame.
func (l *Layout) Frame(total, selected int) (Frame, error) {
	if total < 0 {
		return Frame{}, apperrors.NewIndexOutOfRangeError("total", total, math.MaxInt)
	}
	if total == 0 {
		return Frame{layout: l, Fallback: true, First: 0, Last: -1}, nil
	}
	if selected < 0 || selected >= total {
		return Frame{}, apperrors.NewIndexOutOfRangeError("selected index", selected, total)
	}

	region := l.Region(total, selected)
	first, last := l.window(region, total, selected)

	return Frame{
		layout:   l,
		Total:    total,
		Selected: selected,
		Region:   region,
		Fallback: !l.Compact(total),
		Offset:   l.offset(region, total, selected),
		First:    first,
		Last:     last,
	}, nil
}

// Offset is a shorthand for Frame(total, selected).Offset.
func (l *Layout) Offset(total, selected int) (float64, error) {
	f, err := l.Frame(total, selected)
	if err != nil {
		return 0, err
	}
	return f.Offset, nil
}

// Scale is a shorthand for Frame(total, selected).Scale(index).
func (l *Layout) Scale(index, total, selected int) (float64, error) {
	f, err := l.Frame(total, selected)
	if err != nil {
		return 0, err
	}
	if index < 0 || index >= total {
		return 0, apperrors.NewIndexOutOfRangeError("dot index", index, total)
	}
	return f.Scale(index), nil
}

// WindowStartAt converts a (possibly animated) offset back into the index of
// the first visible dot, clamped to the valid window positions.
func (l *Layout) WindowStartAt(total int, offset float64) int {
	pitch := l.Pitch()
	if !l.Compact(total) || pitch == 0 {
		return 0
	}
	if l.cfg.Direction.Reversed() {
		offset = -offset
	}

	start := int(math.Round((l.RawOffset(total) - offset) / pitch))
	maxStart := total - l.cfg.VisibleCount
	switch {
	case start < 0:
		return 0
	case start > maxStart:
		return maxStart
	default:
		return start
	}
}

func (l *Layout) offset(region Region, total, selected int) float64 {
	if !l.Compact(total) {
		return 0
	}

	raw := l.RawOffset(total)
	var offset float64
	switch region {
	case RegionStart:
		offset = raw
	case RegionEnd:
		offset = -raw
	default:
		offset = raw - float64(selected-l.middle)*l.Pitch()
	}

	if l.cfg.Direction.Reversed() && offset != 0 {
		offset = -offset
	}
	return offset
}

func (l *Layout) window(region Region, total, selected int) (first, last int) {
	visible := l.cfg.VisibleCount
	if !l.Compact(total) {
		return 0, total - 1
	}

	switch region {
	case RegionStart:
		return 0, visible - 1
	case RegionEnd:
		return total - visible, total - 1
	default:
		return selected - l.middle, selected + l.middle
	}
}

func (l *Layout) scale(index int, region Region, total, selected int) float64 {
	if !l.Compact(total) {
		return 1
	}

	visible := l.cfg.VisibleCount
	edge := l.cfg.EdgeScale
	step := l.ScaleStep()

	switch region {
	case RegionStart:
		// Ramp on the trailing edge, counted from its innermost dot.
		zone := visible - l.side
		if index < zone || index >= visible {
			return 1
		}
		return clampScale(1-float64(index-zone+1)*step, edge)
	case RegionEnd:
		// Ramp on the leading edge, counted from the outermost dot.
		first := total - visible
		if index < first || index >= first+l.side {
			return 1
		}
		return clampScale(edge+float64(index-first)*step, edge)
	default:
		local := index - (selected - l.middle)
		switch {
		case local < 0 || local >= visible:
			return 1
		case local < l.side:
			return clampScale(edge+float64(local)*step, edge)
		case local >= visible-l.side:
			return clampScale(edge+float64(visible-1-local)*step, edge)
		default:
			return 1
		}
	}
}

// scaleInWindow ramps towards each edge of the window starting at first that
// still has hidden dots beyond it. For the windows produced by the three
// regions it agrees with scale.
func (l *Layout) scaleInWindow(index, first, total int) float64 {
	visible := l.cfg.VisibleCount
	local := index - first
	if local < 0 || local >= visible {
		return 1
	}

	edge := l.cfg.EdgeScale
	step := l.ScaleStep()
	switch {
	case first > 0 && local < l.side:
		return clampScale(edge+float64(local)*step, edge)
	case first+visible < total && local >= visible-l.side:
		return clampScale(edge+float64(visible-1-local)*step, edge)
	default:
		return 1
	}
}

func clampScale(v, edge float64) float64 {
	if v < edge {
		return edge
	}
	if v > 1 {
		return 1
	}
	return v
}
