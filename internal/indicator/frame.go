package indicator

// Dot is one rendered indicator dot.
type Dot struct {
	Index    int
	Scale    float64
	Selected bool
}

// Frame is the geometry of one indicator render. It is only produced by
// Layout.Frame and is safe to copy.
type Frame struct {
	layout  *Layout
	shifted bool

	Total    int
	Selected int
	Region   Region
	// Fallback is set when every dot fits and the sliding window is bypassed.
	Fallback bool
	// Offset translates the whole centred dot row; see Layout.RawOffset.
	Offset float64
	// First and Last bound the visible window (inclusive). Last < First when Total is 0.
	First int
	Last  int
}

// Scale returns the scale of the dot at the global index, in [EdgeScale, 1].
func (f Frame) Scale(index int) float64 {
	if f.layout == nil || f.Fallback {
		return 1
	}
	if f.shifted {
		return f.layout.scaleInWindow(index, f.First, f.Total)
	}
	return f.layout.scale(index, f.Region, f.Total, f.Selected)
}

// Len is the number of visible dots.
func (f Frame) Len() int {
	if f.Last < f.First {
		return 0
	}
	return f.Last - f.First + 1
}

// Contains reports whether index lies in the visible window.
func (f Frame) Contains(index int) bool {
	return index >= f.First && index <= f.Last
}

// Dots returns the visible dots in layout order, before any direction reversal.
func (f Frame) Dots() []Dot {
	dots := make([]Dot, 0, f.Len())
	for i := f.First; i <= f.Last; i++ {
		dots = append(dots, Dot{Index: i, Scale: f.Scale(i), Selected: i == f.Selected})
	}
	return dots
}

// Shifted returns the frame with its window moved to start at first. Scales
// then ramp down towards whichever window edge still hides dots. It is used
// while an offset animation is in flight.
func (f Frame) Shifted(first int) Frame {
	if f.Fallback || f.layout == nil {
		return f
	}
	n := f.Len()
	if first < 0 {
		first = 0
	}
	if first+n > f.Total {
		first = f.Total - n
	}
	if first == f.First {
		return f
	}
	f.First, f.Last = first, first+n-1
	f.shifted = true
	return f
}

// Config returns the configuration of the layout that produced the frame.
func (f Frame) Config() Config {
	if f.layout == nil {
		return DefaultConfig()
	}
	return f.layout.Config()
}
