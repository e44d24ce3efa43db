package indicator

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/alexisbeaulieu97/pagedots/pkg/errors"
)

func newTestLayout(t *testing.T, mutate func(*Config)) *Layout {
	t.Helper()
	cfg := DefaultConfig()
	if mutate != nil {
		mutate(&cfg)
	}
	l, err := NewLayout(cfg)
	require.NoError(t, err)
	return l
}

func TestNewLayoutRejectsInvalidConfig(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		mutate func(*Config)
		field  string
	}{
		{"even visible count", func(c *Config) { c.VisibleCount = 6 }, "visible_count"},
		{"centre larger than visible", func(c *Config) { c.VisibleCount = 3; c.CenterCount = 5 }, "visible_count"},
		{"centre equal to visible", func(c *Config) { c.VisibleCount = 5; c.CenterCount = 5 }, "visible_count"},
		{"even centre count", func(c *Config) { c.CenterCount = 2 }, "center_count"},
		{"zero centre count", func(c *Config) { c.VisibleCount = 3; c.CenterCount = 0 }, "center_count"},
		{"zero edge scale", func(c *Config) { c.EdgeScale = 0 }, "edge_scale"},
		{"edge scale above one", func(c *Config) { c.EdgeScale = 1.5 }, "edge_scale"},
		{"negative spacing", func(c *Config) { c.Spacing = -1 }, "spacing"},
		{"unknown direction", func(c *Config) { c.Direction = "diagonal" }, "direction"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			cfg := DefaultConfig()
			tt.mutate(&cfg)

			layout, err := NewLayout(cfg)
			require.Nil(t, layout)

			var layoutErr *apperrors.InvalidLayoutConfigError
			require.ErrorAs(t, err, &layoutErr)
			require.Equal(t, tt.field, layoutErr.Field)
		})
	}
}

func TestNewLayoutDerivesCounts(t *testing.T) {
	t.Parallel()

	l := newTestLayout(t, nil)
	require.Equal(t, 2, l.SideCount())
	require.Equal(t, 3, l.MiddleCount())
	require.Equal(t, 2.0, l.Pitch())
	require.InDelta(t, 0.25, l.ScaleStep(), 1e-12)
	require.Equal(t, LeftToRight, l.Config().Direction)

	l = newTestLayout(t, func(c *Config) { c.VisibleCount = 9; c.CenterCount = 1; c.Direction = "RTL" })
	require.Equal(t, 4, l.SideCount())
	require.Equal(t, 4, l.MiddleCount())
	require.Equal(t, RightToLeft, l.Config().Direction)
}

func TestOffsetMatchesRegions(t *testing.T) {
	t.Parallel()

	l := newTestLayout(t, nil)
	require.Equal(t, 3.0, l.RawOffset(10))

	want := map[int]float64{0: 3, 1: 3, 2: 3, 3: 3, 4: 1, 5: -1, 6: -3, 7: -3, 8: -3, 9: -3}
	for selected, expected := range want {
		got, err := l.Offset(10, selected)
		require.NoError(t, err)
		require.Equal(t, expected, got, "selected %d", selected)
	}
}

func TestOffsetSymmetry(t *testing.T) {
	t.Parallel()

	for _, total := range []int{8, 10, 13, 40} {
		l := newTestLayout(t, func(c *Config) { c.DotSize = 2; c.Spacing = 0.5 })
		for selected := 0; selected < total; selected++ {
			a, err := l.Offset(total, selected)
			require.NoError(t, err)
			b, err := l.Offset(total, total-1-selected)
			require.NoError(t, err)
			require.InDelta(t, -a, b, 1e-9, "total=%d selected=%d", total, selected)
		}

		first, _ := l.Offset(total, 0)
		last, _ := l.Offset(total, total-1)
		require.Equal(t, l.RawOffset(total), first)
		require.Equal(t, -l.RawOffset(total), last)
	}
}

func TestOffsetReversedDirection(t *testing.T) {
	t.Parallel()

	forward := newTestLayout(t, nil)
	for _, dir := range []Direction{RightToLeft, BottomToTop} {
		reversed := newTestLayout(t, func(c *Config) { c.Direction = dir })
		for selected := 0; selected < 12; selected++ {
			a, err := forward.Offset(12, selected)
			require.NoError(t, err)
			b, err := reversed.Offset(12, selected)
			require.NoError(t, err)
			require.Equal(t, -a, b)
		}
	}
}

func TestScaleRamps(t *testing.T) {
	t.Parallel()

	l := newTestLayout(t, nil)

	tests := []struct {
		name     string
		selected int
		want     []float64
	}{
		{"start", 0, []float64{1, 1, 1, 1, 1, 0.75, 0.5, 1, 1, 1}},
		{"start boundary", 3, []float64{1, 1, 1, 1, 1, 0.75, 0.5, 1, 1, 1}},
		{"centre", 4, []float64{1, 0.5, 0.75, 1, 1, 1, 0.75, 0.5, 1, 1}},
		{"centre late", 5, []float64{1, 1, 0.5, 0.75, 1, 1, 1, 0.75, 0.5, 1}},
		{"end", 9, []float64{1, 1, 1, 0.5, 0.75, 1, 1, 1, 1, 1}},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			for index, expected := range tt.want {
				got, err := l.Scale(index, 10, tt.selected)
				require.NoError(t, err)
				assert.InDelta(t, expected, got, 1e-12, "index %d", index)
			}
		})
	}
}

func TestScaleStartAndEndAreMirrorImages(t *testing.T) {
	t.Parallel()

	l := newTestLayout(t, func(c *Config) { c.VisibleCount = 9; c.CenterCount = 3; c.EdgeScale = 0.2 })
	total := 20
	start, err := l.Frame(total, 0)
	require.NoError(t, err)
	end, err := l.Frame(total, total-1)
	require.NoError(t, err)

	startDots := start.Dots()
	endDots := end.Dots()
	require.Len(t, startDots, 9)
	require.Len(t, endDots, 9)
	for i := range startDots {
		require.InDelta(t, startDots[i].Scale, endDots[len(endDots)-1-i].Scale, 1e-12)
	}
	require.InDelta(t, 0.2, startDots[8].Scale, 1e-12)
	require.InDelta(t, 0.2, endDots[0].Scale, 1e-12)
}

func TestScaleBounds(t *testing.T) {
	t.Parallel()

	for _, visible := range []int{3, 5, 7, 9} {
		for center := 1; center < visible; center += 2 {
			for _, edge := range []float64{0.05, 0.3, 0.5, 0.75, 0.99, 1} {
				name := fmt.Sprintf("v%d_c%d_e%.2f", visible, center, edge)
				l := newTestLayout(t, func(c *Config) {
					c.VisibleCount = visible
					c.CenterCount = center
					c.EdgeScale = edge
				})
				for total := 1; total <= 24; total++ {
					for selected := 0; selected < total; selected++ {
						f, err := l.Frame(total, selected)
						require.NoError(t, err, name)
						for index := 0; index < total; index++ {
							s := f.Scale(index)
							require.GreaterOrEqual(t, s, edge, "%s total=%d selected=%d index=%d", name, total, selected, index)
							require.LessOrEqual(t, s, 1.0, "%s total=%d selected=%d index=%d", name, total, selected, index)
						}
					}
				}
			}
		}
	}
}

func TestFallbackWhenEveryDotFits(t *testing.T) {
	t.Parallel()

	l := newTestLayout(t, nil)
	for _, total := range []int{1, 4, 7} {
		for selected := 0; selected < total; selected++ {
			f, err := l.Frame(total, selected)
			require.NoError(t, err)
			require.True(t, f.Fallback)
			require.Equal(t, 0.0, f.Offset)
			require.Equal(t, 0, f.First)
			require.Equal(t, total-1, f.Last)
			for index := 0; index < total; index++ {
				require.Equal(t, 1.0, f.Scale(index))
			}
		}
	}

	f, err := l.Frame(8, 0)
	require.NoError(t, err)
	require.False(t, f.Fallback)
}

func TestFrameRejectsOutOfRangeSelection(t *testing.T) {
	t.Parallel()

	l := newTestLayout(t, nil)

	for _, tc := range []struct{ total, selected int }{{10, -1}, {10, 10}, {3, 7}, {-2, 0}} {
		_, err := l.Frame(tc.total, tc.selected)
		var rangeErr *apperrors.IndexOutOfRangeError
		require.ErrorAs(t, err, &rangeErr, "total=%d selected=%d", tc.total, tc.selected)
	}

	_, err := l.Scale(10, 10, 0)
	var rangeErr *apperrors.IndexOutOfRangeError
	require.ErrorAs(t, err, &rangeErr)
	require.Equal(t, "dot index", rangeErr.What)
}

func TestFrameEmptyTotal(t *testing.T) {
	t.Parallel()

	f, err := newTestLayout(t, nil).Frame(0, 0)
	require.NoError(t, err)
	require.Equal(t, 0, f.Len())
	require.Empty(t, f.Dots())
}

func TestWindowStartAt(t *testing.T) {
	t.Parallel()

	for _, dir := range []Direction{LeftToRight, RightToLeft} {
		l := newTestLayout(t, func(c *Config) { c.Direction = dir })
		for selected := 0; selected < 15; selected++ {
			f, err := l.Frame(15, selected)
			require.NoError(t, err)
			require.Equal(t, f.First, l.WindowStartAt(15, f.Offset), "dir=%s selected=%d", dir, selected)
		}
		require.Equal(t, 0, l.WindowStartAt(15, 1000))
		require.Equal(t, 8, l.WindowStartAt(15, -1000*boolSign(dir.Reversed())))
		require.Equal(t, 0, l.WindowStartAt(5, 2))
	}
}

func boolSign(reversed bool) float64 {
	if reversed {
		return -1
	}
	return 1
}
