package indicator

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFrameWindowContainsSelection(t *testing.T) {
	t.Parallel()

	l := newTestLayout(t, nil)
	for total := 1; total <= 30; total++ {
		for selected := 0; selected < total; selected++ {
			f, err := l.Frame(total, selected)
			require.NoError(t, err)

			want := total
			if want > 7 {
				want = 7
			}
			require.Equal(t, want, f.Len(), "total=%d selected=%d", total, selected)
			require.True(t, f.Contains(selected))
			require.GreaterOrEqual(t, f.First, 0)
			require.Less(t, f.Last, total)
		}
	}
}

func TestFrameDotsMarkSelection(t *testing.T) {
	t.Parallel()

	f, err := newTestLayout(t, nil).Frame(12, 6)
	require.NoError(t, err)
	require.Equal(t, RegionCenter, f.Region)

	dots := f.Dots()
	require.Len(t, dots, 7)
	require.Equal(t, 3, dots[0].Index)
	require.Equal(t, 9, dots[6].Index)

	selected := 0
	for _, d := range dots {
		if d.Selected {
			selected++
			require.Equal(t, 6, d.Index)
			require.Equal(t, 1.0, d.Scale)
		}
	}
	require.Equal(t, 1, selected)
}

func TestFrameShifted(t *testing.T) {
	t.Parallel()

	l := newTestLayout(t, nil)
	f, err := l.Frame(12, 11)
	require.NoError(t, err)
	require.Equal(t, RegionEnd, f.Region)

	t.Run("same window is unchanged", func(t *testing.T) {
		t.Parallel()
		require.Equal(t, f, f.Shifted(f.First))
	})

	t.Run("window mid animation ramps both ends", func(t *testing.T) {
		t.Parallel()
		s := f.Shifted(2)
		require.Equal(t, 2, s.First)
		require.Equal(t, 8, s.Last)
		require.Equal(t, 0.5, s.Scale(2))
		require.Equal(t, 0.75, s.Scale(3))
		require.Equal(t, 1.0, s.Scale(5))
		require.Equal(t, 0.75, s.Scale(7))
		require.Equal(t, 0.5, s.Scale(8))
	})

	t.Run("shifted to the start agrees with the start frame", func(t *testing.T) {
		t.Parallel()
		s := f.Shifted(-3)
		start, err := l.Frame(12, 0)
		require.NoError(t, err)
		require.Equal(t, 0, s.First)
		for i := 0; i < 12; i++ {
			require.InDelta(t, start.Scale(i), s.Scale(i), 1e-12, "index %d", i)
		}
	})

	t.Run("clamped at the end", func(t *testing.T) {
		t.Parallel()
		s := f.Shifted(40)
		require.Equal(t, 5, s.First)
		require.Equal(t, 11, s.Last)
	})

	t.Run("fallback frames never shift", func(t *testing.T) {
		t.Parallel()
		small, err := l.Frame(4, 1)
		require.NoError(t, err)
		require.Equal(t, small, small.Shifted(2))
	})
}
