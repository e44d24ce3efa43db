package components

import (
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/require"
)

func TestRatio(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name  string
		index int
		total int
		want  float64
	}{
		{name: "empty", index: 0, total: 0, want: 0},
		{name: "first page", index: 0, total: 4, want: 0.25},
		{name: "last page", index: 3, total: 4, want: 1},
		{name: "past the end", index: 9, total: 4, want: 1},
		{name: "negative", index: -1, total: 4, want: 0},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			require.InDelta(t, tc.want, Ratio(tc.index, tc.total), 1e-9)
		})
	}
}

func TestPositionView(t *testing.T) {
	t.Parallel()

	p := NewPosition(10)
	require.Equal(t, 10, p.Width())

	out := ansi.Strip(p.View(2, 14))
	require.True(t, strings.HasPrefix(out, "3/14 "), out)
	require.NotContains(t, out, "%")

	require.True(t, strings.HasPrefix(ansi.Strip(p.View(0, 0)), "0/0 "))
}

func TestPositionWithWidth(t *testing.T) {
	t.Parallel()

	p := NewPosition(0)
	require.Equal(t, defaultBarWidth, p.Width())
	require.Equal(t, 12, p.WithWidth(12).Width())
	require.Equal(t, defaultBarWidth, p.WithWidth(-1).Width())
}
