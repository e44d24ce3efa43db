package components

import (
	"testing"

	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/pagedots/internal/indicator"
	"github.com/alexisbeaulieu97/pagedots/internal/inflate"
)

func titleCard(s string) Card {
	return Card{Title: s, Body: "about " + s}
}

func TestCarouselShowsNeighboursAcrossTheWrap(t *testing.T) {
	t.Parallel()

	inf, err := inflate.New([]string{"alpha", "beta", "gamma"}, 5, 2, "alpha")
	require.NoError(t, err)

	frame := frameFor(t, indicator.DefaultConfig(), 3, 0)
	out := ansi.Strip(NewCarousel(inf, titleCard).
		WithIndicator(NewPageIndicator(frame)).
		ViewWithContext(asciiContext()))

	require.Contains(t, out, "< gamma")
	require.Contains(t, out, "beta >")
	require.Contains(t, out, "alpha")
	require.Contains(t, out, "about alpha")
	require.Contains(t, out, "@ O O")
}

func TestCarouselFollowsSelection(t *testing.T) {
	t.Parallel()

	inf, err := inflate.NewCentered([]string{"alpha", "beta", "gamma"}, 3, "alpha")
	require.NoError(t, err)
	inf.Advance(2)

	out := ansi.Strip(NewCarousel(inf, titleCard).ViewWithContext(asciiContext()))
	require.Contains(t, out, "< beta")
	require.Contains(t, out, "alpha >")
	require.Contains(t, out, "about gamma")
}

func TestCarouselWithoutInflatorIsEmpty(t *testing.T) {
	t.Parallel()

	require.Empty(t, NewCarousel[string](nil, titleCard).View())
}
