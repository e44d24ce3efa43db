package components

import (
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/pagedots/internal/indicator"
)

type recordingMarker struct {
	ids []string
}

func (m *recordingMarker) Mark(id, v string) string {
	m.ids = append(m.ids, id)
	return v
}

func asciiContext() RenderContext {
	return DefaultContext().WithProfile(ASCIIProfile())
}

func frameFor(t *testing.T, cfg indicator.Config, total, selected int) indicator.Frame {
	t.Helper()

	layout, err := indicator.NewLayout(cfg)
	require.NoError(t, err)
	frame, err := layout.Frame(total, selected)
	require.NoError(t, err)
	return frame
}

func TestPageIndicatorRendersRegions(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name     string
		selected int
		want     string
	}{
		{name: "start region ramps the trailing edge", selected: 0, want: "@ O O O O o ."},
		{name: "centre region ramps both edges", selected: 5, want: ". o O @ O o ."},
		{name: "end region ramps the leading edge", selected: 9, want: ". o O O O O @"},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			frame := frameFor(t, indicator.DefaultConfig(), 10, tc.selected)
			got := ansi.Strip(NewPageIndicator(frame).ViewWithContext(asciiContext()))
			require.Equal(t, tc.want, got)
		})
	}
}

func TestPageIndicatorFallbackDrawsEveryDot(t *testing.T) {
	t.Parallel()

	frame := frameFor(t, indicator.DefaultConfig(), 4, 2)
	require.Equal(t, "O O @ O", ansi.Strip(NewPageIndicator(frame).ViewWithContext(asciiContext())))
}

func TestPageIndicatorHonoursDirection(t *testing.T) {
	t.Parallel()

	cfg := indicator.DefaultConfig()
	cfg.Direction = indicator.RightToLeft
	frame := frameFor(t, cfg, 10, 0)
	require.Equal(t, ". o O O O O @", ansi.Strip(NewPageIndicator(frame).ViewWithContext(asciiContext())))

	cfg.Direction = indicator.TopToBottom
	cfg.Spacing = 0
	frame = frameFor(t, cfg, 10, 0)
	lines := strings.Split(ansi.Strip(NewPageIndicator(frame).ViewWithContext(asciiContext())), "\n")
	require.Equal(t, []string{"@", "O", "O", "O", "O", "o", "."}, lines)
}

func TestPageIndicatorDotSizeWidensCells(t *testing.T) {
	t.Parallel()

	cfg := indicator.DefaultConfig()
	cfg.DotSize = 3
	cfg.Spacing = 0
	frame := frameFor(t, cfg, 3, 0)
	require.Equal(t, " @  O  O ", ansi.Strip(NewPageIndicator(frame).ViewWithContext(asciiContext())))
}

func TestPageIndicatorMarksDots(t *testing.T) {
	t.Parallel()

	marker := &recordingMarker{}
	frame := frameFor(t, indicator.DefaultConfig(), 10, 5)
	NewPageIndicator(frame).WithMarker(marker, "dot-").ViewWithContext(asciiContext())

	require.Equal(t, []string{"dot-2", "dot-3", "dot-4", "dot-5", "dot-6", "dot-7", "dot-8"}, marker.ids)
}

func TestPageIndicatorEmptyFrame(t *testing.T) {
	t.Parallel()

	frame := frameFor(t, indicator.DefaultConfig(), 0, 0)
	require.Empty(t, NewPageIndicator(frame).View())
}

func TestDotZoneIDRoundTrip(t *testing.T) {
	t.Parallel()

	index, ok := ParseDotZoneID("dot-", DotZoneID("dot-", 12))
	require.True(t, ok)
	require.Equal(t, 12, index)

	_, ok = ParseDotZoneID("dot-", "dot-")
	require.False(t, ok)
	_, ok = ParseDotZoneID("dot-", "page-3")
	require.False(t, ok)
	_, ok = ParseDotZoneID("dot-", "dot--1")
	require.False(t, ok)
}
