package components

import (
	"testing"

	"github.com/muesli/termenv"
	"github.com/stretchr/testify/require"
)

func TestGlyphForScale(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name     string
		glyphs   GlyphSet
		scale    float64
		selected bool
		want     string
	}{
		{name: "full size unicode", glyphs: unicodeGlyphs, scale: 1, want: "●"},
		{name: "three quarter unicode", glyphs: unicodeGlyphs, scale: 0.75, want: "•"},
		{name: "half unicode", glyphs: unicodeGlyphs, scale: 0.5, want: "·"},
		{name: "below half clamps", glyphs: unicodeGlyphs, scale: 0.1, want: "·"},
		{name: "selected wins", glyphs: asciiGlyphs, scale: 0.5, selected: true, want: "@"},
		{name: "full size ascii", glyphs: asciiGlyphs, scale: 1, want: "O"},
		{name: "three quarter ascii", glyphs: asciiGlyphs, scale: 0.75, want: "o"},
		{name: "half ascii", glyphs: asciiGlyphs, scale: 0.5, want: "."},
		{name: "empty set falls back", glyphs: GlyphSet{Selected: "x"}, scale: 1, want: "x"},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			require.Equal(t, tc.want, tc.glyphs.Glyph(tc.scale, tc.selected))
		})
	}
}

func TestProfileByName(t *testing.T) {
	t.Parallel()

	p, err := ProfileByName("ascii")
	require.NoError(t, err)
	require.Equal(t, termenv.Ascii, p.Colors)
	require.Equal(t, "@", p.Glyphs.Selected)
	require.Equal(t, 1, p.CellWidth)

	p, err = ProfileByName("ANSI256")
	require.NoError(t, err)
	require.Equal(t, termenv.ANSI256, p.Colors)
	require.Equal(t, "ansi256", p.Name)

	p, err = ProfileByName("")
	require.NoError(t, err)
	require.Equal(t, "auto", p.Name)

	_, err = ProfileByName("vt52")
	require.Error(t, err)
}

func TestProfilesUseSingleCellGlyphs(t *testing.T) {
	t.Parallel()

	for _, p := range []Profile{UnicodeProfile(), ASCIIProfile(), DetectProfile()} {
		require.Equal(t, 1, p.CellWidth, p.Name)
		require.Len(t, p.Glyphs.Dots, 3, p.Name)
	}
}
