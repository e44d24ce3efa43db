package components

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
	"github.com/muesli/termenv"
)

// GlyphSet lists the characters used to draw indicator dots. Dots run from
// full size to smallest.
type GlyphSet struct {
	Selected string
	Dots     []string
	Ellipsis string
	Prev     string
	Next     string
}

var (
	unicodeGlyphs = GlyphSet{Selected: "●", Dots: []string{"●", "•", "·"}, Ellipsis: "…", Prev: "‹", Next: "›"}
	asciiGlyphs   = GlyphSet{Selected: "@", Dots: []string{"O", "o", "."}, Ellipsis: "...", Prev: "<", Next: ">"}
)

// Glyph picks the character for a dot of the given scale. Scales from 1 down
// to 0.5 span the whole set; anything smaller uses the last glyph.
func (g GlyphSet) Glyph(scale float64, selected bool) string {
	if selected {
		return g.Selected
	}
	if len(g.Dots) == 0 {
		return g.Selected
	}
	idx := int(math.Round((1 - scale) * 2 * float64(len(g.Dots)-1)))
	if idx < 0 {
		idx = 0
	}
	if idx >= len(g.Dots) {
		idx = len(g.Dots) - 1
	}
	return g.Dots[idx]
}

// width is the widest glyph in cells.
func (g GlyphSet) width() int {
	w := runewidth.StringWidth(g.Selected)
	for _, dot := range g.Dots {
		if dw := runewidth.StringWidth(dot); dw > w {
			w = dw
		}
	}
	return w
}

// Profile is the terminal capability profile chosen once at startup.
type Profile struct {
	Name   string
	Colors termenv.Profile
	Glyphs GlyphSet
	// CellWidth is the number of columns one dot occupies.
	CellWidth int
}

func newProfile(name string, colors termenv.Profile, glyphs GlyphSet) Profile {
	// Terminals in East Asian locales draw ambiguous-width dots two columns
	// wide, which breaks alignment. Fall back to ASCII there.
	if glyphs.width() > 1 {
		glyphs = asciiGlyphs
	}
	return Profile{Name: name, Colors: colors, Glyphs: glyphs, CellWidth: max(1, glyphs.width())}
}

// UnicodeProfile draws unicode dots in true colour.
func UnicodeProfile() Profile {
	return newProfile("truecolor", termenv.TrueColor, unicodeGlyphs)
}

// ASCIIProfile draws plain ASCII dots without colour.
func ASCIIProfile() Profile {
	return Profile{Name: "ascii", Colors: termenv.Ascii, Glyphs: asciiGlyphs, CellWidth: 1}
}

// DetectProfile inspects the environment of the current process.
func DetectProfile() Profile {
	colors := termenv.EnvColorProfile()
	if colors == termenv.Ascii {
		p := ASCIIProfile()
		p.Name = "auto"
		return p
	}
	return newProfile("auto", colors, unicodeGlyphs)
}

// ProfileByName resolves a configured profile name. "auto" and the empty
// name detect from the environment.
func ProfileByName(name string) (Profile, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "auto":
		return DetectProfile(), nil
	case "ascii":
		return ASCIIProfile(), nil
	case "ansi":
		return newProfile("ansi", termenv.ANSI, unicodeGlyphs), nil
	case "ansi256":
		return newProfile("ansi256", termenv.ANSI256, unicodeGlyphs), nil
	case "truecolor":
		return UnicodeProfile(), nil
	default:
		return Profile{}, fmt.Errorf("unknown platform profile %q", name)
	}
}

// Apply makes lipgloss render with the profile's colour depth. Call it once
// at startup.
func (p Profile) Apply() {
	lipgloss.SetColorProfile(p.Colors)
}
