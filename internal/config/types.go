package config

import (
	"github.com/alexisbeaulieu97/pagedots/internal/indicator"
)

// File is the pagedots configuration document. It decodes from YAML or TOML.
type File struct {
	Indicator indicator.Config `yaml:"indicator" toml:"indicator"`
	Carousel  Carousel         `yaml:"carousel" toml:"carousel"`
	Theme     Theme            `yaml:"theme" toml:"theme"`
	Platform  Platform         `yaml:"platform" toml:"platform"`
	Log       Log              `yaml:"log" toml:"log"`
}

// Carousel describes the pages shown by the demo carousel and how far the
// inflated index space extends.
type Carousel struct {
	DuplicateGroups int `yaml:"duplicate_groups" toml:"duplicate_groups" validate:"gte=1,lte=100000"`
	// InitialGroup of -1 places the selection in the middle group.
	InitialGroup int    `yaml:"initial_group" toml:"initial_group" validate:"gte=-1,ltfield=DuplicateGroups"`
	InitialPage  string `yaml:"initial_page,omitempty" toml:"initial_page"`
	Pages        []Page `yaml:"pages" toml:"pages" validate:"required,min=1,dive"`
}

// Page is one carousel entry.
type Page struct {
	Title string `yaml:"title" toml:"title" validate:"required,max=64"`
	Body  string `yaml:"body,omitempty" toml:"body"`
}

// Theme selects one of the built-in themes.
type Theme struct {
	Name string `yaml:"name" toml:"name" validate:"theme_name"`
}

// Platform selects the terminal capability profile. "auto" detects it.
type Platform struct {
	Profile string `yaml:"profile" toml:"profile" validate:"profile_name"`
}

// Log holds logger settings.
type Log struct {
	Level         string `yaml:"level" toml:"level" validate:"omitempty,oneof=debug info warn error"`
	HumanReadable bool   `yaml:"human_readable" toml:"human_readable"`
	File          string `yaml:"file,omitempty" toml:"file"`
}

// Default returns the configuration used when no file is given.
func Default() File {
	return File{
		Indicator: indicator.DefaultConfig(),
		Carousel: Carousel{
			DuplicateGroups: 101,
			InitialGroup:    -1,
			Pages:           DefaultPages(),
		},
		Theme:    Theme{Name: "default"},
		Platform: Platform{Profile: "auto"},
		Log:      Log{Level: "info"},
	}
}

// DefaultPages is a small sample deck.
func DefaultPages() []Page {
	titles := []string{
		"Welcome", "Layouts", "Regions", "Offsets", "Scales",
		"Windows", "Inflation", "Headroom", "Themes", "Profiles",
		"Animation", "Mouse", "Reload", "Farewell",
	}
	pages := make([]Page, 0, len(titles))
	for _, title := range titles {
		pages = append(pages, Page{Title: title})
	}
	pages[0].Body = "Use ←/→ to move between pages and click a dot to jump."
	pages[len(pages)-1].Body = "Keep going: the carousel wraps around."
	return pages
}

// ResolvedInitialGroup returns the group the initial selection is placed in.
func (c Carousel) ResolvedInitialGroup() int {
	if c.InitialGroup < 0 {
		return c.DuplicateGroups / 2
	}
	return c.InitialGroup
}

// ResolvedInitialPage returns the page the carousel starts on.
func (c Carousel) ResolvedInitialPage() Page {
	for _, p := range c.Pages {
		if p.Title == c.InitialPage {
			return p
		}
	}
	if len(c.Pages) == 0 {
		return Page{}
	}
	return c.Pages[0]
}
