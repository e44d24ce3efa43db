package tui

import (
	"fmt"

	"github.com/alexisbeaulieu97/pagedots/internal/config"
	"github.com/alexisbeaulieu97/pagedots/internal/indicator"
	"github.com/alexisbeaulieu97/pagedots/internal/inflate"
)

// Build turns a config document into the indicator layout and the carousel
// inflator the demo drives.
func Build(cfg *config.File) (*indicator.Layout, *inflate.Inflator[config.Page], error) {
	if cfg == nil {
		return nil, nil, fmt.Errorf("build demo: nil config")
	}

	layout, err := indicator.NewLayout(cfg.Indicator)
	if err != nil {
		return nil, nil, fmt.Errorf("build indicator layout: %w", err)
	}

	carousel := cfg.Carousel
	inf, err := inflate.New(carousel.Pages, carousel.DuplicateGroups, carousel.ResolvedInitialGroup(), carousel.ResolvedInitialPage())
	if err != nil {
		return nil, nil, fmt.Errorf("build carousel: %w", err)
	}

	return layout, inf, nil
}
