package config

import (
	"fmt"

	"github.com/alexisbeaulieu97/pagedots/internal/validation"
	apperrors "github.com/alexisbeaulieu97/pagedots/pkg/errors"
)

// ValidateFile performs structural and cross-field validation on a whole document.
func ValidateFile(cfg *File) error {
	if cfg == nil {
		return apperrors.NewValidationError("config", "configuration is nil", nil)
	}

	if err := validation.Validator().Struct(cfg); err != nil {
		return convertValidationError(err)
	}

	seen := make(map[string]int, len(cfg.Carousel.Pages))
	for i, page := range cfg.Carousel.Pages {
		if prev, exists := seen[page.Title]; exists {
			return apperrors.NewValidationError(fmt.Sprintf("carousel.pages[%d].title", i), fmt.Sprintf("duplicate page title %q (also pages[%d])", page.Title, prev), nil)
		}
		seen[page.Title] = i
	}

	if cfg.Carousel.InitialPage != "" {
		if _, ok := seen[cfg.Carousel.InitialPage]; !ok {
			return apperrors.NewValidationError("carousel.initial_page", fmt.Sprintf("references unknown page %q", cfg.Carousel.InitialPage), nil)
		}
	}

	return nil
}
