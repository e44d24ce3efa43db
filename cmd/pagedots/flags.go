package main

import (
	"fmt"
	"path/filepath"

	"github.com/alexisbeaulieu97/pagedots/internal/validation"
)

func validateConfigPath(path string) error {
	abs, err := filepath.Abs(path)
	if err != nil {
		return fmt.Errorf("resolve config path: %w", err)
	}
	if err := validation.CheckConfigPath(abs); err != nil {
		return fmt.Errorf("config %s: %w", path, err)
	}
	return nil
}
