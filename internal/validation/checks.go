package validation

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// SupportedConfigExtensions lists the config file formats pagedots can decode.
var SupportedConfigExtensions = []string{".yaml", ".yml", ".toml"}

// CheckFileExists verifies a regular file exists at the given path.
func CheckFileExists(path string) error {
	if strings.TrimSpace(path) == "" {
		return fmt.Errorf("path is required")
	}

	info, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("path %s does not exist", path)
		}
		return err
	}
	if info.IsDir() {
		return fmt.Errorf("path %s is a directory", path)
	}

	return nil
}

// CheckConfigPath verifies that path names an existing file in a supported format.
func CheckConfigPath(path string) error {
	if err := CheckFileExists(path); err != nil {
		return err
	}

	ext := strings.ToLower(filepath.Ext(path))
	for _, supported := range SupportedConfigExtensions {
		if ext == supported {
			return nil
		}
	}
	return fmt.Errorf("unsupported config extension %q (want one of %s)", ext, strings.Join(SupportedConfigExtensions, ", "))
}
