package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	apperrors "github.com/alexisbeaulieu97/pagedots/pkg/errors"
)

// Format is a config file encoding.
type Format string

const (
	FormatYAML Format = "yaml"
	FormatTOML Format = "toml"
)

var yamlLineRegex = regexp.MustCompile(`line (\d+)`)

// FormatForPath picks the decoder from the file extension.
func FormatForPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".toml":
		return FormatTOML, nil
	default:
		return "", fmt.Errorf("unsupported config extension %q", filepath.Ext(path))
	}
}

// Load reads a configuration file from disk, applies defaults for omitted
// keys, validates it and returns the result.
func Load(path string) (*File, error) {
	format, err := FormatForPath(path)
	if err != nil {
		return nil, apperrors.NewParseError(path, 0, err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, apperrors.NewParseError(path, 0, err)
	}

	return parse(path, data, format)
}

// Parse decodes an in-memory document.
func Parse(data []byte, format Format) (*File, error) {
	return parse("<memory>", data, format)
}

func parse(path string, data []byte, format Format) (*File, error) {
	cfg := Default()

	switch format {
	case FormatTOML:
		// The toml decoder reuses slice backing arrays, which would leak
		// default page bodies into decoded pages.
		cfg.Carousel.Pages = nil
		md, err := toml.Decode(string(data), &cfg)
		if err != nil {
			return nil, apperrors.NewParseError(path, tomlLine(err), err)
		}
		if !md.IsDefined("carousel", "pages") {
			cfg.Carousel.Pages = DefaultPages()
		}
		if undecoded := md.Undecoded(); len(undecoded) > 0 {
			keys := make([]string, 0, len(undecoded))
			for _, key := range undecoded {
				keys = append(keys, key.String())
			}
			sort.Strings(keys)
			return nil, apperrors.NewParseError(path, 0, fmt.Errorf("unknown keys: %s", strings.Join(keys, ", ")))
		}
	case FormatYAML:
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
			return nil, apperrors.NewParseError(path, yamlLine(err), err)
		}
	default:
		return nil, apperrors.NewParseError(path, 0, fmt.Errorf("unknown format %q", format))
	}

	cfg.Indicator.Direction = cfg.Indicator.Direction.Normalize()

	if err := ValidateFile(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func yamlLine(err error) int {
	if err == nil {
		return 0
	}

	matches := yamlLineRegex.FindStringSubmatch(err.Error())
	if len(matches) != 2 {
		return 0
	}

	var line int
	_, scanErr := fmt.Sscanf(matches[1], "%d", &line)
	if scanErr != nil {
		return 0
	}

	return line
}

func tomlLine(err error) int {
	var parseErr toml.ParseError
	if errors.As(err, &parseErr) {
		return parseErr.Position.Line
	}
	return 0
}
