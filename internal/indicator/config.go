package indicator

import (
	"strings"

	"github.com/alexisbeaulieu97/pagedots/internal/validation"
	apperrors "github.com/alexisbeaulieu97/pagedots/pkg/errors"
)

// Direction is the order in which dots are laid out.
type Direction string

const (
	LeftToRight Direction = "ltr"
	RightToLeft Direction = "rtl"
	TopToBottom Direction = "ttb"
	BottomToTop Direction = "btt"
)

// Normalize lower-cases the direction and maps the empty value to LeftToRight.
func (d Direction) Normalize() Direction {
	n := Direction(strings.ToLower(strings.TrimSpace(string(d))))
	if n == "" {
		return LeftToRight
	}
	return n
}

// Reversed reports whether offsets are mirrored for this direction.
func (d Direction) Reversed() bool {
	n := d.Normalize()
	return n == RightToLeft || n == BottomToTop
}

// Vertical reports whether dots stack along the vertical axis.
func (d Direction) Vertical() bool {
	n := d.Normalize()
	return n == TopToBottom || n == BottomToTop
}

// Config holds the layout constants of a compact indicator. Total and the
// selected index are per-render inputs and are passed to Layout.Frame.
type Config struct {
	VisibleCount int       `yaml:"visible_count" toml:"visible_count" validate:"odd,gtfield=CenterCount"`
	CenterCount  int       `yaml:"center_count" toml:"center_count" validate:"gte=1,odd"`
	EdgeScale    float64   `yaml:"edge_scale" toml:"edge_scale" validate:"gt=0,lte=1"`
	DotSize      float64   `yaml:"dot_size" toml:"dot_size" validate:"gte=0"`
	Spacing      float64   `yaml:"spacing" toml:"spacing" validate:"gte=0"`
	Direction    Direction `yaml:"direction" toml:"direction" validate:"direction"`
}

// DefaultConfig returns a seven dot window with three full-size centre dots.
func DefaultConfig() Config {
	return Config{
		VisibleCount: 7,
		CenterCount:  3,
		EdgeScale:    0.5,
		DotSize:      1,
		Spacing:      1,
		Direction:    LeftToRight,
	}
}

// Validate checks parity, ordering and range rules.
func (c Config) Validate() error {
	if err := validation.Validator().Struct(c); err != nil {
		if fe, ok := validation.FirstFieldError(err); ok {
			return apperrors.NewInvalidLayoutConfigError(validation.FieldPath(fe), validation.Describe(fe), err)
		}
		return apperrors.NewInvalidLayoutConfigError("", err.Error(), err)
	}
	return nil
}
