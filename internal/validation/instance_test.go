package validation

import (
	"testing"

	"github.com/stretchr/testify/require"
)

type sample struct {
	Visible   int    `yaml:"visible_count" validate:"odd,gtfield=Center"`
	Center    int    `yaml:"center_count" validate:"gte=1,odd"`
	Direction string `yaml:"direction" validate:"direction"`
	Profile   string `yaml:"profile" validate:"profile_name"`
	Theme     string `yaml:"theme" validate:"theme_name"`
}

func TestValidatorIsShared(t *testing.T) {
	require.Same(t, Validator(), Validator())
}

func TestOddTag(t *testing.T) {
	t.Parallel()

	v := Validator()
	for _, n := range []int{1, 3, 7, -5} {
		require.NoError(t, v.Var(n, "odd"), "%d should be odd", n)
	}
	for _, n := range []int{0, 2, 6, -4} {
		require.Error(t, v.Var(n, "odd"), "%d should not be odd", n)
	}
	require.NoError(t, v.Var(uint(9), "odd"))
	require.Error(t, v.Var("seven", "odd"))
}

func TestNameTags(t *testing.T) {
	t.Parallel()

	v := Validator()
	tests := []struct {
		name  string
		value string
		tag   string
		ok    bool
	}{
		{"empty direction uses default", "", "direction", true},
		{"ltr", "ltr", "direction", true},
		{"upper case rtl", "RTL", "direction", true},
		{"unknown direction", "sideways", "direction", false},
		{"ascii profile", "ascii", "profile_name", true},
		{"truecolor profile", "truecolor", "profile_name", true},
		{"unknown profile", "cga", "profile_name", false},
		{"dark theme", "dark", "theme_name", true},
		{"unknown theme", "neon", "theme_name", false},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			err := v.Var(tt.value, tt.tag)
			require.Equal(t, tt.ok, err == nil, "value %q tag %s: %v", tt.value, tt.tag, err)
		})
	}
}

func TestFieldErrorHelpers(t *testing.T) {
	t.Parallel()

	t.Run("odd failure uses yaml name", func(t *testing.T) {
		t.Parallel()
		err := Validator().Struct(sample{Visible: 6, Center: 3})
		fe, ok := FirstFieldError(err)
		require.True(t, ok)
		require.Equal(t, "visible_count", FieldPath(fe))
		require.Equal(t, "must be odd", Describe(fe))
	})

	t.Run("gtfield failure names the other field", func(t *testing.T) {
		t.Parallel()
		err := Validator().Struct(sample{Visible: 3, Center: 5})
		fe, ok := FirstFieldError(err)
		require.True(t, ok)
		require.Equal(t, "visible_count", FieldPath(fe))
		require.Equal(t, "must be greater than center", Describe(fe))
	})

	t.Run("non validator error", func(t *testing.T) {
		t.Parallel()
		_, ok := FirstFieldError(nil)
		require.False(t, ok)
	})
}
