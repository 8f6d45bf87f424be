package config

import (
	"fmt"
	"time"

	"github.com/verte-zerg/mecano/internal/model"
)

// Defaults used when neither the config file nor a flag sets a value.
const (
	DefaultMode     = "dictionary"
	DefaultFile     = "100_english"
	DefaultWidth    = 80
	DefaultLines    = 2
	DefaultTimeSecs = 60
	DefaultRate     = 60

	DefaultSelectedColor = "#808080"
	DefaultWrongColor    = "#FF8080"
	DefaultRightColor    = "#40FF40"
)

// DefaultTheme returns the built-in word state colors.
func DefaultTheme() model.Theme {
	return model.Theme{
		Selected: DefaultSelectedColor,
		Wrong:    DefaultWrongColor,
		Right:    DefaultRightColor,
	}
}

// ResolveTheme overlays the configured colors on the defaults.
func ResolveTheme(tc ThemeConfig) model.Theme {
	theme := DefaultTheme()
	if tc.Selected != nil {
		theme.Selected = *tc.Selected
	}
	if tc.Wrong != nil {
		theme.Wrong = *tc.Wrong
	}
	if tc.Right != nil {
		theme.Right = *tc.Right
	}
	return theme
}

// DefaultDuration is the default countdown length.
func DefaultDuration() time.Duration {
	return DefaultTimeSecs * time.Second
}

// DefaultConfigTemplate is written by `mecano config` when no file exists.
func DefaultConfigTemplate() string {
	return fmt.Sprintf(`# mecano configuration
# Uncomment a value to enable it. CLI flags override config values.

[session]
# mode = %q     # "dictionary" samples words at random, "file" replays them in order
# file = %q     # Word file name or path
# width = %d             # Viewport width in columns
# lines = %d              # Visible lines of text
# time = %d              # Session length in seconds
# rate = %d              # Screen refreshes per second
# sound = false          # Click on mistyped keys

[theme]
# selected = %q  # Character under the cursor
# wrong = %q     # Mistyped characters
# right = %q     # Correct characters
`,
		DefaultMode,
		DefaultFile,
		DefaultWidth,
		DefaultLines,
		DefaultTimeSecs,
		DefaultRate,
		DefaultSelectedColor,
		DefaultWrongColor,
		DefaultRightColor,
	)
}
