// Package model defines shared data structures.
package model

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// ErrInvalidMode is returned when a mode name is not recognized.
var ErrInvalidMode = errors.New("invalid mode")

// Mode selects how practice words are produced.
type Mode int

const (
	// ModeFile replays the words of a file in order, looping at the end.
	ModeFile Mode = iota
	// ModeDictionary samples words uniformly from a dictionary.
	ModeDictionary
)

// Modes returns every supported mode in display order.
func Modes() []Mode {
	return []Mode{ModeDictionary, ModeFile}
}

// String returns the config name of the mode.
func (m Mode) String() string {
	switch m {
	case ModeFile:
		return "file"
	case ModeDictionary:
		return "dictionary"
	default:
		return fmt.Sprintf("mode(%d)", int(m))
	}
}

// ParseMode maps a config name to a Mode.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "file":
		return ModeFile, nil
	case "dictionary":
		return ModeDictionary, nil
	default:
		return 0, fmt.Errorf("%w %q (expecting one of: %s)", ErrInvalidMode, s, ModeNames())
	}
}

// ModeNames returns the quoted, comma separated list of mode names.
func ModeNames() string {
	names := make([]string, 0, len(Modes()))
	for _, m := range Modes() {
		names = append(names, fmt.Sprintf("%q", m.String()))
	}
	return strings.Join(names, ", ")
}

// Theme holds the foreground colors used for word states, as #rrggbb.
type Theme struct {
	Selected string
	Wrong    string
	Right    string
}

// Config defines session settings.
type Config struct {
	Mode     Mode
	File     string
	Width    int
	Lines    int
	Rate     int
	Duration time.Duration
	Theme    Theme
	Sound    bool
}

// FrameDuration is the target duration of one loop tick.
func (c Config) FrameDuration() time.Duration {
	if c.Rate <= 0 {
		return time.Second
	}
	return time.Second / time.Duration(c.Rate)
}

// Validate reports the first invalid field.
func (c Config) Validate() error {
	if c.Mode != ModeFile && c.Mode != ModeDictionary {
		return fmt.Errorf("%w: %v", ErrInvalidMode, c.Mode)
	}
	if c.Width <= 0 {
		return fmt.Errorf("--width must be > 0")
	}
	if c.Lines <= 0 {
		return fmt.Errorf("--lines must be > 0")
	}
	if c.Rate <= 0 {
		return fmt.Errorf("--rate must be > 0")
	}
	if c.Duration <= 0 {
		return fmt.Errorf("--time must be > 0")
	}
	if strings.TrimSpace(c.File) == "" {
		return fmt.Errorf("--file must not be empty")
	}
	return nil
}
