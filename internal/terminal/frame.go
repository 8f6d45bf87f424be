// Package terminal abstracts the drawing surface and input events used by a session.
package terminal

import (
	"fmt"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/verte-zerg/mecano/internal/model"
)

// Frame is the surface a session draws on and reads events from.
type Frame interface {
	MoveTo(col, row int)
	SetForeground(c Color)
	SetUnderline(on bool)
	ResetStyle()
	WriteText(s string)
	Clear()
	Size() (cols, rows int)
	// PollEvent returns the next pending event, waiting at most timeout.
	PollEvent(timeout time.Duration) (Event, bool)
	Show()
	Close()
}

// EventKind tells which fields of an Event are meaningful.
type EventKind int

const (
	EventKey EventKind = iota
	EventResize
	EventFocusGained
	EventFocusLost
)

// Key identifies a non-printable key or KeyRune for text input.
type Key int

const (
	KeyUnknown Key = iota
	KeyRune
	KeyBackspace
	KeyEnter
	KeyTab
	KeyEsc
	KeyCtrlC
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
)

// ModMask is a set of keyboard modifiers.
type ModMask uint8

const (
	ModShift ModMask = 1 << iota
	ModCtrl
	ModAlt
	ModNone ModMask = 0
)

// Event is a key press, a resize or a focus change.
type Event struct {
	Kind EventKind
	Key  Key
	Rune rune
	Mod  ModMask
	Cols int
	Rows int
}

// RuneEvent returns a key event for a printable rune.
func RuneEvent(r rune) Event {
	return Event{Kind: EventKey, Key: KeyRune, Rune: r}
}

// KeyEvent returns a key event for a special key.
func KeyEvent(k Key) Event {
	return Event{Kind: EventKey, Key: k}
}

// ResizeEvent returns a resize event.
func ResizeEvent(cols, rows int) Event {
	return Event{Kind: EventResize, Cols: cols, Rows: rows}
}

// Color is a 24-bit foreground color. The zero value is the terminal default.
type Color struct {
	R, G, B uint8
	set     bool
}

// ColorDefault resets the foreground to the terminal default.
var ColorDefault = Color{}

// RGB returns an explicit color.
func RGB(r, g, b uint8) Color {
	return Color{R: r, G: g, B: b, set: true}
}

// IsDefault reports whether c is the terminal default color.
func (c Color) IsDefault() bool {
	return !c.set
}

// ParseColor accepts #rrggbb or a W3C color name.
func ParseColor(s string) (Color, error) {
	tc := tcell.GetColor(s)
	if tc == tcell.ColorDefault {
		return Color{}, fmt.Errorf("invalid color %q", s)
	}
	r, g, b := tc.RGB()
	if r < 0 || g < 0 || b < 0 {
		return Color{}, fmt.Errorf("invalid color %q", s)
	}
	return RGB(uint8(r), uint8(g), uint8(b)), nil
}

// Theme holds the parsed word state colors.
type Theme struct {
	Selected Color
	Wrong    Color
	Right    Color
}

// ParseTheme parses every color of t.
func ParseTheme(t model.Theme) (Theme, error) {
	selected, err := ParseColor(t.Selected)
	if err != nil {
		return Theme{}, fmt.Errorf("theme.selected: %w", err)
	}
	wrong, err := ParseColor(t.Wrong)
	if err != nil {
		return Theme{}, fmt.Errorf("theme.wrong: %w", err)
	}
	right, err := ParseColor(t.Right)
	if err != nil {
		return Theme{}, fmt.Errorf("theme.right: %w", err)
	}
	return Theme{Selected: selected, Wrong: wrong, Right: right}, nil
}
