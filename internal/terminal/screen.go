package terminal

import (
	"fmt"
	"time"

	"github.com/gdamore/tcell/v2"
)

const eventQueueSize = 100

// Screen is a Frame backed by a tcell screen.
type Screen struct {
	screen tcell.Screen
	events chan tcell.Event
	quit   chan struct{}

	col   int
	row   int
	style tcell.Style
}

// NewScreen switches the terminal to raw mode on the alternate screen.
func NewScreen() (*Screen, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("failed to create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("failed to init screen: %w", err)
	}
	screen.EnableFocus()
	screen.HideCursor()
	screen.Clear()

	s := &Screen{
		screen: screen,
		events: make(chan tcell.Event, eventQueueSize),
		quit:   make(chan struct{}),
		style:  tcell.StyleDefault,
	}
	go s.pump()
	return s, nil
}

// pump forwards tcell events until the screen is finalized.
func (s *Screen) pump() {
	for {
		ev := s.screen.PollEvent()
		if ev == nil {
			return
		}
		select {
		case s.events <- ev:
		case <-s.quit:
			return
		}
	}
}

// MoveTo implements Frame.
func (s *Screen) MoveTo(col, row int) {
	s.col = col
	s.row = row
}

// SetForeground implements Frame.
func (s *Screen) SetForeground(c Color) {
	if c.IsDefault() {
		s.style = s.style.Foreground(tcell.ColorDefault)
		return
	}
	s.style = s.style.Foreground(tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B)))
}

// SetUnderline implements Frame.
func (s *Screen) SetUnderline(on bool) {
	s.style = s.style.Underline(on)
}

// ResetStyle implements Frame.
func (s *Screen) ResetStyle() {
	s.style = tcell.StyleDefault
}

// WriteText implements Frame. The cursor advances by RuneWidth of each rune.
func (s *Screen) WriteText(text string) {
	for _, r := range text {
		s.screen.SetContent(s.col, s.row, r, nil, s.style)
		s.col += RuneWidth(r)
	}
}

// Clear implements Frame.
func (s *Screen) Clear() {
	s.screen.Clear()
}

// Size implements Frame.
func (s *Screen) Size() (int, int) {
	return s.screen.Size()
}

// Show implements Frame.
func (s *Screen) Show() {
	s.screen.Show()
}

// PollEvent implements Frame. Events tcell reports that a session has no use
// for are skipped.
func (s *Screen) PollEvent(timeout time.Duration) (Event, bool) {
	var timer <-chan time.Time
	if timeout > 0 {
		t := time.NewTimer(timeout)
		defer t.Stop()
		timer = t.C
	}
	for {
		var ev tcell.Event
		if timer == nil {
			select {
			case ev = <-s.events:
			default:
				return Event{}, false
			}
		} else {
			select {
			case ev = <-s.events:
			case <-timer:
				return Event{}, false
			}
		}
		if out, ok := convertEvent(ev); ok {
			return out, true
		}
	}
}

// Close restores the terminal.
func (s *Screen) Close() {
	close(s.quit)
	s.screen.Fini()
}

func convertEvent(ev tcell.Event) (Event, bool) {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return convertKey(ev), true
	case *tcell.EventResize:
		cols, rows := ev.Size()
		return ResizeEvent(cols, rows), true
	case *tcell.EventFocus:
		if ev.Focused {
			return Event{Kind: EventFocusGained}, true
		}
		return Event{Kind: EventFocusLost}, true
	default:
		return Event{}, false
	}
}

func convertKey(ev *tcell.EventKey) Event {
	out := Event{Kind: EventKey, Mod: convertMod(ev.Modifiers())}
	switch ev.Key() {
	case tcell.KeyRune:
		out.Key = KeyRune
		out.Rune = ev.Rune()
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		out.Key = KeyBackspace
	case tcell.KeyEnter:
		out.Key = KeyEnter
	case tcell.KeyTab:
		out.Key = KeyTab
	case tcell.KeyEscape:
		out.Key = KeyEsc
	case tcell.KeyCtrlC:
		out.Key = KeyCtrlC
	case tcell.KeyUp:
		out.Key = KeyUp
	case tcell.KeyDown:
		out.Key = KeyDown
	case tcell.KeyLeft:
		out.Key = KeyLeft
	case tcell.KeyRight:
		out.Key = KeyRight
	default:
		out.Key = KeyUnknown
	}
	return out
}

func convertMod(m tcell.ModMask) ModMask {
	var out ModMask
	if m&tcell.ModShift != 0 {
		out |= ModShift
	}
	if m&tcell.ModCtrl != 0 {
		out |= ModCtrl
	}
	if m&(tcell.ModAlt|tcell.ModMeta) != 0 {
		out |= ModAlt
	}
	return out
}
