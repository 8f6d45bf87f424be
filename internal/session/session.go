// Package session runs one timed typing session: it owns the word buffer and
// the statistics, reacts to input events and paces the redraw loop.
package session

import (
	"context"
	"fmt"
	"time"
	"unicode"

	"github.com/verte-zerg/mecano/internal/model"
	"github.com/verte-zerg/mecano/internal/sound"
	"github.com/verte-zerg/mecano/internal/source"
	"github.com/verte-zerg/mecano/internal/stats"
	"github.com/verte-zerg/mecano/internal/terminal"
	"github.com/verte-zerg/mecano/internal/typing"
)

// State is the phase of a session.
type State int

const (
	Ready State = iota
	Running
	Stopped
	Finished
	TooNarrow
)

// String returns the state name.
func (s State) String() string {
	switch s {
	case Ready:
		return "ready"
	case Running:
		return "running"
	case Stopped:
		return "stopped"
	case Finished:
		return "finished"
	case TooNarrow:
		return "too narrow"
	default:
		return "unknown"
	}
}

const (
	widthStep        = 4
	minViewportWidth = 8
)

// Option customizes a Session.
type Option func(*Session)

// WithPlayer sets the keystroke feedback player.
func WithPlayer(p sound.Player) Option {
	return func(s *Session) {
		if p != nil {
			s.player = p
		}
	}
}

// Session is a single-threaded typing session bound to one Frame.
type Session struct {
	cfg    model.Config
	frame  terminal.Frame
	buffer *typing.Buffer
	stats  *stats.Aggregator
	player sound.Player

	state  State
	prior  State
	layout Layout
	width  int
	lines  int
	echo   []rune
	quit   bool
}

// New validates cfg and lays the session out on frame.
func New(cfg model.Config, frame terminal.Frame, src source.WordSource, opts ...Option) (*Session, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if src == nil {
		return nil, source.ErrEmpty
	}
	theme, err := terminal.ParseTheme(cfg.Theme)
	if err != nil {
		return nil, fmt.Errorf("failed to parse theme: %w", err)
	}
	s := &Session{
		cfg:    cfg,
		frame:  frame,
		stats:  stats.NewAggregator(),
		player: sound.Mute{},
		width:  cfg.Width,
		lines:  cfg.Lines,
	}
	for _, opt := range opts {
		opt(s)
	}
	s.buffer = typing.NewBuffer(src, theme, cfg.Duration, cfg.Width, cfg.Lines, frame)
	cols, rows := frame.Size()
	s.relayout(cols, rows)
	return s, nil
}

// Run builds a session on frame and runs it until the user quits.
func Run(ctx context.Context, cfg model.Config, frame terminal.Frame, src source.WordSource, opts ...Option) (stats.Summary, error) {
	s, err := New(cfg, frame, src, opts...)
	if err != nil {
		return stats.Summary{}, err
	}
	return s.Run(ctx)
}

// Run drives the tick loop: drain pending events in arrival order, advance
// the countdown, then sleep for the rest of the frame. A tick that overruns
// its frame is followed immediately by the next one. Context cancellation
// ends the session like a quit key.
func (s *Session) Run(ctx context.Context) (stats.Summary, error) {
	frameDur := s.cfg.FrameDuration()
	s.frame.Show()
	for !s.quit {
		start := time.Now()
		for !s.quit {
			ev, ok := s.frame.PollEvent(0)
			if !ok {
				break
			}
			s.HandleEvent(ev)
		}
		if s.quit {
			break
		}
		s.Tick(frameDur)

		wait := frameDur - time.Since(start)
		if wait <= 0 {
			if ctx.Err() != nil {
				break
			}
			continue
		}
		timer := time.NewTimer(wait)
		select {
		case <-ctx.Done():
			timer.Stop()
			s.quit = true
		case <-timer.C:
		}
	}
	return s.Summary(), nil
}

// HandleEvent applies one input event.
func (s *Session) HandleEvent(ev terminal.Event) {
	switch ev.Kind {
	case terminal.EventResize:
		if s.state == Running {
			s.state = Stopped
		}
		s.relayout(ev.Cols, ev.Rows)
	case terminal.EventFocusLost:
		if s.state == Running {
			s.state = Stopped
			s.drawClock()
		}
	case terminal.EventFocusGained:
		if s.state == Stopped {
			s.state = Running
			s.drawClock()
		}
	case terminal.EventKey:
		s.handleKey(ev)
	}
}

func (s *Session) handleKey(ev terminal.Event) {
	if ev.Key == terminal.KeyEsc || ev.Key == terminal.KeyCtrlC {
		s.quit = true
		return
	}
	if s.finished() {
		return
	}
	switch ev.Key {
	case terminal.KeyLeft:
		s.adjust(-widthStep, 0)
		return
	case terminal.KeyRight:
		s.adjust(widthStep, 0)
		return
	case terminal.KeyUp:
		s.adjust(0, -1)
		return
	case terminal.KeyDown:
		s.adjust(0, 1)
		return
	}
	if s.state == TooNarrow || ev.Mod&(terminal.ModCtrl|terminal.ModAlt) != 0 {
		return
	}
	switch ev.Key {
	case terminal.KeyBackspace:
		s.start()
		s.buffer.Backspace()
		if n := len(s.echo); n > 0 {
			s.echo = s.echo[:n-1]
		}
		s.drawEcho()
	case terminal.KeyEnter:
		s.typeRune('\n')
	case terminal.KeyTab:
		s.typeRune('\t')
	case terminal.KeyRune:
		if unicode.IsPrint(ev.Rune) || unicode.IsSpace(ev.Rune) {
			s.typeRune(ev.Rune)
		}
	}
}

func (s *Session) typeRune(r rune) {
	s.start()
	stroke := s.buffer.TypeChar(r)
	if stroke.Finalized {
		s.stats.Add(stroke.Result)
		s.echo = s.echo[:0]
	} else {
		s.echo = append(s.echo, r)
	}
	if stroke.Miss {
		s.player.Click()
	}
	s.drawEcho()
}

func (s *Session) finished() bool {
	return s.state == Finished || (s.state == TooNarrow && s.prior == Finished)
}

// start resumes the countdown on the first accepted typing key.
func (s *Session) start() {
	if s.state == Ready || s.state == Stopped {
		s.state = Running
		s.drawClock()
	}
}

// adjust resizes the viewport by the arrow keys.
func (s *Session) adjust(dWidth, dLines int) {
	width := max(s.width+dWidth, minViewportWidth)
	lines := max(s.lines+dLines, 1)
	if width == s.width && lines == s.lines {
		return
	}
	if s.state == Running {
		s.state = Stopped
	}
	s.width, s.lines = width, lines
	s.buffer.SetSize(width, lines)
	s.relayout(s.layout.Cols, s.layout.Rows)
}

// relayout recomputes the geometry and redraws everything, entering or
// leaving TooNarrow as needed.
func (s *Session) relayout(cols, rows int) {
	layout, ok := ComputeLayout(cols, rows, s.width, s.lines)
	s.layout = layout
	if !ok {
		if s.state != TooNarrow {
			s.prior = s.state
			s.state = TooNarrow
		}
		s.Draw()
		return
	}
	if s.state == TooNarrow {
		s.state = s.prior
	}
	s.buffer.SetOrigin(layout.Left, layout.Top)
	s.Draw()
}

// Tick advances the countdown by dt while Running and refreshes the clock.
func (s *Session) Tick(dt time.Duration) {
	if s.state == Running && !s.buffer.Elapse(dt) {
		s.state = Finished
		s.Draw()
	}
	if s.state != Finished && s.state != TooNarrow {
		s.drawClock()
	}
	s.frame.Show()
}

// State returns the current state.
func (s *Session) State() State { return s.state }

// Done reports whether the user asked to quit.
func (s *Session) Done() bool { return s.quit }

// Layout returns the current geometry.
func (s *Session) Layout() Layout { return s.layout }

// Buffer returns the word buffer.
func (s *Session) Buffer() *typing.Buffer { return s.buffer }

// Summary returns the statistics gathered so far.
func (s *Session) Summary() stats.Summary { return s.stats.Summary() }
