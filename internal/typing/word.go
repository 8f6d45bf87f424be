// Package typing tracks typing progress over a stream of words and lays the
// words out in a fixed viewport.
package typing

import (
	"time"
	"unicode"

	"github.com/verte-zerg/mecano/internal/terminal"
)

// Status is the state of one character slot.
type Status int

const (
	Unreached Status = iota
	Selected
	Right
	Wrong
)

// String returns the status name.
func (s Status) String() string {
	switch s {
	case Unreached:
		return "unreached"
	case Selected:
		return "selected"
	case Right:
		return "right"
	case Wrong:
		return "wrong"
	default:
		return "unknown"
	}
}

// Slot is one character of a word and how it was typed.
type Slot struct {
	Char   rune
	Status Status
}

// WordStats are the counters of a single word.
type WordStats struct {
	Right  int
	Wrong  int
	Extra  int
	Missed int
	// KeyTimes holds one duration per accepted keystroke.
	KeyTimes []time.Duration
}

// Result is the frozen outcome of a finalized word.
type Result struct {
	Text    string
	Correct bool
	WordStats
	Slots []Slot
}

// Elapsed is the sum of the keystroke durations.
func (r Result) Elapsed() time.Duration {
	var total time.Duration
	for _, d := range r.KeyTimes {
		total += d
	}
	return total
}

// Word holds the typing progress of one practice word.
type Word struct {
	text      string
	slots     []Slot
	overflow  []rune
	cursor    int
	// Cell widths of the slots and of the overflow.
	baseWidth  int
	extraWidth int
	stats     WordStats
	selected  bool
	finalized bool
	correct   bool
}

// NewWord returns an untouched word.
func NewWord(text string) *Word {
	runes := []rune(text)
	slots := make([]Slot, len(runes))
	for i, r := range runes {
		slots[i] = Slot{Char: r, Status: Unreached}
	}
	return &Word{text: text, slots: slots, baseWidth: terminal.TextWidth(text)}
}

// TypeChar applies one keystroke that took dt. It reports whether c is a
// separator, in which case the caller finalizes the word.
func (w *Word) TypeChar(c rune, dt time.Duration) bool {
	if w.finalized {
		return false
	}
	w.stats.KeyTimes = append(w.stats.KeyTimes, dt)
	if unicode.IsSpace(c) {
		return true
	}
	if w.cursor < len(w.slots) {
		slot := &w.slots[w.cursor]
		if slot.Char == c {
			slot.Status = Right
			w.stats.Right++
		} else {
			slot.Status = Wrong
			w.stats.Wrong++
		}
		w.cursor++
		if w.cursor < len(w.slots) {
			w.slots[w.cursor].Status = Selected
		}
		return false
	}
	w.overflow = append(w.overflow, c)
	w.extraWidth += terminal.RuneWidth(c)
	w.stats.Extra++
	return false
}

// Delete removes the last keystroke. Deleting with nothing typed is a no-op.
func (w *Word) Delete() {
	if w.finalized || (w.cursor == 0 && len(w.overflow) == 0) {
		return
	}
	w.mergeLastKeyTimes()
	if n := len(w.overflow); n > 0 {
		w.extraWidth -= terminal.RuneWidth(w.overflow[n-1])
		w.overflow = w.overflow[:n-1]
		w.stats.Extra--
		return
	}
	if w.cursor < len(w.slots) {
		w.slots[w.cursor].Status = Unreached
	}
	w.cursor--
	slot := &w.slots[w.cursor]
	switch slot.Status {
	case Right:
		w.stats.Right--
	case Wrong:
		w.stats.Wrong--
	}
	slot.Status = Selected
}

// mergeLastKeyTimes joins the last two intervals: the keystroke between them is gone.
func (w *Word) mergeLastKeyTimes() {
	times := w.stats.KeyTimes
	switch n := len(times); {
	case n >= 2:
		times[n-2] += times[n-1]
		w.stats.KeyTimes = times[:n-1]
	case n == 1:
		w.stats.KeyTimes = times[:0]
	}
}

// Select marks the word as the one being typed.
func (w *Word) Select() {
	if w.finalized {
		return
	}
	w.selected = true
	if w.cursor < len(w.slots) {
		w.slots[w.cursor].Status = Selected
	}
}

// Unselect finalizes the word. The second call returns false and changes nothing.
func (w *Word) Unselect() (Result, bool) {
	if w.finalized {
		return Result{}, false
	}
	w.selected = false
	w.finalized = true
	w.correct = len(w.overflow) == 0
	for i := range w.slots {
		slot := &w.slots[i]
		switch slot.Status {
		case Selected:
			slot.Status = Unreached
			w.stats.Missed++
		case Unreached:
			w.stats.Missed++
		}
		if slot.Status != Right {
			w.correct = false
		}
	}
	return w.Result(), true
}

// Result returns a copy of the word's current outcome.
func (w *Word) Result() Result {
	stats := w.stats
	stats.KeyTimes = append([]time.Duration(nil), w.stats.KeyTimes...)
	return Result{
		Text:      w.text,
		Correct:   w.correct,
		WordStats: stats,
		Slots:     w.Slots(),
	}
}

// Text returns the source word.
func (w *Word) Text() string { return w.text }

// Len is the number of character slots.
func (w *Word) Len() int { return len(w.slots) }

// ExtraLen is the number of overflow characters.
func (w *Word) ExtraLen() int { return len(w.overflow) }

// BaseWidth is the number of cells of the source word.
func (w *Word) BaseWidth() int { return w.baseWidth }

// Width is the number of cells the word occupies without its separator.
func (w *Word) Width() int { return w.baseWidth + w.extraWidth }

// Cursor is the index of the next slot to type.
func (w *Word) Cursor() int { return w.cursor }

// Overflow returns the characters typed past the end of the word.
func (w *Word) Overflow() string { return string(w.overflow) }

// Stats returns the word counters.
func (w *Word) Stats() WordStats { return w.stats }

// IsSelected reports whether the word is being typed.
func (w *Word) IsSelected() bool { return w.selected }

// IsFinalized reports whether the word has been completed.
func (w *Word) IsFinalized() bool { return w.finalized }

// Slots returns a copy of the character slots.
func (w *Word) Slots() []Slot {
	return append([]Slot(nil), w.slots...)
}
