package typing

import (
	"time"

	"github.com/verte-zerg/mecano/internal/source"
	"github.com/verte-zerg/mecano/internal/terminal"
)

// Stroke describes the effect of one keystroke on the buffer.
type Stroke struct {
	// Miss is set when the keystroke did not match its slot or overflowed the word.
	Miss      bool
	Finalized bool
	Result    Result
}

// Buffer owns the practice words, keeps enough of them to fill a cols x rows
// viewport and redraws the viewport on a Frame.
//
// The selected word is always on the first visible row: when the next word
// does not fit the rest of that row, the viewport scrolls so that it starts
// at the selected word.
type Buffer struct {
	words  []*Word
	source source.WordSource
	theme  terminal.Theme
	frame  terminal.Frame

	selected      int
	printOffset   int
	lineChars     int
	charsBuffered int

	cols   int
	rows   int
	column int
	row    int

	remaining time.Duration
	pending   time.Duration
}

// NewBuffer fills a buffer for a cols x rows viewport and selects the first word.
func NewBuffer(src source.WordSource, theme terminal.Theme, countdown time.Duration, cols, rows int, frame terminal.Frame) *Buffer {
	b := &Buffer{
		source:    src,
		theme:     theme,
		frame:     frame,
		remaining: countdown,
	}
	b.SetSize(cols, rows)
	b.ensureWord(0)
	b.words[0].Select()
	return b
}

// completeSize pulls words until the undisplayed look-ahead covers the viewport.
func (b *Buffer) completeSize() {
	for b.charsBuffered < b.cols*b.rows {
		b.push()
	}
}

func (b *Buffer) push() {
	word := NewWord(b.source.Next())
	b.charsBuffered += word.BaseWidth() + 1
	b.words = append(b.words, word)
}

func (b *Buffer) ensureWord(idx int) {
	for len(b.words) <= idx {
		b.push()
	}
}

// TypeChar applies a typed character to the selected word.
func (b *Buffer) TypeChar(c rune) Stroke {
	w := b.words[b.selected]
	extraBefore := w.ExtraLen()
	rightBefore := w.Stats().Right

	separator := w.TypeChar(c, b.pending)
	b.pending = 0

	if w.ExtraLen() != extraBefore {
		b.Render()
	} else {
		b.printSelected()
	}

	if separator {
		res := b.nextWord()
		return Stroke{Finalized: true, Result: res}
	}
	return Stroke{Miss: w.Stats().Right == rightBefore}
}

// Backspace removes the last keystroke of the selected word.
func (b *Buffer) Backspace() {
	w := b.words[b.selected]
	extraBefore := w.ExtraLen()
	w.Delete()
	if w.ExtraLen() != extraBefore {
		b.Render()
		return
	}
	b.printSelected()
}

func (b *Buffer) nextWord() Result {
	w := b.words[b.selected]
	res, _ := w.Unselect()
	b.printSelected()

	b.charsBuffered -= w.Width() + 1
	b.lineChars += w.Width() + 1

	b.selected++
	b.ensureWord(b.selected)
	next := b.words[b.selected]
	next.Select()

	if b.lineChars+next.Width() >= b.cols {
		b.wrap()
		b.Render()
	} else {
		b.printSelected()
	}
	return res
}

// wrap starts a fresh first row at the selected word.
func (b *Buffer) wrap() {
	b.printOffset = b.selected
	b.lineChars = 0
	b.completeSize()
}

func (b *Buffer) printSelected() int {
	if b.frame == nil {
		return 0
	}
	b.frame.MoveTo(b.column+b.lineChars, b.row)
	return printWord(b.frame, b.theme, b.words[b.selected], b.cols-b.lineChars)
}

// Render clears the viewport and draws every visible word.
func (b *Buffer) Render() {
	f := b.frame
	if f == nil {
		return
	}
	f.ResetStyle()
	empty := blank(b.cols)
	for y := 0; y < b.rows; y++ {
		f.MoveTo(b.column, b.row+y)
		f.WriteText(empty)
	}

	f.MoveTo(b.column, b.row)
	remaining := b.cols
	line := 0
	for idx := b.printOffset; idx < len(b.words); idx++ {
		w := b.words[idx]
		if remaining < w.BaseWidth()+1 && remaining < b.cols {
			line++
			remaining = b.cols
			f.MoveTo(b.column, b.row+line)
		}
		if line >= b.rows {
			break
		}
		remaining -= printWord(f, b.theme, w, remaining)
	}
}

// Elapse advances the countdown and the idle time owed to the next keystroke.
// It reports whether any time remains.
func (b *Buffer) Elapse(dt time.Duration) bool {
	if dt > b.remaining {
		b.remaining = 0
	} else {
		b.remaining -= dt
	}
	b.pending += dt
	return b.remaining != 0
}

// SetSize changes the viewport geometry and refills the look-ahead.
func (b *Buffer) SetSize(cols, rows int) {
	b.cols = cols
	b.rows = rows
	if b.selected < len(b.words) && b.lineChars+b.words[b.selected].Width() >= cols {
		b.wrap()
	}
	b.completeSize()
}

// SetOrigin moves the top-left corner of the viewport.
func (b *Buffer) SetOrigin(column, row int) {
	b.column = column
	b.row = row
}

// Remaining is the countdown left.
func (b *Buffer) Remaining() time.Duration { return b.remaining }

// Pending is the idle time that will be charged to the next keystroke.
func (b *Buffer) Pending() time.Duration { return b.pending }

// Selected returns the word being typed.
func (b *Buffer) Selected() *Word { return b.words[b.selected] }

// SelectedIndex is the index of the word being typed.
func (b *Buffer) SelectedIndex() int { return b.selected }

// PrintOffset is the index of the first visible word.
func (b *Buffer) PrintOffset() int { return b.printOffset }

// LineChars is the width consumed on the current row.
func (b *Buffer) LineChars() int { return b.lineChars }

// CharsBuffered is the look-ahead width not yet consumed.
func (b *Buffer) CharsBuffered() int { return b.charsBuffered }

// Size returns the viewport geometry.
func (b *Buffer) Size() (cols, rows int) { return b.cols, b.rows }

// Words returns the number of words pulled so far.
func (b *Buffer) Words() int { return len(b.words) }

// Word returns the word at idx.
func (b *Buffer) Word(idx int) *Word { return b.words[idx] }
