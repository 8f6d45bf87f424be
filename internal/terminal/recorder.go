package terminal

import (
	"strings"
	"time"
)

// Cell is one recorded screen position.
type Cell struct {
	Rune      rune
	Color     Color
	Underline bool
}

// Recorder is an in-memory Frame. It keeps a cell grid, a queue of events to
// hand out and counts writes that fall outside the grid.
type Recorder struct {
	cols, rows int
	cells      [][]Cell

	col, row  int
	color     Color
	underline bool

	queue []Event

	Writes    int
	OutOfGrid int
	Shows     int
	Closed    bool
}

// NewRecorder returns a blank Recorder of the given size.
func NewRecorder(cols, rows int) *Recorder {
	r := &Recorder{}
	r.Resize(cols, rows)
	return r
}

// Resize changes the grid size, clearing it.
func (r *Recorder) Resize(cols, rows int) {
	r.cols, r.rows = cols, rows
	r.Clear()
}

// Push queues events for PollEvent.
func (r *Recorder) Push(events ...Event) {
	r.queue = append(r.queue, events...)
}

// MoveTo implements Frame.
func (r *Recorder) MoveTo(col, row int) {
	r.col, r.row = col, row
}

// SetForeground implements Frame.
func (r *Recorder) SetForeground(c Color) {
	r.color = c
}

// SetUnderline implements Frame.
func (r *Recorder) SetUnderline(on bool) {
	r.underline = on
}

// ResetStyle implements Frame.
func (r *Recorder) ResetStyle() {
	r.color = ColorDefault
	r.underline = false
}

// WriteText implements Frame. A wide rune fills its first cell and blanks
// the cells it covers; a rune that would cross the right edge is counted in
// OutOfGrid.
func (r *Recorder) WriteText(s string) {
	r.Writes++
	for _, ch := range s {
		w := RuneWidth(ch)
		if r.row < 0 || r.row >= r.rows || r.col < 0 || r.col+w > r.cols {
			r.OutOfGrid++
		} else {
			r.cells[r.row][r.col] = Cell{Rune: ch, Color: r.color, Underline: r.underline}
			for i := 1; i < w; i++ {
				r.cells[r.row][r.col+i] = Cell{}
			}
		}
		r.col += w
	}
}

// Clear implements Frame.
func (r *Recorder) Clear() {
	r.cells = make([][]Cell, r.rows)
	for y := range r.cells {
		r.cells[y] = make([]Cell, r.cols)
		for x := range r.cells[y] {
			r.cells[y][x] = Cell{Rune: ' '}
		}
	}
}

// Size implements Frame.
func (r *Recorder) Size() (int, int) {
	return r.cols, r.rows
}

// PollEvent implements Frame. It never waits.
func (r *Recorder) PollEvent(time.Duration) (Event, bool) {
	if len(r.queue) == 0 {
		return Event{}, false
	}
	ev := r.queue[0]
	r.queue = r.queue[1:]
	return ev, true
}

// Show implements Frame.
func (r *Recorder) Show() {
	r.Shows++
}

// Close implements Frame.
func (r *Recorder) Close() {
	r.Closed = true
}

// CellAt returns the cell at col, row.
func (r *Recorder) CellAt(col, row int) Cell {
	if row < 0 || row >= r.rows || col < 0 || col >= r.cols {
		return Cell{}
	}
	return r.cells[row][col]
}

// Line returns the runes of a row, skipping cells covered by wide runes.
func (r *Recorder) Line(row int) string {
	if row < 0 || row >= r.rows {
		return ""
	}
	var b strings.Builder
	for _, c := range r.cells[row] {
		if c.Rune != 0 {
			b.WriteRune(c.Rune)
		}
	}
	return b.String()
}

// Span returns width runes of row starting at col.
func (r *Recorder) Span(col, row, width int) string {
	line := []rune(r.Line(row))
	if col < 0 || col >= len(line) {
		return ""
	}
	end := col + width
	if end > len(line) {
		end = len(line)
	}
	return string(line[col:end])
}

// Screen returns all rows joined by newlines.
func (r *Recorder) Screen() string {
	lines := make([]string, r.rows)
	for y := range lines {
		lines[y] = r.Line(y)
	}
	return strings.Join(lines, "\n")
}
