package session

// Chrome around the viewport: the outer frame, the clock row, the text box
// border and the input echo row.
const (
	chromeCols = 4
	chromeRows = 6
)

// Layout places a width x lines viewport inside a cols x rows terminal.
//
// Row 0 and row rows-1 hold the outer frame, Top-2 the clock, Top-1 and
// Top+Lines the text box border and Top+Lines+1 the input echo.
type Layout struct {
	Cols  int
	Rows  int
	Left  int
	Top   int
	Width int
	Lines int
}

// ComputeLayout centers the viewport. It reports false when the terminal
// cannot hold the viewport and its chrome.
func ComputeLayout(cols, rows, width, lines int) (Layout, bool) {
	if width <= 0 || lines <= 0 || cols < width+chromeCols || rows < lines+chromeRows {
		return Layout{Cols: cols, Rows: rows, Width: width, Lines: lines}, false
	}
	return Layout{
		Cols:  cols,
		Rows:  rows,
		Left:  (cols - width) / 2,
		Top:   3 + (rows-(lines+chromeRows))/2,
		Width: width,
		Lines: lines,
	}, true
}

// ClockRow is the row of the countdown.
func (l Layout) ClockRow() int { return l.Top - 2 }

// EchoRow is the row echoing the word being typed.
func (l Layout) EchoRow() int { return l.Top + l.Lines + 1 }
