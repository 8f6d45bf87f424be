package session

import (
	"fmt"
	"strings"
	"time"

	"github.com/mattn/go-runewidth"

	"github.com/verte-zerg/mecano/internal/stats"
	"github.com/verte-zerg/mecano/internal/terminal"
)

const (
	appTitle          = " mecano "
	resultsPlotHeight = 4
	resultsPlotWidth  = 60
	resultsWeakKeys   = 5
)

// Draw clears the frame and redraws the screen of the current state.
func (s *Session) Draw() {
	f := s.frame
	f.ResetStyle()
	f.Clear()
	switch s.state {
	case TooNarrow:
		s.drawTooNarrow()
	case Finished:
		s.drawOuterBox()
		s.drawResults()
	default:
		s.drawOuterBox()
		l := s.layout
		drawBox(f, l.Left-1, l.Top-1, l.Width+2, l.Lines+2)
		s.drawClock()
		s.drawEcho()
		s.buffer.Render()
	}
}

func (s *Session) drawOuterBox() {
	l := s.layout
	drawBox(s.frame, 0, 0, l.Cols, l.Rows)
	if l.Cols >= runewidth.StringWidth(appTitle)+4 {
		s.frame.MoveTo(2, 0)
		s.frame.WriteText(appTitle)
	}
}

// drawClock writes the remaining time centered above the text box.
func (s *Session) drawClock() {
	if s.state == TooNarrow || s.state == Finished {
		return
	}
	l := s.layout
	text := formatClock(s.buffer.Remaining())
	switch s.state {
	case Ready:
		text += " type to start"
	case Stopped:
		text += " paused"
	}
	if runewidth.StringWidth(text) > l.Width {
		text = formatClock(s.buffer.Remaining())
	}
	f := s.frame
	f.ResetStyle()
	f.MoveTo(l.Left, l.ClockRow())
	f.WriteText(strings.Repeat(" ", l.Width))
	writeCentered(f, l.Left, l.ClockRow(), l.Width, text)
}

// drawEcho shows the tail of the word being typed below the text box.
func (s *Session) drawEcho() {
	if s.state == TooNarrow || s.state == Finished {
		return
	}
	l := s.layout
	f := s.frame
	f.ResetStyle()
	f.MoveTo(l.Left, l.EchoRow())
	f.WriteText(strings.Repeat(" ", l.Width))
	f.MoveTo(l.Left, l.EchoRow())
	f.WriteText(terminal.TrimLeft(string(s.echo), l.Width))
}

func (s *Session) drawTooNarrow() {
	l := s.layout
	lines := []string{
		"Terminal too small",
		fmt.Sprintf("need %dx%d, have %dx%d", s.width+chromeCols, s.lines+chromeRows, l.Cols, l.Rows),
		"resize or use the arrow keys",
	}
	drawBlock(s.frame, 0, 0, l.Cols, l.Rows, lines)
}

func (s *Session) drawResults() {
	l := s.layout
	drawBlock(s.frame, 1, 1, l.Cols-2, l.Rows-2, ResultLines(s.stats.Summary(), l.Cols-4))
}

// ResultLines formats the end-of-session report for a screen of the given width.
func ResultLines(sum stats.Summary, width int) []string {
	var lines []string
	if sum.HasLast {
		lines = append(lines,
			fmt.Sprintf("RAW %6.1f", sum.Last.Raw),
			fmt.Sprintf("WPM %6.1f", sum.Last.WPM),
			fmt.Sprintf("ACC %5.1f%%", sum.Last.Accuracy*100),
		)
	} else {
		lines = append(lines, "No finished words")
	}
	lines = append(lines, fmt.Sprintf("%d/%d words correct", sum.CorrectWords, sum.Words))

	if len(sum.Series) > 1 {
		plot := stats.PlotLines("", stats.Curves(sum.Series, stats.CurveWindow), stats.PlotOptions{
			Width:  stats.PlotWidthFor(min(width, resultsPlotWidth)),
			Height: resultsPlotHeight,
		})
		lines = append(lines, "")
		lines = append(lines, plot...)
	}
	if table := stats.KeyTable(stats.WeakestKeys(sum.Keys, resultsWeakKeys)); len(table) > 0 {
		lines = append(lines, "", "Weakest keys")
		lines = append(lines, table...)
	}
	return append(lines, "", "Esc to quit")
}

// drawBlock centers lines inside the w x h area at col, row. Lines that do
// not fit are cut.
func drawBlock(f terminal.Frame, col, row, w, h int, lines []string) {
	if w <= 0 || h <= 0 {
		return
	}
	if len(lines) > h {
		lines = lines[:h]
	}
	blockWidth := 0
	for _, line := range lines {
		blockWidth = max(blockWidth, runewidth.StringWidth(line))
	}
	blockWidth = min(blockWidth, w)
	left := col + (w-blockWidth)/2
	top := row + (h-len(lines))/2
	f.ResetStyle()
	for i, line := range lines {
		f.MoveTo(left, top+i)
		f.WriteText(runewidth.Truncate(line, blockWidth, ""))
	}
}

func writeCentered(f terminal.Frame, col, row, w int, text string) {
	text = runewidth.Truncate(text, w, "")
	f.MoveTo(col+(w-runewidth.StringWidth(text))/2, row)
	f.WriteText(text)
}

// drawBox draws a single line border whose outer size is w x h.
func drawBox(f terminal.Frame, col, row, w, h int) {
	if w < 2 || h < 2 {
		return
	}
	f.ResetStyle()
	inner := strings.Repeat("─", w-2)
	f.MoveTo(col, row)
	f.WriteText("┌" + inner + "┐")
	for y := row + 1; y < row+h-1; y++ {
		f.MoveTo(col, y)
		f.WriteText("│")
		f.MoveTo(col+w-1, y)
		f.WriteText("│")
	}
	f.MoveTo(col, row+h-1)
	f.WriteText("└" + inner + "┘")
}

// formatClock renders d as mm:ss, rounding up to the next second.
func formatClock(d time.Duration) string {
	secs := int((d + time.Second - 1) / time.Second)
	return fmt.Sprintf("%02d:%02d", secs/60, secs%60)
}
