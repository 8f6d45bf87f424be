package stats

import (
	"fmt"
	"io"
	"math"
	"os"
	"strings"
	"unicode/utf8"

	"golang.org/x/term"
)

// Series represents a named data series for plotting.
type Series struct {
	Name   string
	Values []float64
}

// PlotOptions sizes a plot. Zero Width fits the terminal, zero Height uses
// the default height.
type PlotOptions struct {
	Width  int
	Height int
	Color  bool
}

type lineStyle struct {
	name   string
	period int
	on     int
}

const (
	defaultPlotHeight   = 8
	minPlotWidth        = 10
	axisLabelTop        = "max"
	axisLabelBottom     = "min"
	axisSeparator       = " │ "
	colorReset          = "\x1b[0m"
	terminalWidthBackup = 80
)

var lineStyles = []lineStyle{
	{name: "solid", period: 1, on: 1},
	{name: "dotted", period: 4, on: 1},
	{name: "dashed", period: 6, on: 3},
}

var colorPalette = []string{"\x1b[36m", "\x1b[35m", "\x1b[33m", "\x1b[32m"}

// PlotSeries writes a braille plot of the series to w, colored when w is a terminal.
func PlotSeries(w io.Writer, title string, series []Series, width, height int) error {
	lines := PlotLines(title, series, PlotOptions{Width: width, Height: height, Color: shouldUseColor(w)})
	for _, line := range lines {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}

// PlotLines renders the plot as text lines. Every series is scaled to its own
// min/max range.
func PlotLines(title string, series []Series, opt PlotOptions) []string {
	series = nonEmpty(series)
	if len(series) == 0 {
		return nil
	}
	height := opt.Height
	if height <= 0 {
		height = defaultPlotHeight
	}
	width := opt.Width
	if width <= 0 {
		width = PlotWidthFor(terminalWidth())
	}
	width = max(width, minPlotWidth)

	grids := make([][][]uint8, len(series))
	var ranges []string
	for si, s := range series {
		values := resample(s.Values, width)
		lo, hi := minMax(values)
		ranges = append(ranges, fmt.Sprintf("%s: min=%.1f max=%.1f", s.Name, lo, hi))
		if math.Abs(hi-lo) < 1e-9 {
			lo--
			hi++
		}
		grids[si] = plotGrid(values, lo, hi, width, height, lineStyles[si%len(lineStyles)])
	}

	lines := make([]string, 0, height+len(series)+2)
	if title != "" {
		lines = append(lines, title)
	}
	lines = append(lines, ranges...)
	labelWidth := max(utf8.RuneCountInString(axisLabelTop), utf8.RuneCountInString(axisLabelBottom))
	for y := 0; y < height; y++ {
		label := ""
		switch y {
		case 0:
			label = axisLabelTop
		case height - 1:
			label = axisLabelBottom
		}
		var row strings.Builder
		row.WriteString(fmt.Sprintf("%*s%s", labelWidth, label, axisSeparator))
		for x := 0; x < width; x++ {
			mask, owner := composeCell(grids, x, y)
			ch := rune(0x2800 + int(mask))
			if opt.Color && owner >= 0 {
				row.WriteString(colorPalette[owner%len(colorPalette)])
				row.WriteRune(ch)
				row.WriteString(colorReset)
				continue
			}
			row.WriteRune(ch)
		}
		lines = append(lines, row.String())
	}
	lines = append(lines, legend(series, opt.Color))
	return lines
}

// PlotWidthFor computes a plot width that fits within the total available width.
func PlotWidthFor(totalWidth int) int {
	if totalWidth <= 0 {
		return minPlotWidth
	}
	axisWidth := max(utf8.RuneCountInString(axisLabelTop), utf8.RuneCountInString(axisLabelBottom)) +
		utf8.RuneCountInString(axisSeparator)
	return max(totalWidth-axisWidth, minPlotWidth)
}

func terminalWidth() int {
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width <= 0 {
		return terminalWidthBackup
	}
	return width
}

func shouldUseColor(w io.Writer) bool {
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	file, ok := w.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(file.Fd()))
}

func nonEmpty(series []Series) []Series {
	out := make([]Series, 0, len(series))
	for _, s := range series {
		if len(s.Values) > 0 {
			out = append(out, s)
		}
	}
	return out
}

// plotGrid draws values into a height x width grid of braille dot masks.
// Each cell holds 2x4 dots.
func plotGrid(values []float64, lo, hi float64, width, height int, style lineStyle) [][]uint8 {
	cells := make([][]uint8, height)
	for y := range cells {
		cells[y] = make([]uint8, width)
	}
	dotRows := height * 4
	prevX, prevY := -1, -1
	for x, v := range values {
		pos := (v - lo) / (hi - lo)
		py := int(math.Round((1 - pos) * float64(dotRows-1)))
		py = max(0, min(py, dotRows-1))
		px := x * 2
		if prevX < 0 {
			if style.plots(px) {
				setDot(cells, px, py)
			}
		} else {
			drawLine(prevX, prevY, px, py, func(dx, dy int) {
				if style.plots(dx) {
					setDot(cells, dx, dy)
				}
			})
		}
		prevX, prevY = px, py
	}
	return cells
}

func (ls lineStyle) plots(x int) bool {
	if ls.period <= 1 {
		return true
	}
	return x%ls.period < ls.on
}

func composeCell(grids [][][]uint8, x, y int) (uint8, int) {
	var mask uint8
	owner := -1
	for i, cells := range grids {
		if m := cells[y][x]; m != 0 {
			if owner < 0 {
				owner = i
			}
			mask |= m
		}
	}
	return mask, owner
}

// resample stretches or averages values onto width points.
func resample(values []float64, width int) []float64 {
	out := make([]float64, width)
	switch {
	case len(values) == 1:
		for i := range out {
			out[i] = values[0]
		}
	case len(values) >= width:
		for i := range out {
			start := i * len(values) / width
			end := max((i+1)*len(values)/width, start+1)
			var sum float64
			for _, v := range values[start:end] {
				sum += v
			}
			out[i] = sum / float64(end-start)
		}
	default:
		for i := range out {
			pos := float64(i) * float64(len(values)-1) / float64(width-1)
			idx := int(pos)
			if idx >= len(values)-1 {
				out[i] = values[len(values)-1]
				continue
			}
			frac := pos - float64(idx)
			out[i] = values[idx]*(1-frac) + values[idx+1]*frac
		}
	}
	return out
}

func legend(series []Series, useColor bool) string {
	parts := make([]string, 0, len(series))
	for i, s := range series {
		label := fmt.Sprintf("%c %s (%s)", rune(0x2801), s.Name, lineStyles[i%len(lineStyles)].name)
		if useColor {
			label = colorPalette[i%len(colorPalette)] + label + colorReset
		}
		parts = append(parts, label)
	}
	return "Legend: " + strings.Join(parts, "  ")
}

// drawLine walks a Bresenham line between two dot coordinates.
func drawLine(x0, y0, x1, y1 int, plot func(x, y int)) {
	dx := abs(x1 - x0)
	dy := -abs(y1 - y0)
	sx, sy := 1, 1
	if x0 > x1 {
		sx = -1
	}
	if y0 > y1 {
		sy = -1
	}
	err := dx + dy
	for {
		plot(x0, y0)
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
}

func setDot(cells [][]uint8, x, y int) {
	cy, cx := y/4, x/2
	if y < 0 || x < 0 || cy >= len(cells) || cx >= len(cells[cy]) {
		return
	}
	cells[cy][cx] |= dotMask(x%2, y%4)
}

// dotMask maps a dot inside a 2x4 braille cell to its bit.
func dotMask(x, y int) uint8 {
	left := [4]uint8{0x01, 0x02, 0x04, 0x40}
	right := [4]uint8{0x08, 0x10, 0x20, 0x80}
	if x == 0 {
		return left[y]
	}
	return right[y]
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
