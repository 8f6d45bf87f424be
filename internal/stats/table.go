package stats

import (
	"fmt"
	"strings"

	"github.com/mattn/go-runewidth"
)

// KeyTable formats per-key tallies as aligned text lines, header first.
func KeyTable(keys []KeyStat) []string {
	if len(keys) == 0 {
		return nil
	}
	headers := []string{"Key", "Accuracy", "Right", "Wrong", "Missed"}
	rows := make([][]string, 0, len(keys))
	for _, k := range keys {
		rows = append(rows, []string{
			keyLabel(k.Char),
			fmt.Sprintf("%.1f%%", k.Accuracy()*100),
			fmt.Sprintf("%d", k.Right),
			fmt.Sprintf("%d", k.Wrong),
			fmt.Sprintf("%d", k.Missed),
		})
	}
	return formatTable(headers, rows, map[int]bool{1: true, 2: true, 3: true, 4: true})
}

func keyLabel(c rune) string {
	if c == ' ' {
		return "<space>"
	}
	return string(c)
}

func formatTable(headers []string, rows [][]string, rightAlignCols map[int]bool) []string {
	colCount := len(headers)
	for _, row := range rows {
		colCount = max(colCount, len(row))
	}
	if colCount == 0 {
		return nil
	}

	widths := make([]int, colCount)
	for i, header := range headers {
		widths[i] = runewidth.StringWidth(header)
	}
	for _, row := range rows {
		for i, cell := range row {
			widths[i] = max(widths[i], runewidth.StringWidth(cell))
		}
	}

	lines := make([]string, 0, len(rows)+1)
	if len(headers) > 0 {
		lines = append(lines, formatRow(headers, widths, rightAlignCols))
	}
	for _, row := range rows {
		lines = append(lines, formatRow(row, widths, rightAlignCols))
	}
	return lines
}

func formatRow(row []string, widths []int, rightAlignCols map[int]bool) string {
	cells := make([]string, len(widths))
	for i := range widths {
		cell := ""
		if i < len(row) {
			cell = row[i]
		}
		cells[i] = padCell(cell, widths[i], rightAlignCols[i])
	}
	return strings.Join(cells, " ")
}

func padCell(value string, width int, rightAlign bool) string {
	if rightAlign {
		return runewidth.FillLeft(value, width)
	}
	return runewidth.FillRight(value, width)
}
