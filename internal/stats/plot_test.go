package stats

import (
	"bytes"
	"strings"
	"testing"
	"unicode/utf8"
)

func TestPlotSeries(t *testing.T) {
	var buf bytes.Buffer
	err := PlotSeries(&buf, "Test Plot", []Series{
		{Name: "wpm", Values: []float64{40, 42, 45, 44, 50}},
		{Name: "acc", Values: []float64{90, 95, 100, 97, 98}},
	}, 12, 4)
	if err != nil {
		t.Fatalf("PlotSeries failed: %v", err)
	}
	out := buf.String()
	if !strings.Contains(out, "Test Plot") {
		t.Fatalf("expected title in output")
	}
	if !strings.Contains(out, "wpm: min=40.0 max=50.0") {
		t.Fatalf("expected range line in output:\n%s", out)
	}
	if !strings.Contains(out, "Legend:") {
		t.Fatalf("expected legend in output")
	}
	if strings.Contains(out, "\x1b[") {
		t.Fatalf("expected no color codes for a non-terminal writer")
	}
	lines := strings.Split(strings.TrimSpace(out), "\n")
	expected := 1 + 2 + 4 + 1
	if len(lines) != expected {
		t.Fatalf("expected %d lines of output, got %d", expected, len(lines))
	}
}

func TestPlotLinesRowWidth(t *testing.T) {
	lines := PlotLines("", []Series{{Name: "wpm", Values: []float64{1, 5, 3}}}, PlotOptions{Width: 20, Height: 3})
	rows := lines[1 : len(lines)-1]
	if len(rows) != 3 {
		t.Fatalf("expected 3 plot rows, got %d", len(rows))
	}
	axis := utf8.RuneCountInString(axisLabelTop) + utf8.RuneCountInString(axisSeparator)
	for i, row := range rows {
		if got := utf8.RuneCountInString(row); got != axis+20 {
			t.Fatalf("row %d: expected %d runes, got %d", i, axis+20, got)
		}
	}
	if !strings.HasPrefix(rows[0], axisLabelTop) {
		t.Fatalf("expected top label on first row: %q", rows[0])
	}
}

func TestPlotLinesSkipsEmptySeries(t *testing.T) {
	if lines := PlotLines("x", []Series{{Name: "empty"}}, PlotOptions{Width: 10, Height: 2}); lines != nil {
		t.Fatalf("expected no output for empty series, got %v", lines)
	}
}

func TestPlotLinesFlatSeriesDraws(t *testing.T) {
	lines := PlotLines("", []Series{{Name: "flat", Values: []float64{3, 3, 3}}}, PlotOptions{Width: 10, Height: 2})
	drawn := false
	for _, line := range lines[1 : len(lines)-1] {
		for _, r := range line {
			if r > 0x2800 && r <= 0x28FF {
				drawn = true
			}
		}
	}
	if !drawn {
		t.Fatalf("expected a flat series to still draw dots")
	}
}
