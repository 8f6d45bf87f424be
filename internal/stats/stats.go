// Package stats contains statistics calculations and reporting.
package stats

import (
	"math"
	"strings"
	"time"
)

const (
	charsPerWord = 5.0
	sparkChars   = " .:-=+*#%@"
)

// CurveWindow is the number of finished words averaged into each point of a
// progress curve.
const CurveWindow = 5

// Metrics computes WPM, raw WPM and accuracy. The result is undefined, and
// ok is false, when nothing was typed or no time elapsed.
func Metrics(right, wrong int, elapsed time.Duration) (snap Snapshot, ok bool) {
	typed := right + wrong
	if typed == 0 || elapsed <= 0 {
		return Snapshot{}, false
	}
	minutes := elapsed.Minutes()
	return Snapshot{
		WPM:      float64(right) / minutes / charsPerWord,
		Raw:      float64(typed) / minutes / charsPerWord,
		Accuracy: float64(right) / float64(typed),
	}, true
}

// MovingAverage computes a rolling mean over the provided window size.
func MovingAverage(values []float64, window int) []float64 {
	if window <= 1 || len(values) == 0 {
		out := make([]float64, len(values))
		copy(out, values)
		return out
	}
	out := make([]float64, len(values))
	var sum float64
	for i := 0; i < len(values); i++ {
		sum += values[i]
		if i >= window {
			sum -= values[i-window]
		}
		den := float64(i + 1)
		if i >= window {
			den = float64(window)
		}
		out[i] = sum / den
	}
	return out
}

// Sparkline renders a single-line ASCII sparkline for the values.
func Sparkline(values []float64) string {
	if len(values) == 0 {
		return ""
	}
	minVal, maxVal := minMax(values)
	if math.Abs(maxVal-minVal) < 1e-9 {
		return strings.Repeat(string(sparkChars[len(sparkChars)/2]), len(values))
	}
	var b strings.Builder
	for _, v := range values {
		pos := (v - minVal) / (maxVal - minVal)
		idx := int(math.Round(pos * float64(len(sparkChars)-1)))
		idx = max(0, min(idx, len(sparkChars)-1))
		b.WriteByte(sparkChars[idx])
	}
	return b.String()
}

// WPMSeries extracts the WPM values of a snapshot series.
func WPMSeries(series []Snapshot) []float64 {
	out := make([]float64, len(series))
	for i, s := range series {
		out[i] = s.WPM
	}
	return out
}

// AccuracySeries extracts the accuracy values, in percent.
func AccuracySeries(series []Snapshot) []float64 {
	out := make([]float64, len(series))
	for i, s := range series {
		out[i] = s.Accuracy * 100
	}
	return out
}

// Curves returns the WPM and accuracy series of a session, each smoothed
// with a moving average over window words.
func Curves(series []Snapshot, window int) []Series {
	return []Series{
		{Name: "wpm", Values: MovingAverage(WPMSeries(series), window)},
		{Name: "acc %", Values: MovingAverage(AccuracySeries(series), window)},
	}
}

func minMax(values []float64) (float64, float64) {
	minVal := math.Inf(1)
	maxVal := math.Inf(-1)
	for _, v := range values {
		minVal = math.Min(minVal, v)
		maxVal = math.Max(maxVal, v)
	}
	if math.IsInf(minVal, 1) {
		return 0, 0
	}
	return minVal, maxVal
}
