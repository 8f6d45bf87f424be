package stats

import "testing"

func TestWeakestKeys(t *testing.T) {
	keys := []KeyStat{
		{Char: 'a', Right: 9, Wrong: 1},
		{Char: 'b', Right: 1, Wrong: 1},
		{Char: 'c', Missed: 4},
		{Char: 'd', Right: 2, Wrong: 2},
		{Char: 'e', Right: 5},
	}
	got := WeakestKeys(keys, 3)
	if len(got) != 3 {
		t.Fatalf("expected 3 keys, got %d", len(got))
	}
	want := []rune{'d', 'b', 'a'}
	for i, c := range want {
		if got[i].Char != c {
			t.Fatalf("expected %q at %d, got %q", c, i, got[i].Char)
		}
	}
	if all := WeakestKeys(keys, 0); len(all) != 4 {
		t.Fatalf("expected every reached key, got %d", len(all))
	}
}

func TestSparklineAndSeries(t *testing.T) {
	series := []Snapshot{{WPM: 10, Accuracy: 0.5}, {WPM: 20, Accuracy: 1}}
	if line := Sparkline(WPMSeries(series)); line != " @" {
		t.Fatalf("unexpected sparkline %q", line)
	}
	acc := AccuracySeries(series)
	if acc[0] != 50 || acc[1] != 100 {
		t.Fatalf("unexpected accuracy series %v", acc)
	}
	if avg := MovingAverage([]float64{2, 4, 6}, 2); avg[2] != 5 {
		t.Fatalf("unexpected moving average %v", avg)
	}
}

func TestCurvesSmoothSeries(t *testing.T) {
	series := []Snapshot{{WPM: 10, Accuracy: 1}, {WPM: 20, Accuracy: 0.5}, {WPM: 30, Accuracy: 0.5}}
	curves := Curves(series, 2)
	if len(curves) != 2 || curves[0].Name != "wpm" || curves[1].Name != "acc %" {
		t.Fatalf("unexpected curves %+v", curves)
	}
	wpm := curves[0].Values
	if wpm[0] != 10 || wpm[1] != 15 || wpm[2] != 25 {
		t.Fatalf("unexpected smoothed wpm %v", wpm)
	}
	acc := curves[1].Values
	if acc[0] != 100 || acc[1] != 75 || acc[2] != 50 {
		t.Fatalf("unexpected smoothed accuracy %v", acc)
	}
}
