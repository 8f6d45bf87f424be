package stats

import (
	"bytes"
	"strings"
	"testing"
)

func TestRenderSummary(t *testing.T) {
	s := Summary{
		Totals:  Totals{Words: 4, CorrectWords: 3},
		Last:    Snapshot{WPM: 42.5, Raw: 48, Accuracy: 0.95},
		HasLast: true,
		Series:  []Snapshot{{WPM: 40, Accuracy: 1}, {WPM: 44, Accuracy: 0.9}},
		Keys:    []KeyStat{{Char: 'q', Right: 1, Wrong: 1}},
	}
	var buf bytes.Buffer
	if err := RenderSummary(&buf, s); err != nil {
		t.Fatalf("RenderSummary failed: %v", err)
	}
	out := buf.String()
	for _, want := range []string{"42.5", "95.0%", "3/4", "Weakest keys", "q", "Progress", "wpm: min=40.0 max=42.0", "acc %: min=95.0 max=100.0", "Legend"} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %q in summary:\n%s", want, out)
		}
	}
}

func TestRenderSummarySkipsPlotForOneWord(t *testing.T) {
	s := Summary{
		Totals:  Totals{Words: 1, CorrectWords: 1},
		Last:    Snapshot{WPM: 30, Raw: 30, Accuracy: 1},
		HasLast: true,
		Series:  []Snapshot{{WPM: 30, Accuracy: 1}},
	}
	var buf bytes.Buffer
	if err := RenderSummary(&buf, s); err != nil {
		t.Fatalf("RenderSummary failed: %v", err)
	}
	if strings.Contains(buf.String(), "Progress") {
		t.Fatalf("expected no plot for a single word:\n%s", buf.String())
	}
}

func TestSummaryViewEmpty(t *testing.T) {
	if out := SummaryView(Summary{}, 80); !strings.Contains(out, "nothing to report") {
		t.Fatalf("unexpected empty summary %q", out)
	}
}
