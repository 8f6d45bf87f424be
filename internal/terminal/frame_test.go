package terminal

import (
	"testing"

	"github.com/verte-zerg/mecano/internal/model"
)

func TestParseColor(t *testing.T) {
	c, err := ParseColor("#FF8040")
	if err != nil {
		t.Fatalf("ParseColor failed: %v", err)
	}
	if c != RGB(0xff, 0x80, 0x40) {
		t.Fatalf("unexpected color %+v", c)
	}
	if c.IsDefault() {
		t.Fatalf("explicit color reported as default")
	}
	if _, err := ParseColor("not-a-color"); err == nil {
		t.Fatalf("expected error for unknown color")
	}
	if !ColorDefault.IsDefault() {
		t.Fatalf("ColorDefault should be the default color")
	}
}

func TestParseTheme(t *testing.T) {
	theme, err := ParseTheme(model.Theme{Selected: "#808080", Wrong: "#FF8080", Right: "#40FF40"})
	if err != nil {
		t.Fatalf("ParseTheme failed: %v", err)
	}
	if theme.Right != RGB(0x40, 0xff, 0x40) {
		t.Fatalf("unexpected right color %+v", theme.Right)
	}
	_, err = ParseTheme(model.Theme{Selected: "#808080", Wrong: "bogus", Right: "#40FF40"})
	if err == nil || err.Error() != `theme.wrong: invalid color "bogus"` {
		t.Fatalf("unexpected error %v", err)
	}
}

func TestRecorder(t *testing.T) {
	rec := NewRecorder(4, 2)
	rec.MoveTo(2, 1)
	rec.SetForeground(RGB(1, 2, 3))
	rec.SetUnderline(true)
	rec.WriteText("abc")
	if rec.Line(1) != "  ab" {
		t.Fatalf("unexpected line %q", rec.Line(1))
	}
	if rec.OutOfGrid != 1 {
		t.Fatalf("expected 1 out of grid write, got %d", rec.OutOfGrid)
	}
	cell := rec.CellAt(2, 1)
	if cell.Rune != 'a' || cell.Color != RGB(1, 2, 3) || !cell.Underline {
		t.Fatalf("unexpected cell %+v", cell)
	}

	rec.Push(RuneEvent('x'), ResizeEvent(10, 5))
	ev, ok := rec.PollEvent(0)
	if !ok || ev.Key != KeyRune || ev.Rune != 'x' {
		t.Fatalf("unexpected first event %+v", ev)
	}
	ev, ok = rec.PollEvent(0)
	if !ok || ev.Kind != EventResize || ev.Cols != 10 || ev.Rows != 5 {
		t.Fatalf("unexpected second event %+v", ev)
	}
	if _, ok := rec.PollEvent(0); ok {
		t.Fatalf("expected empty queue")
	}
}

func TestTextWidth(t *testing.T) {
	tests := []struct {
		text string
		want int
	}{
		{text: "", want: 0},
		{text: "word", want: 4},
		{text: "日本", want: 4},
		{text: "e\u0301", want: 2},
	}
	for _, tt := range tests {
		if got := TextWidth(tt.text); got != tt.want {
			t.Fatalf("TextWidth(%q): expected %d, got %d", tt.text, tt.want, got)
		}
	}
}

func TestTrimLeft(t *testing.T) {
	tests := []struct {
		text  string
		width int
		want  string
	}{
		{text: "abcdef", width: 3, want: "def"},
		{text: "abc", width: 5, want: "abc"},
		{text: "a日本", width: 4, want: "日本"},
		{text: "日本", width: 3, want: "本"},
		{text: "abc", width: 0, want: ""},
	}
	for _, tt := range tests {
		if got := TrimLeft(tt.text, tt.width); got != tt.want {
			t.Fatalf("TrimLeft(%q, %d): expected %q, got %q", tt.text, tt.width, tt.want, got)
		}
	}
}

func TestRecorderWideRunes(t *testing.T) {
	rec := NewRecorder(5, 1)
	rec.WriteText("日本語")
	if rec.Line(0) != "日本 " {
		t.Fatalf("unexpected line %q", rec.Line(0))
	}
	if rec.OutOfGrid != 1 {
		t.Fatalf("expected the third rune to cross the edge, got %d", rec.OutOfGrid)
	}
}
