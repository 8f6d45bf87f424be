package wordlist

import "testing"

func TestFilterMaxWidth(t *testing.T) {
	filter := FilterMaxWidth(5)
	if !filter("four") {
		t.Fatalf("expected four to fit a width of 5")
	}
	for _, word := range []string{"", "fives", "longer"} {
		if filter(word) {
			t.Fatalf("expected %q to be rejected", word)
		}
	}
	if !FilterMaxWidth(3)("ié") {
		t.Fatalf("expected a two rune word to fit a width of 3")
	}
	if FilterMaxWidth(3)("日本") {
		t.Fatalf("expected wide runes to count by display width")
	}
	if !FilterMaxWidth(5)("日本") {
		t.Fatalf("expected a four cell word to fit a width of 5")
	}
	if FilterMaxWidth(2)("e\u0301") {
		t.Fatalf("expected a combining mark to take a cell of its own")
	}
}

func TestFilterKeepsOrder(t *testing.T) {
	got := Filter([]string{"a", "bbbbbb", "cc", "d"}, FilterMaxWidth(3))
	want := []string{"a", "cc", "d"}
	if len(got) != len(want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("expected %q at %d, got %q", want[i], i, got[i])
		}
	}
}
