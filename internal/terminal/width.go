package terminal

import "github.com/mattn/go-runewidth"

// RuneWidth is the number of cells r advances the cursor of a Frame. Zero
// width runes still take a cell of their own.
func RuneWidth(r rune) int {
	return max(1, runewidth.RuneWidth(r))
}

// TextWidth is the number of cells s advances the cursor of a Frame.
func TextWidth(s string) int {
	n := 0
	for _, r := range s {
		n += RuneWidth(r)
	}
	return n
}

// TrimLeft drops leading runes of s until it fits in width cells.
func TrimLeft(s string, width int) string {
	if width <= 0 {
		return ""
	}
	excess := TextWidth(s) - width
	for i, r := range s {
		if excess <= 0 {
			return s[i:]
		}
		excess -= RuneWidth(r)
	}
	return ""
}
