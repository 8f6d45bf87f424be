package typing

import (
	"strings"

	"github.com/verte-zerg/mecano/internal/terminal"
)

// printWord draws w at the frame cursor using at most maxWidth cells,
// trailing separator included, and returns the cells consumed.
//
// When the word does not fit whole, the overflow is cut and the last glyph
// drawn is always the last overflow rune (or the last slot) so the reader
// sees where typing stopped. Widths are counted in cells, so a wide rune that
// would cross the budget is left out rather than drawn past it.
func printWord(f terminal.Frame, theme terminal.Theme, w *Word, maxWidth int) int {
	n := w.Len()
	if maxWidth <= 0 || n == 0 {
		return 0
	}
	if w.IsSelected() {
		f.SetUnderline(true)
	}

	var used int
	switch {
	case maxWidth >= w.Width()+1:
		printSlots(f, theme, w.slots)
		if len(w.overflow) > 0 {
			f.SetForeground(theme.Wrong)
			f.WriteText(string(w.overflow))
		}
		used = w.Width()

	case maxWidth > w.BaseWidth()+1:
		printSlots(f, theme, w.slots)
		used = w.BaseWidth()
		last := w.overflow[len(w.overflow)-1]
		room := maxWidth - 1 - used
		if lastWidth := terminal.RuneWidth(last); lastWidth <= room {
			head, headWidth := fitRunes(w.overflow[:len(w.overflow)-1], room-lastWidth)
			f.SetForeground(theme.Wrong)
			f.WriteText(string(head))
			f.WriteText(string(last))
			used += headWidth + lastWidth
		}

	default:
		last, color := w.slots[n-1].Char, theme.Right
		if len(w.overflow) > 0 {
			last, color = w.overflow[len(w.overflow)-1], theme.Wrong
		}
		room := maxWidth - 1
		if lastWidth := terminal.RuneWidth(last); lastWidth <= room {
			keep, keepWidth := fitSlots(w.slots[:n-1], room-lastWidth)
			printSlots(f, theme, keep)
			f.SetForeground(color)
			f.WriteText(string(last))
			used = keepWidth + lastWidth
		}
	}

	f.ResetStyle()
	f.WriteText(" ")
	return used + 1
}

// fitRunes returns the longest prefix of rs that fits in width cells.
func fitRunes(rs []rune, width int) ([]rune, int) {
	used := 0
	for i, r := range rs {
		w := terminal.RuneWidth(r)
		if used+w > width {
			return rs[:i], used
		}
		used += w
	}
	return rs, used
}

// fitSlots returns the longest prefix of slots that fits in width cells.
func fitSlots(slots []Slot, width int) ([]Slot, int) {
	used := 0
	for i, slot := range slots {
		w := terminal.RuneWidth(slot.Char)
		if used+w > width {
			return slots[:i], used
		}
		used += w
	}
	return slots, used
}

func printSlots(f terminal.Frame, theme terminal.Theme, slots []Slot) {
	for _, slot := range slots {
		f.SetForeground(slotColor(theme, slot.Status))
		f.WriteText(string(slot.Char))
	}
}

func slotColor(theme terminal.Theme, s Status) terminal.Color {
	switch s {
	case Right:
		return theme.Right
	case Wrong:
		return theme.Wrong
	case Selected:
		return theme.Selected
	default:
		return terminal.ColorDefault
	}
}

func blank(width int) string {
	if width <= 0 {
		return ""
	}
	return strings.Repeat(" ", width)
}
