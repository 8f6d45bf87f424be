// Package wordlist provides word list filtering helpers.
package wordlist

import "github.com/verte-zerg/mecano/internal/terminal"

// FilterFunc returns true when a word should be kept.
type FilterFunc func(string) bool

// FilterMaxWidth keeps words that fit on a viewport line of the given width
// together with their trailing separator. Width is counted in terminal cells.
func FilterMaxWidth(width int) FilterFunc {
	return func(word string) bool {
		if word == "" {
			return false
		}
		return terminal.TextWidth(word)+1 <= width
	}
}

// Filter returns the words accepted by keep, preserving order.
func Filter(words []string, keep FilterFunc) []string {
	out := make([]string, 0, len(words))
	for _, word := range words {
		if keep(word) {
			out = append(out, word)
		}
	}
	return out
}
