// Package wordlist loads word lists from files.
package wordlist

import (
	"bufio"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
)

// DefaultName is the name of the embedded word list.
const DefaultName = "100_english"

// ErrNoWords is returned when a word list yields no usable words.
var ErrNoWords = errors.New("word list is empty")

//go:embed 100_english.txt
var defaultList string

// LoadWords reads whitespace separated words from the provided file path.
func LoadWords(path string) ([]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() {
		if cerr := file.Close(); cerr != nil {
			// Best-effort close for read-only word list.
			_ = cerr
		}
	}()
	return ReadWords(file)
}

// ReadWords splits the reader contents on whitespace.
func ReadWords(r io.Reader) ([]string, error) {
	var words []string
	scanner := bufio.NewScanner(r)
	scanner.Split(bufio.ScanWords)
	for scanner.Scan() {
		words = append(words, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	if len(words) == 0 {
		return nil, ErrNoWords
	}
	return words, nil
}

// DefaultWords returns the embedded word list.
func DefaultWords() []string {
	return strings.Fields(defaultList)
}

// LoadFiltered loads a word list and keeps only the words accepted by keep.
func LoadFiltered(path string, keep FilterFunc) ([]string, error) {
	words, err := LoadWords(path)
	if err != nil {
		return nil, err
	}
	kept := Filter(words, keep)
	if len(kept) == 0 {
		return nil, fmt.Errorf("%w: no word of %s fits the viewport", ErrNoWords, path)
	}
	return kept, nil
}
