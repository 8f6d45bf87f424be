package wordlist

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestReadWords(t *testing.T) {
	words, err := ReadWords(strings.NewReader("the quick\n\tbrown   fox\n"))
	if err != nil {
		t.Fatalf("ReadWords failed: %v", err)
	}
	if strings.Join(words, ",") != "the,quick,brown,fox" {
		t.Fatalf("unexpected words: %v", words)
	}
	if _, err := ReadWords(strings.NewReader(" \n\t")); !errors.Is(err, ErrNoWords) {
		t.Fatalf("expected ErrNoWords, got %v", err)
	}
}

func TestLoadFiltered(t *testing.T) {
	path := filepath.Join(t.TempDir(), "words.txt")
	if err := os.WriteFile(path, []byte("go gopher tea\n"), 0o644); err != nil {
		t.Fatalf("write failed: %v", err)
	}
	words, err := LoadFiltered(path, FilterMaxWidth(4))
	if err != nil {
		t.Fatalf("LoadFiltered failed: %v", err)
	}
	if strings.Join(words, ",") != "go,tea" {
		t.Fatalf("unexpected words: %v", words)
	}
	if _, err := LoadFiltered(path, FilterMaxWidth(2)); !errors.Is(err, ErrNoWords) {
		t.Fatalf("expected ErrNoWords when nothing fits, got %v", err)
	}
	if _, err := LoadWords(filepath.Join(t.TempDir(), "missing")); err == nil {
		t.Fatalf("expected error for a missing file")
	}
}

func TestDefaultWords(t *testing.T) {
	words := DefaultWords()
	if len(words) != 100 {
		t.Fatalf("expected 100 embedded words, got %d", len(words))
	}
}
