package main

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/verte-zerg/mecano/internal/config"
	"github.com/verte-zerg/mecano/internal/picker"
	"github.com/verte-zerg/mecano/internal/wordlist"
)

func TestLoadWordsFallsBackToEmbeddedList(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	words, err := loadWords(wordlist.DefaultName, 6)
	if err != nil {
		t.Fatalf("loadWords: %v", err)
	}
	if len(words) == 0 {
		t.Fatalf("expected embedded words")
	}
	for _, w := range words {
		if len([]rune(w)) > 5 {
			t.Fatalf("word %q does not fit width 6", w)
		}
	}
}

func TestLoadWordsFromDictionaryDir(t *testing.T) {
	home := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", home)
	dir := filepath.Join(home, config.AppName, "dictionaries")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(filepath.Join(dir, "short"), []byte("a bb elephant\ncc\n"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	words, err := loadWords("short", 5)
	if err != nil {
		t.Fatalf("loadWords: %v", err)
	}
	if strings.Join(words, " ") != "a bb cc" {
		t.Fatalf("unexpected words %v", words)
	}
}

func TestLoadWordsMissingFile(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	_, err := loadWords("no-such-list", 80)
	if err == nil {
		t.Fatalf("expected error")
	}
	if !strings.Contains(err.Error(), "searched:") || !strings.Contains(err.Error(), "mecano dicts") {
		t.Fatalf("unexpected error text: %v", err)
	}
}

func TestLoadWordsNothingFits(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	_, err := loadWords(wordlist.DefaultName, 1)
	if !errors.Is(err, wordlist.ErrNoWords) {
		t.Fatalf("expected ErrNoWords, got %v", err)
	}
}

func TestApplyConfigRespectsFlags(t *testing.T) {
	cmd := newRootCmd()
	if err := cmd.Flags().Set("width", "40"); err != nil {
		t.Fatalf("set flag: %v", err)
	}
	width, lines := 40, config.DefaultLines
	fileWidth, fileLines := 100, 5
	applyIntConfig(cmd, "width", &width, &fileWidth)
	applyIntConfig(cmd, "lines", &lines, &fileLines)
	if width != 40 {
		t.Fatalf("flag value should win, got %d", width)
	}
	if lines != 5 {
		t.Fatalf("config value should apply, got %d", lines)
	}

	mode := config.DefaultMode
	applyStringConfig(cmd, "mode", &mode, nil)
	if mode != config.DefaultMode {
		t.Fatalf("nil config value should be ignored, got %q", mode)
	}
}

func TestEnsureConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "mecano", "config.toml")
	if err := ensureConfigFile(path); err != nil {
		t.Fatalf("ensureConfigFile: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if string(data) != config.DefaultConfigTemplate() {
		t.Fatalf("expected template contents")
	}

	if err := os.WriteFile(path, []byte("[session]\nwidth = 50\n"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	if err := ensureConfigFile(path); err != nil {
		t.Fatalf("ensureConfigFile: %v", err)
	}
	data, err = os.ReadFile(path)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if !strings.Contains(string(data), "width = 50") {
		t.Fatalf("existing config was overwritten")
	}
}

func TestDictionaryLine(t *testing.T) {
	line := dictionaryLine(picker.Entry{Name: "100_english", Words: 100})
	if !strings.Contains(line, "100 words") || !strings.Contains(line, "built in") {
		t.Fatalf("unexpected line %q", line)
	}
	line = dictionaryLine(picker.Entry{Name: "x", Path: "/tmp/x", Words: -1})
	if !strings.Contains(line, "? words") || !strings.Contains(line, "/tmp/x") {
		t.Fatalf("unexpected line %q", line)
	}
}
