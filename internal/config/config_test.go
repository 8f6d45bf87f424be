package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLoadConfigMissingFile(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "config.toml"))
	if err != nil {
		t.Fatalf("expected missing config to be ignored, got %v", err)
	}
	if cfg.Session.Width != nil || cfg.Theme.Right != nil {
		t.Fatalf("expected empty config, got %+v", cfg)
	}
}

func TestLoadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	text := `
[session]
mode = "file"
width = 60
sound = true

[theme]
right = "#00FF00"
`
	if err := os.WriteFile(path, []byte(text), 0o644); err != nil {
		t.Fatalf("write failed: %v", err)
	}
	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}
	if cfg.Session.Mode == nil || *cfg.Session.Mode != "file" {
		t.Fatalf("unexpected mode: %v", cfg.Session.Mode)
	}
	if cfg.Session.Width == nil || *cfg.Session.Width != 60 {
		t.Fatalf("unexpected width: %v", cfg.Session.Width)
	}
	if cfg.Session.Lines != nil {
		t.Fatalf("expected unset lines")
	}
	if cfg.Session.Sound == nil || !*cfg.Session.Sound {
		t.Fatalf("expected sound enabled")
	}

	theme := ResolveTheme(cfg.Theme)
	if theme.Right != "#00FF00" || theme.Wrong != DefaultWrongColor {
		t.Fatalf("unexpected theme: %+v", theme)
	}
}

func TestLoadConfigUnknownKey(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte("[session]\nspeed = 3\n"), 0o644); err != nil {
		t.Fatalf("write failed: %v", err)
	}
	_, err := LoadConfig(path)
	if err == nil || !strings.Contains(err.Error(), "session.speed") {
		t.Fatalf("expected unknown key error, got %v", err)
	}
}

func TestResolveWordFile(t *testing.T) {
	home := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", home)
	dictDir := filepath.Join(home, AppName, "dictionaries")
	if err := os.MkdirAll(dictDir, 0o755); err != nil {
		t.Fatalf("mkdir failed: %v", err)
	}
	want := filepath.Join(dictDir, "french")
	if err := os.WriteFile(want, []byte("bonjour"), 0o644); err != nil {
		t.Fatalf("write failed: %v", err)
	}

	got, err := ResolveWordFile("french")
	if err != nil {
		t.Fatalf("ResolveWordFile failed: %v", err)
	}
	if got != want {
		t.Fatalf("expected %q, got %q", want, got)
	}

	literal := filepath.Join(t.TempDir(), "list.txt")
	if err := os.WriteFile(literal, []byte("word"), 0o644); err != nil {
		t.Fatalf("write failed: %v", err)
	}
	if got, err := ResolveWordFile(literal); err != nil || got != literal {
		t.Fatalf("expected literal path, got %q, %v", got, err)
	}

	if _, err := ResolveWordFile("no-such-dictionary"); !errors.Is(err, ErrWordFileNotFound) {
		t.Fatalf("expected ErrWordFileNotFound, got %v", err)
	}
}

func TestListDictionaries(t *testing.T) {
	user := t.TempDir()
	system := t.TempDir()
	for dir, names := range map[string][]string{
		user:   {"zulu", "alpha", ".hidden"},
		system: {"alpha", "bravo"},
	} {
		for _, name := range names {
			if err := os.WriteFile(filepath.Join(dir, name), []byte("x"), 0o644); err != nil {
				t.Fatalf("write failed: %v", err)
			}
		}
	}
	if err := os.Mkdir(filepath.Join(system, "subdir"), 0o755); err != nil {
		t.Fatalf("mkdir failed: %v", err)
	}

	dicts, err := listDictionariesIn(user, system, filepath.Join(user, "missing"))
	if err != nil {
		t.Fatalf("listDictionariesIn failed: %v", err)
	}
	var names []string
	for _, d := range dicts {
		names = append(names, d.Name)
	}
	if strings.Join(names, ",") != "alpha,bravo,zulu" {
		t.Fatalf("unexpected dictionaries: %v", names)
	}
	if dicts[0].Path != filepath.Join(user, "alpha") {
		t.Fatalf("expected user dictionary to shadow system one, got %q", dicts[0].Path)
	}
}

func TestDefaultTemplateDecodes(t *testing.T) {
	if _, err := decodeConfig(DefaultConfigTemplate()); err != nil {
		t.Fatalf("default template does not decode: %v", err)
	}
}
