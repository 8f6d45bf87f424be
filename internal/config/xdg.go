// Package config provides XDG path helpers.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// AppName is the directory name used under the config roots.
const AppName = "mecano"

// ErrWordFileNotFound is returned when no search location holds the word file.
var ErrWordFileNotFound = errors.New("word file not found")

// SystemDir is the shared resource directory installed with the package.
var SystemDir = filepath.Join("/usr", "share", AppName)

// XDGConfigHome returns the XDG config home or a default fallback.
func XDGConfigHome() string {
	if v := os.Getenv("XDG_CONFIG_HOME"); v != "" {
		return v
	}
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return "."
	}
	return filepath.Join(home, ".config")
}

// DefaultConfigPath returns the default TOML config path.
func DefaultConfigPath() string {
	return filepath.Join(XDGConfigHome(), AppName, "config.toml")
}

// DefaultDictionaryDir returns the user directory for dictionaries.
func DefaultDictionaryDir() string {
	return filepath.Join(XDGConfigHome(), AppName, "dictionaries")
}

// SystemDictionaryDir returns the shared directory for dictionaries.
func SystemDictionaryDir() string {
	return filepath.Join(SystemDir, "dictionaries")
}

// WordFileCandidates lists the locations searched for a word file, in order.
func WordFileCandidates(name string) []string {
	name = expandHome(strings.TrimSpace(name))
	if name == "" {
		return nil
	}
	candidates := []string{name}
	if filepath.IsAbs(name) {
		return candidates
	}
	return append(candidates,
		filepath.Join(XDGConfigHome(), AppName, name),
		filepath.Join(DefaultDictionaryDir(), name),
		filepath.Join(SystemDir, name),
		filepath.Join(SystemDictionaryDir(), name),
	)
}

// ResolveWordFile returns the first readable regular file among the candidates.
func ResolveWordFile(name string) (string, error) {
	for _, path := range WordFileCandidates(name) {
		info, err := os.Stat(path)
		if err != nil || !info.Mode().IsRegular() {
			continue
		}
		file, err := os.Open(path)
		if err != nil {
			continue
		}
		_ = file.Close()
		return path, nil
	}
	return "", fmt.Errorf("%w: %s", ErrWordFileNotFound, name)
}

// Dictionary is a word file found in one of the dictionary directories.
type Dictionary struct {
	Name string
	Path string
}

// ListDictionaries returns dictionaries from the user and system directories.
// A user file shadows a system file with the same name.
func ListDictionaries() ([]Dictionary, error) {
	return listDictionariesIn(DefaultDictionaryDir(), SystemDictionaryDir())
}

func listDictionariesIn(dirs ...string) ([]Dictionary, error) {
	seen := map[string]struct{}{}
	var out []Dictionary
	for _, dir := range dirs {
		entries, err := os.ReadDir(dir)
		if err != nil {
			if os.IsNotExist(err) {
				continue
			}
			return nil, fmt.Errorf("failed to read dictionary directory: %w", err)
		}
		for _, entry := range entries {
			if entry.IsDir() {
				continue
			}
			name := entry.Name()
			if strings.HasPrefix(name, ".") {
				continue
			}
			if _, ok := seen[name]; ok {
				continue
			}
			seen[name] = struct{}{}
			out = append(out, Dictionary{Name: name, Path: filepath.Join(dir, name)})
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func expandHome(path string) string {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return path
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~"))
}
