// Package config provides configuration helpers and TOML parsing.
package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// FileConfig represents the TOML configuration file.
type FileConfig struct {
	Session SessionConfig `toml:"session"`
	Theme   ThemeConfig   `toml:"theme"`
}

// SessionConfig maps session-related settings.
type SessionConfig struct {
	Mode  *string `toml:"mode"`
	File  *string `toml:"file"`
	Width *int    `toml:"width"`
	Lines *int    `toml:"lines"`
	Time  *int    `toml:"time"`
	Rate  *int    `toml:"rate"`
	Sound *bool   `toml:"sound"`
}

// ThemeConfig maps word state colors.
type ThemeConfig struct {
	Selected *string `toml:"selected"`
	Wrong    *string `toml:"wrong"`
	Right    *string `toml:"right"`
}

// LoadConfig reads a TOML config from the given path. Missing file is not an error.
func LoadConfig(path string) (FileConfig, error) {
	if path == "" {
		return FileConfig{}, fmt.Errorf("config path is empty")
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return FileConfig{}, nil
		}
		return FileConfig{}, fmt.Errorf("failed to read config: %w", err)
	}
	return decodeConfig(string(data))
}

// decodeConfig parses TOML text and rejects keys FileConfig does not know.
func decodeConfig(text string) (FileConfig, error) {
	var cfg FileConfig
	meta, err := toml.Decode(text, &cfg)
	if err != nil {
		return FileConfig{}, fmt.Errorf("failed to decode config: %w", err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return FileConfig{}, fmt.Errorf("unknown config key %q", undecoded[0].String())
	}
	return cfg, nil
}
