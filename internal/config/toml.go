// Package config provides configuration helpers and TOML parsing.
package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"

	"github.com/verte-zerg/typetest/internal/model"
)

// FileConfig represents the TOML configuration file.
type FileConfig struct {
	Session SessionConfig `toml:"session"`
	Log     LogConfig     `toml:"log"`
}

// SessionConfig maps session-related settings.
type SessionConfig struct {
	Duration     *int    `toml:"duration"`
	WordsPerLine *int    `toml:"words-per-line"`
	Texts        *string `toml:"texts"`
	Seed         *int64  `toml:"seed"`
}

// LogConfig maps logging settings.
type LogConfig struct {
	File  *string `toml:"file"`
	Level *string `toml:"level"`
}

// LoadConfig reads a TOML config from the given path. Missing file is not an error.
func LoadConfig(path string) (FileConfig, error) {
	if path == "" {
		return FileConfig{}, fmt.Errorf("config path is empty")
	}
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return FileConfig{}, nil
		}
		return FileConfig{}, fmt.Errorf("failed to stat config: %w", err)
	}
	var cfg FileConfig
	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return FileConfig{}, fmt.Errorf("failed to decode config: %w", err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return FileConfig{}, fmt.Errorf("unknown config key %q", undecoded[0].String())
	}
	return cfg, nil
}

// Apply copies every value present in the file onto cfg.
func (f FileConfig) Apply(cfg *model.Config) {
	if f.Session.Duration != nil {
		cfg.Duration = *f.Session.Duration
	}
	if f.Session.WordsPerLine != nil {
		cfg.WordsPerLine = *f.Session.WordsPerLine
	}
	if f.Session.Texts != nil {
		cfg.TextsPath = *f.Session.Texts
	}
	if f.Session.Seed != nil {
		cfg.Seed = *f.Session.Seed
	}
	if f.Log.File != nil {
		cfg.LogFile = *f.Log.File
	}
	if f.Log.Level != nil {
		cfg.LogLevel = *f.Log.Level
	}
}
