package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/verte-zerg/typetest/internal/model"
)

func TestLoadConfigMissingFile(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "missing.toml"))
	if err != nil {
		t.Fatalf("expected no error for missing file, got %v", err)
	}
	if cfg.Session.Duration != nil || cfg.Log.File != nil {
		t.Fatalf("expected empty config, got %+v", cfg)
	}
}

func TestLoadConfigApply(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	content := `[session]
duration = 120
words-per-line = 4

[log]
level = "debug"
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	fileCfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	cfg := model.Config{Duration: 60, WordsPerLine: 5, TextsPath: "keep", LogLevel: "info"}
	fileCfg.Apply(&cfg)
	if cfg.Duration != 120 || cfg.WordsPerLine != 4 || cfg.LogLevel != "debug" {
		t.Fatalf("file values not applied: %+v", cfg)
	}
	if cfg.TextsPath != "keep" {
		t.Fatalf("expected absent key to keep value, got %q", cfg.TextsPath)
	}
}

func TestLoadConfigUnknownKey(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte("[session]\nminutes = 2\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	if _, err := LoadConfig(path); err == nil {
		t.Fatalf("expected error for unknown key")
	}
}

func TestApplyEnv(t *testing.T) {
	t.Setenv("TYPETEST_DURATION", "180")
	t.Setenv("TYPETEST_LOG_FILE", "/tmp/typetest.log")
	cfg := model.Config{Duration: 60, WordsPerLine: 5}
	if err := ApplyEnv(&cfg); err != nil {
		t.Fatalf("apply env: %v", err)
	}
	if cfg.Duration != 180 {
		t.Fatalf("expected duration 180, got %d", cfg.Duration)
	}
	if cfg.LogFile != "/tmp/typetest.log" {
		t.Fatalf("unexpected log file %q", cfg.LogFile)
	}
	if cfg.WordsPerLine != 5 {
		t.Fatalf("expected unset variable to keep value, got %d", cfg.WordsPerLine)
	}
}

func TestApplyEnvInvalid(t *testing.T) {
	t.Setenv("TYPETEST_DURATION", "two minutes")
	cfg := model.Config{Duration: 60}
	if err := ApplyEnv(&cfg); err == nil {
		t.Fatalf("expected parse error")
	}
}
