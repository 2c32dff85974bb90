package textpool

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "collapses spaces", in: "the  quick\tbrown", want: "the quick brown"},
		{name: "trims edges", in: "  fox jumps \r", want: "fox jumps"},
		{name: "drops bom", in: "\ufeffhello world", want: "hello world"},
		{name: "blank", in: " \t ", want: ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Normalize(tt.in); got != tt.want {
				t.Fatalf("Normalize(%q) = %q want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestDefaultPoolNotEmpty(t *testing.T) {
	texts := Default()
	if len(texts) == 0 {
		t.Fatalf("expected built-in texts")
	}
	for i, text := range texts {
		if strings.Contains(text, "  ") || strings.TrimSpace(text) != text {
			t.Fatalf("text %d is not normalized: %q", i, text)
		}
	}
}

func TestLoadTextsSkipsBlankLines(t *testing.T) {
	path := filepath.Join(t.TempDir(), "texts.txt")
	content := "first   text here\n\n   \nsecond text\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write texts: %v", err)
	}
	texts, err := LoadTexts(path)
	if err != nil {
		t.Fatalf("load texts: %v", err)
	}
	if len(texts) != 2 {
		t.Fatalf("expected 2 texts, got %d", len(texts))
	}
	if texts[0] != "first text here" || texts[1] != "second text" {
		t.Fatalf("unexpected texts: %q", texts)
	}
}

func TestLoadTextsEmptyFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "texts.txt")
	if err := os.WriteFile(path, []byte("\n  \n"), 0o644); err != nil {
		t.Fatalf("write texts: %v", err)
	}
	if _, err := LoadTexts(path); err == nil {
		t.Fatalf("expected error for empty file")
	}
}

func TestLoadFallsBackToDefault(t *testing.T) {
	texts, err := Load("")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(texts) != len(Default()) {
		t.Fatalf("expected built-in pool, got %d texts", len(texts))
	}
}
