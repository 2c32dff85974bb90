// Package textpool loads the pool of source texts.
package textpool

import (
	"bufio"
	_ "embed"
	"fmt"
	"os"
	"strings"
)

//go:embed paragraphs.txt
var builtin string

// Default returns the built-in paragraphs.
func Default() []string {
	return Parse(builtin)
}

// Load returns the texts from path, or the built-in pool when path is empty.
func Load(path string) ([]string, error) {
	if path == "" {
		return Default(), nil
	}
	return LoadTexts(path)
}

// LoadTexts reads one text per line from the provided file path.
func LoadTexts(path string) ([]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() {
		if cerr := file.Close(); cerr != nil {
			// Best-effort close for read-only text file.
			_ = cerr
		}
	}()

	var texts []string
	scanner := bufio.NewScanner(file)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		if text := Normalize(scanner.Text()); text != "" {
			texts = append(texts, text)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	if len(texts) == 0 {
		return nil, fmt.Errorf("text file is empty")
	}
	return texts, nil
}

// Parse splits raw content into normalized texts, one per non-blank line.
func Parse(content string) []string {
	var texts []string
	for _, line := range strings.Split(content, "\n") {
		if text := Normalize(line); text != "" {
			texts = append(texts, text)
		}
	}
	return texts
}
