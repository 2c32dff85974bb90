// Package source selects a text from the pool and splits it into lines.
package source

import (
	"errors"
	"math/rand"
	"strings"
	"time"
)

// DefaultWordsPerLine is the number of words shown per line.
const DefaultWordsPerLine = 5

var (
	// ErrEmptyPool is returned when there is no text to choose from.
	ErrEmptyPool = errors.New("text pool is empty")
	// ErrEmptyText is returned when the chosen text has no words.
	ErrEmptyText = errors.New("selected text has no words")
)

// Selector picks source texts.
type Selector struct {
	rnd *rand.Rand
}

// New returns a Selector seeded with the current time.
func New() *Selector {
	return NewSeeded(time.Now().UnixNano())
}

// NewSeeded returns a Selector with a fixed seed.
func NewSeeded(seed int64) *Selector {
	return &Selector{rnd: rand.New(rand.NewSource(seed))}
}

// Select picks one text uniformly from pool and chunks it into lines of n words.
func (s *Selector) Select(pool []string, n int) (string, []string, error) {
	if len(pool) == 0 {
		return "", nil, ErrEmptyPool
	}
	text := pool[s.rnd.Intn(len(pool))]
	lines := Chunk(text, n)
	if len(lines) == 0 {
		return "", nil, ErrEmptyText
	}
	return text, lines, nil
}

// Chunk splits text on whitespace and groups the words n per line.
// The last line holds the remainder. A non-positive n uses DefaultWordsPerLine.
func Chunk(text string, n int) []string {
	if n <= 0 {
		n = DefaultWordsPerLine
	}
	words := strings.Fields(text)
	lines := make([]string, 0, (len(words)+n-1)/n)
	for i := 0; i < len(words); i += n {
		end := i + n
		if end > len(words) {
			end = len(words)
		}
		lines = append(lines, strings.Join(words[i:end], " "))
	}
	return lines
}
