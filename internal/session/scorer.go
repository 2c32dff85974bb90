package session

import (
	"strings"

	"github.com/verte-zerg/typetest/internal/model"
	"github.com/verte-zerg/typetest/internal/stats"
)

// Score computes speed and accuracy for a finished session.
//
// Speed divides by the configured duration even when every line was typed
// before time ran out, so early finishes undercount.
func (e *Engine) Score() (model.Result, error) {
	if e.phase != PhaseFinished {
		return model.Result{}, ErrNotReady
	}
	wordsTyped := e.lineIndex*e.wordsPerLine + stats.WordCount(strings.TrimSpace(e.input))
	typed := strings.Join(e.lines[:e.lineIndex], lineSeparator) + e.input
	completed := e.lineIndex
	if e.lineIndex == len(e.lines)-1 && strings.TrimSpace(e.input) == e.lines[e.lineIndex] {
		completed = len(e.lines)
	}
	return model.Result{
		Duration:        e.duration,
		Lines:           len(e.lines),
		LinesCompleted:  completed,
		WordsTyped:      wordsTyped,
		TypedChars:      len([]rune(typed)),
		CorrectChars:    stats.CorrectChars(typed, e.sourceText),
		WordsPerSecond:  stats.WordsPerSecond(wordsTyped, e.duration),
		AccuracyPercent: stats.Accuracy(typed, e.sourceText),
	}, nil
}
