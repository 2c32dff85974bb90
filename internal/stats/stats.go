// Package stats contains speed and accuracy calculations and reporting.
package stats

import (
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/verte-zerg/typetest/internal/model"
)

// WordCount counts whitespace-separated words, ignoring empty tokens.
func WordCount(text string) int {
	return len(strings.Fields(text))
}

// CorrectChars counts rune positions where typed matches source at the same offset.
// Positions beyond the end of source never match.
func CorrectChars(typed, source string) int {
	typedRunes := []rune(typed)
	sourceRunes := []rune(source)
	correct := 0
	for i, r := range typedRunes {
		if i < len(sourceRunes) && sourceRunes[i] == r {
			correct++
		}
	}
	return correct
}

// Accuracy returns the rounded percentage of correct characters in typed.
// An empty typed text has an accuracy of 0.
func Accuracy(typed, source string) int {
	total := len([]rune(typed))
	if total == 0 {
		return 0
	}
	return int(math.Round(100 * float64(CorrectChars(typed, source)) / float64(total)))
}

// WordsPerSecond divides words by the configured duration, rounded to 2 decimals.
func WordsPerSecond(words, durationSeconds int) float64 {
	if durationSeconds <= 0 {
		return 0
	}
	return math.Round(float64(words)/float64(durationSeconds)*100) / 100
}

// FormatWPS renders a words-per-second value with fixed 2-decimal precision.
func FormatWPS(wps float64) string {
	return fmt.Sprintf("%.2f", wps)
}

// RenderResult prints a summary table for a finished session.
func RenderResult(w io.Writer, result model.Result) error {
	if _, err := fmt.Fprintln(w, "Result"); err != nil {
		return err
	}
	rows := [][]string{
		{"Words per second", FormatWPS(result.WordsPerSecond)},
		{"Accuracy", fmt.Sprintf("%d%%", result.AccuracyPercent)},
		{"Words typed", fmt.Sprintf("%d", result.WordsTyped)},
		{"Characters", fmt.Sprintf("%d/%d", result.CorrectChars, result.TypedChars)},
		{"Lines", fmt.Sprintf("%d/%d", result.LinesCompleted, result.Lines)},
		{"Duration", fmt.Sprintf("%ds", result.Duration)},
	}
	lines := formatTable(nil, rows, map[int]bool{1: true})
	for _, line := range lines {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}
