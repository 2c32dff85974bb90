package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/verte-zerg/typetest/internal/session"
)

type styledWord struct {
	s     string
	width int
}

// buildStyledWords styles each word by its mark. Words without a mark use
// base, except the first unmarked word which is highlighted as the next one
// to type. A nil marks slice styles every word with base.
func buildStyledWords(words []string, marks []session.WordMark, base lipgloss.Style) []styledWord {
	next := -1
	if marks != nil {
		next = nextWord(marks)
	}
	out := make([]styledWord, 0, len(words))
	for i, word := range words {
		style := base
		if i < len(marks) {
			switch marks[i] {
			case session.WordCorrect:
				style = correctStyle
			case session.WordIncorrect:
				style = incorrectStyle
			default:
				if i == next {
					style = currentWordStyle
				}
			}
		}
		out = append(out, styledWord{
			s:     style.Render(word),
			width: runewidth.StringWidth(word),
		})
	}
	return out
}

func nextWord(marks []session.WordMark) int {
	for i, mark := range marks {
		if mark == session.WordUnmarked {
			return i
		}
	}
	return -1
}

func renderStyledWords(words []styledWord) string {
	parts := make([]string, len(words))
	for i, w := range words {
		parts[i] = w.s
	}
	return strings.Join(parts, " ")
}

// wrapStyledWords breaks words into rows no wider than width. A word wider
// than width gets a row of its own.
func wrapStyledWords(words []styledWord, width int) string {
	if width <= 0 {
		return renderStyledWords(words)
	}
	var rows []string
	row := make([]styledWord, 0, len(words))
	rowWidth := 0
	for _, w := range words {
		needed := w.width
		if len(row) > 0 {
			needed++
		}
		if rowWidth+needed > width && len(row) > 0 {
			rows = append(rows, renderStyledWords(row))
			row = row[:0]
			rowWidth = 0
			needed = w.width
		}
		row = append(row, w)
		rowWidth += needed
	}
	if len(row) > 0 {
		rows = append(rows, renderStyledWords(row))
	}
	return strings.Join(rows, "\n")
}
