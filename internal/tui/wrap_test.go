package tui

import (
	"strings"
	"testing"

	"github.com/verte-zerg/typetest/internal/session"
)

func TestBuildStyledWordsMarks(t *testing.T) {
	words := []string{"the", "quick", "brown", "fox"}
	marks := []session.WordMark{session.WordCorrect, session.WordIncorrect, session.WordUnmarked, session.WordUnmarked}

	out := buildStyledWords(words, marks, pendingStyle)
	if len(out) != 4 {
		t.Fatalf("expected 4 words, got %d", len(out))
	}
	if out[0].s != correctStyle.Render("the") {
		t.Fatalf("expected correct style for first word")
	}
	if out[1].s != incorrectStyle.Render("quick") {
		t.Fatalf("expected incorrect style for second word")
	}
	if out[2].s != currentWordStyle.Render("brown") {
		t.Fatalf("expected current word style for next word")
	}
	if out[3].s != pendingStyle.Render("fox") {
		t.Fatalf("expected pending style for later word")
	}
}

func TestBuildStyledWordsWithoutMarks(t *testing.T) {
	out := buildStyledWords([]string{"over", "the"}, nil, upcomingStyle)
	for i, w := range out {
		if w.s != upcomingStyle.Render([]string{"over", "the"}[i]) {
			t.Fatalf("expected base style for word %d", i)
		}
	}
}

func TestBuildStyledWordsWidth(t *testing.T) {
	out := buildStyledWords([]string{"日本"}, nil, pendingStyle)
	if out[0].width != 4 {
		t.Fatalf("expected display width 4, got %d", out[0].width)
	}
}

func TestWrapStyledWords(t *testing.T) {
	words := []styledWord{
		{s: "the", width: 3},
		{s: "quick", width: 5},
		{s: "brown", width: 5},
		{s: "fox", width: 3},
	}
	got := wrapStyledWords(words, 10)
	want := "the quick\nbrown fox"
	if got != want {
		t.Fatalf("wrap = %q want %q", got, want)
	}
	if got := wrapStyledWords(words, 0); got != "the quick brown fox" {
		t.Fatalf("unwrapped = %q", got)
	}
}

func TestWrapStyledWordsLongWord(t *testing.T) {
	words := []styledWord{
		{s: "a", width: 1},
		{s: "extraordinary", width: 13},
		{s: "b", width: 1},
	}
	got := wrapStyledWords(words, 5)
	lines := strings.Split(got, "\n")
	if len(lines) != 3 || lines[1] != "extraordinary" {
		t.Fatalf("expected long word on its own row, got %q", got)
	}
}
