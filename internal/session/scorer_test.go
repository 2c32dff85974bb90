package session

import (
	"errors"
	"testing"
)

func TestScoreNotReady(t *testing.T) {
	e, _ := newTestEngine(t, 60)
	if _, err := e.Score(); !errors.Is(err, ErrNotReady) {
		t.Fatalf("expected ErrNotReady in setup, got %v", err)
	}
	if err := e.Start(); err != nil {
		t.Fatalf("start: %v", err)
	}
	if _, err := e.Score(); !errors.Is(err, ErrNotReady) {
		t.Fatalf("expected ErrNotReady while typing, got %v", err)
	}
}

func TestScoreAllLinesTyped(t *testing.T) {
	e, _ := startedEngine(t, 60)
	e.SubmitInput("the quick brown fox jumps ")
	e.SubmitInput("over the lazy dog end")

	result, err := e.Score()
	if err != nil {
		t.Fatalf("score: %v", err)
	}
	if result.WordsTyped != 10 {
		t.Fatalf("expected 10 words, got %d", result.WordsTyped)
	}
	if result.WordsPerSecond != 0.17 {
		t.Fatalf("expected 0.17 wps, got %v", result.WordsPerSecond)
	}
	if result.TypedChars != 46 || result.CorrectChars != 25 {
		t.Fatalf("expected 25/46 chars, got %d/%d", result.CorrectChars, result.TypedChars)
	}
	if result.AccuracyPercent != 54 {
		t.Fatalf("expected 54%% accuracy, got %d", result.AccuracyPercent)
	}
	if result.Lines != 2 || result.LinesCompleted != 2 {
		t.Fatalf("expected 2/2 lines, got %d/%d", result.LinesCompleted, result.Lines)
	}
}

func TestScoreUsesConfiguredDuration(t *testing.T) {
	e, _ := newTestEngine(t, 60)
	if err := e.SelectDuration(180); err != nil {
		t.Fatalf("select duration: %v", err)
	}
	if err := e.Start(); err != nil {
		t.Fatalf("start: %v", err)
	}
	e.SubmitInput("the quick brown fox jumps ")
	e.SubmitInput("over the lazy dog end")
	result, err := e.Score()
	if err != nil {
		t.Fatalf("score: %v", err)
	}
	if result.WordsPerSecond != 0.06 {
		t.Fatalf("expected 10/180 = 0.06, got %v", result.WordsPerSecond)
	}
}

func TestScoreEmptyTypedText(t *testing.T) {
	e, sched := startedEngine(t, 60)
	e.SubmitInput("")
	for e.Phase() == PhaseTyping {
		e.Tick(sched.last(t))
	}
	result, err := e.Score()
	if err != nil {
		t.Fatalf("score: %v", err)
	}
	if result.AccuracyPercent != 0 || result.TypedChars != 0 || result.WordsTyped != 0 {
		t.Fatalf("expected empty result, got %+v", result)
	}
}
