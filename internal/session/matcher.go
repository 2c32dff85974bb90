package session

import (
	"strings"

	"go.uber.org/zap"
)

// MatchOutcome reports what SubmitInput did with the buffer.
type MatchOutcome int

const (
	// OutcomePending means the buffer was stored without a completion attempt.
	OutcomePending MatchOutcome = iota
	// OutcomeAdvanced means the line matched and the next line is active.
	OutcomeAdvanced
	// OutcomeCompleted means the final line matched and the session finished.
	OutcomeCompleted
	// OutcomeRejected means a completion attempt did not match the line.
	OutcomeRejected
	// OutcomeNotAccepting means the session is not in the typing phase.
	OutcomeNotAccepting
)

func (o MatchOutcome) String() string {
	switch o {
	case OutcomePending:
		return "pending"
	case OutcomeAdvanced:
		return "advanced"
	case OutcomeCompleted:
		return "completed"
	case OutcomeRejected:
		return "rejected"
	case OutcomeNotAccepting:
		return "not accepting"
	default:
		return "unknown"
	}
}

// lineSeparator ends a completion attempt.
const lineSeparator = " "

// SubmitInput matches the full contents of the input buffer against the
// active line. The first call after Start arms the timer.
func (e *Engine) SubmitInput(raw string) MatchOutcome {
	if e.phase != PhaseTyping {
		return OutcomeNotAccepting
	}
	if tick, ok := e.timer.Arm(); ok {
		e.log.Debug("timer armed", zap.Int("seconds", e.timer.Left()))
		e.schedule(tick)
	}

	line := e.lines[e.lineIndex]
	trimmed := strings.TrimSpace(raw)
	if !strings.HasSuffix(raw, lineSeparator) && trimmed != line {
		e.input = raw
		return OutcomePending
	}
	if trimmed != line {
		e.input = raw
		e.log.Debug("line rejected", zap.Int("line", e.lineIndex), zap.String("input", raw))
		return OutcomeRejected
	}
	if e.lineIndex+1 < len(e.lines) {
		e.lineIndex++
		e.input = ""
		return OutcomeAdvanced
	}
	e.input = raw
	e.finish("all lines typed")
	return OutcomeCompleted
}

// WordMark classifies a word of the active line against the input.
type WordMark int

const (
	// WordUnmarked means the input has no word at that position yet.
	WordUnmarked WordMark = iota
	WordCorrect
	WordIncorrect
)

func (m WordMark) String() string {
	switch m {
	case WordUnmarked:
		return "unmarked"
	case WordCorrect:
		return "correct"
	case WordIncorrect:
		return "incorrect"
	default:
		return "unknown"
	}
}

// WordMarks compares the active line's words positionally with the words of
// the current input. It does not modify the session.
func (e *Engine) WordMarks() []WordMark {
	if e.phase == PhaseSetup || e.lineIndex >= len(e.lines) {
		return nil
	}
	return MarkWords(e.lines[e.lineIndex], e.input)
}

// MarkWords classifies each word of line against the words of input.
func MarkWords(line, input string) []WordMark {
	lineWords := strings.Split(line, lineSeparator)
	inputWords := strings.Fields(input)
	marks := make([]WordMark, len(lineWords))
	for i, word := range lineWords {
		switch {
		case i >= len(inputWords):
			marks[i] = WordUnmarked
		case inputWords[i] == word:
			marks[i] = WordCorrect
		default:
			marks[i] = WordIncorrect
		}
	}
	return marks
}
