// Package session implements the typing session engine: phase transitions,
// the countdown, line matching and scoring.
//
// An Engine is owned by a single goroutine. Ticks and input must be fed to
// it serially, in arrival order; it is not safe for concurrent use.
package session

import (
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/verte-zerg/typetest/internal/model"
	"github.com/verte-zerg/typetest/internal/source"
)

// Phase is the coarse state of a session.
type Phase int

const (
	PhaseSetup Phase = iota
	PhaseTyping
	PhaseFinished
)

func (p Phase) String() string {
	switch p {
	case PhaseSetup:
		return "setup"
	case PhaseTyping:
		return "typing"
	case PhaseFinished:
		return "finished"
	default:
		return "unknown"
	}
}

var (
	// ErrInvalidDuration is returned for a duration outside model.Durations.
	ErrInvalidDuration = errors.New("invalid duration")
	// ErrDurationLocked is returned when the duration is changed outside setup.
	ErrDurationLocked = errors.New("duration can only be changed during setup")
	// ErrAlreadyStarted is returned when Start is called outside setup.
	ErrAlreadyStarted = errors.New("session already started")
	// ErrNotReady is returned when scoring a session that has not finished.
	ErrNotReady = errors.New("session not finished")
)

// Config holds the engine settings.
type Config struct {
	Duration     int
	WordsPerLine int
}

// Engine is the session state container.
type Engine struct {
	pool         []string
	selector     *source.Selector
	scheduler    Scheduler
	log          *zap.Logger
	wordsPerLine int

	phase      Phase
	duration   int
	timer      Timer
	epoch      uint64
	sourceText string
	lines      []string
	lineIndex  int
	input      string
}

// New returns an engine in the setup phase. An invalid duration falls back
// to the first allowed one.
func New(cfg Config, pool []string, selector *source.Selector, scheduler Scheduler, log *zap.Logger) *Engine {
	if log == nil {
		log = zap.NewNop()
	}
	duration := cfg.Duration
	if !model.ValidDuration(duration) {
		duration = model.Durations[0]
	}
	wordsPerLine := cfg.WordsPerLine
	if wordsPerLine <= 0 {
		wordsPerLine = source.DefaultWordsPerLine
	}
	e := &Engine{
		pool:         pool,
		selector:     selector,
		scheduler:    scheduler,
		log:          log,
		wordsPerLine: wordsPerLine,
		duration:     duration,
	}
	e.timer = newTimer(duration, e.epoch)
	return e
}

// SelectDuration sets the session length. Only allowed during setup.
func (e *Engine) SelectDuration(seconds int) error {
	if e.phase != PhaseSetup {
		return ErrDurationLocked
	}
	if !model.ValidDuration(seconds) {
		return fmt.Errorf("%w: %d seconds (allowed: %v)", ErrInvalidDuration, seconds, model.Durations)
	}
	e.duration = seconds
	e.timer = newTimer(seconds, e.epoch)
	return nil
}

// Start picks a text and enters the typing phase. The timer stays idle
// until the first input arrives.
func (e *Engine) Start() error {
	if e.phase != PhaseSetup {
		return ErrAlreadyStarted
	}
	text, lines, err := e.selector.Select(e.pool, e.wordsPerLine)
	if err != nil {
		return fmt.Errorf("failed to select text: %w", err)
	}
	e.sourceText = text
	e.lines = lines
	e.lineIndex = 0
	e.input = ""
	e.timer = newTimer(e.duration, e.epoch)
	e.phase = PhaseTyping
	e.log.Debug("session started",
		zap.Uint64("epoch", e.epoch),
		zap.Int("duration", e.duration),
		zap.Int("lines", len(lines)),
	)
	return nil
}

// Tick applies a scheduled countdown step. Stale ticks from a disarmed or
// discarded session are ignored and reported as false.
func (e *Engine) Tick(tick Tick) bool {
	if e.phase != PhaseTyping {
		return false
	}
	next, expired, ok := e.timer.Fire(tick)
	if !ok {
		return false
	}
	if expired {
		e.finish("time up")
		return true
	}
	e.schedule(next)
	return true
}

// Restart discards the session and returns to setup, keeping the duration.
func (e *Engine) Restart() {
	e.timer.Disarm()
	e.epoch++
	e.phase = PhaseSetup
	e.sourceText = ""
	e.lines = nil
	e.lineIndex = 0
	e.input = ""
	e.timer = newTimer(e.duration, e.epoch)
	e.log.Debug("session restarted", zap.Uint64("epoch", e.epoch))
}

func (e *Engine) finish(reason string) {
	e.timer.Disarm()
	e.phase = PhaseFinished
	e.log.Debug("session finished",
		zap.String("reason", reason),
		zap.Int("line", e.lineIndex),
		zap.Int("time_left", e.timer.Left()),
	)
}

func (e *Engine) schedule(tick Tick) {
	if e.scheduler == nil {
		return
	}
	e.scheduler.Schedule(TickInterval, tick)
}

// Phase returns the current phase.
func (e *Engine) Phase() Phase {
	return e.phase
}

// Duration returns the configured duration in seconds.
func (e *Engine) Duration() int {
	return e.duration
}

// TimeLeft returns the remaining seconds.
func (e *Engine) TimeLeft() int {
	return e.timer.Left()
}

// TimerState returns the countdown state.
func (e *Engine) TimerState() TimerState {
	return e.timer.State()
}

// Lines returns a copy of the chunked text.
func (e *Engine) Lines() []string {
	return append([]string(nil), e.lines...)
}

// LineIndex returns the index of the active line.
func (e *Engine) LineIndex() int {
	return e.lineIndex
}

// Input returns the buffer for the active line.
func (e *Engine) Input() string {
	return e.input
}

// SourceText returns the selected text, empty during setup.
func (e *Engine) SourceText() string {
	return e.sourceText
}

// WordsPerLine returns the chunk size.
func (e *Engine) WordsPerLine() int {
	return e.wordsPerLine
}

// Snapshot is a read-only copy of the engine state for rendering.
type Snapshot struct {
	Phase      Phase
	Duration   int
	TimeLeft   int
	TimerState TimerState
	Lines      []string
	LineIndex  int
	Input      string
	Marks      []WordMark
}

// Snapshot returns a copy of the current state.
func (e *Engine) Snapshot() Snapshot {
	return Snapshot{
		Phase:      e.phase,
		Duration:   e.duration,
		TimeLeft:   e.timer.Left(),
		TimerState: e.timer.State(),
		Lines:      e.Lines(),
		LineIndex:  e.lineIndex,
		Input:      e.input,
		Marks:      e.WordMarks(),
	}
}
