package session

import "time"

// TickInterval is the countdown resolution.
const TickInterval = time.Second

// TimerState is the lifecycle state of the countdown.
type TimerState int

const (
	TimerIdle TimerState = iota
	TimerRunning
	TimerStopped
)

func (s TimerState) String() string {
	switch s {
	case TimerIdle:
		return "idle"
	case TimerRunning:
		return "running"
	case TimerStopped:
		return "stopped"
	default:
		return "unknown"
	}
}

// Tick identifies one scheduled countdown step. Only the tick matching the
// live epoch and the latest sequence number is accepted.
type Tick struct {
	Epoch uint64
	Seq   uint64
}

// Scheduler delivers a tick back to the engine after a delay.
type Scheduler interface {
	Schedule(after time.Duration, tick Tick)
}

// Timer counts down whole seconds. It is driven by Fire and never goes negative.
type Timer struct {
	state TimerState
	left  int
	epoch uint64
	seq   uint64
}

func newTimer(seconds int, epoch uint64) Timer {
	return Timer{state: TimerIdle, left: seconds, epoch: epoch}
}

// State returns the current timer state.
func (t *Timer) State() TimerState {
	return t.state
}

// Left returns the remaining seconds.
func (t *Timer) Left() int {
	return t.left
}

// Arm moves an idle timer to running and returns the first tick to schedule.
func (t *Timer) Arm() (Tick, bool) {
	if t.state != TimerIdle {
		return Tick{}, false
	}
	t.state = TimerRunning
	t.seq++
	return Tick{Epoch: t.epoch, Seq: t.seq}, true
}

// Fire applies a tick. It reports whether the tick was accepted, whether the
// countdown just reached zero, and the next tick to schedule while running.
func (t *Timer) Fire(tick Tick) (next Tick, expired, accepted bool) {
	if t.state != TimerRunning || tick.Epoch != t.epoch || tick.Seq != t.seq {
		return Tick{}, false, false
	}
	if t.left > 0 {
		t.left--
	}
	if t.left == 0 {
		t.state = TimerStopped
		return Tick{}, true, true
	}
	t.seq++
	return Tick{Epoch: t.epoch, Seq: t.seq}, false, true
}

// Disarm stops the timer. Calling it again is a no-op.
func (t *Timer) Disarm() {
	t.state = TimerStopped
}
