package engine

import "time"

// Loop is the fixed-timestep accumulator
// Real elapsed time is banked and spent in whole ticks; the remainder becomes
// the render interpolation factor
type Loop struct {
	tick        time.Duration
	clock       TimeProvider
	accumulator time.Duration

	last    time.Time
	started bool
	paused  bool
}

// NewLoop creates a loop stepping every tick, reading time from clock
func NewLoop(clock TimeProvider, tick time.Duration) *Loop {
	if tick <= 0 {
		panic("engine: tick must be positive")
	}
	return &Loop{
		tick:  tick,
		clock: clock,
	}
}

// Tick returns the fixed step duration
func (l *Loop) Tick() time.Duration {
	return l.tick
}

// Accumulated returns banked time not yet consumed by a step
func (l *Loop) Accumulated() time.Duration {
	return l.accumulator
}

// Advance banks elapsed time and runs step once per whole tick available
// Returns the number of steps run; zero, one, or several after a stall
// Discarded while paused; negative elapsed is ignored
func (l *Loop) Advance(elapsed time.Duration, step func()) int {
	if l.paused || elapsed <= 0 {
		return 0
	}

	l.accumulator += elapsed

	steps := 0
	for l.accumulator >= l.tick {
		step()
		l.accumulator -= l.tick
		steps++
	}
	return steps
}

// Interpolation returns the fraction of a tick banked since the last step, in [0, 1)
func (l *Loop) Interpolation() float64 {
	return float64(l.accumulator) / float64(l.tick)
}

// Frame reads the clock once and advances by the time since the previous frame
// The first frame only records the start time
func (l *Loop) Frame(step func()) (steps int, alpha float64) {
	return l.FrameAt(l.clock.Now(), step)
}

// FrameAt is Frame with the timestamp supplied by the caller
func (l *Loop) FrameAt(now time.Time, step func()) (steps int, alpha float64) {
	if !l.started {
		l.last = now
		l.started = true
	}
	elapsed := now.Sub(l.last)
	l.last = now

	steps = l.Advance(elapsed, step)
	return steps, l.Interpolation()
}

// Pause stops banking time; frames during a pause still move the reference
// timestamp so the paused span is never replayed
func (l *Loop) Pause() {
	l.paused = true
}

// Resume continues banking from the next frame
func (l *Loop) Resume() {
	l.paused = false
}

// TogglePause flips the pause state and returns the new one
func (l *Loop) TogglePause() bool {
	l.paused = !l.paused
	return l.paused
}

func (l *Loop) Paused() bool {
	return l.paused
}

// Reset drops banked time and restarts frame timing from the next Frame
func (l *Loop) Reset() {
	l.accumulator = 0
	l.started = false
}
