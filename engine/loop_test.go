package engine

import (
	"testing"
	"time"
)

const tick = 33 * time.Millisecond

var epoch = time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

func counter(n *int) func() {
	return func() { *n++ }
}

func TestLoopWholeTicksLeaveNoRemainder(t *testing.T) {
	for k := 0; k <= 5; k++ {
		l := NewLoop(NewMockTimeProvider(epoch), tick)
		var n int

		steps := l.Advance(time.Duration(k)*tick, counter(&n))

		if steps != k || n != k {
			t.Errorf("k=%d: steps=%d calls=%d", k, steps, n)
		}
		if alpha := l.Interpolation(); alpha != 0 {
			t.Errorf("k=%d: interpolation = %v, want 0", k, alpha)
		}
	}
}

func TestLoopHalfTick(t *testing.T) {
	l := NewLoop(NewMockTimeProvider(epoch), tick)
	var n int

	steps := l.Advance(tick/2, counter(&n))

	if steps != 0 || n != 0 {
		t.Errorf("steps=%d calls=%d, want 0", steps, n)
	}
	if alpha := l.Interpolation(); alpha != 0.5 {
		t.Errorf("interpolation = %v, want 0.5", alpha)
	}

	// The banked half tick completes with the next half
	steps = l.Advance(tick/2, counter(&n))
	if steps != 1 || l.Interpolation() != 0 {
		t.Errorf("second half: steps=%d alpha=%v", steps, l.Interpolation())
	}
}

func TestLoopCatchesUpAfterStall(t *testing.T) {
	l := NewLoop(NewMockTimeProvider(epoch), tick)
	var n int

	steps := l.Advance(10*tick+11*time.Millisecond, counter(&n))

	if steps != 10 {
		t.Errorf("steps = %d, want 10", steps)
	}
	if got := l.Accumulated(); got != 11*time.Millisecond {
		t.Errorf("accumulated = %v, want 11ms", got)
	}
	alpha := l.Interpolation()
	if alpha < 0 || alpha >= 1 {
		t.Errorf("interpolation %v out of [0,1)", alpha)
	}
}

func TestLoopIgnoresNonPositiveElapsed(t *testing.T) {
	l := NewLoop(NewMockTimeProvider(epoch), tick)
	var n int
	l.Advance(-time.Second, counter(&n))
	l.Advance(0, counter(&n))
	if n != 0 || l.Accumulated() != 0 {
		t.Errorf("calls=%d accumulated=%v", n, l.Accumulated())
	}
}

func TestLoopFrameReadsClock(t *testing.T) {
	clock := NewMockTimeProvider(epoch)
	l := NewLoop(clock, tick)
	var n int

	// First frame only records the reference time
	if steps, alpha := l.Frame(counter(&n)); steps != 0 || alpha != 0 {
		t.Fatalf("first frame: steps=%d alpha=%v", steps, alpha)
	}

	clock.Advance(2 * tick)
	if steps, alpha := l.Frame(counter(&n)); steps != 2 || alpha != 0 {
		t.Errorf("after 2 ticks: steps=%d alpha=%v", steps, alpha)
	}

	clock.Advance(tick / 2)
	if steps, alpha := l.Frame(counter(&n)); steps != 0 || alpha != 0.5 {
		t.Errorf("after half tick: steps=%d alpha=%v", steps, alpha)
	}

	if n != 2 {
		t.Errorf("total steps = %d, want 2", n)
	}
}

func TestLoopPauseDiscardsTime(t *testing.T) {
	clock := NewMockTimeProvider(epoch)
	l := NewLoop(clock, tick)
	var n int
	l.Frame(counter(&n))

	l.Pause()
	clock.Advance(10 * tick)
	if steps, _ := l.Frame(counter(&n)); steps != 0 {
		t.Errorf("paused frame ran %d steps", steps)
	}

	l.Resume()
	clock.Advance(tick)
	if steps, _ := l.Frame(counter(&n)); steps != 1 {
		t.Errorf("after resume: steps = %d, want 1 (paused span must not replay)", steps)
	}

	if !l.TogglePause() || !l.Paused() {
		t.Error("TogglePause should pause")
	}
	if l.TogglePause() {
		t.Error("second TogglePause should resume")
	}
}

func TestLoopReset(t *testing.T) {
	clock := NewMockTimeProvider(epoch)
	l := NewLoop(clock, tick)
	var n int

	l.Advance(tick/3, counter(&n))
	l.Reset()
	if l.Accumulated() != 0 {
		t.Errorf("accumulated = %v after reset", l.Accumulated())
	}

	clock.Advance(time.Hour)
	if steps, _ := l.Frame(counter(&n)); steps != 0 {
		t.Errorf("first frame after reset ran %d steps", steps)
	}
}

func TestNewLoopRejectsZeroTick(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic for zero tick")
		}
	}()
	NewLoop(NewMonotonicTimeProvider(), 0)
}
