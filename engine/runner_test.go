package engine

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/lixenwraith/vi-pong/game"
	"github.com/lixenwraith/vi-pong/input"
	"github.com/lixenwraith/vi-pong/status"
	"github.com/lixenwraith/vi-pong/vmath"
)

// scriptedInput replays one mutation and command per poll
type scriptedInput struct {
	polls int
	steps []func(c *input.Controls) input.Command
}

func (s *scriptedInput) Poll(_ time.Time, c *input.Controls) input.Command {
	defer func() { s.polls++ }()
	if s.polls < len(s.steps) && s.steps[s.polls] != nil {
		return s.steps[s.polls](c)
	}
	return input.CommandNone
}

type recordingRenderer struct {
	frames  []FrameInfo
	resized int
}

func (r *recordingRenderer) Render(_ *game.State, f FrameInfo) { r.frames = append(r.frames, f) }
func (r *recordingRenderer) Resize()                            { r.resized++ }

type recordingSink struct {
	events []game.Event
}

func (s *recordingSink) HandleEvent(ev game.Event) { s.events = append(s.events, ev) }

type fixture struct {
	clock    *MockTimeProvider
	state    *game.State
	input    *scriptedInput
	renderer *recordingRenderer
	sink     *recordingSink
	reg      *status.Registry
	runner   *Runner
}

func newFixture(steps ...func(c *input.Controls) input.Command) *fixture {
	f := &fixture{
		clock:    NewMockTimeProvider(epoch),
		state:    game.NewState(vmath.NewFastRand(1)),
		input:    &scriptedInput{steps: steps},
		renderer: &recordingRenderer{},
		sink:     &recordingSink{},
		reg:      status.NewRegistry(),
	}
	f.runner = NewRunner(RunnerConfig{
		State:    f.state,
		Loop:     NewLoop(f.clock, tick),
		Clock:    f.clock,
		Input:    f.input,
		Renderer: f.renderer,
		Sinks:    []EventSink{f.sink},
		Status:   f.reg,
	})
	return f
}

func TestRunnerPressedConsumedOncePerTick(t *testing.T) {
	f := newFixture(func(c *input.Controls) input.Command {
		c.Left.UpPressed = true
		return input.CommandNone
	})

	// First frame: no time banked, press must survive
	f.runner.RunFrame()
	if !f.runner.Controls().Left.UpPressed {
		t.Fatal("press consumed without a tick")
	}

	f.clock.Advance(3 * tick)
	f.runner.RunFrame()

	// One press moves exactly one tick's worth
	if f.state.Left.Y != 175 {
		t.Errorf("left paddle y = %v, want 175", f.state.Left.Y)
	}
	if f.runner.Controls().Left.UpPressed {
		t.Error("press not reset after step")
	}
	if got := f.reg.Ints.Get("engine.ticks").Load(); got != 3 {
		t.Errorf("ticks = %d, want 3", got)
	}
	if got := f.reg.Ints.Get("engine.steps_last_frame").Load(); got != 3 {
		t.Errorf("steps_last_frame = %d, want 3", got)
	}
}

func TestRunnerRendersInterpolation(t *testing.T) {
	f := newFixture()

	f.runner.RunFrame()
	f.clock.Advance(tick + tick/2)
	f.runner.RunFrame()

	if len(f.renderer.frames) != 2 {
		t.Fatalf("rendered %d frames, want 2", len(f.renderer.frames))
	}
	last := f.renderer.frames[1]
	if last.Alpha != 0.5 || last.Number != 2 || last.Paused {
		t.Errorf("frame = %+v", last)
	}
	if f.state.Ticks != 1 {
		t.Errorf("state ticks = %d, want 1", f.state.Ticks)
	}
}

func TestRunnerQuitStopsBeforeStepping(t *testing.T) {
	f := newFixture(func(*input.Controls) input.Command { return input.CommandQuit })

	if f.runner.RunFrame() {
		t.Error("RunFrame should report quit")
	}
	if len(f.renderer.frames) != 0 {
		t.Error("rendered after quit")
	}
}

func TestRunnerPauseToggle(t *testing.T) {
	f := newFixture(
		nil,
		func(*input.Controls) input.Command { return input.CommandPause },
		nil,
		func(*input.Controls) input.Command { return input.CommandPause },
	)

	f.runner.RunFrame()
	f.clock.Advance(5 * tick)
	f.runner.RunFrame() // pauses before banking
	if f.state.Ticks != 0 {
		t.Fatalf("stepped %d ticks while pausing", f.state.Ticks)
	}
	if !f.renderer.frames[1].Paused || !f.reg.Bools.Get("engine.paused").Load() {
		t.Error("pause not reported")
	}

	f.clock.Advance(5 * tick)
	f.runner.RunFrame()
	if f.state.Ticks != 0 {
		t.Fatalf("stepped %d ticks while paused", f.state.Ticks)
	}

	f.clock.Advance(2 * tick)
	f.runner.RunFrame() // resumes and banks
	if f.state.Ticks != 2 {
		t.Errorf("ticks after resume = %d, want 2", f.state.Ticks)
	}
}

func TestRunnerRestartAndResize(t *testing.T) {
	f := newFixture(func(*input.Controls) input.Command {
		return input.CommandRestart | input.CommandResize
	})
	f.state.Left.Score = 5
	f.state.Right.Score = 2

	f.runner.RunFrame()

	if f.state.Left.Score != 0 || f.state.Right.Score != 0 {
		t.Errorf("scores = %d:%d after restart", f.state.Left.Score, f.state.Right.Score)
	}
	if f.renderer.resized != 1 {
		t.Errorf("resized %d times, want 1", f.renderer.resized)
	}
}

func TestRunnerForwardsEvents(t *testing.T) {
	f := newFixture()
	f.state.Ball.Pos = vmath.V2(8, 300)
	f.state.Ball.Vel = vmath.V2(-6, 0)
	f.state.Ball.Speed = 6

	f.runner.RunFrame()
	f.clock.Advance(tick)
	f.runner.RunFrame()

	if len(f.sink.events) != 1 || !f.sink.events[0].Has(game.EventRightScored) {
		t.Fatalf("events = %v, want one right-scored", f.sink.events)
	}
	if got := f.reg.Ints.Get("game.points").Load(); got != 1 {
		t.Errorf("points = %d, want 1", got)
	}
}

func TestRunnerRunHonoursContext(t *testing.T) {
	f := newFixture()
	f.clock.SetStep(time.Millisecond)
	f.runner.frameInterval = time.Millisecond

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if err := f.runner.Run(ctx); !errors.Is(err, context.Canceled) {
		t.Errorf("Run = %v, want context.Canceled", err)
	}
}

func TestRunnerRunReturnsNilOnQuit(t *testing.T) {
	f := newFixture(nil, nil, func(*input.Controls) input.Command { return input.CommandQuit })
	f.runner.frameInterval = time.Millisecond

	if err := f.runner.Run(context.Background()); err != nil {
		t.Errorf("Run = %v, want nil", err)
	}
	if len(f.renderer.frames) != 2 {
		t.Errorf("rendered %d frames before quit, want 2", len(f.renderer.frames))
	}
}
