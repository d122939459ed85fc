package engine

import (
	"context"
	"log"
	"sync/atomic"
	"time"

	"github.com/lixenwraith/vi-pong/game"
	"github.com/lixenwraith/vi-pong/input"
	"github.com/lixenwraith/vi-pong/parameter"
	"github.com/lixenwraith/vi-pong/status"
)

// InputSource fills per-player controls and reports commands raised since the last poll
type InputSource interface {
	Poll(now time.Time, controls *input.Controls) input.Command
}

// FrameInfo is passed to the renderer alongside the state
type FrameInfo struct {
	Alpha  float64 // interpolation factor in [0, 1)
	Paused bool
	Number uint64
}

// Renderer draws the state; must treat it as read-only
type Renderer interface {
	Render(state *game.State, frame FrameInfo)
}

// Resizer is implemented by renderers that react to terminal resizes
type Resizer interface {
	Resize()
}

// EventSink receives the events produced by each simulation step
type EventSink interface {
	HandleEvent(ev game.Event)
}

// RunnerConfig wires a Runner
type RunnerConfig struct {
	State    *game.State
	Loop     *Loop
	Clock    TimeProvider
	Input    InputSource
	Renderer Renderer
	Sinks    []EventSink
	Status   *status.Registry

	// FrameInterval paces Run; zero selects parameter.FrameUpdateInterval
	FrameInterval time.Duration
}

// Runner is the iterate-until-quit driver
// Poll input, step the simulation as many ticks as banked, render. All state
// access happens on the goroutine calling Run
type Runner struct {
	state    *game.State
	loop     *Loop
	clock    TimeProvider
	input    InputSource
	renderer Renderer
	sinks    []EventSink

	frameInterval time.Duration
	controls      input.Controls
	frames        uint64
	lastFrame     time.Time

	// Cached metric pointers
	statTicks      *atomic.Int64
	statFrames     *atomic.Int64
	statSteps      *atomic.Int64
	statPaddleHits *atomic.Int64
	statBounces    *atomic.Int64
	statPoints     *atomic.Int64
	statPaused     *atomic.Bool
	statAlpha      *status.AtomicFloat
	statFPS        *status.AtomicFloat
	statBallSpeed  *status.AtomicFloat
}

// NewRunner creates a runner from cfg; a nil Status gets a private registry
func NewRunner(cfg RunnerConfig) *Runner {
	reg := cfg.Status
	if reg == nil {
		reg = status.NewRegistry()
	}
	frameInterval := cfg.FrameInterval
	if frameInterval <= 0 {
		frameInterval = parameter.FrameUpdateInterval
	}

	return &Runner{
		state:         cfg.State,
		loop:          cfg.Loop,
		clock:         cfg.Clock,
		input:         cfg.Input,
		renderer:      cfg.Renderer,
		sinks:         cfg.Sinks,
		frameInterval: frameInterval,

		statTicks:      reg.Ints.Get("engine.ticks"),
		statFrames:     reg.Ints.Get("engine.frames"),
		statSteps:      reg.Ints.Get("engine.steps_last_frame"),
		statPaddleHits: reg.Ints.Get("game.paddle_hits"),
		statBounces:    reg.Ints.Get("game.wall_bounces"),
		statPoints:     reg.Ints.Get("game.points"),
		statPaused:     reg.Bools.Get("engine.paused"),
		statAlpha:      reg.Floats.Get("engine.alpha"),
		statFPS:        reg.Floats.Get("engine.fps"),
		statBallSpeed:  reg.Floats.Get("ball.speed"),
	}
}

// Controls exposes the live input state
func (r *Runner) Controls() *input.Controls {
	return &r.controls
}

// Run iterates frames until quit is requested or ctx is cancelled
// Quit returns nil; cancellation returns ctx.Err()
func (r *Runner) Run(ctx context.Context) error {
	ticker := time.NewTicker(r.frameInterval)
	defer ticker.Stop()

	for {
		if !r.RunFrame() {
			return nil
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
		}
	}
}

// RunFrame performs one loop iteration and reports whether to continue
func (r *Runner) RunFrame() bool {
	now := r.clock.Now()

	cmd := r.input.Poll(now, &r.controls)
	if cmd.Has(input.CommandQuit) {
		log.Printf("quit requested at %d:%d", r.state.Left.Score, r.state.Right.Score)
		return false
	}
	if cmd.Has(input.CommandPause) {
		paused := r.loop.TogglePause()
		r.statPaused.Store(paused)
	}
	if cmd.Has(input.CommandRestart) {
		r.state.ResetMatch()
		log.Printf("match restarted")
	}
	if cmd.Has(input.CommandResize) {
		if rz, ok := r.renderer.(Resizer); ok {
			rz.Resize()
		}
	}

	steps, alpha := r.loop.FrameAt(now, r.step)

	r.frames++
	r.statFrames.Store(int64(r.frames))
	r.statSteps.Store(int64(steps))
	r.statAlpha.Set(alpha)
	r.statBallSpeed.Set(r.state.Ball.Speed)
	r.measureFPS(now)

	r.renderer.Render(r.state, FrameInfo{
		Alpha:  alpha,
		Paused: r.loop.Paused(),
		Number: r.frames,
	})
	return true
}

// step runs one simulation tick and consumes the pressed edges
func (r *Runner) step() {
	ev := r.state.Step(r.loop.Tick(), r.controls.Left, r.controls.Right)
	r.controls.ResetPressed()
	r.statTicks.Add(1)

	if ev == game.EventNone {
		return
	}
	if ev.Has(game.EventPaddleHit) {
		r.statPaddleHits.Add(1)
	}
	if ev.Has(game.EventWallBounce) {
		r.statBounces.Add(1)
	}
	if ev.Scored() {
		r.statPoints.Add(1)
		log.Printf("score %d:%d", r.state.Left.Score, r.state.Right.Score)
	}
	for _, s := range r.sinks {
		s.HandleEvent(ev)
	}
}

// measureFPS keeps an exponential moving average of the frame rate
func (r *Runner) measureFPS(now time.Time) {
	if !r.lastFrame.IsZero() {
		if dt := now.Sub(r.lastFrame); dt > 0 {
			inst := float64(time.Second) / float64(dt)
			prev := r.statFPS.Get()
			if prev == 0 {
				r.statFPS.Set(inst)
			} else {
				r.statFPS.Set(prev*0.9 + inst*0.1)
			}
		}
	}
	r.lastFrame = now
}
