// Package game holds the authoritative Pong state and its fixed-tick update
package game

import (
	"time"

	"github.com/lixenwraith/vi-pong/input"
	"github.com/lixenwraith/vi-pong/parameter"
	"github.com/lixenwraith/vi-pong/vmath"
)

// Rand is the randomness used for relaunch direction
// *vmath.FastRand and *math/rand.Rand both satisfy it
type Rand interface {
	Intn(n int) int
	Float64() float64
}

// Paddle is one player's bat; Y is the top edge in playfield units
type Paddle struct {
	Y     float64
	Delta float64 // displacement applied in the last completed step
	Size  float64
	Score int

	Margin float64 // gap between screen edge and paddle
	Width  float64
	Speed  float64
}

// Ball tracks position and per-tick velocity; |Vel| == Speed after every speed change
type Ball struct {
	Pos   vmath.Vec2
	Vel   vmath.Vec2
	Size  float64
	Speed float64
}

// Radius is half the ball size; all collision geometry is inset by it
func (b *Ball) Radius() float64 {
	return b.Size * 0.5
}

// Walls are the four playfield boundaries, inset by the ball radius
// Fixed at construction
type Walls struct {
	Left   vmath.Segment
	Right  vmath.Segment
	Top    vmath.Segment
	Bottom vmath.Segment
}

// State is the whole simulation; owned by the loop and mutated only by Step
type State struct {
	Left  Paddle
	Right Paddle
	Ball  Ball
	Walls Walls

	Width  float64
	Height float64

	// Elapsed is total simulated time, advanced by Step's dt
	Elapsed time.Duration
	Ticks   uint64

	rng Rand
}

// NewState builds the standard playfield and launches the ball
// A nil rng falls back to a fixed-seed FastRand
func NewState(rng Rand) *State {
	if rng == nil {
		rng = vmath.NewFastRand(1)
	}

	s := &State{
		Left:   newPaddle(),
		Right:  newPaddle(),
		Width:  parameter.PlayfieldWidth,
		Height: parameter.PlayfieldHeight,
		Ball: Ball{
			Size:  parameter.BallSize,
			Speed: parameter.BallLaunchSpeed,
		},
		rng: rng,
	}
	s.Walls = buildWalls(s.Width, s.Height, s.Ball.Radius())
	s.Ball.Pos = s.Center()
	s.Relaunch()

	return s
}

func newPaddle() Paddle {
	return Paddle{
		Y:      parameter.PaddleStartY,
		Size:   parameter.PaddleSize,
		Margin: parameter.PaddleMargin,
		Width:  parameter.PaddleWidth,
		Speed:  parameter.PaddleSpeed,
	}
}

func buildWalls(w, h, r float64) Walls {
	return Walls{
		Left:   vmath.Seg(vmath.V2(r, r), vmath.V2(r, h-r)),
		Right:  vmath.Seg(vmath.V2(w-r, r), vmath.V2(w-r, h-r)),
		Top:    vmath.Seg(vmath.V2(r, r), vmath.V2(w-r, r)),
		Bottom: vmath.Seg(vmath.V2(r, h-r), vmath.V2(w-r, h-r)),
	}
}

// Center returns the playfield midpoint
func (s *State) Center() vmath.Vec2 {
	return vmath.V2(s.Width*0.5, s.Height*0.5)
}

// Paddle returns the paddle for player p
func (s *State) Paddle(p input.Player) *Paddle {
	if p == input.PlayerRight {
		return &s.Right
	}
	return &s.Left
}

// PaddleX returns the x of the paddle's rectangle left side
func (s *State) PaddleX(p input.Player) float64 {
	pd := s.Paddle(p)
	if p == input.PlayerRight {
		return s.Width - pd.Margin - pd.Width
	}
	return pd.Margin
}

// PaddleEdge returns the ball-facing edge of a paddle, extended by the ball
// radius at both ends so the ball's surface rather than its centre is tested
func (s *State) PaddleEdge(p input.Player) vmath.Segment {
	pd := s.Paddle(p)
	r := s.Ball.Radius()

	x := pd.Margin + pd.Width
	if p == input.PlayerRight {
		x = s.Width - pd.Margin - pd.Width
	}
	return vmath.Seg(vmath.V2(x, pd.Y-r), vmath.V2(x, pd.Y+pd.Size+r))
}

// Relaunch centres the ball and serves it in a random direction at launch speed
func (s *State) Relaunch() {
	b := &s.Ball
	b.Pos = s.Center()

	dir := vmath.V2(1, 0)
	if s.rng.Intn(2) != 0 {
		dir.X = -1
	}
	dir.Y = s.rng.Float64()*2*parameter.BallLaunchSpreadY - parameter.BallLaunchSpreadY

	b.Speed = parameter.BallLaunchSpeed
	b.Vel = dir.Normalized().Scale(b.Speed)
}

// ResetMatch zeroes scores, returns paddles to their start height and serves
func (s *State) ResetMatch() {
	for _, p := range []*Paddle{&s.Left, &s.Right} {
		p.Score = 0
		p.Y = parameter.PaddleStartY
		p.Delta = 0
	}
	s.Relaunch()
}

// Snapshot returns a value copy for read-only consumers
func (s *State) Snapshot() State {
	return *s
}
