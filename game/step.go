package game

import (
	"time"

	"github.com/lixenwraith/vi-pong/input"
	"github.com/lixenwraith/vi-pong/parameter"
	"github.com/lixenwraith/vi-pong/vmath"
)

// Step advances the state by exactly one tick
// Ball collisions resolve before paddle movement, so spin uses each paddle's
// displacement from the previous tick. Test order decides which collision wins:
// top, bottom, left wall, right wall, left paddle, right paddle
func (s *State) Step(dt time.Duration, left, right input.Signal) Event {
	s.Elapsed += dt
	s.Ticks++

	var ev Event
	b := &s.Ball
	travel := vmath.Seg(b.Pos, b.Pos.Add(b.Vel))

	if vmath.Intersects(travel, s.Walls.Top) {
		b.Vel.Y = -b.Vel.Y
		ev |= EventWallBounce
	}
	if vmath.Intersects(travel, s.Walls.Bottom) {
		b.Vel.Y = -b.Vel.Y
		ev |= EventWallBounce
	}
	if vmath.Intersects(travel, s.Walls.Left) {
		s.Right.Score++
		s.Relaunch()
		ev |= EventRightScored
	}
	if vmath.Intersects(travel, s.Walls.Right) {
		s.Left.Score++
		s.Relaunch()
		ev |= EventLeftScored
	}

	// Edges come from pre-move paddle positions
	if hit, ok := vmath.Intersect(travel, s.PaddleEdge(input.PlayerLeft)); ok {
		s.Left.deflect(b, hit)
		ev |= EventPaddleHit
	}
	if hit, ok := vmath.Intersect(travel, s.PaddleEdge(input.PlayerRight)); ok {
		s.Right.deflect(b, hit)
		ev |= EventPaddleHit
	}

	b.Pos.AddAssign(b.Vel)

	s.Left.move(left, s.Height)
	s.Right.move(right, s.Height)

	return ev
}

// deflect reverses horizontal travel, speeds the ball up and, outside the
// sweet spot, adds the paddle's last displacement as spin
func (p *Paddle) deflect(b *Ball, hit vmath.Vec2) {
	r := b.Radius()

	b.Vel.X = -b.Vel.X
	b.Speed += parameter.PaddleHitSpeedup

	if hit.Y < p.Y+r || hit.Y > p.Y+p.Size-r {
		b.Vel.Y += p.Delta * parameter.PaddleSpinFactor
	}

	b.Vel = b.Vel.Normalized().Scale(b.Speed)
}

// move sets this tick's displacement from input, trims any overshoot past
// [0, height] and applies it
func (p *Paddle) move(sig input.Signal, height float64) {
	p.Delta = 0
	if sig.Up() {
		p.Delta -= p.Speed
	}
	if sig.Down() {
		p.Delta += p.Speed
	}

	next := p.Y + p.Delta
	if next < 0 {
		p.Delta -= next
	}
	if next+p.Size > height {
		p.Delta -= next + p.Size - height
	}

	p.Y += p.Delta
}
