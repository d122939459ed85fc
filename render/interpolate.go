package render

import (
	"github.com/lixenwraith/vi-pong/game"
	"github.com/lixenwraith/vi-pong/vmath"
)

// BallPosition blends from the previous tick's position towards the current one
// alpha 0 draws where the ball was one tick ago, alpha 1 where it is now
func BallPosition(b *game.Ball, alpha float64) vmath.Vec2 {
	return b.Pos.Sub(b.Vel).Add(b.Vel.Scale(alpha))
}

// PaddleY blends the paddle top by its last displacement
func PaddleY(p *game.Paddle, alpha float64) float64 {
	return p.Y - p.Delta + alpha*p.Delta
}
