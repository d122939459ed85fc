// Package render draws the playfield onto a tcell screen
package render

import (
	"strconv"
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"github.com/lixenwraith/vi-pong/engine"
	"github.com/lixenwraith/vi-pong/game"
	"github.com/lixenwraith/vi-pong/input"
	"github.com/lixenwraith/vi-pong/parameter"
	"github.com/lixenwraith/vi-pong/status"
)

const pauseBanner = " PAUSED "

// Renderer draws game state each frame; implements engine.Renderer and engine.Resizer
type Renderer struct {
	screen    tcell.Screen
	layout    Layout
	status    *status.Registry
	showStats bool

	base tcell.Style
}

// NewRenderer creates a renderer; reg may be nil when showStats is false
func NewRenderer(screen tcell.Screen, reg *status.Registry, showStats bool) *Renderer {
	r := &Renderer{
		screen:    screen,
		status:    reg,
		showStats: showStats && reg != nil,
		base:      tcell.StyleDefault.Background(RgbBackground),
	}
	r.updateLayout()
	return r
}

// Layout returns the current cell mapping
func (r *Renderer) Layout() Layout {
	return r.layout
}

// Resize picks up the new terminal size and forces a full repaint
func (r *Renderer) Resize() {
	r.updateLayout()
	r.screen.Sync()
}

func (r *Renderer) updateLayout() {
	cols, rows := r.screen.Size()
	r.layout = NewLayout(cols, rows, parameter.PlayfieldWidth, parameter.PlayfieldHeight)
}

// Render draws one frame; s is only read
func (r *Renderer) Render(s *game.State, frame engine.FrameInfo) {
	if cols, rows := r.screen.Size(); cols != r.layout.Cols || rows != r.layout.Rows {
		r.updateLayout()
	}

	r.screen.SetStyle(r.base)
	r.screen.Clear()

	if !r.layout.Empty() {
		r.drawNet()
		r.drawPaddle(s, input.PlayerLeft, frame.Alpha, RgbPaddleLeft)
		r.drawPaddle(s, input.PlayerRight, frame.Alpha, RgbPaddleRight)
		r.drawBall(s, frame.Alpha)
		r.drawScores(s)
		if frame.Paused {
			r.drawPause()
		}
		if r.showStats {
			r.drawStats()
		}
	}

	r.screen.Show()
}

// drawNet dashes the centre line on every other row
func (r *Renderer) drawNet() {
	x := r.layout.Col(parameter.PlayfieldWidth * 0.5)
	style := r.base.Foreground(RgbNet)
	for y := 0; y < r.layout.Rows; y += 2 {
		r.screen.SetContent(x, y, parameter.NetChar, nil, style)
	}
}

func (r *Renderer) drawPaddle(s *game.State, p input.Player, alpha float64, color tcell.Color) {
	pd := s.Paddle(p)
	x0, x1 := r.layout.ColSpan(s.PaddleX(p), pd.Width)
	y0, y1 := r.layout.RowSpan(PaddleY(pd, alpha), pd.Size)

	style := r.base.Foreground(color)
	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			r.screen.SetContent(x, y, parameter.PaddleChar, nil, style)
		}
	}
}

func (r *Renderer) drawBall(s *game.State, alpha float64) {
	x, y := r.layout.Cell(BallPosition(&s.Ball, alpha))
	r.screen.SetContent(x, y, parameter.BallChar, nil, r.base.Foreground(BallColor(s.Ball.Speed)).Bold(true))
}

// drawScores puts the left score at the margin and right-aligns the right score to the opposite margin
func (r *Renderer) drawScores(s *game.State) {
	style := r.base.Foreground(RgbScore).Bold(true)

	left := strconv.Itoa(s.Left.Score)
	r.drawText(r.layout.Col(parameter.ScoreMargin), 0, left, style)

	right := strconv.Itoa(s.Right.Score)
	end := r.layout.Col(parameter.PlayfieldWidth - parameter.ScoreMargin)
	r.drawText(end-runewidth.StringWidth(right), 0, right, style)
}

func (r *Renderer) drawPause() {
	x := (r.layout.Cols - runewidth.StringWidth(pauseBanner)) / 2
	y := r.layout.Rows / 2
	r.drawText(x, y, pauseBanner, r.base.Foreground(RgbPause).Reverse(true))
}

// drawStats fills the bottom row with the registry, truncated to fit
func (r *Renderer) drawStats() {
	line := strings.Join(r.status.Format(), " ")
	line = runewidth.Truncate(line, r.layout.Cols, "~")
	r.drawText(0, r.layout.Rows-1, line, r.base.Foreground(RgbStatusBar))
}

// drawText writes text from (x, y), skipping cells off screen
func (r *Renderer) drawText(x, y int, text string, style tcell.Style) {
	if y < 0 || y >= r.layout.Rows {
		return
	}
	for _, ch := range text {
		w := runewidth.RuneWidth(ch)
		if x >= 0 && x+w <= r.layout.Cols {
			r.screen.SetContent(x, y, ch, nil, style)
		}
		x += w
	}
}
