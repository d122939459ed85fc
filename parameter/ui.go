package parameter

import "time"

// Score HUD
const (
	// ScoreMargin is the horizontal inset of both score labels, in playfield units
	ScoreMargin = 16.0
)

// Glyphs
const (
	PaddleChar = '█'
	BallChar   = '●'
	NetChar    = '┊'
)

// Input
const (
	// HoldTimeout is how long a key counts as held after its last press or autorepeat
	// Terminals report no key release, so held state is inferred from repeats
	HoldTimeout = 120 * time.Millisecond
)
