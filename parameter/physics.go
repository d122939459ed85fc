package parameter

// Playfield
const (
	// PlayfieldWidth is the logical width in playfield units
	PlayfieldWidth = 800.0

	// PlayfieldHeight is the logical height in playfield units
	PlayfieldHeight = 600.0
)

// Ball
const (
	// BallSize is the ball's diameter; walls and paddle edges are inset by half of it
	BallSize = 10.0

	// BallRadius is BallSize / 2
	BallRadius = BallSize / 2

	// BallLaunchSpeed is the speed after every relaunch, in units per tick
	BallLaunchSpeed = 10.0

	// BallLaunchSpreadY bounds the vertical launch component to [-Spread, +Spread] before normalisation
	BallLaunchSpreadY = 0.5

	// PaddleHitSpeedup is added to ball speed on every paddle hit
	PaddleHitSpeedup = 1.0

	// PaddleSpinFactor scales the paddle's last displacement into ball vertical velocity
	PaddleSpinFactor = 0.5
)

// Paddle
const (
	PaddleSize   = 60.0
	PaddleSpeed  = 25.0
	PaddleMargin = 70.0
	PaddleWidth  = 10.0

	// PaddleStartY is the top edge of both paddles at match start
	PaddleStartY = 200.0
)
