package input

// Signal is one player's movement input for the current simulation step
// Held tracks key state; Pressed latches a key-down edge until the loop consumes a tick
type Signal struct {
	UpHeld      bool
	DownHeld    bool
	UpPressed   bool
	DownPressed bool
}

// Up reports held-or-pressed-this-tick
func (s Signal) Up() bool {
	return s.UpHeld || s.UpPressed
}

// Down reports held-or-pressed-this-tick
func (s Signal) Down() bool {
	return s.DownHeld || s.DownPressed
}

// ResetPressed clears the edge flags, keeping held state
func (s *Signal) ResetPressed() {
	s.UpPressed = false
	s.DownPressed = false
}

// Controls holds both players' signals
type Controls struct {
	Left  Signal
	Right Signal
}

// ResetPressed clears edge flags for both players; called once per consumed tick
func (c *Controls) ResetPressed() {
	c.Left.ResetPressed()
	c.Right.ResetPressed()
}

// Signal returns the signal for player p
func (c *Controls) Signal(p Player) *Signal {
	if p == PlayerRight {
		return &c.Right
	}
	return &c.Left
}

// Player identifies a side
type Player uint8

const (
	PlayerLeft Player = iota
	PlayerRight
)

func (p Player) String() string {
	if p == PlayerRight {
		return "right"
	}
	return "left"
}
