package game

// Event is a bitmask of what happened during one Step
type Event uint8

const (
	EventWallBounce Event = 1 << iota
	EventPaddleHit
	EventLeftScored
	EventRightScored

	EventNone Event = 0
)

// Has reports whether all bits of e2 are set
func (e Event) Has(e2 Event) bool {
	return e2 != 0 && e&e2 == e2
}

// Scored reports whether either player scored
func (e Event) Scored() bool {
	return e&(EventLeftScored|EventRightScored) != 0
}
