package input

import "strings"

// Action is what a bound key does
type Action uint8

const (
	ActionNone Action = iota
	ActionLeftUp
	ActionLeftDown
	ActionRightUp
	ActionRightDown
	ActionPause
	ActionRestart
	ActionQuit
	actionCount
)

// Command is a bitmask of non-movement requests raised during one poll
type Command uint8

const (
	CommandNone    Command = 0
	CommandQuit    Command = 1 << 0
	CommandPause   Command = 1 << 1
	CommandRestart Command = 1 << 2
	CommandResize  Command = 1 << 3
)

// Has reports whether all bits of c2 are set
func (c Command) Has(c2 Command) bool {
	return c&c2 == c2
}

// actionRegistry maps canonical action names, as used in the [keys] config section
var actionRegistry = map[string]Action{
	"none":       ActionNone,
	"left_up":    ActionLeftUp,
	"left_down":  ActionLeftDown,
	"right_up":   ActionRightUp,
	"right_down": ActionRightDown,
	"pause":      ActionPause,
	"restart":    ActionRestart,
	"quit":       ActionQuit,
}

// ActionByName resolves a config action name, case-insensitive
func ActionByName(name string) (Action, bool) {
	a, ok := actionRegistry[strings.ToLower(strings.TrimSpace(name))]
	return a, ok
}

func (a Action) String() string {
	for name, act := range actionRegistry {
		if act == a {
			return name
		}
	}
	return "unknown"
}

// movement maps movement actions to player and direction
func (a Action) movement() (p Player, up bool, ok bool) {
	switch a {
	case ActionLeftUp:
		return PlayerLeft, true, true
	case ActionLeftDown:
		return PlayerLeft, false, true
	case ActionRightUp:
		return PlayerRight, true, true
	case ActionRightDown:
		return PlayerRight, false, true
	}
	return 0, false, false
}

// command maps system actions to their command bit
func (a Action) command() Command {
	switch a {
	case ActionPause:
		return CommandPause
	case ActionRestart:
		return CommandRestart
	case ActionQuit:
		return CommandQuit
	}
	return CommandNone
}
