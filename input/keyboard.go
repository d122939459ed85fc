package input

import (
	"time"

	"github.com/gdamore/tcell/v2"
)

// Keyboard translates terminal events into Controls and Commands
// Terminals report key presses and autorepeats but no releases, so a key stays
// held until holdTimeout passes without another event for it
type Keyboard struct {
	table       *KeyTable
	holdTimeout time.Duration
	events      <-chan tcell.Event

	lastSeen [actionCount]time.Time
}

// NewKeyboard creates a keyboard reading from events; events may be nil when
// the caller feeds HandleEvent directly
func NewKeyboard(table *KeyTable, holdTimeout time.Duration, events <-chan tcell.Event) *Keyboard {
	return &Keyboard{
		table:       table,
		holdTimeout: holdTimeout,
		events:      events,
	}
}

// Poll drains pending events without blocking, then expires stale holds
// A closed event channel is reported as CommandQuit
func (k *Keyboard) Poll(now time.Time, c *Controls) Command {
	var cmd Command

drain:
	for {
		select {
		case ev, ok := <-k.events:
			if !ok {
				cmd |= CommandQuit
				break drain
			}
			cmd |= k.HandleEvent(ev, now, c)
		default:
			break drain
		}
	}

	k.Expire(now, c)
	return cmd
}

// HandleEvent applies one terminal event
func (k *Keyboard) HandleEvent(ev tcell.Event, now time.Time, c *Controls) Command {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		action := k.table.Lookup(ev)
		p, up, ok := action.movement()
		if !ok {
			return action.command()
		}

		sig := c.Signal(p)
		k.lastSeen[action] = now
		if up {
			// Autorepeat refreshes the hold without re-latching the edge
			if !sig.UpHeld {
				sig.UpPressed = true
			}
			sig.UpHeld = true
		} else {
			if !sig.DownHeld {
				sig.DownPressed = true
			}
			sig.DownHeld = true
		}

	case *tcell.EventResize:
		return CommandResize
	}

	return CommandNone
}

// Expire releases holds whose last event is older than the hold timeout
func (k *Keyboard) Expire(now time.Time, c *Controls) {
	for _, a := range [...]Action{ActionLeftUp, ActionLeftDown, ActionRightUp, ActionRightDown} {
		if now.Sub(k.lastSeen[a]) < k.holdTimeout {
			continue
		}
		p, up, _ := a.movement()
		sig := c.Signal(p)
		if up {
			sig.UpHeld = false
		} else {
			sig.DownHeld = false
		}
	}
}
