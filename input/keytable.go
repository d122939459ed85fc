package input

import (
	"maps"
	"unicode"

	"github.com/gdamore/tcell/v2"
)

// KeyTable maps keys to actions
type KeyTable struct {
	// Printable keys, matched case-insensitively for letters
	Runes map[rune]Action

	// Special keys (arrows, Esc, Ctrl+*)
	Keys map[tcell.Key]Action
}

// DefaultKeyTable returns the built-in bindings
// Left player: w/s. Right player: arrow keys
func DefaultKeyTable() *KeyTable {
	return &KeyTable{
		Runes: map[rune]Action{
			'w': ActionLeftUp,
			's': ActionLeftDown,
			'k': ActionRightUp,
			'j': ActionRightDown,
			'p': ActionPause,
			' ': ActionPause,
			'r': ActionRestart,
			'q': ActionQuit,
		},
		Keys: map[tcell.Key]Action{
			tcell.KeyUp:     ActionRightUp,
			tcell.KeyDown:   ActionRightDown,
			tcell.KeyEscape: ActionQuit,
			tcell.KeyCtrlC:  ActionQuit,
		},
	}
}

// Lookup returns the action bound to a key event, ActionNone if unbound
func (kt *KeyTable) Lookup(ev *tcell.EventKey) Action {
	if ev.Key() == tcell.KeyRune {
		r := ev.Rune()
		if a, ok := kt.Runes[r]; ok {
			return a
		}
		if a, ok := kt.Runes[unicode.ToLower(r)]; ok {
			return a
		}
		return ActionNone
	}
	return kt.Keys[ev.Key()]
}

// Clone returns a deep copy
func (kt *KeyTable) Clone() *KeyTable {
	return &KeyTable{
		Runes: maps.Clone(kt.Runes),
		Keys:  maps.Clone(kt.Keys),
	}
}

// unbind removes every key bound to a
func (kt *KeyTable) unbind(a Action) {
	maps.DeleteFunc(kt.Runes, func(_ rune, v Action) bool { return v == a })
	maps.DeleteFunc(kt.Keys, func(_ tcell.Key, v Action) bool { return v == a })
}

// Bound returns the number of keys bound to a
func (kt *KeyTable) Bound(a Action) int {
	n := 0
	for _, v := range kt.Runes {
		if v == a {
			n++
		}
	}
	for _, v := range kt.Keys {
		if v == a {
			n++
		}
	}
	return n
}
