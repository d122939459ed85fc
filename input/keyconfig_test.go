package input

import (
	"errors"
	"testing"

	"github.com/gdamore/tcell/v2"
)

func TestDefaultKeyTableLookup(t *testing.T) {
	kt := DefaultKeyTable()

	tests := []struct {
		name string
		ev   *tcell.EventKey
		want Action
	}{
		{"w", tcell.NewEventKey(tcell.KeyRune, 'w', tcell.ModNone), ActionLeftUp},
		{"W caps", tcell.NewEventKey(tcell.KeyRune, 'W', tcell.ModShift), ActionLeftUp},
		{"s", tcell.NewEventKey(tcell.KeyRune, 's', tcell.ModNone), ActionLeftDown},
		{"up arrow", tcell.NewEventKey(tcell.KeyUp, 0, tcell.ModNone), ActionRightUp},
		{"down arrow", tcell.NewEventKey(tcell.KeyDown, 0, tcell.ModNone), ActionRightDown},
		{"esc", tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone), ActionQuit},
		{"space", tcell.NewEventKey(tcell.KeyRune, ' ', tcell.ModNone), ActionPause},
		{"unbound", tcell.NewEventKey(tcell.KeyRune, 'x', tcell.ModNone), ActionNone},
		{"unbound special", tcell.NewEventKey(tcell.KeyF5, 0, tcell.ModNone), ActionNone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := kt.Lookup(tt.ev); got != tt.want {
				t.Errorf("Lookup = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestParseBindings(t *testing.T) {
	kt, err := ParseBindings(map[string][]string{
		"left_up": {"e", "Up"},
		"quit":    {"space"},
		"Restart": {"F2"},
		"none":    {"x"},
	})
	if err != nil {
		t.Fatalf("ParseBindings: %v", err)
	}

	if kt.Runes['e'] != ActionLeftUp {
		t.Errorf("e = %v, want left_up", kt.Runes['e'])
	}
	if kt.Keys[tcell.KeyUp] != ActionLeftUp {
		t.Errorf("Up = %v, want left_up", kt.Keys[tcell.KeyUp])
	}
	if kt.Runes[' '] != ActionQuit {
		t.Errorf("space = %v, want quit", kt.Runes[' '])
	}
	if kt.Keys[tcell.KeyF2] != ActionRestart {
		t.Errorf("F2 = %v, want restart", kt.Keys[tcell.KeyF2])
	}
}

func TestParseBindingsErrors(t *testing.T) {
	if _, err := ParseBindings(map[string][]string{"jump": {"j"}}); !errors.Is(err, ErrUnknownAction) {
		t.Errorf("unknown action: got %v, want ErrUnknownAction", err)
	}
	if _, err := ParseBindings(map[string][]string{"quit": {"NotAKey"}}); !errors.Is(err, ErrUnknownKey) {
		t.Errorf("unknown key: got %v, want ErrUnknownKey", err)
	}
}

func TestMergeKeyTableRebindsWholeAction(t *testing.T) {
	base := DefaultKeyTable()
	override, err := ParseBindings(map[string][]string{
		"left_up": {"e"},
	})
	if err != nil {
		t.Fatal(err)
	}

	merged := MergeKeyTable(base, override)

	if merged.Runes['e'] != ActionLeftUp {
		t.Error("override key not bound")
	}
	if _, ok := merged.Runes['w']; ok {
		t.Error("old left_up key should be unbound")
	}
	if merged.Runes['s'] != ActionLeftDown {
		t.Error("untouched action lost its binding")
	}
	if merged.Bound(ActionLeftUp) != 1 {
		t.Errorf("left_up bound %d times, want 1", merged.Bound(ActionLeftUp))
	}

	// Base is not modified
	if base.Runes['w'] != ActionLeftUp {
		t.Error("MergeKeyTable mutated base")
	}
}

func TestMergeKeyTableNoneUnbinds(t *testing.T) {
	override, err := ParseBindings(map[string][]string{"none": {"q"}})
	if err != nil {
		t.Fatal(err)
	}
	merged := MergeKeyTable(DefaultKeyTable(), override)
	if _, ok := merged.Runes['q']; ok {
		t.Error("q should be unbound")
	}
	if merged.Keys[tcell.KeyEscape] != ActionQuit {
		t.Error("Esc should still quit")
	}
}

func TestActionByName(t *testing.T) {
	if a, ok := ActionByName(" Right_Down "); !ok || a != ActionRightDown {
		t.Errorf("got %v %v", a, ok)
	}
	if _, ok := ActionByName("serve"); ok {
		t.Error("serve should not resolve")
	}
	if ActionPause.String() != "pause" {
		t.Errorf("String = %q", ActionPause.String())
	}
}
