package input

import (
	"errors"
	"fmt"
	"strings"
	"unicode"

	"github.com/gdamore/tcell/v2"
)

var (
	ErrUnknownKey    = errors.New("unknown key name")
	ErrUnknownAction = errors.New("unknown action")
)

// Rune aliases for keys that are awkward to write as a bare character
var runeAliases = map[string]rune{
	"space":     ' ',
	"backslash": '\\',
}

// specialKeys is tcell.KeyNames inverted and lowercased ("up", "esc", "ctrl-c")
var specialKeys = func() map[string]tcell.Key {
	m := make(map[string]tcell.Key, len(tcell.KeyNames))
	for k, name := range tcell.KeyNames {
		m[strings.ToLower(name)] = k
	}
	return m
}()

// ParseBindings builds a sparse override KeyTable from action name → key names
// Only actions present in bindings are populated
func ParseBindings(bindings map[string][]string) (*KeyTable, error) {
	kt := &KeyTable{
		Runes: make(map[rune]Action),
		Keys:  make(map[tcell.Key]Action),
	}

	for actionName, keys := range bindings {
		action, ok := ActionByName(actionName)
		if !ok {
			return nil, fmt.Errorf("keys.%s: %w", actionName, ErrUnknownAction)
		}
		for _, keyName := range keys {
			if err := kt.bindName(keyName, action); err != nil {
				return nil, fmt.Errorf("keys.%s: %w", actionName, err)
			}
		}
	}

	return kt, nil
}

// bindName resolves a key name to a rune or special key and binds it
func (kt *KeyTable) bindName(name string, a Action) error {
	if r, ok := resolveRune(name); ok {
		kt.Runes[r] = a
		return nil
	}
	if k, ok := specialKeys[strings.ToLower(name)]; ok {
		kt.Keys[k] = a
		return nil
	}
	return fmt.Errorf("%q: %w", name, ErrUnknownKey)
}

// resolveRune accepts single characters and named aliases
func resolveRune(s string) (rune, bool) {
	if r, ok := runeAliases[strings.ToLower(s)]; ok {
		return r, true
	}
	runes := []rune(s)
	if len(runes) == 1 {
		return unicode.ToLower(runes[0]), true
	}
	return 0, false
}

// MergeKeyTable returns base with every action present in override rebound to override's keys
// Actions absent from override keep their base bindings
func MergeKeyTable(base, override *KeyTable) *KeyTable {
	result := base.Clone()

	seen := make(map[Action]bool)
	for _, a := range override.Runes {
		seen[a] = true
	}
	for _, a := range override.Keys {
		seen[a] = true
	}
	for a := range seen {
		result.unbind(a)
	}

	for r, a := range override.Runes {
		if a == ActionNone {
			delete(result.Runes, r)
			continue
		}
		result.Runes[r] = a
	}
	for k, a := range override.Keys {
		if a == ActionNone {
			delete(result.Keys, k)
			continue
		}
		result.Keys[k] = a
	}

	return result
}
