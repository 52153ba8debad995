package input

import (
	"unicode"

	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/vi-snake/game"
)

// KeyTable maps key presses to intents
type KeyTable struct {
	// Special keys (arrows, Esc, Ctrl+*)
	SpecialKeys map[tcell.Key]game.Intent

	// Printable keys, stored lower case
	Runes map[rune]game.Intent
}

// DefaultKeyTable returns the default bindings: arrows, WASD and hjkl steer; Esc, q, Ctrl+C, Ctrl+Q quit
func DefaultKeyTable() *KeyTable {
	return &KeyTable{
		SpecialKeys: map[tcell.Key]game.Intent{
			tcell.KeyUp:     game.IntentUp,
			tcell.KeyDown:   game.IntentDown,
			tcell.KeyLeft:   game.IntentLeft,
			tcell.KeyRight:  game.IntentRight,
			tcell.KeyEscape: game.IntentQuit,
			tcell.KeyCtrlC:  game.IntentQuit,
			tcell.KeyCtrlQ:  game.IntentQuit,
		},
		Runes: map[rune]game.Intent{
			'w': game.IntentUp,
			's': game.IntentDown,
			'a': game.IntentLeft,
			'd': game.IntentRight,
			'k': game.IntentUp,
			'j': game.IntentDown,
			'h': game.IntentLeft,
			'l': game.IntentRight,
			'q': game.IntentQuit,
		},
	}
}

// Resolve maps a key event to an intent, IntentNone for nil or unbound keys
func (kt *KeyTable) Resolve(ev *tcell.EventKey) game.Intent {
	if ev == nil {
		return game.IntentNone
	}

	if ev.Key() == tcell.KeyRune {
		if in, ok := kt.Runes[unicode.ToLower(ev.Rune())]; ok {
			return in
		}
		return game.IntentNone
	}

	if in, ok := kt.SpecialKeys[ev.Key()]; ok {
		return in
	}
	return game.IntentNone
}

// Clone returns a deep copy
func (kt *KeyTable) Clone() *KeyTable {
	out := &KeyTable{
		SpecialKeys: make(map[tcell.Key]game.Intent, len(kt.SpecialKeys)),
		Runes:       make(map[rune]game.Intent, len(kt.Runes)),
	}
	for k, v := range kt.SpecialKeys {
		out.SpecialKeys[k] = v
	}
	for k, v := range kt.Runes {
		out.Runes[k] = v
	}
	return out
}

var defaultKeys = DefaultKeyTable()

// FromEvent resolves ev against the default bindings
func FromEvent(ev *tcell.EventKey) game.Intent {
	return defaultKeys.Resolve(ev)
}
