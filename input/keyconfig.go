package input

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/vi-snake/game"
)

// LoadKeyConfig parses key name -> action name bindings into a sparse override KeyTable
// Key names are a single character, a rune alias ("space") or a tcell key name ("up", "esc", "ctrl-c")
// Returns error on unknown action or key names
func LoadKeyConfig(bindings map[string]string) (*KeyTable, error) {
	kt := &KeyTable{
		SpecialKeys: make(map[tcell.Key]game.Intent),
		Runes:       make(map[rune]game.Intent),
	}

	for keyStr, actionName := range bindings {
		in, ok := ActionIntent(strings.ToLower(strings.TrimSpace(actionName)))
		if !ok {
			return nil, fmt.Errorf("key %q: unknown action: %q", keyStr, actionName)
		}

		if r, ok := resolveRune(keyStr); ok {
			kt.Runes[r] = in
			continue
		}

		k, ok := KeyByName(keyStr)
		if !ok {
			return nil, fmt.Errorf("unknown key name: %q", keyStr)
		}
		kt.SpecialKeys[k] = in
	}

	return kt, nil
}

// resolveRune converts a single character or alias to a lower-case rune
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

// MergeKeyTable returns a new KeyTable with base bindings overridden by override
// Bindings to IntentNone delete the key from the result
func MergeKeyTable(base, override *KeyTable) *KeyTable {
	result := base.Clone()
	if override == nil {
		return result
	}

	for k, v := range override.SpecialKeys {
		if v == game.IntentNone {
			delete(result.SpecialKeys, k)
		} else {
			result.SpecialKeys[k] = v
		}
	}
	for r, v := range override.Runes {
		if v == game.IntentNone {
			delete(result.Runes, r)
		} else {
			result.Runes[r] = v
		}
	}

	return result
}
