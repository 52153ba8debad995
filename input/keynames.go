package input

import (
	"strings"

	"github.com/gdamore/tcell/v2"
)

// Rune aliases for keys that read poorly as bare characters in config
var runeAliases = map[string]rune{
	"space": ' ',
}

// keyByName indexes tcell's own key names in lower case ("up", "esc", "ctrl-c", ...)
var keyByName map[string]tcell.Key

func init() {
	keyByName = make(map[string]tcell.Key, len(tcell.KeyNames)+1)
	for k, name := range tcell.KeyNames {
		keyByName[strings.ToLower(name)] = k
	}
	keyByName["escape"] = tcell.KeyEscape
}

// KeyByName resolves a special key name, case-insensitive
func KeyByName(name string) (tcell.Key, bool) {
	k, ok := keyByName[strings.ToLower(name)]
	return k, ok
}
