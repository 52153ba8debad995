package input

import "github.com/lixenwraith/vi-snake/game"

// actionRegistry maps canonical action names used in keymap config to intents
// "none" unbinds a key
var actionRegistry = map[string]game.Intent{
	"none":  game.IntentNone,
	"up":    game.IntentUp,
	"down":  game.IntentDown,
	"left":  game.IntentLeft,
	"right": game.IntentRight,
	"quit":  game.IntentQuit,
}

// ActionIntent resolves an action name to its intent
func ActionIntent(name string) (game.Intent, bool) {
	in, ok := actionRegistry[name]
	return in, ok
}
