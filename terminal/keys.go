package terminal

import (
	"unicode"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/pong/engine"
)

// Action is what a terminal key event means to the game
type Action uint8

const (
	ActionNone Action = iota
	ActionKey         // a game key, see the returned engine.Key
	ActionQuit
)

// KeyMap binds physical keys to logical game keys
type KeyMap struct {
	Runes   map[rune]engine.Key
	Special map[tcell.Key]engine.Key
}

// DefaultKeyMap: player 1 on W/S, player 2 on the arrow keys
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Runes: map[rune]engine.Key{
			'w': engine.KeyPlayer1Up,
			's': engine.KeyPlayer1Down,
		},
		Special: map[tcell.Key]engine.Key{
			tcell.KeyUp:   engine.KeyPlayer2Up,
			tcell.KeyDown: engine.KeyPlayer2Down,
		},
	}
}

// Resolve classifies a key event
// Escape and Ctrl-C quit, runes match case-insensitively
func (m KeyMap) Resolve(ev *tcell.EventKey) (Action, engine.Key) {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return ActionQuit, 0
	case tcell.KeyRune:
		if k, ok := m.Runes[unicode.ToLower(ev.Rune())]; ok {
			return ActionKey, k
		}
		return ActionNone, 0
	}

	if k, ok := m.Special[ev.Key()]; ok {
		return ActionKey, k
	}
	return ActionNone, 0
}
