package terminal

import (
	"unicode"

	"github.com/gdamore/tcell/v2"

	"mothershipmayhem/game"
)

// ActionForKey maps a key event to a game action. Terminals deliver held
// keys as repeated events, so every event is one step.
func ActionForKey(ev *tcell.EventKey) game.Action {
	switch ev.Key() {
	case tcell.KeyLeft:
		return game.ActionMoveLeft
	case tcell.KeyRight:
		return game.ActionMoveRight
	case tcell.KeyEnter:
		return game.ActionConfirm
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		return game.ActionBack
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return game.ActionExit
	case tcell.KeyRune:
		switch unicode.ToLower(ev.Rune()) {
		case ' ':
			return game.ActionFire
		case 'i':
			return game.ActionInfo
		}
	}
	return game.ActionNone
}

// isDebugToggle reports the key that shows or hides the debug line
func isDebugToggle(ev *tcell.EventKey) bool {
	return ev.Key() == tcell.KeyF1
}
