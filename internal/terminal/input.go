package terminal

import (
	"github.com/gdamore/tcell/v2"

	"github.com/rocketscienceinc/snake-backend/internal/entity"
)

type Action int

const (
	ActionNone Action = iota
	ActionMove
	ActionPause
	ActionReset
	ActionQuit
)

var runeDirections = map[rune]entity.Direction{
	'w': entity.DirectionUp,
	'k': entity.DirectionUp,
	's': entity.DirectionDown,
	'j': entity.DirectionDown,
	'a': entity.DirectionLeft,
	'h': entity.DirectionLeft,
	'd': entity.DirectionRight,
	'l': entity.DirectionRight,
}

// KeyAction - maps a key press to what the game should do. The direction is only set for ActionMove.
func KeyAction(ev *tcell.EventKey) (Action, entity.Direction) {
	switch ev.Key() {
	case tcell.KeyUp:
		return ActionMove, entity.DirectionUp
	case tcell.KeyDown:
		return ActionMove, entity.DirectionDown
	case tcell.KeyLeft:
		return ActionMove, entity.DirectionLeft
	case tcell.KeyRight:
		return ActionMove, entity.DirectionRight
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return ActionQuit, ""
	case tcell.KeyRune:
	default:
		return ActionNone, ""
	}

	r := ev.Rune()
	if r >= 'A' && r <= 'Z' {
		r += 'a' - 'A'
	}

	if direction, ok := runeDirections[r]; ok {
		return ActionMove, direction
	}

	switch r {
	case 'p', ' ':
		return ActionPause, ""
	case 'r':
		return ActionReset, ""
	case 'q':
		return ActionQuit, ""
	default:
		return ActionNone, ""
	}
}
