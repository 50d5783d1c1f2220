package game

import "github.com/gdamore/tcell/v2"

// Action represents a player-requested inventory action.
type Action uint8

const (
	ActionNone Action = iota
	ActionCursorUp
	ActionCursorDown
	ActionMoveItemUp
	ActionMoveItemDown
	ActionPickup
	ActionDrop
	ActionQuit
)

// keyToAction maps a tcell key event to an inventory action.
func keyToAction(ev *tcell.EventKey) Action {
	// Named keys.
	switch ev.Key() {
	case tcell.KeyUp:
		if ev.Modifiers()&tcell.ModShift != 0 {
			return ActionMoveItemUp
		}
		return ActionCursorUp
	case tcell.KeyDown:
		if ev.Modifiers()&tcell.ModShift != 0 {
			return ActionMoveItemDown
		}
		return ActionCursorDown
	case tcell.KeyEscape:
		return ActionQuit
	}

	// Rune keys. Case matters: shifted j/k reorder.
	switch ev.Rune() {
	case 'k':
		return ActionCursorUp
	case 'j':
		return ActionCursorDown
	case 'K':
		return ActionMoveItemUp
	case 'J':
		return ActionMoveItemDown
	case 'p', 'P', ',':
		return ActionPickup
	case 'd', 'D':
		return ActionDrop
	case 'q', 'Q':
		return ActionQuit
	}
	return ActionNone
}
