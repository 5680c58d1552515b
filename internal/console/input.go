package console

import "github.com/gdamore/tcell/v2"

// Action is a player command read from the keyboard.
type Action uint8

const (
	ActionNone Action = iota
	ActionNext
	ActionSearch
	ActionTakeAll
	ActionAttack
	ActionWait
	ActionSelect
	ActionHit
	ActionCycle
	ActionUse
	ActionEquip
	ActionSell
	ActionUnequipWeapon
	ActionUnequipHelm
	ActionUnequipChestplate
	ActionMap
	ActionRestart
	ActionQuit
)

// keyToAction maps a key event to an action. For ActionSelect the second
// result is the 0-based index of the listed item.
func keyToAction(ev *tcell.EventKey) (Action, int) {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return ActionQuit, 0
	case tcell.KeyTab:
		return ActionCycle, 0
	}

	r := ev.Rune()
	if r >= '1' && r <= '9' {
		return ActionSelect, int(r - '1')
	}
	switch r {
	case 'n':
		return ActionNext, 0
	case 's':
		return ActionSearch, 0
	case 't':
		return ActionTakeAll, 0
	case 'a':
		return ActionAttack, 0
	case 'e':
		return ActionWait, 0
	case 'b':
		return ActionHit, 0
	case 'i':
		return ActionCycle, 0
	case 'u':
		return ActionUse, 0
	case 'w':
		return ActionEquip, 0
	case 'x':
		return ActionSell, 0
	case 'W':
		return ActionUnequipWeapon, 0
	case 'H':
		return ActionUnequipHelm, 0
	case 'C':
		return ActionUnequipChestplate, 0
	case 'm':
		return ActionMap, 0
	case 'r':
		return ActionRestart, 0
	case 'q':
		return ActionQuit, 0
	}
	return ActionNone, 0
}
