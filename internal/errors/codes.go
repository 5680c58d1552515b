// Package errors provides the coded, recoverable error kinds of the engine.
package errors

// Code is a machine-readable error code.
type Code string

const (
	// CodeUnknown represents an unknown error.
	CodeUnknown Code = "UNKNOWN"

	// Session errors
	CodeUnstartedSession Code = "UNSTARTED_SESSION"
	CodeSessionNotFound  Code = "SESSION_NOT_FOUND"

	// Battle errors
	CodeInBattle Code = "IN_BATTLE"

	// Chest errors
	CodeLocked Code = "LOCKED"
	CodeClosed Code = "CLOSED"
	CodeNoKey  Code = "NO_KEY"

	// Item errors
	CodeEmpty        Code = "EMPTY"
	CodeUncarryable  Code = "UNCARRYABLE"
	CodeNotEquipment Code = "NOT_EQUIPMENT"
	CodeNotHeal      Code = "NOT_HEAL"
	CodeNoMap        Code = "NO_MAP"

	// Lookup errors
	CodeItemNotFound  Code = "ITEM_NOT_FOUND"
	CodeRoomNotFound  Code = "ROOM_NOT_FOUND"
	CodeEnemyNotFound Code = "ENEMY_NOT_FOUND"
	CodeChestNotFound Code = "CHEST_NOT_FOUND"

	// Shop errors
	CodeNoMoney         Code = "NO_MONEY"
	CodeNotShop         Code = "NOT_SHOP"
	CodeUnsellableItem  Code = "UNSELLABLE_ITEM"
	CodeImpossibleSteal Code = "IMPOSSIBLE_STEAL"

	// Room errors
	CodeUndiscoveredRoom Code = "UNDISCOVERED_ROOM"
	CodeUnsearchedRoom   Code = "UNSEARCHED_ROOM"
	CodeEndOfDungeon     Code = "END_OF_DUNGEON"
)

// Sentinel errors, one per code, for use with errors.Is.
var (
	ErrUnstartedSession = New(CodeUnstartedSession, "session is not started")
	ErrSessionNotFound  = New(CodeSessionNotFound, "session not found")
	ErrInBattle         = New(CodeInBattle, "not allowed during a battle")
	ErrLocked           = New(CodeLocked, "chest is locked")
	ErrClosed           = New(CodeClosed, "chest is closed")
	ErrNoKey            = New(CodeNoKey, "no key")
	ErrEmpty            = New(CodeEmpty, "nothing to take")
	ErrUncarryable      = New(CodeUncarryable, "item cannot be carried")
	ErrNotEquipment     = New(CodeNotEquipment, "item is not equipment")
	ErrNotHeal          = New(CodeNotHeal, "item is not a heal")
	ErrNoMap            = New(CodeNoMap, "no map in inventory")
	ErrItemNotFound     = New(CodeItemNotFound, "item not found")
	ErrRoomNotFound     = New(CodeRoomNotFound, "room not found")
	ErrEnemyNotFound    = New(CodeEnemyNotFound, "enemy not found")
	ErrChestNotFound    = New(CodeChestNotFound, "chest not found")
	ErrNoMoney          = New(CodeNoMoney, "not enough coins")
	ErrNotShop          = New(CodeNotShop, "not in a shop")
	ErrUnsellableItem   = New(CodeUnsellableItem, "item cannot be sold")
	ErrImpossibleSteal  = New(CodeImpossibleSteal, "shop items must be bought")
	ErrUndiscoveredRoom = New(CodeUndiscoveredRoom, "room is not discovered")
	ErrUnsearchedRoom   = New(CodeUnsearchedRoom, "room is not searched")
	ErrEndOfDungeon     = New(CodeEndOfDungeon, "no room past the exit")
)
