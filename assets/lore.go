package assets

import "dungeon-crawler/internal/component"

// enemyLabels names every enemy kind.
var enemyLabels = map[component.EnemyKind]Label{
	component.EnemySkeletor:       {"Skeletor", "A rattling skeleton with a rusty blade."},
	component.EnemySkeletorArcher: {"Skeletor archer", "Keeps its distance and its arrows sharp."},
	component.EnemyDeadman:        {"Deadman", "Slow, stubborn and already dead."},
	component.EnemyGhost:          {"Ghost", "Armor means little to something you can see through."},
	component.EnemyLich:           {"Lich", "An old wizard who refused to stop."},
	component.EnemyMimic:          {"Mimic", "The chest had teeth."},
}

// roomLabels names every room kind.
var roomLabels = map[component.RoomKind]Label{
	component.RoomStart: {"Entrance", "Daylight fades behind you. The only way is forward."},
	component.RoomEnd:   {"Exit", "Fresh air. You made it out."},
	component.RoomEmpty: {"Empty room", "Bare stone and dust."},
	component.RoomSmall: {"Small room", "A cramped chamber."},
	component.RoomBig:   {"Big room", "A wide hall full of clutter."},
	component.RoomShop:  {"Shop", "A hooded merchant nods from behind a table of wares."},
}

// EnemyLabel returns the label for an enemy kind.
func EnemyLabel(kind component.EnemyKind) Label {
	if l, ok := enemyLabels[kind]; ok {
		return l
	}
	return Label{Name: kind.String()}
}

// RoomLabel returns the label for a room kind.
func RoomLabel(kind component.RoomKind) Label {
	if l, ok := roomLabels[kind]; ok {
		return l
	}
	return Label{Name: kind.String()}
}
