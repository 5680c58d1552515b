package component

// EnemyKind tags the variant of an Enemy.
type EnemyKind uint8

const (
	EnemySkeletor EnemyKind = iota
	EnemySkeletorArcher
	EnemyDeadman
	EnemyGhost
	EnemyLich
	EnemyMimic

	enemyKindCount
)

// EnemyKinds lists every enemy kind in declaration order.
func EnemyKinds() []EnemyKind {
	out := make([]EnemyKind, 0, enemyKindCount)
	for k := EnemySkeletor; k < enemyKindCount; k++ {
		out = append(out, k)
	}
	return out
}

func (k EnemyKind) String() string {
	switch k {
	case EnemySkeletor:
		return "skeletor"
	case EnemySkeletorArcher:
		return "skeletor_archer"
	case EnemyDeadman:
		return "deadman"
	case EnemyGhost:
		return "ghost"
	case EnemyLich:
		return "lich"
	case EnemyMimic:
		return "mimic"
	}
	return "unknown"
}

// Enemy is a hostile creature in a room.
type Enemy struct {
	ID          int
	Kind        EnemyKind
	Name        string
	Description string
	Health      int
	MaxHealth   int
	Damage      int
	Block       int
}

// Dead reports whether the enemy has no health left.
func (e *Enemy) Dead() bool { return e.Health <= 0 }
