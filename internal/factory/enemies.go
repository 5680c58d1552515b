package factory

import (
	"dungeon-crawler/assets"
	"dungeon-crawler/internal/component"
	"dungeon-crawler/internal/random"
)

type spawn struct {
	kind component.EnemyKind
	none bool
}

func (f *Factory) enemyStats(kind component.EnemyKind) assets.EnemyStats {
	e := f.bal.Enemies
	switch kind {
	case component.EnemySkeletorArcher:
		return e.SkeletorArcher
	case component.EnemyDeadman:
		return e.Deadman
	case component.EnemyGhost:
		return e.Ghost
	case component.EnemyLich:
		return e.Lich
	case component.EnemyMimic:
		return e.Mimic
	}
	return e.Skeletor
}

// Enemy rolls the enemy table at depth. It reports false when no enemy
// spawns. Mimics are never rolled here.
func (f *Factory) Enemy(depth int) (*component.Enemy, bool) {
	e := f.bal.Enemies
	tbl := random.Table[spawn]{
		{Weight: e.None.At(depth), Outcome: spawn{none: true}},
		{Weight: e.Skeletor.Weight.At(depth), Outcome: spawn{kind: component.EnemySkeletor}},
		{Weight: e.SkeletorArcher.Weight.At(depth), Outcome: spawn{kind: component.EnemySkeletorArcher}},
		{Weight: e.Deadman.Weight.At(depth), Outcome: spawn{kind: component.EnemyDeadman}},
		{Weight: e.Ghost.Weight.At(depth), Outcome: spawn{kind: component.EnemyGhost}},
		{Weight: e.Lich.Weight.At(depth), Outcome: spawn{kind: component.EnemyLich}},
	}
	s, ok := tbl.Pick(f.rng)
	if !ok || s.none {
		return nil, false
	}
	return f.NewEnemy(s.kind, depth), true
}

// NewEnemy builds an enemy of kind with stats scaled to depth.
func (f *Factory) NewEnemy(kind component.EnemyKind, depth int) *component.Enemy {
	stats := f.enemyStats(kind)
	div := f.bal.Scaling.Enemy
	label := assets.EnemyLabel(kind)
	hp := max(1, scale(stats.Health, depth, div, 1))
	return &component.Enemy{
		ID:          f.ids.Enemy.Next(),
		Kind:        kind,
		Name:        label.Name,
		Description: label.Description,
		Health:      hp,
		MaxHealth:   hp,
		Damage:      scale(stats.Damage, depth, div, 1),
		Block:       scale(stats.Block, depth, div, 1),
	}
}
