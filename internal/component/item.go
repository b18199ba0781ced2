package component

import "ascii-dungeon/internal/ecs"

const (
	CProvidesHealing ecs.ComponentType = 7
	CInflictDamage   ecs.ComponentType = 8
	CAreaOfEffect    ecs.ComponentType = 9
	CRanged          ecs.ComponentType = 10
)

// ProvidesHealing restores Amount hp to each target when the item is used.
type ProvidesHealing struct {
	Amount int
}

func (ProvidesHealing) Type() ecs.ComponentType { return CProvidesHealing }

// InflictDamage queues Amount damage on each target when the item is used.
type InflictDamage struct {
	Amount int
}

func (InflictDamage) Type() ecs.ComponentType { return CInflictDamage }

// AreaOfEffect widens a targeted use to every tile within Radius of the target point.
type AreaOfEffect struct {
	Radius int
}

func (AreaOfEffect) Type() ecs.ComponentType { return CAreaOfEffect }

// Ranged items need a target point within Range tiles of the user.
type Ranged struct {
	Range int
}

func (Ranged) Type() ecs.ComponentType { return CRanged }
