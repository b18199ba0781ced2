package component

import "ascii-dungeon/internal/ecs"

const CInBackpack ecs.ComponentType = 6

// InBackpack marks an item as carried by Owner. An item has either this or a
// Position, never both.
type InBackpack struct {
	Owner ecs.EntityID
}

func (InBackpack) Type() ecs.ComponentType { return CInBackpack }
