package component

import "ascii-dungeon/internal/ecs"

const CPosition ecs.ComponentType = 1

// Position places an entity on the map. Items inside a backpack have none.
type Position struct {
	X, Y int
}

func (Position) Type() ecs.ComponentType { return CPosition }
