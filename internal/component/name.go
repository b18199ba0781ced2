package component

import "ascii-dungeon/internal/ecs"

const CName ecs.ComponentType = 2

type Name struct {
	Name string
}

func (Name) Type() ecs.ComponentType { return CName }
