package component

import (
	"ascii-dungeon/internal/ecs"
	"ascii-dungeon/internal/gamemap"
)

// Intents are attached to the acting entity by the input layer (or the
// monster AI) and consumed by exactly one pipeline system in the same pass.
const (
	CWantsToPickupItem ecs.ComponentType = 11
	CWantsToUse        ecs.ComponentType = 12
	CWantsToDrop       ecs.ComponentType = 13
	CWantsToMelee      ecs.ComponentType = 14
)

// IntentTypes lists every intent storage; all are empty after a pipeline pass.
var IntentTypes = []ecs.ComponentType{
	CWantsToPickupItem,
	CWantsToUse,
	CWantsToDrop,
	CWantsToMelee,
}

type WantsToPickupItem struct {
	CollectedBy ecs.EntityID
	Item        ecs.EntityID
}

func (WantsToPickupItem) Type() ecs.ComponentType { return CWantsToPickupItem }

// WantsToUse asks to use Item. A nil Target means the user targets itself.
type WantsToUse struct {
	Item   ecs.EntityID
	Target *gamemap.Point
}

func (WantsToUse) Type() ecs.ComponentType { return CWantsToUse }

type WantsToDrop struct {
	Item ecs.EntityID
}

func (WantsToDrop) Type() ecs.ComponentType { return CWantsToDrop }

type WantsToMelee struct {
	Target ecs.EntityID
}

func (WantsToMelee) Type() ecs.ComponentType { return CWantsToMelee }
