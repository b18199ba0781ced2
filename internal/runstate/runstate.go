// Package runstate defines the phases of the game loop and the commands the
// input layer feeds into them. States are plain values: the game advances by
// taking a State and returning the next one, never through a shared global.
package runstate

import (
	"fmt"

	"ascii-dungeon/internal/ecs"
)

// Kind names a phase of the game loop.
type Kind uint8

const (
	PreRun Kind = iota
	AwaitingInput
	PlayerTurn
	MonsterTurn
	ShowInventory
	ShowDropItem
	ShowTargeting
)

func (k Kind) String() string {
	switch k {
	case PreRun:
		return "PreRun"
	case AwaitingInput:
		return "AwaitingInput"
	case PlayerTurn:
		return "PlayerTurn"
	case MonsterTurn:
		return "MonsterTurn"
	case ShowInventory:
		return "ShowInventory"
	case ShowDropItem:
		return "ShowDropItem"
	case ShowTargeting:
		return "ShowTargeting"
	}
	return fmt.Sprintf("Kind(%d)", uint8(k))
}

// State is the current phase. Range and Item are only meaningful for
// ShowTargeting.
type State struct {
	Kind  Kind
	Range int
	Item  ecs.EntityID
}

// Of returns a payload-free state.
func Of(k Kind) State { return State{Kind: k} }

// Targeting returns the state that asks the player to pick a tile within
// rng of themselves for item.
func Targeting(rng int, item ecs.EntityID) State {
	return State{Kind: ShowTargeting, Range: rng, Item: item}
}

// RunsPipeline reports whether the full turn pipeline executes in this state.
func (s State) RunsPipeline() bool {
	switch s.Kind {
	case PreRun, PlayerTurn, MonsterTurn:
		return true
	}
	return false
}

// NeedsInput reports whether the state waits on the input layer.
func (s State) NeedsInput() bool { return !s.RunsPipeline() }

func (s State) String() string {
	if s.Kind == ShowTargeting {
		return fmt.Sprintf("ShowTargeting{range: %d, item: %d}", s.Range, s.Item)
	}
	return s.Kind.String()
}
