package system

import (
	"errors"
	"fmt"

	"ascii-dungeon/internal/component"
	"ascii-dungeon/internal/ecs"
)

// Internal-consistency errors. They only arise from badly built intents, so
// systems log them and skip the intent instead of aborting the pass.
var (
	ErrMissingComponent = errors.New("missing component")
	ErrNotAlive         = errors.New("entity not alive")
	ErrNotCarried       = errors.New("item not carried by actor")
)

func missing(id ecs.EntityID, what string) error {
	return fmt.Errorf("entity %d has no %s: %w", id, what, ErrMissingComponent)
}

func notAlive(id ecs.EntityID) error {
	return fmt.Errorf("entity %d: %w", id, ErrNotAlive)
}

func notCarried(item, actor ecs.EntityID) error {
	return fmt.Errorf("item %d, actor %d: %w", item, actor, ErrNotCarried)
}

// carriedBy reports whether item sits in owner's backpack.
func carriedBy(w *ecs.World, item, owner ecs.EntityID) bool {
	bp, ok := w.Get(item, component.CInBackpack).(component.InBackpack)
	return ok && bp.Owner == owner
}

// nameOf returns the display name of id.
func nameOf(w *ecs.World, id ecs.EntityID) (string, bool) {
	n, ok := w.Get(id, component.CName).(component.Name)
	return n.Name, ok
}
