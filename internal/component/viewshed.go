package component

import (
	"ascii-dungeon/internal/ecs"
	"ascii-dungeon/internal/gamemap"
)

const CViewshed ecs.ComponentType = 5

// Viewshed is the set of tiles an entity can currently see.
// Dirty forces a recompute on the next visibility pass.
type Viewshed struct {
	Visible []gamemap.Point
	Range   int
	Dirty   bool
}

func (Viewshed) Type() ecs.ComponentType { return CViewshed }

// CanSee reports whether p is in the viewshed.
func (v Viewshed) CanSee(p gamemap.Point) bool {
	for _, q := range v.Visible {
		if q == p {
			return true
		}
	}
	return false
}
