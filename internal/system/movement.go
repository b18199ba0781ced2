package system

import (
	"ascii-dungeon/internal/component"
	"ascii-dungeon/internal/ecs"
	"ascii-dungeon/internal/gamemap"
)

// MoveResult describes the outcome of a TryMove call.
type MoveResult uint8

const (
	MoveOK      MoveResult = iota // position updated
	MoveBlocked                   // wall, occupied tile or out-of-bounds
	MoveAttack                    // destination holds something with combat stats
)

// TryMove attempts to move entity id by (dx, dy) against the blocked and
// tile-content indexes of gmap, and keeps both indexes current when the move
// succeeds. Returns the outcome and, for MoveAttack, the entity standing in
// the way. The caller decides what a bump means.
func TryMove(w *ecs.World, gmap *gamemap.GameMap, id ecs.EntityID, dx, dy int) (MoveResult, ecs.EntityID) {
	pos, ok := w.Get(id, component.CPosition).(component.Position)
	if !ok {
		return MoveBlocked, ecs.NilEntity
	}
	nx, ny := pos.X+dx, pos.Y+dy
	if !gmap.InBounds(nx, ny) {
		return MoveBlocked, ecs.NilEntity
	}

	for _, other := range gmap.TileContent(nx, ny) {
		if other == id || !w.Alive(other) {
			continue
		}
		if w.Has(other, component.CCombatStats) {
			return MoveAttack, other
		}
	}

	if gmap.IsBlocked(nx, ny) {
		return MoveBlocked, ecs.NilEntity
	}

	w.Add(id, component.Position{X: nx, Y: ny})
	gmap.RemoveContent(pos.X, pos.Y, id)
	gmap.AddContent(nx, ny, id)
	if w.HasTag(id, component.TagBlocksTile) {
		gmap.SetBlocked(pos.X, pos.Y, false)
		gmap.SetBlocked(nx, ny, true)
	}
	if vs, ok := w.Get(id, component.CViewshed).(component.Viewshed); ok {
		vs.Dirty = true
		w.Add(id, vs)
	}
	return MoveOK, ecs.NilEntity
}
