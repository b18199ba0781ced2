package system

import (
	"slices"

	"ascii-dungeon/internal/component"
	"ascii-dungeon/internal/ecs"
	"ascii-dungeon/internal/gamemap"
)

// ResolveTargets returns the entities a use intent affects.
//
//   - no target point: the user itself
//   - a point and no area of effect: whatever stands on that tile
//   - a point and AreaOfEffect: the contents of every tile in the blast set
//
// Entities are listed once per tile they occupy, which is once in practice.
func ResolveTargets(w *ecs.World, gmap *gamemap.GameMap, user ecs.EntityID, use component.WantsToUse) []ecs.EntityID {
	if use.Target == nil {
		return []ecs.EntityID{user}
	}
	at := *use.Target
	aoe, ok := w.Get(use.Item, component.CAreaOfEffect).(component.AreaOfEffect)
	if !ok {
		return slices.Clone(gmap.TileContent(at.X, at.Y))
	}
	var targets []ecs.EntityID
	for _, pt := range BlastSet(gmap, at, aoe.Radius) {
		targets = append(targets, gmap.TileContent(pt.X, pt.Y)...)
	}
	return targets
}

// BlastSet is the field of view of radius around center, clipped to the map
// interior (the outermost ring of tiles is never hit).
func BlastSet(gmap *gamemap.GameMap, center gamemap.Point, radius int) []gamemap.Point {
	return slices.DeleteFunc(FieldOfView(gmap, center, radius), func(pt gamemap.Point) bool {
		return !gmap.Interior(pt.X, pt.Y)
	})
}
