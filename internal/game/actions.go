package game

import (
	"cmp"
	"slices"

	"ascii-dungeon/internal/component"
	"ascii-dungeon/internal/ecs"
	"ascii-dungeon/internal/gamemap"
	"ascii-dungeon/internal/system"
)

// reindex refreshes the blocked and tile-content indexes so player actions
// see entities removed or moved since the last pass.
func (g *Game) reindex() {
	system.IndexMap(&system.Pass{World: g.world, Map: g.gmap, Player: g.playerID, Logger: g.logger})
}

// TryMovePlayer moves the player by (dx, dy), or queues a melee intent when
// something with combat stats stands there. It reports whether the turn was
// spent.
func (g *Game) TryMovePlayer(dx, dy int) bool {
	if dx == 0 && dy == 0 {
		return false
	}
	g.reindex()
	result, target := system.TryMove(g.world, g.gmap, g.playerID, dx, dy)
	switch result {
	case system.MoveAttack:
		g.world.Add(g.playerID, component.WantsToMelee{Target: target})
		return true
	case system.MoveOK:
		return true
	}
	return false
}

// GetItem queues a pickup of the first item on the player's tile. With nothing
// there it only logs. Either way the turn is spent.
func (g *Game) GetItem() {
	pos := g.playerPosition()
	for _, id := range g.world.QueryTagged(component.TagItem, component.CPosition) {
		p := g.world.Get(id, component.CPosition).(component.Position)
		if p.X == pos.X && p.Y == pos.Y {
			g.world.Add(g.playerID, component.WantsToPickupItem{CollectedBy: g.playerID, Item: id})
			return
		}
	}
	g.log.Add("There is nothing here to pick up.")
}

// InventoryEntry is one line of the inventory and drop menus.
type InventoryEntry struct {
	ID   ecs.EntityID
	Name string
}

// Inventory lists the items the player carries, sorted by name then id.
func (g *Game) Inventory() []InventoryEntry {
	var out []InventoryEntry
	for _, id := range g.world.Query(component.CInBackpack, component.CName) {
		if g.world.Get(id, component.CInBackpack).(component.InBackpack).Owner != g.playerID {
			continue
		}
		out = append(out, InventoryEntry{ID: id, Name: g.world.Get(id, component.CName).(component.Name).Name})
	}
	slices.SortFunc(out, func(a, b InventoryEntry) int {
		return cmp.Or(cmp.Compare(a.Name, b.Name), cmp.Compare(a.ID, b.ID))
	})
	return out
}

// carries reports whether item is in the player's backpack.
func (g *Game) carries(item ecs.EntityID) bool {
	bp, ok := g.world.Get(item, component.CInBackpack).(component.InBackpack)
	return ok && bp.Owner == g.playerID
}

// QueueUse records the player's intent to use item, at target if non-nil.
func (g *Game) QueueUse(item ecs.EntityID, target *gamemap.Point) {
	g.world.Add(g.playerID, component.WantsToUse{Item: item, Target: target})
}

// QueueDrop records the player's intent to drop item.
func (g *Game) QueueDrop(item ecs.EntityID) {
	g.world.Add(g.playerID, component.WantsToDrop{Item: item})
}

// TargetableTiles returns the tiles the player can see within rng of
// themselves.
func (g *Game) TargetableTiles(rng int) []gamemap.Point {
	vs, ok := g.world.Get(g.playerID, component.CViewshed).(component.Viewshed)
	if !ok {
		return nil
	}
	origin := g.playerPosition()
	var out []gamemap.Point
	for _, p := range vs.Visible {
		if origin.Dist(p) <= float64(rng) {
			out = append(out, p)
		}
	}
	return out
}

// canTarget reports whether p is one of TargetableTiles(rng).
func (g *Game) canTarget(p gamemap.Point, rng int) bool {
	return slices.Contains(g.TargetableTiles(rng), p)
}
