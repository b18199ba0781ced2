package system

import (
	"io"
	"log/slog"
	"testing"

	"ascii-dungeon/internal/component"
	"ascii-dungeon/internal/ecs"
	"ascii-dungeon/internal/gamelog"
	"ascii-dungeon/internal/gamemap"
	"ascii-dungeon/internal/runstate"
)

// openMap creates a w×h map that is entirely passable floor.
func openMap(w, h int) *gamemap.GameMap {
	gmap := gamemap.New(w, h)
	for y := range h {
		for x := range w {
			gmap.Set(x, y, gamemap.MakeFloor())
		}
	}
	gmap.PopulateBlocked()
	return gmap
}

// newPass builds a minimal pass over an open w×h map with a player at (px, py).
func newPass(w, h, px, py int) *Pass {
	world := ecs.NewWorld()
	p := &Pass{
		World:  world,
		Map:    openMap(w, h),
		Log:    gamelog.New(),
		State:  runstate.PlayerTurn,
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	p.Player = addCreature(world, "Player", px, py, component.CombatStats{MaxHP: 30, HP: 30, Defense: 2, Power: 5})
	world.Tag(p.Player, component.TagPlayer)
	return p
}

func addCreature(w *ecs.World, name string, x, y int, stats component.CombatStats) ecs.EntityID {
	id := w.CreateEntity()
	w.Add(id, component.Position{X: x, Y: y})
	w.Add(id, component.Name{Name: name})
	w.Add(id, stats)
	w.Add(id, component.Viewshed{Range: 8, Dirty: true})
	w.Tag(id, component.TagBlocksTile)
	return id
}

func addMonster(w *ecs.World, name string, x, y, hp int) ecs.EntityID {
	id := addCreature(w, name, x, y, component.CombatStats{MaxHP: hp, HP: hp, Defense: 1, Power: 2})
	w.Tag(id, component.TagMonster)
	return id
}

// addItem creates a consumable item carried by owner.
func addItem(w *ecs.World, name string, owner ecs.EntityID, extra ...ecs.Component) ecs.EntityID {
	id := w.CreateEntity()
	w.Add(id, component.Name{Name: name})
	w.Add(id, component.InBackpack{Owner: owner})
	w.Tag(id, component.TagItem|component.TagConsumable)
	for _, c := range extra {
		w.Add(id, c)
	}
	return id
}

func hpOf(t *testing.T, w *ecs.World, id ecs.EntityID) int {
	t.Helper()
	stats, ok := w.Get(id, component.CCombatStats).(component.CombatStats)
	if !ok {
		t.Fatalf("entity %d has no combat stats", id)
	}
	return stats.HP
}

func pendingDamage(w *ecs.World, id ecs.EntityID) []int {
	sd, _ := w.Get(id, component.CSufferDamage).(component.SufferDamage)
	return sd.Amounts
}

func at(x, y int) *gamemap.Point {
	return &gamemap.Point{X: x, Y: y}
}
