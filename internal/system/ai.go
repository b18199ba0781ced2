package system

import (
	"ascii-dungeon/internal/component"
	"ascii-dungeon/internal/ecs"
	"ascii-dungeon/internal/gamemap"
	"ascii-dungeon/internal/runstate"
)

// MonsterAI lets every monster act. It runs on every pass but only does
// anything when the pass was entered from MonsterTurn.
//
// A monster next to the player queues a melee intent. One that can see the
// player steps toward it, preferring the diagonal.
func MonsterAI(p *Pass) {
	if p.State != runstate.MonsterTurn {
		return
	}
	w := p.World
	playerPos, ok := w.Get(p.Player, component.CPosition).(component.Position)
	if !ok {
		return
	}
	target := gamemap.Point{X: playerPos.X, Y: playerPos.Y}

	for _, id := range w.QueryTagged(component.TagMonster, component.CViewshed, component.CPosition) {
		if stats, ok := w.Get(id, component.CCombatStats).(component.CombatStats); ok && stats.HP <= 0 {
			continue
		}
		pos := w.Get(id, component.CPosition).(component.Position)
		here := gamemap.Point{X: pos.X, Y: pos.Y}

		if here.Dist(target) < 1.5 {
			w.Add(id, component.WantsToMelee{Target: p.Player})
			continue
		}
		vs := w.Get(id, component.CViewshed).(component.Viewshed)
		if vs.CanSee(target) {
			stepToward(w, p.Map, id, here, target)
		}
	}
}

// stepToward moves id one tile closer to target if any of the three
// candidate steps is free.
func stepToward(w *ecs.World, gmap *gamemap.GameMap, id ecs.EntityID, from, to gamemap.Point) {
	sx, sy := sign(to.X-from.X), sign(to.Y-from.Y)
	steps := [][2]int{{sx, sy}, {sx, 0}, {0, sy}}
	for _, s := range steps {
		if s[0] == 0 && s[1] == 0 {
			continue
		}
		if r, _ := TryMove(w, gmap, id, s[0], s[1]); r == MoveOK {
			return
		}
	}
}

func sign(v int) int {
	if v > 0 {
		return 1
	}
	if v < 0 {
		return -1
	}
	return 0
}
