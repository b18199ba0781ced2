package system

import (
	"ascii-dungeon/internal/component"
	"ascii-dungeon/internal/ecs"
)

// QueueDamage appends amount to id's damage accumulator.
func QueueDamage(w *ecs.World, id ecs.EntityID, amount int) {
	sd, _ := w.Get(id, component.CSufferDamage).(component.SufferDamage)
	sd.Amounts = append(sd.Amounts, amount)
	w.Add(id, sd)
}

// ApplyDamage subtracts each accumulator's total from hp and empties every
// accumulator.
func ApplyDamage(p *Pass) {
	w := p.World
	for _, id := range w.Query(component.CSufferDamage, component.CCombatStats) {
		sd := w.Get(id, component.CSufferDamage).(component.SufferDamage)
		stats := w.Get(id, component.CCombatStats).(component.CombatStats)
		stats.HP -= sd.Total()
		w.Add(id, stats)
	}
	w.Clear(component.CSufferDamage)
}

// DeleteTheDead marks every entity at or below zero hp for destruction.
// Anything a victim carried falls to its tile. The player is never removed:
// its id lives as long as the process, so its death is only reported.
func DeleteTheDead(p *Pass) {
	w := p.World
	for _, id := range w.Query(component.CCombatStats) {
		stats := w.Get(id, component.CCombatStats).(component.CombatStats)
		if stats.HP > 0 {
			continue
		}
		if id == p.Player {
			if !w.HasTag(id, component.TagDeceased) {
				w.Tag(id, component.TagDeceased)
				p.Log.Add("You are dead")
			}
			continue
		}
		if w.Dying(id) {
			continue
		}
		if name, ok := nameOf(w, id); ok {
			p.Log.Addf("%s is dead", name)
		}
		dropCarried(w, id)
		w.Kill(id)
	}
}

func dropCarried(w *ecs.World, owner ecs.EntityID) {
	pos, ok := w.Get(owner, component.CPosition).(component.Position)
	for _, item := range w.Query(component.CInBackpack) {
		if w.Get(item, component.CInBackpack).(component.InBackpack).Owner != owner {
			continue
		}
		if ok {
			w.Remove(item, component.CInBackpack)
			w.Add(item, pos)
		} else {
			w.Kill(item)
		}
	}
}
