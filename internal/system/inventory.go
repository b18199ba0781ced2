package system

import (
	"ascii-dungeon/internal/component"
	"ascii-dungeon/internal/ecs"
)

// CollectItems resolves pickup intents: the item leaves the map and goes into
// the collector's backpack.
func CollectItems(p *Pass) {
	w := p.World
	for _, actor := range w.Query(component.CWantsToPickupItem) {
		intent := w.Get(actor, component.CWantsToPickupItem).(component.WantsToPickupItem)
		if err := p.collect(intent); err != nil {
			p.warn("pickup skipped", err, "actor", actor, "item", intent.Item)
		}
	}
	w.Clear(component.CWantsToPickupItem)
}

func (p *Pass) collect(in component.WantsToPickupItem) error {
	w := p.World
	if !w.Alive(in.Item) {
		return notAlive(in.Item)
	}
	if !w.Has(in.Item, component.CPosition) {
		return missing(in.Item, "position")
	}
	name, ok := nameOf(w, in.Item)
	if !ok {
		return missing(in.Item, "name")
	}
	w.Remove(in.Item, component.CPosition)
	w.Add(in.Item, component.InBackpack{Owner: in.CollectedBy})
	if in.CollectedBy == p.Player {
		p.Log.Addf("You pick up the %s", name)
	}
	return nil
}

// UseItems resolves use intents from any entity: targets are resolved,
// healing and damage descriptors are both applied to the same target set, and
// a consumable that had an effect is destroyed at the end of the pass. Only
// targets with combat stats can be healed or hurt.
func UseItems(p *Pass) {
	w := p.World
	for _, actor := range w.Query(component.CWantsToUse) {
		intent := w.Get(actor, component.CWantsToUse).(component.WantsToUse)
		if err := p.use(actor, intent); err != nil {
			p.warn("item use skipped", err, "actor", actor, "item", intent.Item)
		}
	}
	w.Clear(component.CWantsToUse)
}

func (p *Pass) use(actor ecs.EntityID, in component.WantsToUse) error {
	w := p.World
	if !w.Alive(in.Item) || w.Dying(in.Item) {
		return notAlive(in.Item)
	}
	if !carriedBy(w, in.Item, actor) {
		return notCarried(in.Item, actor)
	}
	itemName, ok := nameOf(w, in.Item)
	if !ok {
		return missing(in.Item, "name")
	}
	targets := ResolveTargets(w, p.Map, actor, in)
	used := false

	if heal, ok := w.Get(in.Item, component.CProvidesHealing).(component.ProvidesHealing); ok {
		healed := false
		for _, t := range targets {
			stats, ok := w.Get(t, component.CCombatStats).(component.CombatStats)
			if !ok {
				continue
			}
			w.Add(t, stats.Heal(heal.Amount))
			healed = true
		}
		if healed {
			used = true
			if actor == p.Player {
				p.Log.Addf("You use the %s, healing %d hp", itemName, heal.Amount)
			}
		}
	}

	if dmg, ok := w.Get(in.Item, component.CInflictDamage).(component.InflictDamage); ok {
		for _, t := range targets {
			if !w.Has(t, component.CCombatStats) {
				continue
			}
			QueueDamage(w, t, dmg.Amount)
			used = true
			if actor != p.Player {
				continue
			}
			targetName, ok := nameOf(w, t)
			if !ok {
				p.warn("damage log line skipped", missing(t, "name"), "item", in.Item)
				continue
			}
			p.Log.Addf("You use %s on %s, inflicting %d hp.", itemName, targetName, dmg.Amount)
		}
	}

	if used && w.HasTag(in.Item, component.TagConsumable) {
		w.Kill(in.Item)
	}
	return nil
}

// DropItems resolves drop intents: the item leaves the backpack and lands on
// the dropper's tile.
func DropItems(p *Pass) {
	w := p.World
	for _, actor := range w.Query(component.CWantsToDrop) {
		intent := w.Get(actor, component.CWantsToDrop).(component.WantsToDrop)
		if err := p.drop(actor, intent); err != nil {
			p.warn("drop skipped", err, "actor", actor, "item", intent.Item)
		}
	}
	w.Clear(component.CWantsToDrop)
}

func (p *Pass) drop(actor ecs.EntityID, in component.WantsToDrop) error {
	w := p.World
	if !w.Alive(in.Item) || w.Dying(in.Item) {
		return notAlive(in.Item)
	}
	if !carriedBy(w, in.Item, actor) {
		return notCarried(in.Item, actor)
	}
	pos, ok := w.Get(actor, component.CPosition).(component.Position)
	if !ok {
		return missing(actor, "position")
	}
	name, ok := nameOf(w, in.Item)
	if !ok {
		return missing(in.Item, "name")
	}
	w.Add(in.Item, pos)
	w.Remove(in.Item, component.CInBackpack)
	if actor == p.Player {
		p.Log.Addf("You drop the %s", name)
	}
	return nil
}
