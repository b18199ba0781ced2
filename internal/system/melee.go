package system

import "ascii-dungeon/internal/component"

// MeleeCombat resolves every melee intent: damage is the attacker's power
// minus the defender's defense, floored at zero, and is queued on the
// defender's damage accumulator. Dead attackers and dead targets do nothing.
func MeleeCombat(p *Pass) {
	w := p.World
	for _, attacker := range w.Query(component.CWantsToMelee) {
		intent := w.Get(attacker, component.CWantsToMelee).(component.WantsToMelee)

		atk, ok := w.Get(attacker, component.CCombatStats).(component.CombatStats)
		if !ok || atk.HP <= 0 {
			continue
		}
		def, ok := w.Get(intent.Target, component.CCombatStats).(component.CombatStats)
		if !ok || def.HP <= 0 {
			continue
		}

		damage := max(0, atk.Power-def.Defense)
		if damage > 0 {
			QueueDamage(w, intent.Target, damage)
		}

		atkName, ok := nameOf(w, attacker)
		if !ok {
			p.warn("melee log line skipped", missing(attacker, "name"))
			continue
		}
		defName, ok := nameOf(w, intent.Target)
		if !ok {
			p.warn("melee log line skipped", missing(intent.Target, "name"))
			continue
		}
		if damage == 0 {
			p.Log.Addf("%s is unable to hurt %s", atkName, defName)
		} else {
			p.Log.Addf("%s hits %s, for %d hp.", atkName, defName, damage)
		}
	}
	w.Clear(component.CWantsToMelee)
}
