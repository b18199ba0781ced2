package system

import (
	"slices"
	"testing"

	"ascii-dungeon/internal/component"
	"ascii-dungeon/internal/runstate"
)

func TestDefaultPipelineOrder(t *testing.T) {
	want := []string{
		"visibility", "monster-ai", "map-index", "damage", "melee",
		"inventory-collection", "item-use", "item-drop", "death-sweep", "maintain",
	}
	if got := DefaultPipeline().Names(); !slices.Equal(got, want) {
		t.Errorf("stage order = %v\nwant %v", got, want)
	}
}

func TestPipelineClearsIntents(t *testing.T) {
	p := newPass(10, 10, 2, 2)
	w := p.World
	orc := addMonster(w, "Orc", 3, 2, 16)
	floor := addFloorItem(w, "Health Potion", 2, 2)
	carried := addItem(w, "Scroll of Fireball", p.Player)
	w.Add(p.Player, component.WantsToMelee{Target: orc})
	w.Add(orc, component.WantsToPickupItem{CollectedBy: orc, Item: floor})
	w.Add(p.Player, component.WantsToDrop{Item: carried})

	DefaultPipeline().Run(p)

	for _, ct := range component.IntentTypes {
		if n := w.Count(ct); n != 0 {
			t.Errorf("intent storage %d holds %d entries after a pass", ct, n)
		}
	}
	// Melee runs after the damage stage, so its hit waits for the next pass.
	if got := pendingDamage(w, orc); !slices.Equal(got, []int{4}) {
		t.Fatalf("orc pending damage = %v, want [4]", got)
	}
	DefaultPipeline().Run(p)
	if got := hpOf(t, w, orc); got != 12 {
		t.Errorf("orc hp = %d, want 12", got)
	}
	if w.Count(component.CSufferDamage) != 0 {
		t.Error("damage accumulators must be emptied by the damage stage")
	}
}

// Position XOR InBackpack holds for every item after a pass.
func TestPipelineItemLocationInvariant(t *testing.T) {
	p := newPass(10, 10, 2, 2)
	w := p.World
	a := addFloorItem(w, "Health Potion", 2, 2)
	b := addItem(w, "Scroll of Fireball", p.Player)
	addFloorItem(w, "Scroll of Magic Missile", 6, 6)
	w.Add(p.Player, component.WantsToPickupItem{CollectedBy: p.Player, Item: a})
	w.Add(p.Player, component.WantsToDrop{Item: b})

	DefaultPipeline().Run(p)

	for _, id := range w.QueryTagged(component.TagItem) {
		onMap := w.Has(id, component.CPosition)
		carried := w.Has(id, component.CInBackpack)
		if onMap == carried {
			t.Errorf("item %d: onMap=%v carried=%v", id, onMap, carried)
		}
	}
}

func TestPipelineMissileKillsAcrossTwoPasses(t *testing.T) {
	p := newPass(10, 10, 3, 5)
	w := p.World
	orc := addMonster(w, "Orc", 5, 5, 16)
	missile := addItem(w, "Scroll of Magic Missile", p.Player,
		component.Ranged{Range: 6},
		component.InflictDamage{Amount: 17})
	pipeline := DefaultPipeline()

	p.State = runstate.PreRun
	pipeline.Run(p)

	p.State = runstate.PlayerTurn
	w.Add(p.Player, component.WantsToUse{Item: missile, Target: at(5, 5)})
	pipeline.Run(p)

	if w.Alive(missile) {
		t.Error("scroll should be consumed")
	}
	if !w.Alive(orc) || hpOf(t, w, orc) != 16 {
		t.Fatal("item damage lands on the following pass")
	}
	if !p.Log.Contains("You use Scroll of Magic Missile on Orc, inflicting 17 hp.") {
		t.Errorf("log = %q", p.Log.Entries())
	}

	p.State = runstate.MonsterTurn
	pipeline.Run(p)

	if w.Alive(orc) {
		t.Error("orc should be dead after the second pass")
	}
	if !p.Log.Contains("Orc is dead") {
		t.Errorf("log = %q", p.Log.Entries())
	}
}

func TestPipelineMonsterMeleeIsLogged(t *testing.T) {
	p := newPass(10, 10, 4, 4)
	w := p.World
	addMonster(w, "Goblin", 5, 4, 16)
	pipeline := DefaultPipeline()

	p.State = runstate.PreRun
	pipeline.Run(p)
	p.State = runstate.MonsterTurn
	pipeline.Run(p)

	if got := hpOf(t, w, p.Player); got != 30 {
		// Goblin power 2 against player defense 2 does nothing.
		t.Errorf("hp = %d, want 30", got)
	}
	if !p.Log.Contains("Goblin is unable to hurt Player") {
		t.Errorf("log = %q", p.Log.Entries())
	}
}

func TestPipelineDoomedMonsterDoesNotAttack(t *testing.T) {
	p := newPass(10, 10, 4, 4)
	w := p.World
	orc := addMonster(w, "Orc", 5, 4, 16)
	w.Add(orc, component.CombatStats{MaxHP: 16, HP: 16, Defense: 1, Power: 10})
	missile := addItem(w, "Scroll of Magic Missile", p.Player,
		component.Ranged{Range: 6},
		component.InflictDamage{Amount: 17})
	pipeline := DefaultPipeline()

	p.State = runstate.PreRun
	pipeline.Run(p)
	p.State = runstate.PlayerTurn
	w.Add(p.Player, component.WantsToUse{Item: missile, Target: at(5, 4)})
	pipeline.Run(p)
	p.State = runstate.MonsterTurn
	pipeline.Run(p)

	if w.Alive(orc) {
		t.Fatal("orc should be dead after the monster turn")
	}
	if got := hpOf(t, w, p.Player); got != 30 {
		t.Errorf("player hp = %d, want 30: a dead orc must not land a hit", got)
	}
	for _, line := range p.Log.Entries() {
		if line == "Orc hits Player, for 8 hp." {
			t.Errorf("log = %q", p.Log.Entries())
		}
	}
}
