package system

import (
	"slices"
	"testing"

	"ascii-dungeon/internal/component"
)

func TestMeleeDamageLaw(t *testing.T) {
	tests := []struct {
		name       string
		power, def int
		want       []int
		line       string
	}{
		{"power beats defense", 17, 1, []int{16}, "Player hits Orc, for 16 hp."},
		{"equal", 3, 3, nil, "Player is unable to hurt Orc"},
		{"defense beats power", 2, 5, nil, "Player is unable to hurt Orc"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := newPass(10, 10, 2, 2)
			w := p.World
			w.Add(p.Player, component.CombatStats{MaxHP: 30, HP: 30, Power: tt.power})
			orc := addMonster(w, "Orc", 3, 2, 16)
			w.Add(orc, component.CombatStats{MaxHP: 16, HP: 16, Defense: tt.def})
			w.Add(p.Player, component.WantsToMelee{Target: orc})

			MeleeCombat(p)

			if got := pendingDamage(w, orc); !slices.Equal(got, tt.want) {
				t.Errorf("pending damage = %v, want %v", got, tt.want)
			}
			if !p.Log.Contains(tt.line) {
				t.Errorf("log = %q, want %q", p.Log.Entries(), tt.line)
			}
			if w.Count(component.CWantsToMelee) != 0 {
				t.Error("melee intents must be cleared")
			}
		})
	}
}

func TestMeleeDeadParticipantsDoNothing(t *testing.T) {
	p := newPass(10, 10, 2, 2)
	w := p.World
	orc := addMonster(w, "Orc", 3, 2, 16)
	goblin := addMonster(w, "Goblin", 2, 3, 16)
	w.Add(orc, component.CombatStats{MaxHP: 16, HP: 0, Power: 10})
	w.Add(goblin, component.CombatStats{MaxHP: 16, HP: -3, Defense: 1})
	w.Add(orc, component.WantsToMelee{Target: p.Player})
	w.Add(p.Player, component.WantsToMelee{Target: goblin})

	MeleeCombat(p)

	if got := pendingDamage(w, p.Player); len(got) != 0 {
		t.Errorf("dead attacker queued damage %v", got)
	}
	if got := pendingDamage(w, goblin); len(got) != 0 {
		t.Errorf("dead defender took damage %v", got)
	}
	if p.Log.Len() != 0 {
		t.Errorf("log = %q, want empty", p.Log.Entries())
	}
}

func TestMeleeAccumulatesAcrossAttackers(t *testing.T) {
	p := newPass(10, 10, 5, 5)
	w := p.World
	a := addMonster(w, "Orc", 4, 5, 16)
	b := addMonster(w, "Goblin", 6, 5, 16)
	w.Add(a, component.WantsToMelee{Target: p.Player})
	w.Add(b, component.WantsToMelee{Target: p.Player})
	w.Add(p.Player, component.CombatStats{MaxHP: 30, HP: 30, Defense: 0, Power: 5})

	MeleeCombat(p)

	if got := pendingDamage(w, p.Player); !slices.Equal(got, []int{2, 2}) {
		t.Fatalf("pending damage = %v, want [2 2]", got)
	}
	ApplyDamage(p)
	if got := hpOf(t, w, p.Player); got != 26 {
		t.Errorf("hp = %d, want 26", got)
	}
}
