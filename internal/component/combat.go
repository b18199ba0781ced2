package component

import "ascii-dungeon/internal/ecs"

const (
	CCombatStats  ecs.ComponentType = 3
	CSufferDamage ecs.ComponentType = 15
)

// CombatStats holds hit points and melee attributes.
// HP is clamped to MaxHP whenever it is raised.
type CombatStats struct {
	MaxHP   int
	HP      int
	Defense int
	Power   int
}

func (CombatStats) Type() ecs.ComponentType { return CCombatStats }

// Heal raises HP by amount without exceeding MaxHP.
func (c CombatStats) Heal(amount int) CombatStats {
	c.HP = min(c.MaxHP, c.HP+amount)
	return c
}

// SufferDamage accumulates the damage an entity takes during one pass.
// Every source appends; the damage system applies the sum and clears it.
type SufferDamage struct {
	Amounts []int
}

func (SufferDamage) Type() ecs.ComponentType { return CSufferDamage }

// Total returns the summed pending damage.
func (s SufferDamage) Total() int {
	total := 0
	for _, a := range s.Amounts {
		total += a
	}
	return total
}
