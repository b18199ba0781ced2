package system

import (
	"log/slog"

	"ascii-dungeon/internal/ecs"
	"ascii-dungeon/internal/gamelog"
	"ascii-dungeon/internal/gamemap"
	"ascii-dungeon/internal/runstate"
)

// Pass is the shared state one run of the pipeline reads and mutates.
// Every stage runs to completion before the next one starts.
type Pass struct {
	World  *ecs.World
	Map    *gamemap.GameMap
	Log    *gamelog.Log
	Player ecs.EntityID
	// State is the run state the pipeline was entered from. Stages that are
	// gated on the phase (monster AI) read it here.
	State  runstate.Kind
	Logger *slog.Logger
}

func (p *Pass) logger() *slog.Logger {
	if p.Logger == nil {
		return slog.Default()
	}
	return p.Logger
}

// warn reports a malformed intent. The caller skips it and carries on.
func (p *Pass) warn(msg string, err error, attrs ...any) {
	p.logger().Warn(msg, append(attrs, "error", err)...)
}

// Stage is one system of the turn pipeline.
type Stage struct {
	Name string
	Run  func(*Pass)
}

// Pipeline is an ordered list of stages.
type Pipeline []Stage

// DefaultPipeline returns the fixed turn order. Map indexing precedes every
// stage that reads blocking or tile content. Damage queued during the previous
// pass lands before melee, so an attacker already holding lethal damage never
// swings; damage queued by this pass's melee and item use lands on the next
// one. The death sweep only marks entities so that Maintain is the single
// point where they disappear.
func DefaultPipeline() Pipeline {
	return Pipeline{
		{Name: "visibility", Run: UpdateVisibility},
		{Name: "monster-ai", Run: MonsterAI},
		{Name: "map-index", Run: IndexMap},
		{Name: "damage", Run: ApplyDamage},
		{Name: "melee", Run: MeleeCombat},
		{Name: "inventory-collection", Run: CollectItems},
		{Name: "item-use", Run: UseItems},
		{Name: "item-drop", Run: DropItems},
		{Name: "death-sweep", Run: DeleteTheDead},
		{Name: "maintain", Run: Maintain},
	}
}

// Run executes every stage once, in order.
func (pl Pipeline) Run(p *Pass) {
	for _, s := range pl {
		s.Run(p)
	}
	p.logger().Debug("pipeline pass complete", "state", p.State, "entities", len(p.World.Entities()))
}

// Names returns the stage names in execution order.
func (pl Pipeline) Names() []string {
	names := make([]string, len(pl))
	for i, s := range pl {
		names[i] = s.Name
	}
	return names
}

// Maintain commits the deferred destructions queued during the pass.
func Maintain(p *Pass) {
	if n := p.World.Maintain(); n > 0 {
		p.logger().Debug("entities removed", "count", n)
	}
}
