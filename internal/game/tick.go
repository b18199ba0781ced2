package game

import (
	"ascii-dungeon/internal/component"
	"ascii-dungeon/internal/runstate"
)

// Tick advances the run by one step. States that run the pipeline ignore cmd;
// the others interpret it and return the next state. An input that means
// nothing in the current state leaves it unchanged.
func (g *Game) Tick(st runstate.State, cmd runstate.Command) runstate.State {
	next := g.tick(st, cmd)
	if next != st {
		g.logger.Debug("run state changed", "from", st, "to", next)
	}
	return next
}

func (g *Game) tick(st runstate.State, cmd runstate.Command) runstate.State {
	switch st.Kind {
	case runstate.PreRun:
		g.runPipeline(runstate.PreRun)
		return runstate.Of(runstate.AwaitingInput)

	case runstate.PlayerTurn:
		g.runPipeline(runstate.PlayerTurn)
		return runstate.Of(runstate.MonsterTurn)

	case runstate.MonsterTurn:
		g.runPipeline(runstate.MonsterTurn)
		return runstate.Of(runstate.AwaitingInput)

	case runstate.AwaitingInput:
		return g.awaitingInput(st, cmd)

	case runstate.ShowInventory:
		return g.showInventory(st, cmd)

	case runstate.ShowDropItem:
		return g.showDropItem(st, cmd)

	case runstate.ShowTargeting:
		return g.showTargeting(st, cmd)
	}
	return st
}

func (g *Game) awaitingInput(st runstate.State, cmd runstate.Command) runstate.State {
	if g.Dead() {
		return st
	}
	switch cmd.Kind {
	case runstate.CmdMove:
		if g.TryMovePlayer(cmd.DX, cmd.DY) {
			return runstate.Of(runstate.PlayerTurn)
		}
	case runstate.CmdPickup:
		g.GetItem()
		return runstate.Of(runstate.PlayerTurn)
	case runstate.CmdOpenInventory:
		return runstate.Of(runstate.ShowInventory)
	case runstate.CmdOpenDrop:
		return runstate.Of(runstate.ShowDropItem)
	}
	return st
}

func (g *Game) showInventory(st runstate.State, cmd runstate.Command) runstate.State {
	switch cmd.Kind {
	case runstate.CmdCancel:
		return runstate.Of(runstate.AwaitingInput)
	case runstate.CmdSelect:
		if !g.carries(cmd.Item) {
			return st
		}
		if r, ok := g.world.Get(cmd.Item, component.CRanged).(component.Ranged); ok {
			return runstate.Targeting(r.Range, cmd.Item)
		}
		g.QueueUse(cmd.Item, nil)
		return runstate.Of(runstate.PlayerTurn)
	}
	return st
}

func (g *Game) showDropItem(st runstate.State, cmd runstate.Command) runstate.State {
	switch cmd.Kind {
	case runstate.CmdCancel:
		return runstate.Of(runstate.AwaitingInput)
	case runstate.CmdSelect:
		if !g.carries(cmd.Item) {
			return st
		}
		g.QueueDrop(cmd.Item)
		return runstate.Of(runstate.PlayerTurn)
	}
	return st
}

func (g *Game) showTargeting(st runstate.State, cmd runstate.Command) runstate.State {
	switch cmd.Kind {
	case runstate.CmdCancel:
		return runstate.Of(runstate.AwaitingInput)
	case runstate.CmdSelectTarget:
		if !g.carries(st.Item) || !g.canTarget(cmd.Target, st.Range) {
			return st
		}
		target := cmd.Target
		g.QueueUse(st.Item, &target)
		return runstate.Of(runstate.PlayerTurn)
	}
	return st
}
