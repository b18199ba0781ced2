package game

import (
	"ascii-dungeon/internal/render"
	"ascii-dungeon/internal/runstate"

	"github.com/gdamore/tcell/v2"
)

// Play runs the game on screen until the player quits or the screen is
// finalized from elsewhere. The caller owns the screen and calls Fini.
func (g *Game) Play(screen tcell.Screen) {
	screen.EnableMouse()
	r := render.NewRenderer(screen)
	ctl := NewController(g, r.ScreenToWorld)

	st := runstate.Of(runstate.PreRun)
	for {
		if st.RunsPipeline() {
			st = g.Tick(st, runstate.None())
			continue
		}
		g.draw(r, st, ctl)

		ev := screen.PollEvent()
		if ev == nil {
			return
		}
		if _, ok := ev.(*tcell.EventResize); ok {
			screen.Sync()
			r.Resize()
			continue
		}
		cmd, quitting := ctl.Command(st, ev)
		if quitting {
			g.logger.Info("player quit", "dead", g.Dead())
			return
		}
		next := g.Tick(st, cmd)
		if next.Kind == runstate.ShowTargeting && st.Kind != runstate.ShowTargeting {
			ctl.ResetCursor()
		}
		st = next
	}
}

// draw renders one frame for st.
func (g *Game) draw(r *render.Renderer, st runstate.State, ctl *Controller) {
	pos := g.playerPosition()
	r.CenterOn(pos.X, pos.Y)
	r.DrawFrame(g.world, g.gmap)
	r.DrawHUD(g.world, g.playerID, g.log.Recent(render.HUDRows-2))

	switch st.Kind {
	case runstate.ShowInventory:
		r.DrawMenu("Inventory", g.inventoryNames(), "ESCAPE to cancel")
	case runstate.ShowDropItem:
		r.DrawMenu("Drop Which Item?", g.inventoryNames(), "ESCAPE to cancel")
	case runstate.ShowTargeting:
		r.DrawTargeting(g.TargetableTiles(st.Range), ctl.Cursor())
	}
	r.Show()
}

func (g *Game) inventoryNames() []string {
	inv := g.Inventory()
	names := make([]string, len(inv))
	for i, e := range inv {
		names[i] = e.Name
	}
	return names
}
