package system

import (
	"ascii-dungeon/internal/component"
	"ascii-dungeon/internal/gamemap"
)

// UpdateVisibility recomputes every dirty viewshed. The player's viewshed also
// drives the map's visible and explored flags.
func UpdateVisibility(p *Pass) {
	w := p.World
	for _, id := range w.Query(component.CViewshed, component.CPosition) {
		vs := w.Get(id, component.CViewshed).(component.Viewshed)
		if !vs.Dirty {
			continue
		}
		pos := w.Get(id, component.CPosition).(component.Position)
		vs.Visible = FieldOfView(p.Map, gamemap.Point{X: pos.X, Y: pos.Y}, vs.Range)
		vs.Dirty = false
		w.Add(id, vs)

		if id == p.Player {
			p.Map.ClearVisibility()
			for _, pt := range vs.Visible {
				p.Map.Reveal(pt.X, pt.Y)
			}
		}
	}
}
