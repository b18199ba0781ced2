package system

import "ascii-dungeon/internal/component"

// IndexMap rebuilds the blocked and tile-content indexes from the static
// tiles and the current positions. A tile is blocked when its terrain is not
// walkable or a BlocksTile entity stands on it.
func IndexMap(p *Pass) {
	w, m := p.World, p.Map
	m.PopulateBlocked()
	m.ClearContent()
	for _, id := range w.Query(component.CPosition) {
		pos := w.Get(id, component.CPosition).(component.Position)
		if w.HasTag(id, component.TagBlocksTile) {
			m.SetBlocked(pos.X, pos.Y, true)
		}
		m.AddContent(pos.X, pos.Y, id)
	}
}
