// Package render draws the dungeon, its entities and the game overlays onto a
// tcell screen. It only reads game state.
package render

import (
	"slices"

	"ascii-dungeon/internal/component"
	"ascii-dungeon/internal/ecs"
	"ascii-dungeon/internal/gamemap"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
)

// HUDRows is the number of screen rows reserved below the map.
const HUDRows = 7

var (
	styleBase = tcell.StyleDefault.Background(tcell.ColorBlack)

	styleFloor    = styleBase.Foreground(tcell.ColorAqua)
	styleWall     = styleBase.Foreground(tcell.ColorGreen)
	styleDimFloor = styleBase.Foreground(tcell.ColorDimGray)
	styleDimWall  = styleBase.Foreground(tcell.ColorGray)
)

// Renderer draws the game world onto a tcell screen.
type Renderer struct {
	screen tcell.Screen
	camera *Camera
}

// NewRenderer creates a Renderer for the given screen.
func NewRenderer(screen tcell.Screen) *Renderer {
	r := &Renderer{screen: screen, camera: &Camera{}}
	r.Resize()
	return r
}

// Resize recomputes the map viewport after the terminal changed size.
func (r *Renderer) Resize() {
	w, h := r.screen.Size()
	r.camera.ViewWidth = w
	r.camera.ViewHeight = max(0, h-HUDRows)
}

// CenterOn recenters the camera on world position (x, y).
func (r *Renderer) CenterOn(x, y int) { r.camera.Center(x, y) }

// ScreenToWorld converts a screen cell, typically a mouse click, to a map tile.
func (r *Renderer) ScreenToWorld(sx, sy int) gamemap.Point {
	x, y := r.camera.ScreenToWorld(sx, sy)
	return gamemap.Point{X: x, Y: y}
}

// DrawFrame clears the screen and renders tiles and entities.
func (r *Renderer) DrawFrame(w *ecs.World, gmap *gamemap.GameMap) {
	r.screen.Clear()
	r.drawMap(gmap)
	r.drawEntities(w, gmap)
}

// Show flushes everything drawn since the last frame.
func (r *Renderer) Show() { r.screen.Show() }

// drawMap renders visible tiles in color and remembered ones dimmed.
func (r *Renderer) drawMap(gmap *gamemap.GameMap) {
	for y := 0; y < gmap.Height; y++ {
		for x := 0; x < gmap.Width; x++ {
			tile := gmap.At(x, y)
			if !tile.Visible && !tile.Explored {
				continue
			}
			sx, sy, onScreen := r.camera.WorldToScreen(x, y)
			if !onScreen {
				continue
			}
			glyph, style := tileLook(tile)
			r.screen.SetContent(sx, sy, glyph, nil, style)
		}
	}
}

func tileLook(t *gamemap.Tile) (rune, tcell.Style) {
	switch {
	case t.Kind == gamemap.TileWall && t.Visible:
		return '#', styleWall
	case t.Kind == gamemap.TileWall:
		return '#', styleDimWall
	case t.Visible:
		return '.', styleFloor
	default:
		return '.', styleDimFloor
	}
}

// renderableEntity holds sorting info for entity rendering.
type renderableEntity struct {
	id   ecs.EntityID
	pos  component.Position
	rend component.Renderable
}

// drawEntities renders every positioned entity on a visible tile. Entities
// with a lower RenderOrder are drawn last so they end up on top.
func (r *Renderer) drawEntities(w *ecs.World, gmap *gamemap.GameMap) {
	ids := w.Query(component.CRenderable, component.CPosition)
	entities := make([]renderableEntity, 0, len(ids))
	for _, id := range ids {
		pos := w.Get(id, component.CPosition).(component.Position)
		if !gmap.IsVisible(pos.X, pos.Y) {
			continue
		}
		rend := w.Get(id, component.CRenderable).(component.Renderable)
		entities = append(entities, renderableEntity{id: id, pos: pos, rend: rend})
	}

	slices.SortStableFunc(entities, func(a, b renderableEntity) int {
		return b.rend.RenderOrder - a.rend.RenderOrder
	})

	for _, e := range entities {
		sx, sy, onScreen := r.camera.WorldToScreen(e.pos.X, e.pos.Y)
		if !onScreen {
			continue
		}
		style := tcell.StyleDefault.Foreground(e.rend.FGColor).Background(e.rend.BGColor)
		r.putGlyph(sx, sy, e.rend.Glyph, style)
	}
}

// putGlyph draws one glyph, blanking the next column when the glyph is wide.
func (r *Renderer) putGlyph(x, y int, glyph rune, style tcell.Style) {
	r.screen.SetContent(x, y, glyph, nil, style)
	if runewidth.RuneWidth(glyph) == 2 {
		r.screen.SetContent(x+1, y, ' ', nil, style)
	}
}
