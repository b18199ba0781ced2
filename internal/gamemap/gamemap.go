package gamemap

import (
	"slices"

	"ascii-dungeon/internal/ecs"
)

// GameMap holds the tile grid and room list for one dungeon level, plus the
// per-tile indexes the turn pipeline rebuilds every pass.
type GameMap struct {
	Width, Height int
	Tiles         [][]Tile
	Rooms         []Rect

	blocked []bool
	content [][]ecs.EntityID
}

// New creates a GameMap filled with walls.
func New(width, height int) *GameMap {
	tiles := make([][]Tile, height)
	for y := range tiles {
		tiles[y] = make([]Tile, width)
		for x := range tiles[y] {
			tiles[y][x] = MakeWall()
		}
	}
	return &GameMap{
		Width:   width,
		Height:  height,
		Tiles:   tiles,
		blocked: make([]bool, width*height),
		content: make([][]ecs.EntityID, width*height),
	}
}

// InBounds reports whether (x, y) is within the map boundaries.
func (m *GameMap) InBounds(x, y int) bool {
	return x >= 0 && x < m.Width && y >= 0 && y < m.Height
}

// Interior reports whether (x, y) lies strictly inside the outer border ring.
func (m *GameMap) Interior(x, y int) bool {
	return x > 0 && x < m.Width-1 && y > 0 && y < m.Height-1
}

// Idx converts (x, y) into an index for the flat per-tile indexes.
func (m *GameMap) Idx(x, y int) int {
	return y*m.Width + x
}

// At returns a pointer to the tile at (x, y). Panics if out of bounds.
func (m *GameMap) At(x, y int) *Tile {
	return &m.Tiles[y][x]
}

// Set replaces the tile at (x, y).
func (m *GameMap) Set(x, y int, t Tile) {
	m.Tiles[y][x] = t
}

// IsWalkable returns true when (x, y) is in bounds and walkable.
func (m *GameMap) IsWalkable(x, y int) bool {
	if !m.InBounds(x, y) {
		return false
	}
	return m.Tiles[y][x].Walkable
}

// IsTransparent returns true when (x, y) is in bounds and transparent.
func (m *GameMap) IsTransparent(x, y int) bool {
	if !m.InBounds(x, y) {
		return false
	}
	return m.Tiles[y][x].Transparent
}

// IsVisible returns true when (x, y) is in bounds and currently seen by the player.
func (m *GameMap) IsVisible(x, y int) bool {
	if !m.InBounds(x, y) {
		return false
	}
	return m.Tiles[y][x].Visible
}

// ClearVisibility marks every tile as not currently visible.
// Explored state is kept.
func (m *GameMap) ClearVisibility() {
	for y := range m.Tiles {
		for x := range m.Tiles[y] {
			m.Tiles[y][x].Visible = false
		}
	}
}

// Reveal marks (x, y) visible and explored.
func (m *GameMap) Reveal(x, y int) {
	if !m.InBounds(x, y) {
		return
	}
	t := &m.Tiles[y][x]
	t.Visible = true
	t.Explored = true
}

// PopulateBlocked resets the blocked index to the static tile walkability.
func (m *GameMap) PopulateBlocked() {
	for y := range m.Height {
		for x := range m.Width {
			m.blocked[m.Idx(x, y)] = !m.Tiles[y][x].Walkable
		}
	}
}

// IsBlocked reports whether (x, y) is blocked by terrain or an occupying
// entity as of the last index rebuild. Out-of-bounds tiles are blocked.
func (m *GameMap) IsBlocked(x, y int) bool {
	if !m.InBounds(x, y) {
		return true
	}
	return m.blocked[m.Idx(x, y)]
}

// SetBlocked overrides the blocked flag for (x, y).
func (m *GameMap) SetBlocked(x, y int, blocked bool) {
	if m.InBounds(x, y) {
		m.blocked[m.Idx(x, y)] = blocked
	}
}

// ClearContent empties the tile content index.
func (m *GameMap) ClearContent() {
	for i := range m.content {
		m.content[i] = m.content[i][:0]
	}
}

// AddContent records that id stands on (x, y).
func (m *GameMap) AddContent(x, y int, id ecs.EntityID) {
	if m.InBounds(x, y) {
		i := m.Idx(x, y)
		m.content[i] = append(m.content[i], id)
	}
}

// RemoveContent drops id from the entities indexed on (x, y).
func (m *GameMap) RemoveContent(x, y int, id ecs.EntityID) {
	if m.InBounds(x, y) {
		i := m.Idx(x, y)
		m.content[i] = slices.DeleteFunc(m.content[i], func(e ecs.EntityID) bool { return e == id })
	}
}

// TileContent returns the entities indexed on (x, y). The slice is owned by
// the map and is only valid until the next index rebuild.
func (m *GameMap) TileContent(x, y int) []ecs.EntityID {
	if !m.InBounds(x, y) {
		return nil
	}
	return m.content[m.Idx(x, y)]
}
