package factory

import (
	"math/rand"

	"ascii-dungeon/internal/component"
	"ascii-dungeon/internal/ecs"
	"ascii-dungeon/internal/gamemap"
	"ascii-dungeon/internal/generate"

	"github.com/gdamore/tcell/v2"
)

// Render orders: lower values are drawn on top.
const (
	orderPlayer  = 0
	orderMonster = 1
	orderItem    = 2
)

// NewPlayer creates the player entity at (x, y).
func NewPlayer(w *ecs.World, x, y, viewRange int) ecs.EntityID {
	id := w.CreateEntity()
	w.Add(id, component.Position{X: x, Y: y})
	w.Add(id, component.Name{Name: "Player"})
	w.Add(id, component.CombatStats{MaxHP: 30, HP: 30, Defense: 2, Power: 17})
	w.Add(id, component.Renderable{
		Glyph:       '@',
		FGColor:     tcell.ColorYellow,
		BGColor:     tcell.ColorBlack,
		RenderOrder: orderPlayer,
	})
	w.Add(id, component.Viewshed{Range: viewRange, Dirty: true})
	w.Tag(id, component.TagPlayer|component.TagBlocksTile)
	return id
}

// Orc creates an orc at (x, y).
func Orc(w *ecs.World, x, y int) ecs.EntityID {
	return monster(w, x, y, 'o', "Orc")
}

// Goblin creates a goblin at (x, y).
func Goblin(w *ecs.World, x, y int) ecs.EntityID {
	return monster(w, x, y, 'g', "Goblin")
}

func monster(w *ecs.World, x, y int, glyph rune, name string) ecs.EntityID {
	id := w.CreateEntity()
	w.Add(id, component.Position{X: x, Y: y})
	w.Add(id, component.Name{Name: name})
	w.Add(id, component.CombatStats{MaxHP: 16, HP: 16, Defense: 1, Power: 2})
	w.Add(id, component.Renderable{
		Glyph:       glyph,
		FGColor:     tcell.ColorRed,
		BGColor:     tcell.ColorBlack,
		RenderOrder: orderMonster,
	})
	w.Add(id, component.Viewshed{Range: 8, Dirty: true})
	w.Tag(id, component.TagMonster|component.TagBlocksTile)
	return id
}

// HealthPotion creates a potion that restores 8 hp to its user.
func HealthPotion(w *ecs.World, x, y int) ecs.EntityID {
	id := item(w, x, y, '¡', "Health Potion", tcell.ColorFuchsia)
	w.Add(id, component.ProvidesHealing{Amount: 8})
	return id
}

// MagicMissileScroll creates a ranged single-target damage scroll.
func MagicMissileScroll(w *ecs.World, x, y int) ecs.EntityID {
	id := item(w, x, y, ')', "Scroll of Magic Missile", tcell.ColorAqua)
	w.Add(id, component.Ranged{Range: 6})
	w.Add(id, component.InflictDamage{Amount: 17})
	return id
}

// FireballScroll creates a ranged area-of-effect damage scroll.
func FireballScroll(w *ecs.World, x, y int) ecs.EntityID {
	id := item(w, x, y, ')', "Scroll of Fireball", tcell.ColorOrange)
	w.Add(id, component.Ranged{Range: 6})
	w.Add(id, component.InflictDamage{Amount: 20})
	w.Add(id, component.AreaOfEffect{Radius: 3})
	return id
}

func item(w *ecs.World, x, y int, glyph rune, name string, fg tcell.Color) ecs.EntityID {
	id := w.CreateEntity()
	w.Add(id, component.Position{X: x, Y: y})
	w.Add(id, component.Name{Name: name})
	w.Add(id, component.Renderable{
		Glyph:       glyph,
		FGColor:     fg,
		BGColor:     tcell.ColorBlack,
		RenderOrder: orderItem,
	})
	w.Tag(id, component.TagItem|component.TagConsumable)
	return id
}

// Spawner creates one entity at a position.
type Spawner func(w *ecs.World, x, y int) ecs.EntityID

var (
	monsterTable = []Spawner{Orc, Goblin}
	itemTable    = []Spawner{HealthPotion, FireballScroll, MagicMissileScroll}
)

// RandomMonster creates an orc or a goblin with equal odds.
func RandomMonster(w *ecs.World, x, y int, rng *rand.Rand) ecs.EntityID {
	return monsterTable[rng.Intn(len(monsterTable))](w, x, y)
}

// RandomItem creates one of the consumables with equal odds.
func RandomItem(w *ecs.World, x, y int, rng *rand.Rand) ecs.EntityID {
	return itemTable[rng.Intn(len(itemTable))](w, x, y)
}

// SpawnRoom fills room with random monsters and items and returns every
// entity it created.
func SpawnRoom(w *ecs.World, room gamemap.Rect, maxMonsters, maxItems int, rng *rand.Rand) []ecs.EntityID {
	spawns := generate.PopulateRoom(room, maxMonsters, maxItems, rng)
	ids := make([]ecs.EntityID, 0, len(spawns.Monsters)+len(spawns.Items))
	for _, p := range spawns.Monsters {
		ids = append(ids, RandomMonster(w, p.X, p.Y, rng))
	}
	for _, p := range spawns.Items {
		ids = append(ids, RandomItem(w, p.X, p.Y, rng))
	}
	return ids
}
