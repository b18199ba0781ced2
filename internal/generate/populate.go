package generate

import (
	"math/rand"

	"ascii-dungeon/internal/gamemap"
)

// RoomSpawns holds the free tiles chosen for one room's monsters and items.
type RoomSpawns struct {
	Monsters []gamemap.Point
	Items    []gamemap.Point
}

// PopulateRoom rolls how many monsters and items room receives and picks a
// distinct floor tile for each. Each count is uniform in [-2, max] with
// negative rolls meaning none, so most rooms stay sparse.
func PopulateRoom(room gamemap.Rect, maxMonsters, maxItems int, rng *rand.Rand) RoomSpawns {
	var out RoomSpawns
	occupied := make(map[gamemap.Point]bool)

	monsters := rollCount(maxMonsters, rng)
	items := rollCount(maxItems, rng)
	capacity := (room.X2 - room.X1) * (room.Y2 - room.Y1)
	if monsters+items > capacity {
		return out
	}

	for range monsters {
		out.Monsters = append(out.Monsters, pickFreeInRoom(room, rng, occupied))
	}
	for range items {
		out.Items = append(out.Items, pickFreeInRoom(room, rng, occupied))
	}
	return out
}

func rollCount(maxCount int, rng *rand.Rand) int {
	return max(0, rng.Intn(maxCount+3)-2)
}

// pickFreeInRoom draws random floor tiles from room until it finds one not in
// occupied, then claims it. The caller guarantees room has a free tile.
func pickFreeInRoom(room gamemap.Rect, rng *rand.Rand, occupied map[gamemap.Point]bool) gamemap.Point {
	for {
		p := randomInRoom(room, rng)
		if !occupied[p] {
			occupied[p] = true
			return p
		}
	}
}

// randomInRoom returns a tile from the carved inside of room.
func randomInRoom(room gamemap.Rect, rng *rand.Rand) gamemap.Point {
	w := max(1, room.X2-room.X1)
	h := max(1, room.Y2-room.Y1)
	return gamemap.Point{
		X: room.X1 + 1 + rng.Intn(w),
		Y: room.Y1 + 1 + rng.Intn(h),
	}
}
