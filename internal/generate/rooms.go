package generate

import "ascii-dungeon/internal/gamemap"

// Generate builds a level by dropping up to cfg.MaxRooms random rectangles,
// discarding any that overlap an earlier room, and joining each new room to
// the previous one with a corridor. The map border is never carved.
//
// The first room in gmap.Rooms is where the player starts.
func Generate(cfg *Config) *gamemap.GameMap {
	gmap := gamemap.New(cfg.MapWidth, cfg.MapHeight)
	for range cfg.MaxRooms {
		w := cfg.MinRoomSize + cfg.Rand.Intn(cfg.MaxRoomSize-cfg.MinRoomSize+1)
		h := cfg.MinRoomSize + cfg.Rand.Intn(cfg.MaxRoomSize-cfg.MinRoomSize+1)
		if w+2 >= cfg.MapWidth || h+2 >= cfg.MapHeight {
			continue
		}
		x := cfg.Rand.Intn(cfg.MapWidth - w - 1)
		y := cfg.Rand.Intn(cfg.MapHeight - h - 1)
		room := gamemap.NewRect(x, y, w, h)

		if overlapsAny(room, gmap.Rooms) {
			continue
		}
		carveRoom(gmap, room)
		if n := len(gmap.Rooms); n > 0 {
			px, py := gmap.Rooms[n-1].Center()
			nx, ny := room.Center()
			carveCorridor(gmap, px, py, nx, ny, cfg)
		}
		gmap.Rooms = append(gmap.Rooms, room)
	}
	return gmap
}

func overlapsAny(room gamemap.Rect, rooms []gamemap.Rect) bool {
	for _, other := range rooms {
		if room.Intersects(other) {
			return true
		}
	}
	return false
}

// carveRoom opens the inside of room, leaving its outline as wall.
func carveRoom(gmap *gamemap.GameMap, room gamemap.Rect) {
	for y := room.Y1 + 1; y <= room.Y2; y++ {
		for x := room.X1 + 1; x <= room.X2; x++ {
			if gmap.Interior(x, y) {
				gmap.Set(x, y, gamemap.MakeFloor())
			}
		}
	}
}
