package generate

import "ascii-dungeon/internal/gamemap"

// carveCorridor digs a tunnel from (x1, y1) to (x2, y2) in the configured
// style. The tunnel is a chain of axis-aligned legs through waypoints; an
// L-shaped tunnel picks its elbow at random.
func carveCorridor(gmap *gamemap.GameMap, x1, y1, x2, y2 int, cfg *Config) {
	digPath(gmap, corridorPath(x1, y1, x2, y2, cfg))
}

// corridorPath returns the waypoints of a tunnel, start and end included.
func corridorPath(x1, y1, x2, y2 int, cfg *Config) []gamemap.Point {
	from, to := gamemap.Point{X: x1, Y: y1}, gamemap.Point{X: x2, Y: y2}
	switch cfg.CorridorStyle {
	case CorridorZShaped:
		midY := (y1 + y2) / 2
		return []gamemap.Point{from, {X: x1, Y: midY}, {X: x2, Y: midY}, to}
	case CorridorStraight:
		return []gamemap.Point{from, {X: x2, Y: y1}, to}
	}
	if cfg.Rand.Intn(2) == 0 {
		return []gamemap.Point{from, {X: x2, Y: y1}, to}
	}
	return []gamemap.Point{from, {X: x1, Y: y2}, to}
}

// digPath floors every leg between consecutive waypoints.
func digPath(gmap *gamemap.GameMap, path []gamemap.Point) {
	for i := 1; i < len(path); i++ {
		digLeg(gmap, path[i-1], path[i])
	}
}

// digLeg floors the tiles of an axis-aligned segment, skipping the map
// border. Diagonal segments are not supported and dig nothing.
func digLeg(gmap *gamemap.GameMap, a, b gamemap.Point) {
	if a.X != b.X && a.Y != b.Y {
		return
	}
	dx, dy := sign(b.X-a.X), sign(b.Y-a.Y)
	for p := a; ; p.X, p.Y = p.X+dx, p.Y+dy {
		if gmap.Interior(p.X, p.Y) {
			gmap.Set(p.X, p.Y, gamemap.MakeFloor())
		}
		if p == b {
			return
		}
	}
}

func carveH(gmap *gamemap.GameMap, x1, x2, y int) {
	digLeg(gmap, gamemap.Point{X: x1, Y: y}, gamemap.Point{X: x2, Y: y})
}

func carveV(gmap *gamemap.GameMap, y1, y2, x int) {
	digLeg(gmap, gamemap.Point{X: x, Y: y1}, gamemap.Point{X: x, Y: y2})
}

// carveZShaped runs vertical, horizontal, vertical with the elbow row halfway
// between the endpoints.
func carveZShaped(gmap *gamemap.GameMap, x1, y1, x2, y2 int) {
	digPath(gmap, corridorPath(x1, y1, x2, y2, &Config{CorridorStyle: CorridorZShaped}))
}

func sign(v int) int {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	}
	return 0
}
