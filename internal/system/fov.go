package system

import "ascii-dungeon/internal/gamemap"

// octant transform matrices.
// For each octant, a (dx, dy) sweep pair maps to a world offset via:
//
//	worldX = cx + dx*xx + dy*xy
//	worldY = cy + dx*yx + dy*yy
//
// where dx sweeps horizontally within the row and dy is the fixed row index.
var octants = [8][4]int{
	{1, 0, 0, 1},
	{0, 1, 1, 0},
	{0, -1, 1, 0},
	{-1, 0, 0, 1},
	{-1, 0, 0, -1},
	{0, -1, -1, 0},
	{0, 1, -1, 0},
	{1, 0, 0, -1},
}

// FieldOfView returns every in-bounds tile visible from origin within radius,
// using recursive shadowcasting. Each tile appears once; origin is always
// included when it is on the map.
func FieldOfView(gmap *gamemap.GameMap, origin gamemap.Point, radius int) []gamemap.Point {
	if !gmap.InBounds(origin.X, origin.Y) {
		return nil
	}
	seen := make(map[gamemap.Point]bool)
	out := []gamemap.Point{origin}
	seen[origin] = true
	visit := func(x, y int) {
		p := gamemap.Point{X: x, Y: y}
		if !seen[p] {
			seen[p] = true
			out = append(out, p)
		}
	}
	for _, m := range octants {
		castLight(gmap, origin.X, origin.Y, 1, 1.0, 0.0, radius, m[0], m[1], m[2], m[3], visit)
	}
	return out
}

// castLight casts light for one octant using recursive shadowcasting.
//   - j is the current row (distance from origin along the main axis)
//   - dy = -j is fixed for the entire inner sweep
//   - dx sweeps from -j to 0
//   - lSlope = (dx - 0.5) / (dy + 0.5)   rSlope = (dx + 0.5) / (dy - 0.5)
func castLight(gmap *gamemap.GameMap, cx, cy, row int, start, end float64, radius, xx, xy, yx, yy int, visit func(x, y int)) {
	if start < end {
		return
	}
	radiusSq := float64(radius * radius)
	newStart := start

	for j := row; j <= radius; j++ {
		dy := -j
		blocked := false

		for dx := -j; dx <= 0; dx++ {
			wx := cx + dx*xx + dy*xy
			wy := cy + dx*yx + dy*yy

			lSlope := (float64(dx) - 0.5) / (float64(dy) + 0.5)
			rSlope := (float64(dx) + 0.5) / (float64(dy) - 0.5)

			if start < rSlope {
				continue
			}
			if end > lSlope {
				break
			}

			if float64(dx*dx+dy*dy) < radiusSq && gmap.InBounds(wx, wy) {
				visit(wx, wy)
			}

			opaque := !gmap.IsTransparent(wx, wy)

			if blocked {
				if opaque {
					newStart = rSlope
				} else {
					blocked = false
					start = newStart
				}
			} else if opaque && j < radius {
				blocked = true
				castLight(gmap, cx, cy, j+1, start, lSlope, radius, xx, xy, yx, yy, visit)
				newStart = rSlope
			}
		}
		if blocked {
			break
		}
	}
}
