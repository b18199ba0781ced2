package generate

import "math/rand"

// CorridorStyle selects the shape of connecting tunnels.
type CorridorStyle uint8

const (
	CorridorLShaped CorridorStyle = iota
	CorridorZShaped
	CorridorStraight
)

// Config drives generation of one dungeon level.
type Config struct {
	MapWidth, MapHeight int
	MaxRooms            int
	MinRoomSize         int
	MaxRoomSize         int
	CorridorStyle       CorridorStyle
	Rand                *rand.Rand
}

// DefaultConfig returns the classic 80×50 rooms-and-corridors layout.
func DefaultConfig(rng *rand.Rand) *Config {
	return &Config{
		MapWidth:    80,
		MapHeight:   50,
		MaxRooms:    30,
		MinRoomSize: 6,
		MaxRoomSize: 10,
		Rand:        rng,
	}
}
