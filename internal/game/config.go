package game

import (
	"errors"
	"fmt"
	"time"
)

// Config holds everything needed to build a new run.
type Config struct {
	Seed int64

	MapWidth, MapHeight int
	MaxRooms            int
	MinRoomSize         int
	MaxRoomSize         int

	ViewRange          int
	MaxMonstersPerRoom int
	MaxItemsPerRoom    int
}

// DefaultConfig returns the standard 80×50 dungeon seeded from the clock.
func DefaultConfig() Config {
	return Config{
		Seed:               time.Now().UnixNano(),
		MapWidth:           80,
		MapHeight:          50,
		MaxRooms:           30,
		MinRoomSize:        6,
		MaxRoomSize:        10,
		ViewRange:          8,
		MaxMonstersPerRoom: 4,
		MaxItemsPerRoom:    2,
	}
}

// ErrInvalidConfig is wrapped by every Validate failure.
var ErrInvalidConfig = errors.New("invalid config")

// Validate reports the first setting that cannot produce a playable map.
func (c Config) Validate() error {
	switch {
	case c.MinRoomSize < 1 || c.MaxRoomSize < c.MinRoomSize:
		return fmt.Errorf("room size %d..%d: %w", c.MinRoomSize, c.MaxRoomSize, ErrInvalidConfig)
	case c.MapWidth < c.MaxRoomSize+3 || c.MapHeight < c.MaxRoomSize+3:
		return fmt.Errorf("map %dx%d too small for rooms up to %d: %w", c.MapWidth, c.MapHeight, c.MaxRoomSize, ErrInvalidConfig)
	case c.MaxRooms < 1:
		return fmt.Errorf("max rooms %d: %w", c.MaxRooms, ErrInvalidConfig)
	case c.ViewRange < 1:
		return fmt.Errorf("view range %d: %w", c.ViewRange, ErrInvalidConfig)
	case c.MaxMonstersPerRoom < 0 || c.MaxItemsPerRoom < 0:
		return fmt.Errorf("negative spawn limits: %w", ErrInvalidConfig)
	}
	return nil
}
