// Package game ties the world, the map, the log and the turn pipeline into a
// playable run, and advances it one run state at a time.
package game

import (
	"fmt"
	"log/slog"
	"math/rand"

	"ascii-dungeon/internal/component"
	"ascii-dungeon/internal/ecs"
	"ascii-dungeon/internal/factory"
	"ascii-dungeon/internal/gamelog"
	"ascii-dungeon/internal/gamemap"
	"ascii-dungeon/internal/generate"
	"ascii-dungeon/internal/runstate"
	"ascii-dungeon/internal/system"
)

// Game is the top-level orchestrator of one run.
type Game struct {
	world    *ecs.World
	gmap     *gamemap.GameMap
	log      *gamelog.Log
	playerID ecs.EntityID
	pipeline system.Pipeline
	logger   *slog.Logger
}

// New generates a dungeon from cfg, places the player in the first room and
// populates every other room.
func New(cfg Config, logger *slog.Logger) (*Game, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("new game: %w", err)
	}
	if logger == nil {
		logger = slog.Default()
	}
	rng := rand.New(rand.NewSource(cfg.Seed))

	gmap := generate.Generate(&generate.Config{
		MapWidth:    cfg.MapWidth,
		MapHeight:   cfg.MapHeight,
		MaxRooms:    cfg.MaxRooms,
		MinRoomSize: cfg.MinRoomSize,
		MaxRoomSize: cfg.MaxRoomSize,
		Rand:        rng,
	})
	if len(gmap.Rooms) == 0 {
		return nil, fmt.Errorf("new game: generator placed no rooms on a %dx%d map", cfg.MapWidth, cfg.MapHeight)
	}

	world := ecs.NewWorld()
	px, py := gmap.Rooms[0].Center()
	player := factory.NewPlayer(world, px, py, cfg.ViewRange)
	spawned := 0
	for _, room := range gmap.Rooms[1:] {
		spawned += len(factory.SpawnRoom(world, room, cfg.MaxMonstersPerRoom, cfg.MaxItemsPerRoom, rng))
	}
	logger.Info("dungeon generated",
		"seed", cfg.Seed, "rooms", len(gmap.Rooms), "spawned", spawned)

	return NewWithWorld(world, gmap, player, logger), nil
}

// NewWithWorld wraps an already-built world and map. The player entity must
// exist in world.
func NewWithWorld(world *ecs.World, gmap *gamemap.GameMap, player ecs.EntityID, logger *slog.Logger) *Game {
	if logger == nil {
		logger = slog.Default()
	}
	return &Game{
		world:    world,
		gmap:     gmap,
		log:      gamelog.New("Welcome to the dungeon"),
		playerID: player,
		pipeline: system.DefaultPipeline(),
		logger:   logger,
	}
}

func (g *Game) World() *ecs.World     { return g.world }
func (g *Game) Map() *gamemap.GameMap { return g.gmap }
func (g *Game) Log() *gamelog.Log     { return g.log }
func (g *Game) Player() ecs.EntityID  { return g.playerID }
func (g *Game) Logger() *slog.Logger  { return g.logger }
func (g *Game) Pipeline() []string    { return g.pipeline.Names() }

func (g *Game) playerPosition() gamemap.Point {
	pos, _ := g.world.Get(g.playerID, component.CPosition).(component.Position)
	return gamemap.Point{X: pos.X, Y: pos.Y}
}

// Dead reports whether the player has been reduced to zero hit points.
func (g *Game) Dead() bool {
	return g.world.HasTag(g.playerID, component.TagDeceased)
}

// runPipeline executes one full pass of every system, entered from st.
func (g *Game) runPipeline(st runstate.Kind) {
	g.pipeline.Run(&system.Pass{
		World:  g.world,
		Map:    g.gmap,
		Log:    g.log,
		Player: g.playerID,
		State:  st,
		Logger: g.logger,
	})
}
