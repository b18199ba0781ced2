// ascii-dungeon runs the dungeon in the local terminal.
//
//	go run . [--seed N] [--width 80] [--height 50] [--log debug.log]
package main

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"ascii-dungeon/internal/game"

	"github.com/gdamore/tcell/v2"
)

func main() {
	cfg := game.DefaultConfig()
	flag.Int64Var(&cfg.Seed, "seed", cfg.Seed, "Dungeon seed (defaults to the clock)")
	flag.IntVar(&cfg.MapWidth, "width", cfg.MapWidth, "Map width in tiles")
	flag.IntVar(&cfg.MapHeight, "height", cfg.MapHeight, "Map height in tiles")
	logPath := flag.String("log", "", "Write debug logs to this file (stdout is the screen)")
	flag.Parse()

	if err := run(cfg, *logPath); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(cfg game.Config, logPath string) error {
	var out io.Writer = io.Discard
	if logPath != "" {
		f, err := os.Create(logPath)
		if err != nil {
			return fmt.Errorf("open log: %w", err)
		}
		defer f.Close()
		out = f
	}
	logger := slog.New(slog.NewTextHandler(out, &slog.HandlerOptions{Level: slog.LevelDebug}))

	g, err := game.New(cfg, logger)
	if err != nil {
		return err
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	defer screen.Fini()

	g.Play(screen)
	return nil
}
