package main

import (
	"context"
	"errors"
	"flag"
	"log/slog"
	"os"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/milk9111/wraith/arena"
	"github.com/milk9111/wraith/config"
	"github.com/milk9111/wraith/logger"
	"github.com/milk9111/wraith/prefabs"
	"github.com/milk9111/wraith/save"
)

func main() {
	cfg := config.Load()
	cfg.RegisterFlags(flag.CommandLine)
	arenaFile := flag.String("arena", arena.DefaultFile, "arena layout file in prefabs/")
	baseMonitor := flag.Bool("m", false, "use base monitor instead of primary (for multi-monitor setups)")
	flag.Parse()

	logger.Setup(cfg, os.Stderr)

	if err := run(cfg, *arenaFile, *baseMonitor); err != nil {
		slog.Error("game exited", "err", err)
		os.Exit(1)
	}
}

func run(cfg *config.Config, arenaFile string, baseMonitor bool) error {
	if cfg.PrefabDir != "" {
		prefabs.SetDiskRoot(cfg.PrefabDir)
	}
	tables, err := prefabs.LoadTables()
	if err != nil {
		return err
	}

	store, closeStore, err := save.Open(context.Background(), cfg)
	if err != nil {
		return err
	}
	defer closeStore()

	if baseMonitor {
		ebiten.SetMonitor(ebiten.AppendMonitors(nil)[0])
	}

	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowSize(baseWidth, baseHeight)
	ebiten.SetWindowTitle("wraith")

	game, err := NewGame(cfg, tables, arenaFile, store)
	if err != nil {
		return err
	}
	defer game.Close()

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		return err
	}
	return nil
}
