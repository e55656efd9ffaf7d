package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"

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
	logFile := flag.String("log", "", "write logs to this file (the terminal belongs to the UI)")
	flag.Parse()

	var out io.Writer = io.Discard
	if *logFile != "" {
		f, err := os.OpenFile(*logFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		defer f.Close()
		out = f
	}
	logger.Setup(cfg, out)

	if err := run(cfg, *arenaFile); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(cfg *config.Config, arenaFile string) error {
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

	a, err := arena.Load(tables, arenaFile)
	if err != nil {
		return err
	}
	defer a.Close()
	if cfg.Watch {
		if err := a.Watch(prefabs.DiskRoot()); err != nil {
			return err
		}
	}

	p := tea.NewProgram(New(a, store), tea.WithAltScreen())
	_, err = p.Run()
	return err
}
