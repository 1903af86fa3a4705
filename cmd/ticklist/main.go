package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"

	"ticklist/internal/storage"
	"ticklist/internal/store"
	"ticklist/internal/update"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "ticklist failed: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg := update.RuntimeConfigFromEnv(update.DefaultRuntimeConfig())

	if dir := filepath.Dir(cfg.DBPath); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create data dir: %w", err)
		}
	}
	kv, err := storage.OpenSQLite(cfg.DBPath)
	if err != nil {
		return err
	}
	defer kv.Close()

	ctx := context.Background()
	gateway := storage.NewGateway(kv)

	// A malformed task slot is fatal here on purpose: better to stop and
	// let the user recover the database than to overwrite it on the next
	// mutation.
	st, err := store.New(ctx, gateway)
	if err != nil {
		return fmt.Errorf("%w (db: %s)", err, cfg.DBPath)
	}

	themeMode, err := gateway.LoadThemeMode(ctx)
	if err != nil {
		return err
	}

	program := tea.NewProgram(update.NewModel(st, gateway, themeMode, cfg))
	if _, err := program.Run(); err != nil {
		return err
	}
	return nil
}
