package storage

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"ticklist/internal/model"
)

const (
	tasksKey = "tasks"
	themeKey = "theme_mode"
)

// Gateway maps the application's persisted state onto named slots: the
// whole task collection lives in one slot as a JSON array document, the
// theme mode in another as a bare ordinal.
type Gateway struct {
	kv KV
}

func NewGateway(kv KV) *Gateway {
	return &Gateway{kv: kv}
}

// LoadTasks reads the task slot. An absent slot is an empty collection. A
// slot that fails to decode is an error for the whole load; nothing is
// salvaged from a corrupt document.
func (g *Gateway) LoadTasks(ctx context.Context) ([]model.Task, error) {
	raw, err := g.kv.Get(ctx, tasksKey)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return []model.Task{}, nil
		}
		return nil, fmt.Errorf("load tasks: %w", err)
	}
	tasks, err := model.DecodeTasks([]byte(raw))
	if err != nil {
		return nil, fmt.Errorf("load tasks: %w", err)
	}
	return tasks, nil
}

// SaveTasks serializes the full collection and overwrites the task slot.
func (g *Gateway) SaveTasks(ctx context.Context, tasks []model.Task) error {
	payload, err := model.EncodeTasks(tasks)
	if err != nil {
		return fmt.Errorf("save tasks: %w", err)
	}
	if err := g.kv.Set(ctx, tasksKey, string(payload)); err != nil {
		return fmt.Errorf("save tasks: %w", err)
	}
	return nil
}

// LoadThemeMode returns the stored theme ordinal, or 0 when the slot is
// absent or holds something unexpected.
func (g *Gateway) LoadThemeMode(ctx context.Context) (int, error) {
	raw, err := g.kv.Get(ctx, themeKey)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return 0, nil
		}
		return 0, fmt.Errorf("load theme: %w", err)
	}
	mode, err := strconv.Atoi(raw)
	if err != nil || mode < 0 || mode > 2 {
		return 0, nil
	}
	return mode, nil
}

func (g *Gateway) SaveThemeMode(ctx context.Context, mode int) error {
	if err := g.kv.Set(ctx, themeKey, strconv.Itoa(mode)); err != nil {
		return fmt.Errorf("save theme: %w", err)
	}
	return nil
}
