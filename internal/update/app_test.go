package update

import (
	"context"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"ticklist/internal/model"
	"ticklist/internal/store"
)

type memPersister struct {
	saved [][]model.Task
}

func (p *memPersister) LoadTasks(ctx context.Context) ([]model.Task, error) {
	return []model.Task{}, nil
}

func (p *memPersister) SaveTasks(ctx context.Context, tasks []model.Task) error {
	p.saved = append(p.saved, tasks)
	return nil
}

type memThemes struct {
	saved []int
}

func (p *memThemes) SaveThemeMode(ctx context.Context, mode int) error {
	p.saved = append(p.saved, mode)
	return nil
}

func newTestModel(t *testing.T) (Model, *memThemes) {
	t.Helper()
	st, err := store.New(context.Background(), &memPersister{})
	if err != nil {
		t.Fatalf("new store: %v", err)
	}
	themes := &memThemes{}
	return NewModel(st, themes, 0, DefaultRuntimeConfig()), themes
}

func keyRunes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func press(t *testing.T, m Model, msgs ...tea.Msg) Model {
	t.Helper()
	for _, msg := range msgs {
		updated, _ := m.Update(msg)
		m = updated.(Model)
	}
	return m
}

// pump refreshes the projection the way a delivered store event would.
func pump(t *testing.T, m Model) Model {
	t.Helper()
	return press(t, m, StoreEventMsg{Event: store.Event{Kind: store.EventTasksChanged}})
}

func TestNewModelDefaults(t *testing.T) {
	m, _ := newTestModel(t)
	if m.Mode != ModeBrowse {
		t.Fatalf("expected browse mode, got %q", m.Mode)
	}
	if m.Theme.Name != "dark" {
		t.Fatalf("expected dark theme for mode 0, got %q", m.Theme.Name)
	}
	if m.Keys.Quit != "q" || m.Keys.Palette != ":" {
		t.Fatalf("unexpected key map: %#v", m.Keys)
	}
}

func TestAddFlowCreatesTask(t *testing.T) {
	m, _ := newTestModel(t)
	m = press(t, m, keyRunes("a"))
	if m.Mode != ModeAdd {
		t.Fatalf("expected add mode, got %q", m.Mode)
	}
	m = press(t, m, keyRunes("Walk dog !high"), tea.KeyMsg{Type: tea.KeyEnter})
	if m.Mode != ModeBrowse {
		t.Fatalf("expected browse mode after enter, got %q", m.Mode)
	}

	snap := m.Store.Snapshot()
	if len(snap) != 1 || snap[0].Title != "Walk dog" || snap[0].Priority != model.PriorityHigh {
		t.Fatalf("unexpected collection after add: %#v", snap)
	}
}

func TestAddFlowRejectsBlankTitle(t *testing.T) {
	m, _ := newTestModel(t)
	m = press(t, m, keyRunes("a"), tea.KeyMsg{Type: tea.KeyEnter})
	if !m.Status.IsError || !strings.Contains(m.Status.Text, "empty") {
		t.Fatalf("expected inline validation error, got %#v", m.Status)
	}
	if m.Store.Len() != 0 {
		t.Fatal("blank title must never reach the store")
	}
}

func TestToggleDeleteUndoKeys(t *testing.T) {
	m, _ := newTestModel(t)
	ctx := context.Background()
	m.Store.AddTask(ctx, "Buy milk", model.PriorityMedium)
	m.Store.AddTask(ctx, "Walk dog", model.PriorityHigh)
	m = pump(t, m)

	// Cursor starts on the top visible row: Walk dog (High first).
	m = press(t, m, keyRunes(" "))
	m = pump(t, m)
	if snap := m.Store.Snapshot(); !snap[0].IsDone {
		t.Fatalf("expected Walk dog toggled done: %#v", snap)
	}

	m = press(t, m, keyRunes("d"))
	m = pump(t, m)
	if m.Store.Len() != 1 {
		t.Fatalf("expected one task after delete, got %d", m.Store.Len())
	}
	if !strings.Contains(m.Status.Text, "removed") {
		t.Fatalf("expected removal status, got %q", m.Status.Text)
	}

	m = press(t, m, keyRunes("u"))
	m = pump(t, m)
	if m.Store.Len() != 2 {
		t.Fatalf("expected undo to restore the task, got %d", m.Store.Len())
	}
}

func TestFilterSortKeys(t *testing.T) {
	m, _ := newTestModel(t)
	m = press(t, m, keyRunes("f"))
	if m.Store.Params().Filter != model.FilterPending {
		t.Fatalf("expected Pending after one cycle, got %v", m.Store.Params().Filter)
	}
	m = press(t, m, keyRunes("f"), keyRunes("f"))
	if m.Store.Params().Filter != model.FilterAll {
		t.Fatalf("expected filter cycle back to All, got %v", m.Store.Params().Filter)
	}

	before := m.Store.Params().Order
	m = press(t, m, keyRunes("o"))
	if m.Store.Params().Order != before.Toggle() {
		t.Fatal("expected sort order to flip")
	}
}

func TestSearchKeysDriveQuery(t *testing.T) {
	m, _ := newTestModel(t)
	ctx := context.Background()
	m.Store.AddTask(ctx, "Buy milk", model.PriorityMedium)
	m.Store.AddTask(ctx, "Walk dog", model.PriorityHigh)
	m = pump(t, m)

	m = press(t, m, keyRunes("/"), keyRunes("milk"))
	if m.Store.Params().Query != "milk" {
		t.Fatalf("expected live query, got %q", m.Store.Params().Query)
	}
	m = pump(t, m)
	visible := m.Store.Visible()
	if len(visible) != 1 || visible[0].Task.Title != "Buy milk" {
		t.Fatalf("unexpected search projection: %#v", visible)
	}

	// Esc leaves search mode and clears the query.
	m = press(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if m.Mode != ModeBrowse || m.Store.Params().Query != "" {
		t.Fatalf("expected cleared query in browse mode, got %q", m.Store.Params().Query)
	}
}

func TestPaletteCommands(t *testing.T) {
	m, _ := newTestModel(t)
	m = press(t, m, keyRunes(":"))
	if m.Mode != ModePalette {
		t.Fatalf("expected palette mode, got %q", m.Mode)
	}
	m = press(t, m, keyRunes("add Buy milk !low"), tea.KeyMsg{Type: tea.KeyEnter})
	if m.Store.Len() != 1 || m.Store.Snapshot()[0].Priority != model.PriorityLow {
		t.Fatalf("palette add failed: %#v", m.Store.Snapshot())
	}

	m = press(t, m, keyRunes(":"), keyRunes("filter pending"), tea.KeyMsg{Type: tea.KeyEnter})
	if m.Store.Params().Filter != model.FilterPending {
		t.Fatalf("palette filter failed: %v", m.Store.Params().Filter)
	}

	m = press(t, m, keyRunes(":"), keyRunes("launch missiles"), tea.KeyMsg{Type: tea.KeyEnter})
	if !m.Status.IsError {
		t.Fatal("unknown palette command must surface an error status")
	}
}

func TestSubTaskPaneKeys(t *testing.T) {
	m, _ := newTestModel(t)
	m.Store.AddTask(context.Background(), "trip", model.PriorityMedium)
	m = pump(t, m)

	m = press(t, m, tea.KeyMsg{Type: tea.KeyTab})
	if !m.PaneFocused {
		t.Fatal("expected pane focus after tab")
	}
	m = press(t, m, keyRunes("n"), keyRunes("book hotel"), tea.KeyMsg{Type: tea.KeyEnter})
	m = pump(t, m)
	subs := m.Store.Snapshot()[0].SubTasks
	if len(subs) != 1 || subs[0].Title != "book hotel" {
		t.Fatalf("unexpected sub-tasks: %#v", subs)
	}

	m = press(t, m, keyRunes(" "))
	m = pump(t, m)
	if !m.Store.Snapshot()[0].SubTasks[0].IsDone {
		t.Fatal("expected sub-task toggled in pane")
	}

	m = press(t, m, keyRunes("x"))
	m = pump(t, m)
	if len(m.Store.Snapshot()[0].SubTasks) != 0 {
		t.Fatal("expected sub-task removed")
	}
}

func TestThemeKeyCyclesAndPersists(t *testing.T) {
	m, themes := newTestModel(t)
	m = press(t, m, keyRunes("t"))
	if m.Theme.Mode != 1 || m.Theme.Name != "light" {
		t.Fatalf("expected light theme after cycle, got %#v", m.Theme)
	}
	if len(themes.saved) != 1 || themes.saved[0] != 1 {
		t.Fatalf("expected theme mode 1 persisted, got %#v", themes.saved)
	}
}

func TestSaveFailureSurfacesAsWarning(t *testing.T) {
	m, _ := newTestModel(t)
	m = press(t, m, StoreEventMsg{Event: store.Event{
		Kind:    store.EventTasksChanged,
		SaveErr: context.DeadlineExceeded,
	}})
	if !m.Status.IsError || !strings.Contains(m.Status.Text, "save failed") {
		t.Fatalf("expected save warning, got %#v", m.Status)
	}
}

func TestQuitKey(t *testing.T) {
	m, _ := newTestModel(t)
	updated, cmd := m.Update(keyRunes("q"))
	next := updated.(Model)
	if !next.Quitting || cmd == nil {
		t.Fatal("expected quit command")
	}
}
