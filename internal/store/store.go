// Package store owns the canonical task collection. Every collection
// mutation persists the whole collection before returning and then notifies
// subscribers; view-parameter changes notify without persisting. The
// in-memory state is authoritative for the running session: a failed
// durable write is surfaced on the event, never rolled back.
package store

import (
	"context"
	"sync"
	"sync/atomic"

	"ticklist/internal/model"
	"ticklist/internal/project"
)

type EventKind string

const (
	EventTasksChanged EventKind = "tasks_changed"
	EventViewChanged  EventKind = "view_changed"
)

// Event is what subscribers receive after a change. SaveErr carries the
// durable-write failure for the mutation that produced the event, if any.
type Event struct {
	Kind    EventKind
	SaveErr error
}

// Persister is the slice of the persistence gateway the store needs.
type Persister interface {
	LoadTasks(ctx context.Context) ([]model.Task, error)
	SaveTasks(ctx context.Context, tasks []model.Task) error
}

type deletedEntry struct {
	task  model.Task
	index int
}

type Store struct {
	mu        sync.Mutex
	persister Persister
	tasks     []model.Task
	params    project.Params
	lastGone  *deletedEntry
	subs      []chan Event
	dropped   uint64
}

// New loads the persisted collection and returns a ready store. A decode
// failure on the task slot is fatal here; an absent slot is not.
func New(ctx context.Context, p Persister) (*Store, error) {
	tasks, err := p.LoadTasks(ctx)
	if err != nil {
		return nil, err
	}
	return &Store{
		persister: p,
		tasks:     tasks,
		params:    project.DefaultParams(),
	}, nil
}

// Subscribe registers a buffered event channel. Events are delivered
// best-effort: a subscriber that cannot keep up loses events rather than
// blocking the mutator.
func (s *Store) Subscribe(buffer int) <-chan Event {
	if buffer <= 0 {
		buffer = 1
	}
	ch := make(chan Event, buffer)
	s.mu.Lock()
	s.subs = append(s.subs, ch)
	s.mu.Unlock()
	return ch
}

// Close closes all subscriber channels.
func (s *Store) Close() {
	s.mu.Lock()
	subs := s.subs
	s.subs = nil
	s.mu.Unlock()
	for _, ch := range subs {
		close(ch)
	}
}

func (s *Store) Dropped() uint64 {
	return atomic.LoadUint64(&s.dropped)
}

// Snapshot returns a copy of the canonical collection.
func (s *Store) Snapshot() []model.Task {
	s.mu.Lock()
	defer s.mu.Unlock()
	return model.CloneTasks(s.tasks)
}

func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.tasks)
}

func (s *Store) Params() project.Params {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.params
}

// Visible projects the canonical collection through the current view
// parameters.
func (s *Store) Visible() []project.Entry {
	s.mu.Lock()
	tasks := model.CloneTasks(s.tasks)
	params := s.params
	s.mu.Unlock()
	return project.Project(tasks, params)
}

// AddTask inserts a new task at canonical index 0 and returns it.
func (s *Store) AddTask(ctx context.Context, title string, priority model.Priority) model.Task {
	task := model.NewTask(title, priority)
	s.mu.Lock()
	s.tasks = append([]model.Task{task}, s.tasks...)
	saveErr := s.persistLocked(ctx)
	s.mu.Unlock()
	s.notify(Event{Kind: EventTasksChanged, SaveErr: saveErr})
	return task
}

// UpdateTask rewrites title and priority in place. Out-of-range indices are
// ignored: indices come from possibly stale rendering snapshots, and a
// stale index must never crash the engine.
func (s *Store) UpdateTask(ctx context.Context, index int, title string, priority model.Priority) {
	if !priority.IsValid() {
		priority = model.PriorityMedium
	}
	s.mu.Lock()
	if index < 0 || index >= len(s.tasks) {
		s.mu.Unlock()
		return
	}
	s.tasks[index].Title = title
	s.tasks[index].Priority = priority
	saveErr := s.persistLocked(ctx)
	s.mu.Unlock()
	s.notify(Event{Kind: EventTasksChanged, SaveErr: saveErr})
}

// ToggleTask flips the completion state at the given canonical index.
func (s *Store) ToggleTask(ctx context.Context, index int) {
	s.mu.Lock()
	if index < 0 || index >= len(s.tasks) {
		s.mu.Unlock()
		return
	}
	s.tasks[index].IsDone = !s.tasks[index].IsDone
	saveErr := s.persistLocked(ctx)
	s.mu.Unlock()
	s.notify(Event{Kind: EventTasksChanged, SaveErr: saveErr})
}

// DeleteTask removes and returns the task at the given canonical index,
// arming the single-slot undo buffer. The second return is false when the
// index was out of range and nothing happened.
func (s *Store) DeleteTask(ctx context.Context, index int) (model.Task, bool) {
	s.mu.Lock()
	if index < 0 || index >= len(s.tasks) {
		s.mu.Unlock()
		return model.Task{}, false
	}
	removed := s.tasks[index]
	s.tasks = append(s.tasks[:index], s.tasks[index+1:]...)
	s.lastGone = &deletedEntry{task: removed, index: index}
	saveErr := s.persistLocked(ctx)
	s.mu.Unlock()
	s.notify(Event{Kind: EventTasksChanged, SaveErr: saveErr})
	return removed, true
}

// InsertTask places a task at the given canonical index; the index may
// equal the current length (append). Used to replay an undone delete.
func (s *Store) InsertTask(ctx context.Context, index int, task model.Task) {
	s.mu.Lock()
	if index < 0 || index > len(s.tasks) {
		s.mu.Unlock()
		return
	}
	s.tasks = append(s.tasks[:index], append([]model.Task{task}, s.tasks[index:]...)...)
	saveErr := s.persistLocked(ctx)
	s.mu.Unlock()
	s.notify(Event{Kind: EventTasksChanged, SaveErr: saveErr})
}

// Undo restores the most recently deleted task at its original canonical
// index, clamped to the current length if the collection shrank since. The
// buffer holds one entry and is consumed by the restore.
func (s *Store) Undo(ctx context.Context) (model.Task, bool) {
	s.mu.Lock()
	if s.lastGone == nil {
		s.mu.Unlock()
		return model.Task{}, false
	}
	entry := *s.lastGone
	s.lastGone = nil
	index := entry.index
	if index > len(s.tasks) {
		index = len(s.tasks)
	}
	s.tasks = append(s.tasks[:index], append([]model.Task{entry.task}, s.tasks[index:]...)...)
	saveErr := s.persistLocked(ctx)
	s.mu.Unlock()
	s.notify(Event{Kind: EventTasksChanged, SaveErr: saveErr})
	return entry.task, true
}

// AddSubTask appends a sub-task to the task at taskIndex.
func (s *Store) AddSubTask(ctx context.Context, taskIndex int, title string) {
	s.mu.Lock()
	if taskIndex < 0 || taskIndex >= len(s.tasks) {
		s.mu.Unlock()
		return
	}
	s.tasks[taskIndex].SubTasks = append(s.tasks[taskIndex].SubTasks, model.SubTask{Title: title})
	saveErr := s.persistLocked(ctx)
	s.mu.Unlock()
	s.notify(Event{Kind: EventTasksChanged, SaveErr: saveErr})
}

// ToggleSubTask flips a sub-task's completion state.
func (s *Store) ToggleSubTask(ctx context.Context, taskIndex, subIndex int) {
	s.mu.Lock()
	if taskIndex < 0 || taskIndex >= len(s.tasks) {
		s.mu.Unlock()
		return
	}
	subs := s.tasks[taskIndex].SubTasks
	if subIndex < 0 || subIndex >= len(subs) {
		s.mu.Unlock()
		return
	}
	subs[subIndex].IsDone = !subs[subIndex].IsDone
	saveErr := s.persistLocked(ctx)
	s.mu.Unlock()
	s.notify(Event{Kind: EventTasksChanged, SaveErr: saveErr})
}

// RemoveSubTask deletes a sub-task.
func (s *Store) RemoveSubTask(ctx context.Context, taskIndex, subIndex int) {
	s.mu.Lock()
	if taskIndex < 0 || taskIndex >= len(s.tasks) {
		s.mu.Unlock()
		return
	}
	subs := s.tasks[taskIndex].SubTasks
	if subIndex < 0 || subIndex >= len(subs) {
		s.mu.Unlock()
		return
	}
	s.tasks[taskIndex].SubTasks = append(subs[:subIndex], subs[subIndex+1:]...)
	saveErr := s.persistLocked(ctx)
	s.mu.Unlock()
	s.notify(Event{Kind: EventTasksChanged, SaveErr: saveErr})
}

// SetFilter switches the active filter. Unknown filters are ignored.
func (s *Store) SetFilter(f model.Filter) {
	if !f.IsValid() {
		return
	}
	s.mu.Lock()
	s.params.Filter = f
	s.mu.Unlock()
	s.notify(Event{Kind: EventViewChanged})
}

func (s *Store) SetSearchQuery(query string) {
	s.mu.Lock()
	s.params.Query = query
	s.mu.Unlock()
	s.notify(Event{Kind: EventViewChanged})
}

func (s *Store) ToggleSortOrder() {
	s.mu.Lock()
	s.params.Order = s.params.Order.Toggle()
	s.mu.Unlock()
	s.notify(Event{Kind: EventViewChanged})
}

func (s *Store) persistLocked(ctx context.Context) error {
	return s.persister.SaveTasks(ctx, model.CloneTasks(s.tasks))
}

func (s *Store) notify(ev Event) {
	s.mu.Lock()
	subs := append([]chan Event(nil), s.subs...)
	s.mu.Unlock()
	for _, ch := range subs {
		select {
		case ch <- ev:
		default:
			atomic.AddUint64(&s.dropped, 1)
		}
	}
}
