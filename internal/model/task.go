package model

import (
	"errors"
	"strings"

	"github.com/google/uuid"
)

var (
	ErrInvalidPriority = errors.New("model: invalid task priority")
	ErrInvalidFilter   = errors.New("model: invalid filter")
)

// Priority ordinals are part of the persisted format; do not reorder.
type Priority int

const (
	PriorityLow Priority = iota
	PriorityMedium
	PriorityHigh
)

func (p Priority) IsValid() bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh:
		return true
	default:
		return false
	}
}

func (p Priority) String() string {
	switch p {
	case PriorityLow:
		return "Low"
	case PriorityMedium:
		return "Medium"
	case PriorityHigh:
		return "High"
	default:
		return "Unknown"
	}
}

type Filter string

const (
	FilterAll       Filter = "All"
	FilterPending   Filter = "Pending"
	FilterCompleted Filter = "Completed"
)

func (f Filter) IsValid() bool {
	switch f {
	case FilterAll, FilterPending, FilterCompleted:
		return true
	default:
		return false
	}
}

func (f Filter) Matches(t Task) bool {
	switch f {
	case FilterPending:
		return !t.IsDone
	case FilterCompleted:
		return t.IsDone
	default:
		return true
	}
}

type SubTask struct {
	Title  string
	IsDone bool
}

// Task identity is the opaque ID, assigned once at creation. A task's
// position in the canonical collection is not part of the task itself.
type Task struct {
	ID       string
	Title    string
	IsDone   bool
	Priority Priority
	SubTasks []SubTask
}

func NewTask(title string, priority Priority) Task {
	if !priority.IsValid() {
		priority = PriorityMedium
	}
	return Task{
		ID:       uuid.NewString(),
		Title:    title,
		Priority: priority,
	}
}

func (t Task) Validate() error {
	if strings.TrimSpace(t.ID) == "" {
		return errors.New("model: task id is required")
	}
	if strings.TrimSpace(t.Title) == "" {
		return errors.New("model: task title is required")
	}
	if !t.Priority.IsValid() {
		return ErrInvalidPriority
	}
	return nil
}

// Clone returns a copy sharing no sub-task backing array with t.
func (t Task) Clone() Task {
	out := t
	if t.SubTasks != nil {
		out.SubTasks = make([]SubTask, len(t.SubTasks))
		copy(out.SubTasks, t.SubTasks)
	}
	return out
}

func CloneTasks(tasks []Task) []Task {
	out := make([]Task, len(tasks))
	for i, t := range tasks {
		out[i] = t.Clone()
	}
	return out
}
