package model

import (
	"errors"
	"testing"
)

func TestNewTaskAssignsID(t *testing.T) {
	a := NewTask("Buy milk", PriorityMedium)
	b := NewTask("Buy milk", PriorityMedium)
	if a.ID == "" || b.ID == "" {
		t.Fatal("expected non-empty ids")
	}
	if a.ID == b.ID {
		t.Fatalf("expected distinct ids, got %q twice", a.ID)
	}
	if a.IsDone {
		t.Fatal("new task must start pending")
	}
}

func TestNewTaskInvalidPriorityFallsBackToMedium(t *testing.T) {
	task := NewTask("Buy milk", Priority(42))
	if task.Priority != PriorityMedium {
		t.Fatalf("expected Medium fallback, got %v", task.Priority)
	}
}

func TestPriorityOrdinalsAndNames(t *testing.T) {
	if int(PriorityLow) != 0 || int(PriorityMedium) != 1 || int(PriorityHigh) != 2 {
		t.Fatalf("priority ordinals drifted: %d %d %d", PriorityLow, PriorityMedium, PriorityHigh)
	}
	if PriorityHigh.String() != "High" || Priority(9).String() != "Unknown" {
		t.Fatal("unexpected priority names")
	}
	if Priority(-1).IsValid() || Priority(3).IsValid() {
		t.Fatal("out-of-range priority must be invalid")
	}
}

func TestFilterMatches(t *testing.T) {
	pending := Task{ID: "a", Title: "open"}
	done := Task{ID: "b", Title: "closed", IsDone: true}

	if !FilterAll.Matches(pending) || !FilterAll.Matches(done) {
		t.Fatal("All must match everything")
	}
	if !FilterPending.Matches(pending) || FilterPending.Matches(done) {
		t.Fatal("Pending must match only open tasks")
	}
	if FilterCompleted.Matches(pending) || !FilterCompleted.Matches(done) {
		t.Fatal("Completed must match only done tasks")
	}
	if Filter("Bogus").IsValid() {
		t.Fatal("unknown filter must be invalid")
	}
}

func TestTaskValidate(t *testing.T) {
	task := NewTask("Walk dog", PriorityHigh)
	if err := task.Validate(); err != nil {
		t.Fatalf("expected valid task, got: %v", err)
	}

	task.Title = "   "
	if err := task.Validate(); err == nil {
		t.Fatal("expected error for blank title")
	}

	task.Title = "Walk dog"
	task.Priority = Priority(7)
	err := task.Validate()
	if err == nil || !errors.Is(err, ErrInvalidPriority) {
		t.Fatalf("expected ErrInvalidPriority, got: %v", err)
	}

	task.Priority = PriorityLow
	task.ID = ""
	if err := task.Validate(); err == nil {
		t.Fatal("expected error for missing id")
	}
}

func TestCloneSharesNothing(t *testing.T) {
	task := NewTask("Pack bags", PriorityLow)
	task.SubTasks = []SubTask{{Title: "passport"}, {Title: "charger"}}

	clone := task.Clone()
	clone.SubTasks[0].IsDone = true
	if task.SubTasks[0].IsDone {
		t.Fatal("clone mutated the original sub-task list")
	}

	all := CloneTasks([]Task{task})
	all[0].SubTasks[1].Title = "adapter"
	if task.SubTasks[1].Title != "charger" {
		t.Fatal("CloneTasks mutated the original")
	}
}
