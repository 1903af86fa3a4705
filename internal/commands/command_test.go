package commands

import (
	"errors"
	"testing"

	"ticklist/internal/model"
)

func TestParseAdd(t *testing.T) {
	cmd, err := Parse("add Buy milk")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if cmd.Type != TypeAdd || cmd.Add.Title != "Buy milk" || cmd.Add.Priority != model.PriorityMedium {
		t.Fatalf("unexpected command: %#v", cmd.Add)
	}
}

func TestParseAddPriorityFlag(t *testing.T) {
	cases := []struct {
		input string
		title string
		want  model.Priority
	}{
		{"add Walk dog !high", "Walk dog", model.PriorityHigh},
		{"add File taxes !low", "File taxes", model.PriorityLow},
		{"add Review notes !med", "Review notes", model.PriorityMedium},
		{":add Shout !HIGH", "Shout", model.PriorityHigh},
	}
	for _, tc := range cases {
		cmd, err := Parse(tc.input)
		if err != nil {
			t.Fatalf("parse %q: %v", tc.input, err)
		}
		if cmd.Add.Title != tc.title || cmd.Add.Priority != tc.want {
			t.Fatalf("parse %q: got %#v", tc.input, cmd.Add)
		}
	}
}

func TestParseAddRequiresTitle(t *testing.T) {
	for _, input := range []string{"add", "add !high", "add    "} {
		_, err := Parse(input)
		var cmdErr *CommandError
		if !errors.As(err, &cmdErr) || cmdErr.Code != ErrCodeInvalidArgument {
			t.Fatalf("parse %q: expected invalid_argument, got %v", input, err)
		}
	}
}

func TestParseFilter(t *testing.T) {
	cmd, err := Parse("filter pending")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if cmd.Filter.Filter != model.FilterPending {
		t.Fatalf("unexpected filter: %#v", cmd.Filter)
	}
	if cmd, _ = Parse("filter done"); cmd.Filter.Filter != model.FilterCompleted {
		t.Fatal("done must alias completed")
	}
	if _, err := Parse("filter sideways"); err == nil {
		t.Fatal("expected error for unknown filter")
	}
}

func TestParseSearchAndBareCommands(t *testing.T) {
	cmd, err := Parse("search warm milk")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if cmd.Search.Query != "warm milk" {
		t.Fatalf("unexpected query: %q", cmd.Search.Query)
	}

	// Bare search clears the query.
	cmd, err = Parse("search")
	if err != nil || cmd.Search.Query != "" {
		t.Fatalf("bare search must parse with empty query, got %#v (%v)", cmd.Search, err)
	}

	for _, input := range []string{"sort", "theme", "undo"} {
		if _, err := Parse(input); err != nil {
			t.Fatalf("parse %q: %v", input, err)
		}
	}
}

func TestParseRejectsEmptyAndUnknown(t *testing.T) {
	_, err := Parse("   ")
	var cmdErr *CommandError
	if !errors.As(err, &cmdErr) || cmdErr.Code != ErrCodeEmptyInput {
		t.Fatalf("expected empty_input, got %v", err)
	}

	_, err = Parse("launch missiles")
	if !errors.As(err, &cmdErr) || cmdErr.Code != ErrCodeUnknownCommand {
		t.Fatalf("expected unknown_command, got %v", err)
	}
}

func TestExecuteDispatches(t *testing.T) {
	cmd, err := Parse("add Buy milk !high")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	var got AddArgs
	res, err := Execute(cmd, Handlers{
		Add: func(a AddArgs) (Result, error) {
			got = a
			return Result{Message: "added"}, nil
		},
	})
	if err != nil {
		t.Fatalf("execute: %v", err)
	}
	if res.Message != "added" || got.Title != "Buy milk" || got.Priority != model.PriorityHigh {
		t.Fatalf("handler saw wrong args: %#v", got)
	}
}

func TestExecuteMissingHandler(t *testing.T) {
	cmd, err := Parse("undo")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	_, err = Execute(cmd, Handlers{})
	var cmdErr *CommandError
	if !errors.As(err, &cmdErr) || cmdErr.Code != ErrCodeHandlerMissing {
		t.Fatalf("expected handler_missing, got %v", err)
	}
}
