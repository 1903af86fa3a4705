package commands

import (
	"fmt"
	"strings"

	"ticklist/internal/model"
)

type Type string

const (
	TypeAdd    Type = "add"
	TypeFilter Type = "filter"
	TypeSearch Type = "search"
	TypeSort   Type = "sort"
	TypeTheme  Type = "theme"
	TypeUndo   Type = "undo"
)

type ErrorCode string

const (
	ErrCodeEmptyInput      ErrorCode = "empty_input"
	ErrCodeUnknownCommand  ErrorCode = "unknown_command"
	ErrCodeInvalidArgument ErrorCode = "invalid_argument"
	ErrCodeHandlerMissing  ErrorCode = "handler_missing"
)

type CommandError struct {
	Code    ErrorCode
	Message string
}

func (e *CommandError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

type AddArgs struct {
	Title    string
	Priority model.Priority
}

type FilterArgs struct {
	Filter model.Filter
}

type SearchArgs struct {
	Query string
}

type Command struct {
	Type   Type
	Raw    string
	Add    *AddArgs
	Filter *FilterArgs
	Search *SearchArgs
}

// Parse turns raw palette input into a Command. A leading ":" (the palette
// trigger) is tolerated.
func Parse(input string) (Command, error) {
	raw := strings.TrimSpace(input)
	raw = strings.TrimSpace(strings.TrimPrefix(raw, ":"))
	if raw == "" {
		return Command{}, &CommandError{Code: ErrCodeEmptyInput, Message: "command is empty"}
	}

	parts := strings.Fields(raw)
	head := strings.ToLower(parts[0])
	args := parts[1:]

	switch Type(head) {
	case TypeAdd:
		return parseAdd(input, args)
	case TypeFilter:
		return parseFilter(input, args)
	case TypeSearch:
		return Command{Type: TypeSearch, Raw: input, Search: &SearchArgs{Query: strings.Join(args, " ")}}, nil
	case TypeSort:
		return Command{Type: TypeSort, Raw: input}, nil
	case TypeTheme:
		return Command{Type: TypeTheme, Raw: input}, nil
	case TypeUndo:
		return Command{Type: TypeUndo, Raw: input}, nil
	default:
		return Command{}, &CommandError{Code: ErrCodeUnknownCommand, Message: fmt.Sprintf("unsupported command: %s", head)}
	}
}

// parseAdd accepts an optional trailing priority flag: !low, !med, !medium,
// !high. Without a flag the task is Medium.
func parseAdd(raw string, args []string) (Command, error) {
	priority := model.PriorityMedium
	if n := len(args); n > 0 {
		if p, ok := priorityFlag(args[n-1]); ok {
			priority = p
			args = args[:n-1]
		}
	}
	title := strings.TrimSpace(strings.Join(args, " "))
	if title == "" {
		return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: "add requires a title"}
	}
	return Command{Type: TypeAdd, Raw: raw, Add: &AddArgs{Title: title, Priority: priority}}, nil
}

func parseFilter(raw string, args []string) (Command, error) {
	if len(args) == 0 {
		return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: "filter requires all, pending or completed"}
	}
	var filter model.Filter
	switch strings.ToLower(args[0]) {
	case "all":
		filter = model.FilterAll
	case "pending":
		filter = model.FilterPending
	case "completed", "done":
		filter = model.FilterCompleted
	default:
		return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: fmt.Sprintf("unknown filter: %s", args[0])}
	}
	return Command{Type: TypeFilter, Raw: raw, Filter: &FilterArgs{Filter: filter}}, nil
}

func priorityFlag(token string) (model.Priority, bool) {
	switch strings.ToLower(token) {
	case "!low":
		return model.PriorityLow, true
	case "!med", "!medium":
		return model.PriorityMedium, true
	case "!high":
		return model.PriorityHigh, true
	default:
		return model.PriorityMedium, false
	}
}
