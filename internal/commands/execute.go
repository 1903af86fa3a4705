package commands

import "fmt"

type Result struct {
	Message string
}

type Handlers struct {
	Add    func(AddArgs) (Result, error)
	Filter func(FilterArgs) (Result, error)
	Search func(SearchArgs) (Result, error)
	Sort   func() (Result, error)
	Theme  func() (Result, error)
	Undo   func() (Result, error)
}

func Execute(cmd Command, handlers Handlers) (Result, error) {
	switch cmd.Type {
	case TypeAdd:
		if handlers.Add == nil {
			return Result{}, &CommandError{Code: ErrCodeHandlerMissing, Message: "add handler not configured"}
		}
		return handlers.Add(*cmd.Add)
	case TypeFilter:
		if handlers.Filter == nil {
			return Result{}, &CommandError{Code: ErrCodeHandlerMissing, Message: "filter handler not configured"}
		}
		return handlers.Filter(*cmd.Filter)
	case TypeSearch:
		if handlers.Search == nil {
			return Result{}, &CommandError{Code: ErrCodeHandlerMissing, Message: "search handler not configured"}
		}
		return handlers.Search(*cmd.Search)
	case TypeSort:
		if handlers.Sort == nil {
			return Result{}, &CommandError{Code: ErrCodeHandlerMissing, Message: "sort handler not configured"}
		}
		return handlers.Sort()
	case TypeTheme:
		if handlers.Theme == nil {
			return Result{}, &CommandError{Code: ErrCodeHandlerMissing, Message: "theme handler not configured"}
		}
		return handlers.Theme()
	case TypeUndo:
		if handlers.Undo == nil {
			return Result{}, &CommandError{Code: ErrCodeHandlerMissing, Message: "undo handler not configured"}
		}
		return handlers.Undo()
	default:
		return Result{}, &CommandError{Code: ErrCodeUnknownCommand, Message: fmt.Sprintf("unknown command type: %s", cmd.Type)}
	}
}
