package commands

import "fmt"

type Result struct {
	Message string
}

type Handlers struct {
	Add    func(AddArgs) (Result, error)
	Toggle func(TargetArgs) (Result, error)
	Done   func(TargetArgs) (Result, error)
	Undone func(TargetArgs) (Result, error)
	Rename func(RenameArgs) (Result, error)
	Delete func(TargetArgs) (Result, error)
	Clear  func() (Result, error)
}

func Execute(cmd Command, handlers Handlers) (Result, error) {
	switch cmd.Type {
	case TypeAdd:
		if handlers.Add == nil {
			return Result{}, missing(cmd.Type)
		}
		if cmd.Add == nil {
			return Result{}, noArgs(cmd.Type)
		}
		return handlers.Add(*cmd.Add)
	case TypeToggle:
		return runTarget(cmd, handlers.Toggle)
	case TypeDone:
		return runTarget(cmd, handlers.Done)
	case TypeUndone:
		return runTarget(cmd, handlers.Undone)
	case TypeDelete:
		return runTarget(cmd, handlers.Delete)
	case TypeRename:
		if handlers.Rename == nil {
			return Result{}, missing(cmd.Type)
		}
		if cmd.Rename == nil {
			return Result{}, noArgs(cmd.Type)
		}
		return handlers.Rename(*cmd.Rename)
	case TypeClear:
		if handlers.Clear == nil {
			return Result{}, missing(cmd.Type)
		}
		return handlers.Clear()
	default:
		return Result{}, &CommandError{Code: ErrCodeUnknownCommand, Message: fmt.Sprintf("unknown command type: %s", cmd.Type)}
	}
}

func runTarget(cmd Command, fn func(TargetArgs) (Result, error)) (Result, error) {
	if fn == nil {
		return Result{}, missing(cmd.Type)
	}
	if cmd.Target == nil {
		return Result{}, noArgs(cmd.Type)
	}
	return fn(*cmd.Target)
}

func missing(t Type) error {
	return &CommandError{Code: ErrCodeHandlerMissing, Message: fmt.Sprintf("%s handler not configured", t)}
}

func noArgs(t Type) error {
	return &CommandError{Code: ErrCodeInvalidArgument, Message: fmt.Sprintf("%s has no arguments", t)}
}
