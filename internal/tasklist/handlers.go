package tasklist

import (
	"context"
	"fmt"

	"github.com/sandeepkv93/todod/internal/commands"
)

// Handlers binds the command vocabulary shared by the CLI and the command
// palette to this service.
func (s *Service) Handlers(ctx context.Context) commands.Handlers {
	setCompleted := func(completed bool, verb string) func(commands.TargetArgs) (commands.Result, error) {
		return func(a commands.TargetArgs) (commands.Result, error) {
			task, err := s.Resolve(ctx, a.Ref)
			if err != nil {
				return commands.Result{}, err
			}
			if err := s.SetCompleted(ctx, task.ID, completed); err != nil {
				return commands.Result{}, err
			}
			return commands.Result{Message: fmt.Sprintf("%s: %s", verb, task.Title)}, nil
		}
	}

	return commands.Handlers{
		Add: func(a commands.AddArgs) (commands.Result, error) {
			task, added, err := s.Add(ctx, a.Title)
			if err != nil {
				return commands.Result{}, err
			}
			if !added {
				return commands.Result{Message: "nothing to add"}, nil
			}
			return commands.Result{Message: fmt.Sprintf("added: %s", task.Title)}, nil
		},
		Toggle: func(a commands.TargetArgs) (commands.Result, error) {
			task, err := s.Resolve(ctx, a.Ref)
			if err != nil {
				return commands.Result{}, err
			}
			task, err = s.Toggle(ctx, task.ID)
			if err != nil {
				return commands.Result{}, err
			}
			verb := "reopened"
			if task.Completed {
				verb = "completed"
			}
			return commands.Result{Message: fmt.Sprintf("%s: %s", verb, task.Title)}, nil
		},
		Done:   setCompleted(true, "completed"),
		Undone: setCompleted(false, "reopened"),
		Rename: func(a commands.RenameArgs) (commands.Result, error) {
			task, err := s.Resolve(ctx, a.Ref)
			if err != nil {
				return commands.Result{}, err
			}
			updated, result, err := s.Rename(ctx, task.ID, a.Title)
			if err != nil {
				return commands.Result{}, err
			}
			switch result {
			case RenameApplied:
				return commands.Result{Message: fmt.Sprintf("renamed: %s", updated.Title)}, nil
			case RenameRejected:
				return commands.Result{Message: fmt.Sprintf("title unchanged: %s", updated.Title)}, nil
			default:
				return commands.Result{}, fmt.Errorf("%w: %s", ErrNotFound, a.Ref)
			}
		},
		Delete: func(a commands.TargetArgs) (commands.Result, error) {
			task, err := s.Resolve(ctx, a.Ref)
			if err != nil {
				return commands.Result{}, err
			}
			if err := s.Delete(ctx, task.ID); err != nil {
				return commands.Result{}, err
			}
			return commands.Result{Message: fmt.Sprintf("deleted: %s", task.Title)}, nil
		},
		Clear: func() (commands.Result, error) {
			n, err := s.ClearCompleted(ctx)
			if err != nil {
				return commands.Result{}, err
			}
			return commands.Result{Message: fmt.Sprintf("cleared %d completed", n)}, nil
		},
	}
}
