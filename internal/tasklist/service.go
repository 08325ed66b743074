// Package tasklist holds the task list operations. Every mutation reads the
// whole list from the repository, applies a pure transform and writes the
// whole list back; nothing is cached between calls.
package tasklist

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/sandeepkv93/todod/internal/ident"
	"github.com/sandeepkv93/todod/internal/logging"
	"github.com/sandeepkv93/todod/internal/model"
)

var (
	ErrNotFound  = errors.New("tasklist: task not found")
	ErrAmbiguous = errors.New("tasklist: task reference is ambiguous")
)

// Repository loads and saves the full task list. Load must return an empty
// list rather than fail.
type Repository interface {
	Load(ctx context.Context) []model.Task
	Save(ctx context.Context, items []model.Task) error
}

type RenameResult int

const (
	RenameApplied RenameResult = iota
	RenameRejected
	RenameNotFound
)

func (r RenameResult) String() string {
	switch r {
	case RenameApplied:
		return "applied"
	case RenameRejected:
		return "rejected"
	case RenameNotFound:
		return "not_found"
	default:
		return "unknown"
	}
}

type Service struct {
	repo Repository
	ids  ident.Generator
	log  *log.Logger
}

func NewService(repo Repository, ids ident.Generator, logger *log.Logger) *Service {
	if ids == nil {
		ids = ident.UUIDGenerator{}
	}
	if logger == nil {
		logger = logging.Discard()
	}
	return &Service{repo: repo, ids: ids, log: logger}
}

func (s *Service) List(ctx context.Context) []model.Task {
	return s.repo.Load(ctx)
}

// Add appends a new open task. A blank title is ignored: added is false and
// nothing is written.
func (s *Service) Add(ctx context.Context, title string) (model.Task, bool, error) {
	trimmed := model.NormalizeTitle(title)
	if trimmed == "" {
		return model.Task{}, false, nil
	}
	task := model.Task{ID: s.ids.NewID(), Title: trimmed}
	if err := s.save(ctx, model.Append(s.repo.Load(ctx), task)); err != nil {
		return model.Task{}, false, err
	}
	s.log.Debug("task added", "id", task.ID)
	return task, true, nil
}

func (s *Service) SetCompleted(ctx context.Context, id string, completed bool) error {
	if err := s.save(ctx, model.SetCompleted(s.repo.Load(ctx), id, completed)); err != nil {
		return err
	}
	s.log.Debug("task completion set", "id", id, "completed", completed)
	return nil
}

// Toggle flips the completion flag of id. ErrNotFound leaves storage as is.
func (s *Service) Toggle(ctx context.Context, id string) (model.Task, error) {
	items := s.repo.Load(ctx)
	task, ok := model.Find(items, id)
	if !ok {
		return model.Task{}, fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	task.Completed = !task.Completed
	if err := s.save(ctx, model.SetCompleted(items, id, task.Completed)); err != nil {
		return model.Task{}, err
	}
	s.log.Debug("task toggled", "id", id, "completed", task.Completed)
	return task, nil
}

func (s *Service) Delete(ctx context.Context, id string) error {
	if err := s.save(ctx, model.Remove(s.repo.Load(ctx), id)); err != nil {
		return err
	}
	s.log.Debug("task deleted", "id", id)
	return nil
}

// Rename commits an edited title. The returned task is the persisted one
// after the call, so callers can revert their input to it when the edit is
// rejected.
func (s *Service) Rename(ctx context.Context, id, title string) (model.Task, RenameResult, error) {
	items := s.repo.Load(ctx)
	current, ok := model.Find(items, id)
	if !ok {
		return model.Task{}, RenameNotFound, nil
	}
	trimmed := model.NormalizeTitle(title)
	if trimmed == "" {
		return current, RenameRejected, nil
	}
	if err := s.save(ctx, model.Rename(items, id, trimmed)); err != nil {
		return current, RenameApplied, err
	}
	current.Title = trimmed
	s.log.Debug("task renamed", "id", id)
	return current, RenameApplied, nil
}

func (s *Service) ClearCompleted(ctx context.Context) (int, error) {
	kept, removed := model.RemoveCompleted(s.repo.Load(ctx))
	if removed == 0 {
		return 0, nil
	}
	if err := s.save(ctx, kept); err != nil {
		return 0, err
	}
	s.log.Debug("completed tasks cleared", "count", removed)
	return removed, nil
}

// Resolve finds a task by exact id, then by 1-based list position, then by
// unique id prefix. A number outside the list is tried as a prefix, so the
// leading digits of a timestamp id still resolve.
func (s *Service) Resolve(ctx context.Context, ref string) (model.Task, error) {
	ref = strings.TrimSpace(ref)
	if ref == "" {
		return model.Task{}, fmt.Errorf("%w: empty reference", ErrNotFound)
	}
	items := s.repo.Load(ctx)
	if task, ok := model.Find(items, ref); ok {
		return task, nil
	}
	if n, err := strconv.Atoi(ref); err == nil && n >= 1 && n <= len(items) {
		return items[n-1], nil
	}
	var matches []model.Task
	for _, item := range items {
		if strings.HasPrefix(item.ID, ref) {
			matches = append(matches, item)
		}
	}
	switch len(matches) {
	case 0:
		return model.Task{}, fmt.Errorf("%w: %s", ErrNotFound, ref)
	case 1:
		return matches[0], nil
	default:
		return model.Task{}, fmt.Errorf("%w: %s matches %d tasks", ErrAmbiguous, ref, len(matches))
	}
}

func (s *Service) save(ctx context.Context, items []model.Task) error {
	if err := s.repo.Save(ctx, items); err != nil {
		s.log.Error("save task list failed", "err", err)
		return err
	}
	return nil
}
