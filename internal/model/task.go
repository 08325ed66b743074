package model

import (
	"errors"
	"strings"
)

var (
	ErrMissingID    = errors.New("model: task id is required")
	ErrMissingTitle = errors.New("model: task title is required")
)

type Task struct {
	ID        string `json:"id" yaml:"id"`
	Title     string `json:"title" yaml:"title"`
	Completed bool   `json:"completed" yaml:"completed"`
}

func (t Task) Validate() error {
	if strings.TrimSpace(t.ID) == "" {
		return ErrMissingID
	}
	if NormalizeTitle(t.Title) == "" {
		return ErrMissingTitle
	}
	return nil
}

// NormalizeTitle trims surrounding whitespace. An empty result means the
// title must not be persisted.
func NormalizeTitle(title string) string {
	return strings.TrimSpace(title)
}

func Find(items []Task, id string) (Task, bool) {
	for _, item := range items {
		if item.ID == id {
			return item, true
		}
	}
	return Task{}, false
}

func Append(items []Task, task Task) []Task {
	out := make([]Task, 0, len(items)+1)
	out = append(out, items...)
	return append(out, task)
}

func SetCompleted(items []Task, id string, completed bool) []Task {
	out := make([]Task, len(items))
	for i, item := range items {
		if item.ID == id {
			item.Completed = completed
		}
		out[i] = item
	}
	return out
}

func Rename(items []Task, id, title string) []Task {
	out := make([]Task, len(items))
	for i, item := range items {
		if item.ID == id {
			item.Title = title
		}
		out[i] = item
	}
	return out
}

func Remove(items []Task, id string) []Task {
	out := make([]Task, 0, len(items))
	for _, item := range items {
		if item.ID != id {
			out = append(out, item)
		}
	}
	return out
}

// RemoveCompleted drops every completed task and reports how many were removed.
func RemoveCompleted(items []Task) ([]Task, int) {
	out := make([]Task, 0, len(items))
	for _, item := range items {
		if !item.Completed {
			out = append(out, item)
		}
	}
	return out, len(items) - len(out)
}
