package storage

import (
	"context"
	_ "embed"
	"encoding/json"
	"fmt"

	"github.com/sandeepkv93/todod/internal/model"
	jsonschema "github.com/santhosh-tekuri/jsonschema/v5"
)

// DefaultTaskKey is the key the task list is stored under.
const DefaultTaskKey = "todoItems"

//go:embed task.schema.json
var taskSchemaJSON string

var taskSchema = jsonschema.MustCompileString("task.schema.json", taskSchemaJSON)

// TaskStore persists the whole task list as one JSON array under a single key.
type TaskStore struct {
	kv  KV
	key string
}

func NewTaskStore(kv KV, key string) *TaskStore {
	if key == "" {
		key = DefaultTaskKey
	}
	return &TaskStore{kv: kv, key: key}
}

func (s *TaskStore) Key() string { return s.key }

// Load never fails: an absent, unreadable, unparsable or malformed value
// yields an empty list.
func (s *TaskStore) Load(ctx context.Context) []model.Task {
	raw, ok, err := s.kv.Get(ctx, s.key)
	if err != nil || !ok || raw == "" {
		return []model.Task{}
	}
	items, err := DecodeTaskList([]byte(raw))
	if err != nil {
		return []model.Task{}
	}
	return items
}

func (s *TaskStore) Save(ctx context.Context, items []model.Task) error {
	payload, err := EncodeTaskList(items)
	if err != nil {
		return err
	}
	if err := s.kv.Set(ctx, s.key, string(payload)); err != nil {
		return fmt.Errorf("save %s: %w", s.key, err)
	}
	return nil
}

func EncodeTaskList(items []model.Task) ([]byte, error) {
	if items == nil {
		items = []model.Task{}
	}
	payload, err := json.Marshal(items)
	if err != nil {
		return nil, fmt.Errorf("encode task list: %w", err)
	}
	return payload, nil
}

// DecodeTaskList parses a stored JSON array. Elements that fail the task
// schema, or repeat an earlier id, are dropped; the rest keep their order.
// Anything other than an array is an error.
func DecodeTaskList(raw []byte) ([]model.Task, error) {
	var doc any
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("parse task list: %w", err)
	}
	elems, ok := doc.([]any)
	if !ok {
		return nil, fmt.Errorf("parse task list: expected array, got %T", doc)
	}
	var rawElems []json.RawMessage
	if err := json.Unmarshal(raw, &rawElems); err != nil {
		return nil, fmt.Errorf("parse task list: %w", err)
	}

	items := make([]model.Task, 0, len(elems))
	seen := make(map[string]struct{}, len(elems))
	for i, elem := range elems {
		if err := taskSchema.Validate(elem); err != nil {
			continue
		}
		var task model.Task
		if err := json.Unmarshal(rawElems[i], &task); err != nil {
			continue
		}
		if _, dup := seen[task.ID]; dup {
			continue
		}
		seen[task.ID] = struct{}{}
		items = append(items, task)
	}
	return items, nil
}
