package storage

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

var (
	ErrClosed         = errors.New("storage: store closed")
	ErrUnknownBackend = errors.New("storage: unknown backend")
)

const (
	BackendSQLite = "sqlite"
	BackendFile   = "file"
	BackendMemory = "memory"
)

// KV is a synchronous string key-value store. Get reports ok=false for a
// key that was never set.
type KV interface {
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, value string) error
	Close() error
}

type Options struct {
	Backend   string
	DBPath    string
	StateFile string
}

func Open(opts Options) (KV, error) {
	switch strings.ToLower(strings.TrimSpace(opts.Backend)) {
	case "", BackendSQLite:
		return OpenSQLite(opts.DBPath)
	case BackendFile:
		return NewFileKV(opts.StateFile)
	case BackendMemory:
		return NewMemoryKV(), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownBackend, opts.Backend)
	}
}
