// Package ident produces task identifiers.
package ident

import (
	"fmt"
	"math/rand/v2"
	"sync"
	"time"

	"github.com/google/uuid"
)

type Generator interface {
	NewID() string
}

// UUIDGenerator returns random (v4) UUIDs. If the system random source
// fails it falls back to "<unix millis>-<random int below 1e9>", which is
// only probabilistically unique.
type UUIDGenerator struct {
	Now func() time.Time
}

func (g UUIDGenerator) NewID() string {
	id, err := uuid.NewRandom()
	if err == nil {
		return id.String()
	}
	return g.fallback()
}

func (g UUIDGenerator) fallback() string {
	now := time.Now
	if g.Now != nil {
		now = g.Now
	}
	return fmt.Sprintf("%d-%d", now().UnixMilli(), rand.IntN(1_000_000_000))
}

// SequenceGenerator hands out prefix-1, prefix-2, ... and is meant for tests
// and fixtures.
type SequenceGenerator struct {
	Prefix string

	mu   sync.Mutex
	next int
}

func (g *SequenceGenerator) NewID() string {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.next++
	prefix := g.Prefix
	if prefix == "" {
		prefix = "task"
	}
	return fmt.Sprintf("%s-%d", prefix, g.next)
}
