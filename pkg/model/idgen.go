package model

import (
	"fmt"
	"sync/atomic"

	"github.com/google/uuid"
)

// IDGenerator mints node ids. It is an injected capability so parser output
// stays deterministic under test: production code uses UUIDs, tests swap in a
// sequential counter.
type IDGenerator interface {
	NewID() string
}

// UUIDGenerator issues random UUIDv4 ids.
type UUIDGenerator struct{}

// NewID returns a fresh UUID string.
func (UUIDGenerator) NewID() string {
	return uuid.NewString()
}

// SequentialIDs issues "prefix-1", "prefix-2", ... in order. Safe for
// concurrent use, though the parsers themselves are single-threaded.
type SequentialIDs struct {
	prefix string
	n      atomic.Int64
}

// NewSequentialIDs returns a counter-based generator with the given prefix.
func NewSequentialIDs(prefix string) *SequentialIDs {
	if prefix == "" {
		prefix = "n"
	}
	return &SequentialIDs{prefix: prefix}
}

// NewID returns the next id in sequence.
func (g *SequentialIDs) NewID() string {
	return fmt.Sprintf("%s-%d", g.prefix, g.n.Add(1))
}
