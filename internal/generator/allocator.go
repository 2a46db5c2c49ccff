package generator

import (
	"io"
	"math/rand"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/oklog/ulid/v2"
)

// Allocator hands out identifiers that never repeat within a run.
type Allocator interface {
	Allocate() string
}

// Identifier strategies accepted by NewAllocator.
const (
	StrategyUUID = "uuid"
	StrategyULID = "ulid"
)

// NewAllocator returns the allocator for the named strategy, defaulting to UUIDs.
func NewAllocator(strategy string) Allocator {
	if strategy == StrategyULID {
		return NewULIDAllocator(time.Now)
	}
	return UUIDAllocator{}
}

// UUIDAllocator issues random version 4 UUIDs.
type UUIDAllocator struct{}

// Allocate implements Allocator.
func (UUIDAllocator) Allocate() string {
	return uuid.NewString()
}

// ULIDAllocator issues lexicographically sortable identifiers.
type ULIDAllocator struct {
	mu      sync.Mutex
	now     func() time.Time
	entropy io.Reader
}

// NewULIDAllocator builds a monotonic ULID allocator.
func NewULIDAllocator(now func() time.Time) *ULIDAllocator {
	if now == nil {
		now = time.Now
	}
	return &ULIDAllocator{
		now:     now,
		entropy: ulid.Monotonic(rand.New(rand.NewSource(time.Now().UnixNano())), 0),
	}
}

// Allocate implements Allocator.
func (a *ULIDAllocator) Allocate() string {
	a.mu.Lock()
	defer a.mu.Unlock()
	return ulid.MustNew(ulid.Timestamp(a.now()), a.entropy).String()
}
