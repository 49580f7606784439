// Package undo keeps the process-lifetime record of trashed files.
// The stack is an injected value, not package state, so each caller
// (and each test) owns its own instance.
package undo

import (
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/xid"
)

// Entry represents one file moved to trash. Both paths are non-empty
// and refer to the same content at different points in time.
type Entry struct {
	// ID identifies the entry
	ID string

	// Name is the base name of the original file
	Name string

	// OriginalPath is the absolute path before the move
	OriginalPath string

	// TrashedPath is the absolute path inside the trash store
	TrashedPath string

	// DeletedAt is when the file was moved to trash
	DeletedAt time.Time
}

// NewEntry creates an Entry with a fresh ID and timestamp.
func NewEntry(name, originalPath, trashedPath string) Entry {
	return Entry{
		ID:           uuid.New().String(),
		Name:         name,
		OriginalPath: originalPath,
		TrashedPath:  trashedPath,
		DeletedAt:    time.Now(),
	}
}

// Batch is the set of entries produced by a single delete invocation.
// Entries are ordered oldest-first; the most recent entry is last.
type Batch struct {
	// ID groups the entries of one delete invocation
	ID string

	// Entries are the successful moves, in delete order
	Entries []Entry

	// CreatedAt is when the batch was pushed
	CreatedAt time.Time
}

// NewBatch wraps entries into a batch with a fresh ID.
func NewBatch(entries []Entry) Batch {
	return Batch{
		ID:        xid.New().String(),
		Entries:   entries,
		CreatedAt: time.Now(),
	}
}

// Stack is a mutex-guarded LIFO of batches. Concurrent pushes and pops
// never interleave into a lost batch or a double-pop.
type Stack struct {
	mu         sync.Mutex
	batches    []Batch
	maxBatches int
}

// NewStack creates a stack holding at most maxBatches batches; when
// full, the oldest batch is dropped on push. maxBatches <= 0 means
// unbounded.
func NewStack(maxBatches int) *Stack {
	return &Stack{maxBatches: maxBatches}
}

// Push appends a batch. Empty batches are ignored so a delete where
// nothing succeeded cannot corrupt the pop order of later undos.
func (s *Stack) Push(b Batch) {
	if len(b.Entries) == 0 {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.batches = append(s.batches, b)
	if s.maxBatches > 0 && len(s.batches) > s.maxBatches {
		s.batches = s.batches[len(s.batches)-s.maxBatches:]
	}
}

// PopEntries removes and returns up to count of the most recent
// entries, most-recent-first, crossing batch boundaries as needed.
// count <= 0 means the whole most recent batch. A batch only partially
// consumed keeps its remaining entries on the stack.
func (s *Stack) PopEntries(count int) []Entry {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.batches) == 0 {
		return nil
	}

	if count <= 0 {
		top := s.batches[len(s.batches)-1]
		s.batches = s.batches[:len(s.batches)-1]
		return reversed(top.Entries)
	}

	var popped []Entry
	for count > 0 && len(s.batches) > 0 {
		top := &s.batches[len(s.batches)-1]
		n := len(top.Entries)
		take := count
		if take > n {
			take = n
		}
		for i := n - 1; i >= n-take; i-- {
			popped = append(popped, top.Entries[i])
		}
		top.Entries = top.Entries[:n-take]
		if len(top.Entries) == 0 {
			s.batches = s.batches[:len(s.batches)-1]
		}
		count -= take
	}
	return popped
}

// Len returns the number of batches on the stack.
func (s *Stack) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.batches)
}

// EntryCount returns the total number of entries across batches.
func (s *Stack) EntryCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	var n int
	for _, b := range s.batches {
		n += len(b.Entries)
	}
	return n
}

func reversed(entries []Entry) []Entry {
	out := make([]Entry, len(entries))
	for i, e := range entries {
		out[len(entries)-1-i] = e
	}
	return out
}
