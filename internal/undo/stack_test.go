package undo

import (
	"fmt"
	"sync"
	"testing"
)

func batchOf(names ...string) Batch {
	var entries []Entry
	for _, n := range names {
		entries = append(entries, NewEntry(n, "/desk/"+n, "/trash/"+n))
	}
	return NewBatch(entries)
}

func poppedNames(entries []Entry) []string {
	out := make([]string, len(entries))
	for i, e := range entries {
		out[i] = e.Name
	}
	return out
}

func TestPopWholeTopBatch(t *testing.T) {
	s := NewStack(0)
	s.Push(batchOf("a.png"))
	s.Push(batchOf("b.png", "c.png"))

	got := s.PopEntries(0)
	if want := []string{"c.png", "b.png"}; fmt.Sprint(poppedNames(got)) != fmt.Sprint(want) {
		t.Errorf("PopEntries(0) = %v, want %v", poppedNames(got), want)
	}
	if s.Len() != 1 {
		t.Errorf("expected 1 batch left, got %d", s.Len())
	}
}

func TestPopAcrossBatches(t *testing.T) {
	s := NewStack(0)
	s.Push(batchOf("a.png", "b.png"))
	s.Push(batchOf("c.png"))

	got := s.PopEntries(2)
	if want := []string{"c.png", "b.png"}; fmt.Sprint(poppedNames(got)) != fmt.Sprint(want) {
		t.Errorf("PopEntries(2) = %v, want %v", poppedNames(got), want)
	}

	// The partially consumed batch keeps its remainder.
	if s.EntryCount() != 1 {
		t.Errorf("expected 1 entry left, got %d", s.EntryCount())
	}
	rest := s.PopEntries(5)
	if len(rest) != 1 || rest[0].Name != "a.png" {
		t.Errorf("remainder = %v", poppedNames(rest))
	}
}

func TestPopEmptyStack(t *testing.T) {
	s := NewStack(0)
	if got := s.PopEntries(3); got != nil {
		t.Errorf("expected nil, got %v", got)
	}
}

func TestPushEmptyBatchIgnored(t *testing.T) {
	s := NewStack(0)
	s.Push(NewBatch(nil))
	s.Push(batchOf("a.png"))
	s.Push(NewBatch(nil))

	got := s.PopEntries(0)
	if len(got) != 1 || got[0].Name != "a.png" {
		t.Errorf("empty batches corrupted pop order: %v", poppedNames(got))
	}
}

func TestMaxBatchesEvictsOldest(t *testing.T) {
	s := NewStack(2)
	s.Push(batchOf("a.png"))
	s.Push(batchOf("b.png"))
	s.Push(batchOf("c.png"))

	if s.Len() != 2 {
		t.Fatalf("expected 2 batches, got %d", s.Len())
	}
	s.PopEntries(0)
	got := s.PopEntries(0)
	if len(got) != 1 || got[0].Name != "b.png" {
		t.Errorf("expected oldest (a.png) evicted, second pop = %v", poppedNames(got))
	}
}

func TestConcurrentPopsNeverShareEntries(t *testing.T) {
	s := NewStack(0)
	const total = 200
	var all []Entry
	for i := range total {
		all = append(all, NewEntry(fmt.Sprintf("%d.png", i), "/d", "/t"))
	}
	s.Push(NewBatch(all))

	var (
		wg     sync.WaitGroup
		mu     sync.Mutex
		popped []Entry
	)
	for range 10 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for {
				got := s.PopEntries(7)
				if len(got) == 0 {
					return
				}
				mu.Lock()
				popped = append(popped, got...)
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	if len(popped) != total {
		t.Fatalf("popped %d entries, want %d", len(popped), total)
	}
	seen := map[string]bool{}
	for _, e := range popped {
		if seen[e.ID] {
			t.Fatalf("entry %s popped twice", e.Name)
		}
		seen[e.ID] = true
	}
}
