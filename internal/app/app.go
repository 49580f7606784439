// Package app exposes the three operations the host UI calls: list
// screenshots, delete to trash, undo the last delete.
package app

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/karasuno/snapsweep/internal/screenshot"
	"github.com/karasuno/snapsweep/internal/trash"
	"github.com/karasuno/snapsweep/internal/undo"
)

// ErrNothingToUndo is returned when the undo stack is empty.
var ErrNothingToUndo = errors.New("nothing to undo")

// App wires the scanner, the platform trash and the undo stack. The
// stack is owned here; nothing else pushes or pops it.
type App struct {
	scanner *screenshot.Scanner
	trasher trash.Trasher
	stack   *undo.Stack

	// undoMu keeps at most one undo in flight; the popped entries of a
	// running undo must never be visible to a second call.
	undoMu sync.Mutex
}

// New creates an App over the given collaborators.
func New(scanner *screenshot.Scanner, trasher trash.Trasher, stack *undo.Stack) *App {
	return &App{
		scanner: scanner,
		trasher: trasher,
		stack:   stack,
	}
}

// ListOptions selects the ordering of a scan result.
type ListOptions struct {
	SortBy     screenshot.SortKey
	Descending bool
}

// ListScreenshots re-reads the configured directory and returns the
// screenshots it currently holds, ordered per opts.
func (a *App) ListScreenshots(opts ListOptions) ([]screenshot.Entry, error) {
	slog.Debug("list screenshots", "dir", a.scanner.Dir(),
		"sortBy", opts.SortBy, "descending", opts.Descending)
	return a.scanner.List(opts.SortBy, opts.Descending)
}

// FailedDelete records one path of a delete batch that could not be
// moved to trash.
type FailedDelete struct {
	Path string
	Err  error
}

// DeleteResult is the outcome of one delete invocation. Trashed holds
// exactly the successful subset, in delete order; the same entries
// were pushed onto the undo stack as one batch.
type DeleteResult struct {
	BatchID string
	Trashed []undo.Entry
	Failed  []FailedDelete
}

// DeleteToTrash moves each path to the trash, best-effort per file: a
// path that cannot be moved is recorded in Failed without aborting the
// rest. The successful subset is pushed as a single undo batch; when
// nothing succeeded, nothing is pushed.
func (a *App) DeleteToTrash(paths []string) DeleteResult {
	slog.Debug("delete to trash started", "count", len(paths))
	defer slog.Debug("delete to trash finished")

	var result DeleteResult
	for _, path := range paths {
		trashedPath, err := a.trasher.Put(path)
		if err != nil {
			slog.Error("failed to trash file", "path", path, "error", err)
			result.Failed = append(result.Failed, FailedDelete{Path: path, Err: err})
			continue
		}

		entry := undo.NewEntry(filepath.Base(path), path, trashedPath)
		slog.Info("trashed file", "from", entry.OriginalPath, "to", entry.TrashedPath, "id", entry.ID)
		result.Trashed = append(result.Trashed, entry)
	}

	if len(result.Trashed) > 0 {
		batch := undo.NewBatch(result.Trashed)
		a.stack.Push(batch)
		result.BatchID = batch.ID
	}
	return result
}

// Restored describes one successfully restored file. RestoredPath
// differs from the entry's OriginalPath only when a collision forced a
// renamed destination.
type Restored struct {
	Entry        undo.Entry
	RestoredPath string
}

// RestoreError is the failure of an undo invocation. The entries
// popped before the failing one stay popped; the failing entry's
// TrashedPath remains valid for manual recovery.
type RestoreError struct {
	Entry undo.Entry
	Err   error
}

func (e *RestoreError) Error() string {
	return fmt.Sprintf("restore %s: %v", e.Entry.Name, e.Err)
}

func (e *RestoreError) Unwrap() error {
	return e.Err
}

// PermissionDenied reports whether the failure was a permission
// problem on the trash store.
func (e *RestoreError) PermissionDenied() bool {
	return trash.IsPermissionDenied(e.Err) || errors.Is(e.Err, os.ErrPermission)
}

// UndoLastDelete pops the count most recent entries and moves each one
// back from the trash. count <= 0 means the whole most recent batch.
// The call fails as a whole on the first entry that cannot be
// restored; entries restored before that point are still reported.
func (a *App) UndoLastDelete(count int) ([]Restored, error) {
	a.undoMu.Lock()
	defer a.undoMu.Unlock()

	entries := a.stack.PopEntries(count)
	if len(entries) == 0 {
		return nil, ErrNothingToUndo
	}

	slog.Debug("undo started", "entries", len(entries))

	var restored []Restored
	for _, entry := range entries {
		dst := restoreTarget(entry.OriginalPath)
		if err := a.trasher.Restore(entry.TrashedPath, dst); err != nil {
			slog.Error("restore failed", "name", entry.Name,
				"trashedPath", entry.TrashedPath, "error", err)
			return restored, &RestoreError{Entry: entry, Err: err}
		}
		if dst != entry.OriginalPath {
			slog.Info("restored with renamed destination", "name", entry.Name, "to", dst)
		} else {
			slog.Info("restored", "name", entry.Name, "to", dst)
		}
		restored = append(restored, Restored{Entry: entry, RestoredPath: dst})
	}
	return restored, nil
}

// PendingUndo reports how many batches and entries the stack holds.
func (a *App) PendingUndo() (batches, entries int) {
	return a.stack.Len(), a.stack.EntryCount()
}

// restoreTarget returns where a restored file should land: the
// original path when free, otherwise a " (restored)" name, extended
// with a counter until the name is unclaimed. Nothing is ever
// overwritten silently.
func restoreTarget(original string) string {
	if _, err := os.Lstat(original); err != nil {
		return original
	}

	dir := filepath.Dir(original)
	ext := filepath.Ext(original)
	stem := strings.TrimSuffix(filepath.Base(original), ext)

	candidate := filepath.Join(dir, fmt.Sprintf("%s (restored)%s", stem, ext))
	for counter := 2; ; counter++ {
		if _, err := os.Lstat(candidate); err != nil {
			return candidate
		}
		candidate = filepath.Join(dir, fmt.Sprintf("%s (restored %d)%s", stem, counter, ext))
	}
}
