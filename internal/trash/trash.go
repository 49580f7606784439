// Package trash defines the boundary to the platform trash store.
package trash

// Trasher is the platform trash primitive. The two operations are the
// whole contract: move a file into the trash and report where it
// landed, and move a trashed file back out to a destination. Core
// logic is written against this interface so tests can run on a fake
// rooted in a temporary directory.
type Trasher interface {
	// Put moves the file at src into the trash and returns the
	// absolute path it was stored at.
	Put(src string) (trashedPath string, err error)

	// Restore moves the file at trashedPath to dst. dst must not
	// exist; collision handling is the caller's concern.
	Restore(trashedPath, dst string) error
}

// StorageInfo provides information about a trash storage
type StorageInfo struct {
	// Root is the root directory of this storage (e.g., ~/.local/share/Trash)
	Root string

	// Available indicates whether this storage is currently usable
	Available bool
}
