package xdg

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/karasuno/snapsweep/internal/fs"
	"github.com/karasuno/snapsweep/internal/trash"
)

// Config holds the storage settings.
type Config struct {
	// HomeTrashDir overrides the home trash location
	// (default ~/.local/share/Trash)
	HomeTrashDir string

	// ForceHomeTrash skips per-volume trash directories entirely
	ForceHomeTrash bool

	// HomeFallback enables copy+delete when a file cannot be renamed
	// into the trash (cross-device move into the home trash)
	HomeFallback bool
}

// trashLocation represents a single trash directory
type trashLocation struct {
	// Root directory (e.g., ~/.local/share/Trash or /media/disk/.Trash-1000)
	root string

	// Files directory (root/files)
	filesDir string

	// Info directory (root/info)
	infoDir string
}

// Storage implements trash.Trasher on an XDG-layout trash directory.
type Storage struct {
	homeTrash *trashLocation
	config    Config
}

// NewStorage creates an XDG-compliant trash storage rooted at the home
// trash, creating its files/ and info/ directories if needed.
func NewStorage(cfg Config) (*Storage, error) {
	root := cfg.HomeTrashDir
	if root == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("failed to get home directory: %w", err)
		}
		root = filepath.Join(home, ".local", "share", "Trash")
	}

	loc, err := newTrashLocation(root)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize home trash: %w", err)
	}

	slog.Debug("initialized xdg storage", "root", root)
	return &Storage{homeTrash: loc, config: cfg}, nil
}

func newTrashLocation(root string) (*trashLocation, error) {
	loc := &trashLocation{
		root:     root,
		filesDir: filepath.Join(root, "files"),
		infoDir:  filepath.Join(root, "info"),
	}
	for _, dir := range []string{loc.filesDir, loc.infoDir} {
		if err := os.MkdirAll(dir, 0700); err != nil {
			return nil, err
		}
	}
	return loc, nil
}

// Info returns details about the home trash.
func (s *Storage) Info() *trash.StorageInfo {
	_, err := os.Stat(s.homeTrash.root)
	return &trash.StorageInfo{
		Root:      s.homeTrash.root,
		Available: err == nil,
	}
}

// Put moves the file at src into the trash and returns the path it was
// stored at. The .trashinfo sidecar is written first so a crash never
// leaves an unexplained file in the trash.
func (s *Storage) Put(src string) (string, error) {
	abs, err := filepath.Abs(src)
	if err != nil {
		return "", trash.NewStorageError("put", src, err)
	}

	if _, err := os.Lstat(abs); err != nil {
		if os.IsNotExist(err) {
			return "", trash.NewStorageError("put", src, trash.ErrNotFound)
		}
		return "", trash.NewStorageError("put", src, err)
	}

	loc, sameMount := s.selectTrashLocation(abs)

	// Generate unique name in trash
	baseName := filepath.Base(abs)
	trashName := baseName
	counter := 1
	for {
		infoPath := filepath.Join(loc.infoDir, trashName+".trashinfo")
		filePath := filepath.Join(loc.filesDir, trashName)

		_, errInfo := os.Stat(infoPath)
		_, errFile := os.Stat(filePath)
		if os.IsNotExist(errInfo) && os.IsNotExist(errFile) {
			break
		}

		trashName = fmt.Sprintf("%s_%d", baseName, counter)
		counter++
	}

	info := &TrashInfo{
		Path:         abs,
		DeletionDate: time.Now(),
	}
	infoPath := filepath.Join(loc.infoDir, trashName+".trashinfo")
	if err := info.Save(infoPath); err != nil {
		return "", trash.NewStorageError("put", src, fmt.Errorf("failed to save trash info: %w", err))
	}

	// Renames within one mount never need the copy fallback.
	fallback := s.config.HomeFallback && !sameMount
	dstPath := filepath.Join(loc.filesDir, trashName)
	if err := fs.Move(abs, dstPath, fallback); err != nil {
		// If move fails, clean up the .trashinfo file
		os.Remove(infoPath)
		return "", wrapMoveErr("put", src, err)
	}

	return dstPath, nil
}

// Restore moves a trashed file back to dst and removes its sidecar.
// dst must not already exist.
func (s *Storage) Restore(trashedPath, dst string) error {
	if _, err := os.Lstat(trashedPath); err != nil {
		if os.IsNotExist(err) {
			return trash.NewStorageError("restore", trashedPath, trash.ErrNotFound)
		}
		return wrapMoveErr("restore", trashedPath, err)
	}

	if _, err := os.Lstat(dst); err == nil {
		return trash.NewStorageError("restore", dst, trash.ErrFileExists)
	}

	if err := os.MkdirAll(filepath.Dir(dst), 0755); err != nil {
		return wrapMoveErr("restore", dst, err)
	}

	if err := fs.Move(trashedPath, dst, s.config.HomeFallback); err != nil {
		return wrapMoveErr("restore", dst, err)
	}

	// Remove .trashinfo file
	if err := os.Remove(infoPathFor(trashedPath)); err != nil && !os.IsNotExist(err) {
		// Log but don't fail - the file is already restored
		slog.Warn("failed to remove trash info", "path", trashedPath, "error", err)
	}

	return nil
}

// selectTrashLocation picks the trash directory for a path: the home
// trash when the path lives on the same mount (or when forced), a
// $topdir/.Trash-$uid directory otherwise, falling back to the home
// trash when that directory cannot be prepared.
func (s *Storage) selectTrashLocation(abs string) (loc *trashLocation, sameMount bool) {
	if s.config.ForceHomeTrash {
		return s.homeTrash, false
	}

	srcMount, err := mountPointOf(abs)
	if err != nil {
		slog.Debug("mount point lookup failed, using home trash", "path", abs, "error", err)
		return s.homeTrash, false
	}
	homeMount, err := mountPointOf(s.homeTrash.root)
	if err != nil {
		return s.homeTrash, false
	}
	if srcMount == homeMount {
		return s.homeTrash, true
	}

	topdirRoot := filepath.Join(srcMount, fmt.Sprintf(".Trash-%d", os.Getuid()))
	topdir, err := newTrashLocation(topdirRoot)
	if err != nil {
		slog.Debug("cannot prepare volume trash, using home trash",
			"root", topdirRoot, "error", err)
		return s.homeTrash, false
	}
	return topdir, true
}

func wrapMoveErr(op, path string, err error) error {
	if errors.Is(err, os.ErrPermission) {
		return trash.NewStorageError(op, path, fmt.Errorf("%w: %v", trash.ErrPermissionDenied, err))
	}
	return trash.NewStorageError(op, path, err)
}
