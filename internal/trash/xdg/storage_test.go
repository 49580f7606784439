package xdg

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/karasuno/snapsweep/internal/trash"
)

func newTestStorage(t *testing.T) *Storage {
	t.Helper()
	s, err := NewStorage(Config{
		HomeTrashDir:   filepath.Join(t.TempDir(), "Trash"),
		ForceHomeTrash: true,
	})
	if err != nil {
		t.Fatal(err)
	}
	return s
}

func TestPutAndRestore(t *testing.T) {
	s := newTestStorage(t)

	dir := t.TempDir()
	src := filepath.Join(dir, "Screenshot.png")
	if err := os.WriteFile(src, []byte("pixels"), 0644); err != nil {
		t.Fatal(err)
	}

	trashed, err := s.Put(src)
	if err != nil {
		t.Fatalf("Put() error = %v", err)
	}
	if _, err := os.Stat(src); !os.IsNotExist(err) {
		t.Error("source still exists after Put")
	}
	if _, err := os.Stat(trashed); err != nil {
		t.Fatalf("trashed file missing: %v", err)
	}

	// Sidecar records the original path.
	info, err := LoadInfo(infoPathFor(trashed))
	if err != nil {
		t.Fatalf("sidecar unreadable: %v", err)
	}
	if info.Path != src {
		t.Errorf("sidecar Path = %q, want %q", info.Path, src)
	}
	if info.DeletionDate.IsZero() {
		t.Error("sidecar DeletionDate missing")
	}

	if err := s.Restore(trashed, src); err != nil {
		t.Fatalf("Restore() error = %v", err)
	}
	data, err := os.ReadFile(src)
	if err != nil {
		t.Fatalf("restored file missing: %v", err)
	}
	if string(data) != "pixels" {
		t.Errorf("restored content = %q", data)
	}
	if _, err := os.Stat(infoPathFor(trashed)); !os.IsNotExist(err) {
		t.Error("sidecar not removed after restore")
	}
}

func TestPutUniqueNames(t *testing.T) {
	s := newTestStorage(t)
	dir := t.TempDir()

	var trashedPaths []string
	for range 3 {
		src := filepath.Join(dir, "Screenshot.png")
		if err := os.WriteFile(src, []byte("x"), 0644); err != nil {
			t.Fatal(err)
		}
		trashed, err := s.Put(src)
		if err != nil {
			t.Fatal(err)
		}
		trashedPaths = append(trashedPaths, trashed)
	}

	seen := map[string]bool{}
	for _, p := range trashedPaths {
		if seen[p] {
			t.Fatalf("duplicate trashed path: %s", p)
		}
		seen[p] = true
	}
	if filepath.Base(trashedPaths[1]) != "Screenshot.png_1" {
		t.Errorf("expected counter suffix, got %s", filepath.Base(trashedPaths[1]))
	}
}

func TestPutMissingSource(t *testing.T) {
	s := newTestStorage(t)
	_, err := s.Put(filepath.Join(t.TempDir(), "nope.png"))
	if !trash.IsNotFound(err) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	var se *trash.StorageError
	if !errors.As(err, &se) || se.Op != "put" {
		t.Errorf("expected put StorageError, got %v", err)
	}
}

func TestRestoreMissingTrashedFile(t *testing.T) {
	s := newTestStorage(t)
	err := s.Restore(filepath.Join(s.homeTrash.filesDir, "gone.png"), filepath.Join(t.TempDir(), "out.png"))
	if !trash.IsNotFound(err) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestRestoreRefusesExistingDestination(t *testing.T) {
	s := newTestStorage(t)
	dir := t.TempDir()

	src := filepath.Join(dir, "Screenshot.png")
	if err := os.WriteFile(src, []byte("a"), 0644); err != nil {
		t.Fatal(err)
	}
	trashed, err := s.Put(src)
	if err != nil {
		t.Fatal(err)
	}

	if err := os.WriteFile(src, []byte("b"), 0644); err != nil {
		t.Fatal(err)
	}
	if err := s.Restore(trashed, src); !trash.IsFileExists(err) {
		t.Fatalf("expected ErrFileExists, got %v", err)
	}
	// Pre-existing file untouched.
	data, _ := os.ReadFile(src)
	if string(data) != "b" {
		t.Errorf("existing destination was overwritten: %q", data)
	}
}

func TestTrashInfoRoundTrip(t *testing.T) {
	info := &TrashInfo{
		Path:         "/home/user/Desktop/Screen Shot 2024-01-01.png",
		DeletionDate: time.Date(2024, 3, 1, 10, 30, 0, 0, time.Local),
	}

	path := filepath.Join(t.TempDir(), "x.trashinfo")
	if err := info.Save(path); err != nil {
		t.Fatal(err)
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(raw), "Path=/home/user/Desktop/Screen%20Shot%202024-01-01.png") {
		t.Errorf("spaces not encoded as %%20:\n%s", raw)
	}

	parsed, err := LoadInfo(path)
	if err != nil {
		t.Fatal(err)
	}
	if parsed.Path != info.Path {
		t.Errorf("Path = %q, want %q", parsed.Path, info.Path)
	}
	if !parsed.DeletionDate.Equal(info.DeletionDate) {
		t.Errorf("DeletionDate = %v, want %v", parsed.DeletionDate, info.DeletionDate)
	}
}

func TestParseInfoRejectsGarbage(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"empty", ""},
		{"no header", "Path=/x\nDeletionDate=2024-01-01T00:00:00\n"},
		{"missing path", "[Trash Info]\nDeletionDate=2024-01-01T00:00:00\n"},
		{"missing date", "[Trash Info]\nPath=/x\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := ParseInfo(strings.NewReader(tt.input)); err == nil {
				t.Error("expected parse error")
			}
		})
	}
}
