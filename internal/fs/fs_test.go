package fs

import (
	"os"
	"path/filepath"
	"testing"
)

func TestMove(t *testing.T) {
	dir := t.TempDir()

	src := filepath.Join(dir, "a.png")
	if err := os.WriteFile(src, []byte("payload"), 0644); err != nil {
		t.Fatal(err)
	}

	dst := filepath.Join(dir, "sub", "b.png")
	if err := Move(src, dst, false); err != nil {
		t.Fatalf("Move() error = %v", err)
	}

	if _, err := os.Stat(src); !os.IsNotExist(err) {
		t.Errorf("source still exists after move")
	}
	data, err := os.ReadFile(dst)
	if err != nil {
		t.Fatalf("destination missing: %v", err)
	}
	if string(data) != "payload" {
		t.Errorf("content mismatch: got %q", data)
	}
}

func TestMoveMissingSource(t *testing.T) {
	dir := t.TempDir()
	err := Move(filepath.Join(dir, "nope"), filepath.Join(dir, "dst"), false)
	if err == nil {
		t.Fatal("expected error for missing source")
	}
}

func TestCreateExclusive(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "info")

	f, err := CreateExclusive(path, 0600)
	if err != nil {
		t.Fatalf("CreateExclusive() error = %v", err)
	}
	f.Close()

	if _, err := CreateExclusive(path, 0600); !os.IsExist(err) {
		t.Errorf("expected os.IsExist error on second create, got %v", err)
	}
}
