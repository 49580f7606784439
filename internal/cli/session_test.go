package cli

import (
	"reflect"
	"testing"

	"github.com/karasuno/snapsweep/internal/screenshot"
)

func TestParseSelection(t *testing.T) {
	tests := []struct {
		arg  string
		want []int
		ok   bool
	}{
		{"3", []int{3}, true},
		{"2-5", []int{2, 3, 4, 5}, true},
		{"5-2", nil, false},
		{"Screenshot.png", nil, false},
		{"2-x", nil, false},
	}
	for _, tt := range tests {
		t.Run(tt.arg, func(t *testing.T) {
			got, ok := parseSelection(tt.arg)
			if ok != tt.ok {
				t.Fatalf("parseSelection(%q) ok = %v, want %v", tt.arg, ok, tt.ok)
			}
			if ok && !reflect.DeepEqual(got, tt.want) {
				t.Errorf("parseSelection(%q) = %v, want %v", tt.arg, got, tt.want)
			}
		})
	}
}

func TestResolveTargets(t *testing.T) {
	listed := []screenshot.Entry{
		{Path: "/shots/Screenshot 1.png", Name: "Screenshot 1.png"},
		{Path: "/shots/Screenshot 2.png", Name: "Screenshot 2.png"},
		{Path: "/shots/Screenshot 3.png", Name: "Screenshot 3.png"},
	}

	t.Run("indices and ranges", func(t *testing.T) {
		paths, err := resolveTargets([]string{"1", "2-3"}, listed)
		if err != nil {
			t.Fatal(err)
		}
		want := []string{
			"/shots/Screenshot 1.png",
			"/shots/Screenshot 2.png",
			"/shots/Screenshot 3.png",
		}
		if !reflect.DeepEqual(paths, want) {
			t.Errorf("paths = %v", paths)
		}
	})

	t.Run("all", func(t *testing.T) {
		paths, err := resolveTargets([]string{"all"}, listed)
		if err != nil {
			t.Fatal(err)
		}
		if len(paths) != len(listed) {
			t.Errorf("got %d paths, want %d", len(paths), len(listed))
		}
	})

	t.Run("out of range", func(t *testing.T) {
		if _, err := resolveTargets([]string{"4"}, listed); err == nil {
			t.Error("expected error for index past the listing")
		}
	})

	t.Run("literal path", func(t *testing.T) {
		paths, err := resolveTargets([]string{"/elsewhere/shot.png"}, listed)
		if err != nil {
			t.Fatal(err)
		}
		if len(paths) != 1 || paths[0] != "/elsewhere/shot.png" {
			t.Errorf("paths = %v", paths)
		}
	})

	t.Run("no arguments", func(t *testing.T) {
		if _, err := resolveTargets(nil, listed); err == nil {
			t.Error("expected error for empty arguments")
		}
	})
}
