package screenshot

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"slices"
	"sort"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"
)

// ErrDirectoryUnreadable is returned when the scan target is missing
// or cannot be read. Per-file problems never produce it.
var ErrDirectoryUnreadable = errors.New("directory unreadable")

// metadataWorkers bounds the concurrent stat calls during a scan.
const metadataWorkers = 8

// Scanner lists screenshot files in one directory. It holds no state
// between calls; every List re-reads the directory.
type Scanner struct {
	dir    string
	filter *Filter
}

// NewScanner creates a scanner for dir. A nil filter means no
// filtering beyond the name classifier.
func NewScanner(dir string, filter *Filter) *Scanner {
	return &Scanner{dir: dir, filter: filter}
}

// Dir returns the scanned directory.
func (s *Scanner) Dir() string {
	return s.dir
}

// List enumerates the direct children of the scanner's directory,
// keeps those the classifier accepts, and returns them sorted by the
// given key. Metadata is read best-effort: a file whose stat fails is
// still included, with the optional fields absent.
func (s *Scanner) List(sortBy SortKey, descending bool) ([]Entry, error) {
	dirents, err := os.ReadDir(s.dir)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrDirectoryUnreadable, s.dir, err)
	}

	var names []string
	for _, d := range dirents {
		if !d.Type().IsRegular() {
			continue
		}
		if !IsScreenshotName(d.Name()) {
			continue
		}
		names = append(names, d.Name())
	}

	entries := make([]Entry, len(names))

	var eg errgroup.Group
	eg.SetLimit(metadataWorkers)
	for i, name := range names {
		eg.Go(func() error {
			path := filepath.Join(s.dir, name)
			entry := Entry{Path: path, Name: name}

			info, err := os.Stat(path)
			if err != nil {
				// Keep the entry; metadata stays absent.
				slog.Debug("stat failed, keeping entry without metadata",
					"path", path, "error", err)
				entries[i] = entry
				return nil
			}

			size := info.Size()
			modified := info.ModTime()
			entry.Size = &size
			entry.ModifiedAt = &modified
			entry.CreatedAt = birthTime(info)

			entries[i] = entry
			return nil
		})
	}
	// Workers never return errors; Wait only synchronizes.
	_ = eg.Wait()

	if s.filter != nil {
		entries = s.filter.Apply(entries)
	}

	sortEntries(entries, sortBy, descending)
	return entries, nil
}

// sortEntries sorts stably by the requested key with ties broken by
// name ascending. Descending reverses the whole ordering, tie-break
// included. Entries with unknown size or time sort as zero.
func sortEntries(entries []Entry, sortBy SortKey, descending bool) {
	sort.SliceStable(entries, func(i, j int) bool {
		if c := compareBy(entries[i], entries[j], sortBy); c != 0 {
			return c < 0
		}
		return entries[i].Name < entries[j].Name
	})
	if descending {
		slices.Reverse(entries)
	}
}

func compareBy(a, b Entry, sortBy SortKey) int {
	switch sortBy {
	case SortByCreatedAt:
		return timeValue(a.CreatedAt).Compare(timeValue(b.CreatedAt))
	case SortByModifiedAt:
		return timeValue(a.ModifiedAt).Compare(timeValue(b.ModifiedAt))
	case SortBySize:
		av, bv := sizeValue(a.Size), sizeValue(b.Size)
		switch {
		case av < bv:
			return -1
		case av > bv:
			return 1
		}
		return 0
	default: // SortByName
		return strings.Compare(a.Name, b.Name)
	}
}

// Unknown metadata sorts as zero, consistently.

func timeValue(t *time.Time) time.Time {
	if t == nil {
		return time.Time{}
	}
	return *t
}

func sizeValue(s *int64) int64 {
	if s == nil {
		return 0
	}
	return *s
}
