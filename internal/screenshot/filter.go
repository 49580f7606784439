package screenshot

import (
	"log/slog"
	"regexp"
	"strings"
	"time"

	"github.com/docker/go-units"
	"github.com/gabriel-vasile/mimetype"
	"github.com/gobwas/glob"
	"github.com/k1LoW/duration"
	"github.com/samber/lo"
)

// Filter narrows a scan result after classification. The zero value
// filters nothing.
type Filter struct {
	// Within keeps only entries modified within the given period
	// (e.g. "30 days"). Empty means no limit.
	Within string

	// ExcludeFiles rejects entries by exact base name
	ExcludeFiles []string

	// ExcludeGlobs rejects entries whose name matches a glob
	ExcludeGlobs []string

	// ExcludePatterns rejects entries whose name matches a regexp
	ExcludePatterns []string

	// SizeMin/SizeMax reject entries outside the window
	// (human-readable sizes, e.g. "10KB", "10GB")
	SizeMin string
	SizeMax string

	// VerifyContent rejects entries whose bytes are not an image,
	// regardless of name
	VerifyContent bool
}

// Apply runs the filter chain. Entries with unknown metadata pass the
// size and period checks; degraded metadata must not hide files.
func (f *Filter) Apply(entries []Entry) []Entry {
	entries = lo.Reject(entries, func(e Entry, _ int) bool {
		return lo.Contains(f.ExcludeFiles, e.Name)
	})

	entries = lo.Reject(entries, func(e Entry, _ int) bool {
		for _, pattern := range f.ExcludePatterns {
			if matched, err := regexp.MatchString(pattern, e.Name); err == nil && matched {
				return true
			}
		}
		return false
	})

	entries = lo.Reject(entries, func(e Entry, _ int) bool {
		for _, pattern := range f.ExcludeGlobs {
			g, err := glob.Compile(pattern)
			if err != nil {
				slog.Warn("invalid exclude glob", "glob", pattern, "error", err)
				continue
			}
			if g.Match(e.Name) {
				return true
			}
		}
		return false
	})

	entries = f.rejectBySize(entries)
	entries = f.filterByPeriod(entries)

	if f.VerifyContent {
		entries = lo.Reject(entries, func(e Entry, _ int) bool {
			mime, err := mimetype.DetectFile(e.Path)
			if err != nil {
				// Unreadable content degrades to "keep".
				return false
			}
			return !strings.HasPrefix(mime.String(), "image/")
		})
	}

	return entries
}

func (f *Filter) rejectBySize(entries []Entry) []Entry {
	if f.SizeMin == "" && f.SizeMax == "" {
		return entries
	}

	return lo.Reject(entries, func(e Entry, _ int) bool {
		if e.Size == nil {
			return false
		}
		size := *e.Size
		if f.SizeMin != "" {
			if min, err := units.FromHumanSize(f.SizeMin); err == nil && size < min {
				return true
			}
		}
		if f.SizeMax != "" {
			if max, err := units.FromHumanSize(f.SizeMax); err == nil && size > max {
				return true
			}
		}
		return false
	})
}

func (f *Filter) filterByPeriod(entries []Entry) []Entry {
	if f.Within == "" {
		return entries
	}

	d, err := duration.Parse(f.Within)
	if err != nil {
		slog.Warn("invalid filter period", "within", f.Within, "error", err)
		return entries
	}

	return lo.Filter(entries, func(e Entry, _ int) bool {
		if e.ModifiedAt == nil {
			return true
		}
		return time.Since(*e.ModifiedAt) < d
	})
}
