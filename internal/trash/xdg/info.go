// Package xdg implements the trash.Trasher interface following the
// freedesktop.org trash specification.
package xdg

import (
	"bufio"
	"fmt"
	"io"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/karasuno/snapsweep/internal/fs"
)

const (
	// According to XDG spec
	trashInfoHeader = "[Trash Info]"
	timeFormat      = "2006-01-02T15:04:05"
)

// TrashInfo represents the contents of a .trashinfo file
type TrashInfo struct {
	// Path is the original path of the file
	Path string

	// DeletionDate is when the file was moved to trash
	DeletionDate time.Time
}

// ParseInfo reads a TrashInfo from r.
func ParseInfo(r io.Reader) (*TrashInfo, error) {
	scanner := bufio.NewScanner(r)
	info := &TrashInfo{}
	var headerFound bool

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())

		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		if line == trashInfoHeader {
			headerFound = true
			continue
		}
		if !headerFound {
			continue
		}

		parts := strings.SplitN(line, "=", 2)
		if len(parts) != 2 {
			continue
		}
		key := strings.TrimSpace(parts[0])
		value := strings.TrimSpace(parts[1])

		switch key {
		case "Path":
			path, err := url.QueryUnescape(value)
			if err != nil {
				return nil, fmt.Errorf("invalid Path encoding: %w", err)
			}
			info.Path = path

		case "DeletionDate":
			date, err := time.ParseInLocation(timeFormat, value, time.Local)
			if err != nil {
				return nil, fmt.Errorf("invalid DeletionDate format: %w", err)
			}
			info.DeletionDate = date
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading info file: %w", err)
	}

	if !headerFound {
		return nil, fmt.Errorf("missing %s header", trashInfoHeader)
	}
	if info.Path == "" {
		return nil, fmt.Errorf("missing Path field")
	}
	if info.DeletionDate.IsZero() {
		return nil, fmt.Errorf("missing DeletionDate field")
	}

	return info, nil
}

// Save writes the trash info to path. The O_EXCL create keeps two
// concurrent puts from claiming the same trash name.
func (i *TrashInfo) Save(path string) error {
	content := new(strings.Builder)
	fmt.Fprintln(content, trashInfoHeader)
	fmt.Fprintf(content, "Path=%s\n", encodeTrashPath(i.Path))
	fmt.Fprintf(content, "DeletionDate=%s\n", i.DeletionDate.Format(timeFormat))

	f, err := fs.CreateExclusive(path, 0600)
	if err != nil {
		return fmt.Errorf("failed to create info file: %w", err)
	}
	defer f.Close()

	if _, err := f.WriteString(content.String()); err != nil {
		os.Remove(path)
		return fmt.Errorf("failed to write info file: %w", err)
	}

	return nil
}

// encodeTrashPath encodes a path according to the XDG specification:
// - Forward slashes are not encoded
// - Spaces are encoded as %20 (not +)
// - Other special characters are percent-encoded
func encodeTrashPath(path string) string {
	parts := strings.Split(path, "/")
	for i, part := range parts {
		subparts := strings.Split(part, " ")
		for j, subpart := range subparts {
			subparts[j] = url.QueryEscape(subpart)
		}
		parts[i] = strings.Join(subparts, "%20")
	}
	return strings.Join(parts, "/")
}

// LoadInfo loads and parses the .trashinfo sidecar at path.
func LoadInfo(path string) (*TrashInfo, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open info file: %w", err)
	}
	defer f.Close()

	return ParseInfo(f)
}

// infoPathFor returns the .trashinfo sidecar path for a file stored
// under a trash root's files directory.
func infoPathFor(trashedPath string) string {
	return filepath.Join(
		filepath.Dir(filepath.Dir(trashedPath)),
		"info",
		filepath.Base(trashedPath)+".trashinfo",
	)
}
