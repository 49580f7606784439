package screenshot

import "time"

// SortKey selects the attribute a scan result is ordered by.
type SortKey string

const (
	SortByName       SortKey = "name"
	SortByCreatedAt  SortKey = "createdAt"
	SortByModifiedAt SortKey = "modifiedAt"
	SortBySize       SortKey = "size"
)

// Entry represents one discovered screenshot file. Metadata fields are
// pointers because the filesystem may not report them; an absent value
// is not an error.
type Entry struct {
	// Path is the absolute path of the file
	Path string

	// Name is the base name, derived from Path
	Name string

	// CreatedAt is the birth time, where the platform reports one
	CreatedAt *time.Time

	// ModifiedAt is the last modification time
	ModifiedAt *time.Time

	// Size is the file size in bytes
	Size *int64
}
