//go:build !darwin

package screenshot

import (
	"os"
	"time"
)

// birthTime is unavailable here; CreatedAt stays absent and callers
// treat that as a missing optional field.
func birthTime(os.FileInfo) *time.Time {
	return nil
}
