package log

import (
	"os"

	"github.com/docker/go-units"
)

const defaultMaxLogSize = 10 * 1024 * 1024

// rotate renames path aside when it exceeds maxSize (a human-readable
// size such as "10MB"). A single previous generation is kept.
func rotate(path, maxSize string) {
	limit := int64(defaultMaxLogSize)
	if maxSize != "" {
		if parsed, err := units.FromHumanSize(maxSize); err == nil && parsed > 0 {
			limit = parsed
		}
	}

	fi, err := os.Stat(path)
	if err != nil || fi.Size() < limit {
		return
	}

	// Best effort: a failed rotation only means a bigger log file.
	_ = os.Remove(path + ".old")
	_ = os.Rename(path, path+".old")
}
