package config

import (
	"os"
	"path/filepath"
)

// NewDefaultConfig creates a new Config with default values
func NewDefaultConfig() Config {
	homedir, _ := os.UserHomeDir()

	return Config{
		Core: Core{
			// macOS drops screenshots on the desktop by default
			ScreenshotsDir: filepath.Join(homedir, "Desktop"),
			HomeFallback:   true,
			Undo: Undo{
				MaxBatches: 100,
				Verbose:    true,
			},
		},
		List: List{
			SortBy:     "modifiedAt",
			Descending: true,
		},
		Filter: Filter{
			Exclude: Exclude{
				Files: []string{
					// In macOS, .DS_Store stores custom attributes of
					// its containing folder
					".DS_Store",
				},
				Patterns: []string{},
				Globs:    []string{},
			},
		},
		Logging: Logging{
			Enabled: true,
			Level:   "debug",
			MaxSize: "10MB",
		},
	}
}
