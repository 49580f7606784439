//go:build windows

package xdg

import (
	"fmt"
	"path/filepath"
)

// mountPointOf approximates the mount point with the volume name.
func mountPointOf(path string) (string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", err
	}
	vol := filepath.VolumeName(abs)
	if vol == "" {
		return "", fmt.Errorf("no volume found for %s", abs)
	}
	return vol + `\`, nil
}
