//go:build !windows

package xdg

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/moby/sys/mountinfo"
)

// Skip file systems that can't have trash directories
var skipFSTypes = map[string]bool{
	"proc":        true,
	"sysfs":       true,
	"devtmpfs":    true,
	"devpts":      true,
	"tmpfs":       true,
	"cgroup":      true,
	"cgroup2":     true,
	"pstore":      true,
	"securityfs":  true,
	"debugfs":     true,
	"configfs":    true,
	"fusectl":     true,
	"bpf":         true,
	"nsfs":        true,
	"efivarfs":    true,
	"hugetlbfs":   true,
	"mqueue":      true,
	"binfmt_misc": true,
}

// mountPointOf returns the mount point containing path, by longest
// prefix match over the mount table.
func mountPointOf(path string) (string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", err
	}

	mounts, err := mountinfo.GetMounts(func(info *mountinfo.Info) (skip, stop bool) {
		if skipFSTypes[info.FSType] {
			return true, false
		}
		return false, false
	})
	if err != nil {
		return "", fmt.Errorf("failed to get mount info: %w", err)
	}

	var best string
	for _, m := range mounts {
		mp := m.Mountpoint
		if mp != "/" && !strings.HasSuffix(mp, "/") {
			mp += "/"
		}
		if (abs+"/" == mp || strings.HasPrefix(abs+"/", mp)) && len(m.Mountpoint) > len(best) {
			best = m.Mountpoint
		}
	}
	if best == "" {
		return "", fmt.Errorf("no mount point found for %s", abs)
	}
	return best, nil
}
