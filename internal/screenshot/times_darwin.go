//go:build darwin

package screenshot

import (
	"os"
	"syscall"
	"time"
)

// birthTime returns the file creation time reported by the kernel.
func birthTime(info os.FileInfo) *time.Time {
	st, ok := info.Sys().(*syscall.Stat_t)
	if !ok {
		return nil
	}
	ts := st.Birthtimespec
	if ts.Sec == 0 && ts.Nsec == 0 {
		return nil
	}
	t := time.Unix(ts.Sec, ts.Nsec)
	return &t
}
