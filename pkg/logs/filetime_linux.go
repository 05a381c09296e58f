//go:build linux

package logs

import (
	"os"
	"syscall"
	"time"
)

// creationTime returns the inode change time, the closest thing Stat gives
// to a creation timestamp on Linux. The live log file is recreated on every
// rotation, so its ctime tracks the day it started.
func creationTime(info os.FileInfo) time.Time {
	if st, ok := info.Sys().(*syscall.Stat_t); ok {
		return time.Unix(int64(st.Ctim.Sec), int64(st.Ctim.Nsec))
	}
	return info.ModTime()
}
