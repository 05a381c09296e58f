//go:build !linux

package logs

import (
	"os"
	"time"
)

// creationTime falls back to the modification time on platforms where Stat
// does not expose a change timestamp.
func creationTime(info os.FileInfo) time.Time {
	return info.ModTime()
}
