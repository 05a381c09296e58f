package logs

import (
	"fmt"
	"time"
)

// FormatEST renders a time as "3:04 PM".
func FormatEST(t time.Time) string {
	return t.Format("3:04 PM")
}

// FormatESTFull renders a time as "3:04:05 PM".
func FormatESTFull(t time.Time) string {
	return t.Format("3:04:05 PM")
}

// FormatDuration renders a second count compactly: 45s, 3m20s, 1h2m3s.
func FormatDuration(seconds int) string {
	if seconds < 60 {
		return fmt.Sprintf("%ds", seconds)
	}
	m := seconds / 60
	s := seconds % 60
	h := m / 60
	m = m % 60
	if h > 0 {
		return fmt.Sprintf("%dh%dm%ds", h, m, s)
	}
	return fmt.Sprintf("%dm%ds", m, s)
}
