package logs

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
)

// ResolveFiles returns the ordered log files for one date (YYYY-MM-DD):
// archived <date>-N.log.gz files under <serverDir>/logs sorted by N
// ascending, then latest.log if it was created on that date. Archived files
// are strictly earlier than the live file, so this ordering keeps the
// concatenated line stream chronological.
//
// Returns an empty slice and nil error when nothing matches; the caller
// decides whether an empty day is fatal.
func ResolveFiles(serverDir, date string) ([]string, error) {
	logsDir := filepath.Join(serverDir, "logs")

	archived, err := filepath.Glob(filepath.Join(logsDir, date+"-*.log.gz"))
	if err != nil {
		return nil, fmt.Errorf("globbing archived logs: %w", err)
	}

	// Numeric sort on the rotation suffix: -10 must come after -9.
	sort.Slice(archived, func(i, j int) bool {
		return archiveIndex(archived[i]) < archiveIndex(archived[j])
	})

	files := archived

	latest := filepath.Join(logsDir, "latest.log")
	if info, err := os.Stat(latest); err == nil {
		if creationTime(info).UTC().Format("2006-01-02") == date {
			files = append(files, latest)
		}
	}

	return files, nil
}

// archiveIndex extracts the rotation suffix from a path like
// .../2026-02-15-3.log.gz.
func archiveIndex(path string) int {
	name := strings.TrimSuffix(filepath.Base(path), ".log.gz")
	n, err := strconv.Atoi(name[strings.LastIndex(name, "-")+1:])
	if err != nil {
		return 0
	}
	return n
}
