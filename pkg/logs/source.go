package logs

import (
	"bufio"
	"compress/gzip"
	"context"
	"fmt"
	"io"
	"os"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// Line envelope: [HH:MM:SS] [Thread/LEVEL]: Message
// Anything that doesn't carry the envelope is server noise and is skipped.
var envelopeRE = regexp.MustCompile(`^\[(\d{2}):(\d{2}):(\d{2})\] \[([^/]+)/(\w+)\]: (.+)$`)

// Source provides an iterator over parsed log records.
// Implementations must be safe for sequential access (not concurrent).
type Source interface {
	// Next returns the next record. Returns io.EOF when all files have
	// been exhausted. Lines that don't match the envelope are skipped.
	Next(ctx context.Context) (*Record, error)

	// Close releases any resources held by the source.
	Close() error
}

// FileSource reads records from a day's resolved log files in order,
// decompressing archived .gz files transparently. Opening the same file set
// and date again yields an identical record sequence.
type FileSource struct {
	files []string
	base  time.Time

	currentFile    *os.File
	currentGzip    *gzip.Reader
	currentScanner *bufio.Scanner
	currentSource  string
	fileIndex      int
}

// NewFileSource creates a Source over the given files. The date (YYYY-MM-DD)
// supplies the day each line's wall-clock time is combined with; file
// metadata never determines event dates.
func NewFileSource(files []string, date string) (*FileSource, error) {
	base, err := time.ParseInLocation("2006-01-02", date, time.UTC)
	if err != nil {
		return nil, fmt.Errorf("parsing date %q: %w", date, err)
	}
	return &FileSource{
		files:     files,
		base:      base,
		fileIndex: -1,
	}, nil
}

// Next returns the next parsed log record.
// Returns io.EOF when all files have been exhausted.
func (s *FileSource) Next(ctx context.Context) (*Record, error) {
	for {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}

		if s.currentScanner == nil {
			if err := s.openNextFile(); err != nil {
				return nil, err
			}
		}

		if s.currentScanner.Scan() {
			// Invalid byte sequences are replaced, never fatal.
			line := strings.ToValidUTF8(s.currentScanner.Text(), "�")

			m := envelopeRE.FindStringSubmatch(line)
			if m == nil {
				continue
			}

			hour, _ := strconv.Atoi(m[1])
			minute, _ := strconv.Atoi(m[2])
			second, _ := strconv.Atoi(m[3])

			return &Record{
				Time: time.Date(s.base.Year(), s.base.Month(), s.base.Day(),
					hour, minute, second, 0, time.UTC),
				Thread:  m[4],
				Level:   m[5],
				Message: m[6],
			}, nil
		}

		if err := s.currentScanner.Err(); err != nil {
			return nil, fmt.Errorf("reading %s: %w", s.currentSource, err)
		}

		// Current file exhausted, move on.
		if err := s.closeCurrentFile(); err != nil {
			return nil, err
		}
	}
}

// Close releases resources.
func (s *FileSource) Close() error {
	return s.closeCurrentFile()
}

func (s *FileSource) openNextFile() error {
	s.fileIndex++
	if s.fileIndex >= len(s.files) {
		return io.EOF
	}

	path := s.files[s.fileIndex]
	f, err := os.Open(path) // #nosec G304 -- resolved log paths are expected
	if err != nil {
		return fmt.Errorf("opening log file %s: %w", path, err)
	}

	var reader io.Reader = f
	if strings.HasSuffix(path, ".gz") {
		gz, err := gzip.NewReader(f)
		if err != nil {
			f.Close()
			return fmt.Errorf("opening archived log %s: %w", path, err)
		}
		s.currentGzip = gz
		reader = gz
	}

	s.currentFile = f
	s.currentScanner = bufio.NewScanner(reader)
	s.currentScanner.Buffer(make([]byte, 0, 64*1024), 1024*1024) // 1MB max line size
	s.currentSource = path

	return nil
}

func (s *FileSource) closeCurrentFile() error {
	if s.currentFile == nil {
		return nil
	}

	var gzErr error
	if s.currentGzip != nil {
		gzErr = s.currentGzip.Close()
		s.currentGzip = nil
	}

	err := s.currentFile.Close()
	s.currentFile = nil
	s.currentScanner = nil

	if err != nil {
		return err
	}
	return gzErr
}

// ReadAll drains a Source into an ordered record slice and closes it.
// The slice is the shared input every extractor fans out over.
func ReadAll(ctx context.Context, src Source) ([]Record, error) {
	defer src.Close()

	var records []Record
	for {
		rec, err := src.Next(ctx)
		if err == io.EOF {
			return records, nil
		}
		if err != nil {
			return nil, err
		}
		records = append(records, *rec)
	}
}
