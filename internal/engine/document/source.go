package document

import (
	"bufio"
	"fmt"
	"os"
)

// LineSource produces the ordered raw lines of a named resource, yielded
// once at load time.
type LineSource interface {
	// Lines returns every line in order, without trailing newlines.
	Lines() ([]string, error)
}

// FileSource reads lines from a file on disk.
type FileSource struct {
	path string
}

// NewFileSource creates a line source for the given path.
func NewFileSource(path string) *FileSource {
	return &FileSource{path: path}
}

// Path returns the file path this source reads from.
func (s *FileSource) Path() string {
	return s.path
}

// Lines reads the whole file, splitting on newlines.
func (s *FileSource) Lines() ([]string, error) {
	f, err := os.Open(s.path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var lines []string
	scanner := bufio.NewScanner(f)
	// Accept long lines well past the default 64K token limit.
	scanner.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading %s: %w", s.path, err)
	}
	return lines, nil
}

// StringSource yields a fixed set of lines. Useful for tests and stdin
// capture.
type StringSource []string

// Lines returns the lines as given.
func (s StringSource) Lines() ([]string, error) {
	return []string(s), nil
}
