package ignore

import (
	"errors"
	"fmt"
	"os"
	"strings"
)

const (
	// FilePerm is the mode used when the ignore file is created by an
	// append to a repository that has none yet.
	FilePerm = 0644
)

var ErrTailMismatch = errors.New("ignore file does not end with the expected entries")

// File provides access to a repository ignore file. The workflow is
// append-only: existing content is never rewritten, new entries go to
// the end verbatim, duplicates included.
type File struct {
	path string
}

// NewFile creates a File for the ignore file at path
func NewFile(path string) *File {
	return &File{path: path}
}

// Path returns the location of the ignore file
func (f *File) Path() string {
	return f.path
}

// Read returns the current content, or empty content if the file does
// not exist yet.
func (f *File) Read() ([]byte, error) {
	data, err := os.ReadFile(f.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read ignore file: %w", err)
	}
	return data, nil
}

// Entries returns the non-empty lines of the ignore file.
func (f *File) Entries() ([]string, error) {
	data, err := f.Read()
	if err != nil {
		return nil, err
	}

	var entries []string
	for _, line := range strings.Split(string(data), "\n") {
		if strings.TrimSpace(line) != "" {
			entries = append(entries, line)
		}
	}
	return entries, nil
}

// Append writes each path as one newline-terminated line at the end of
// the ignore file, creating it if absent. No deduplication against
// existing entries is performed; repeated appends grow the file.
func (f *File) Append(paths []string) error {
	if len(paths) == 0 {
		return nil
	}

	file, err := os.OpenFile(f.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, FilePerm)
	if err != nil {
		return fmt.Errorf("failed to open ignore file: %w", err)
	}
	defer file.Close()

	if _, err := file.WriteString(RenderLines(paths)); err != nil {
		return fmt.Errorf("failed to append to ignore file: %w", err)
	}
	return nil
}

// TrimTail removes the given trailing entries from the end of the file.
// The file must end with exactly those lines in order, otherwise nothing
// is changed and ErrTailMismatch is returned.
func (f *File) TrimTail(paths []string) error {
	if len(paths) == 0 {
		return nil
	}

	data, err := f.Read()
	if err != nil {
		return err
	}

	tail := RenderLines(paths)
	if !strings.HasSuffix(string(data), tail) {
		return ErrTailMismatch
	}

	remaining := data[:len(data)-len(tail)]
	if err := os.WriteFile(f.path, remaining, FilePerm); err != nil {
		return fmt.Errorf("failed to rewrite ignore file: %w", err)
	}
	return nil
}

// RenderLines formats paths the way Append writes them: one per line,
// each line newline-terminated.
func RenderLines(paths []string) string {
	var b strings.Builder
	for _, p := range paths {
		b.WriteString(p)
		b.WriteString("\n")
	}
	return b.String()
}

// RenderAfterAppend returns the content the ignore file would have after
// appending the given paths. Used for dry-run previews.
func RenderAfterAppend(current []byte, paths []string) []byte {
	return append(append([]byte(nil), current...), RenderLines(paths)...)
}
