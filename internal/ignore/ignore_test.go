package ignore

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestAppendCreatesFile(t *testing.T) {
	dir := t.TempDir()
	file := NewFile(filepath.Join(dir, ".gitignore"))

	if err := file.Append([]string{"a.txt", "build/"}); err != nil {
		t.Fatalf("Append failed: %v", err)
	}

	data, err := os.ReadFile(file.Path())
	if err != nil {
		t.Fatalf("Failed to read ignore file: %v", err)
	}
	if string(data) != "a.txt\nbuild/\n" {
		t.Errorf("Unexpected content: %q", string(data))
	}
}

func TestAppendPreservesExistingContent(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ".gitignore")
	if err := os.WriteFile(path, []byte("*.log\n"), 0644); err != nil {
		t.Fatalf("Failed to seed ignore file: %v", err)
	}

	file := NewFile(path)
	if err := file.Append([]string{"tmp/"}); err != nil {
		t.Fatalf("Append failed: %v", err)
	}

	data, _ := os.ReadFile(path)
	if string(data) != "*.log\ntmp/\n" {
		t.Errorf("Existing content not preserved: %q", string(data))
	}
}

func TestAppendDoesNotDeduplicate(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ".gitignore")
	if err := os.WriteFile(path, []byte("foo.txt\n"), 0644); err != nil {
		t.Fatalf("Failed to seed ignore file: %v", err)
	}

	file := NewFile(path)
	if err := file.Append([]string{"foo.txt"}); err != nil {
		t.Fatalf("Append failed: %v", err)
	}

	data, _ := os.ReadFile(path)
	if got := strings.Count(string(data), "foo.txt"); got < 2 {
		t.Errorf("Expected foo.txt at least twice, found %d in %q", got, string(data))
	}
}

func TestAppendEmptyIsNoop(t *testing.T) {
	dir := t.TempDir()
	file := NewFile(filepath.Join(dir, ".gitignore"))

	if err := file.Append(nil); err != nil {
		t.Fatalf("Append failed: %v", err)
	}
	if _, err := os.Stat(file.Path()); !os.IsNotExist(err) {
		t.Error("Appending nothing should not create the file")
	}
}

func TestReadMissingFile(t *testing.T) {
	dir := t.TempDir()
	file := NewFile(filepath.Join(dir, ".gitignore"))

	data, err := file.Read()
	if err != nil {
		t.Fatalf("Read of missing file should not error: %v", err)
	}
	if len(data) != 0 {
		t.Errorf("Expected empty content, got %q", string(data))
	}
}

func TestEntries(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ".gitignore")
	if err := os.WriteFile(path, []byte("a.txt\n\nb.txt\n"), 0644); err != nil {
		t.Fatalf("Failed to seed ignore file: %v", err)
	}

	entries, err := NewFile(path).Entries()
	if err != nil {
		t.Fatalf("Entries failed: %v", err)
	}
	if len(entries) != 2 {
		t.Errorf("Expected 2 entries, got %v", entries)
	}
}

func TestTrimTail(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ".gitignore")
	if err := os.WriteFile(path, []byte("*.log\na.txt\nbuild/\n"), 0644); err != nil {
		t.Fatalf("Failed to seed ignore file: %v", err)
	}

	file := NewFile(path)
	if err := file.TrimTail([]string{"a.txt", "build/"}); err != nil {
		t.Fatalf("TrimTail failed: %v", err)
	}

	data, _ := os.ReadFile(path)
	if string(data) != "*.log\n" {
		t.Errorf("Unexpected content after trim: %q", string(data))
	}
}

func TestTrimTailMismatch(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ".gitignore")
	if err := os.WriteFile(path, []byte("*.log\nedited-by-hand\n"), 0644); err != nil {
		t.Fatalf("Failed to seed ignore file: %v", err)
	}

	file := NewFile(path)
	err := file.TrimTail([]string{"a.txt"})
	if !errors.Is(err, ErrTailMismatch) {
		t.Fatalf("Expected ErrTailMismatch, got %v", err)
	}

	// File must be untouched after a refused trim.
	data, _ := os.ReadFile(path)
	if string(data) != "*.log\nedited-by-hand\n" {
		t.Errorf("File modified despite mismatch: %q", string(data))
	}
}

func TestUnifiedDiff(t *testing.T) {
	before := []byte("*.log\n")
	after := RenderAfterAppend(before, []string{"a.txt"})

	diff := UnifiedDiff(".gitignore", before, after)
	if diff == "" {
		t.Fatal("Expected non-empty diff")
	}
	if !strings.Contains(diff, "--- a/.gitignore") || !strings.Contains(diff, "+++ b/.gitignore") {
		t.Errorf("Diff missing file headers: %q", diff)
	}
	if !strings.Contains(diff, "a.txt") {
		t.Errorf("Diff missing appended entry: %q", diff)
	}
}

func TestUnifiedDiffIdentical(t *testing.T) {
	content := []byte("*.log\n")
	if diff := UnifiedDiff(".gitignore", content, content); diff != "" {
		t.Errorf("Expected empty diff for identical content, got %q", diff)
	}
}
