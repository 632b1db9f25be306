package security

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

var (
	ErrPathEscapes  = errors.New("path escapes repository")
	ErrAbsolutePath = errors.New("absolute paths are not allowed")
	ErrEmptyPath    = errors.New("empty path not allowed")
)

// PathValidator screens paths before they are written to the ignore
// file, confining them to the repository root using Go 1.24's os.Root
// API. Git itself only reports repository-relative paths, so this is a
// guard against malformed or hostile status output.
type PathValidator struct {
	repoRoot *os.Root
	repoPath string
}

// New creates a new PathValidator for the repository at the given path.
func New(repoPath string) (*PathValidator, error) {
	absPath, err := filepath.Abs(repoPath)
	if err != nil {
		return nil, fmt.Errorf("failed to get absolute path: %w", err)
	}

	root, err := os.OpenRoot(absPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open repository root: %w", err)
	}

	return &PathValidator{
		repoRoot: root,
		repoPath: absPath,
	}, nil
}

// Close releases resources held by the PathValidator.
func (pv *PathValidator) Close() error {
	if pv.repoRoot != nil {
		return pv.repoRoot.Close()
	}
	return nil
}

// Validate checks that an untracked path reported by the status query
// stays inside the repository. It rejects:
// - Empty paths
// - Absolute paths
// - Paths that escape the repository (using ..)
// - Windows reserved names (CON, NUL, etc.)
// - Paths that are not local (using filepath.IsLocal)
//
// Directory entries carry a trailing slash in status output; the slash
// is ignored for validation and the original path is left untouched.
func (pv *PathValidator) Validate(userPath string) error {
	checked := strings.TrimSuffix(userPath, "/")
	if checked == "" {
		return ErrEmptyPath
	}

	// filepath.IsLocal rejects absolute paths, escaping paths,
	// reserved names, etc. (Go 1.20+)
	if !filepath.IsLocal(checked) {
		if filepath.IsAbs(checked) {
			return fmt.Errorf("%w: %s", ErrAbsolutePath, userPath)
		}
		return fmt.Errorf("%w: %s", ErrPathEscapes, userPath)
	}

	cleanPath := filepath.Clean(checked)
	if !filepath.IsLocal(cleanPath) {
		return fmt.Errorf("%w: %s", ErrPathEscapes, cleanPath)
	}

	// Verify containment using filepath.Rel as a second opinion.
	absPath := filepath.Join(pv.repoPath, cleanPath)
	relPath, err := filepath.Rel(pv.repoPath, absPath)
	if err != nil {
		return fmt.Errorf("failed to compute relative path: %w", err)
	}
	if strings.HasPrefix(relPath, "..") || filepath.IsAbs(relPath) {
		return fmt.Errorf("%w: %s", ErrPathEscapes, userPath)
	}

	return nil
}
