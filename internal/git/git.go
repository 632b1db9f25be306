package git

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
)

// MetadataDir is the directory git keeps its repository data in.
const MetadataDir = ".git"

// untrackedPrefix is the fixed-width marker git prints for untracked
// entries in porcelain status output. The path starts right after it.
const untrackedPrefix = "?? "

// Client is the capability surface ignoresync needs from the version
// control system. Abstracting it keeps the sync logic testable without
// a git binary or a real repository.
type Client interface {
	// ListUntracked returns the paths git currently reports as untracked,
	// in status output order. An entirely untracked directory is reported
	// as a single "dir/" entry.
	ListUntracked(ctx context.Context) ([]string, error)

	// PurgeIndex removes every tracked path from the index recursively,
	// leaving the working tree untouched.
	PurgeIndex(ctx context.Context) error
}

// IsRepoRoot checks if dir contains a git metadata directory
func IsRepoRoot(dir string) bool {
	info, err := os.Stat(filepath.Join(dir, MetadataDir))
	return err == nil && info.IsDir()
}

// CLI runs the git binary against a fixed working directory.
type CLI struct {
	workDir string
}

// NewCLI creates a Client backed by the git command line tool
func NewCLI(workDir string) *CLI {
	return &CLI{workDir: workDir}
}

// ListUntracked queries git status in porcelain format and extracts the
// untracked paths.
func (c *CLI) ListUntracked(ctx context.Context) ([]string, error) {
	cmd := exec.CommandContext(ctx, "git", "status", "--porcelain", "--untracked-files=normal")
	cmd.Dir = c.workDir
	output, err := cmd.Output()
	if err != nil {
		return nil, fmt.Errorf("git status failed: %w", err)
	}
	return ParseUntracked(string(output)), nil
}

// PurgeIndex runs "git rm -r --cached ." from the repository root.
// Output is discarded; the caller decides whether the error matters.
func (c *CLI) PurgeIndex(ctx context.Context) error {
	cmd := exec.CommandContext(ctx, "git", "rm", "-r", "--cached", ".")
	cmd.Dir = c.workDir
	return cmd.Run()
}

// ParseUntracked extracts untracked paths from porcelain status output.
// Lines carrying any other status code are skipped. The fixed-width
// "?? " prefix is stripped and the rest of the line is the path, verbatim.
func ParseUntracked(output string) []string {
	var paths []string
	for _, line := range strings.Split(output, "\n") {
		if strings.HasPrefix(line, untrackedPrefix) {
			paths = append(paths, line[len(untrackedPrefix):])
		}
	}
	return paths
}
