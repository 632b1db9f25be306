package core

import (
	"context"
	"encoding/hex"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"golang.org/x/crypto/blake2b"

	"github.com/illarion/ignoresync/internal/config"
	"github.com/illarion/ignoresync/internal/git"
	"github.com/illarion/ignoresync/internal/ignore"
	"github.com/illarion/ignoresync/internal/security"
	"github.com/illarion/ignoresync/internal/storage"
)

// JournalFile is the run journal kept at the repository root.
const JournalFile = ".ignoresync"

var (
	ErrNotARepo          = errors.New("not a git repository")
	ErrNoHistory         = errors.New("no recorded sync runs")
	ErrIgnoreFileChanged = errors.New("ignore file changed since last sync")
)

// IgnoreSync appends untracked paths to the ignore file and clears the
// git index so the newly ignored paths stop being tracked.
type IgnoreSync struct {
	root      string
	cfg       *config.Config
	client    git.Client
	validator *security.PathValidator
	ignore    *ignore.File
}

// New creates an IgnoreSync for the repository at root. It fails with
// ErrNotARepo, before touching anything, when root has no git metadata
// directory.
func New(root string) (*IgnoreSync, error) {
	if !git.IsRepoRoot(root) {
		return nil, ErrNotARepo
	}

	cfg, err := config.Load(root)
	if err != nil {
		return nil, err
	}

	validator, err := security.New(root)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize path validator: %w", err)
	}

	return &IgnoreSync{
		root:      root,
		cfg:       cfg,
		client:    git.NewCLI(root),
		validator: validator,
		ignore:    ignore.NewFile(filepath.Join(root, cfg.IgnoreFile)),
	}, nil
}

// Close releases resources held by the IgnoreSync instance
func (s *IgnoreSync) Close() error {
	if s.validator != nil {
		return s.validator.Close()
	}
	return nil
}

// Config returns the loaded repository configuration
func (s *IgnoreSync) Config() *config.Config {
	return s.cfg
}

// IgnoreFile returns the ignore file this instance maintains
func (s *IgnoreSync) IgnoreFile() *ignore.File {
	return s.ignore
}

// Plan is the outcome of collecting untracked paths: what will be
// appended and what was filtered out.
type Plan struct {
	Paths   []string
	Skipped []string
}

// Empty reports whether the plan has nothing to append
func (p *Plan) Empty() bool {
	return len(p.Paths) == 0
}

// Collect queries the untracked paths and filters out the tool's own
// state files, configured exclude patterns, and paths that fail
// validation. Order is preserved.
func (s *IgnoreSync) Collect(ctx context.Context) (*Plan, error) {
	untracked, err := s.client.ListUntracked(ctx)
	if err != nil {
		return nil, err
	}

	plan := &Plan{}
	for _, p := range untracked {
		if s.isOwnFile(p) || s.cfg.Excluded(p) {
			plan.Skipped = append(plan.Skipped, p)
			continue
		}
		if err := s.validator.Validate(p); err != nil {
			plan.Skipped = append(plan.Skipped, p)
			continue
		}
		plan.Paths = append(plan.Paths, p)
	}
	return plan, nil
}

// isOwnFile reports whether p is state the tool itself keeps in the
// repository. Appending those would gitignore the journal.
func (s *IgnoreSync) isOwnFile(p string) bool {
	return p == JournalFile || p == config.FileName
}

// Preview collects untracked paths and renders the unified diff of the
// ignore file change a sync would make. Nothing is mutated.
func (s *IgnoreSync) Preview(ctx context.Context) (*Plan, string, error) {
	plan, err := s.Collect(ctx)
	if err != nil {
		return nil, "", err
	}

	before, err := s.ignore.Read()
	if err != nil {
		return nil, "", err
	}
	after := ignore.RenderAfterAppend(before, plan.Paths)

	return plan, ignore.UnifiedDiff(s.cfg.IgnoreFile, before, after), nil
}

// SyncResult reports what a completed sync did. PurgeErr and ReportErr
// are informational: both steps are best effort and never fail the run.
type SyncResult struct {
	Appended   []string
	Skipped    []string
	PurgeErr   error
	Remaining  []string // untracked paths reported after the purge
	ReportErr  error
	JournalErr error
}

// Apply executes a collected plan: append the paths to the ignore file,
// purge the index, re-query the untracked set for the report, and
// record the run in the journal. Only the append can fail the sync;
// the purge result is deliberately carried in the result instead of
// aborting, matching the tool's best-effort contract for that step.
func (s *IgnoreSync) Apply(ctx context.Context, plan *Plan) (*SyncResult, error) {
	if err := s.ignore.Append(plan.Paths); err != nil {
		return nil, err
	}

	result := &SyncResult{
		Appended: plan.Paths,
		Skipped:  plan.Skipped,
	}

	result.PurgeErr = s.client.PurgeIndex(ctx)

	remaining, err := s.client.ListUntracked(ctx)
	if err != nil {
		result.ReportErr = err
	} else {
		result.Remaining = remaining
	}

	if s.cfg.Journal && len(result.Appended) > 0 {
		result.JournalErr = s.recordRun(result)
	}

	return result, nil
}

// recordRun persists the sync outcome in the journal, including the
// ignore file's post-append content hash that guards a later undo.
func (s *IgnoreSync) recordRun(result *SyncResult) error {
	content, err := s.ignore.Read()
	if err != nil {
		return err
	}

	journal, err := storage.Open(filepath.Join(s.root, JournalFile))
	if err != nil {
		return err
	}
	defer journal.Close()

	run := storage.Run{
		Time:       time.Now(),
		Appended:   result.Appended,
		IgnoreHash: hashContent(content),
	}
	if result.PurgeErr != nil {
		run.PurgeError = result.PurgeErr.Error()
	}

	_, err = journal.RecordRun(run)
	return err
}

// Undo backs out the most recent journaled sync: the lines it appended
// are removed from the tail of the ignore file and the run entry is
// deleted. Refuses with ErrIgnoreFileChanged when the ignore file no
// longer matches the content hash recorded at the end of that run.
//
// The index purge is not reversed; re-tracking is a git add away and
// left to the user.
func (s *IgnoreSync) Undo(ctx context.Context) (*storage.Run, error) {
	journalPath := filepath.Join(s.root, JournalFile)
	if _, err := os.Stat(journalPath); os.IsNotExist(err) {
		return nil, ErrNoHistory
	}

	journal, err := storage.Open(journalPath)
	if err != nil {
		return nil, err
	}
	defer journal.Close()

	run, seq, ok, err := journal.LastRun()
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrNoHistory
	}

	content, err := s.ignore.Read()
	if err != nil {
		return nil, err
	}
	if hashContent(content) != run.IgnoreHash {
		return nil, ErrIgnoreFileChanged
	}

	if err := s.ignore.TrimTail(run.Appended); err != nil {
		return nil, err
	}
	if err := journal.DeleteRun(seq); err != nil {
		return nil, err
	}

	return &run, nil
}

// History returns all journaled runs in chronological order
func (s *IgnoreSync) History() ([]storage.Run, error) {
	journalPath := filepath.Join(s.root, JournalFile)
	if _, err := os.Stat(journalPath); os.IsNotExist(err) {
		return nil, nil
	}

	journal, err := storage.Open(journalPath)
	if err != nil {
		return nil, err
	}
	defer journal.Close()

	return journal.Runs()
}

// Status describes the current repository state as ignoresync sees it
type Status struct {
	Untracked     []string
	Skipped       []string
	IgnoreEntries int
	Runs          int
	LastSync      *storage.Run
}

// Status gathers the untracked path list, ignore file entry count, and
// journal summary.
func (s *IgnoreSync) Status(ctx context.Context) (*Status, error) {
	plan, err := s.Collect(ctx)
	if err != nil {
		return nil, err
	}

	entries, err := s.ignore.Entries()
	if err != nil {
		return nil, err
	}

	status := &Status{
		Untracked:     plan.Paths,
		Skipped:       plan.Skipped,
		IgnoreEntries: len(entries),
	}

	runs, err := s.History()
	if err != nil {
		return nil, err
	}
	status.Runs = len(runs)
	if len(runs) > 0 {
		last := runs[len(runs)-1]
		status.LastSync = &last
	}

	return status, nil
}

// hashContent returns the hex BLAKE2b-256 digest of the ignore file
// content.
func hashContent(data []byte) string {
	sum := blake2b.Sum256(data)
	return hex.EncodeToString(sum[:])
}
