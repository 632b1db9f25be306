// Package core implements the ignoresync pipeline.
//
// A sync is a linear batch operation: collect the untracked paths from
// the version control client, append them verbatim to the ignore file,
// purge the index (best effort, never fatal), and re-query the
// untracked set for the final report. The only gate is the
// precondition that the target directory is a repository root.
//
// Mutating runs are recorded in a journal so the most recent append
// can be undone, guarded by a content hash of the ignore file.
package core
