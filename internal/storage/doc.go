// Package storage persists the ignoresync run journal in a BBolt
// database kept at the repository root.
//
// Each sync that mutates the ignore file is recorded as a Run under a
// monotonically increasing sequence key. The journal powers the
// history listing and the undo of the most recent run.
package storage
