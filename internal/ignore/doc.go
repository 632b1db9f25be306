// Package ignore handles access to the repository ignore file.
//
// The contract is raw append: new entries are written verbatim to the
// end of the file with no deduplication, sorting, or section handling.
// Repeated syncs of the same path grow the file. The only structured
// mutation is TrimTail, which backs out the exact lines a previous
// append added.
package ignore
