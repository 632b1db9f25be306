// Package git wraps the git command line tool for ignoresync.
//
// The Client interface covers the only two operations the tool needs:
//   - listing untracked paths via the porcelain status format
//   - removing all tracked paths from the index (index only, the
//     working tree is never touched)
//
// Keeping the surface this small lets the sync logic be exercised with
// a fake client in tests, without a git binary installed.
package git
