package storage

import (
	"time"
)

// Run records one completed sync: what was appended to the ignore file,
// the ignore file's content hash right after the append, and whether
// the index purge succeeded.
type Run struct {
	Time       time.Time `json:"time"`
	Appended   []string  `json:"appended"`
	IgnoreHash string    `json:"ignoreHash"`
	PurgeError string    `json:"purgeError,omitempty"`
}

// PurgeFailed reports whether the index purge step of this run failed
func (r Run) PurgeFailed() bool {
	return r.PurgeError != ""
}
