package storage

import (
	"encoding/binary"
	"encoding/json"
	"fmt"
	"time"

	bolt "go.etcd.io/bbolt"
)

// Bucket names
var (
	ConfigBucket = []byte("config") // version, timestamps
	RunsBucket   = []byte("runs")   // sequential sync run records
)

// Config keys
var (
	ConfigVersion  = []byte("version")
	ConfigCreated  = []byte("created")
	ConfigModified = []byte("modified")
)

// Journal provides BBolt-based storage for recorded sync runs
type Journal struct {
	db *bolt.DB
}

// Open opens or creates a journal database and ensures its bucket
// structure exists.
func Open(path string) (*Journal, error) {
	db, err := bolt.Open(path, 0600, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to open journal: %w", err)
	}

	err = db.Update(func(tx *bolt.Tx) error {
		for _, bucket := range [][]byte{ConfigBucket, RunsBucket} {
			if _, err := tx.CreateBucketIfNotExists(bucket); err != nil {
				return fmt.Errorf("failed to create bucket %s: %w", bucket, err)
			}
		}

		config := tx.Bucket(ConfigBucket)
		if config.Get(ConfigVersion) != nil {
			return nil
		}
		if err := config.Put(ConfigVersion, []byte("1")); err != nil {
			return err
		}
		created, _ := time.Now().MarshalBinary()
		if err := config.Put(ConfigCreated, created); err != nil {
			return err
		}
		return config.Put(ConfigModified, created)
	})
	if err != nil {
		_ = db.Close()
		return nil, err
	}

	return &Journal{db: db}, nil
}

// Close closes the database
func (j *Journal) Close() error {
	return j.db.Close()
}

// RecordRun appends a run to the journal and returns its sequence number
func (j *Journal) RecordRun(run Run) (uint64, error) {
	var seq uint64
	err := j.db.Update(func(tx *bolt.Tx) error {
		runs := tx.Bucket(RunsBucket)

		var err error
		seq, err = runs.NextSequence()
		if err != nil {
			return err
		}

		data, err := json.Marshal(run)
		if err != nil {
			return err
		}
		if err := runs.Put(seqKey(seq), data); err != nil {
			return err
		}

		modified, _ := time.Now().MarshalBinary()
		return tx.Bucket(ConfigBucket).Put(ConfigModified, modified)
	})
	if err != nil {
		return 0, fmt.Errorf("failed to record run: %w", err)
	}
	return seq, nil
}

// Runs returns all recorded runs in chronological order
func (j *Journal) Runs() ([]Run, error) {
	var runs []Run
	err := j.db.View(func(tx *bolt.Tx) error {
		return tx.Bucket(RunsBucket).ForEach(func(_, v []byte) error {
			var run Run
			if err := json.Unmarshal(v, &run); err != nil {
				return fmt.Errorf("corrupt run entry: %w", err)
			}
			runs = append(runs, run)
			return nil
		})
	})
	return runs, err
}

// LastRun returns the most recent run and its sequence number.
// Returns ok=false if the journal holds no runs.
func (j *Journal) LastRun() (run Run, seq uint64, ok bool, err error) {
	err = j.db.View(func(tx *bolt.Tx) error {
		c := tx.Bucket(RunsBucket).Cursor()
		k, v := c.Last()
		if k == nil {
			return nil
		}
		if err := json.Unmarshal(v, &run); err != nil {
			return fmt.Errorf("corrupt run entry: %w", err)
		}
		seq = binary.BigEndian.Uint64(k)
		ok = true
		return nil
	})
	return run, seq, ok, err
}

// DeleteRun removes a run entry, used when an undo backs it out
func (j *Journal) DeleteRun(seq uint64) error {
	return j.db.Update(func(tx *bolt.Tx) error {
		if err := tx.Bucket(RunsBucket).Delete(seqKey(seq)); err != nil {
			return err
		}
		modified, _ := time.Now().MarshalBinary()
		return tx.Bucket(ConfigBucket).Put(ConfigModified, modified)
	})
}

func seqKey(seq uint64) []byte {
	key := make([]byte, 8)
	binary.BigEndian.PutUint64(key, seq)
	return key
}
