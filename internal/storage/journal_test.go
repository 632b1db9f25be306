package storage

import (
	"path/filepath"
	"testing"
	"time"
)

func TestOpenCreatesJournal(t *testing.T) {
	dir := t.TempDir()
	dbPath := filepath.Join(dir, ".ignoresync")

	journal, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Failed to open journal: %v", err)
	}
	defer journal.Close()

	runs, err := journal.Runs()
	if err != nil {
		t.Fatalf("Runs failed: %v", err)
	}
	if len(runs) != 0 {
		t.Errorf("New journal should have no runs, got %d", len(runs))
	}

	_, _, ok, err := journal.LastRun()
	if err != nil {
		t.Fatalf("LastRun failed: %v", err)
	}
	if ok {
		t.Error("New journal should have no last run")
	}
}

func TestRecordAndListRuns(t *testing.T) {
	dir := t.TempDir()
	journal, err := Open(filepath.Join(dir, ".ignoresync"))
	if err != nil {
		t.Fatalf("Failed to open journal: %v", err)
	}
	defer journal.Close()

	first := Run{
		Time:       time.Now(),
		Appended:   []string{"a.txt", "build/"},
		IgnoreHash: "hash-1",
	}
	second := Run{
		Time:       time.Now(),
		Appended:   []string{"b.txt"},
		IgnoreHash: "hash-2",
		PurgeError: "exit status 1",
	}

	if _, err := journal.RecordRun(first); err != nil {
		t.Fatalf("RecordRun failed: %v", err)
	}
	if _, err := journal.RecordRun(second); err != nil {
		t.Fatalf("RecordRun failed: %v", err)
	}

	runs, err := journal.Runs()
	if err != nil {
		t.Fatalf("Runs failed: %v", err)
	}
	if len(runs) != 2 {
		t.Fatalf("Expected 2 runs, got %d", len(runs))
	}
	if runs[0].Appended[0] != "a.txt" {
		t.Errorf("Runs not in chronological order: %v", runs)
	}
	if !runs[1].PurgeFailed() {
		t.Error("Second run should report a failed purge")
	}

	last, _, ok, err := journal.LastRun()
	if err != nil {
		t.Fatalf("LastRun failed: %v", err)
	}
	if !ok {
		t.Fatal("Expected a last run")
	}
	if last.IgnoreHash != "hash-2" {
		t.Errorf("Expected hash-2, got %s", last.IgnoreHash)
	}
}

func TestDeleteRun(t *testing.T) {
	dir := t.TempDir()
	journal, err := Open(filepath.Join(dir, ".ignoresync"))
	if err != nil {
		t.Fatalf("Failed to open journal: %v", err)
	}
	defer journal.Close()

	if _, err := journal.RecordRun(Run{Time: time.Now(), Appended: []string{"a.txt"}, IgnoreHash: "h1"}); err != nil {
		t.Fatalf("RecordRun failed: %v", err)
	}
	if _, err := journal.RecordRun(Run{Time: time.Now(), Appended: []string{"b.txt"}, IgnoreHash: "h2"}); err != nil {
		t.Fatalf("RecordRun failed: %v", err)
	}

	_, seq, ok, err := journal.LastRun()
	if err != nil || !ok {
		t.Fatalf("LastRun failed: ok=%v err=%v", ok, err)
	}
	if err := journal.DeleteRun(seq); err != nil {
		t.Fatalf("DeleteRun failed: %v", err)
	}

	last, _, ok, err := journal.LastRun()
	if err != nil {
		t.Fatalf("LastRun failed: %v", err)
	}
	if !ok {
		t.Fatal("Expected a remaining run after delete")
	}
	if last.IgnoreHash != "h1" {
		t.Errorf("Expected h1 after deleting last run, got %s", last.IgnoreHash)
	}
}

func TestJournalPersistsAcrossReopen(t *testing.T) {
	dir := t.TempDir()
	dbPath := filepath.Join(dir, ".ignoresync")

	journal, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Failed to open journal: %v", err)
	}
	if _, err := journal.RecordRun(Run{Time: time.Now(), Appended: []string{"a.txt"}, IgnoreHash: "h1"}); err != nil {
		t.Fatalf("RecordRun failed: %v", err)
	}
	if err := journal.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}

	reopened, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Failed to reopen journal: %v", err)
	}
	defer reopened.Close()

	runs, err := reopened.Runs()
	if err != nil {
		t.Fatalf("Runs failed: %v", err)
	}
	if len(runs) != 1 || runs[0].Appended[0] != "a.txt" {
		t.Errorf("Run not persisted across reopen: %v", runs)
	}
}
