package store

import (
	"path/filepath"
	"testing"
)

func TestSQLiteKVSetGetAndOverwrite(t *testing.T) {
	kv, err := OpenSQLite(filepath.Join(t.TempDir(), "royba.db"))
	if err != nil {
		t.Fatalf("OpenSQLite() unexpected error: %v", err)
	}

	if _, found, err := kv.Get("users"); err != nil || found {
		t.Fatalf("Get() on empty slot = found=%v, err=%v", found, err)
	}

	if err := kv.Set("users", "first"); err != nil {
		t.Fatalf("Set() unexpected error: %v", err)
	}
	if err := kv.Set("users", "second"); err != nil {
		t.Fatalf("Set() overwrite unexpected error: %v", err)
	}

	value, found, err := kv.Get("users")
	if err != nil || !found {
		t.Fatalf("Get() = found=%v, err=%v", found, err)
	}
	if value != "second" {
		t.Fatalf("expected overwritten value, got %q", value)
	}
}

func TestSQLiteKVPersistsAcrossReopen(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "royba.db")

	kv, err := OpenSQLite(dbPath)
	if err != nil {
		t.Fatalf("OpenSQLite() unexpected error: %v", err)
	}
	if err := kv.Set("attendance", "blob"); err != nil {
		t.Fatalf("Set() unexpected error: %v", err)
	}

	// Reopening also re-runs the embedded migrations; they must be
	// idempotent and keep existing slots.
	reopened, err := OpenSQLite(dbPath)
	if err != nil {
		t.Fatalf("OpenSQLite() reopen unexpected error: %v", err)
	}
	value, found, err := reopened.Get("attendance")
	if err != nil || !found {
		t.Fatalf("Get() after reopen = found=%v, err=%v", found, err)
	}
	if value != "blob" {
		t.Fatalf("expected persisted value, got %q", value)
	}
}
