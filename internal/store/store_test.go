package store

import (
	"database/sql"
	"errors"
	"path/filepath"
	"testing"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := NewMemory()
	if err != nil {
		t.Fatalf("new memory store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

// ============================================================
// Store initialization
// ============================================================

func TestNewMemory(t *testing.T) {
	s, err := NewMemory()
	if err != nil {
		t.Fatal(err)
	}
	defer s.Close()

	version, err := s.Version()
	if err != nil {
		t.Fatal(err)
	}
	if version != currentVersion {
		t.Fatalf("expected user_version %d, got %d", currentVersion, version)
	}
}

func TestNewWithPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sub", "rased.db")
	s, err := New(path)
	if err != nil {
		t.Fatal(err)
	}
	if err := s.SetSetting("k", "v"); err != nil {
		t.Fatal(err)
	}
	s.Close()

	// Reopen: data survives and migrations do not run again.
	s2, err := New(path)
	if err != nil {
		t.Fatal(err)
	}
	defer s2.Close()

	v, err := s2.GetSetting("k")
	if err != nil {
		t.Fatal(err)
	}
	if v != "v" {
		t.Fatalf("expected v, got %q", v)
	}
}

func TestDefaultDBPath(t *testing.T) {
	path, err := DefaultDBPath()
	if err != nil {
		t.Fatal(err)
	}
	if filepath.Base(path) != "rased.db" {
		t.Fatalf("unexpected path %q", path)
	}
}

func TestMigrationIdempotent(t *testing.T) {
	s := newTestStore(t)
	if err := s.migrate(); err != nil {
		t.Fatalf("second migration failed: %v", err)
	}
}

func TestMigrationFromV1(t *testing.T) {
	path := filepath.Join(t.TempDir(), "old.db")

	// Build a version 1 database by hand.
	db, err := sql.Open("sqlite", path)
	if err != nil {
		t.Fatal(err)
	}
	_, err = db.Exec(`
		CREATE TABLE settings (key TEXT PRIMARY KEY, value TEXT NOT NULL);
		INSERT INTO settings (key, value) VALUES ('app-lang', 'ar');
		PRAGMA user_version = 1;`)
	if err != nil {
		t.Fatal(err)
	}
	db.Close()

	s, err := New(path)
	if err != nil {
		t.Fatalf("open v1 database: %v", err)
	}
	defer s.Close()

	v, _ := s.Version()
	if v != currentVersion {
		t.Fatalf("expected version %d, got %d", currentVersion, v)
	}
	lang, err := s.GetSetting(KeyLanguage)
	if err != nil || lang != "ar" {
		t.Fatalf("existing value lost: %q, %v", lang, err)
	}
	all, err := s.GetAllSettings()
	if err != nil {
		t.Fatal(err)
	}
	if all[0].UpdatedAt.IsZero() {
		t.Fatal("migrated rows should get an updated_at")
	}
}

// ============================================================
// Settings
// ============================================================

func TestNoDefaultLanguage(t *testing.T) {
	s := newTestStore(t)
	_, ok, err := s.LookupSetting(KeyLanguage)
	if err != nil {
		t.Fatal(err)
	}
	if ok {
		t.Fatal("a fresh store should not carry a language choice")
	}
}

func TestSetSettingUpsert(t *testing.T) {
	s := newTestStore(t)

	if err := s.SetSetting("contractor-reports-user", "[]"); err != nil {
		t.Fatal(err)
	}
	if err := s.SetSetting("contractor-reports-user", `[{"id":"1"}]`); err != nil {
		t.Fatal(err)
	}

	v, err := s.GetSetting("contractor-reports-user")
	if err != nil {
		t.Fatal(err)
	}
	if v != `[{"id":"1"}]` {
		t.Fatalf("unexpected value %q", v)
	}
}

func TestGetSettingMissing(t *testing.T) {
	s := newTestStore(t)
	_, err := s.GetSetting("nope")
	if !errors.Is(err, sql.ErrNoRows) {
		t.Fatalf("expected sql.ErrNoRows, got %v", err)
	}
}

func TestLookupSetting(t *testing.T) {
	s := newTestStore(t)

	_, ok, err := s.LookupSetting("nope")
	if err != nil || ok {
		t.Fatalf("missing key: ok=%v err=%v", ok, err)
	}

	s.SetSetting("yes", "1")
	v, ok, err := s.LookupSetting("yes")
	if err != nil || !ok || v != "1" {
		t.Fatalf("present key: v=%q ok=%v err=%v", v, ok, err)
	}
}

func TestDeleteSetting(t *testing.T) {
	s := newTestStore(t)
	s.SetSetting("legacy", "x")

	if err := s.DeleteSetting("legacy"); err != nil {
		t.Fatal(err)
	}
	if _, ok, _ := s.LookupSetting("legacy"); ok {
		t.Fatal("key should be gone")
	}
	// Deleting again is fine.
	if err := s.DeleteSetting("legacy"); err != nil {
		t.Fatal(err)
	}
}

func TestGetAllSettingsSorted(t *testing.T) {
	s := newTestStore(t)
	s.SetSetting("b", "2")
	s.SetSetting("a", "1")

	all, err := s.GetAllSettings()
	if err != nil {
		t.Fatal(err)
	}
	if len(all) != 2 {
		t.Fatalf("expected 2 settings, got %d", len(all))
	}
	for i := 1; i < len(all); i++ {
		if all[i-1].Key > all[i].Key {
			t.Fatalf("settings not sorted: %q before %q", all[i-1].Key, all[i].Key)
		}
	}
}

func TestClosedStoreErrors(t *testing.T) {
	s, err := NewMemory()
	if err != nil {
		t.Fatal(err)
	}
	s.Close()

	if err := s.SetSetting("k", "v"); err == nil {
		t.Fatal("expected error writing to closed store")
	}
	if _, err := s.GetSetting("k"); err == nil {
		t.Fatal("expected error reading from closed store")
	}
}
