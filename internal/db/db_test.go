package db

import (
	"context"
	"os"
	"path/filepath"
	"testing"
)

func TestInit(t *testing.T) {
	tmpDir := t.TempDir()

	db, err := Init(tmpDir)
	if err != nil {
		t.Fatalf("Init() error = %v", err)
	}
	defer db.Close()

	dbPath := filepath.Join(tmpDir, FileName)
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Errorf("database file not created at %s", dbPath)
	}

	var journalMode string
	if err := db.QueryRow("PRAGMA journal_mode;").Scan(&journalMode); err != nil {
		t.Fatalf("failed to query journal_mode: %v", err)
	}
	if journalMode != "wal" {
		t.Errorf("journal_mode = %s, want wal", journalMode)
	}

	var tableName string
	err = db.QueryRow("SELECT name FROM sqlite_master WHERE type='table' AND name='kv'").Scan(&tableName)
	if err != nil {
		t.Fatalf("kv table not found: %v", err)
	}
}

func TestInit_CreatesDirectories(t *testing.T) {
	baseDir := filepath.Join(t.TempDir(), "nested", "path", ".arkode")

	db, err := Init(baseDir)
	if err != nil {
		t.Fatalf("Init() error = %v", err)
	}
	defer db.Close()

	if _, err := os.Stat(baseDir); os.IsNotExist(err) {
		t.Errorf("base directory not created at %s", baseDir)
	}
}

func TestUserVersion(t *testing.T) {
	db, err := Init(t.TempDir())
	if err != nil {
		t.Fatalf("Init() error = %v", err)
	}
	defer db.Close()

	version, err := GetUserVersion(db)
	if err != nil {
		t.Fatalf("GetUserVersion() error = %v", err)
	}
	if version != CurrentSchemaVersion {
		t.Errorf("user_version = %d, want %d", version, CurrentSchemaVersion)
	}
}

func TestInit_Reopen(t *testing.T) {
	tmpDir := t.TempDir()
	ctx := context.Background()

	db1, err := Init(tmpDir)
	if err != nil {
		t.Fatalf("Init() error = %v", err)
	}
	if err := Set(ctx, db1, "arkode_token", "abc"); err != nil {
		t.Fatalf("Set() error = %v", err)
	}
	db1.Close()

	db2, err := Init(tmpDir)
	if err != nil {
		t.Fatalf("second Init() error = %v", err)
	}
	defer db2.Close()

	got, ok, err := Get(ctx, db2, "arkode_token")
	if err != nil || !ok || got != "abc" {
		t.Errorf("Get() = %q, %v, %v; want abc, true, nil", got, ok, err)
	}
}

func TestKV_SetGetDelete(t *testing.T) {
	ctx := context.Background()
	db, err := Init(t.TempDir())
	if err != nil {
		t.Fatalf("Init() error = %v", err)
	}
	defer db.Close()

	if _, ok, err := Get(ctx, db, "missing"); err != nil || ok {
		t.Fatalf("Get(missing) ok=%v err=%v, want false, nil", ok, err)
	}

	if err := Set(ctx, db, "MOCK_API", "true"); err != nil {
		t.Fatalf("Set() error = %v", err)
	}
	if err := Set(ctx, db, "MOCK_API", "false"); err != nil {
		t.Fatalf("Set(overwrite) error = %v", err)
	}
	got, ok, err := Get(ctx, db, "MOCK_API")
	if err != nil || !ok || got != "false" {
		t.Errorf("Get() = %q, %v, %v; want false, true, nil", got, ok, err)
	}

	if err := Set(ctx, db, "arkode-auth", "{}"); err != nil {
		t.Fatalf("Set() error = %v", err)
	}
	keys, err := Keys(ctx, db)
	if err != nil {
		t.Fatalf("Keys() error = %v", err)
	}
	if len(keys) != 2 || keys[0] != "MOCK_API" || keys[1] != "arkode-auth" {
		t.Errorf("Keys() = %v", keys)
	}

	if err := Delete(ctx, db, "MOCK_API"); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}
	if err := Delete(ctx, db, "MOCK_API"); err != nil {
		t.Fatalf("Delete(absent) error = %v", err)
	}
	if _, ok, _ := Get(ctx, db, "MOCK_API"); ok {
		t.Error("key still present after Delete")
	}
}
