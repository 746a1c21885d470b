package kv

import (
	"context"
	"database/sql"

	"github.com/GuilhermeCostaProenca/arkode-dev-toolkit/internal/db"
)

// SQLite stores keys in the kv table of the local database file.
type SQLite struct {
	db *sql.DB
}

// OpenSQLite initializes (or migrates) the database under baseDir.
func OpenSQLite(baseDir string) (*SQLite, error) {
	conn, err := db.Init(baseDir)
	if err != nil {
		return nil, err
	}
	return &SQLite{db: conn}, nil
}

func (s *SQLite) Get(ctx context.Context, key string) (string, bool, error) {
	return db.Get(ctx, s.db, key)
}

func (s *SQLite) Set(ctx context.Context, key, value string) error {
	return db.Set(ctx, s.db, key, value)
}

func (s *SQLite) Delete(ctx context.Context, key string) error {
	return db.Delete(ctx, s.db, key)
}

func (s *SQLite) Close() error {
	return s.db.Close()
}
