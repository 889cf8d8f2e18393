package db

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"

	"github.com/referendum-atlas/backend/internal/config"
)

// New opens the results archive database, creating the file and its
// parent directory on first use.
func New(cfg config.Store) (*sqlx.DB, error) {
	if dir := filepath.Dir(cfg.Path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create archive directory: %w", err)
		}
	}

	dbConn, err := sqlx.Connect("sqlite", cfg.Path)
	if err != nil {
		return nil, fmt.Errorf("db connection failed: %w", err)
	}

	// SQLite allows a single writer per file.
	dbConn.SetMaxOpenConns(1)

	return dbConn, nil
}
