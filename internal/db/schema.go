package db

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
)

var schema = []string{
	`CREATE TABLE IF NOT EXISTS run (
		id           TEXT PRIMARY KEY,
		created_at   TIMESTAMP NOT NULL,
		region_count INTEGER NOT NULL,
		registered   INTEGER NOT NULL
	);`,
	`CREATE TABLE IF NOT EXISTS region_result (
		run_id      TEXT NOT NULL REFERENCES run (id),
		code_reg    TEXT NOT NULL,
		name_reg    TEXT NOT NULL,
		registered  INTEGER NOT NULL,
		abstentions INTEGER NOT NULL,
		null_votes  INTEGER NOT NULL,
		choice_a    INTEGER NOT NULL,
		choice_b    INTEGER NOT NULL,
		PRIMARY KEY (run_id, code_reg)
	);`,
}

// Bootstrap creates the archive tables if the database file is fresh.
func Bootstrap(ctx context.Context, db *sqlx.DB) error {
	for _, stmt := range schema {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("bootstrap schema: %w", err)
		}
	}

	return nil
}
