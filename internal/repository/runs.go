package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/referendum-atlas/backend/internal/domain"
)

type RunsRepository struct {
	db *sqlx.DB
}

func NewRunsRepository(db *sqlx.DB) *RunsRepository {
	return &RunsRepository{db: db}
}

// Save stores a run and its per-region results in one transaction.
func (r *RunsRepository) Save(ctx context.Context, report *domain.Report) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck

	var registered int64
	for _, res := range report.Results {
		registered += res.Registered
	}

	const runQuery = `INSERT INTO run (id, created_at, region_count, registered) VALUES (?, ?, ?, ?);`

	if _, err := tx.ExecContext(ctx, runQuery,
		report.RunID, report.GeneratedAt, len(report.Results), registered); err != nil {
		return fmt.Errorf("insert run: %w", err)
	}

	const resultQuery = `INSERT INTO region_result
		(run_id, code_reg, name_reg, registered, abstentions, null_votes, choice_a, choice_b)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?);`

	for _, res := range report.Results {
		if _, err := tx.ExecContext(ctx, resultQuery,
			report.RunID, res.CodeReg, res.NameReg,
			res.Registered, res.Abstentions, res.Null, res.ChoiceA, res.ChoiceB); err != nil {
			return fmt.Errorf("insert region result %s: %w", res.CodeReg, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit tx: %w", err)
	}

	return nil
}

// History returns stored runs, newest first.
func (r *RunsRepository) History(ctx context.Context, limit int) ([]domain.Run, error) {
	const query = `SELECT id, created_at, region_count, registered FROM run
		ORDER BY created_at DESC LIMIT ?;`

	runs := make([]domain.Run, 0, limit)
	if err := r.db.SelectContext(ctx, &runs, query, limit); err != nil {
		return nil, fmt.Errorf("select runs: %w", err)
	}

	return runs, nil
}

// Results returns the per-region results of a stored run, ordered by
// region code.
func (r *RunsRepository) Results(ctx context.Context, id uuid.UUID) ([]domain.RegionResult, error) {
	const runQuery = `SELECT id, created_at, region_count, registered FROM run WHERE id = ?;`

	var run domain.Run
	if err := r.db.GetContext(ctx, &run, runQuery, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}

		return nil, fmt.Errorf("select run by id: %w", err)
	}

	const resultQuery = `SELECT code_reg, name_reg, registered, abstentions, null_votes, choice_a, choice_b
		FROM region_result WHERE run_id = ? ORDER BY code_reg ASC;`

	var results []domain.RegionResult
	if err := r.db.SelectContext(ctx, &results, resultQuery, id); err != nil {
		return nil, fmt.Errorf("select run results: %w", err)
	}

	return results, nil
}
