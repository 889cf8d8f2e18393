package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/referendum-atlas/backend/internal/domain"
)

type Runs interface {
	Save(ctx context.Context, report *domain.Report) error
	History(ctx context.Context, limit int) ([]domain.Run, error)
	Results(ctx context.Context, id uuid.UUID) ([]domain.RegionResult, error)
}

type Repositories struct {
	Runs Runs
}

func NewRepositories(db *sqlx.DB) *Repositories {
	return &Repositories{
		Runs: NewRunsRepository(db),
	}
}
