package service

import (
	"context"

	"github.com/google/uuid"

	"github.com/referendum-atlas/backend/internal/domain"
	"github.com/referendum-atlas/backend/internal/repository"
)

type Services struct {
	Referendum Referendum
	Runs       Runs
}

type Deps struct {
	Datasets Datasets
	Repos    *repository.Repositories
}

func NewServices(deps Deps) *Services {
	var runs repository.Runs
	if deps.Repos != nil {
		runs = deps.Repos.Runs
	}

	return &Services{
		Referendum: newReferendumService(deps.Datasets, runs),
		Runs:       newRunsService(runs),
	}
}

// Datasets is the loader side of the pipeline; internal/dataset.Loader is
// the production implementation.
type Datasets interface {
	Regions() ([]domain.Region, error)
	Departments() ([]domain.Department, error)
	Referendum() ([]domain.ReferendumRow, error)
}

type Referendum interface {
	BuildReport(ctx context.Context) (*domain.Report, error)
}

type Runs interface {
	History(ctx context.Context, limit int) ([]domain.Run, error)
	Results(ctx context.Context, id uuid.UUID) ([]domain.RegionResult, error)
}
