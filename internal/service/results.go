package service

import (
	"context"
	"sort"

	"github.com/google/uuid"

	"github.com/referendum-atlas/backend/internal/domain"
	"github.com/referendum-atlas/backend/internal/repository"
)

// ResultsByRegion groups joined rows by CodeReg and sums the five count
// columns. NameReg comes from the first row of each group (all rows of a
// group share it by construction). One row per region, sorted by CodeReg so
// the table prints deterministically.
func ResultsByRegion(rows []domain.ReferendumAreaRow) []domain.RegionResult {
	byRegion := make(map[string]*domain.RegionResult)
	for _, row := range rows {
		res, ok := byRegion[row.CodeReg]
		if !ok {
			res = &domain.RegionResult{CodeReg: row.CodeReg, NameReg: row.NameReg}
			byRegion[row.CodeReg] = res
		}
		res.Registered += row.Registered
		res.Abstentions += row.Abstentions
		res.Null += row.Null
		res.ChoiceA += row.ChoiceA
		res.ChoiceB += row.ChoiceB
	}

	results := make([]domain.RegionResult, 0, len(byRegion))
	for _, res := range byRegion {
		results = append(results, *res)
	}
	sort.Slice(results, func(i, j int) bool {
		return results[i].CodeReg < results[j].CodeReg
	})
	return results
}

type runsService struct {
	runs repository.Runs
}

func newRunsService(runs repository.Runs) *runsService {
	return &runsService{runs: runs}
}

const defaultHistoryLimit = 20

func (s *runsService) History(ctx context.Context, limit int) ([]domain.Run, error) {
	if s.runs == nil {
		return nil, domain.ErrStoreDisabled
	}
	if limit < 1 || limit > 100 {
		limit = defaultHistoryLimit
	}
	return s.runs.History(ctx, limit)
}

func (s *runsService) Results(ctx context.Context, id uuid.UUID) ([]domain.RegionResult, error) {
	if s.runs == nil {
		return nil, domain.ErrStoreDisabled
	}
	return s.runs.Results(ctx, id)
}
