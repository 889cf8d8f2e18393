package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/referendum-atlas/backend/internal/domain"
	"github.com/referendum-atlas/backend/internal/repository"
	"github.com/referendum-atlas/backend/pkg/logger"
)

// MergeReferendumAndAreas filters and joins referendum rows to the area
// lookup. DOM-TOM-COM and abroad rows (department code containing 'Z') and
// rows with a missing code are dropped, the code is zero-padded to two
// characters, the row is left-joined on CodeDep, and any row still carrying a
// missing value afterwards (no area match, unresolved region, nil count) is
// discarded. Row order follows the filtered referendum input; rows that
// survive one pass are never dropped by a second one.
//
// The two-character padding assumes surviving codes are at most two
// characters; the three-character overseas codes all contain 'Z' and never
// reach the padding step.
func MergeReferendumAndAreas(rows []domain.ReferendumRow, areas []domain.AreaRecord) []domain.ReferendumAreaRow {
	areasByDep := make(map[string]domain.AreaRecord, len(areas))
	for _, a := range areas {
		areasByDep[a.CodeDep] = a
	}

	out := make([]domain.ReferendumAreaRow, 0, len(rows))
	for _, row := range rows {
		if row.DepartmentCode == "" || strings.Contains(row.DepartmentCode, "Z") {
			continue
		}
		codeDep := zfill(row.DepartmentCode, 2)

		area, ok := areasByDep[codeDep]
		if !ok || area.NameReg == "" {
			continue
		}
		if row.Registered == nil || row.Abstentions == nil || row.Null == nil ||
			row.ChoiceA == nil || row.ChoiceB == nil {
			continue
		}

		out = append(out, domain.ReferendumAreaRow{
			CodeDep:        codeDep,
			NameDep:        area.NameDep,
			CodeReg:        area.CodeReg,
			NameReg:        area.NameReg,
			DepartmentCode: row.DepartmentCode,
			DepartmentName: row.DepartmentName,
			TownCode:       row.TownCode,
			TownName:       row.TownName,
			Registered:     *row.Registered,
			Abstentions:    *row.Abstentions,
			Null:           *row.Null,
			ChoiceA:        *row.ChoiceA,
			ChoiceB:        *row.ChoiceB,
		})
	}
	return out
}

func zfill(s string, width int) string {
	if len(s) >= width {
		return s
	}
	return strings.Repeat("0", width-len(s)) + s
}

type referendumService struct {
	datasets Datasets
	runs     repository.Runs
}

// runs may be nil when the archive is disabled; the report is then built and
// returned without being persisted.
func newReferendumService(datasets Datasets, runs repository.Runs) *referendumService {
	return &referendumService{
		datasets: datasets,
		runs:     runs,
	}
}

func (s *referendumService) BuildReport(ctx context.Context) (*domain.Report, error) {
	regions, err := s.datasets.Regions()
	if err != nil {
		return nil, fmt.Errorf("load regions: %w", err)
	}
	departments, err := s.datasets.Departments()
	if err != nil {
		return nil, fmt.Errorf("load departments: %w", err)
	}
	referendum, err := s.datasets.Referendum()
	if err != nil {
		return nil, fmt.Errorf("load referendum: %w", err)
	}

	areas := MergeRegionsAndDepartments(regions, departments)
	joined := MergeReferendumAndAreas(referendum, areas)
	results := ResultsByRegion(joined)

	logger.Info("referendum results aggregated",
		zap.Int("referendum_rows", len(referendum)),
		zap.Int("joined_rows", len(joined)),
		zap.Int("regions", len(results)))

	report := &domain.Report{
		RunID:       uuid.New(),
		GeneratedAt: time.Now().UTC(),
		Results:     results,
	}

	if s.runs != nil {
		if err := s.runs.Save(ctx, report); err != nil {
			return nil, fmt.Errorf("archive run: %w", err)
		}
		logger.Info("run archived", zap.String("run_id", report.RunID.String()))
	}

	return report, nil
}
